package extractor_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalmx/cfdi-extractor/internal/extractor"
)

func parseRoot(t *testing.T, doc string) *etree.Element {
	t.Helper()
	d := etree.NewDocument()
	require.NoError(t, d.ReadFromString(doc))
	require.NotNil(t, d.Root())
	return d.Root()
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		missing []string
	}{
		{
			name: "all present",
			doc: `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4"
			    Version="4.0" Fecha="2024-01-01" Moneda="MXN" Total="1" TipoDeComprobante="I"/>`,
			missing: nil,
		},
		{
			name:    "all absent in canonical order",
			doc:     `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4"/>`,
			missing: []string{"Version", "Fecha", "Moneda", "Total", "TipoDeComprobante"},
		},
		{
			name: "some absent",
			doc: `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4"
			    Fecha="2024-01-01" Total="1"/>`,
			missing: []string{"Version", "Moneda", "TipoDeComprobante"},
		},
		{
			name: "empty value still counts as present",
			doc: `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4"
			    Version="" Fecha="2024-01-01" Moneda="MXN" Total="1" TipoDeComprobante="I"/>`,
			missing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := parseRoot(t, tt.doc)
			assert.Equal(t, tt.missing, extractor.ValidateStructure(root))
		})
	}
}
