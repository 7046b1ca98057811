package cfdilib_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalmx/cfdi-extractor/pkg/cfdilib"
)

const sampleCFDI = `<?xml version="1.0" encoding="UTF-8"?>
<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4"
    xmlns:tfd="http://www.sat.gob.mx/TimbreFiscalDigital"
    Version="4.0" Fecha="2024-01-01T12:00:00" Moneda="MXN"
    SubTotal="100.00" Total="116.00" TipoDeComprobante="I">
  <cfdi:Complemento>
    <tfd:TimbreFiscalDigital UUID="ABC-123"/>
  </cfdi:Complemento>
</cfdi:Comprobante>`

func TestExtract(t *testing.T) {
	invoice, err := cfdilib.Extract([]byte(sampleCFDI))
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", invoice.UUID)
	assert.Equal(t, "MXN", invoice.Moneda)
}

func TestExtractReader(t *testing.T) {
	invoice, err := cfdilib.ExtractReader(strings.NewReader(sampleCFDI))
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", invoice.UUID)
}

func TestExtract_ErrorTypes(t *testing.T) {
	_, err := cfdilib.Extract([]byte("not xml"))
	require.Error(t, err)

	var syntaxErr *cfdilib.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}
