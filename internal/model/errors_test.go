package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscalmx/cfdi-extractor/internal/model"
)

func TestSchemaError_MissingAttributes(t *testing.T) {
	err := model.NewMissingAttributesError([]string{"Fecha", "Moneda"})
	assert.Equal(t, "Missing required attributes: Fecha, Moneda", err.Error())
}

func TestSchemaError_Message(t *testing.T) {
	err := model.NewSchemaError("Invalid CFDI file")
	assert.Equal(t, "Invalid CFDI file", err.Error())
}

func TestSyntaxError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := model.NewSyntaxError(cause)

	assert.Equal(t, "Malformed XML file", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestStructureError(t *testing.T) {
	err := model.NewStructureError("Rfc", "required attribute absent", nil)
	assert.Equal(t, "Rfc: required attribute absent", err.Error())

	cause := errors.New("bad digit")
	wrapped := model.NewStructureError("SubTotal", "invalid decimal value", cause)
	assert.Contains(t, wrapped.Error(), "SubTotal")
	assert.Contains(t, wrapped.Error(), "bad digit")

	var structErr *model.StructureError
	require.ErrorAs(t, wrapped, &structErr)
	assert.ErrorIs(t, wrapped, cause)
}
