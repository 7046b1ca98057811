package model

import (
	"fmt"
	"strings"
)

// SchemaError reports a document that parsed as XML but does not conform
// to the minimum CFDI 4.0 structure: missing required root attributes, an
// unsupported version, or a missing fiscal stamp.
type SchemaError struct {
	Missing []string
	Message string
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("Missing required attributes: %s", strings.Join(e.Missing, ", "))
	}
	return e.Message
}

// NewSchemaError creates a schema error with a fixed message
func NewSchemaError(message string) *SchemaError {
	return &SchemaError{Message: message}
}

// NewMissingAttributesError creates a schema error listing absent root attributes
func NewMissingAttributesError(missing []string) *SchemaError {
	return &SchemaError{Missing: missing}
}

// SyntaxError reports a byte stream that is not well-formed XML.
type SyntaxError struct {
	Cause error
}

func (e *SyntaxError) Error() string {
	return "Malformed XML file"
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// NewSyntaxError wraps the underlying parser error
func NewSyntaxError(cause error) *SyntaxError {
	return &SyntaxError{Cause: cause}
}

// StructureError reports an attribute or node the extractor expected but
// could not reach in an otherwise schema-valid document. It is surfaced
// generically at the pipeline boundary rather than diagnosed per field.
type StructureError struct {
	Field   string
	Message string
	Cause   error
}

func (e *StructureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *StructureError) Unwrap() error {
	return e.Cause
}

// NewStructureError creates a new structure error
func NewStructureError(field, message string, cause error) *StructureError {
	return &StructureError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}
