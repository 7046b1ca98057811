// Package cfdilib provides a public API for extracting Mexican CFDI 4.0
// invoices.
//
// Example usage:
//
//	invoice, err := cfdilib.Extract(xmlBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(invoice.UUID, invoice.Total)
package cfdilib

import (
	"io"

	"github.com/fiscalmx/cfdi-extractor/internal/extractor"
	"github.com/fiscalmx/cfdi-extractor/internal/model"
)

// Re-export core types for public API
type (
	Invoice  = model.Invoice
	Taxpayer = model.Taxpayer
	Concept  = model.Concept
	Traslado = model.Traslado
)

// Re-export error types
type (
	SchemaError    = model.SchemaError
	SyntaxError    = model.SyntaxError
	StructureError = model.StructureError
)

// Extract parses and validates a CFDI 4.0 document and returns its
// flattened invoice record.
func Extract(data []byte) (*Invoice, error) {
	return extractor.Extract(data)
}

// ExtractReader reads a CFDI 4.0 document to completion and extracts it.
func ExtractReader(r io.Reader) (*Invoice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(data)
}

// ValidateStructure reports the required root attributes missing from a
// parsed comprobante element, in canonical order.
var ValidateStructure = extractor.ValidateStructure
