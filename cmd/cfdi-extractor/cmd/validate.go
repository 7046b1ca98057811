package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiscalmx/cfdi-extractor/internal/extractor"
	"github.com/fiscalmx/cfdi-extractor/internal/model"
)

// ValidationResult is the per-file outcome of the validate command
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate CFDI files for structural conformance",
	Long: `Validate one or more CFDI files against the minimum required structure.

Checks performed:
  - well-formed XML
  - required root attributes (Version, Fecha, Moneda, Total, TipoDeComprobante)
  - supported version (4.0)
  - fiscal stamp (TimbreFiscalDigital) present with a UUID

Examples:
  cfdi-extractor validate factura.xml
  cfdi-extractor validate *.xml -f table`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	results := make([]*ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateFile(file))
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	for _, r := range results {
		if r.Valid {
			fmt.Printf("✓ %s: VALID\n", r.File)
		} else {
			fmt.Printf("✗ %s: INVALID\n", r.File)
			for _, e := range r.Errors {
				fmt.Printf("  - %s\n", e)
			}
		}
	}
	return nil
}

func validateFile(file string) *ValidationResult {
	result := &ValidationResult{File: file}

	content, err := os.ReadFile(file)
	if err != nil {
		result.Errors = []string{err.Error()}
		return result
	}

	if _, err := extractor.Extract(content); err != nil {
		var schemaErr *model.SchemaError
		var syntaxErr *model.SyntaxError
		switch {
		case errors.As(err, &schemaErr), errors.As(err, &syntaxErr):
			result.Errors = []string{err.Error()}
		default:
			result.Errors = []string{fmt.Sprintf("Failed to parse XML: %s", err)}
		}
		return result
	}

	result.Valid = true
	return result
}
