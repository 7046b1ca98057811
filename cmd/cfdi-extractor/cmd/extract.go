package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fiscalmx/cfdi-extractor/internal/extractor"
	"github.com/fiscalmx/cfdi-extractor/internal/logger"
	"github.com/fiscalmx/cfdi-extractor/internal/model"
)

var outputFile string

// ExtractResult is the per-file outcome of the extract command
type ExtractResult struct {
	File    string         `json:"file"`
	Invoice *model.Invoice `json:"invoice,omitempty"`
	Error   string         `json:"error,omitempty"`
}

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Extract CFDI files into flattened JSON records",
	Long: `Extract one or more CFDI 4.0 XML files into flattened JSON records.

Examples:
  cfdi-extractor extract factura.xml
  cfdi-extractor extract *.xml -o results.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to extract")
	}

	log := logger.WithComponent("extract")
	results := make([]*ExtractResult, 0, len(files))
	for _, file := range files {
		log.Debug().Str("file", file).Msg("extracting")

		result := &ExtractResult{File: file}
		content, err := os.ReadFile(file)
		if err != nil {
			result.Error = err.Error()
		} else if invoice, err := extractor.Extract(content); err != nil {
			result.Error = err.Error()
		} else {
			result.Invoice = invoice
		}
		results = append(results, result)
	}

	return writeResults(results)
}

func writeResults(results []*ExtractResult) error {
	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// collectFiles expands arguments into a flat file list. Globs and
// directories are walked; everything else passes through as-is.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			entries, err := os.ReadDir(arg)
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				if !entry.IsDir() && filepath.Ext(entry.Name()) == ".xml" {
					files = append(files, filepath.Join(arg, entry.Name()))
				}
			}
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
