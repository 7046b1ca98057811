package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fiscalmx/cfdi-extractor/internal/logger"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "cfdi-extractor",
	Short: "Extract structured data from Mexican CFDI 4.0 invoices",
	Long: `CFDI Extractor reads Mexican electronic invoices (CFDI 4.0 XML),
validates their minimum required structure and produces a flattened JSON
record of the header, parties, line items and transferred taxes.

Examples:
  # Extract a single invoice
  cfdi-extractor extract factura.xml

  # Extract several invoices into one JSON file
  cfdi-extractor extract *.xml -o results.json

  # Validate structure only
  cfdi-extractor validate factura.xml

  # Start the HTTP API
  cfdi-extractor serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (env: CFDI_LOG_LEVEL)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A .env file is optional; flags and real env vars win over it.
	_ = godotenv.Load()

	if logLevel == "" {
		logLevel = os.Getenv("CFDI_LOG_LEVEL")
	}

	cfg := logger.DefaultConfig()
	if logLevel != "" {
		cfg.Level = logLevel
	} else if verbose {
		cfg.Level = "debug"
	}
	if err := logger.Setup(cfg); err != nil {
		// Fall back to defaults rather than refusing to start.
		_ = logger.Setup(logger.DefaultConfig())
	}
}
