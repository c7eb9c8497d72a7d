// Package main implements fhirgen, the generator and inspection tool for
// the FHIR release packages of github.com/gofhir/models.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gofhir/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fhirgen",
		Short: "Generate and inspect FHIR model packages",
		Long: `fhirgen generates the Go types of a FHIR release from its core package
StructureDefinitions, and inspects or validates resources with the
generated models.

Settings can also be given as FHIRGEN_* environment variables
(FHIRGEN_VERSION, FHIRGEN_LOG_LEVEL, ...) or in a fhirgen.yaml file.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./fhirgen.yaml)")
	pf.String("version", string(models.R4B), "FHIR release: STU3, R4B, 3.0.2 or 4.3.0")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(generateCmd())
	root.AddCommand(describeCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(typesCmd())
	return root
}
