package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gofhir/models/pkg/model"
)

// Description is the JSON form of describe.
type Description struct {
	Type     string                `json:"type"`
	Version  string                `json:"version"`
	Elements []string              `json:"elements"`
	Summary  []string              `json:"summary"`
	Required []model.RequiredField `json:"required"`
	Choices  model.ChoiceGroups    `json:"choices"`
}

func describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe TYPE...",
		Short: "Print the element metadata of generated types",
		Example: `  fhirgen describe Observation
  fhirgen describe --version STU3 --output json Encounter EncounterLocation`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runDescribe(cmd.OutOrStdout(), cfg, args)
		},
	}
	cmd.Flags().String("output", "text", "output format: text, json")
	return cmd
}

func runDescribe(w io.Writer, cfg *Config, names []string) error {
	release, err := cfg.release()
	if err != nil {
		return err
	}

	descs := make([]Description, 0, len(names))
	for _, name := range names {
		m, err := release.NewModel(name)
		if err != nil {
			return err
		}
		descs = append(descs, Description{
			Type:     name,
			Version:  string(release.Version()),
			Elements: m.ElementsSequence(),
			Summary:  m.SummaryElementsSequence(),
			Required: m.RequiredFields(),
			Choices:  m.OneOfManyFields(),
		})
	}

	if cfg.Output == "json" {
		data, err := json.MarshalIndent(descs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	for _, d := range descs {
		printDescription(w, d)
	}
	return nil
}

func printDescription(w io.Writer, d Description) {
	fmt.Fprintf(w, "== %s (%s) ==\n", d.Type, d.Version)
	fmt.Fprintf(w, "Elements: %s\n", strings.Join(d.Elements, ", "))
	fmt.Fprintf(w, "Summary:  %s\n", strings.Join(d.Summary, ", "))

	required := make([]string, 0, len(d.Required))
	for _, r := range d.Required {
		required = append(required, r.Field+" ("+r.Ext+")")
	}
	fmt.Fprintf(w, "Required: %s\n", strings.Join(required, ", "))

	fmt.Fprintln(w, "Choices:")
	for _, g := range d.Choices {
		mark := ""
		if g.Required {
			mark = " [required]"
		}
		fmt.Fprintf(w, "  %s[x]%s: %s\n", g.Name, mark, strings.Join(g.Fields, " | "))
	}
	fmt.Fprintln(w)
}
