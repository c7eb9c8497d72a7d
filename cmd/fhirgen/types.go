package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the resource types of a release",
		Example: `  fhirgen types --version STU3
  fhirgen types --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			release, err := cfg.release()
			if err != nil {
				return err
			}
			names := release.ResourceTypes()
			if all, _ := cmd.Flags().GetBool("all"); all {
				names = release.Types()
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().Bool("all", false, "include data types and backbone elements")
	return cmd
}
