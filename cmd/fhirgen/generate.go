package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofhir/models"
	"github.com/gofhir/models/internal/codegen"
	"github.com/gofhir/models/pkg/loader"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/registry"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Go types of a FHIR release",
		Long: `generate reads the StructureDefinitions of the release's core package and
writes one Go file per resource, plus base.go, datatypes.go and types.go.

The core package is read from the package cache (--packages), or from a
.tgz file or URL given with --package-file.`,
		Example: `  fhirgen generate --version R4B --out r4b
  fhirgen generate --version STU3 --resources Patient,Observation --out stu3
  fhirgen generate --package-file hl7.fhir.r4b.core-4.3.0.tgz --out r4b`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.String("packages", loader.DefaultPackagePath(), "FHIR package cache directory")
	f.String("core", "", "core package as name#version (default: the release's core package)")
	f.String("package-file", "", "core package .tgz file or URL")
	f.String("out", "", "output directory (default: the release package name)")
	f.String("package", "", "Go package name (default: stu3 or r4b)")
	f.StringSlice("resources", nil, "resource types to generate (default: the release catalog)")
	f.StringSlice("datatypes", nil, "additional data types to generate")
	f.StringSlice("open-types", nil, "types of open choice elements (value[x] typed *)")
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *Config) error {
	log := cfg.logger(cmd)
	release, err := cfg.release()
	if err != nil {
		return err
	}

	packages, err := loadSources(cmd.Context(), cfg, release, log)
	if err != nil {
		return err
	}
	reg := registry.New()
	if err := reg.LoadFromPackages(packages); err != nil {
		return fmt.Errorf("index packages: %w", err)
	}
	log.Debug("indexed %d StructureDefinitions", reg.Count())

	pkgName := cfg.Package
	if pkgName == "" {
		pkgName = strings.ToLower(string(release.Version()))
	}
	resources := cfg.Resources
	if len(resources) == 0 {
		resources = release.ResourceTypes()
	}

	cat, err := codegen.Build(reg, codegen.Config{
		Package:   pkgName,
		Resources: resources,
		DataTypes: cfg.DataTypes,
		OpenTypes: cfg.OpenTypes,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	out := cfg.Out
	if out == "" {
		out = pkgName
	}
	written, err := cat.WriteFiles(out)
	if err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "generated %d types in %d files under %s\n", len(cat.Types), len(written), out)
	return nil
}

// loadSources loads the core package named by cfg, falling back to the
// release's default packages in the cache.
func loadSources(ctx context.Context, cfg *Config, release *models.Release, log *logger.Logger) ([]*loader.Package, error) {
	l := loader.NewLoader(cfg.Packages, loader.WithLogger(log))

	switch {
	case strings.HasPrefix(cfg.PackageFile, "http://"), strings.HasPrefix(cfg.PackageFile, "https://"):
		pkg, err := l.LoadFromURL(ctx, cfg.PackageFile)
		if err != nil {
			return nil, err
		}
		return []*loader.Package{pkg}, nil
	case cfg.PackageFile != "":
		pkg, err := l.LoadFromTgz(cfg.PackageFile)
		if err != nil {
			return nil, err
		}
		return []*loader.Package{pkg}, nil
	case cfg.Core != "":
		name, version := loader.ParsePackageSpec(cfg.Core)
		pkg, err := l.LoadPackage(name, version)
		if err != nil {
			return nil, err
		}
		return []*loader.Package{pkg}, nil
	}

	packages, err := l.LoadVersion(release.FHIRVersionString())
	if err != nil {
		name, version := release.CorePackage()
		return nil, fmt.Errorf("%w (install %s#%s or pass --package-file)", err, name, version)
	}
	return packages, nil
}
