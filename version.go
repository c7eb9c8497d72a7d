package models

import (
	"fmt"
	"slices"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/r4b"
	"github.com/gofhir/models/stu3"
)

// FHIRVersion names a supported FHIR release.
type FHIRVersion string

// Supported FHIR versions.
const (
	// STU3 is FHIR Release 3 (3.0.2)
	STU3 FHIRVersion = "STU3"
	// R4B is FHIR Release 4B (4.3.0)
	R4B FHIRVersion = "R4B"
)

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported FHIR version.
func (v FHIRVersion) IsValid() bool {
	_, ok := versionConfigs[v]
	return ok
}

// versionConfig holds the release-specific wiring.
type versionConfig struct {
	// CorePackageName and CorePackageVersion identify the NPM package the
	// types are generated from.
	CorePackageName    string
	CorePackageVersion string

	// FHIRVersionString is the version used in StructureDefinitions.
	FHIRVersionString string

	// GoPackage is the import path of the generated types.
	GoPackage string

	// SubsettedSystem is the code system of the SUBSETTED meta tag.
	SubsettedSystem string

	newResource   model.Factory
	newModel      func(string) (model.Model, error)
	resourceTypes func() []string
	types         func() []string
	models        func() []model.Model
}

var versionConfigs = map[FHIRVersion]versionConfig{
	STU3: {
		CorePackageName:    "hl7.fhir.core",
		CorePackageVersion: "3.0.2",
		FHIRVersionString:  stu3.FHIRVersion,
		GoPackage:          "github.com/gofhir/models/stu3",
		SubsettedSystem:    stu3.SubsettedSystem,
		newResource:        stu3.NewResource,
		newModel:           stu3.NewModel,
		resourceTypes:      stu3.ResourceTypes,
		types:              stu3.Types,
		models:             stu3.Models,
	},
	R4B: {
		CorePackageName:    "hl7.fhir.r4b.core",
		CorePackageVersion: "4.3.0",
		FHIRVersionString:  r4b.FHIRVersion,
		GoPackage:          "github.com/gofhir/models/r4b",
		SubsettedSystem:    r4b.SubsettedSystem,
		newResource:        r4b.NewResource,
		newModel:           r4b.NewModel,
		resourceTypes:      r4b.ResourceTypes,
		types:              r4b.Types,
		models:             r4b.Models,
	},
}

// Versions returns the supported releases, sorted.
func Versions() []FHIRVersion {
	out := make([]FHIRVersion, 0, len(versionConfigs))
	for v := range versionConfigs {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// ParseVersion accepts a release name ("STU3", "R4B") or its version
// number ("3.0.2", "4.3.0").
func ParseVersion(s string) (FHIRVersion, error) {
	for v, cfg := range versionConfigs {
		if string(v) == s || cfg.FHIRVersionString == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
}

// getVersionConfig returns the configuration for a FHIR version.
func getVersionConfig(v FHIRVersion) (versionConfig, error) {
	cfg, ok := versionConfigs[v]
	if !ok {
		return versionConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	return cfg, nil
}

// summaryOptions prepends the release's SUBSETTED system to opts.
func (cfg versionConfig) summaryOptions(opts []codec.Option) []codec.Option {
	return append([]codec.Option{codec.WithSubsettedSystem(cfg.SubsettedSystem)}, opts...)
}
