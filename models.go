package models

import (
	"errors"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/validation"
)

// ErrUnsupportedVersion is returned for releases without generated types.
var ErrUnsupportedVersion = errors.New("unsupported FHIR version")

// Release bundles the catalog of one FHIR release.
type Release struct {
	version FHIRVersion
	cfg     versionConfig
}

// ForVersion returns the release for v.
func ForVersion(v FHIRVersion) (*Release, error) {
	cfg, err := getVersionConfig(v)
	if err != nil {
		return nil, err
	}
	return &Release{version: v, cfg: cfg}, nil
}

// Version returns the release name.
func (r *Release) Version() FHIRVersion {
	return r.version
}

// FHIRVersionString returns the release number, e.g. "4.3.0".
func (r *Release) FHIRVersionString() string {
	return r.cfg.FHIRVersionString
}

// CorePackage returns the NPM package name and version the types are
// generated from.
func (r *Release) CorePackage() (name, version string) {
	return r.cfg.CorePackageName, r.cfg.CorePackageVersion
}

// GoPackage returns the import path of the generated types.
func (r *Release) GoPackage() string {
	return r.cfg.GoPackage
}

// NewResource returns an empty resource of resourceType.
func (r *Release) NewResource(resourceType string) (model.Resource, error) {
	return r.cfg.newResource(resourceType)
}

// NewModel returns an empty value of any generated type.
func (r *Release) NewModel(typeName string) (model.Model, error) {
	return r.cfg.newModel(typeName)
}

// ResourceTypes returns the resource types of the release, sorted.
func (r *Release) ResourceTypes() []string {
	return r.cfg.resourceTypes()
}

// Types returns every generated type name of the release, sorted.
func (r *Release) Types() []string {
	return r.cfg.types()
}

// DecodeResource decodes a JSON resource of the release.
func (r *Release) DecodeResource(data []byte) (model.Resource, error) {
	return codec.DecodeResource(data, r.cfg.newResource)
}

// Summary returns the _summary=true projection of res, tagged with the
// release's SUBSETTED code system.
func (r *Release) Summary(res model.Resource, opts ...codec.Option) *codec.Object {
	return codec.Summary(res, r.cfg.summaryOptions(opts)...)
}

// Project returns the _summary projection of res for mode.
func (r *Release) Project(res model.Resource, mode codec.SummaryMode, opts ...codec.Option) (*codec.Object, error) {
	return codec.Project(res, mode, r.cfg.summaryOptions(opts)...)
}

// Elements returns the _elements projection of res.
func (r *Release) Elements(res model.Resource, names []string, opts ...codec.Option) *codec.Object {
	return codec.Elements(res, names, r.cfg.summaryOptions(opts)...)
}

// NewValidator returns a validator for the release. Release-specific
// options are applied first so callers can override them.
func (r *Release) NewValidator(opts ...validation.Option) (*validation.Validator, error) {
	base := []validation.Option{
		validation.WithFactory(r.cfg.newResource),
		validation.WithFHIRVersion(r.cfg.FHIRVersionString),
	}
	return validation.New(r.cfg.models(), append(base, opts...)...)
}

// DecodeResource decodes a JSON resource of release v.
func DecodeResource(v FHIRVersion, data []byte) (model.Resource, error) {
	r, err := ForVersion(v)
	if err != nil {
		return nil, err
	}
	return r.DecodeResource(data)
}

// NewResource returns an empty resource of release v.
func NewResource(v FHIRVersion, resourceType string) (model.Resource, error) {
	r, err := ForVersion(v)
	if err != nil {
		return nil, err
	}
	return r.NewResource(resourceType)
}

// NewValidator returns a validator for release v.
func NewValidator(v FHIRVersion, opts ...validation.Option) (*validation.Validator, error) {
	r, err := ForVersion(v)
	if err != nil {
		return nil, err
	}
	return r.NewValidator(opts...)
}
