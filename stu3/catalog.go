package stu3

import (
	"fmt"
	"slices"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
)

// NewResource returns an empty resource of the given resourceType.
func NewResource(resourceType string) (model.Resource, error) {
	if r := newResource(resourceType); r != nil {
		return r, nil
	}
	return nil, fmt.Errorf("%w: %q in FHIR %s", model.ErrUnknownResourceType, resourceType, FHIRVersion)
}

// NewModel returns an empty value of any generated type, resources,
// data types and backbone elements alike.
func NewModel(typeName string) (model.Model, error) {
	if m := newModel(typeName); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q in FHIR %s", model.ErrUnknownType, typeName, FHIRVersion)
}

// ResourceTypes returns the resource types of the package, sorted.
func ResourceTypes() []string {
	return slices.Clone(resourceTypes)
}

// Types returns the names of all generated types, sorted.
func Types() []string {
	return slices.Clone(typeNames)
}

// Models returns an empty value of every generated type.
func Models() []model.Model {
	out := make([]model.Model, 0, len(typeNames))
	for _, name := range typeNames {
		out = append(out, newModel(name))
	}
	return out
}

// DecodeResource decodes a JSON resource of any type of the package.
func DecodeResource(data []byte) (model.Resource, error) {
	return codec.DecodeResource(data, NewResource)
}

// SubsettedSystem is the code system of the SUBSETTED tag in this release.
const SubsettedSystem = codec.SubsettedSystemSTU3
