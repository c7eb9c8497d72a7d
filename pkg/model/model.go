// Package model defines the contract shared by every generated FHIR type.
//
// Each release package (stu3, r4b) declares one Go struct per FHIR resource,
// data type and backbone element. Those structs carry no behaviour of their
// own beyond the metadata methods described here; validation, projection and
// serialization are driven by this metadata from the validation and codec
// packages.
package model

import (
	"github.com/goccy/go-json"
)

// Base is implemented by every generated type and exposes the canonical
// element ordering.
type Base interface {
	// ElementsSequence returns the JSON names of all elements in the order
	// published by the FHIR specification. Inherited elements come first and
	// choice elements are expanded to their type-suffixed names.
	ElementsSequence() []string

	// SummaryElementsSequence returns the subset of ElementsSequence flagged
	// as summary elements, in the same relative order.
	SummaryElementsSequence() []string
}

// Model is a generated FHIR resource, data type or backbone element.
type Model interface {
	Base

	// TypeName returns the FHIR type name (e.g. "Observation",
	// "ObservationComponent", "HumanName").
	TypeName() string

	// RequiredFields returns the primitive elements that must carry either a
	// value or an extension.
	RequiredFields() []RequiredField

	// OneOfManyFields returns the choice groups declared by the type.
	OneOfManyFields() ChoiceGroups
}

// Resource is a Model that can stand on its own on the wire.
type Resource interface {
	Model

	// ResourceType returns the value emitted as "resourceType".
	ResourceType() string

	// ResourceID returns the logical id and whether it is set.
	ResourceID() (string, bool)
}

// Wrapper is implemented by holders of polymorphic resources, such as
// entries of a contained list.
type Wrapper interface {
	Unwrap() Resource
}

// Factory creates an empty resource for a resourceType.
type Factory func(resourceType string) (Resource, error)

// Decimal holds a FHIR decimal as its literal JSON number so that precision
// and trailing zeros survive a round trip.
type Decimal = json.Number

// RequiredField pairs a primitive element with its extension shadow. The
// element is valid when at least one of the two is present.
type RequiredField struct {
	// Field is the JSON name of the value (e.g. "status").
	Field string
	// Ext is the JSON name of the extension shadow (e.g. "_status").
	Ext string
}

// ChoiceGroup is the expansion of one choice element (e.g. "value[x]").
type ChoiceGroup struct {
	// Name is the element name without the [x] marker.
	Name string
	// Fields lists the type-suffixed JSON names in specification type order.
	Fields []string
	// Required is true when exactly one field must be set. Otherwise at most
	// one may be set.
	Required bool
}

// Has reports whether field belongs to the group.
func (g ChoiceGroup) Has(field string) bool {
	for _, f := range g.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// ChoiceGroups is the ordered list of choice groups of a type.
type ChoiceGroups []ChoiceGroup

// Get returns the group with the given name.
func (gs ChoiceGroups) Get(name string) (ChoiceGroup, bool) {
	for _, g := range gs {
		if g.Name == name {
			return g, true
		}
	}
	return ChoiceGroup{}, false
}

// GroupOf returns the group a type-suffixed field belongs to.
func (gs ChoiceGroups) GroupOf(field string) (ChoiceGroup, bool) {
	for _, g := range gs {
		if g.Has(field) {
			return g, true
		}
	}
	return ChoiceGroup{}, false
}

// Map returns the groups keyed by name.
func (gs ChoiceGroups) Map() map[string][]string {
	m := make(map[string][]string, len(gs))
	for _, g := range gs {
		m[g.Name] = g.Fields
	}
	return m
}
