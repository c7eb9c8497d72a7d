package registry

import (
	"github.com/gofhir/fhir/r4"
)

// FromR4 converts a typed R4 StructureDefinition. Type extensions are not
// carried over, so FHIRPath system types resolve to their default FHIR
// primitive.
func FromR4(sd *r4.StructureDefinition) *StructureDefinition {
	if sd == nil {
		return nil
	}

	result := &StructureDefinition{
		ResourceType:   "StructureDefinition",
		ID:             derefString(sd.Id),
		URL:            derefString(sd.Url),
		Name:           derefString(sd.Name),
		FHIRVersion:    derefCode(sd.FhirVersion),
		Kind:           derefCode(sd.Kind),
		Abstract:       derefBool(sd.Abstract),
		Type:           derefString(sd.Type),
		BaseDefinition: derefString(sd.BaseDefinition),
		Derivation:     derefCode(sd.Derivation),
	}
	if sd.Snapshot != nil {
		result.Snapshot = &Snapshot{Element: convertElementDefinitions(sd.Snapshot.Element)}
	}
	return result
}

// AddR4 converts and adds a typed R4 StructureDefinition.
func (r *Registry) AddR4(sd *r4.StructureDefinition) *StructureDefinition {
	converted := FromR4(sd)
	if converted != nil {
		r.Add(converted)
	}
	return converted
}

func convertElementDefinitions(elements []r4.ElementDefinition) []ElementDefinition {
	if len(elements) == 0 {
		return nil
	}
	result := make([]ElementDefinition, 0, len(elements))
	for i := range elements {
		result = append(result, convertElementDefinition(&elements[i]))
	}
	return result
}

func convertElementDefinition(ed *r4.ElementDefinition) ElementDefinition {
	result := ElementDefinition{
		ID:               derefString(ed.Id),
		Path:             derefString(ed.Path),
		SliceName:        ed.SliceName,
		Short:            derefString(ed.Short),
		Max:              derefString(ed.Max),
		Type:             convertTypes(ed.Type),
		IsModifier:       derefBool(ed.IsModifier),
		IsSummary:        derefBool(ed.IsSummary),
		Representation:   codes(ed.Representation),
		Constraint:       convertConstraints(ed.Constraint),
		ContentReference: ed.ContentReference,
	}
	if ed.Min != nil {
		result.Min = *ed.Min
	}
	return result
}

func convertTypes(types []r4.ElementDefinitionType) []Type {
	if len(types) == 0 {
		return nil
	}
	result := make([]Type, 0, len(types))
	for i := range types {
		t := &types[i]
		result = append(result, Type{
			Code:          derefString(t.Code),
			Profile:       t.Profile,
			TargetProfile: t.TargetProfile,
		})
	}
	return result
}

func convertConstraints(constraints []r4.ElementDefinitionConstraint) []Constraint {
	if len(constraints) == 0 {
		return nil
	}
	result := make([]Constraint, 0, len(constraints))
	for i := range constraints {
		con := &constraints[i]
		result = append(result, Constraint{
			Key:        derefString(con.Key),
			Severity:   derefCode(con.Severity),
			Human:      derefString(con.Human),
			Expression: derefString(con.Expression),
		})
	}
	return result
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func derefCode[T ~string](c *T) string {
	if c == nil {
		return ""
	}
	return string(*c)
}

func codes[T ~string](in []T) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = string(c)
	}
	return out
}
