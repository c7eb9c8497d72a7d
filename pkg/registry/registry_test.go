package registry

import (
	"testing"

	"github.com/gofhir/fhir/r4"
	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/loader"
	"github.com/gofhir/models/pkg/logger"
)

const testPackages = "testdata/packages"

func loadTestRegistry(t testing.TB) *Registry {
	t.Helper()
	l := loader.NewLoader(testPackages, loader.WithLogger(logger.Nop()))
	pkg, err := l.LoadPackage("test.fhir.core", "0.1.0")
	if err != nil {
		t.Fatalf("LoadPackage() error = %v", err)
	}
	r := New()
	if err := r.LoadFromPackages([]*loader.Package{pkg}); err != nil {
		t.Fatalf("LoadFromPackages() error = %v", err)
	}
	return r
}

func TestNewRegistry(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
	if r.Count() != 0 {
		t.Errorf("New registry should be empty, got %d", r.Count())
	}
}

func TestRegistryLoadFromPackages(t *testing.T) {
	r := loadTestRegistry(t)

	// SimpleQuantity is a profile: indexed by URL only.
	if got := r.Count(); got != 20 {
		t.Errorf("Count() = %d; want 20", got)
	}
	if got := r.TypeCount(); got != 19 {
		t.Errorf("TypeCount() = %d; want 19", got)
	}
	if r.GetByURL("http://hl7.org/fhir/StructureDefinition/SimpleQuantity") == nil {
		t.Error("SimpleQuantity not indexed by URL")
	}
	if sd := r.GetByType("Quantity"); sd == nil || sd.ID != "Quantity" {
		t.Errorf("GetByType(Quantity) = %+v; want the Quantity definition", sd)
	}
}

func TestRegistryGetByType(t *testing.T) {
	r := loadTestRegistry(t)

	tests := []struct {
		typeName string
		kind     string
		base     string
	}{
		{"Observation", KindResource, "DomainResource"},
		{"DomainResource", KindResource, "Resource"},
		{"Resource", KindResource, ""},
		{"Coding", KindComplexType, "Element"},
		{"BackboneElement", KindComplexType, "Element"},
		{"string", KindPrimitiveType, "Element"},
	}
	for _, tt := range tests {
		sd := r.GetByType(tt.typeName)
		if sd == nil {
			t.Errorf("GetByType(%q) returned nil", tt.typeName)
			continue
		}
		if sd.Kind != tt.kind {
			t.Errorf("GetByType(%q).Kind = %q; want %q", tt.typeName, sd.Kind, tt.kind)
		}
		if sd.BaseType() != tt.base {
			t.Errorf("GetByType(%q).BaseType() = %q; want %q", tt.typeName, sd.BaseType(), tt.base)
		}
	}
}

func TestRegistryGetElementDefinition(t *testing.T) {
	r := loadTestRegistry(t)

	tests := []struct {
		path      string
		min       uint32
		max       string
		types     []string
		summary   bool
		choice    bool
		repeating bool
	}{
		{"Observation.status", 1, "1", []string{"code"}, true, false, false},
		{"Observation.code", 1, "1", []string{"CodeableConcept"}, true, false, false},
		{"Observation.value[x]", 0, "1", []string{"Quantity", "string", "boolean"}, true, true, false},
		{"Observation.component", 0, "*", []string{"BackboneElement"}, false, false, true},
		{"Observation.component.code", 1, "1", []string{"CodeableConcept"}, true, false, false},
		{"Observation.id", 0, "1", []string{"id"}, true, false, false},
		{"Extension.url", 1, "1", []string{"uri"}, false, false, false},
		{"Element.id", 0, "1", []string{"string"}, false, false, false},
	}
	for _, tt := range tests {
		ed := r.GetElementDefinition(tt.path)
		if ed == nil {
			t.Errorf("GetElementDefinition(%q) returned nil", tt.path)
			continue
		}
		if ed.Min != tt.min || ed.Max != tt.max {
			t.Errorf("%s cardinality = %d..%s; want %d..%s", tt.path, ed.Min, ed.Max, tt.min, tt.max)
		}
		if diff := cmp.Diff(tt.types, ed.TypeCodes()); diff != "" {
			t.Errorf("%s TypeCodes() mismatch (-want +got):\n%s", tt.path, diff)
		}
		if ed.IsSummary != tt.summary || ed.IsChoice() != tt.choice || ed.IsRepeating() != tt.repeating {
			t.Errorf("%s flags = summary %v choice %v repeating %v", tt.path, ed.IsSummary, ed.IsChoice(), ed.IsRepeating())
		}
	}

	if ed := r.GetElementDefinition("Observation.nope"); ed != nil {
		t.Errorf("GetElementDefinition(Observation.nope) = %+v; want nil", ed)
	}
	if ed := r.GetElementDefinition("Unknown.id"); ed != nil {
		t.Errorf("GetElementDefinition(Unknown.id) = %+v; want nil", ed)
	}
}

func TestElementDefinitionHelpers(t *testing.T) {
	r := loadTestRegistry(t)

	related := r.GetElementDefinition("Observation.related")
	if related == nil {
		t.Fatal("Observation.related not found")
	}
	if got := related.ContentReferencePath(); got != "Observation.component" {
		t.Errorf("ContentReferencePath() = %q; want Observation.component", got)
	}
	if got := related.Name(); got != "related" {
		t.Errorf("Name() = %q; want related", got)
	}

	url := r.GetElementDefinition("Extension.url")
	if !url.HasRepresentation("xmlAttr") {
		t.Error("Extension.url should be an xmlAttr")
	}

	ref := "http://hl7.org/fhir/StructureDefinition/Questionnaire#Questionnaire.item"
	ed := ElementDefinition{Path: "Questionnaire.item.item", ContentReference: &ref}
	if got := ed.ContentReferencePath(); got != "Questionnaire.item" {
		t.Errorf("ContentReferencePath() = %q; want Questionnaire.item", got)
	}
}

func TestTypeFHIRCode(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Type{Code: "HumanName"}, "HumanName"},
		{Type{Code: "http://hl7.org/fhirpath/System.String"}, "string"},
		{Type{Code: "http://hl7.org/fhirpath/System.DateTime"}, "dateTime"},
		{Type{Code: "http://hl7.org/fhirpath/System.Boolean"}, "boolean"},
		{Type{Code: "http://hl7.org/fhirpath/System.String", Extension: []Extension{
			{URL: fhirTypeExtension, ValueURL: "uri"},
		}}, "uri"},
		{Type{Code: "http://hl7.org/fhirpath/System.String", Extension: []Extension{
			{URL: fhirTypeExtension, ValueURI: "id"},
		}}, "id"},
	}
	for _, tt := range tests {
		if got := tt.typ.FHIRCode(); got != tt.want {
			t.Errorf("FHIRCode(%+v) = %q; want %q", tt.typ, got, tt.want)
		}
	}
}

func TestRegistryChildren(t *testing.T) {
	r := loadTestRegistry(t)

	var names []string
	for _, ed := range r.Children("Observation.component") {
		names = append(names, ed.Name())
	}
	want := []string{"id", "extension", "modifierExtension", "code", "value[x]", "note"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Children(Observation.component) mismatch (-want +got):\n%s", diff)
	}

	names = names[:0]
	for _, ed := range r.Children("Observation") {
		names = append(names, ed.Name())
	}
	want = []string{
		"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension",
		"status", "class", "code", "value[x]", "component", "related",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Children(Observation) mismatch (-want +got):\n%s", diff)
	}

	if got := r.Children("Nothing"); got != nil {
		t.Errorf("Children(Nothing) = %v; want nil", got)
	}
}

func TestRegistryBaseChain(t *testing.T) {
	r := loadTestRegistry(t)

	tests := []struct {
		typeName string
		want     []string
	}{
		{"Observation", []string{"Observation", "DomainResource", "Resource"}},
		{"BackboneElement", []string{"BackboneElement", "Element"}},
		{"Element", []string{"Element"}},
		{"Unknown", nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, r.BaseChain(tt.typeName)); diff != "" {
			t.Errorf("BaseChain(%q) mismatch (-want +got):\n%s", tt.typeName, diff)
		}
	}
}

func TestRegistryClassification(t *testing.T) {
	r := loadTestRegistry(t)

	tests := []struct {
		typeName  string
		primitive bool
		dataType  bool
		resource  bool
		domain    bool
	}{
		{"string", true, false, false, false},
		{"xhtml", true, false, false, false},
		{"Coding", false, true, false, false},
		{"SimpleQuantity", false, true, false, false},
		{"Observation", false, false, true, true},
		{"DomainResource", false, false, true, true},
		{"Resource", false, false, true, false},
		{"Patient", false, false, false, false},
	}
	for _, tt := range tests {
		if got := r.IsPrimitiveType(tt.typeName); got != tt.primitive {
			t.Errorf("IsPrimitiveType(%q) = %v; want %v", tt.typeName, got, tt.primitive)
		}
		if got := r.IsDataType(tt.typeName); got != tt.dataType {
			t.Errorf("IsDataType(%q) = %v; want %v", tt.typeName, got, tt.dataType)
		}
		if got := r.IsResourceType(tt.typeName); got != tt.resource {
			t.Errorf("IsResourceType(%q) = %v; want %v", tt.typeName, got, tt.resource)
		}
		if got := r.IsDomainResource(tt.typeName); got != tt.domain {
			t.Errorf("IsDomainResource(%q) = %v; want %v", tt.typeName, got, tt.domain)
		}
	}
}

func TestRegistryAllTypes(t *testing.T) {
	r := loadTestRegistry(t)
	types := r.AllTypes()
	if len(types) != r.TypeCount() {
		t.Errorf("AllTypes() has %d entries; want %d", len(types), r.TypeCount())
	}
	if types[0] != "BackboneElement" {
		t.Errorf("AllTypes()[0] = %q; want BackboneElement (sorted)", types[0])
	}
	if urls := r.AllURLs(); len(urls) != r.Count() {
		t.Errorf("AllURLs() has %d entries; want %d", len(urls), r.Count())
	}
}

func TestRegistryAddJSON(t *testing.T) {
	r := New()
	sd, err := r.AddJSON([]byte(`{
		"resourceType": "StructureDefinition",
		"url": "http://example.org/StructureDefinition/Thing",
		"kind": "logical",
		"type": "Thing",
		"snapshot": {"element": [{"path": "Thing", "min": 0, "max": "*"}, {"path": "Thing.name", "min": 1, "max": "1", "type": [{"code": "string"}]}]}
	}`))
	if err != nil {
		t.Fatalf("AddJSON() error = %v", err)
	}
	if sd.Kind != KindLogical || r.GetByType("Thing") != sd {
		t.Errorf("AddJSON() did not index Thing: %+v", sd)
	}
	if ed := r.GetElementDefinition("Thing.name"); ed == nil || ed.Min != 1 {
		t.Errorf("GetElementDefinition(Thing.name) = %+v", ed)
	}

	if _, err := r.AddJSON([]byte(`{"resourceType":"ValueSet"}`)); err == nil {
		t.Error("AddJSON(ValueSet) should fail")
	}
	if _, err := r.AddJSON([]byte(`not json`)); err == nil {
		t.Error("AddJSON(invalid) should fail")
	}
}

func TestFromR4(t *testing.T) {
	if FromR4(nil) != nil {
		t.Error("FromR4(nil) should return nil")
	}

	url := "http://hl7.org/fhir/StructureDefinition/Thing"
	name := "Thing"
	typeName := "Thing"
	kind := r4.StructureDefinitionKindResource
	base := "http://hl7.org/fhir/StructureDefinition/DomainResource"
	path := "Thing.status"
	rootPath := "Thing"
	maxOne := "1"
	minOne := uint32(1)
	summary := true
	code := "code"

	sd := &r4.StructureDefinition{
		Url:            &url,
		Name:           &name,
		Type:           &typeName,
		Kind:           &kind,
		BaseDefinition: &base,
		Snapshot: &r4.StructureDefinitionSnapshot{
			Element: []r4.ElementDefinition{
				{Path: &rootPath},
				{
					Path:      &path,
					Min:       &minOne,
					Max:       &maxOne,
					IsSummary: &summary,
					Type:      []r4.ElementDefinitionType{{Code: &code}},
				},
			},
		},
	}

	r := New()
	got := r.AddR4(sd)
	if got.URL != url || got.Kind != KindResource || got.BaseType() != "DomainResource" {
		t.Errorf("FromR4() = %+v", got)
	}
	ed := r.GetElementDefinition("Thing.status")
	if ed == nil {
		t.Fatal("Thing.status not found")
	}
	if ed.Min != 1 || ed.Max != "1" || !ed.IsSummary {
		t.Errorf("Thing.status = %+v", ed)
	}
	if diff := cmp.Diff([]string{"code"}, ed.TypeCodes()); diff != "" {
		t.Errorf("TypeCodes() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryCorePackage(t *testing.T) {
	l := loader.NewLoader("", loader.WithLogger(logger.Nop()))
	packages, err := l.LoadVersion("4.3.0")
	if err != nil {
		t.Skipf("Cannot load FHIR packages: %v", err)
	}

	r := New()
	if err := r.LoadFromPackages(packages); err != nil {
		t.Fatalf("LoadFromPackages failed: %v", err)
	}

	ed := r.GetElementDefinition("Observation.status")
	if ed == nil || ed.Min != 1 || !ed.IsSummary {
		t.Errorf("Observation.status = %+v", ed)
	}
	if !r.IsDomainResource("Patient") || r.IsDomainResource("Parameters") {
		t.Error("DomainResource classification is wrong")
	}
}
