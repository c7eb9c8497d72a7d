package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/loader"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/registry"
)

const testPackages = "../../pkg/registry/testdata/packages"

func loadTestRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	l := loader.NewLoader(testPackages, loader.WithLogger(logger.Nop()))
	pkg, err := l.LoadPackage("test.fhir.core", "0.1.0")
	if err != nil {
		t.Fatalf("LoadPackage() error = %v", err)
	}
	r := registry.New()
	if err := r.LoadFromPackages([]*loader.Package{pkg}); err != nil {
		t.Fatalf("LoadFromPackages() error = %v", err)
	}
	return r
}

func buildObservation(t *testing.T) *Catalog {
	t.Helper()
	cat, err := Build(loadTestRegistry(t), Config{
		Package:   "testpkg",
		Resources: []string{"Observation"},
		Logger:    logger.Nop(),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return cat
}

func TestGoName(t *testing.T) {
	tests := []struct {
		wire string
		want string
	}{
		{"class", "Class"},
		{"for", "For"},
		{"id", "ID"},
		{"url", "URL"},
		{"versionId", "VersionID"},
		{"valueUri", "ValueURI"},
		{"valueOid", "ValueOID"},
		{"valueUuid", "ValueUUID"},
		{"implicitRules", "ImplicitRules"},
		{"identifier", "Identifier"},
		{"valueDateTime", "ValueDateTime"},
	}
	for _, tt := range tests {
		if got := GoName(tt.wire); got != tt.want {
			t.Errorf("GoName(%q) = %q; want %q", tt.wire, got, tt.want)
		}
	}
}

func TestTypeSuffix(t *testing.T) {
	tests := map[string]string{
		"dateTime":        "DateTime",
		"string":          "String",
		"SimpleQuantity":  "Quantity",
		"CodeableConcept": "CodeableConcept",
	}
	for code, want := range tests {
		if got := typeSuffix(code); got != want {
			t.Errorf("typeSuffix(%q) = %q; want %q", code, got, want)
		}
	}
}

func TestPathTypeName(t *testing.T) {
	if got := pathTypeName("Observation.referenceRange"); got != "ObservationReferenceRange" {
		t.Errorf("pathTypeName() = %q", got)
	}
	if got := pathTypeName("StructureMap.group.rule.target"); got != "StructureMapGroupRuleTarget" {
		t.Errorf("pathTypeName() = %q", got)
	}
}

func TestFieldSpecTag(t *testing.T) {
	f := FieldSpec{GoName: "Status", GoType: "*string", Wire: "status", Validate: "omitempty,fhir_code"}
	if got, want := f.Tag(), "`json:\"status,omitempty\" validate:\"omitempty,fhir_code\"`"; got != want {
		t.Errorf("Tag() = %s; want %s", got, want)
	}
	f = FieldSpec{GoName: "Class", GoType: "*Coding", Wire: "class"}
	if got, want := f.Tag(), "`json:\"class,omitempty\"`"; got != want {
		t.Errorf("Tag() = %s; want %s", got, want)
	}
}

func TestBuildCatalog(t *testing.T) {
	cat := buildObservation(t)

	var names []string
	for _, ts := range cat.Types {
		names = append(names, ts.Name)
	}
	want := []string{
		"Element", "BackboneElement", "Resource", "DomainResource",
		"CodeableConcept", "Coding", "Extension", "Meta", "Narrative", "Quantity",
		"Observation", "ObservationComponent",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("catalog types mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Observation"}, cat.ResourceTypes()); diff != "" {
		t.Errorf("ResourceTypes() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := cat.Lookup("Patient"); ok {
		t.Error("Lookup(Patient) should fail")
	}
}

func TestBuildBaseTypes(t *testing.T) {
	cat := buildObservation(t)

	tests := []struct {
		name     string
		base     string
		elements []string
		summary  []string
	}{
		{"Element", "", []string{"id", "extension"}, nil},
		{"BackboneElement", "Element", []string{"id", "extension", "modifierExtension"}, []string{"modifierExtension"}},
		{"Resource", "", []string{"id", "meta", "implicitRules", "language"}, []string{"id", "meta", "implicitRules"}},
		{"DomainResource", "Resource",
			[]string{"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension"},
			[]string{"id", "meta", "implicitRules"}},
	}
	for _, tt := range tests {
		ts, ok := cat.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%s) failed", tt.name)
			continue
		}
		if ts.Kind != KindBase || ts.File != "base" || ts.Base != tt.base {
			t.Errorf("%s: kind=%s file=%s base=%q", tt.name, ts.Kind, ts.File, ts.Base)
		}
		if diff := cmp.Diff(tt.elements, ts.Elements); diff != "" {
			t.Errorf("%s elements mismatch (-want +got):\n%s", tt.name, diff)
		}
		if diff := cmp.Diff(tt.summary, ts.Summary); diff != "" {
			t.Errorf("%s summary mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	element, _ := cat.Lookup("Element")
	if diff := cmp.Diff([]FieldSpec{
		{GoName: "ID", GoType: "*string", Wire: "id"},
		{GoName: "Extension", GoType: "[]Extension", Wire: "extension", Validate: "omitempty,dive"},
	}, element.Fields); diff != "" {
		t.Errorf("Element fields mismatch (-want +got):\n%s", diff)
	}

	resource, _ := cat.Lookup("Resource")
	if got := resource.Fields[0]; got.Validate != "omitempty,fhir_id" {
		t.Errorf("Resource.id validate = %q; want omitempty,fhir_id", got.Validate)
	}

	domain, _ := cat.Lookup("DomainResource")
	if got := domain.Fields[1]; got.GoType != "[]ResourceContainer" {
		t.Errorf("DomainResource.contained type = %q; want []ResourceContainer", got.GoType)
	}
}

func TestBuildObservation(t *testing.T) {
	cat := buildObservation(t)
	obs, ok := cat.Lookup("Observation")
	if !ok {
		t.Fatal("Lookup(Observation) failed")
	}
	if obs.Kind != KindResource || obs.Base != "DomainResource" || obs.File != "observation" {
		t.Errorf("Observation: kind=%s base=%s file=%s", obs.Kind, obs.Base, obs.File)
	}

	wantFields := []FieldSpec{
		{GoName: "Status", GoType: "*string", Wire: "status", Validate: "omitempty,fhir_code"},
		{GoName: "StatusExt", GoType: "*Element", Wire: "_status"},
		{GoName: "Class", GoType: "*Coding", Wire: "class"},
		{GoName: "Code", GoType: "*CodeableConcept", Wire: "code", Validate: "required"},
		{GoName: "ValueQuantity", GoType: "*Quantity", Wire: "valueQuantity"},
		{GoName: "ValueString", GoType: "*string", Wire: "valueString"},
		{GoName: "ValueStringExt", GoType: "*Element", Wire: "_valueString"},
		{GoName: "ValueBoolean", GoType: "*bool", Wire: "valueBoolean"},
		{GoName: "ValueBooleanExt", GoType: "*Element", Wire: "_valueBoolean"},
		{GoName: "Component", GoType: "[]ObservationComponent", Wire: "component", Validate: "omitempty,dive"},
		{GoName: "Related", GoType: "[]ObservationComponent", Wire: "related", Validate: "omitempty,dive"},
	}
	if diff := cmp.Diff(wantFields, obs.Fields); diff != "" {
		t.Errorf("Observation fields mismatch (-want +got):\n%s", diff)
	}

	wantElements := []string{
		"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension",
		"status", "class", "code", "valueQuantity", "valueString", "valueBoolean", "component", "related",
	}
	if diff := cmp.Diff(wantElements, obs.Elements); diff != "" {
		t.Errorf("Observation elements mismatch (-want +got):\n%s", diff)
	}
	wantSummary := []string{
		"id", "meta", "implicitRules", "status", "class", "code", "valueQuantity", "valueString", "valueBoolean",
	}
	if diff := cmp.Diff(wantSummary, obs.Summary); diff != "" {
		t.Errorf("Observation summary mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"status"}, obs.Required); diff != "" {
		t.Errorf("Observation required mismatch (-want +got):\n%s", diff)
	}
	wantChoices := []ChoiceSpec{{Name: "value", Fields: []string{"valueQuantity", "valueString", "valueBoolean"}}}
	if diff := cmp.Diff(wantChoices, obs.Choices); diff != "" {
		t.Errorf("Observation choices mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBackbone(t *testing.T) {
	cat := buildObservation(t)
	comp, ok := cat.Lookup("ObservationComponent")
	if !ok {
		t.Fatal("Lookup(ObservationComponent) failed")
	}
	if comp.Kind != KindBackbone || comp.Base != "BackboneElement" || comp.File != "observation" {
		t.Errorf("ObservationComponent: kind=%s base=%s file=%s", comp.Kind, comp.Base, comp.File)
	}
	if got := comp.Doc(); got != "// ObservationComponent is the Observation.component backbone element." {
		t.Errorf("Doc() = %q", got)
	}

	wantFields := []FieldSpec{
		{GoName: "Code", GoType: "*CodeableConcept", Wire: "code", Validate: "required"},
		{GoName: "ValueQuantity", GoType: "*Quantity", Wire: "valueQuantity"},
		{GoName: "ValueString", GoType: "*string", Wire: "valueString"},
		{GoName: "ValueStringExt", GoType: "*Element", Wire: "_valueString"},
		{GoName: "Note", GoType: "[]string", Wire: "note"},
		{GoName: "NoteExt", GoType: "[]*Element", Wire: "_note"},
	}
	if diff := cmp.Diff(wantFields, comp.Fields); diff != "" {
		t.Errorf("ObservationComponent fields mismatch (-want +got):\n%s", diff)
	}
	wantSummary := []string{"modifierExtension", "code", "valueQuantity", "valueString"}
	if diff := cmp.Diff(wantSummary, comp.Summary); diff != "" {
		t.Errorf("ObservationComponent summary mismatch (-want +got):\n%s", diff)
	}
	if len(comp.Required) != 0 {
		t.Errorf("ObservationComponent required = %v; want none", comp.Required)
	}
}

func TestBuildDataTypes(t *testing.T) {
	cat := buildObservation(t)

	ext, _ := cat.Lookup("Extension")
	if ext.Kind != KindDataType || ext.Base != "Element" || ext.File != "datatypes" {
		t.Errorf("Extension: kind=%s base=%s file=%s", ext.Kind, ext.Base, ext.File)
	}
	if got := ext.Fields[0]; got != (FieldSpec{GoName: "URL", GoType: "*string", Wire: "url", Validate: "required,fhir_uri"}) {
		t.Errorf("Extension.url field = %+v", got)
	}
	wantChoice := []string{"valueBoolean", "valueCode", "valueString", "valueCoding", "valueQuantity"}
	if len(ext.Choices) != 1 || !cmp.Equal(wantChoice, ext.Choices[0].Fields) {
		t.Errorf("Extension choices = %+v", ext.Choices)
	}

	narrative, _ := cat.Lookup("Narrative")
	if diff := cmp.Diff([]string{"status"}, narrative.Required); diff != "" {
		t.Errorf("Narrative required mismatch (-want +got):\n%s", diff)
	}
	if got := narrative.Fields[2]; got != (FieldSpec{GoName: "Div", GoType: "*string", Wire: "div", Validate: "required"}) {
		t.Errorf("Narrative.div field = %+v", got)
	}

	quantity, _ := cat.Lookup("Quantity")
	if got := quantity.Fields[0].GoType; got != "*model.Decimal" {
		t.Errorf("Quantity.value type = %q; want *model.Decimal", got)
	}
}

func TestBuildExtraDataTypes(t *testing.T) {
	cat, err := Build(loadTestRegistry(t), Config{
		Package:   "testpkg",
		DataTypes: []string{"SimpleQuantity", "Coding"},
		Logger:    logger.Nop(),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := cat.Lookup("SimpleQuantity"); !ok {
		t.Error("SimpleQuantity should be generated when requested")
	}
	if len(cat.ResourceTypes()) != 0 {
		t.Errorf("ResourceTypes() = %v; want none", cat.ResourceTypes())
	}
}

func TestBuildErrors(t *testing.T) {
	reg := loadTestRegistry(t)
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"no package", Config{Resources: []string{"Observation"}}, "package name"},
		{"unknown", Config{Package: "p", Resources: []string{"Patient"}}, `"Patient"`},
		{"abstract", Config{Package: "p", Resources: []string{"DomainResource"}}, "abstract"},
		{"not a resource", Config{Package: "p", Resources: []string{"Coding"}}, "not a resource"},
		{"not a data type", Config{Package: "p", DataTypes: []string{"Observation"}}, "Observation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Logger = logger.Nop()
			_, err := Build(reg, tt.cfg)
			if err == nil {
				t.Fatal("Build() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Build() error = %v; want it to mention %s", err, tt.want)
			}
		})
	}
}

func parseFile(t *testing.T, name string, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated %s does not parse: %v\n%s", name, err, src)
	}
	return f
}

func structFields(f *ast.File, name string) map[string]string {
	fields := make(map[string]string)
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			st, ok := ts.Type.(*ast.StructType)
			if !ok || ts.Name.Name != name {
				continue
			}
			for _, field := range st.Fields.List {
				tag := ""
				if field.Tag != nil {
					tag = field.Tag.Value
				}
				if len(field.Names) == 0 {
					fields["<embedded>"] = types(field.Type)
					continue
				}
				fields[field.Names[0].Name] = types(field.Type) + " " + tag
			}
		}
	}
	return fields
}

func types(e ast.Expr) string {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + types(t.X)
	case *ast.ArrayType:
		return "[]" + types(t.Elt)
	case *ast.SelectorExpr:
		return types(t.X) + "." + t.Sel.Name
	}
	return "?"
}

func funcNames(f *ast.File) map[string]bool {
	out := make(map[string]bool)
	for _, decl := range f.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok {
			recv := ""
			if fd.Recv != nil {
				recv = strings.TrimPrefix(types(fd.Recv.List[0].Type), "*") + "."
			}
			out[recv+fd.Name.Name] = true
		}
	}
	return out
}

func importPaths(f *ast.File) []string {
	var out []string
	for _, imp := range f.Imports {
		out = append(out, imp.Path.Value)
	}
	return out
}

func TestRecognisedChoice(t *testing.T) {
	tests := []struct {
		wire, code string
		want       bool
	}{
		{"valueDateTime", "dateTime", true},
		{"valueString", "string", true},
		{"valueCodeableConcept", "CodeableConcept", true},
		{"valueQuantity", "SimpleQuantity", true},
		{"valueTime", "dateTime", false},
		{"valueWidget", "Widget", false},
	}
	for _, tt := range tests {
		if got := recognised(tt.wire, tt.code); got != tt.want {
			t.Errorf("recognised(%q, %q) = %v; want %v", tt.wire, tt.code, got, tt.want)
		}
	}
}

func TestRenderFiles(t *testing.T) {
	files, err := buildObservation(t).Files()
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}
	var names []string
	for name := range files {
		names = append(names, name)
	}
	if len(names) != 4 {
		t.Errorf("Files() = %v; want base, datatypes, observation and types", names)
	}

	for name, src := range files {
		if !strings.HasPrefix(string(src), "// Code generated by fhirgen. DO NOT EDIT.\n\npackage testpkg\n") {
			t.Errorf("%s: missing generated header:\n%s", name, src)
		}
	}

	obs := parseFile(t, "observation.go", files["observation.go"])
	if diff := cmp.Diff([]string{
		`"github.com/goccy/go-json"`, `"github.com/gofhir/models/pkg/codec"`, `"github.com/gofhir/models/pkg/model"`,
	}, importPaths(obs)); diff != "" {
		t.Errorf("observation.go imports mismatch (-want +got):\n%s", diff)
	}
	fields := structFields(obs, "Observation")
	for name, want := range map[string]string{
		"<embedded>":   "DomainResource",
		"Class":        "*Coding `json:\"class,omitempty\"`",
		"Status":       "*string `json:\"status,omitempty\" validate:\"omitempty,fhir_code\"`",
		"ValueBoolean": "*bool `json:\"valueBoolean,omitempty\"`",
		"Related":      "[]ObservationComponent `json:\"related,omitempty\" validate:\"omitempty,dive\"`",
	} {
		if fields[name] != want {
			t.Errorf("Observation.%s = %q; want %q", name, fields[name], want)
		}
	}
	fns := funcNames(obs)
	for _, fn := range []string{
		"Observation.TypeName", "Observation.ElementsSequence", "Observation.SummaryElementsSequence",
		"Observation.RequiredFields", "Observation.OneOfManyFields", "Observation.ResourceType",
		"Observation.ResourceID", "Observation.MarshalJSON", "Observation.UnmarshalJSON",
		"ObservationComponent.OneOfManyFields", "ObservationComponent.MarshalJSON",
	} {
		if !fns[fn] {
			t.Errorf("observation.go is missing %s", fn)
		}
	}
	if fns["ObservationComponent.ResourceType"] {
		t.Error("backbone elements must not implement ResourceType")
	}
	if !strings.Contains(string(files["observation.go"]), `{Field: "status", Ext: "_status"},`) {
		t.Error("observation.go is missing the required status field")
	}

	dt := parseFile(t, "datatypes.go", files["datatypes.go"])
	if diff := cmp.Diff([]string{`"github.com/gofhir/models/pkg/codec"`, `"github.com/gofhir/models/pkg/model"`}, importPaths(dt)); diff != "" {
		t.Errorf("datatypes.go imports mismatch (-want +got):\n%s", diff)
	}
	if !funcNames(dt)["Quantity.MarshalJSON"] {
		t.Error("datatypes.go is missing Quantity.MarshalJSON")
	}
	if got := structFields(dt, "Quantity")["Value"]; got != "*model.Decimal `json:\"value,omitempty\"`" {
		t.Errorf("Quantity.Value = %q", got)
	}

	base := parseFile(t, "base.go", files["base.go"])
	if _, ok := structFields(base, "Element")["<embedded>"]; ok {
		t.Error("Element should not embed a base")
	}
	if got := structFields(base, "BackboneElement")["<embedded>"]; got != "Element" {
		t.Errorf("BackboneElement embeds %q; want Element", got)
	}

	catalog := string(files["types.go"])
	parseFile(t, "types.go", files["types.go"])
	for _, want := range []string{
		"var resourceTypes = []string{\n\t\"Observation\",\n}",
		"case \"ObservationComponent\":\n\t\treturn &ObservationComponent{}",
		"func newResource(resourceType string) model.Resource {",
	} {
		if !strings.Contains(catalog, want) {
			t.Errorf("types.go is missing %q:\n%s", want, catalog)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	written, err := buildObservation(t).WriteFiles(dir)
	if err != nil {
		t.Fatalf("WriteFiles() error = %v", err)
	}
	if diff := cmp.Diff([]string{"base.go", "datatypes.go", "observation.go", "types.go"}, written); diff != "" {
		t.Errorf("WriteFiles() mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(dir, "observation.go")); err != nil {
		t.Errorf("observation.go not written: %v", err)
	}
}
