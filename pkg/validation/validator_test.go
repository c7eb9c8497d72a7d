package validation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/validation"
	"github.com/gofhir/models/r4b"
	"github.com/gofhir/models/stu3"
)

func ptr[T any](v T) *T { return &v }

func newValidator(t *testing.T, opts ...validation.Option) *validation.Validator {
	t.Helper()
	opts = append([]validation.Option{
		validation.WithFactory(r4b.NewResource),
		validation.WithFHIRVersion(r4b.FHIRVersion),
	}, opts...)
	v, err := validation.New(r4b.Models(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return v
}

// found lists issues as "MESSAGE_ID@expression".
func found(r *issue.Result) []string {
	var out []string
	for _, iss := range r.Issues {
		expr := ""
		if len(iss.Expression) > 0 {
			expr = iss.Expression[0]
		}
		out = append(out, iss.MessageID+"@"+expr)
	}
	return out
}

func TestValidateBytes(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "valid patient",
			in:   `{"resourceType":"Patient","id":"p1","active":true,"name":[{"family":"Chalmers"}],"birthDate":"1974-12-25"}`,
		},
		{
			name: "missing required elements",
			in:   `{"resourceType":"Observation"}`,
			want: []string{"REQUIRED_ELEMENT@Observation.code", "REQUIRED_ELEMENT_MISSING@Observation.status"},
		},
		{
			name: "required value present as extension",
			in: `{"resourceType":"Observation","code":{"text":"bp"},` +
				`"_status":{"extension":[{"url":"http://hl7.org/fhir/StructureDefinition/data-absent-reason","valueCode":"unknown"}]}}`,
		},
		{
			name: "choice with two members",
			in:   `{"resourceType":"Observation","status":"final","code":{"text":"bp"},"valueString":"high","valueBoolean":true}`,
			want: []string{"CHOICE_MULTIPLE@Observation.value[x]"},
		},
		{
			name: "bad date",
			in:   `{"resourceType":"Patient","birthDate":"1974/12/25"}`,
			want: []string{"TYPE_INVALID_FORMAT@Patient.birthDate"},
		},
		{
			name: "nested backbone",
			in:   `{"resourceType":"Encounter","status":"finished","class":{"code":"AMB"},"diagnosis":[{"rank":0}]}`,
			want: []string{"REQUIRED_ELEMENT@Encounter.diagnosis[0].condition", "TYPE_INVALID_POSITIVE_INT@Encounter.diagnosis[0].rank"},
		},
		{
			name: "extension without url",
			in:   `{"resourceType":"Patient","extension":[{"valueString":"x"}]}`,
			want: []string{"REQUIRED_ELEMENT@Patient.extension[0].url"},
		},
		{
			name: "unknown elements",
			in:   `{"resourceType":"Patient","foo":1,"name":[{"family":"X","bogus":true}]}`,
			want: []string{"STRUCTURE_UNKNOWN_ELEMENT@Patient.foo", "STRUCTURE_UNKNOWN_ELEMENT@Patient.name[0].bogus"},
		},
		{
			name: "no resourceType",
			in:   `{"id":"x"}`,
			want: []string{"STRUCTURE_NO_RESOURCE_TYPE@"},
		},
		{
			name: "unknown resourceType",
			in:   `{"resourceType":"Account"}`,
			want: []string{"STRUCTURE_UNKNOWN_RESOURCE@Account"},
		},
		{
			name: "invalid JSON",
			in:   `{"resourceType":`,
			want: []string{"STRUCTURE_INVALID_JSON@"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.ValidateBytes(context.Background(), []byte(tt.in))
			if err != nil {
				t.Fatalf("ValidateBytes() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, found(result)); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
				for _, iss := range result.Issues {
					t.Logf("  [%s] %s @ %v", iss.Severity, iss.Diagnostics, iss.Expression)
				}
			}
		})
	}
}

func TestChoiceDiagnostics(t *testing.T) {
	v := newValidator(t)
	obs := &r4b.Observation{
		Status:       ptr("final"),
		Code:         &r4b.CodeableConcept{Text: ptr("bp")},
		ValueString:  ptr("high"),
		ValueBoolean: ptr(true),
	}

	result, err := v.Validate(context.Background(), obs)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("issues = %v; want one", found(result))
	}
	want := "Only one of the 'value[x]' elements may be present, found valueString, valueBoolean"
	if got := result.Issues[0].Diagnostics; got != want {
		t.Errorf("Diagnostics = %q; want %q", got, want)
	}
	if result.Issues[0].Source != "struct" {
		t.Errorf("Source = %q; want struct", result.Issues[0].Source)
	}
}

func TestValidateEncodesModel(t *testing.T) {
	v := newValidator(t)
	obs := &r4b.Observation{
		Status:       ptr("final"),
		Code:         &r4b.CodeableConcept{Text: ptr("bp")},
		ValueString:  ptr("high"),
		ValueBoolean: ptr(true),
	}
	obs.Extension = []r4b.Extension{{
		URL:       ptr("http://example.org/nested"),
		Extension: []r4b.Extension{{URL: ptr("http://example.org/inner"), ValueString: ptr("x")}},
	}}

	result, err := v.Validate(context.Background(), obs)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if diff := cmp.Diff([]string{"CHOICE_MULTIPLE@Observation.value[x]"}, found(result)); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
	if result.Stats.InvariantsEvaluated == 0 {
		t.Error("invariants were not evaluated")
	}
}

// unencodable is a resource with a member the JSON encoder rejects.
type unencodable struct {
	r4b.DomainResource
	Feed chan int `json:"feed"`
}

func (*unencodable) ElementsSequence() []string { return []string{"id", "feed"} }
func (*unencodable) ResourceType() string       { return "Unencodable" }
func (*unencodable) ResourceID() (string, bool) { return "", false }

func TestValidateEncodeFailure(t *testing.T) {
	v := newValidator(t)
	r := &unencodable{Feed: make(chan int)}

	result, err := v.Validate(context.Background(), r)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if diff := cmp.Diff([]string{"ENCODE_FAILED@Unencodable"}, found(result)); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestContainedResources(t *testing.T) {
	v := newValidator(t)
	in := `{"resourceType":"Observation","status":"final","code":{"text":"bp"},` +
		`"contained":[{"resourceType":"Patient","id":"p","meta":{"versionId":"1"},"gender":" male"}]}`

	result, err := v.ValidateBytes(context.Background(), []byte(in))
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	want := []string{"CONSTRAINT_FAILED@Observation", "TYPE_INVALID_FORMAT@Observation.contained[0].gender"}
	if diff := cmp.Diff(want, found(result)); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
	if result.Issues[0].Source != "invariant" {
		t.Errorf("Source = %q; want invariant", result.Issues[0].Source)
	}
	if result.Stats.InvariantsEvaluated == 0 {
		t.Error("Stats.InvariantsEvaluated = 0")
	}
}

func TestCustomInvariant(t *testing.T) {
	named := validation.Invariant{
		Key:        "pat-1",
		Context:    "Patient",
		Severity:   issue.SeverityWarning,
		Human:      "A patient should have a name",
		Expression: "name.exists()",
	}
	in := []byte(`{"resourceType":"Patient","active":true}`)

	v := newValidator(t, validation.WithInvariant(named))
	result, err := v.ValidateBytes(context.Background(), in)
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if result.WarningCount() != 1 || result.ErrorCount() != 0 {
		t.Fatalf("issues = %v; want one warning", found(result))
	}
	if want := "Constraint failed: pat-1: 'A patient should have a name'"; result.Issues[0].Diagnostics != want {
		t.Errorf("Diagnostics = %q; want %q", result.Issues[0].Diagnostics, want)
	}

	strict := newValidator(t, validation.WithInvariant(named), validation.WithStrictMode(true))
	result, _ = strict.ValidateBytes(context.Background(), in)
	if result.ErrorCount() != 1 {
		t.Errorf("strict ErrorCount() = %d; want 1", result.ErrorCount())
	}

	off := newValidator(t, validation.WithInvariant(named), validation.WithInvariants(false))
	result, _ = off.ValidateBytes(context.Background(), in)
	if len(result.Issues) != 0 {
		t.Errorf("issues with invariants disabled = %v", found(result))
	}
}

func TestInvariantCompileError(t *testing.T) {
	v := newValidator(t, validation.WithInvariant(validation.Invariant{
		Key:        "bad-1",
		Context:    "Patient",
		Severity:   issue.SeverityError,
		Expression: "name.where(",
	}))

	result, err := v.ValidateBytes(context.Background(), []byte(`{"resourceType":"Patient"}`))
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if diff := cmp.Diff([]string{"CONSTRAINT_COMPILE_ERROR@Patient"}, found(result)); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
	if result.Issues[0].Severity != issue.SeverityWarning {
		t.Errorf("Severity = %q; want warning", result.Issues[0].Severity)
	}
}

func TestInvalidInvariant(t *testing.T) {
	_, err := validation.New(r4b.Models(), validation.WithInvariant(validation.Invariant{Key: "x"}))
	if err == nil {
		t.Error("New() should reject an invariant without context")
	}
}

func TestMaxIssues(t *testing.T) {
	v := newValidator(t, validation.WithMaxIssues(2))
	in := `{"resourceType":"Patient","gender":" x","birthDate":"bad","deceasedDateTime":"bad"}`

	result, err := v.ValidateBytes(context.Background(), []byte(in))
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if len(result.Issues) != 3 {
		t.Fatalf("len(Issues) = %d; want 3", len(result.Issues))
	}
	if last := result.Issues[2]; last.MessageID != string(issue.DiagTooManyIssues) {
		t.Errorf("last issue = %+v; want TOO_MANY_ISSUES", last)
	}
}

func TestIssueLocations(t *testing.T) {
	in := []byte("{\n  \"resourceType\": \"Patient\",\n  \"birthDate\": \"1974/12/25\"\n}")

	result, err := newValidator(t).ValidateBytes(context.Background(), in)
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if len(result.Issues) != 1 {
		t.Fatalf("Issues = %v; want one", found(result))
	}
	if iss := result.Issues[0]; iss.Line != 3 || iss.Column != 16 {
		t.Errorf("issue at %d:%d; want 3:16", iss.Line, iss.Column)
	}

	result, err = newValidator(t).ValidateBytes(context.Background(), []byte(`{"resourceType":"Observation"}`))
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	for _, iss := range result.Issues {
		if iss.Line != 1 || iss.Column != 1 {
			t.Errorf("missing element %v at %d:%d; want the enclosing object at 1:1", iss.Expression, iss.Line, iss.Column)
		}
	}

	result, err = newValidator(t, validation.WithLocations(false)).ValidateBytes(context.Background(), in)
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if iss := result.Issues[0]; iss.Line != 0 || iss.Column != 0 {
		t.Errorf("WithLocations(false) issue at %d:%d; want 0:0", iss.Line, iss.Column)
	}
}

func TestChoiceLocation(t *testing.T) {
	in := `{"resourceType":"Observation","status":"final","code":{"text":"bp"},"valueString":"high","valueBoolean":true}`

	result, err := newValidator(t).ValidateBytes(context.Background(), []byte(in))
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if diff := cmp.Diff([]string{"CHOICE_MULTIPLE@Observation.value[x]"}, found(result)); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if iss := result.Issues[0]; iss.Line != 1 || iss.Column != 83 {
		t.Errorf("issue at %d:%d; want the valueString member at 1:83", iss.Line, iss.Column)
	}
}

func TestValidateErrors(t *testing.T) {
	v, err := validation.New(r4b.Models())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := v.ValidateBytes(context.Background(), []byte(`{}`)); !errors.Is(err, validation.ErrNoFactory) {
		t.Errorf("ValidateBytes() error = %v; want ErrNoFactory", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := v.Validate(ctx, &r4b.Patient{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Validate() error = %v; want context.Canceled", err)
	}
}

func TestValidateBatch(t *testing.T) {
	v := newValidator(t, validation.WithWorkers(2))
	docs := [][]byte{
		[]byte(`{"resourceType":"Patient","id":"a"}`),
		[]byte(`{"resourceType":"Observation"}`),
		[]byte(`{"resourceType":"Patient","birthDate":"x"}`),
		[]byte(`{"resourceType":"Task","status":"draft","intent":"order"}`),
	}

	br := v.ValidateBatch(context.Background(), docs)
	if len(br.Results) != len(docs) {
		t.Fatalf("len(Results) = %d; want %d", len(br.Results), len(docs))
	}
	wantErrors := []int{0, 2, 1, 0}
	for i, r := range br.Results {
		if r.ID != []string{"0", "1", "2", "3"}[i] {
			t.Errorf("Results[%d].ID = %q", i, r.ID)
		}
		if got := r.Result.ErrorCount(); got != wantErrors[i] {
			t.Errorf("Results[%d] ErrorCount() = %d; want %d", i, got, wantErrors[i])
		}
	}
	if br.ErrorCount() != 3 {
		t.Errorf("ErrorCount() = %d; want 3", br.ErrorCount())
	}
}

func TestSTU3Rules(t *testing.T) {
	v, err := validation.New(stu3.Models(),
		validation.WithFactory(stu3.NewResource),
		validation.WithFHIRVersion(stu3.FHIRVersion))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Encounter.class is optional before R4.
	result, err := v.ValidateBytes(context.Background(), []byte(`{"resourceType":"Encounter","status":"planned"}`))
	if err != nil {
		t.Fatalf("ValidateBytes() error = %v", err)
	}
	if len(result.Issues) != 0 {
		t.Errorf("issues = %v; want none", found(result))
	}
	if result.Stats.FHIRVersion != "3.0.2" || result.Stats.ResourceType != "Encounter" {
		t.Errorf("Stats = %+v", result.Stats)
	}

	// R4B requires it.
	r4 := newValidator(t)
	result, _ = r4.ValidateBytes(context.Background(), []byte(`{"resourceType":"Encounter","status":"planned"}`))
	if diff := cmp.Diff([]string{"REQUIRED_ELEMENT@Encounter.class"}, found(result)); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltinInvariants(t *testing.T) {
	keys := func(invs []validation.Invariant) []string {
		var out []string
		for _, inv := range invs {
			out = append(out, inv.Key)
		}
		return out
	}
	if diff := cmp.Diff([]string{"dom-2", "dom-4", "obs-6"}, keys(validation.BuiltinInvariants("3.0.2"))); diff != "" {
		t.Errorf("STU3 invariants mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"dom-2", "dom-4", "dom-5", "obs-6"}, keys(validation.BuiltinInvariants("4.3.0"))); diff != "" {
		t.Errorf("R4B invariants mismatch (-want +got):\n%s", diff)
	}
}
