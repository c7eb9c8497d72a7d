package r4b

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/model/modeltest"
)

func ptr[T any](v T) *T { return &v }

func TestMetadata(t *testing.T) {
	for _, name := range Types() {
		t.Run(name, func(t *testing.T) {
			m, err := NewModel(name)
			if err != nil {
				t.Fatalf("NewModel(%q) error = %v", name, err)
			}
			if m.TypeName() != name {
				t.Errorf("TypeName() = %q; want %q", m.TypeName(), name)
			}
			modeltest.CheckMetadata(t, m)
		})
	}
}

func TestResourceTypes(t *testing.T) {
	want := []string{"Encounter", "Observation", "Parameters", "Patient", "StructureMap", "Task"}
	if diff := cmp.Diff(want, ResourceTypes()); diff != "" {
		t.Errorf("ResourceTypes() mismatch (-want +got):\n%s", diff)
	}

	for _, rt := range ResourceTypes() {
		r, err := NewResource(rt)
		if err != nil {
			t.Fatalf("NewResource(%q) error = %v", rt, err)
		}
		if r.ResourceType() != rt {
			t.Errorf("ResourceType() = %q; want %q", r.ResourceType(), rt)
		}
	}

	// The returned slice is a copy.
	ResourceTypes()[0] = "Mutated"
	if ResourceTypes()[0] != "Encounter" {
		t.Error("ResourceTypes() exposes the package slice")
	}
}

func TestNewResourceUnknown(t *testing.T) {
	_, err := NewResource("Appointment")
	if !errors.Is(err, model.ErrUnknownResourceType) {
		t.Errorf("NewResource(Appointment) error = %v; want ErrUnknownResourceType", err)
	}
	_, err = NewModel("Quantityy")
	if !errors.Is(err, model.ErrUnknownType) {
		t.Errorf("NewModel(Quantityy) error = %v; want ErrUnknownType", err)
	}
	if len(Models()) != len(Types()) {
		t.Errorf("len(Models()) = %d; want %d", len(Models()), len(Types()))
	}
}

func TestPatientElementsSequence(t *testing.T) {
	want := []string{
		"id", "meta", "implicitRules", "language", "text", "contained",
		"extension", "modifierExtension", "identifier", "active", "name",
		"telecom", "gender", "birthDate", "deceasedBoolean", "deceasedDateTime",
		"address", "maritalStatus", "multipleBirthBoolean", "multipleBirthInteger",
		"photo", "contact", "communication", "generalPractitioner",
		"managingOrganization", "link",
	}
	if diff := cmp.Diff(want, (&Patient{}).ElementsSequence()); diff != "" {
		t.Errorf("ElementsSequence() mismatch (-want +got):\n%s", diff)
	}

	summary := (&Patient{}).SummaryElementsSequence()
	for _, name := range []string{"id", "meta", "identifier", "name", "birthDate", "link"} {
		if !contains(summary, name) {
			t.Errorf("SummaryElementsSequence() is missing %q", name)
		}
	}
	for _, name := range []string{"text", "contained", "photo", "contact", "communication", "maritalStatus"} {
		if contains(summary, name) {
			t.Errorf("SummaryElementsSequence() should not contain %q", name)
		}
	}
}

func TestObservationChoiceGroups(t *testing.T) {
	groups := (&Observation{}).OneOfManyFields()

	effective, ok := groups.Get("effective")
	if !ok {
		t.Fatal("Observation has no effective[x] group")
	}
	wantEffective := []string{"effectiveDateTime", "effectivePeriod", "effectiveTiming", "effectiveInstant"}
	if diff := cmp.Diff(wantEffective, effective.Fields); diff != "" {
		t.Errorf("effective[x] mismatch (-want +got):\n%s", diff)
	}

	value, ok := groups.Get("value")
	if !ok {
		t.Fatal("Observation has no value[x] group")
	}
	wantValue := []string{
		"valueQuantity", "valueCodeableConcept", "valueString", "valueBoolean",
		"valueInteger", "valueRange", "valueRatio", "valueSampledData",
		"valueTime", "valueDateTime", "valuePeriod",
	}
	if diff := cmp.Diff(wantValue, value.Fields); diff != "" {
		t.Errorf("value[x] mismatch (-want +got):\n%s", diff)
	}

	if g, ok := groups.GroupOf("valueSampledData"); !ok || g.Name != "value" {
		t.Errorf("GroupOf(valueSampledData) = %v, %v", g, ok)
	}
	if g, ok := (&Patient{}).OneOfManyFields().Get("deceased"); !ok || len(g.Fields) != 2 {
		t.Errorf("Patient deceased[x] = %v, %v", g, ok)
	}
}

func TestRequiredFields(t *testing.T) {
	got := (&Observation{}).RequiredFields()
	want := []model.RequiredField{{Field: "status", Ext: "_status"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Observation.RequiredFields() mismatch (-want +got):\n%s", diff)
	}
	if (&Patient{}).RequiredFields() != nil {
		t.Error("Patient.RequiredFields() should be nil")
	}
	if got := (&PatientLink{}).RequiredFields(); len(got) != 1 || got[0].Field != "type" {
		t.Errorf("PatientLink.RequiredFields() = %v", got)
	}
}

func TestKeywordFields(t *testing.T) {
	enc := &Encounter{
		Status: ptr("finished"),
		Class:  &Coding{Code: ptr("AMB")},
	}
	sm := &StructureMap{Import: []string{"http://example.org/StructureMap/base"}}
	task := &Task{For: &Reference{Reference: ptr("Patient/p1")}}

	tests := []struct {
		name string
		r    model.Resource
		want string
	}{
		{"Encounter.class", enc, `"class":{"code":"AMB"}`},
		{"StructureMap.import", sm, `"import":["http://example.org/StructureMap/base"]`},
		{"Task.for", task, `"for":{"reference":"Patient/p1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.r)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("Marshal() = %s; want it to contain %s", data, tt.want)
			}
		})
	}

	f, ok := model.Fields(&Encounter{}).Lookup("class")
	if !ok || f.GoName != "Class" || !f.Required {
		t.Errorf("Encounter class field = %+v, %v", f, ok)
	}
}

func TestMarshalCanonicalOrder(t *testing.T) {
	p := &Patient{
		Active:    ptr(true),
		BirthDate: ptr("1974-12-25"),
		Name:      []HumanName{{Family: ptr("Chalmers"), Given: []string{"Peter", "James"}}},
	}
	p.ID = ptr("example")
	p.Meta = &Meta{VersionID: ptr("1")}
	p.BirthDateExt = &Element{Extension: []Extension{{
		URL:           ptr("http://hl7.org/fhir/StructureDefinition/patient-birthTime"),
		ValueDateTime: ptr("1974-12-25T14:35:45-05:00"),
	}}}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"resourceType":"Patient","id":"example","meta":{"versionId":"1"},` +
		`"active":true,"name":[{"family":"Chalmers","given":["Peter","James"]}],` +
		`"birthDate":"1974-12-25","_birthDate":{"extension":[{"url":"http://hl7.org/fhir/StructureDefinition/patient-birthTime",` +
		`"valueDateTime":"1974-12-25T14:35:45-05:00"}]}}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

const observationJSON = `{
  "resourceType": "Observation",
  "id": "bp",
  "contained": [
    {"resourceType": "Patient", "id": "p1", "active": true}
  ],
  "status": "final",
  "code": {"coding": [{"system": "http://loinc.org", "code": "85354-9"}]},
  "subject": {"reference": "#p1"},
  "effectiveDateTime": "2024-05-01T10:00:00Z",
  "valueQuantity": {"value": 120.50, "unit": "mmHg"},
  "component": [
    {"code": {"text": "systolic"}, "valueInteger": 120}
  ]
}`

func TestDecodeResourceRoundTrip(t *testing.T) {
	r, err := DecodeResource([]byte(observationJSON))
	if err != nil {
		t.Fatalf("DecodeResource() error = %v", err)
	}
	obs, ok := r.(*Observation)
	if !ok {
		t.Fatalf("DecodeResource() = %T; want *Observation", r)
	}

	if id, ok := obs.ResourceID(); !ok || id != "bp" {
		t.Errorf("ResourceID() = %q, %v", id, ok)
	}
	if len(obs.Contained) != 1 {
		t.Fatalf("len(Contained) = %d; want 1", len(obs.Contained))
	}
	pat, ok := obs.Contained[0].Unwrap().(*Patient)
	if !ok {
		t.Fatalf("Contained[0] = %T; want *Patient", obs.Contained[0].Unwrap())
	}
	if pat.Active == nil || !*pat.Active {
		t.Error("contained Patient.active was not decoded")
	}
	if obs.ValueQuantity == nil || obs.ValueQuantity.Value.String() != "120.50" {
		t.Errorf("valueQuantity.value = %v; want 120.50", obs.ValueQuantity)
	}
	if got := model.PopulatedChoices(obs)["value"]; len(got) != 1 || got[0] != "valueQuantity" {
		t.Errorf("PopulatedChoices(value) = %v", got)
	}

	out, err := json.Marshal(obs)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var want, got map[string]any
	if err := json.Unmarshal([]byte(observationJSON), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), `"value":120.50`) {
		t.Errorf("decimal precision lost: %s", out)
	}
}

func TestUnmarshalResourceTypeMismatch(t *testing.T) {
	var p Patient
	err := json.Unmarshal([]byte(`{"resourceType":"Observation","id":"x"}`), &p)
	if !errors.Is(err, model.ErrResourceTypeMismatch) {
		t.Errorf("Unmarshal() error = %v; want ErrResourceTypeMismatch", err)
	}

	// A bare element payload is accepted.
	if err := json.Unmarshal([]byte(`{"id":"x"}`), &p); err != nil {
		t.Errorf("Unmarshal() without resourceType error = %v", err)
	}
}

func TestResourceContainer(t *testing.T) {
	var c ResourceContainer
	if err := json.Unmarshal([]byte(`{"resourceType":"Appointment"}`), &c); !errors.Is(err, model.ErrUnknownResourceType) {
		t.Errorf("Unmarshal(Appointment) error = %v; want ErrUnknownResourceType", err)
	}

	data, err := json.Marshal(ResourceContainer{})
	if err != nil || string(data) != "null" {
		t.Errorf("Marshal(empty) = %s, %v; want null", data, err)
	}

	c = Contain(&Task{Status: ptr("draft"), Intent: ptr("order")})
	data, err = json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.HasPrefix(string(data), `{"resourceType":"Task"`) {
		t.Errorf("Marshal() = %s; want a Task", data)
	}
}

func TestParametersNestedResource(t *testing.T) {
	in := `{"resourceType":"Parameters","parameter":[` +
		`{"name":"return","resource":{"resourceType":"Patient","id":"p2"}},` +
		`{"name":"group","part":[{"name":"flag","valueBoolean":true}]}]}`

	r, err := DecodeResource([]byte(in))
	if err != nil {
		t.Fatalf("DecodeResource() error = %v", err)
	}
	params := r.(*Parameters)
	if len(params.Parameter) != 2 {
		t.Fatalf("len(Parameter) = %d; want 2", len(params.Parameter))
	}
	res := params.Parameter[0].Resource
	if res == nil {
		t.Fatal("parameter resource was not decoded")
	}
	if id, _ := res.Unwrap().ResourceID(); id != "p2" {
		t.Errorf("parameter resource id = %q; want p2", id)
	}
	part := params.Parameter[1].Part
	if len(part) != 1 || part[0].ValueBoolean == nil || !*part[0].ValueBoolean {
		t.Errorf("parameter part = %+v", part)
	}
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func TestMarshalEveryType(t *testing.T) {
	for _, m := range Models() {
		t.Run(m.TypeName(), func(t *testing.T) {
			modeltest.CheckRoundTrip(t, m, func(data []byte) (model.Model, error) {
				out, err := NewModel(m.TypeName())
				if err != nil {
					return nil, err
				}
				return out, codec.Unmarshal(data, out)
			})
		})
	}
}
