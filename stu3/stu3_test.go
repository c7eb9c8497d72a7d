package stu3

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

func TestFHIRVersion(t *testing.T) {
	if FHIRVersion != "3.0.2" {
		t.Errorf("FHIRVersion = %q; want 3.0.2", FHIRVersion)
	}
	if !strings.Contains(SubsettedSystem, "hl7.org/fhir/v3/ObservationValue") {
		t.Errorf("SubsettedSystem = %q", SubsettedSystem)
	}
}

func TestPatientAnimal(t *testing.T) {
	seq := (&Patient{}).ElementsSequence()
	want := []string{"contact", "animal", "communication"}
	for i, name := range seq {
		if name == "contact" {
			if diff := cmp.Diff(want, seq[i:i+3]); diff != "" {
				t.Errorf("ElementsSequence() mismatch (-want +got):\n%s", diff)
			}
			return
		}
	}
	t.Fatal("ElementsSequence() has no contact element")
}

func TestObservationChoiceGroups(t *testing.T) {
	groups := (&Observation{}).OneOfManyFields()

	effective, ok := groups.Get("effective")
	if !ok {
		t.Fatal("Observation has no effective[x] group")
	}
	if diff := cmp.Diff([]string{"effectiveDateTime", "effectivePeriod"}, effective.Fields); diff != "" {
		t.Errorf("effective[x] mismatch (-want +got):\n%s", diff)
	}

	value, _ := groups.Get("value")
	if !value.Has("valueAttachment") {
		t.Error("value[x] should allow Attachment")
	}
	if value.Has("valueInteger") {
		t.Error("value[x] should not allow integer")
	}
}

func TestEncounterClassOptional(t *testing.T) {
	f, ok := model.Fields(&Encounter{}).Lookup("class")
	if !ok {
		t.Fatal("Encounter has no class element")
	}
	if f.GoName != "Class" || f.Required {
		t.Errorf("class field = %+v; want optional Class", f)
	}

	data, err := json.Marshal(&Encounter{Status: ptr("planned"), Class: &Coding{Code: ptr("IMP")}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"class":{"code":"IMP"}`) {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestDecodeResource(t *testing.T) {
	in := `{"resourceType":"Task","id":"t1","status":"requested","intent":"order",` +
		`"for":{"reference":"Patient/p1"},` +
		`"contained":[{"resourceType":"Patient","id":"p1","animal":{"species":{"text":"dog"}}}]}`

	r, err := DecodeResource([]byte(in))
	if err != nil {
		t.Fatalf("DecodeResource() error = %v", err)
	}
	task, ok := r.(*Task)
	if !ok {
		t.Fatalf("DecodeResource() = %T; want *Task", r)
	}
	if task.For == nil || task.For.Reference == nil || *task.For.Reference != "Patient/p1" {
		t.Errorf("Task.for = %+v", task.For)
	}
	pat, ok := task.Contained[0].Unwrap().(*Patient)
	if !ok || pat.Animal == nil {
		t.Fatalf("contained = %T; want *Patient with animal", task.Contained[0].Unwrap())
	}

	out, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var want, got map[string]any
	if err := json.Unmarshal([]byte(in), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeResourceErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no resourceType", `{"id":"x"}`, model.ErrNoResourceType},
		{"unknown", `{"resourceType":"Account"}`, model.ErrUnknownResourceType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResource([]byte(tt.in))
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeResource() error = %v; want %v", err, tt.want)
			}
		})
	}
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

func TestMarshalValue(t *testing.T) {
	enc := Encounter{Status: ptr("planned"), Class: &Coding{Code: ptr("IMP")}}
	enc.ID = ptr("e1")

	for _, v := range []any{enc, &enc} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%T) error = %v", v, err)
		}
		want := `{"resourceType":"Encounter","id":"e1","status":"planned","class":{"code":"IMP"}}`
		if string(data) != want {
			t.Errorf("Marshal(%T) = %s; want %s", v, data, want)
		}
	}
}
