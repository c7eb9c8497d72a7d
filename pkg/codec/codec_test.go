package codec_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/r4b"
	"github.com/gofhir/models/stu3"
)

func ptr[T any](v T) *T { return &v }

func observation() *r4b.Observation {
	obs := &r4b.Observation{
		Status: ptr("final"),
		Code:   &r4b.CodeableConcept{Text: ptr("blood pressure")},
		ValueQuantity: &r4b.Quantity{
			Value: ptr(model.Decimal("120.5")),
			Unit:  ptr("mmHg"),
		},
		Note: []r4b.Annotation{{Text: ptr("seated")}},
		Component: []r4b.ObservationComponent{{
			Code:           &r4b.CodeableConcept{Text: ptr("systolic")},
			Interpretation: []r4b.CodeableConcept{{Text: ptr("high")}},
		}},
	}
	obs.ID = ptr("bp")
	obs.Text = &r4b.Narrative{Status: ptr("generated"), Div: ptr(`<div xmlns="http://www.w3.org/1999/xhtml">bp</div>`)}
	return obs
}

func render(t *testing.T, obj *codec.Object) string {
	t.Helper()
	data, err := codec.Marshal(obj)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return string(data)
}

const subsetted = `{"system":"http://terminology.hl7.org/CodeSystem/v3-ObservationValue","code":"SUBSETTED"}`

func TestSummary(t *testing.T) {
	got := render(t, codec.Summary(observation()))
	want := `{"resourceType":"Observation","id":"bp","meta":{"tag":[` + subsetted + `]},` +
		`"status":"final","code":{"text":"blood pressure"},` +
		`"valueQuantity":{"value":120.5,"unit":"mmHg"},` +
		`"component":[{"code":{"text":"systolic"}}]}`
	if got != want {
		t.Errorf("Summary() =\n%s\nwant\n%s", got, want)
	}
}

func TestSummaryKeepsExistingTags(t *testing.T) {
	obs := observation()
	obs.Meta = &r4b.Meta{
		VersionID: ptr("2"),
		Tag:       []r4b.Coding{{System: ptr("http://example.org/tags"), Code: ptr("review")}},
	}

	obj := codec.Summary(obs)
	if diff := cmp.Diff([]string{"resourceType", "id", "meta", "status", "code", "valueQuantity", "component"}, obj.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	meta, _ := obj.Get("meta")
	got := render(t, meta.(*codec.Object))
	want := `{"versionId":"2","tag":[{"system":"http://example.org/tags","code":"review"},` + subsetted + `]}`
	if got != want {
		t.Errorf("meta =\n%s\nwant\n%s", got, want)
	}

	// Projecting twice does not add a second SUBSETTED tag.
	obs.Meta.Tag = append(obs.Meta.Tag, r4b.Coding{
		System: ptr(codec.SubsettedSystemR4),
		Code:   ptr("SUBSETTED"),
	})
	meta, _ = codec.Summary(obs).Get("meta")
	tags, _ := meta.(*codec.Object).Get("tag")
	if n := len(tags.([]any)); n != 2 {
		t.Errorf("len(meta.tag) = %d; want 2", n)
	}
}

func TestSummarySTU3System(t *testing.T) {
	p := &stu3.Patient{Active: ptr(true)}
	got := render(t, codec.Summary(p, codec.WithSubsettedSystem(stu3.SubsettedSystem)))
	want := `{"resourceType":"Patient","meta":{"tag":[{"system":"http://hl7.org/fhir/v3/ObservationValue","code":"SUBSETTED"}]},"active":true}`
	if got != want {
		t.Errorf("Summary() =\n%s\nwant\n%s", got, want)
	}
}

func TestText(t *testing.T) {
	obs := observation()
	obs.StatusExt = &r4b.Element{ID: ptr("s1")}

	obj := codec.Text(obs, codec.WithSubsettedTag(false))
	want := []string{"resourceType", "id", "text", "status", "_status", "code"}
	if diff := cmp.Diff(want, obj.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestData(t *testing.T) {
	obj := codec.Data(observation())
	want := []string{"resourceType", "id", "meta", "status", "code", "valueQuantity", "note", "component"}
	if diff := cmp.Diff(want, obj.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	// Non-summary members of nested elements are kept.
	comp, _ := obj.Get("component")
	data, err := json.Marshal(comp)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"code":{"text":"systolic"},"interpretation":[{"text":"high"}]}]` {
		t.Errorf("component = %s", data)
	}
}

func TestElements(t *testing.T) {
	obj := codec.Elements(observation(), []string{"value", "status"})
	want := []string{"resourceType", "id", "meta", "status", "valueQuantity"}
	if diff := cmp.Diff(want, obj.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	obj = codec.Elements(observation(), []string{"valueQuantity", "unknown"}, codec.WithSubsettedTag(false))
	want = []string{"resourceType", "id", "valueQuantity"}
	if diff := cmp.Diff(want, obj.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestProject(t *testing.T) {
	obs := observation()
	tests := []struct {
		mode    codec.SummaryMode
		hasText bool
		hasMeta bool
	}{
		{codec.SummaryTrue, false, true},
		{codec.SummaryText, true, true},
		{codec.SummaryData, false, true},
		{codec.SummaryFalse, true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			obj, err := codec.Project(obs, tt.mode)
			if err != nil {
				t.Fatalf("Project() error = %v", err)
			}
			if obj.Has("text") != tt.hasText {
				t.Errorf("Has(text) = %v; want %v", obj.Has("text"), tt.hasText)
			}
			if obj.Has("meta") != tt.hasMeta {
				t.Errorf("Has(meta) = %v; want %v", obj.Has("meta"), tt.hasMeta)
			}
		})
	}

	if _, err := codec.Project(obs, "count"); err == nil {
		t.Error("Project(count) should fail")
	}
}

func TestParseSummaryMode(t *testing.T) {
	tests := []struct {
		in      string
		want    codec.SummaryMode
		wantErr bool
	}{
		{"true", codec.SummaryTrue, false},
		{"text", codec.SummaryText, false},
		{"data", codec.SummaryData, false},
		{"false", codec.SummaryFalse, false},
		{"", codec.SummaryFalse, false},
		{"count", "", true},
		{"yes", "", true},
	}
	for _, tt := range tests {
		got, err := codec.ParseSummaryMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSummaryMode(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSummaryMode(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestObject(t *testing.T) {
	o := codec.NewObject()
	o.Set("b", 1)
	o.Set("a", "x")
	o.Set("b", 2)

	if diff := cmp.Diff([]string{"b", "a"}, o.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if got := render(t, o); got != `{"b":2,"a":"x"}` {
		t.Errorf("MarshalJSON() = %s", got)
	}

	o.Delete("b")
	o.Delete("missing")
	if o.Len() != 1 || o.Has("b") {
		t.Errorf("after Delete: Keys() = %v", o.Keys())
	}
	if v, ok := o.Get("a"); !ok || v != "x" {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
}

func TestDecodeResource(t *testing.T) {
	r, err := codec.DecodeResource([]byte(`{"resourceType":"Patient","id":"p"}`), r4b.NewResource)
	if err != nil {
		t.Fatalf("DecodeResource() error = %v", err)
	}
	if _, ok := r.(*r4b.Patient); !ok {
		t.Errorf("DecodeResource() = %T; want *r4b.Patient", r)
	}

	_, err = codec.DecodeResource([]byte(`{"resourceType":"Patient","active":"yes"}`), r4b.NewResource)
	if err == nil {
		t.Error("DecodeResource() should reject a string for a boolean")
	}

	_, err = codec.DecodeResource([]byte(`not json`), r4b.NewResource)
	if err == nil || errors.Is(err, model.ErrNoResourceType) {
		t.Errorf("DecodeResource(not json) error = %v", err)
	}
}

func TestUnmarshal(t *testing.T) {
	var q r4b.Quantity
	if err := codec.Unmarshal([]byte(`{"value":1.50,"unit":"mg"}`), &q); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if q.Value.String() != "1.50" {
		t.Errorf("value = %s; want 1.50", q.Value.String())
	}

	out, err := codec.MarshalIndent(&q, "", "  ")
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"value\": 1.50,\n  \"unit\": \"mg\"\n}"; string(out) != want {
		t.Errorf("MarshalIndent() =\n%s\nwant\n%s", out, want)
	}
}
