package location

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/issue"
)

var patient = []byte(`{
  "resourceType": "Patient",
  "identifier": [
    {
      "system": "http://example.org",
      "value": "12345"
    }
  ],
  "name": [
    {
      "family": "Smith",
      "given": ["John", "James"]
    }
  ],
  "active": true
}`)

func TestLocate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want Position
		ok   bool
	}{
		{"root", "Patient", Position{1, 1}, true},
		{"root element", "Patient.resourceType", Position{2, 19}, true},
		{"array", "Patient.identifier", Position{3, 17}, true},
		{"array item", "Patient.identifier[0]", Position{4, 5}, true},
		{"nested element", "Patient.identifier[0].system", Position{5, 17}, true},
		{"sibling element", "Patient.identifier[0].value", Position{6, 16}, true},
		{"second item", "Patient.name[0].given[1]", Position{12, 25}, true},
		{"no resource type", "name[0].family", Position{11, 17}, true},
		{"after nested arrays", "Patient.active", Position{15, 13}, true},
		{"missing element", "Patient.gender", Position{}, false},
		{"index out of range", "Patient.identifier[1]", Position{}, false},
		{"index on object", "Patient.name[0][0]", Position{}, false},
		{"choice placeholder", "Patient.deceased[x]", Position{}, false},
		{"empty", "", Position{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Locate(patient, tt.expr)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Locate(%q) = %+v, %v; want %+v, %v", tt.expr, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLocateSingleLine(t *testing.T) {
	data := []byte(`{"resourceType":"Observation","component":[{"code":{}},{"code":{"text":"x"}}]}`)
	got, ok := Locate(data, "Observation.component[1].code.text")
	if !ok {
		t.Fatal("Locate() found nothing")
	}
	if want := (Position{Line: 1, Column: 72}); got != want {
		t.Errorf("Locate() = %+v; want %+v", got, want)
	}
}

func TestLocateChoice(t *testing.T) {
	data := []byte(`{"resourceType":"Observation","value":1,"valueString":"x","valueBoolean":true}`)
	got, ok := Locate(data, "Observation.value[x]")
	if !ok {
		t.Fatal("Locate() found nothing")
	}
	if want := (Position{Line: 1, Column: 55}); got != want {
		t.Errorf("Locate() = %+v; want %+v", got, want)
	}

	if got, ok := Nearest([]byte(`{"resourceType":"Observation"}`), "Observation.value[x]"); !ok || got != (Position{1, 1}) {
		t.Errorf("Nearest() = %+v, %v; want the root object", got, ok)
	}
}

func TestLocateInvalidInput(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("  "), []byte(`{"a":`), []byte(`[1,2]`)} {
		if pos, ok := Locate(data, "X.a"); ok {
			t.Errorf("Locate(%q) = %+v; want not found", data, pos)
		}
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		expr string
		want Position
	}{
		{"Patient.identifier[0].period.start", Position{4, 5}},
		{"Patient.gender", Position{1, 1}},
		{"Patient.name[3]", Position{9, 11}},
		{"Patient.deceased[x]", Position{1, 1}},
	}
	for _, tt := range tests {
		got, ok := Nearest(patient, tt.expr)
		if !ok || got != tt.want {
			t.Errorf("Nearest(%q) = %+v, %v; want %+v", tt.expr, got, ok, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	tests := map[string]string{
		"Patient.name[0].given[1]": "Patient.name[0].given",
		"Patient.name[0].given":    "Patient.name[0]",
		"Patient.name[0]":          "Patient.name",
		"Patient.name":             "Patient",
		"Patient":                  "",
	}
	for in, want := range tests {
		if got := parent(in); got != want {
			t.Errorf("parent(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestAnnotate(t *testing.T) {
	issues := []issue.Issue{
		{Expression: []string{"Patient.identifier[0].value"}},
		{Expression: []string{"Patient.gender"}},
		{Diagnostics: "no expression"},
	}
	Annotate(patient, issues)

	type lc struct{ Line, Column int }
	var got []lc
	for _, iss := range issues {
		got = append(got, lc{iss.Line, iss.Column})
	}
	want := []lc{{6, 16}, {1, 1}, {0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Annotate() mismatch (-want +got):\n%s", diff)
	}
}
