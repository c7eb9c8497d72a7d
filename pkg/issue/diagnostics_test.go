package issue

import "testing"

func TestFormatDiagnostic(t *testing.T) {
	got := FormatDiagnostic(DiagChoiceMultiple, map[string]any{
		"name":  "value",
		"found": "valueString, valueBoolean",
	})
	want := "Only one of the 'value[x]' elements may be present, found valueString, valueBoolean"
	if got != want {
		t.Errorf("FormatDiagnostic() = %q, want %q", got, want)
	}

	if got := FormatDiagnostic("NOT_A_DIAGNOSTIC", nil); got != "NOT_A_DIAGNOSTIC" {
		t.Errorf("FormatDiagnostic(unknown) = %q", got)
	}
}

func TestGetDiagnosticTemplate(t *testing.T) {
	tmpl, ok := GetDiagnosticTemplate(DiagRequiredMissing)
	if !ok {
		t.Fatal("template for REQUIRED_ELEMENT_MISSING not found")
	}
	if tmpl.ID != DiagRequiredMissing {
		t.Errorf("ID = %q, want %q", tmpl.ID, DiagRequiredMissing)
	}
	if tmpl.Code != CodeRequired || tmpl.Severity != SeverityError {
		t.Errorf("template = %+v", tmpl)
	}
}

func TestAddWithID(t *testing.T) {
	r := NewResult()
	r.AddWithID(DiagRequiredMissing, map[string]any{
		"path": "Observation.status",
		"ext":  "_status",
	}, "Observation.status")
	r.AddWithID(DiagStructureUnknownType, map[string]any{"type": "Foo"})

	if len(r.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2", len(r.Issues))
	}
	if r.Issues[0].Severity != SeverityError || r.Issues[0].MessageID != string(DiagRequiredMissing) {
		t.Errorf("Issues[0] = %+v", r.Issues[0])
	}
	if r.Issues[1].Severity != SeverityWarning {
		t.Errorf("Issues[1] severity = %q, want warning", r.Issues[1].Severity)
	}
}

func TestAddWithIDOverrides(t *testing.T) {
	r := NewResult()
	r.AddWarningWithID(DiagConstraintFailed, map[string]any{"details": "obs-6 failed"}, "Observation")
	r.AddErrorWithID(DiagConstraintEvalError, map[string]any{"key": "x", "error": "boom"})
	r.AddInfoWithID("UNKNOWN_ID", nil)

	if r.Issues[0].Severity != SeverityWarning || r.Issues[0].Code != CodeInvariant {
		t.Errorf("Issues[0] = %+v", r.Issues[0])
	}
	if r.Issues[0].Diagnostics != "obs-6 failed" {
		t.Errorf("Issues[0].Diagnostics = %q", r.Issues[0].Diagnostics)
	}
	if r.Issues[1].Severity != SeverityError {
		t.Errorf("Issues[1].Severity = %q, want error", r.Issues[1].Severity)
	}
	if r.Issues[2].Code != CodeInformational || r.Issues[2].MessageID != "" {
		t.Errorf("Issues[2] = %+v", r.Issues[2])
	}
}
