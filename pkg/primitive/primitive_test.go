package primitive

import (
	"strings"
	"testing"

	"github.com/gofhir/models/pkg/issue"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		value string
		want  bool
	}{
		{"id simple", ID, "example-1.a", true},
		{"id too long", ID, strings.Repeat("a", 65), false},
		{"id with space", ID, "bad id", false},
		{"code", Code, "final", true},
		{"code inner space", Code, "entered in error", true},
		{"code leading space", Code, " final", false},
		{"date year", Date, "2024", true},
		{"date month", Date, "2024-02", true},
		{"date full", Date, "2024-02-29", true},
		{"date bad month", Date, "2024-13-01", false},
		{"dateTime with zone", DateTime, "2024-02-29T10:15:00+01:00", true},
		{"dateTime date only", DateTime, "2024-02-29", true},
		{"dateTime missing zone", DateTime, "2024-02-29T10:15:00", false},
		{"instant", Instant, "2024-02-29T10:15:00.123Z", true},
		{"instant without time", Instant, "2024-02-29", false},
		{"time", Time, "23:59:60", true},
		{"time bad hour", Time, "24:00:00", false},
		{"oid", OID, "urn:oid:2.16.840.1.113883.4.1", true},
		{"oid missing prefix", OID, "2.16.840", false},
		{"uuid", UUID, "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", true},
		{"uuid upper case", UUID, "urn:uuid:C757873D-EC9A-4326-A141-556F43239520", false},
		{"uri", URI, "http://hl7.org/fhir", true},
		{"uri with space", URI, "http://hl7.org/ fhir", false},
		{"base64", Base64Binary, "aGVsbG8=", true},
		{"base64 bad", Base64Binary, "a!", false},
		{"boolean", Boolean, "true", true},
		{"boolean anchored", Boolean, "truefalse", false},
		{"positiveInt", PositiveInt, "0", false},
		{"unsignedInt", UnsignedInt, "0", true},
		{"decimal", Decimal, "1.50", true},
		{"decimal leading zeros", Decimal, "01.5", false},
		{"xhtml has no pattern", XHTML, "<div/>", true},
		{"unknown type", "Quantity", "anything", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.code, tt.value); got != tt.want {
				t.Errorf("Valid(%q, %q) = %v; want %v", tt.code, tt.value, got, tt.want)
			}
		})
	}
}

func TestIsPrimitive(t *testing.T) {
	for _, code := range []string{Boolean, DateTime, XHTML, Canonical} {
		if !IsPrimitive(code) {
			t.Errorf("IsPrimitive(%q) = false; want true", code)
		}
	}
	for _, code := range []string{"Quantity", "Element", ""} {
		if IsPrimitive(code) {
			t.Errorf("IsPrimitive(%q) = true; want false", code)
		}
	}
	if got := len(Types()); got != len(patterns) {
		t.Errorf("len(Types()) = %d; want %d", got, len(patterns))
	}
}

func TestPattern(t *testing.T) {
	if p, ok := Pattern(Code); !ok || p == "" {
		t.Errorf("Pattern(code) = %q, %v; want non-empty, true", p, ok)
	}
	if _, ok := Pattern(XHTML); ok {
		t.Error("Pattern(xhtml) should report no pattern")
	}
}

func TestGoType(t *testing.T) {
	tests := map[string]string{
		Boolean:     "bool",
		Integer:     "int",
		PositiveInt: "int",
		UnsignedInt: "int",
		Decimal:     "model.Decimal",
		DateTime:    "string",
		Canonical:   "string",
	}
	for code, want := range tests {
		if got := GoType(code); got != want {
			t.Errorf("GoType(%q) = %q; want %q", code, got, want)
		}
	}
}

func TestValidateTag(t *testing.T) {
	tests := map[string]string{
		Code:         "fhir_code",
		URL:          "fhir_uri",
		Canonical:    "fhir_uri",
		Base64Binary: "base64",
		PositiveInt:  "min=1",
		String:       "",
		Boolean:      "",
	}
	for code, want := range tests {
		if got := ValidateTag(code); got != want {
			t.Errorf("ValidateTag(%q) = %q; want %q", code, got, want)
		}
	}
}

func TestCheck(t *testing.T) {
	result := issue.NewResult()

	if !Check(Date, "2024-01-01", "Patient.birthDate", result) {
		t.Error("Check() should accept a valid date")
	}
	if Check(Date, "01/01/2024", "Patient.birthDate", result) {
		t.Error("Check() should reject an invalid date")
	}

	if len(result.Issues) != 1 {
		t.Fatalf("len(Issues) = %d; want 1", len(result.Issues))
	}
	iss := result.Issues[0]
	if iss.MessageID != string(issue.DiagTypeInvalidFormat) {
		t.Errorf("MessageID = %q; want %q", iss.MessageID, issue.DiagTypeInvalidFormat)
	}
	if len(iss.Expression) != 1 || iss.Expression[0] != "Patient.birthDate" {
		t.Errorf("Expression = %v; want [Patient.birthDate]", iss.Expression)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short"); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	long := strings.Repeat("x", 60)
	if got := Truncate(long); len(got) != 50 || !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate(long) = %q; want 50 chars ending in ...", got)
	}
}
