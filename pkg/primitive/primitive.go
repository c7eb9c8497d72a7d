// Package primitive describes the FHIR primitive types: their lexical
// patterns and the Go types generated code uses to hold them.
package primitive

import (
	"regexp"
	"sort"

	"github.com/gofhir/models/pkg/issue"
)

// Type codes of the FHIR primitive types.
const (
	Base64Binary = "base64Binary"
	Boolean      = "boolean"
	Canonical    = "canonical"
	Code         = "code"
	Date         = "date"
	DateTime     = "dateTime"
	Decimal      = "decimal"
	ID           = "id"
	Instant      = "instant"
	Integer      = "integer"
	Markdown     = "markdown"
	OID          = "oid"
	PositiveInt  = "positiveInt"
	String       = "string"
	Time         = "time"
	UnsignedInt  = "unsignedInt"
	URI          = "uri"
	URL          = "url"
	UUID         = "uuid"
	XHTML        = "xhtml"
)

// patterns holds the value regex of each primitive as published in the
// StructureDefinition regex extension.
var patterns = map[string]string{
	Base64Binary: `(\s*([0-9a-zA-Z\+/=]){4}\s*)+`,
	Boolean:      `true|false`,
	Canonical:    `\S*`,
	Code:         `[^\s]+(\s[^\s]+)*`,
	Date:         `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1]))?)?`,
	DateTime:     `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1])(T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00)))?)?)?`,
	Decimal:      `-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?`,
	ID:           `[A-Za-z0-9\-\.]{1,64}`,
	Instant:      `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00))`,
	Integer:      `-?([0]|([1-9][0-9]*))`,
	Markdown:     `\s*(\S|\s)*`,
	OID:          `urn:oid:[0-2](\.(0|[1-9][0-9]*))+`,
	PositiveInt:  `\+?[1-9][0-9]*`,
	String:       `[ \r\n\t\S]+`,
	Time:         `([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?`,
	UnsignedInt:  `[0]|([1-9][0-9]*)`,
	URI:          `\S*`,
	URL:          `\S*`,
	UUID:         `urn:uuid:[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`,
	XHTML:        ``,
}

// compiled holds the anchored form of every non-empty pattern.
var compiled = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(patterns))
	for code, p := range patterns {
		if p == "" {
			continue
		}
		m[code] = regexp.MustCompile("^(?:" + p + ")$")
	}
	return m
}()

// IsPrimitive reports whether code names a FHIR primitive type.
func IsPrimitive(code string) bool {
	_, ok := patterns[code]
	return ok
}

// Types returns all primitive type codes, sorted.
func Types() []string {
	codes := make([]string, 0, len(patterns))
	for code := range patterns {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Pattern returns the unanchored value regex of a primitive type.
func Pattern(code string) (string, bool) {
	p, ok := patterns[code]
	return p, ok && p != ""
}

// Valid reports whether value is a lexically valid instance of code.
// Types without a pattern, and unknown codes, accept every value.
func Valid(code, value string) bool {
	re, ok := compiled[code]
	if !ok {
		return true
	}
	return re.MatchString(value)
}

// GoType returns the Go type generated code uses for a primitive.
func GoType(code string) string {
	switch code {
	case Boolean:
		return "bool"
	case Integer, PositiveInt, UnsignedInt:
		return "int"
	case Decimal:
		return "model.Decimal"
	default:
		return "string"
	}
}

// ValidateTag returns the validate struct tag rule checking a primitive, or
// "" when the Go type alone is enough.
func ValidateTag(code string) string {
	switch code {
	case ID:
		return "fhir_id"
	case Code:
		return "fhir_code"
	case Date:
		return "fhir_date"
	case DateTime:
		return "fhir_datetime"
	case Instant:
		return "fhir_instant"
	case Time:
		return "fhir_time"
	case OID:
		return "fhir_oid"
	case UUID:
		return "fhir_uuid"
	case URI, URL, Canonical:
		return "fhir_uri"
	case Base64Binary:
		return "base64"
	case PositiveInt:
		return "min=1"
	case UnsignedInt:
		return "min=0"
	default:
		return ""
	}
}

// Check validates value against the pattern of code and records a format
// issue at path when it does not match.
func Check(code, value, path string, result *issue.Result) bool {
	if Valid(code, value) {
		return true
	}
	result.AddErrorWithID(
		issue.DiagTypeInvalidFormat,
		map[string]any{"value": Truncate(value), "type": code},
		path,
	)
	return false
}

// Truncate shortens a value for display in diagnostics.
func Truncate(value string) string {
	if len(value) > 50 {
		return value[:47] + "..."
	}
	return value
}
