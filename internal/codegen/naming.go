package codegen

import (
	"regexp"
	"strings"

	"github.com/gofhir/models/pkg/model"
)

var (
	wordPattern = regexp.MustCompile(`[A-Z][a-z0-9]*`)

	initialisms = map[string]string{
		"Id":   "ID",
		"Url":  "URL",
		"Uri":  "URI",
		"Uuid": "UUID",
		"Oid":  "OID",
	}
)

// GoName returns the exported Go field name of a JSON element name.
// Names that are Go keywords in lower case ("class", "for", "import")
// become exported identifiers; words listed as initialisms are upper-cased.
func GoName(wire string) string {
	s := upperFirst(wire)
	words := wordPattern.FindAllString(s, -1)
	if strings.Join(words, "") != s {
		return s
	}
	for i, w := range words {
		if up, ok := initialisms[w]; ok {
			words[i] = up
		}
	}
	return strings.Join(words, "")
}

// primitive describes how a FHIR primitive maps to Go.
type primitive struct {
	goType   string
	validate string
}

var primitives = map[string]primitive{
	"base64Binary": {"string", "base64"},
	"boolean":      {"bool", ""},
	"canonical":    {"string", "fhir_uri"},
	"code":         {"string", "fhir_code"},
	"date":         {"string", "fhir_date"},
	"dateTime":     {"string", "fhir_datetime"},
	"decimal":      {"model.Decimal", ""},
	"id":           {"string", "fhir_id"},
	"instant":      {"string", "fhir_instant"},
	"integer":      {"int", ""},
	"markdown":     {"string", ""},
	"oid":          {"string", "fhir_oid"},
	"positiveInt":  {"int", "min=1"},
	"string":       {"string", ""},
	"time":         {"string", "fhir_time"},
	"unsignedInt":  {"int", "min=0"},
	"uri":          {"string", "fhir_uri"},
	"url":          {"string", "fhir_uri"},
	"uuid":         {"string", "fhir_uuid"},
	"xhtml":        {"string", ""},
}

func isPrimitive(code string) bool {
	_, ok := primitives[code]
	return ok
}

// complexGoType maps a FHIR complex type to its Go struct.
func complexGoType(code string) string {
	switch code {
	case "SimpleQuantity", "MoneyQuantity":
		return "Quantity"
	case "Resource":
		return "ResourceContainer"
	}
	return code
}

// typeSuffix is the suffix a choice element gets for code, e.g.
// "dateTime" -> "DateTime".
func typeSuffix(code string) string {
	if isPrimitive(code) {
		return upperFirst(code)
	}
	return upperFirst(complexGoType(code))
}

// recognised reports whether the model package resolves the suffix of the
// choice variant wire back to code.
func recognised(wire, code string) bool {
	if !isPrimitive(code) {
		code = complexGoType(code)
	}
	return model.ChoiceTypeCode(model.ChoiceTypeSuffix(wire)) == code
}

func joinTags(tags ...string) string {
	var out []string
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}
