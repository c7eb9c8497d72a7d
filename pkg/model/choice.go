package model

import (
	"sort"
	"strings"
)

// choiceTypeSuffixes contains the type suffixes a choice element can take
// (value[x] -> valueString, valueCodeableConcept, ...). Sorted longest first
// so that "DateTime" wins over "Time" and "SimpleQuantity" over "Quantity".
var choiceTypeSuffixes = func() []string {
	s := []string{
		// Primitives
		"String", "Boolean", "Integer", "Integer64", "Decimal", "DateTime",
		"Date", "Time", "Instant", "Uri", "Url", "Canonical", "Code", "Id",
		"Markdown", "Base64Binary", "Oid", "Uuid", "PositiveInt", "UnsignedInt",

		// Complex types
		"Address", "Age", "Annotation", "Attachment", "CodeableConcept",
		"CodeableReference", "Coding", "ContactDetail", "ContactPoint",
		"Contributor", "Count", "DataRequirement", "Distance", "Dosage",
		"Duration", "Expression", "HumanName", "Identifier", "Meta", "Money",
		"MoneyQuantity", "ParameterDefinition", "Period", "Quantity", "Range",
		"Ratio", "RatioRange", "Reference", "RelatedArtifact", "SampledData",
		"Signature", "SimpleQuantity", "Timing", "TriggerDefinition",
		"UsageContext",
	}
	sort.SliceStable(s, func(i, j int) bool { return len(s[i]) > len(s[j]) })
	return s
}()

// ChoiceFieldName returns the JSON name of a choice variant, e.g.
// ("value", "dateTime") -> "valueDateTime".
func ChoiceFieldName(base, typeCode string) string {
	return base + upperFirst(typeCode)
}

// ChoiceTypeSuffix returns the type suffix of a choice variant key
// ("String" for "valueString") or "" if key has no known suffix.
func ChoiceTypeSuffix(key string) string {
	for _, suffix := range choiceTypeSuffixes {
		if strings.HasSuffix(key, suffix) && len(key) > len(suffix) {
			return suffix
		}
	}
	return ""
}

// ChoiceBaseName returns the base name of a choice variant key ("value" for
// "valueString") or key itself when it carries no known suffix.
func ChoiceBaseName(key string) string {
	if suffix := ChoiceTypeSuffix(key); suffix != "" {
		return key[:len(key)-len(suffix)]
	}
	return key
}

// ChoiceTypeCode returns the FHIR type code of a choice suffix: primitives
// start lower case ("dateTime"), complex types keep their name.
func ChoiceTypeCode(suffix string) string {
	switch suffix {
	case "String", "Boolean", "Integer", "Integer64", "Decimal", "DateTime",
		"Date", "Time", "Instant", "Uri", "Url", "Canonical", "Code", "Id",
		"Markdown", "Base64Binary", "Oid", "Uuid", "PositiveInt", "UnsignedInt":
		return lowerFirst(suffix)
	}
	return suffix
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
