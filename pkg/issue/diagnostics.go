// Package issue provides diagnostic message templates for FHIR validation.
package issue

import (
	"fmt"
	"strings"
)

// DiagnosticID identifies a specific diagnostic message.
type DiagnosticID string

// Diagnostic IDs for decoding and type resolution.
const (
	DiagStructureInvalidJSON     DiagnosticID = "STRUCTURE_INVALID_JSON"
	DiagStructureNoResourceType  DiagnosticID = "STRUCTURE_NO_RESOURCE_TYPE"
	DiagStructureUnknownResource DiagnosticID = "STRUCTURE_UNKNOWN_RESOURCE"
	DiagStructureUnknownType     DiagnosticID = "STRUCTURE_UNKNOWN_TYPE"
	DiagStructureUnknownElement  DiagnosticID = "STRUCTURE_UNKNOWN_ELEMENT"
)

// Diagnostic IDs for required elements and cardinality.
const (
	DiagRequiredMissing DiagnosticID = "REQUIRED_ELEMENT_MISSING"
	DiagRequiredElement DiagnosticID = "REQUIRED_ELEMENT"
	DiagCardinalityMin  DiagnosticID = "CARDINALITY_MIN"
)

// Diagnostic IDs for choice elements.
const (
	DiagChoiceMultiple DiagnosticID = "CHOICE_MULTIPLE"
	DiagChoiceMissing  DiagnosticID = "CHOICE_MISSING"
)

// Diagnostic IDs for primitive values.
const (
	DiagTypeInvalidFormat      DiagnosticID = "TYPE_INVALID_FORMAT"
	DiagTypeInvalidBase64      DiagnosticID = "TYPE_INVALID_BASE64"
	DiagTypeInvalidPositiveInt DiagnosticID = "TYPE_INVALID_POSITIVE_INT"
	DiagTypeInvalidUnsignedInt DiagnosticID = "TYPE_INVALID_UNSIGNED_INT"
)

// Diagnostic IDs for FHIRPath invariants.
const (
	DiagConstraintFailed       DiagnosticID = "CONSTRAINT_FAILED"
	DiagConstraintCompileError DiagnosticID = "CONSTRAINT_COMPILE_ERROR"
	DiagConstraintEvalError    DiagnosticID = "CONSTRAINT_EVAL_ERROR"
)

// Diagnostic IDs for processing limits and failures.
const (
	DiagTooManyIssues  DiagnosticID = "TOO_MANY_ISSUES"
	DiagEncodeFailed   DiagnosticID = "ENCODE_FAILED"
	DiagRuleNotApplied DiagnosticID = "RULE_NOT_APPLIED"
)

// DiagnosticTemplate defines the structure for a diagnostic message.
type DiagnosticTemplate struct {
	ID       DiagnosticID
	Severity Severity
	Code     Code
	Template string
}

// diagnosticTemplates maps diagnostic IDs to their templates.
// Templates use {placeholder} syntax for variable substitution.
var diagnosticTemplates = map[DiagnosticID]DiagnosticTemplate{
	DiagStructureInvalidJSON: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Invalid JSON: {error}",
	},
	DiagStructureNoResourceType: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Missing 'resourceType' property",
	},
	DiagStructureUnknownResource: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Unknown resourceType '{type}'",
	},
	DiagStructureUnknownType: {
		Severity: SeverityWarning,
		Code:     CodeNotSupported,
		Template: "Type '{type}' has no registered rules",
	},
	DiagStructureUnknownElement: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Unknown element '{name}'",
	},

	DiagRequiredMissing: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Element '{path}' is required: a value or an extension in '{ext}' must be present",
	},
	DiagRequiredElement: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Element '{path}' is required",
	},
	DiagCardinalityMin: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Minimum cardinality of '{path}' is {min}, but found {count}",
	},

	DiagChoiceMultiple: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Only one of the '{name}[x]' elements may be present, found {found}",
	},
	DiagChoiceMissing: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "One of the '{name}[x]' elements must be present ({allowed})",
	},

	DiagTypeInvalidFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value '{value}' does not match expected format for type {type}",
	},
	DiagTypeInvalidBase64: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value '{value}' is not valid base64Binary",
	},
	DiagTypeInvalidPositiveInt: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value {value} is not a valid positiveInt (must be >= 1)",
	},
	DiagTypeInvalidUnsignedInt: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value {value} is not a valid unsignedInt (must be >= 0)",
	},

	DiagConstraintFailed: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "{details}",
	},
	DiagConstraintCompileError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Could not compile constraint '{key}': {error}",
	},
	DiagConstraintEvalError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Could not evaluate constraint '{key}': {error}",
	},

	DiagTooManyIssues: {
		Severity: SeverityInformation,
		Code:     CodeTooCostly,
		Template: "{count} further issue(s) were dropped",
	},
	DiagEncodeFailed: {
		Severity: SeverityError,
		Code:     CodeException,
		Template: "Could not encode '{type}': {error}",
	},
	DiagRuleNotApplied: {
		Severity: SeverityError,
		Code:     CodeInvalid,
		Template: "Rule '{tag}' failed for '{path}'",
	},
}

// FormatDiagnostic formats a diagnostic message with the given parameters.
func FormatDiagnostic(id DiagnosticID, params map[string]any) string {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return string(id)
	}
	return formatTemplate(tmpl.Template, params)
}

// GetDiagnosticTemplate returns the template for a diagnostic ID.
func GetDiagnosticTemplate(id DiagnosticID) (DiagnosticTemplate, bool) {
	tmpl, ok := diagnosticTemplates[id]
	if ok {
		tmpl.ID = id
	}
	return tmpl, ok
}

// formatTemplate replaces {placeholder} with values from params.
func formatTemplate(template string, params map[string]any) string {
	result := template
	for key, value := range params {
		placeholder := "{" + key + "}"
		result = strings.ReplaceAll(result, placeholder, fmt.Sprint(value))
	}
	return result
}

// AddWithID adds an issue using a diagnostic template and keeps the
// template's severity.
func (r *Result) AddWithID(id DiagnosticID, params map[string]any, expression ...string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.AddError(CodeProcessing, string(id), expression...)
		return
	}

	r.Issues = append(r.Issues, Issue{
		Severity:    tmpl.Severity,
		Code:        tmpl.Code,
		Diagnostics: formatTemplate(tmpl.Template, params),
		Expression:  expression,
		MessageID:   string(id),
	})
}

// AddErrorWithID adds an error using a diagnostic template.
func (r *Result) AddErrorWithID(id DiagnosticID, params map[string]any, expression ...string) {
	r.addWithSeverity(SeverityError, CodeProcessing, id, params, expression)
}

// AddWarningWithID adds a warning using a diagnostic template.
func (r *Result) AddWarningWithID(id DiagnosticID, params map[string]any, expression ...string) {
	r.addWithSeverity(SeverityWarning, CodeProcessing, id, params, expression)
}

// AddInfoWithID adds an informational message using a diagnostic template.
func (r *Result) AddInfoWithID(id DiagnosticID, params map[string]any, expression ...string) {
	r.addWithSeverity(SeverityInformation, CodeInformational, id, params, expression)
}

func (r *Result) addWithSeverity(sev Severity, fallback Code, id DiagnosticID, params map[string]any, expression []string) {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		r.Issues = append(r.Issues, Issue{
			Severity:    sev,
			Code:        fallback,
			Diagnostics: string(id),
			Expression:  expression,
		})
		return
	}

	r.Issues = append(r.Issues, Issue{
		Severity:    sev,
		Code:        tmpl.Code,
		Diagnostics: formatTemplate(tmpl.Template, params),
		Expression:  expression,
		MessageID:   string(id),
	})
}
