// Package issue defines validation issues aligned with FHIR OperationOutcome.
package issue

import "sort"

// Severity represents the severity of a validation issue.
type Severity string

// Severity constants aligned with FHIR IssueSeverity.
const (
	SeverityFatal       Severity = "fatal"
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// rank orders severities from most to least severe.
func (s Severity) rank() int {
	switch s {
	case SeverityFatal:
		return 0
	case SeverityError:
		return 1
	case SeverityWarning:
		return 2
	default:
		return 3
	}
}

// Code represents the type of validation issue (IssueType).
type Code string

// Code constants aligned with FHIR IssueType.
const (
	CodeInvalid       Code = "invalid"
	CodeStructure     Code = "structure"
	CodeRequired      Code = "required"
	CodeValue         Code = "value"
	CodeInvariant     Code = "invariant"
	CodeNotSupported  Code = "not-supported"
	CodeProcessing    Code = "processing"
	CodeNotFound      Code = "not-found"
	CodeTooCostly     Code = "too-costly"
	CodeBusinessRule  Code = "business-rule"
	CodeException     Code = "exception"
	CodeTimeout       Code = "timeout"
	CodeIncomplete    Code = "incomplete"
	CodeInformational Code = "informational"
)

// Issue represents a single validation issue.
type Issue struct {
	// Severity indicates the severity level (error, warning, etc.)
	Severity Severity `json:"severity"`

	// Code indicates the type of issue
	Code Code `json:"code"`

	// Diagnostics is the human-readable description of the issue
	Diagnostics string `json:"diagnostics"`

	// Expression contains FHIRPath expression(s) pointing to the issue location
	Expression []string `json:"expression,omitempty"`

	// Line and Column locate the expression in the JSON input (1-based).
	// Both are 0 when the input is not JSON or the path is not present.
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`

	// Source identifies the rule set that generated this issue
	// (struct, invariant, decode).
	Source string `json:"source,omitempty"`

	// MessageID is the identifier from the diagnostic catalog
	MessageID string `json:"messageId,omitempty"`
}

// Stats contains validation statistics.
type Stats struct {
	// ResourceType is the type of resource validated
	ResourceType string
	// FHIRVersion is the release the resource was validated against
	FHIRVersion string
	// ResourceSize is the size of the input in bytes, when known
	ResourceSize int
	// Duration is the total validation time
	Duration int64 // nanoseconds
	// InvariantsEvaluated is the number of FHIRPath invariants run
	InvariantsEvaluated int
}

// DurationMs returns the duration in milliseconds.
func (s *Stats) DurationMs() float64 {
	return float64(s.Duration) / 1e6
}

// Result holds the collection of issues from validation.
type Result struct {
	Issues []Issue
	Stats  *Stats
}

// defaultIssueCapacity is the pre-allocated capacity for Issues slice.
// Most validations produce fewer than 16 issues.
const defaultIssueCapacity = 16

// NewResult creates a new empty Result with pre-allocated capacity.
func NewResult() *Result {
	return &Result{
		Issues: make([]Issue, 0, defaultIssueCapacity),
	}
}

// AddIssue adds an issue to the result.
func (r *Result) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// AddError adds an error-level issue.
func (r *Result) AddError(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityError,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// AddWarning adds a warning-level issue.
func (r *Result) AddWarning(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityWarning,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// AddInfo adds an information-level issue.
func (r *Result) AddInfo(code Code, diagnostics string, expression ...string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    SeverityInformation,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// HasErrors returns true if there are any error-level issues.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError || issue.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError || issue.Severity == SeverityFatal {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// InfoCount returns the number of information-level issues.
func (r *Result) InfoCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == SeverityInformation {
			count++
		}
	}
	return count
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Filter returns a new Result with only issues matching the given severity.
func (r *Result) Filter(severity Severity) *Result {
	filtered := NewResult()
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			filtered.Issues = append(filtered.Issues, issue)
		}
	}
	return filtered
}

// Escalate turns every warning into an error.
func (r *Result) Escalate() {
	for i := range r.Issues {
		if r.Issues[i].Severity == SeverityWarning {
			r.Issues[i].Severity = SeverityError
		}
	}
}

// Sort orders issues by severity, then by expression. The order within
// equal keys is preserved.
func (r *Result) Sort() {
	sort.SliceStable(r.Issues, func(i, j int) bool {
		a, b := r.Issues[i], r.Issues[j]
		if a.Severity.rank() != b.Severity.rank() {
			return a.Severity.rank() < b.Severity.rank()
		}
		return firstExpression(a) < firstExpression(b)
	})
}

// Truncate keeps at most max issues, most severe first. A trailing
// too-costly information issue records the cut. max <= 0 keeps everything.
func (r *Result) Truncate(max int) {
	if max <= 0 || len(r.Issues) <= max {
		return
	}
	r.Sort()
	dropped := len(r.Issues) - max
	r.Issues = r.Issues[:max]
	r.AddInfoWithID(DiagTooManyIssues, map[string]any{"count": dropped})
}

func firstExpression(i Issue) string {
	if len(i.Expression) == 0 {
		return ""
	}
	return i.Expression[0]
}
