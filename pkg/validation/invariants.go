package validation

import (
	"fmt"
	"reflect"

	"github.com/gofhir/fhirpath"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
)

// Invariant is a FHIRPath constraint evaluated against a resource.
type Invariant struct {
	// Key identifies the invariant (e.g. "obs-6").
	Key string
	// Context is the resource type the invariant applies to. "DomainResource"
	// matches every resource that can hold contained resources.
	Context string
	// Severity is error or warning.
	Severity issue.Severity
	// Human is the description shown in diagnostics.
	Human string
	// Expression must evaluate to true for a conforming resource.
	Expression string
}

// DomainResourceContext applies an invariant to every domain resource.
const DomainResourceContext = "DomainResource"

var (
	dom2 = Invariant{
		Key: "dom-2", Context: DomainResourceContext, Severity: issue.SeverityError,
		Human:      "If the resource is contained in another resource, it SHALL NOT contain nested Resources",
		Expression: "contained.contained.empty()",
	}
	dom4 = Invariant{
		Key: "dom-4", Context: DomainResourceContext, Severity: issue.SeverityError,
		Human:      "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
		Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()",
	}
	dom5 = Invariant{
		Key: "dom-5", Context: DomainResourceContext, Severity: issue.SeverityError,
		Human:      "If a resource is contained in another resource, it SHALL NOT have a security label",
		Expression: "contained.meta.security.empty()",
	}
	obs6 = Invariant{
		Key: "obs-6", Context: "Observation", Severity: issue.SeverityError,
		Human:      "dataAbsentReason SHALL only be present if Observation.value[x] is not present",
		Expression: "dataAbsentReason.empty() or value.empty()",
	}
)

// BuiltinInvariants returns the invariants checked for a FHIR release.
func BuiltinInvariants(fhirVersion string) []Invariant {
	switch fhirVersion {
	case "3.0.2":
		return []Invariant{dom2, dom4, obs6}
	default:
		return []Invariant{dom2, dom4, dom5, obs6}
	}
}

// invariantsFor returns the invariants applying to r.
func (v *Validator) invariantsFor(r model.Resource) []Invariant {
	out := v.invariants[r.ResourceType()]
	if model.Fields(r).Has("contained") {
		out = append(out[:len(out):len(out)], v.invariants[DomainResourceContext]...)
	}
	return out
}

func (v *Validator) compile(expr string) (*fhirpath.Expression, error) {
	return v.exprs.GetOrLoad(expr, func() (*fhirpath.Expression, error) {
		return fhirpath.Compile(expr)
	})
}

// checkInvariants evaluates the invariants of r and of its contained
// resources. data is the JSON form of r.
func (v *Validator) checkInvariants(r model.Resource, data []byte, path string, result *issue.Result) {
	for _, inv := range v.invariantsFor(r) {
		start := len(result.Issues)
		v.evaluate(inv, data, path, result)
		for i := start; i < len(result.Issues); i++ {
			result.Issues[i].Source = "invariant"
		}
		if result.Stats != nil {
			result.Stats.InvariantsEvaluated++
		}
	}

	for i, c := range contained(r) {
		cdata, err := codec.Marshal(c)
		if err != nil {
			result.AddWithID(issue.DiagEncodeFailed, map[string]any{"type": c.ResourceType(), "error": err}, path)
			continue
		}
		v.checkInvariants(c, cdata, fmt.Sprintf("%s.contained[%d]", path, i), result)
	}
}

func (v *Validator) evaluate(inv Invariant, data []byte, path string, result *issue.Result) {
	expr, err := v.compile(inv.Expression)
	if err != nil {
		result.AddWarningWithID(issue.DiagConstraintCompileError, map[string]any{
			"key":   inv.Key,
			"error": err.Error(),
		}, path)
		return
	}

	got, err := expr.Evaluate(data)
	if err != nil {
		result.AddWarningWithID(issue.DiagConstraintEvalError, map[string]any{
			"key":   inv.Key,
			"error": err.Error(),
		}, path)
		return
	}
	if passed(got) {
		return
	}

	params := map[string]any{
		"key":     inv.Key,
		"human":   inv.Human,
		"details": fmt.Sprintf("Constraint failed: %s: '%s'", inv.Key, inv.Human),
	}
	if inv.Severity == issue.SeverityError {
		result.AddErrorWithID(issue.DiagConstraintFailed, params, path)
	} else {
		result.AddWarningWithID(issue.DiagConstraintFailed, params, path)
	}
	v.log.Debug("invariant %s failed at %s", inv.Key, path)
}

// passed treats an empty result and non-boolean results as satisfied.
func passed(c fhirpath.Collection) bool {
	if c.Empty() {
		return true
	}
	b, err := c.ToBoolean()
	if err != nil {
		return true
	}
	return b
}

// contained returns the resources held in r's "contained" element.
func contained(r model.Resource) []model.Resource {
	rv, ok := model.Value(r, "contained")
	if !ok || rv.Kind() != reflect.Slice {
		return nil
	}
	var out []model.Resource
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i)
		if item.CanAddr() {
			item = item.Addr()
		}
		w, ok := item.Interface().(model.Wrapper)
		if !ok {
			continue
		}
		if c := w.Unwrap(); c != nil {
			out = append(out, c)
		}
	}
	return out
}
