// Package validation checks generated FHIR models against the constraints
// their metadata carries.
//
// Rules come from three sources:
//   - the validate struct tags of the generated types: required complex
//     elements, minimum cardinality and primitive formats;
//   - RequiredFields and OneOfManyFields, enforced as struct-level rules;
//   - FHIRPath invariants, built in per release or added with WithInvariant.
//
// Results are OperationOutcome-shaped issue.Result values whose expressions
// are FHIRPath paths such as "Observation.component[0].code".
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"bitbucket.org/creachadair/stringset"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofhir/fhirpath"

	"github.com/gofhir/models/cache"
	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/location"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/worker"
)

// ErrNoFactory is returned by ValidateBytes when no resource factory is set.
var ErrNoFactory = errors.New("validation: no resource factory configured")

// Validator validates resources of one FHIR release. It is safe for
// concurrent use.
type Validator struct {
	opts       *Options
	validate   *validator.Validate
	invariants map[string][]Invariant
	exprs      *cache.Cache[string, *fhirpath.Expression]
	metrics    *Metrics
	log        *logger.Logger
}

// New creates a Validator for the given generated types, typically the
// Models() of a release package.
func New(types []model.Model, opts ...Option) (*Validator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	validate, err := newValidate(types)
	if err != nil {
		return nil, err
	}

	v := &Validator{
		opts:       o,
		validate:   validate,
		invariants: make(map[string][]Invariant),
		exprs:      cache.New[string, *fhirpath.Expression](o.ExpressionCacheSize),
		metrics:    NewMetrics(),
		log:        o.Logger,
	}
	if v.log == nil {
		v.log = logger.Default()
	}

	if o.ValidateInvariants {
		for _, inv := range append(BuiltinInvariants(o.FHIRVersion), o.Invariants...) {
			if inv.Context == "" || inv.Expression == "" {
				return nil, fmt.Errorf("invariant %q: context and expression are required", inv.Key)
			}
			v.invariants[inv.Context] = append(v.invariants[inv.Context], inv)
		}
	}
	return v, nil
}

// Options returns the configuration of v.
func (v *Validator) Options() Options {
	return *v.opts
}

// Metrics returns the validator counters together with the FHIRPath
// expression cache statistics.
func (v *Validator) Metrics() Snapshot {
	s := v.metrics.Snapshot()
	cs := v.exprs.Stats()
	s.ExpressionCacheHits = cs.Hits
	s.ExpressionCacheMisses = cs.Misses
	s.ExpressionCacheRate = cs.HitRate
	return s
}

// ResetMetrics clears the validator counters.
func (v *Validator) ResetMetrics() {
	v.metrics.Reset()
}

// Validate checks a resource.
func (v *Validator) Validate(ctx context.Context, r model.Resource) (*issue.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	result := v.newResult(r.ResourceType(), 0)

	var data []byte
	if v.opts.ValidateInvariants {
		var err error
		if data, err = codec.Marshal(r); err != nil {
			result.AddWithID(issue.DiagEncodeFailed, map[string]any{"type": r.ResourceType(), "error": err}, r.ResourceType())
		}
	}
	v.check(ctx, r, data, result)
	return v.finish(result, start, nil), nil
}

// ValidateBytes decodes a JSON resource and checks it. Decoding failures
// are reported as issues, not errors.
func (v *Validator) ValidateBytes(ctx context.Context, data []byte) (*issue.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if v.opts.Factory == nil {
		return nil, ErrNoFactory
	}
	start := time.Now()
	result := v.newResult("", len(data))

	r, err := codec.DecodeResource(data, v.opts.Factory)
	if err != nil {
		addDecodeError(err, data, result)
		return v.finish(result, start, nil), nil
	}
	result.Stats.ResourceType = r.ResourceType()

	if v.opts.ValidateUnknownElements {
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err == nil {
			v.unknownElements(obj, reflect.TypeOf(r).Elem(), r.ResourceType(), result)
		}
	}

	v.check(ctx, r, data, result)
	return v.finish(result, start, data), nil
}

// ValidateBatch validates JSON resources on the worker pool. Results keep
// the input order.
func (v *Validator) ValidateBatch(ctx context.Context, resources [][]byte) *worker.BatchResult {
	start := time.Now()
	br := worker.NewBatchValidator(v.ValidateBytes, v.opts.Workers).ValidateBatch(ctx, resources)
	v.log.Debug("validated %d resources in %s (%d with errors)", len(resources), time.Since(start), br.ErrorCount())
	return br
}

func (v *Validator) check(ctx context.Context, r model.Resource, data []byte, result *issue.Result) {
	report(v.validate.StructCtx(ctx, r), result)
	if v.opts.ValidateInvariants && data != nil {
		v.checkInvariants(r, data, r.ResourceType(), result)
	}
}

func (v *Validator) newResult(resourceType string, size int) *issue.Result {
	result := issue.NewResult()
	result.Stats = &issue.Stats{
		ResourceType: resourceType,
		FHIRVersion:  v.opts.FHIRVersion,
		ResourceSize: size,
	}
	return result
}

// finish applies the result options. Issues are placed in source, when
// given, after truncation.
func (v *Validator) finish(result *issue.Result, start time.Time, source []byte) *issue.Result {
	if v.opts.StrictMode {
		result.Escalate()
	}
	result.Sort()
	result.Truncate(v.opts.MaxIssues)
	if v.opts.ReportLocations && source != nil {
		location.Annotate(source, result.Issues)
	}
	elapsed := time.Since(start)
	result.Stats.Duration = elapsed.Nanoseconds()
	v.metrics.Record(result, elapsed)
	return result
}

func addDecodeError(err error, data []byte, result *issue.Result) {
	switch {
	case errors.Is(err, model.ErrNoResourceType):
		result.AddWithID(issue.DiagStructureNoResourceType, nil)
	case errors.Is(err, model.ErrUnknownResourceType):
		rt, _ := model.PeekResourceType(data)
		result.AddWithID(issue.DiagStructureUnknownResource, map[string]any{"type": rt}, rt)
	default:
		result.AddWithID(issue.DiagStructureInvalidJSON, map[string]any{"error": err.Error()})
	}
	for i := range result.Issues {
		result.Issues[i].Source = "decode"
	}
}

var wrapperType = reflect.TypeOf((*model.Wrapper)(nil)).Elem()

// unknownElements reports JSON properties of obj that t does not declare,
// descending into nested elements and contained resources.
func (v *Validator) unknownElements(obj map[string]any, t reflect.Type, path string, result *issue.Result) {
	idx := model.FieldsOf(t)
	known := stringset.New(idx.Names()...)
	if reflect.PointerTo(t).Implements(reflect.TypeOf((*model.Resource)(nil)).Elem()) {
		known.Add("resourceType")
	}

	keys := stringset.New()
	for k := range obj {
		keys.Add(k)
	}
	for _, name := range keys.Diff(known).Elements() {
		result.AddWithID(issue.DiagStructureUnknownElement, map[string]any{"name": name}, path+"."+name)
		result.Issues[len(result.Issues)-1].Source = "decode"
	}

	for _, name := range keys.Elements() {
		f, ok := idx.Lookup(name)
		if !ok {
			continue
		}
		ft := f.Type
		for ft.Kind() == reflect.Pointer || ft.Kind() == reflect.Slice {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct {
			continue
		}

		switch val := obj[name].(type) {
		case map[string]any:
			v.unknownIn(val, ft, path+"."+name, result)
		case []any:
			for i, item := range val {
				if m, ok := item.(map[string]any); ok {
					v.unknownIn(m, ft, fmt.Sprintf("%s.%s[%d]", path, name, i), result)
				}
			}
		}
	}
}

func (v *Validator) unknownIn(obj map[string]any, t reflect.Type, path string, result *issue.Result) {
	if !reflect.PointerTo(t).Implements(wrapperType) {
		v.unknownElements(obj, t, path, result)
		return
	}
	rt, _ := obj["resourceType"].(string)
	r, err := v.opts.Factory(rt)
	if err != nil {
		return
	}
	v.unknownElements(obj, reflect.TypeOf(r).Elem(), path, result)
}
