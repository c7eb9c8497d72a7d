package codec

import (
	"fmt"
	"reflect"

	"bitbucket.org/creachadair/stringset"

	"github.com/gofhir/models/pkg/model"
)

// Code systems of the SUBSETTED tag marking projected resources.
const (
	SubsettedSystemSTU3 = "http://hl7.org/fhir/v3/ObservationValue"
	SubsettedSystemR4   = "http://terminology.hl7.org/CodeSystem/v3-ObservationValue"

	subsettedCode = "SUBSETTED"
)

// SummaryMode selects a _summary projection.
type SummaryMode string

// Summary modes as accepted by the _summary search parameter.
const (
	SummaryTrue  SummaryMode = "true"
	SummaryText  SummaryMode = "text"
	SummaryData  SummaryMode = "data"
	SummaryFalse SummaryMode = "false"
)

// ParseSummaryMode converts a _summary parameter value to a SummaryMode.
// "count" is a search-level mode and is rejected.
func ParseSummaryMode(s string) (SummaryMode, error) {
	switch m := SummaryMode(s); m {
	case SummaryTrue, SummaryText, SummaryData, SummaryFalse:
		return m, nil
	case "":
		return SummaryFalse, nil
	default:
		return "", fmt.Errorf("unsupported _summary mode %q", s)
	}
}

// Option configures projections.
type Option func(*Options)

// Options holds projection settings.
type Options struct {
	// SubsettedSystem is the code system of the SUBSETTED meta tag.
	SubsettedSystem string
	// TagSubsetted adds the SUBSETTED meta tag to projected resources.
	TagSubsetted bool
}

// DefaultOptions returns the default projection settings.
func DefaultOptions() *Options {
	return &Options{
		SubsettedSystem: SubsettedSystemR4,
		TagSubsetted:    true,
	}
}

// WithSubsettedSystem sets the code system of the SUBSETTED tag.
func WithSubsettedSystem(system string) Option {
	return func(o *Options) {
		o.SubsettedSystem = system
	}
}

// WithSubsettedTag enables or disables the SUBSETTED meta tag.
func WithSubsettedTag(enable bool) Option {
	return func(o *Options) {
		o.TagSubsetted = enable
	}
}

func newOptions(opts []Option) *Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Project returns the _summary projection of r for mode. SummaryFalse
// returns every populated element without the SUBSETTED tag.
func Project(r model.Resource, mode SummaryMode, opts ...Option) (*Object, error) {
	switch mode {
	case SummaryTrue:
		return Summary(r, opts...), nil
	case SummaryText:
		return Text(r, opts...), nil
	case SummaryData:
		return Data(r, opts...), nil
	case SummaryFalse, "":
		p := projector{opts: newOptions(append(opts, WithSubsettedTag(false)))}
		return p.resource(r, keepAll, false), nil
	default:
		return nil, fmt.Errorf("unsupported _summary mode %q", mode)
	}
}

// Summary returns the _summary=true projection of r: the summary elements
// of the resource and, recursively, of every nested element, in canonical
// order. Primitive extensions of kept elements are kept.
func Summary(r model.Resource, opts ...Option) *Object {
	p := projector{opts: newOptions(opts)}
	return p.resource(r, summaryOf(r), true)
}

// Data returns the _summary=data projection of r: everything but the
// narrative.
func Data(r model.Resource, opts ...Option) *Object {
	p := projector{opts: newOptions(opts)}
	return p.resource(r, func(name string) bool { return name != "text" }, false)
}

// Text returns the _summary=text projection of r: the narrative, id, meta
// and the mandatory top-level elements.
func Text(r model.Resource, opts ...Option) *Object {
	keep := mandatory(r)
	keep.Add("text", "id", "meta")
	p := projector{opts: newOptions(opts)}
	return p.resource(r, func(name string) bool { return keep.Contains(name) }, false)
}

// Elements returns the _elements projection of r: id, meta and the named
// top-level elements in canonical order. A choice element may be named
// without its type suffix ("value" selects "valueQuantity").
func Elements(r model.Resource, names []string, opts ...Option) *Object {
	want := stringset.New(names...)
	want.Add("id", "meta")
	groups := r.OneOfManyFields()
	keep := func(name string) bool {
		if want.Contains(name) {
			return true
		}
		g, ok := groups.GroupOf(name)
		return ok && want.Contains(g.Name)
	}
	p := projector{opts: newOptions(opts)}
	return p.resource(r, keep, false)
}

// mandatory returns the elements of m with a minimum cardinality of one.
func mandatory(m model.Model) stringset.Set {
	set := stringset.New()
	for _, rf := range m.RequiredFields() {
		set.Add(rf.Field)
	}
	for _, g := range m.OneOfManyFields() {
		if g.Required {
			set.Add(g.Fields...)
		}
	}
	idx := model.Fields(m)
	for _, name := range m.ElementsSequence() {
		if f, ok := idx.Lookup(name); ok && f.Required {
			set.Add(name)
		}
	}
	return set
}

func keepAll(string) bool { return true }

func summaryOf(m model.Model) func(string) bool {
	set := stringset.New(m.SummaryElementsSequence()...)
	return func(name string) bool { return set.Contains(name) }
}

type projector struct {
	opts *Options
}

// resource projects a top-level resource and tags it as subsetted.
func (p projector) resource(r model.Resource, keep func(string) bool, deep bool) *Object {
	obj := p.model(r, keep, deep)
	if !p.opts.TagSubsetted {
		return obj
	}

	meta := NewObject()
	if v, ok := model.Value(r, "meta"); ok && model.HasValue(v) {
		if m, ok := asModel(v); ok {
			meta = p.model(m, keepAll, false)
		}
	}
	meta.Set("tag", p.subsettedTags(r))

	// Rebuild so meta keeps its canonical position right after id.
	out := NewObject()
	for _, k := range obj.Keys() {
		if k == "meta" {
			continue
		}
		v, _ := obj.Get(k)
		out.Set(k, v)
		if k == "id" || (k == "resourceType" && !obj.Has("id")) {
			out.Set("meta", meta)
		}
	}
	return out
}

// subsettedTags returns the existing meta.tag codings of r plus the
// SUBSETTED coding, unless it is already present.
func (p projector) subsettedTags(r model.Resource) []any {
	var tags []any
	present := false

	meta, ok := model.Value(r, "meta")
	if ok && model.HasValue(meta) {
		if tv, ok := model.Value(meta.Interface(), "tag"); ok {
			for i := 0; i < tv.Len(); i++ {
				coding := tv.Index(i)
				if stringField(coding, "code") == subsettedCode && stringField(coding, "system") == p.opts.SubsettedSystem {
					present = true
				}
				tags = append(tags, coding.Addr().Interface())
			}
		}
	}

	if !present {
		tag := NewObject()
		tag.Set("system", p.opts.SubsettedSystem)
		tag.Set("code", subsettedCode)
		tags = append(tags, tag)
	}
	return tags
}

// model projects m onto the elements accepted by keep. With deep set,
// nested elements are projected onto their own summary elements.
func (p projector) model(m model.Model, keep func(string) bool, deep bool) *Object {
	obj := NewObject()
	if r, ok := m.(model.Resource); ok {
		obj.Set("resourceType", r.ResourceType())
	}

	for _, name := range m.ElementsSequence() {
		if !keep(name) {
			continue
		}
		if v, ok := model.Value(m, name); ok && model.HasValue(v) {
			obj.Set(name, p.value(v, deep))
		}
		shadow := "_" + name
		if v, ok := model.Value(m, shadow); ok && model.HasValue(v) {
			obj.Set(shadow, v.Interface())
		}
	}
	return obj
}

func (p projector) value(v reflect.Value, deep bool) any {
	if !deep {
		return v.Interface()
	}

	if w, ok := asWrapper(v); ok {
		if r := w.Unwrap(); r != nil {
			return p.model(r, summaryOf(r), true)
		}
		return nil
	}
	if m, ok := asModel(v); ok {
		return p.model(m, summaryOf(m), true)
	}

	switch v.Kind() {
	case reflect.Slice:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = p.value(v.Index(i), deep)
		}
		return out
	case reflect.Pointer:
		return v.Elem().Interface()
	default:
		return v.Interface()
	}
}

func asModel(v reflect.Value) (model.Model, bool) {
	pv, ok := addressOf(v)
	if !ok {
		return nil, false
	}
	m, ok := pv.Interface().(model.Model)
	return m, ok
}

func asWrapper(v reflect.Value) (model.Wrapper, bool) {
	pv, ok := addressOf(v)
	if !ok {
		return nil, false
	}
	w, ok := pv.Interface().(model.Wrapper)
	return w, ok
}

// addressOf returns a non-nil pointer to the struct held by v.
func addressOf(v reflect.Value) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || v.Elem().Kind() != reflect.Struct {
			return reflect.Value{}, false
		}
		return v, true
	case reflect.Struct:
		if v.CanAddr() {
			return v.Addr(), true
		}
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		return pv, true
	default:
		return reflect.Value{}, false
	}
}

func stringField(v reflect.Value, name string) string {
	f, ok := model.Value(v.Addr().Interface(), name)
	if !ok || f.Kind() != reflect.Pointer || f.IsNil() || f.Elem().Kind() != reflect.String {
		return ""
	}
	return f.Elem().String()
}
