// Package modeltest checks the metadata of generated FHIR types. The release
// packages run it over every type they declare.
package modeltest

import (
	"reflect"
	"slices"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
)

// CheckMetadata verifies that the metadata methods of m agree with each
// other and with the struct definition.
func CheckMetadata(t *testing.T, m model.Model) {
	t.Helper()

	seq := m.ElementsSequence()
	idx := model.Fields(m)

	seen := make(map[string]bool, len(seq))
	for _, name := range seq {
		if seen[name] {
			t.Errorf("%s: %q listed twice in ElementsSequence", m.TypeName(), name)
		}
		seen[name] = true
		if !idx.Has(name) {
			t.Errorf("%s: element %q has no struct field", m.TypeName(), name)
		}
	}

	if !IsOrderedSubset(m.SummaryElementsSequence(), seq) {
		t.Errorf("%s: SummaryElementsSequence %v is not an ordered subset of %v",
			m.TypeName(), m.SummaryElementsSequence(), seq)
	}

	for _, rf := range m.RequiredFields() {
		if !idx.Has(rf.Field) || !idx.Has(rf.Ext) {
			t.Errorf("%s: required pair %s/%s has no struct fields", m.TypeName(), rf.Field, rf.Ext)
		}
		if rf.Ext != "_"+rf.Field {
			t.Errorf("%s: required pair %s/%s is not a value and its shadow", m.TypeName(), rf.Field, rf.Ext)
		}
	}

	for _, g := range m.OneOfManyFields() {
		if len(g.Fields) < 2 {
			t.Errorf("%s: choice group %q has %d fields", m.TypeName(), g.Name, len(g.Fields))
		}
		for _, f := range g.Fields {
			if !seen[f] {
				t.Errorf("%s: choice field %q is not an element", m.TypeName(), f)
			}
			if model.ChoiceBaseName(f) != g.Name {
				t.Errorf("%s: choice field %q does not belong to %q", m.TypeName(), f, g.Name)
			}
		}
	}
}

// IsOrderedSubset reports whether every element of sub appears in seq, in
// the same relative order.
func IsOrderedSubset(sub, seq []string) bool {
	pos := 0
	for _, s := range sub {
		i := slices.Index(seq[pos:], s)
		if i < 0 {
			return false
		}
		pos += i + 1
	}
	return true
}

// CheckRoundTrip populates m, encodes it with codec.Marshal and decodes the
// output with decode. The decoded model must equal m and encode to the same
// bytes.
func CheckRoundTrip(t *testing.T, m model.Model, decode func([]byte) (model.Model, error)) {
	t.Helper()

	Populate(m, 2)
	data, err := codec.Marshal(m)
	if err != nil {
		t.Fatalf("%s: Marshal() error = %v", m.TypeName(), err)
	}
	if !json.Valid(data) {
		t.Fatalf("%s: Marshal() produced invalid JSON: %s", m.TypeName(), data)
	}

	got, err := decode(data)
	if err != nil {
		t.Fatalf("%s: decode error = %v\n%s", m.TypeName(), err, data)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("%s: round trip mismatch (-want +got):\n%s", m.TypeName(), diff)
	}

	again, err := codec.Marshal(got)
	if err != nil {
		t.Fatalf("%s: second Marshal() error = %v", m.TypeName(), err)
	}
	if string(again) != string(data) {
		t.Errorf("%s: second Marshal() =\n%s\nwant\n%s", m.TypeName(), again, data)
	}
}

var wrapperType = reflect.TypeOf((*model.Wrapper)(nil)).Elem()

// Populate sets every element of m, extension shadows included. Nested
// types are filled down to depth levels; contained resources are left
// empty. Strings become "x", integers 1, booleans true and decimals 1.5.
func Populate(m model.Model, depth int) {
	populate(reflect.ValueOf(m).Elem(), m, depth)
}

func populate(v reflect.Value, m model.Model, depth int) {
	idx := model.FieldsOf(v.Type())
	for _, name := range m.ElementsSequence() {
		for _, key := range [2]string{name, "_" + name} {
			if f, ok := idx.Lookup(key); ok {
				fill(v.FieldByIndex(f.Index), depth)
			}
		}
	}
}

// fill sets v to a sample value and reports whether it did.
func fill(v reflect.Value, depth int) bool {
	t := v.Type()
	if t.Implements(wrapperType) {
		return false
	}
	switch t.Kind() {
	case reflect.String:
		if t == reflect.TypeOf(model.Decimal("")) {
			v.SetString("1.5")
		} else {
			v.SetString("x")
		}
	case reflect.Bool:
		v.SetBool(true)
	case reflect.Int, reflect.Int32, reflect.Int64:
		v.SetInt(1)
	case reflect.Pointer:
		p := reflect.New(t.Elem())
		if !fill(p.Elem(), depth) {
			return false
		}
		v.Set(p)
	case reflect.Slice:
		item := reflect.New(t.Elem()).Elem()
		if !fill(item, depth) {
			return false
		}
		v.Set(reflect.Append(reflect.MakeSlice(t, 0, 1), item))
	case reflect.Struct:
		m, ok := v.Addr().Interface().(model.Model)
		if !ok || depth <= 0 {
			return false
		}
		populate(v, m, depth-1)
	default:
		return false
	}
	return true
}
