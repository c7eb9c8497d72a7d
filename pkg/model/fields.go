package model

import (
	"reflect"
	"strings"

	"github.com/gofhir/models/cache"
)

// Field describes one JSON property of a generated struct.
type Field struct {
	// Name is the JSON name (e.g. "birthDate", "_birthDate").
	Name string
	// GoName is the Go struct field name.
	GoName string
	// Index is the reflect index path through embedded base structs.
	Index []int
	// Type is the Go type of the field.
	Type reflect.Type
	// Shadow is true for primitive extension shadows ("_" prefix).
	Shadow bool
	// Required is true when the validate tag demands a value.
	Required bool
}

// FieldIndex maps JSON names to struct fields for one generated type.
type FieldIndex struct {
	fields []Field
	byName map[string]int
}

// fieldIndexes caches indexes per struct type. Generated packages declare a
// few hundred types, so the cache never evicts in practice.
var fieldIndexes = cache.New[reflect.Type, *FieldIndex](1024)

// Fields returns the field index of a generated type. v may be a struct or a
// pointer to one.
func Fields(v any) *FieldIndex {
	return FieldsOf(reflect.TypeOf(v))
}

// FieldsOf returns the field index of a struct type or pointer to struct type.
func FieldsOf(t reflect.Type) *FieldIndex {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return &FieldIndex{byName: map[string]int{}}
	}
	return fieldIndexes.GetOrSet(t, func() *FieldIndex {
		idx := &FieldIndex{byName: make(map[string]int)}
		idx.collect(t, nil)
		return idx
	})
}

func (fi *FieldIndex) collect(t reflect.Type, parent []int) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := append(append([]int(nil), parent...), i)

		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			fi.collect(sf.Type, index)
			continue
		}
		if !sf.IsExported() || name == "" || name == "-" {
			continue
		}
		if _, dup := fi.byName[name]; dup {
			continue
		}

		validate := sf.Tag.Get("validate")
		fi.byName[name] = len(fi.fields)
		fi.fields = append(fi.fields, Field{
			Name:     name,
			GoName:   sf.Name,
			Index:    index,
			Type:     sf.Type,
			Shadow:   strings.HasPrefix(name, "_"),
			Required: validate == "required" || strings.HasPrefix(validate, "required,"),
		})
	}
}

// Lookup returns the field for a JSON name.
func (fi *FieldIndex) Lookup(name string) (Field, bool) {
	i, ok := fi.byName[name]
	if !ok {
		return Field{}, false
	}
	return fi.fields[i], true
}

// Has reports whether the type declares the JSON property name.
func (fi *FieldIndex) Has(name string) bool {
	_, ok := fi.byName[name]
	return ok
}

// Names returns all JSON names in struct order, shadows included.
func (fi *FieldIndex) Names() []string {
	names := make([]string, len(fi.fields))
	for i, f := range fi.fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of JSON properties.
func (fi *FieldIndex) Len() int {
	return len(fi.fields)
}

// Value returns the reflect value of the JSON property name on m.
func Value(m any, name string) (reflect.Value, bool) {
	rv := reflect.ValueOf(m)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	f, ok := FieldsOf(rv.Type()).Lookup(name)
	if !ok {
		return reflect.Value{}, false
	}
	return rv.FieldByIndex(f.Index), true
}

// IsSet reports whether the JSON property name holds a value on m.
func IsSet(m any, name string) bool {
	v, ok := Value(m, name)
	return ok && HasValue(v)
}

// HasValue reports whether a field value would be emitted on the wire.
func HasValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.Len() > 0
	case reflect.Invalid:
		return false
	default:
		return !v.IsZero()
	}
}

// Populated returns the elements of m that hold a value, in canonical order.
// Extension shadows are not reported.
func Populated(m Model) []string {
	var out []string
	for _, name := range m.ElementsSequence() {
		if IsSet(m, name) {
			out = append(out, name)
		}
	}
	return out
}

// PopulatedChoices returns, per choice group, the fields of m that hold a
// value or an extension.
func PopulatedChoices(m Model) map[string][]string {
	out := make(map[string][]string)
	for _, g := range m.OneOfManyFields() {
		for _, f := range g.Fields {
			if IsSet(m, f) || IsSet(m, "_"+f) {
				out[g.Name] = append(out[g.Name], f)
			}
		}
	}
	return out
}
