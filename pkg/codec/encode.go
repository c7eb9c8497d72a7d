package codec

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/goccy/go-json"

	"github.com/gofhir/models/pkg/model"
)

// ErrEncode is wrapped by errors of Marshal and MarshalIndent.
var ErrEncode = errors.New("codec: encode failed")

// encoder writes generated models member by member, in ElementsSequence
// order with each extension shadow right after its element. Only scalar
// values reach the JSON library, so recursive types such as Extension and
// contained resources are never compiled as a whole.
type encoder struct {
	buf bytes.Buffer
}

// encode writes v. Encoding problems inside the JSON library surface as
// errors, not panics.
func (e *encoder) encode(v any) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrEncode, p)
		}
	}()
	if err := e.value(reflect.ValueOf(v)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}

func (e *encoder) value(v reflect.Value) error {
	if !v.IsValid() {
		e.buf.WriteString("null")
		return nil
	}
	if v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			e.buf.WriteString("null")
			return nil
		}
	}
	if v.Kind() == reflect.Interface {
		return e.value(v.Elem())
	}

	if o, ok := v.Interface().(*Object); ok {
		return e.object(o)
	}
	if w, ok := asWrapper(v); ok {
		r := w.Unwrap()
		if r == nil {
			e.buf.WriteString("null")
			return nil
		}
		return e.model(r)
	}
	if m, ok := asModel(v); ok {
		return e.model(m)
	}

	switch v.Kind() {
	case reflect.Pointer:
		return e.value(v.Elem())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return e.scalar(v)
		}
		e.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.value(v.Index(i)); err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')
		return nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return e.scalar(v)
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		e.buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.key(k); err != nil {
				return err
			}
			if err := e.value(v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key()))); err != nil {
				return err
			}
		}
		e.buf.WriteByte('}')
		return nil
	default:
		return e.scalar(v)
	}
}

// model writes m with "resourceType" first when m is a resource.
func (e *encoder) model(m model.Model) error {
	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		e.buf.WriteString("null")
		return nil
	}
	rv = rv.Elem()
	idx := model.FieldsOf(rv.Type())

	e.buf.WriteByte('{')
	n := 0
	if r, ok := m.(model.Resource); ok {
		if err := e.key("resourceType"); err != nil {
			return err
		}
		if err := e.scalar(reflect.ValueOf(r.ResourceType())); err != nil {
			return err
		}
		n++
	}
	for _, name := range m.ElementsSequence() {
		for _, key := range [2]string{name, "_" + name} {
			f, ok := idx.Lookup(key)
			if !ok {
				continue
			}
			fv := rv.FieldByIndex(f.Index)
			if !model.HasValue(fv) {
				continue
			}
			if n > 0 {
				e.buf.WriteByte(',')
			}
			if err := e.key(key); err != nil {
				return err
			}
			if err := e.value(fv); err != nil {
				return fmt.Errorf("%s.%s: %w", m.TypeName(), key, err)
			}
			n++
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) object(o *Object) error {
	e.buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.key(k); err != nil {
			return err
		}
		if err := e.value(reflect.ValueOf(o.values[k])); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) key(k string) error {
	if err := e.scalar(reflect.ValueOf(k)); err != nil {
		return err
	}
	e.buf.WriteByte(':')
	return nil
}

func (e *encoder) scalar(v reflect.Value) error {
	data, err := json.Marshal(v.Interface())
	if err != nil {
		return err
	}
	e.buf.Write(data)
	return nil
}
