// Package codec encodes and decodes generated FHIR models and builds the
// _summary and _elements projections of resources.
//
// Projections are driven entirely by the metadata every generated type
// carries: ElementsSequence gives the output order, SummaryElementsSequence
// selects summary members and OneOfManyFields maps choice names such as
// "value" onto their type-suffixed members.
package codec

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/gofhir/models/pkg/model"
)

// Marshal encodes v as FHIR JSON. Generated models, Objects and slices or
// maps of them are written member by member in canonical element order,
// resources with "resourceType" first. Empty elements are omitted.
func Marshal(v any) ([]byte, error) {
	var e encoder
	if err := e.encode(v); err != nil {
		return nil, fmt.Errorf("encode %s: %w", typeName(v), err)
	}
	return e.buf.Bytes(), nil
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, fmt.Errorf("encode %s: %w", typeName(v), err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes FHIR JSON into a generated model.
func Unmarshal(data []byte, m model.Model) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("decode %s: %w", m.TypeName(), err)
	}
	return nil
}

// DecodeResource reads the "resourceType" of data, creates the matching
// resource with factory and decodes data into it.
func DecodeResource(data []byte, factory model.Factory) (model.Resource, error) {
	rt, err := model.PeekResourceType(data)
	if err != nil {
		return nil, err
	}
	r, err := factory(rt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decode %s: %w", rt, err)
	}
	return r, nil
}

func typeName(v any) string {
	if m, ok := v.(model.Model); ok {
		return m.TypeName()
	}
	return fmt.Sprintf("%T", v)
}
