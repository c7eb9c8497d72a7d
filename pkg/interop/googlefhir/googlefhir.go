// Package googlefhir converts STU3 models to and from the Google FHIR
// protocol buffers (github.com/google/fhir). Conversion goes through the
// FHIR JSON wire format, so both sides agree on every element the JSON
// representation carries.
package googlefhir

import (
	"errors"
	"fmt"

	"github.com/google/fhir/go/fhirversion"
	"github.com/google/fhir/go/jsonformat"
	rpb "github.com/google/fhir/go/proto/google/fhir/proto/stu3/resources_go_proto"
	"google.golang.org/protobuf/proto"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/stu3"
)

// ErrEmptyContainer is returned for a ContainedResource with no resource set.
var ErrEmptyContainer = errors.New("googlefhir: contained resource is empty")

// Converter converts between stu3 resources and STU3 ContainedResource protos.
// A Converter is safe for concurrent use.
type Converter struct {
	unmarshaller *jsonformat.Unmarshaller
	marshaller   *jsonformat.Marshaller
}

// NewConverter returns a Converter. Date and time values without a zone are
// read as UTC.
func NewConverter() (*Converter, error) {
	un, err := jsonformat.NewUnmarshaller("UTC", fhirversion.STU3)
	if err != nil {
		return nil, fmt.Errorf("googlefhir: create unmarshaller: %w", err)
	}
	m, err := jsonformat.NewMarshaller(false, "", "", fhirversion.STU3)
	if err != nil {
		return nil, fmt.Errorf("googlefhir: create marshaller: %w", err)
	}
	return &Converter{unmarshaller: un, marshaller: m}, nil
}

// ToProto converts r to a ContainedResource.
func (c *Converter) ToProto(r model.Resource) (*rpb.ContainedResource, error) {
	data, err := codec.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("googlefhir: encode %s: %w", r.ResourceType(), err)
	}
	return c.UnmarshalJSON(data)
}

// UnmarshalJSON parses a STU3 JSON resource into a ContainedResource.
func (c *Converter) UnmarshalJSON(data []byte) (*rpb.ContainedResource, error) {
	cr, err := c.unmarshaller.UnmarshalR3(data)
	if err != nil {
		return nil, fmt.Errorf("googlefhir: %w", err)
	}
	return cr, nil
}

// FromProto converts cr to the matching stu3 resource.
func (c *Converter) FromProto(cr *rpb.ContainedResource) (model.Resource, error) {
	msg, err := Unwrap(cr)
	if err != nil {
		return nil, err
	}
	data, err := c.marshaller.MarshalResource(msg)
	if err != nil {
		return nil, fmt.Errorf("googlefhir: encode %s: %w", msg.ProtoReflect().Descriptor().Name(), err)
	}
	return stu3.DecodeResource(data)
}

// Unwrap returns the resource message held by cr.
func Unwrap(cr *rpb.ContainedResource) (proto.Message, error) {
	if cr == nil {
		return nil, ErrEmptyContainer
	}
	m := cr.ProtoReflect()
	oneofs := m.Descriptor().Oneofs()
	for i := 0; i < oneofs.Len(); i++ {
		if fd := m.WhichOneof(oneofs.Get(i)); fd != nil {
			return m.Get(fd).Message().Interface(), nil
		}
	}
	return nil, ErrEmptyContainer
}

// ResourceType returns the resourceType of the resource held by cr, or ""
// when cr is empty.
func ResourceType(cr *rpb.ContainedResource) string {
	msg, err := Unwrap(cr)
	if err != nil {
		return ""
	}
	return string(msg.ProtoReflect().Descriptor().Name())
}
