package stu3

import (
	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
)

// ResourceContainer holds a resource of any type, as found in
// DomainResource.contained and Parameters.parameter.resource. The concrete
// type is chosen from "resourceType" when decoding.
type ResourceContainer struct {
	Resource model.Resource
}

// Contain wraps r in a ResourceContainer.
func Contain(r model.Resource) ResourceContainer {
	return ResourceContainer{Resource: r}
}

// Unwrap returns the contained resource.
func (c ResourceContainer) Unwrap() model.Resource {
	return c.Resource
}

func (c ResourceContainer) MarshalJSON() ([]byte, error) {
	if c.Resource == nil {
		return []byte("null"), nil
	}
	return codec.Marshal(c.Resource)
}

func (c *ResourceContainer) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		c.Resource = nil
		return nil
	}
	r, err := codec.DecodeResource(data, NewResource)
	if err != nil {
		return err
	}
	c.Resource = r
	return nil
}
