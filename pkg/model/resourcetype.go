package model

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var (
	// ErrUnknownResourceType is returned when a resourceType has no Go type
	// in the requested release.
	ErrUnknownResourceType = errors.New("unknown resource type")

	// ErrUnknownType is returned when a type name has no Go type in the
	// requested release.
	ErrUnknownType = errors.New("unknown type")

	// ErrResourceTypeMismatch is returned when the "resourceType" property
	// does not match the Go type being decoded.
	ErrResourceTypeMismatch = errors.New("resourceType mismatch")

	// ErrNoResourceType is returned when a resource document lacks its
	// "resourceType" property.
	ErrNoResourceType = errors.New("missing resourceType")
)

// PeekResourceType returns the "resourceType" property of a JSON document.
func PeekResourceType(data []byte) (string, error) {
	var peek struct {
		ResourceType string `json:"resourceType"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return "", fmt.Errorf("read resourceType: %w", err)
	}
	if peek.ResourceType == "" {
		return "", ErrNoResourceType
	}
	return peek.ResourceType, nil
}

// CheckResourceType verifies that data declares the resource type want.
// A document without "resourceType" is accepted so that bare element
// payloads can be decoded into resource structs.
func CheckResourceType(data []byte, want string) error {
	got, err := PeekResourceType(data)
	if errors.Is(err, ErrNoResourceType) {
		return nil
	}
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: got %q, want %q", ErrResourceTypeMismatch, got, want)
	}
	return nil
}
