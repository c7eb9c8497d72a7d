// Package stu3 holds the Go types of FHIR STU3 (3.0.2).
//
// Every resource, data type and backbone element is a plain struct that
// implements model.Model. Struct field order follows the specification, so
// encoding a resource yields canonical FHIR JSON. Primitive elements carry
// an extension shadow serialized with a leading underscore.
//
// The type definitions are generated by cmd/fhirgen from the STU3 core
// package. Hand-written helpers live in catalog.go and container.go.
package stu3

// FHIRVersion is the FHIR release implemented by this package.
const FHIRVersion = "3.0.2"
