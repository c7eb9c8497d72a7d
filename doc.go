// Package models provides Go types for FHIR STU3 (3.0.2) and R4B (4.3.0)
// together with the metadata needed to serialize, project and validate them.
//
// The generated types live in the stu3 and r4b packages. Every resource,
// data type and backbone element is a struct whose field order is the
// canonical FHIR element order and which reports:
//
//   - ElementsSequence: all JSON element names in canonical order
//   - SummaryElementsSequence: the summary subset of those names
//   - RequiredFields: primitives that need a value or an extension
//   - OneOfManyFields: the expansion of each choice element
//
// # Quick Start
//
//	import (
//	    "github.com/gofhir/models"
//	    "github.com/gofhir/models/r4b"
//	)
//
//	obs := &r4b.Observation{Status: &final, Code: &r4b.CodeableConcept{Text: &text}}
//	data, err := json.Marshal(obs)
//
//	rel, _ := models.ForVersion(models.R4B)
//	res, err := rel.DecodeResource(data)
//	summary := rel.Summary(res)
//
// # Validation
//
//	v, err := models.NewValidator(models.R4B, validation.WithMaxIssues(50))
//	result, err := v.ValidateBytes(ctx, data)
//	if result.HasErrors() {
//	    for _, iss := range result.Issues {
//	        fmt.Println(iss.Severity, iss.Diagnostics, iss.Expression, iss.Line, iss.Column)
//	    }
//	}
//
// # Regenerating
//
// The release packages are produced by cmd/fhirgen from the FHIR core NPM
// packages:
//
//	fhirgen generate --version R4B --out r4b
package models
