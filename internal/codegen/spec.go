// Package codegen derives Go type specifications from FHIR
// StructureDefinitions and renders them as a release package.
package codegen

import (
	"fmt"
	"strings"
)

// Kind classifies a generated type.
type Kind int

const (
	KindBase Kind = iota
	KindDataType
	KindResource
	KindBackbone
)

func (k Kind) String() string {
	switch k {
	case KindBase:
		return "base"
	case KindDataType:
		return "datatype"
	case KindResource:
		return "resource"
	case KindBackbone:
		return "backbone"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TypeSpec is everything needed to render one Go struct and its metadata
// methods.
type TypeSpec struct {
	Name string
	// Path is the FHIR element path, e.g. "Observation.component".
	Path string
	Kind Kind
	// Base is the embedded base struct, empty for Element and Resource.
	Base string
	// File is the output file name without extension.
	File string

	Fields   []FieldSpec
	Elements []string
	Summary  []string
	Required []string
	Choices  []ChoiceSpec
}

// Doc returns the doc comment of the type.
func (t *TypeSpec) Doc() string {
	switch t.Kind {
	case KindResource:
		return fmt.Sprintf("// %s is the FHIR %s resource.", t.Name, t.Name)
	case KindDataType:
		return fmt.Sprintf("// %s is the FHIR %s data type.", t.Name, t.Name)
	case KindBackbone:
		return fmt.Sprintf("// %s is the %s backbone element.", t.Name, t.Path)
	}
	return fmt.Sprintf("// %s is the base definition of %s.", t.Name, baseDocs[t.Name])
}

var baseDocs = map[string]string{
	"Element":         "all elements",
	"BackboneElement": "elements with modifier extensions",
	"Resource":        "all resources",
	"DomainResource":  "resources with narrative, contained resources and extensions",
}

// FieldSpec is one struct field.
type FieldSpec struct {
	GoName   string
	GoType   string
	Wire     string
	Validate string
}

// Tag returns the struct tag including backquotes.
func (f FieldSpec) Tag() string {
	tag := fmt.Sprintf(`json:"%s,omitempty"`, f.Wire)
	if f.Validate != "" {
		tag += fmt.Sprintf(` validate:"%s"`, f.Validate)
	}
	return "`" + tag + "`"
}

// ChoiceSpec is the expansion of one choice element.
type ChoiceSpec struct {
	Name     string
	Fields   []string
	Required bool
}

// Catalog is the ordered set of types of one release package.
type Catalog struct {
	Package string
	Types   []*TypeSpec
	byName  map[string]*TypeSpec
}

func newCatalog(pkg string) *Catalog {
	return &Catalog{Package: pkg, byName: make(map[string]*TypeSpec)}
}

func (c *Catalog) add(t *TypeSpec) {
	c.Types = append(c.Types, t)
	c.byName[t.Name] = t
}

// Lookup returns the type named name.
func (c *Catalog) Lookup(name string) (*TypeSpec, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// ResourceTypes returns the concrete resource names, in catalog order.
func (c *Catalog) ResourceTypes() []string {
	var out []string
	for _, t := range c.Types {
		if t.Kind == KindResource {
			out = append(out, t.Name)
		}
	}
	return out
}

// pathTypeName turns an element path into a type name:
// "Observation.referenceRange" -> "ObservationReferenceRange".
func pathTypeName(path string) string {
	var b strings.Builder
	for _, seg := range strings.Split(path, ".") {
		b.WriteString(upperFirst(seg))
	}
	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
