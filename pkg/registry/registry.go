// Package registry indexes FHIR StructureDefinitions for the code generator.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"github.com/gofhir/models/pkg/loader"
)

// StructureDefinition.Kind constants.
const (
	KindResource      = "resource"
	KindComplexType   = "complex-type"
	KindPrimitiveType = "primitive-type"
	KindLogical       = "logical"
)

// DerivationConstraint marks profiles, which are never indexed by type.
const DerivationConstraint = "constraint"

const (
	canonicalBase     = "http://hl7.org/fhir/StructureDefinition/"
	systemTypePrefix  = "http://hl7.org/fhirpath/System."
	fhirTypeExtension = "http://hl7.org/fhir/StructureDefinition/structuredefinition-fhir-type"
)

// StructureDefinition is the subset of a FHIR StructureDefinition the
// generator reads.
type StructureDefinition struct {
	ResourceType   string `json:"resourceType"`
	ID             string `json:"id"`
	URL            string `json:"url"`
	Name           string `json:"name"`
	FHIRVersion    string `json:"fhirVersion"`
	Kind           string `json:"kind"` // resource, complex-type, primitive-type, logical
	Abstract       bool   `json:"abstract"`
	Type           string `json:"type"`
	BaseDefinition string `json:"baseDefinition"`
	Derivation     string `json:"derivation"` // specialization | constraint

	Snapshot *Snapshot `json:"snapshot,omitempty"`
}

// BaseType returns the type name of the base definition, or "" for roots.
func (sd *StructureDefinition) BaseType() string {
	if sd.BaseDefinition == "" {
		return ""
	}
	return sd.BaseDefinition[strings.LastIndex(sd.BaseDefinition, "/")+1:]
}

// Snapshot contains the complete set of ElementDefinitions.
type Snapshot struct {
	Element []ElementDefinition `json:"element"`
}

// ElementDefinition is the subset of a FHIR ElementDefinition the
// generator reads.
type ElementDefinition struct {
	ID             string       `json:"id"`
	Path           string       `json:"path"`
	SliceName      *string      `json:"sliceName,omitempty"`
	Short          string       `json:"short,omitempty"`
	Min            uint32       `json:"min"`
	Max            string       `json:"max"`
	Type           []Type       `json:"type,omitempty"`
	IsModifier     bool         `json:"isModifier,omitempty"`
	IsSummary      bool         `json:"isSummary,omitempty"`
	Representation []string     `json:"representation,omitempty"`
	Constraint     []Constraint `json:"constraint,omitempty"`

	// ContentReference points at the element whose definition this one
	// reuses, e.g. "#Questionnaire.item".
	ContentReference *string `json:"contentReference,omitempty"`
}

// Name returns the last segment of the element path.
func (ed *ElementDefinition) Name() string {
	return ed.Path[strings.LastIndex(ed.Path, ".")+1:]
}

// IsChoice reports whether the element is a choice element (name[x]).
func (ed *ElementDefinition) IsChoice() bool {
	return strings.HasSuffix(ed.Path, "[x]")
}

// IsRepeating reports whether the element may repeat.
func (ed *ElementDefinition) IsRepeating() bool {
	return ed.Max != "" && ed.Max != "0" && ed.Max != "1"
}

// HasRepresentation reports whether the element uses the given
// representation, e.g. "xmlAttr".
func (ed *ElementDefinition) HasRepresentation(r string) bool {
	for _, rep := range ed.Representation {
		if rep == r {
			return true
		}
	}
	return false
}

// ContentReferencePath returns the element path named by ContentReference,
// without the leading '#' or any canonical prefix.
func (ed *ElementDefinition) ContentReferencePath() string {
	if ed.ContentReference == nil {
		return ""
	}
	ref := *ed.ContentReference
	return ref[strings.Index(ref, "#")+1:]
}

// TypeCodes returns the FHIR type codes of the element. FHIRPath system
// types are resolved through the structuredefinition-fhir-type extension.
func (ed *ElementDefinition) TypeCodes() []string {
	codes := make([]string, 0, len(ed.Type))
	for _, t := range ed.Type {
		codes = append(codes, t.FHIRCode())
	}
	return codes
}

// Type represents an allowed type for an element.
type Type struct {
	Code          string      `json:"code"`
	Profile       []string    `json:"profile,omitempty"`
	TargetProfile []string    `json:"targetProfile,omitempty"`
	Extension     []Extension `json:"extension,omitempty"`
}

// FHIRCode returns the FHIR type of t.
func (t Type) FHIRCode() string {
	if !strings.HasPrefix(t.Code, systemTypePrefix) {
		return t.Code
	}
	for _, ext := range t.Extension {
		if ext.URL != fhirTypeExtension {
			continue
		}
		if ext.ValueURL != "" {
			return ext.ValueURL
		}
		if ext.ValueURI != "" {
			return ext.ValueURI
		}
	}
	switch sys := strings.TrimPrefix(t.Code, systemTypePrefix); sys {
	case "DateTime":
		return "dateTime"
	default:
		return strings.ToLower(sys[:1]) + sys[1:]
	}
}

// Extension represents a FHIR extension on a type.
type Extension struct {
	URL         string `json:"url"`
	ValueString string `json:"valueString,omitempty"`
	ValueURL    string `json:"valueUrl,omitempty"`
	ValueURI    string `json:"valueUri,omitempty"`
}

// Constraint represents a FHIRPath constraint/invariant.
type Constraint struct {
	Key        string `json:"key"`
	Severity   string `json:"severity"` // error | warning
	Human      string `json:"human"`
	Expression string `json:"expression"`
}

// Registry holds loaded StructureDefinitions indexed by URL and type.
type Registry struct {
	mu              sync.RWMutex
	byURL           map[string]*StructureDefinition
	byType          map[string]*StructureDefinition
	elementDefCache map[string]*ElementDefinition

	domainResources map[string]bool
}

// New creates a new empty Registry.
func New() *Registry {
	return &Registry{
		byURL:           make(map[string]*StructureDefinition),
		byType:          make(map[string]*StructureDefinition),
		elementDefCache: make(map[string]*ElementDefinition),
		domainResources: make(map[string]bool),
	}
}

// LoadFromPackages adds the StructureDefinitions of packages. The first
// definition of a URL wins.
func (r *Registry) LoadFromPackages(packages []*loader.Package) error {
	for _, pkg := range packages {
		for _, data := range pkg.StructureDefinitions() {
			var sd StructureDefinition
			if err := json.Unmarshal(data, &sd); err != nil {
				return fmt.Errorf("%s#%s: %w", pkg.Name, pkg.Version, err)
			}
			r.Add(&sd)
		}
	}
	return nil
}

// AddJSON parses and adds a StructureDefinition.
func (r *Registry) AddJSON(data []byte) (*StructureDefinition, error) {
	var sd StructureDefinition
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse StructureDefinition: %w", err)
	}
	if sd.ResourceType != "StructureDefinition" {
		return nil, fmt.Errorf("resourceType is %q, not StructureDefinition", sd.ResourceType)
	}
	r.Add(&sd)
	return &sd, nil
}

// Add indexes sd. Profiles are indexed by URL only.
func (r *Registry) Add(sd *StructureDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sd.URL != "" {
		if _, exists := r.byURL[sd.URL]; !exists {
			r.byURL[sd.URL] = sd
		}
	}
	if sd.Type != "" && sd.Derivation != DerivationConstraint {
		if _, exists := r.byType[sd.Type]; !exists {
			r.byType[sd.Type] = sd
		}
	}
	r.buildTypeClassificationCaches()
}

// buildTypeClassificationCaches must be called with mu held.
func (r *Registry) buildTypeClassificationCaches() {
	domainResourceURL := canonicalBase + "DomainResource"
	for typeName, sd := range r.byType {
		if sd.Kind == KindResource && r.inheritsFromUnlocked(sd, domainResourceURL) {
			r.domainResources[typeName] = true
		}
	}
}

// GetByURL returns a StructureDefinition by its canonical URL.
func (r *Registry) GetByURL(url string) *StructureDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byURL[url]
}

// GetByType returns the StructureDefinition of a type name (e.g.
// "Patient", "HumanName").
func (r *Registry) GetByType(typeName string) *StructureDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byType[typeName]
}

// GetElementDefinition returns the ElementDefinition for a path such as
// "Observation.component.code".
func (r *Registry) GetElementDefinition(path string) *ElementDefinition {
	r.mu.RLock()
	cached, ok := r.elementDefCache[path]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	sd := r.GetByType(extractRootType(path))
	if sd == nil || sd.Snapshot == nil {
		return nil
	}
	for i := range sd.Snapshot.Element {
		elem := &sd.Snapshot.Element[i]
		if elem.Path == path && elem.SliceName == nil {
			r.mu.Lock()
			r.elementDefCache[path] = elem
			r.mu.Unlock()
			return elem
		}
	}
	return nil
}

// Children returns the direct child elements of path in snapshot order.
// Slices are skipped.
func (r *Registry) Children(path string) []*ElementDefinition {
	sd := r.GetByType(extractRootType(path))
	if sd == nil {
		return nil
	}
	return sd.Children(path)
}

// Children returns the direct child elements of path in the snapshot,
// in definition order. Slices are skipped.
func (sd *StructureDefinition) Children(path string) []*ElementDefinition {
	if sd.Snapshot == nil {
		return nil
	}
	prefix := path + "."
	var out []*ElementDefinition
	for i := range sd.Snapshot.Element {
		elem := &sd.Snapshot.Element[i]
		if elem.SliceName != nil || !strings.HasPrefix(elem.Path, prefix) {
			continue
		}
		if strings.Contains(elem.Path[len(prefix):], ".") {
			continue
		}
		out = append(out, elem)
	}
	return out
}

// BaseChain returns typeName followed by its ancestors, e.g. Patient,
// DomainResource, Resource.
func (r *Registry) BaseChain(typeName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var chain []string
	for sd := r.byType[typeName]; sd != nil; sd = r.byURL[sd.BaseDefinition] {
		chain = append(chain, sd.Type)
		if sd.BaseDefinition == "" || len(chain) > 16 {
			break
		}
	}
	return chain
}

// Count returns the number of loaded StructureDefinitions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byURL)
}

// TypeCount returns the number of indexed types.
func (r *Registry) TypeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byType)
}

// AllURLs returns all registered URLs, sorted.
func (r *Registry) AllURLs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make([]string, 0, len(r.byURL))
	for url := range r.byURL {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return urls
}

// AllTypes returns all registered type names, sorted.
func (r *Registry) AllTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.byType))
	for t := range r.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// extractRootType extracts the root type from a path like "Patient.name" -> "Patient".
func extractRootType(path string) string {
	for i, c := range path {
		if c == '.' {
			return path[:i]
		}
	}
	return path
}

// GetSDForResource returns the StructureDefinition URL for a resource type.
func GetSDForResource(resourceType string) string {
	return canonicalBase + resourceType
}

// IsResourceType checks if the given type name is a concrete or abstract
// resource type.
func (r *Registry) IsResourceType(typeName string) bool {
	sd := r.GetByType(typeName)
	return sd != nil && sd.Kind == KindResource
}

// IsPrimitiveType checks if the given type name is a FHIR primitive type.
func (r *Registry) IsPrimitiveType(typeName string) bool {
	sd := r.GetByType(typeName)
	return sd != nil && sd.Kind == KindPrimitiveType
}

// IsDataType checks if the given type name is a FHIR complex data type,
// including core profiles such as SimpleQuantity.
func (r *Registry) IsDataType(typeName string) bool {
	return r.GetDataType(typeName) != nil
}

// GetDataType returns the definition of a complex data type. Core profiles
// on another type (SimpleQuantity, and Age or Money in STU3) are not indexed
// by type and are resolved through their canonical URL.
func (r *Registry) GetDataType(typeName string) *StructureDefinition {
	sd := r.GetByType(typeName)
	if sd == nil {
		sd = r.GetByURL(canonicalBase + typeName)
	}
	if sd == nil || sd.Kind != KindComplexType {
		return nil
	}
	return sd
}

// IsDomainResource checks if the given type inherits from DomainResource.
// Bundle, Binary and Parameters inherit directly from Resource.
func (r *Registry) IsDomainResource(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.domainResources[typeName]
}

// inheritsFromUnlocked must be called with mu held.
func (r *Registry) inheritsFromUnlocked(sd *StructureDefinition, baseURL string) bool {
	for depth := 0; sd != nil && depth < 16; depth++ {
		if sd.URL == baseURL || sd.BaseDefinition == baseURL {
			return true
		}
		if sd.BaseDefinition == "" {
			return false
		}
		sd = r.byURL[sd.BaseDefinition]
	}
	return false
}
