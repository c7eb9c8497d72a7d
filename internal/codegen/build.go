package codegen

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"bitbucket.org/creachadair/stringset"

	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/registry"
)

// Config selects what Build generates.
type Config struct {
	// Package is the Go package name, e.g. "r4b".
	Package string
	// Resources are the resource types to generate.
	Resources []string
	// DataTypes are generated in addition to the data types the resources
	// reference.
	DataTypes []string
	// OpenTypes expands choice elements whose type is "*".
	OpenTypes []string
	Logger    *logger.Logger
}

// baseTypes are generated first, in this order, as the embedded base chain.
var baseTypes = []string{"Element", "BackboneElement", "Resource", "DomainResource"}

var baseOfBase = map[string]string{
	"Element":         "",
	"BackboneElement": "Element",
	"Resource":        "",
	"DomainResource":  "Resource",
}

type builder struct {
	reg    *registry.Registry
	cfg    Config
	log    *logger.Logger
	specs  map[string]*TypeSpec
	queued stringset.Set
	queue  []string
}

// Build derives the type specifications of cfg.Resources, their data types
// and the base chain from the StructureDefinitions in reg.
func Build(reg *registry.Registry, cfg Config) (*Catalog, error) {
	if cfg.Package == "" {
		return nil, fmt.Errorf("codegen: package name is required")
	}
	b := &builder{
		reg:    reg,
		cfg:    cfg,
		log:    cfg.Logger,
		specs:  make(map[string]*TypeSpec),
		queued: stringset.New(baseTypes...),
	}
	if b.log == nil {
		b.log = logger.Default()
	}

	cat := newCatalog(cfg.Package)
	for _, name := range baseTypes {
		group, err := b.buildRoot(name, KindBase)
		if err != nil {
			return nil, err
		}
		for _, t := range group {
			cat.add(t)
		}
	}

	resources := slices.Clone(cfg.Resources)
	sort.Strings(resources)
	var resourceGroups [][]*TypeSpec
	for _, name := range resources {
		if sd := reg.GetByType(name); sd != nil && sd.Abstract {
			return nil, fmt.Errorf("codegen: %s is abstract", name)
		}
		group, err := b.buildRoot(name, KindResource)
		if err != nil {
			return nil, err
		}
		resourceGroups = append(resourceGroups, group)
	}

	b.enqueue(cfg.DataTypes...)
	var dataGroups [][]*TypeSpec
	for len(b.queue) > 0 {
		name := b.queue[0]
		b.queue = b.queue[1:]
		group, err := b.buildRoot(name, KindDataType)
		if err != nil {
			return nil, err
		}
		dataGroups = append(dataGroups, group)
	}
	sort.Slice(dataGroups, func(i, j int) bool { return dataGroups[i][0].Name < dataGroups[j][0].Name })

	for _, groups := range [][][]*TypeSpec{dataGroups, resourceGroups} {
		for _, group := range groups {
			for _, t := range group {
				cat.add(t)
			}
		}
	}
	b.log.Info("built %d types for package %s (%d resources)", len(cat.Types), cfg.Package, len(resources))
	return cat, nil
}

func (b *builder) enqueue(names ...string) {
	for _, name := range names {
		if b.queued.Contains(name) {
			continue
		}
		b.queued.Add(name)
		b.queue = append(b.queue, name)
	}
}

// buildRoot returns the type for a StructureDefinition followed by its
// backbone elements, depth first.
func (b *builder) buildRoot(name string, kind Kind) ([]*TypeSpec, error) {
	sd := b.reg.GetByType(name)
	if kind == KindDataType {
		sd = b.reg.GetDataType(name)
	}
	if sd == nil || sd.Snapshot == nil {
		return nil, fmt.Errorf("codegen: no StructureDefinition snapshot for %q", name)
	}

	var base, file string
	switch kind {
	case KindBase:
		base, file = baseOfBase[name], "base"
	case KindResource:
		if sd.Kind != registry.KindResource {
			return nil, fmt.Errorf("codegen: %s is a %s, not a resource", name, sd.Kind)
		}
		base, file = "Resource", strings.ToLower(name)
		if b.reg.IsDomainResource(name) {
			base = "DomainResource"
		}
	case KindDataType:
		base, file = "Element", "datatypes"
		if slices.Contains(b.reg.BaseChain(sd.Type), "BackboneElement") {
			base = "BackboneElement"
		}
	}
	t := &TypeSpec{Name: name, Path: name, Kind: kind, Base: base, File: file}
	return b.buildType(t, sd, sd.Type)
}

// buildType fills t from the children of path in sd.
func (b *builder) buildType(t *TypeSpec, sd *registry.StructureDefinition, path string) ([]*TypeSpec, error) {
	b.specs[t.Name] = t
	out := []*TypeSpec{t}

	inherited := stringset.New()
	if t.Base != "" {
		bt, ok := b.specs[t.Base]
		if !ok {
			return nil, fmt.Errorf("codegen: base %s of %s is not built", t.Base, t.Name)
		}
		inherited.Add(bt.Elements...)
	}

	children := sd.Children(path)
	if len(children) == 0 {
		return nil, fmt.Errorf("codegen: %s has no elements", path)
	}
	for _, e := range children {
		if e.Max == "0" {
			continue
		}
		if e.IsChoice() {
			if err := b.addChoice(t, e); err != nil {
				return nil, err
			}
			continue
		}

		wire := e.Name()
		t.Elements = append(t.Elements, wire)
		if e.IsSummary {
			t.Summary = append(t.Summary, wire)
		}
		if inherited.Contains(wire) {
			continue
		}
		nested, err := b.addField(t, sd, e)
		if err != nil {
			return nil, err
		}
		out = append(out, nested...)
	}
	return out, nil
}

func (b *builder) addChoice(t *TypeSpec, e *registry.ElementDefinition) error {
	base := strings.TrimSuffix(e.Name(), "[x]")
	codes := e.TypeCodes()
	if len(codes) == 1 && codes[0] == "*" {
		codes = b.cfg.OpenTypes
	}

	group := ChoiceSpec{Name: base, Required: e.Min >= 1}
	for _, code := range codes {
		wire := base + typeSuffix(code)
		if !recognised(wire, code) {
			b.log.Warn("%s: choice variant %s has no known type suffix", e.Path, wire)
		}
		if p, ok := primitives[code]; ok {
			t.Fields = append(t.Fields,
				FieldSpec{GoName: GoName(wire), GoType: "*" + p.goType, Wire: wire, Validate: joinTags(optional(p.validate), p.validate)},
				FieldSpec{GoName: GoName(wire) + "Ext", GoType: "*Element", Wire: "_" + wire},
			)
		} else if b.reg.IsDataType(complexGoType(code)) {
			t.Fields = append(t.Fields, FieldSpec{GoName: GoName(wire), GoType: "*" + complexGoType(code), Wire: wire})
			b.enqueue(complexGoType(code))
		} else {
			b.log.Debug("%s: skipping choice type %s", e.Path, code)
			continue
		}
		group.Fields = append(group.Fields, wire)
		t.Elements = append(t.Elements, wire)
		if e.IsSummary {
			t.Summary = append(t.Summary, wire)
		}
	}
	if len(group.Fields) == 0 {
		return fmt.Errorf("codegen: choice %s has no supported types", e.Path)
	}
	t.Choices = append(t.Choices, group)
	return nil
}

// addField adds the field of a non-choice element and returns the
// backbone types it introduces.
func (b *builder) addField(t *TypeSpec, sd *registry.StructureDefinition, e *registry.ElementDefinition) ([]*TypeSpec, error) {
	wire := e.Name()
	goName := GoName(wire)
	repeating := e.IsRepeating()
	required := e.Min >= 1

	if ref := e.ContentReferencePath(); ref != "" {
		t.Fields = append(t.Fields, complexField(goName, pathTypeName(ref), wire, repeating, required))
		return nil, nil
	}

	codes := e.TypeCodes()
	if len(codes) != 1 {
		return nil, fmt.Errorf("codegen: %s has %d types", e.Path, len(codes))
	}
	code := codes[0]

	if (code == "BackboneElement" || code == "Element") && len(sd.Children(e.Path)) > 0 {
		nested := &TypeSpec{Name: pathTypeName(e.Path), Path: e.Path, Kind: KindBackbone, Base: code, File: t.File}
		t.Fields = append(t.Fields, complexField(goName, nested.Name, wire, repeating, required))
		return b.buildType(nested, sd, e.Path)
	}

	if p, ok := primitives[code]; ok {
		noShadow := code == "xhtml" || e.HasRepresentation("xmlAttr") || wire == "id"
		switch {
		case repeating:
			t.Fields = append(t.Fields,
				FieldSpec{GoName: goName, GoType: "[]" + p.goType, Wire: wire, Validate: joinTags(optional(p.validate), dive(p.validate), p.validate)},
				FieldSpec{GoName: goName + "Ext", GoType: "[]*Element", Wire: "_" + wire},
			)
		case noShadow:
			v := optional(p.validate)
			if required {
				v = "required"
			}
			t.Fields = append(t.Fields, FieldSpec{GoName: goName, GoType: "*" + p.goType, Wire: wire, Validate: joinTags(v, p.validate)})
		default:
			t.Fields = append(t.Fields,
				FieldSpec{GoName: goName, GoType: "*" + p.goType, Wire: wire, Validate: joinTags(optional(p.validate), p.validate)},
				FieldSpec{GoName: goName + "Ext", GoType: "*Element", Wire: "_" + wire},
			)
			if required {
				t.Required = append(t.Required, wire)
			}
		}
		return nil, nil
	}

	goType := complexGoType(code)
	if code != "Resource" && !b.reg.IsDataType(goType) {
		return nil, fmt.Errorf("codegen: %s has unsupported type %s", e.Path, code)
	}
	if code != "Resource" {
		b.enqueue(goType)
	}
	t.Fields = append(t.Fields, complexField(goName, goType, wire, repeating, required))
	return nil, nil
}

func complexField(goName, goType, wire string, repeating, required bool) FieldSpec {
	f := FieldSpec{GoName: goName, Wire: wire}
	switch {
	case repeating && required:
		f.GoType, f.Validate = "[]"+goType, "required,min=1,dive"
	case repeating:
		f.GoType, f.Validate = "[]"+goType, "omitempty,dive"
	case required:
		f.GoType, f.Validate = "*"+goType, "required"
	default:
		f.GoType = "*" + goType
	}
	return f
}

// optional returns "omitempty" when a value check follows.
func optional(check string) string {
	if check == "" {
		return ""
	}
	return "omitempty"
}

func dive(check string) string {
	if check == "" {
		return ""
	}
	return "dive"
}
