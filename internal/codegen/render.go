package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

const header = "// Code generated by fhirgen. DO NOT EDIT.\n"

var templates = template.Must(template.New("file").Funcs(template.FuncMap{
	"strings":  stringList,
	"literal":  stringLiteral,
	"required": requiredList,
	"choices":  choiceList,
	"resource": func(k Kind) bool { return k == KindResource },
}).Parse(`{{template "header"}}
package {{.Package}}

import (
{{- if .JSON}}
	"github.com/goccy/go-json"
{{end}}
	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/pkg/model"
)

{{- range .Types}}
{{template "type" .}}
{{- end}}
{{define "header"}}` + header + `{{end}}
{{define "type"}}
{{.Doc}}
type {{.Name}} struct {
{{- if .Base}}
	{{.Base}}
{{- if .Fields}}
{{end}}
{{- end}}
{{- range .Fields}}
	{{.GoName}} {{.GoType}} {{.Tag}}
{{- end}}
}

func (*{{.Name}}) TypeName() string { return "{{.Name}}" }

func (*{{.Name}}) ElementsSequence() []string {
	{{strings .Elements}}
}

func (*{{.Name}}) SummaryElementsSequence() []string {
	{{strings .Summary}}
}

func (*{{.Name}}) RequiredFields() []model.RequiredField {
	{{required .Required}}
}

func (*{{.Name}}) OneOfManyFields() model.ChoiceGroups {
	{{choices .Choices}}
}

func (v {{.Name}}) MarshalJSON() ([]byte, error) {
	return codec.Marshal(&v)
}
{{- if resource .Kind}}

func (*{{.Name}}) ResourceType() string { return "{{.Name}}" }

func (r *{{.Name}}) ResourceID() (string, bool) {
	if r.ID == nil {
		return "", false
	}
	return *r.ID, true
}

func (r *{{.Name}}) UnmarshalJSON(data []byte) error {
	if err := model.CheckResourceType(data, "{{.Name}}"); err != nil {
		return err
	}
	type raw {{.Name}}
	return json.Unmarshal(data, (*raw)(r))
}
{{- end}}
{{end}}
{{define "catalog"}}{{template "header"}}
package {{.Package}}

import "github.com/gofhir/models/pkg/model"

// resourceTypes lists every resource type of the package, sorted.
var resourceTypes = {{literal .Resources}}

// typeNames lists every generated type of the package, sorted.
var typeNames = {{literal .Names}}

func newResource(resourceType string) model.Resource {
	switch resourceType {
{{- range .Resources}}
	case "{{.}}":
		return &{{.}}{}
{{- end}}
	}
	return nil
}

func newModel(typeName string) model.Model {
	switch typeName {
{{- range .Names}}
	case "{{.}}":
		return &{{.}}{}
{{- end}}
	}
	return nil
}
{{end}}`))

func stringList(names []string) string {
	if len(names) == 0 {
		return "return nil"
	}
	return "return " + stringLiteral(names)
}

func stringLiteral(names []string) string {
	var b strings.Builder
	b.WriteString("[]string{\n")
	for _, n := range names {
		fmt.Fprintf(&b, "%q,\n", n)
	}
	b.WriteString("}")
	return b.String()
}

func requiredList(fields []string) string {
	if len(fields) == 0 {
		return "return nil"
	}
	var b strings.Builder
	b.WriteString("return []model.RequiredField{\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "{Field: %q, Ext: %q},\n", f, "_"+f)
	}
	b.WriteString("}")
	return b.String()
}

func choiceList(groups []ChoiceSpec) string {
	if len(groups) == 0 {
		return "return nil"
	}
	var b strings.Builder
	b.WriteString("return model.ChoiceGroups{\n")
	for _, g := range groups {
		quoted := make([]string, len(g.Fields))
		for i, f := range g.Fields {
			quoted[i] = fmt.Sprintf("%q", f)
		}
		fmt.Fprintf(&b, "{Name: %q, Fields: []string{%s}", g.Name, strings.Join(quoted, ", "))
		if g.Required {
			b.WriteString(", Required: true")
		}
		b.WriteString("},\n")
	}
	b.WriteString("}")
	return b.String()
}

type fileData struct {
	Package string
	JSON    bool
	Types   []*TypeSpec
}

type catalogData struct {
	Package   string
	Resources []string
	Names     []string
}

// Files renders the catalog into gofmt'ed Go source, keyed by file name.
// Types are grouped by TypeSpec.File; types.go holds the type catalog.
func (c *Catalog) Files() (map[string][]byte, error) {
	var order []string
	groups := make(map[string]*fileData)
	for _, t := range c.Types {
		fd, ok := groups[t.File]
		if !ok {
			fd = &fileData{Package: c.Package}
			groups[t.File] = fd
			order = append(order, t.File)
		}
		fd.Types = append(fd.Types, t)
		if t.Kind == KindResource {
			fd.JSON = true
		}
	}

	out := make(map[string][]byte, len(order)+1)
	for _, name := range order {
		src, err := render("file", groups[name])
		if err != nil {
			return nil, fmt.Errorf("render %s.go: %w", name, err)
		}
		out[name+".go"] = src
	}

	names := make([]string, 0, len(c.Types))
	for _, t := range c.Types {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	resources := c.ResourceTypes()
	sort.Strings(resources)
	src, err := render("catalog", catalogData{Package: c.Package, Resources: resources, Names: names})
	if err != nil {
		return nil, fmt.Errorf("render types.go: %w", err)
	}
	out["types.go"] = src
	return out, nil
}

// WriteFiles renders the catalog into dir and returns the written file names.
func (c *Catalog) WriteFiles(dir string) ([]string, error) {
	files, err := c.Files()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), files[name], 0o644); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}
