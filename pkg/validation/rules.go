package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/go-playground/validator/v10"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
	"github.com/gofhir/models/pkg/primitive"
)

// Struct-level tags reported from model metadata.
const (
	tagRequiredValue  = "fhir_required"
	tagChoiceMultiple = "fhir_choice_multiple"
	tagChoiceRequired = "fhir_choice_required"
)

// formatTags maps the generated format tags to FHIR primitive type codes.
var formatTags = map[string]string{
	"fhir_id":       primitive.ID,
	"fhir_code":     primitive.Code,
	"fhir_date":     primitive.Date,
	"fhir_datetime": primitive.DateTime,
	"fhir_instant":  primitive.Instant,
	"fhir_time":     primitive.Time,
	"fhir_oid":      primitive.OID,
	"fhir_uuid":     primitive.UUID,
	"fhir_uri":      primitive.URI,
}

// embeddedBases are the Go names of the embedded base structs. They show up
// as namespace segments and have no FHIRPath counterpart. ResourceContainer
// holds its resource in a field of the same name.
var embeddedBases = stringset.New("Element", "BackboneElement", "Resource", "DomainResource")

func newValidate(types []model.Model) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for tag, code := range formatTags {
		code := code
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			f := fl.Field()
			return f.Kind() == reflect.String && primitive.Valid(code, f.String())
		})
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", tag, err)
		}
	}

	var withRules []any
	for _, m := range types {
		if len(m.RequiredFields()) > 0 || len(m.OneOfManyFields()) > 0 {
			withRules = append(withRules, m)
		}
	}
	if len(withRules) > 0 {
		v.RegisterStructValidation(metadataRules, withRules...)
	}
	return v, nil
}

// jsonName names fields by their wire name. Embedded bases have no json tag
// and fall back to their Go name.
func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// metadataRules enforces RequiredFields and OneOfManyFields.
func metadataRules(sl validator.StructLevel) {
	m, ok := asModel(sl.Current())
	if !ok {
		return
	}

	for _, rf := range m.RequiredFields() {
		if model.IsSet(m, rf.Field) || model.IsSet(m, rf.Ext) {
			continue
		}
		sl.ReportError(nil, rf.Field, goName(m, rf.Field), tagRequiredValue, rf.Ext)
	}

	for _, g := range m.OneOfManyFields() {
		var found []string
		for _, f := range g.Fields {
			if model.IsSet(m, f) || model.IsSet(m, "_"+f) {
				found = append(found, f)
			}
		}
		switch {
		case len(found) > 1:
			sl.ReportError(nil, g.Name+"[x]", g.Name, tagChoiceMultiple, strings.Join(found, ","))
		case len(found) == 0 && g.Required:
			sl.ReportError(nil, g.Name+"[x]", g.Name, tagChoiceRequired, strings.Join(g.Fields, ","))
		}
	}
}

func asModel(v reflect.Value) (model.Model, bool) {
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	var pv reflect.Value
	if v.CanAddr() {
		pv = v.Addr()
	} else {
		pv = reflect.New(v.Type())
		pv.Elem().Set(v)
	}
	m, ok := pv.Interface().(model.Model)
	return m, ok
}

func goName(m model.Model, field string) string {
	if f, ok := model.Fields(m).Lookup(field); ok {
		return f.GoName
	}
	return field
}

// fhirPath turns a validator namespace into a FHIRPath-like expression.
func fhirPath(ns string) string {
	parts := strings.Split(ns, ".")
	out := parts[:0]
	for _, p := range parts {
		if !embeddedBases.Contains(p) {
			out = append(out, p)
		}
	}
	return strings.Join(out, ".")
}

// report converts validator errors into issues.
func report(err error, result *issue.Result) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		result.AddError(issue.CodeProcessing, err.Error())
		return
	}

	for _, fe := range verrs {
		path := fhirPath(fe.Namespace())
		start := len(result.Issues)
		addFieldError(fe, path, result)
		for i := start; i < len(result.Issues); i++ {
			result.Issues[i].Source = "struct"
		}
	}
}

func addFieldError(fe validator.FieldError, path string, result *issue.Result) {
	switch tag := fe.Tag(); tag {
	case "required":
		if fe.Kind() == reflect.Slice {
			result.AddWithID(issue.DiagCardinalityMin, map[string]any{"path": path, "min": 1, "count": 0}, path)
			return
		}
		result.AddWithID(issue.DiagRequiredElement, map[string]any{"path": path}, path)

	case "min":
		switch {
		case fe.Kind() == reflect.Slice:
			result.AddWithID(issue.DiagCardinalityMin, map[string]any{
				"path":  path,
				"min":   fe.Param(),
				"count": reflect.ValueOf(fe.Value()).Len(),
			}, path)
		case fe.Param() == "1":
			result.AddWithID(issue.DiagTypeInvalidPositiveInt, map[string]any{"value": fe.Value()}, path)
		default:
			result.AddWithID(issue.DiagTypeInvalidUnsignedInt, map[string]any{"value": fe.Value()}, path)
		}

	case "base64":
		result.AddWithID(issue.DiagTypeInvalidBase64, map[string]any{
			"value": primitive.Truncate(fmt.Sprint(fe.Value())),
		}, path)

	case tagRequiredValue:
		result.AddWithID(issue.DiagRequiredMissing, map[string]any{"path": path, "ext": fe.Param()}, path)

	case tagChoiceMultiple:
		result.AddWithID(issue.DiagChoiceMultiple, map[string]any{
			"name":  strings.TrimSuffix(fe.Field(), "[x]"),
			"found": strings.ReplaceAll(fe.Param(), ",", ", "),
		}, path)

	case tagChoiceRequired:
		result.AddWithID(issue.DiagChoiceMissing, map[string]any{
			"name":    strings.TrimSuffix(fe.Field(), "[x]"),
			"allowed": strings.ReplaceAll(fe.Param(), ",", ", "),
		}, path)

	default:
		if code, ok := formatTags[tag]; ok {
			result.AddWithID(issue.DiagTypeInvalidFormat, map[string]any{
				"value": primitive.Truncate(fmt.Sprint(fe.Value())),
				"type":  code,
			}, path)
			return
		}
		result.AddWithID(issue.DiagRuleNotApplied, map[string]any{"tag": tag, "path": path}, path)
	}
}
