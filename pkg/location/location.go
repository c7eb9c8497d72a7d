// Package location maps FHIRPath-like element paths to line and column
// positions in the JSON document they were reported against.
package location

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
)

// Position is a 1-based line and column in a JSON document.
type Position struct {
	Line   int
	Column int
}

// step is one element name or array index of a path. A choice step
// ("value[x]") matches the first type-suffixed member of its group.
type step struct {
	name   string
	index  int
	choice bool
}

func (s step) matches(key string) bool {
	if s.choice {
		return key != s.name && model.ChoiceBaseName(key) == s.name
	}
	return key == s.name
}

// Locate returns the position of the value that expression names in data.
// The leading resource type of the expression is optional, so
// "Patient.name[0].family" and "name[0].family" are equivalent. A bare
// resource type locates the root object and "Observation.value[x]" the
// first populated value member.
func Locate(data []byte, expression string) (Position, bool) {
	steps, ok := parse(expression)
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return Position{}, false
	}
	off, ok := seek(json.NewDecoder(bytes.NewReader(data)), data, steps)
	if !ok {
		return Position{}, false
	}
	return position(data, off), true
}

// Nearest is Locate, falling back to the closest enclosing element when
// the expression itself is absent, as it is for a missing required element.
func Nearest(data []byte, expression string) (Position, bool) {
	for expr := expression; expr != ""; expr = parent(expr) {
		if pos, ok := Locate(data, expr); ok {
			return pos, true
		}
	}
	return Position{}, false
}

// Annotate sets Line and Column on every issue whose first expression
// can be placed in data.
func Annotate(data []byte, issues []issue.Issue) {
	for i := range issues {
		if len(issues[i].Expression) == 0 {
			continue
		}
		if pos, ok := Nearest(data, issues[i].Expression[0]); ok {
			issues[i].Line = pos.Line
			issues[i].Column = pos.Column
		}
	}
}

func parse(expression string) ([]step, bool) {
	if expression == "" {
		return nil, false
	}
	parts := strings.Split(expression, ".")
	if first := parts[0]; first != "" && first[0] >= 'A' && first[0] <= 'Z' {
		parts = parts[1:]
	}

	var steps []step
	for _, p := range parts {
		name, rest, _ := strings.Cut(p, "[")
		if name == "" {
			return nil, false
		}
		if rest == "x]" {
			steps = append(steps, step{name: name, index: -1, choice: true})
			continue
		}
		steps = append(steps, step{name: name, index: -1})
		for rest != "" {
			idx, tail, found := strings.Cut(rest, "]")
			if !found {
				return nil, false
			}
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 {
				return nil, false
			}
			steps = append(steps, step{index: n})
			rest = strings.TrimPrefix(tail, "[")
		}
	}
	return steps, true
}

// parent drops the last element or index of expression.
func parent(expression string) string {
	if strings.HasSuffix(expression, "]") {
		if i := strings.LastIndex(expression, "["); i > 0 {
			return expression[:i]
		}
	}
	if i := strings.LastIndex(expression, "."); i > 0 {
		return expression[:i]
	}
	return ""
}

// seek walks dec down steps and returns the byte offset of the value found.
func seek(dec *json.Decoder, data []byte, steps []step) (int, bool) {
	for _, s := range steps {
		tok, err := dec.Token()
		if err != nil {
			return 0, false
		}
		d, _ := tok.(json.Delim)
		if s.index < 0 {
			if d != '{' || !findKey(dec, s) {
				return 0, false
			}
			continue
		}
		if d != '[' || !skipItems(dec, s.index) {
			return 0, false
		}
	}
	off := valueStart(data, int(dec.InputOffset()))
	return off, off < len(data)
}

// findKey advances past the first key of the current object that s matches.
func findKey(dec *json.Decoder, s step) bool {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if key, _ := tok.(string); s.matches(key) {
			return true
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return false
		}
	}
	return false
}

// skipItems advances past n items of the current array, stopping before item n.
func skipItems(dec *json.Decoder, n int) bool {
	for i := 0; i < n; i++ {
		if !dec.More() {
			return false
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return false
		}
	}
	return dec.More()
}

// valueStart skips separators and whitespace from off.
func valueStart(data []byte, off int) int {
	for off < len(data) {
		switch data[off] {
		case ' ', '\t', '\r', '\n', ':', ',':
			off++
		default:
			return off
		}
	}
	return off
}

func position(data []byte, off int) Position {
	before := data[:off]
	line := bytes.Count(before, []byte{'\n'}) + 1
	col := off - bytes.LastIndexByte(before, '\n')
	return Position{Line: line, Column: col}
}
