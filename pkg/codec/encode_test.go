package codec_test

import (
	"errors"
	"testing"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/r4b"
	"github.com/gofhir/models/stu3"
)

func TestMarshalNested(t *testing.T) {
	p := &r4b.Patient{
		Contained: []r4b.ResourceContainer{r4b.Contain(&r4b.Patient{Active: ptr(true)})},
	}
	p.ID = ptr("p")
	p.Extension = []r4b.Extension{{
		URL: ptr("http://example.org/a"),
		Extension: []r4b.Extension{{
			URL:            ptr("b"),
			ValueReference: &r4b.Reference{Reference: ptr("Patient/q")},
		}},
	}}

	data, err := codec.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"resourceType":"Patient","id":"p","contained":[{"resourceType":"Patient","active":true}],` +
		`"extension":[{"extension":[{"url":"b","valueReference":{"reference":"Patient/q"}}],"url":"http://example.org/a"}]}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}
}

func TestMarshalEmbeddedBase(t *testing.T) {
	task := &stu3.Task{Status: ptr("requested"), Intent: ptr("order")}
	task.ID = ptr("t1")
	task.Meta = &stu3.Meta{VersionID: ptr("1")}

	data, err := codec.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"resourceType":"Task","id":"t1","meta":{"versionId":"1"},"status":"requested","intent":"order"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s; want %s", data, want)
	}
}

func TestMarshalUnsupportedValue(t *testing.T) {
	o := codec.NewObject()
	o.Set("feed", make(chan int))

	_, err := codec.Marshal(o)
	if !errors.Is(err, codec.ErrEncode) {
		t.Errorf("Marshal() error = %v; want ErrEncode", err)
	}
}

func TestMarshalNil(t *testing.T) {
	for _, v := range []any{nil, (*r4b.Patient)(nil), r4b.ResourceContainer{}} {
		data, err := codec.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%T) error = %v", v, err)
		}
		if string(data) != "null" {
			t.Errorf("Marshal(%T) = %s; want null", v, data)
		}
	}
}
