package googlefhir

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	dpb "github.com/google/fhir/go/proto/google/fhir/proto/stu3/datatypes_go_proto"
	rpb "github.com/google/fhir/go/proto/google/fhir/proto/stu3/resources_go_proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/gofhir/models/pkg/codec"
	"github.com/gofhir/models/stu3"
)

func ptr[T any](v T) *T { return &v }

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return c
}

func testPatient() *stu3.Patient {
	p := &stu3.Patient{}
	p.ID = ptr("p1")
	p.Name = []stu3.HumanName{{Family: ptr("Chalmers"), Given: []string{"Peter", "James"}}}
	return p
}

func TestToProto(t *testing.T) {
	c := newTestConverter(t)
	got, err := c.ToProto(testPatient())
	if err != nil {
		t.Fatalf("ToProto() error = %v", err)
	}

	want := &rpb.ContainedResource{
		OneofResource: &rpb.ContainedResource_Patient{Patient: &rpb.Patient{
			Id: &dpb.Id{Value: "p1"},
			Name: []*dpb.HumanName{{
				Family: &dpb.String{Value: "Chalmers"},
				Given:  []*dpb.String{{Value: "Peter"}, {Value: "James"}},
			}},
		}},
	}
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("ToProto() mismatch (-want +got):\n%s", diff)
	}
	if rt := ResourceType(got); rt != "Patient" {
		t.Errorf("ResourceType() = %q; want Patient", rt)
	}
}

func TestRoundTrip(t *testing.T) {
	c := newTestConverter(t)
	in := testPatient()
	cr, err := c.ToProto(in)
	if err != nil {
		t.Fatalf("ToProto() error = %v", err)
	}
	out, err := c.FromProto(cr)
	if err != nil {
		t.Fatalf("FromProto() error = %v", err)
	}
	if _, ok := out.(*stu3.Patient); !ok {
		t.Fatalf("FromProto() returned %T; want *stu3.Patient", out)
	}

	decode := func(v any) map[string]any {
		data, err := codec.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatal(err)
		}
		return m
	}
	if diff := cmp.Diff(decode(in), decode(out)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnwrapEmpty(t *testing.T) {
	if _, err := Unwrap(&rpb.ContainedResource{}); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Unwrap(empty) error = %v; want ErrEmptyContainer", err)
	}
	if _, err := Unwrap(nil); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("Unwrap(nil) error = %v; want ErrEmptyContainer", err)
	}
	if rt := ResourceType(&rpb.ContainedResource{}); rt != "" {
		t.Errorf("ResourceType(empty) = %q; want empty", rt)
	}

	c := newTestConverter(t)
	if _, err := c.FromProto(&rpb.ContainedResource{}); !errors.Is(err, ErrEmptyContainer) {
		t.Errorf("FromProto(empty) error = %v; want ErrEmptyContainer", err)
	}
}

func TestUnmarshalJSONInvalid(t *testing.T) {
	c := newTestConverter(t)
	if _, err := c.UnmarshalJSON([]byte(`{"resourceType":"NotAResource"}`)); err == nil {
		t.Error("UnmarshalJSON() should fail for an unknown resourceType")
	}
}
