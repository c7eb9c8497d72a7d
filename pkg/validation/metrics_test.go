package validation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/validation"
)

func TestMetrics_Record(t *testing.T) {
	m := validation.NewMetrics()

	valid := issue.NewResult()
	invalid := issue.NewResult()
	invalid.AddIssue(issue.Issue{Severity: issue.SeverityError, Source: "struct"})
	invalid.AddIssue(issue.Issue{Severity: issue.SeverityWarning, Source: "invariant"})

	m.Record(valid, 100*time.Millisecond)
	m.Record(invalid, 300*time.Millisecond)

	s := m.Snapshot()
	if s.ValidationsTotal != 2 || s.ValidationsValid != 1 {
		t.Errorf("validations = %d/%d; want 1/2", s.ValidationsValid, s.ValidationsTotal)
	}
	if s.ValidationRate != 0.5 {
		t.Errorf("ValidationRate = %f; want 0.5", s.ValidationRate)
	}
	if got := m.AverageTime(); got != 200*time.Millisecond {
		t.Errorf("AverageTime() = %v; want 200ms", got)
	}
	if s.MinTimeNs != uint64(100*time.Millisecond) || s.MaxTimeNs != uint64(300*time.Millisecond) {
		t.Errorf("min/max = %d/%d", s.MinTimeNs, s.MaxTimeNs)
	}
	if s.ErrorsTotal != 1 || s.WarningsTotal != 1 || s.InfosTotal != 0 {
		t.Errorf("issues = %d/%d/%d; want 1/1/0", s.ErrorsTotal, s.WarningsTotal, s.InfosTotal)
	}
	if diff := cmp.Diff(map[string]uint64{"struct": 1, "invariant": 1}, s.IssuesBySource); diff != "" {
		t.Errorf("IssuesBySource mismatch (-want +got):\n%s", diff)
	}

	m.Reset()
	s = m.Snapshot()
	if s.ValidationsTotal != 0 || s.MinTimeNs != 0 || s.IssuesBySource != nil {
		t.Errorf("after Reset: %+v", s)
	}
}

func TestMetrics_Empty(t *testing.T) {
	m := validation.NewMetrics()
	if m.ValidationRate() != 0 || m.AverageTime() != 0 {
		t.Error("empty metrics should report zero")
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := validation.NewMetrics()
	r := issue.NewResult()
	r.AddIssue(issue.Issue{Severity: issue.SeverityError, Source: "struct"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Record(r, time.Millisecond)
		}()
	}
	wg.Wait()

	s := m.Snapshot()
	if s.ValidationsTotal != 50 || s.IssuesBySource["struct"] != 50 {
		t.Errorf("got %d validations, %d struct issues; want 50/50", s.ValidationsTotal, s.IssuesBySource["struct"])
	}
}

func TestValidatorMetrics(t *testing.T) {
	v := newValidator(t)
	ctx := context.Background()

	docs := []string{
		`{"resourceType":"Patient","id":"p1"}`,
		`{"resourceType":"Patient","id":"p2"}`,
		`{"resourceType":"Observation"}`,
		`{not json`,
	}
	for _, d := range docs {
		if _, err := v.ValidateBytes(ctx, []byte(d)); err != nil {
			t.Fatalf("ValidateBytes(%s) error = %v", d, err)
		}
	}

	s := v.Metrics()
	if s.ValidationsTotal != 4 || s.ValidationsValid != 2 {
		t.Errorf("validations = %d/%d; want 2/4", s.ValidationsValid, s.ValidationsTotal)
	}
	if diff := cmp.Diff(map[string]uint64{"struct": 2, "decode": 1}, s.IssuesBySource); diff != "" {
		t.Errorf("IssuesBySource mismatch (-want +got):\n%s", diff)
	}
	if s.ExpressionCacheHits == 0 {
		t.Error("second Patient should reuse compiled invariants")
	}

	v.ResetMetrics()
	if got := v.Metrics().ValidationsTotal; got != 0 {
		t.Errorf("after ResetMetrics: ValidationsTotal = %d", got)
	}
}
