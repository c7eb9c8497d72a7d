package worker

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
)

// mockValidator implements the Validator interface for testing.
type mockValidator struct {
	callCount atomic.Int32
	delay     time.Duration
	err       error
	errors    int
}

func (m *mockValidator) ValidateBytes(ctx context.Context, resource []byte) (*issue.Result, error) {
	m.callCount.Add(1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	result := issue.NewResult()
	for i := 0; i < m.errors; i++ {
		result.AddError(issue.CodeRequired, "missing "+strconv.Itoa(i), "Patient.name")
	}
	return result, nil
}

func TestPool_NewPool(t *testing.T) {
	validator := &mockValidator{}
	pool := NewPool(validator, 2)
	defer pool.Close()

	if pool == nil {
		t.Fatal("expected non-nil pool")
	}
	if pool.workers != 2 {
		t.Errorf("workers = %d; want 2", pool.workers)
	}
}

func TestPool_DefaultWorkers(t *testing.T) {
	validator := &mockValidator{}
	pool := NewPool(validator, 0)
	defer pool.Close()

	if pool.workers <= 0 {
		t.Errorf("workers = %d; want > 0", pool.workers)
	}
}

func TestPool_SubmitAndReceive(t *testing.T) {
	validator := &mockValidator{errors: 1}
	pool := NewPool(validator, 2)
	defer pool.Close()

	job := Job{
		ID:       "test-1",
		Resource: []byte(`{"resourceType":"Patient"}`),
	}

	if !pool.Submit(job) {
		t.Error("expected job to be submitted")
	}

	select {
	case result := <-pool.Results():
		if result.ID != "test-1" {
			t.Errorf("ID = %q; want %q", result.ID, "test-1")
		}
		if result.Result == nil || result.Result.ErrorCount() != 1 {
			t.Errorf("Result = %+v; want one error", result.Result)
		}
		if result.OK() {
			t.Error("OK() = true; want false for a result with errors")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}
}

func TestPool_SubmitToClosedPool(t *testing.T) {
	validator := &mockValidator{}
	pool := NewPool(validator, 2)
	pool.Close()

	if pool.Submit(Job{ID: "after-close"}) {
		t.Error("expected submit to fail after close")
	}
	if pool.SubmitAsync(Job{ID: "after-close"}) {
		t.Error("expected async submit to fail after close")
	}
}

func TestPool_DoubleClose(t *testing.T) {
	validator := &mockValidator{}
	pool := NewPool(validator, 2)

	pool.Close()
	pool.Close() // Should not panic
}

func TestPool_NilValidator(t *testing.T) {
	pool := NewPool(nil, 2)
	defer pool.Close()

	pool.Submit(Job{ID: "nil-validator"})

	select {
	case result := <-pool.Results():
		if !errors.Is(result.Error, ErrNoValidator) {
			t.Errorf("Error = %v; want ErrNoValidator", result.Error)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}
}

func TestPool_ResourceTypeOption(t *testing.T) {
	validator := &mockValidator{}
	pool := NewPool(validator, 1)
	defer pool.Close()

	pool.Submit(Job{
		ID:       "wrong-type",
		Resource: []byte(`{"resourceType":"Observation"}`),
		Options:  &JobOptions{ResourceType: "Patient"},
	})

	select {
	case result := <-pool.Results():
		if !errors.Is(result.Error, model.ErrResourceTypeMismatch) {
			t.Errorf("Error = %v; want ErrResourceTypeMismatch", result.Error)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}
	if validator.callCount.Load() != 0 {
		t.Error("validator should not run for a mismatched resourceType")
	}
}

func TestPool_MaxIssuesOption(t *testing.T) {
	pool := NewPool(&mockValidator{errors: 5}, 1)
	defer pool.Close()

	pool.Submit(Job{ID: "capped", Options: &JobOptions{MaxIssues: 2}})

	select {
	case result := <-pool.Results():
		if result.Result.ErrorCount() != 2 {
			t.Errorf("ErrorCount = %d; want 2", result.Result.ErrorCount())
		}
		if result.Result.InfoCount() != 1 {
			t.Errorf("InfoCount = %d; want 1 truncation marker", result.Result.InfoCount())
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}
}

func TestPool_CloseAndWait(t *testing.T) {
	pool := NewPool(&mockValidator{}, 2)
	for i := 0; i < 3; i++ {
		pool.Submit(Job{ID: strconv.Itoa(i)})
	}

	batch := pool.CloseAndWait()
	if batch.TotalJobs != 3 {
		t.Errorf("TotalJobs = %d; want 3", batch.TotalJobs)
	}
	if len(batch.Results) != 3 {
		t.Errorf("len(Results) = %d; want 3", len(batch.Results))
	}
}

func TestPool_Stats(t *testing.T) {
	validator := &mockValidator{}
	pool := NewPool(validator, 2)
	defer pool.Close()

	pool.Submit(Job{ID: "stats-test"})

	select {
	case <-pool.Results():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for result")
	}

	stats := pool.Stats()
	if stats.Workers != 2 {
		t.Errorf("Workers = %d; want 2", stats.Workers)
	}
	if stats.JobsSubmitted == 0 {
		t.Error("expected JobsSubmitted > 0")
	}
}

func TestBatchValidator_EmptyBatch(t *testing.T) {
	bv := NewBatchValidator(func(ctx context.Context, resource []byte) (*issue.Result, error) {
		return nil, nil
	}, 2)

	result := bv.ValidateBatch(context.Background(), [][]byte{})
	if result.TotalJobs != 0 {
		t.Errorf("TotalJobs = %d; want 0", result.TotalJobs)
	}
}

func TestBatchValidator_SmallBatch(t *testing.T) {
	var callCount atomic.Int32
	bv := NewBatchValidator(func(ctx context.Context, resource []byte) (*issue.Result, error) {
		callCount.Add(1)
		return nil, nil
	}, 2)

	resources := [][]byte{
		[]byte(`{"resourceType":"Patient"}`),
		[]byte(`{"resourceType":"Observation"}`),
	}

	result := bv.ValidateBatch(context.Background(), resources)
	if result.TotalJobs != 2 {
		t.Errorf("TotalJobs = %d; want 2", result.TotalJobs)
	}
	if result.CompletedJobs != 2 {
		t.Errorf("CompletedJobs = %d; want 2", result.CompletedJobs)
	}
	if int(callCount.Load()) != 2 {
		t.Errorf("callCount = %d; want 2", callCount.Load())
	}
	if result.Results[1].ID != "1" {
		t.Errorf("Results[1].ID = %q; want \"1\"", result.Results[1].ID)
	}
}

func TestBatchValidator_ParallelExecution(t *testing.T) {
	var callCount atomic.Int32
	bv := NewBatchValidator(func(ctx context.Context, resource []byte) (*issue.Result, error) {
		callCount.Add(1)
		time.Sleep(10 * time.Millisecond)
		return nil, nil
	}, 4)

	resources := make([][]byte, 10)
	for i := range resources {
		resources[i] = []byte(`{"resourceType":"Patient"}`)
	}

	start := time.Now()
	result := bv.ValidateBatch(context.Background(), resources)
	duration := time.Since(start)

	if result.TotalJobs != 10 {
		t.Errorf("TotalJobs = %d; want 10", result.TotalJobs)
	}
	if result.CompletedJobs != 10 {
		t.Errorf("CompletedJobs = %d; want 10", result.CompletedJobs)
	}
	if int(callCount.Load()) != 10 {
		t.Errorf("callCount = %d; want 10", callCount.Load())
	}
	for i, r := range result.Results {
		if r.ID != strconv.Itoa(i) || r.Index != i {
			t.Errorf("Results[%d] = {ID:%q Index:%d}; want input order", i, r.ID, r.Index)
		}
	}

	// With 4 workers and 10 jobs of 10ms each, should complete faster than sequential
	if duration > 200*time.Millisecond {
		t.Errorf("duration = %v; expected < 200ms for parallel execution", duration)
	}
}

func TestBatchValidator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bv := NewBatchValidator(func(ctx context.Context, resource []byte) (*issue.Result, error) {
		return nil, nil
	}, 1)

	result := bv.ValidateBatch(ctx, [][]byte{{}, {}, {}})
	if result.TotalJobs != 3 {
		t.Errorf("TotalJobs = %d; want 3", result.TotalJobs)
	}
	if result.CompletedJobs != 0 {
		t.Errorf("CompletedJobs = %d; want 0", result.CompletedJobs)
	}
}

func TestBatchResult_HasErrors(t *testing.T) {
	t.Run("nil result", func(t *testing.T) {
		br := &BatchResult{
			Results: []*JobResult{
				{ID: "1", Result: nil, Error: nil},
			},
		}
		if br.HasErrors() {
			t.Error("expected HasErrors() = false for nil result")
		}
	})

	t.Run("with error", func(t *testing.T) {
		br := &BatchResult{
			Results: []*JobResult{
				{ID: "1", Error: ErrNoValidator},
			},
		}
		if !br.HasErrors() {
			t.Error("expected HasErrors() = true when error present")
		}
	})

	t.Run("with issues", func(t *testing.T) {
		res := issue.NewResult()
		res.AddError(issue.CodeRequired, "missing")
		br := &BatchResult{Results: []*JobResult{{ID: "1", Result: res}}}
		if !br.HasErrors() {
			t.Error("expected HasErrors() = true when an error issue is present")
		}
	})
}

func TestBatchResult_ErrorCount(t *testing.T) {
	res := issue.NewResult()
	res.AddError(issue.CodeRequired, "missing")
	res.AddWarning(issue.CodeProcessing, "odd")

	br := &BatchResult{
		Results: []*JobResult{
			{ID: "1", Result: nil},
			{ID: "2", Result: res},
		},
	}
	if br.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d; want 1", br.ErrorCount())
	}
}

func TestBatchResult_Merged(t *testing.T) {
	res := issue.NewResult()
	res.AddError(issue.CodeRequired, "missing", "Patient.name")

	br := &BatchResult{
		Results: []*JobResult{
			{ID: "a", Result: res},
			{ID: "b", Error: errors.New("bad json")},
		},
	}

	merged := br.Merged()
	if len(merged.Issues) != 2 {
		t.Fatalf("len(Issues) = %d; want 2", len(merged.Issues))
	}
	if got := merged.Issues[0].Expression[0]; got != "a:Patient.name" {
		t.Errorf("Expression = %q; want a:Patient.name", got)
	}
	if got := merged.Issues[1].Expression[0]; got != "b" {
		t.Errorf("Expression = %q; want b", got)
	}
}

func TestValidateBatchSimple(t *testing.T) {
	var callCount atomic.Int32
	validateFunc := func(ctx context.Context, resource []byte) (*issue.Result, error) {
		callCount.Add(1)
		return nil, nil
	}

	resources := [][]byte{
		[]byte(`{"resourceType":"Patient"}`),
		[]byte(`{"resourceType":"Patient"}`),
		[]byte(`{"resourceType":"Patient"}`),
	}

	result := ValidateBatchSimple(context.Background(), validateFunc, resources)
	if result.TotalJobs != 3 {
		t.Errorf("TotalJobs = %d; want 3", result.TotalJobs)
	}
	if int(callCount.Load()) != 3 {
		t.Errorf("callCount = %d; want 3", callCount.Load())
	}
}
