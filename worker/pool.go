package worker

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofhir/models/pkg/issue"
	"github.com/gofhir/models/pkg/model"
)

// Validator is the interface that the pool uses to validate documents.
type Validator interface {
	ValidateBytes(ctx context.Context, resource []byte) (*issue.Result, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(ctx context.Context, resource []byte) (*issue.Result, error)

// ValidateBytes calls f.
func (f ValidatorFunc) ValidateBytes(ctx context.Context, resource []byte) (*issue.Result, error) {
	return f(ctx, resource)
}

// ErrNoValidator is returned when the pool has no validator configured.
var ErrNoValidator = errors.New("no validator configured")

// Pool manages a pool of worker goroutines for parallel validation.
type Pool struct {
	workers    int
	jobsChan   chan indexedJob
	resultChan chan *JobResult
	validator  Validator
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	closed     atomic.Bool

	seq           atomic.Uint64
	jobsSubmitted atomic.Uint64
	jobsCompleted atomic.Uint64
	totalDuration atomic.Uint64
}

type indexedJob struct {
	index int
	job   Job
}

// NewPool creates a new worker pool with the specified number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewPool(validator Validator, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		workers:    workers,
		jobsChan:   make(chan indexedJob, workers*2),
		resultChan: make(chan *JobResult, workers*2),
		validator:  validator,
		ctx:        ctx,
		cancel:     cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// Submit submits a job to the pool for processing.
// This method blocks if the job queue is full.
func (p *Pool) Submit(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- indexedJob{index: int(p.seq.Add(1) - 1), job: job}:
		p.jobsSubmitted.Add(1)
		return true
	}
}

// SubmitAsync submits a job without blocking.
// Returns false if the job queue is full or the pool is closed.
func (p *Pool) SubmitAsync(job Job) bool {
	if p.closed.Load() {
		return false
	}

	select {
	case <-p.ctx.Done():
		return false
	case p.jobsChan <- indexedJob{index: int(p.seq.Add(1) - 1), job: job}:
		p.jobsSubmitted.Add(1)
		return true
	default:
		return false
	}
}

// Results returns the channel for receiving job results.
func (p *Pool) Results() <-chan *JobResult {
	return p.resultChan
}

// Close shuts down the pool and waits for all workers to finish. Pending
// results are discarded; use CloseAndWait to collect them.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}

	p.cancel()
	close(p.jobsChan)

	done := make(chan struct{})
	go func() {
		for range p.resultChan {
		}
		close(done)
	}()

	p.wg.Wait()
	close(p.resultChan)
	<-done
}

// CloseAndWait stops accepting jobs, lets queued jobs finish and returns
// every result not yet received from Results.
func (p *Pool) CloseAndWait() *BatchResult {
	if p.closed.Swap(true) {
		return &BatchResult{}
	}

	close(p.jobsChan)

	results := make([]*JobResult, 0)
	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(p.resultChan)
		close(done)
	}()

	failed := 0
	for result := range p.resultChan {
		if result.Error != nil {
			failed++
		}
		results = append(results, result)
	}

	<-done
	p.cancel()

	return &BatchResult{
		Results:       results,
		TotalJobs:     int(p.jobsSubmitted.Load()),
		CompletedJobs: int(p.jobsCompleted.Load()),
		FailedJobs:    failed,
		TotalDuration: int64(p.totalDuration.Load()),
	}
}

// Stats returns current pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:       p.workers,
		JobsSubmitted: p.jobsSubmitted.Load(),
		JobsCompleted: p.jobsCompleted.Load(),
		AvgDuration:   p.averageDuration(),
	}
}

// PoolStats contains pool statistics.
type PoolStats struct {
	Workers       int
	JobsSubmitted uint64
	JobsCompleted uint64
	AvgDuration   time.Duration
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for ij := range p.jobsChan {
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		result := runJob(p.ctx, p.validator, ij.index, ij.job)
		p.jobsCompleted.Add(1)
		p.totalDuration.Add(uint64(result.Duration))

		select {
		case <-p.ctx.Done():
			return
		case p.resultChan <- result:
		}
	}
}

// runJob validates one job and applies its options.
func runJob(ctx context.Context, v Validator, index int, job Job) *JobResult {
	start := time.Now()
	result := &JobResult{ID: job.ID, Index: index}
	defer func() {
		result.Duration = time.Since(start).Nanoseconds()
	}()

	if v == nil {
		result.Error = ErrNoValidator
		return result
	}

	if opts := job.Options; opts != nil && opts.ResourceType != "" {
		if err := model.CheckResourceType(job.Resource, opts.ResourceType); err != nil {
			result.Error = err
			return result
		}
	}

	res, err := v.ValidateBytes(ctx, job.Resource)
	result.Result = res
	result.Error = err

	if res != nil && job.Options != nil && job.Options.MaxIssues > 0 {
		res.Truncate(job.Options.MaxIssues)
	}
	return result
}

func (p *Pool) averageDuration() time.Duration {
	completed := p.jobsCompleted.Load()
	if completed == 0 {
		return 0
	}
	return time.Duration(p.totalDuration.Load() / completed)
}
