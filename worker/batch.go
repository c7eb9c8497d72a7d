package worker

import (
	"context"
	"runtime"
	"strconv"
	"sync"
)

// BatchValidator validates slices of documents in parallel.
type BatchValidator struct {
	validator Validator
	workers   int
}

// BatchValidatorFunc is the function signature for validating a single
// document.
type BatchValidatorFunc = ValidatorFunc

// NewBatchValidator creates a new batch validator.
func NewBatchValidator(validateFunc BatchValidatorFunc, workers int) *BatchValidator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	var v Validator
	if validateFunc != nil {
		v = validateFunc
	}
	return &BatchValidator{
		validator: v,
		workers:   workers,
	}
}

// ValidateBatch validates multiple documents in parallel. Results keep the
// order of resources and carry their index as ID.
func (bv *BatchValidator) ValidateBatch(ctx context.Context, resources [][]byte) *BatchResult {
	jobs := make([]Job, len(resources))
	for i, r := range resources {
		jobs[i] = Job{ID: strconv.Itoa(i), Resource: r}
	}
	return bv.Run(ctx, jobs)
}

// Run validates jobs in parallel. Results keep the order of jobs. Jobs not
// started before ctx is cancelled have no result.
func (bv *BatchValidator) Run(ctx context.Context, jobs []Job) *BatchResult {
	if len(jobs) == 0 {
		return &BatchResult{
			Results: make([]*JobResult, 0),
		}
	}

	// Small batches don't pay for goroutines.
	if len(jobs) <= 2 || bv.workers == 1 {
		return bv.runSequential(ctx, jobs)
	}

	return bv.runParallel(ctx, jobs)
}

func (bv *BatchValidator) runSequential(ctx context.Context, jobs []Job) *BatchResult {
	batch := &BatchResult{
		Results:   make([]*JobResult, 0, len(jobs)),
		TotalJobs: len(jobs),
	}

	for i, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		batch.add(runJob(ctx, bv.validator, i, job))
	}
	return batch
}

func (bv *BatchValidator) runParallel(ctx context.Context, jobs []Job) *BatchResult {
	numWorkers := bv.workers
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}

	queue := make(chan int, len(jobs))
	resultsChan := make(chan *JobResult, len(jobs))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					return
				}
				resultsChan <- runJob(ctx, bv.validator, idx, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	ordered := make([]*JobResult, len(jobs))
	for r := range resultsChan {
		ordered[r.Index] = r
	}

	batch := &BatchResult{
		Results:   make([]*JobResult, 0, len(jobs)),
		TotalJobs: len(jobs),
	}
	for _, r := range ordered {
		if r != nil {
			batch.add(r)
		}
	}
	return batch
}

func (br *BatchResult) add(r *JobResult) {
	br.Results = append(br.Results, r)
	br.CompletedJobs++
	br.TotalDuration += r.Duration
	if r.Error != nil {
		br.FailedJobs++
	}
}

// ValidateBatchSimple is a convenience function for batch validation.
func ValidateBatchSimple(ctx context.Context, validateFunc BatchValidatorFunc, resources [][]byte) *BatchResult {
	bv := NewBatchValidator(validateFunc, runtime.NumCPU())
	return bv.ValidateBatch(ctx, resources)
}
