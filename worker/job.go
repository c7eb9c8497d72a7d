package worker

import "github.com/gofhir/models/pkg/issue"

// Job is one JSON document to validate.
type Job struct {
	// ID identifies the job in its JobResult.
	ID string

	// Resource is the FHIR resource as JSON bytes.
	Resource []byte

	// Options contains optional per-job settings.
	Options *JobOptions
}

// JobOptions contains optional parameters for a validation job.
type JobOptions struct {
	// ResourceType is the expected resourceType. A document declaring a
	// different one fails with an error instead of being validated.
	ResourceType string

	// MaxIssues limits the number of issues kept (0 = unlimited).
	MaxIssues int
}

// JobResult is the outcome of a validation job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Index is the position of the job in its batch, or the submission
	// sequence number for pool jobs.
	Index int

	// Result contains the validation issues.
	Result *issue.Result

	// Error is set when the document could not be validated at all.
	Error error

	// Duration is the time taken to validate (in nanoseconds).
	Duration int64
}

// OK reports whether the job finished without an error and without
// error-level issues.
func (r *JobResult) OK() bool {
	return r.Error == nil && (r.Result == nil || !r.Result.HasErrors())
}

// BatchResult aggregates results from multiple jobs.
type BatchResult struct {
	// Results contains all job results.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs completed (including errors).
	CompletedJobs int

	// FailedJobs is the number of jobs that failed with an error.
	FailedJobs int

	// TotalDuration is the total time for all validations (in nanoseconds).
	TotalDuration int64
}

// HasErrors returns true if any job failed or reported error-level issues.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r != nil && !r.OK() {
			return true
		}
	}
	return false
}

// ErrorCount returns the total number of error-level issues across all
// results.
func (br *BatchResult) ErrorCount() int {
	count := 0
	for _, r := range br.Results {
		if r != nil && r.Result != nil {
			count += r.Result.ErrorCount()
		}
	}
	return count
}

// Merged returns every issue of the batch in one Result. Expressions are
// prefixed with the job ID so issues stay attributable.
func (br *BatchResult) Merged() *issue.Result {
	merged := issue.NewResult()
	for _, r := range br.Results {
		if r == nil {
			continue
		}
		if r.Error != nil {
			merged.AddError(issue.CodeProcessing, r.Error.Error(), r.ID)
		}
		if r.Result == nil {
			continue
		}
		for _, iss := range r.Result.Issues {
			if len(iss.Expression) > 0 {
				expr := make([]string, len(iss.Expression))
				for i, e := range iss.Expression {
					expr[i] = r.ID + ":" + e
				}
				iss.Expression = expr
			} else {
				iss.Expression = []string{r.ID}
			}
			merged.AddIssue(iss)
		}
	}
	return merged
}
