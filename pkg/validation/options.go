package validation

import (
	"runtime"

	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/pkg/model"
)

// Option configures the Validator.
type Option func(*Options)

// Options holds all configuration for the Validator.
type Options struct {
	// FHIRVersion selects the built-in invariants ("3.0.2" or "4.3.0").
	FHIRVersion string

	// Factory creates resources when validating JSON input.
	Factory model.Factory

	// Validation flags
	ValidateInvariants      bool
	ValidateUnknownElements bool
	StrictMode              bool

	// ReportLocations sets the line and column of issues found by
	// ValidateBytes.
	ReportLocations bool

	// Invariants are evaluated in addition to the built-in ones.
	Invariants []Invariant

	// MaxIssues caps the issues of one result. 0 means unlimited.
	MaxIssues int

	// Workers is the batch validation parallelism.
	Workers int

	// ExpressionCacheSize bounds the compiled FHIRPath cache.
	ExpressionCacheSize int

	Logger *logger.Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		FHIRVersion:             "4.3.0",
		ValidateInvariants:      true,
		ValidateUnknownElements: true,
		ReportLocations:         true,
		Workers:                 runtime.NumCPU(),
		ExpressionCacheSize:     512,
	}
}

// WithFHIRVersion sets the release whose built-in invariants apply.
func WithFHIRVersion(version string) Option {
	return func(o *Options) {
		o.FHIRVersion = version
	}
}

// WithFactory sets the resource factory used by ValidateBytes.
func WithFactory(f model.Factory) Option {
	return func(o *Options) {
		o.Factory = f
	}
}

// WithInvariants enables FHIRPath invariant evaluation.
func WithInvariants(enable bool) Option {
	return func(o *Options) {
		o.ValidateInvariants = enable
	}
}

// WithInvariant adds a FHIRPath invariant.
func WithInvariant(inv Invariant) Option {
	return func(o *Options) {
		o.Invariants = append(o.Invariants, inv)
	}
}

// WithUnknownElements reports JSON properties that no element declares.
func WithUnknownElements(enable bool) Option {
	return func(o *Options) {
		o.ValidateUnknownElements = enable
	}
}

// WithLocations enables line and column reporting for JSON input.
func WithLocations(enable bool) Option {
	return func(o *Options) {
		o.ReportLocations = enable
	}
}

// WithStrictMode treats warnings as errors.
func WithStrictMode(enable bool) Option {
	return func(o *Options) {
		o.StrictMode = enable
	}
}

// WithMaxIssues sets the maximum number of issues per result.
// Use 0 for unlimited.
func WithMaxIssues(max int) Option {
	return func(o *Options) {
		o.MaxIssues = max
	}
}

// WithWorkers sets the number of batch validation workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithExpressionCacheSize sets the capacity of the FHIRPath cache.
func WithExpressionCacheSize(size int) Option {
	return func(o *Options) {
		o.ExpressionCacheSize = size
	}
}

// WithLogger sets the logger for batch runs and invariant failures.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
