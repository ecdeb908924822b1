package extension

import (
	"github.com/Okanegahoshi/GDevelop/metric"
)

// DuplicatePolicy controls what happens when an extension declares the same
// identifier twice within one metadata kind.
type DuplicatePolicy int

const (
	// ReplaceDuplicates silently replaces the previous record (last write
	// wins). This is the default.
	ReplaceDuplicates DuplicatePolicy = iota

	// RejectDuplicates keeps the first record and records the conflict,
	// retrievable via Extension.LoadErrors. The rejected declaration still
	// returns a configurable record so fluent call chains stay safe, but
	// that record is not reachable by lookup.
	RejectDuplicates
)

// Option configures an Extension at construction time
type Option func(*Extension)

// WithDuplicatePolicy selects how duplicate declarations are handled
func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(e *Extension) {
		e.duplicatePolicy = policy
	}
}

// WithMetrics attaches a metrics registry; declarations, lookup misses and
// stripped records are then counted per extension and kind
func WithMetrics(metrics *metric.MetricsRegistry) Option {
	return func(e *Extension) {
		e.metrics = metrics
	}
}

// WithRuntimeOnly marks the extension as compiled for a runtime without an
// editor. Declarations are still accepted and factories still resolve, but
// editor-facing metadata (sentences, grouping, icons) is not populated.
func WithRuntimeOnly() Option {
	return func(e *Extension) {
		e.compilationInfo = CompleteCompilationInformation(true)
	}
}
