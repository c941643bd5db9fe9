package measure

import "time"

// Measure stores one metric per operation of a pipeline.
type Measure interface {
	// AddMetric returns the metric with the given name, creating it if needed.
	AddMetric(name string) Metric
	// GetMetric returns the metric with the given name, nil if it does not exist.
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the executions of one operation.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AddSizes(inputSize, outputSize int)
	AVGDuration() time.Duration
	Count() int64
	Sizes() (inputSize, outputSize int64)
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
