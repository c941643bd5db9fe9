package model

import "time"

// PipelineOption defines the interface for pipeline options.
// Options observe a run; they never change the text flowing through the pipeline.
type PipelineOption interface {
	// New initialises the pipeline option. It runs once at the beginning of each run.
	New() error
	// PrepareOperation runs before the operation is executed.
	// parent is the previous operation, or StartStep for the first one.
	PrepareOperation(parent, operation *OperationInfo) error
	// OnOperationOutput runs every time an operation produced its output.
	OnOperationOutput(operation *OperationInfo, inputSize, outputSize int, computationDuration time.Duration) error
	// Finish runs after the last operation succeeded.
	// last is the last operation, or StartStep for an empty pipeline.
	Finish(last *OperationInfo, totalDuration time.Duration) error
}
