package model

import "strconv"

// OperationInfo describes one operation of a running pipeline.
type OperationInfo struct {
	// Index is the position of the operation in the pipeline, starting at 0.
	// Start and end sentinels use -1.
	Index int
	// Name is the stable operation name, e.g. "ngrams".
	Name string
	// Description includes the operation parameters, e.g. `ngrams(sep="; ", n=2)`.
	Description string
}

// Key uniquely identifies the operation inside a pipeline.
// Two identical operations at different positions get different keys.
func (oi *OperationInfo) Key() string {
	if oi.Index < 0 {
		return oi.Name
	}

	return strconv.Itoa(oi.Index) + ": " + oi.Description
}

var (
	StartStep = &OperationInfo{Index: -1, Name: "start"}
	EndStep   = &OperationInfo{Index: -1, Name: "end"}
)
