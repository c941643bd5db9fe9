package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

// Pipeline is an ordered list of operations.
// The zero value is an empty pipeline, ready to use.
type Pipeline struct {
	operations []Operation
}

// New creates an empty pipeline.
func New() Pipeline {
	return Pipeline{}
}

// Append returns a new pipeline running op after all the operations of p.
// p is left untouched.
func (p Pipeline) Append(op Operation) Pipeline {
	operations := make([]Operation, len(p.operations), len(p.operations)+1)
	copy(operations, p.operations)

	return Pipeline{operations: append(operations, op)}
}

// Operations returns a copy of the operations in execution order.
func (p Pipeline) Operations() []Operation {
	operations := make([]Operation, len(p.operations))
	copy(operations, p.operations)

	return operations
}

// Len returns the number of operations.
func (p Pipeline) Len() int {
	return len(p.operations)
}

func (p Pipeline) String() string {
	descriptions := make([]string, len(p.operations))
	for idx, op := range p.operations {
		if op == nil {
			descriptions[idx] = "<nil>"

			continue
		}
		descriptions[idx] = op.String()
	}

	return strings.Join(descriptions, " | ")
}

// Process applies every operation to input and returns the final text.
func (p Pipeline) Process(input string) (string, error) {
	return p.Run(context.Background(), input)
}

// Run applies every operation to input, notifying opts around each operation.
// It stops on the first error, whether it comes from an operation, an option or the context.
func (p Pipeline) Run(ctx context.Context, input string, opts ...model.PipelineOption) (string, error) {
	startTime := time.Now()

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return "", errors.Wrap(err, "unable to apply pipeline option")
		}
	}

	res := input
	parent := model.StartStep

	for idx, op := range p.operations {
		select {
		case <-ctx.Done():
			return "", errors.Wrapf(ctx.Err(), "operation %d", idx)
		default:
		}

		if op == nil {
			return "", errors.Wrapf(ErrNilOperation, "operation %d", idx)
		}

		info := &model.OperationInfo{
			Index:       idx,
			Name:        op.Name(),
			Description: op.String(),
		}

		for _, opt := range opts {
			err := opt.PrepareOperation(parent, info)
			if err != nil {
				return "", errors.Wrapf(err, "unable to prepare operation %d (%s)", idx, info.Name)
			}
		}

		startFn := time.Now()
		out, err := apply(op, res)
		if err != nil {
			return "", errors.Wrapf(err, "operation %d (%s)", idx, info.Name)
		}
		endFn := time.Since(startFn)

		for _, opt := range opts {
			err := opt.OnOperationOutput(info, len(res), len(out), endFn)
			if err != nil {
				return "", errors.Wrapf(err, "unable to observe operation %d (%s)", idx, info.Name)
			}
		}

		res = out
		parent = info
	}

	totalDuration := time.Since(startTime)

	for _, opt := range opts {
		err := opt.Finish(parent, totalDuration)
		if err != nil {
			return "", errors.Wrap(err, "unable to finish pipeline option")
		}
	}

	return res, nil
}
