package pipeline

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ProcessBatch processes every input independently and returns the outputs in the same order.
//
// The pipeline is shared by all the go routines: this is safe since running a pipeline never modifies it.
// The first error cancels the remaining inputs and is returned with the index of the failing input.
func (p Pipeline) ProcessBatch(ctx context.Context, inputs []string, opts ...BatchOption) ([]string, error) {
	cfg := &batch{concurrent: 1}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.concurrent < 1 {
		cfg.concurrent = 1
	}

	outputs := make([]string, len(inputs))

	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(cfg.concurrent)

	for idx := range inputs {
		// stop scheduling new inputs as soon as one of them failed
		if dCtx.Err() != nil {
			break
		}

		localIdx := idx
		errGrp.Go(func() error {
			out, err := p.Run(dCtx, inputs[localIdx])
			if err != nil {
				return errors.Wrapf(err, "input %d", localIdx)
			}
			outputs[localIdx] = out

			return nil
		})
	}

	err := errGrp.Wait()
	if err != nil {
		return nil, err
	}

	// the parent context may be cancelled without any go routine noticing it,
	// e.g. with an empty pipeline
	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "unable to process batch")
	}

	return outputs, nil
}
