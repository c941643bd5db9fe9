package pipeline

type batch struct {
	concurrent int
}

type BatchOption func(b *batch)

// BatchConcurrency sets the maximum number of inputs processed at the same time.
// Values lower than 1 are replaced by 1.
func BatchConcurrency(concurrent int) BatchOption {
	return func(b *batch) {
		b.concurrent = concurrent
	}
}
