package measure

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2*time.Hour, round(2*time.Hour+10*time.Minute))
	assert.Equal(t, 3*time.Minute, round(3*time.Minute+10*time.Second))
	assert.Equal(t, 2*time.Second, round(2*time.Second+300*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, round(5*time.Millisecond+200*time.Microsecond))
	assert.Equal(t, 7*time.Microsecond, round(7*time.Microsecond+100*time.Nanosecond))
	assert.Equal(t, 500*time.Nanosecond, round(500*time.Nanosecond))
}

func TestDefaultMetric(t *testing.T) {
	t.Parallel()

	mt := &DefaultMetric{mu: &sync.Mutex{}}
	assert.Equal(t, time.Duration(0), mt.AVGDuration())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mt.AddDuration(2 * time.Second)
			mt.AddSizes(10, 4)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), mt.Count())
	assert.Equal(t, 2*time.Second, mt.AVGDuration())
	in, out := mt.Sizes()
	assert.Equal(t, int64(100), in)
	assert.Equal(t, int64(40), out)

	mt.SetTotalDuration(time.Minute)
	assert.Equal(t, time.Minute, mt.GetTotalDuration())
}

func TestDefaultMeasureAddMetricIsIdempotent(t *testing.T) {
	t.Parallel()

	msr := NewDefaultMeasure()
	first := msr.AddMetric("0: lowercase")
	first.AddDuration(time.Second)
	second := msr.AddMetric("0: lowercase")
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), second.Count())

	assert.Nil(t, msr.GetMetric("unknown"))
	assert.Equal(t, []string{"0: lowercase"}, msr.Names())
}
