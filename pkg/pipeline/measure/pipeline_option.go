package measure

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

var ErrMetricNotFound = errors.New("metric not found")

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartStep.Key())
	pm.AddMetric(model.EndStep.Key())

	return nil
}

func (pm *pipelineMeasure) PrepareOperation(_, operation *model.OperationInfo) error {
	pm.AddMetric(operation.Key())

	return nil
}

func (pm *pipelineMeasure) OnOperationOutput(operation *model.OperationInfo, inputSize, outputSize int, computationDuration time.Duration) error {
	mt := pm.GetMetric(operation.Key())
	if mt == nil {
		return errors.Wrap(ErrMetricNotFound, operation.Key())
	}
	mt.AddDuration(computationDuration)
	mt.AddSizes(inputSize, outputSize)

	return nil
}

func (pm *pipelineMeasure) Finish(_ *model.OperationInfo, totalDuration time.Duration) error {
	mt := pm.GetMetric(model.EndStep.Key())
	if mt == nil {
		return errors.Wrap(ErrMetricNotFound, model.EndStep.Key())
	}
	mt.AddDuration(totalDuration)
	mt.SetTotalDuration(totalDuration)

	return nil
}

// PipelineMeasure returns a pipeline option recording every operation into measure.
// The same measure can be given to many runs, metrics accumulate.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
