package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/pkg/pipeline/measure"
	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m measure.Measure
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep.Key())
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = pd.AddStep(model.EndStep.Key())
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (pd *pipelineDrawer) PrepareOperation(parent, operation *model.OperationInfo) error {
	err := pd.AddStep(operation.Key())
	if err != nil {
		return err
	}
	err = pd.AddLink(parent.Key(), operation.Key())
	if err != nil {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) OnOperationOutput(_ *model.OperationInfo, _, _ int, _ time.Duration) error {
	return nil
}

func (pd *pipelineDrawer) Finish(last *model.OperationInfo, totalDuration time.Duration) error {
	err := pd.AddLink(last.Key(), model.EndStep.Key())
	if err != nil {
		return err
	}

	if pd.m != nil {
		err := pd.SetTotalTime(model.EndStep.Key(), totalDuration)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer returns a pipeline option drawing the operations of each run with drawer.
// When measure is not nil, it must be the measure given to measure.PipelineMeasure, and the
// measure option must come first so the graph includes the metrics of the current run.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{drawer, measure}
}
