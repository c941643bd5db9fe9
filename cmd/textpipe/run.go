package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/askiada/go-textpipe/internal/config"
	"github.com/askiada/go-textpipe/internal/textfile"
	"github.com/askiada/go-textpipe/pkg/pipeline"
	"github.com/askiada/go-textpipe/pkg/pipeline/definition"
	"github.com/askiada/go-textpipe/pkg/pipeline/drawer"
	"github.com/askiada/go-textpipe/pkg/pipeline/measure"
	"github.com/askiada/go-textpipe/pkg/pipeline/model"
)

var ErrNoOperation = errors.New("no operation: use --op, --pipeline-file or the pipeline section of the config")

func newRunCmd(defaults config.Config) *cobra.Command {
	var ops []string

	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Process files, or stdin when no file is given",
		Example: `  textpipe run --op punct --op trim --op lower book.txt
  textpipe run --op "ngrams:2:; " --lines --concurrency 4 corpus.txt
  textpipe run --pipeline-file pipeline.hjson --graph pipeline.dot --measure < book.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, err := buildPipeline(activeCfg.Pipeline, ops)
			if err != nil {
				return err
			}
			log.Debugf("Pipeline: %s", pipe)

			return runPipeline(cmd.Context(), pipe, activeCfg, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringArrayVar(&ops, "op", nil, "Operation to append to the pipeline, repeatable (see the ops command)")
	config.RegisterRunFlags(cmd.Flags(), defaults)

	return cmd
}

// buildPipeline gives priority to the operations given on the command line,
// then to the definition file and finally to the configured operations.
func buildPipeline(cfg config.PipelineConfig, ops []string) (pipeline.Pipeline, error) {
	switch {
	case len(ops) > 0:
		return definition.ParseAll(ops)
	case cfg.File != "":
		file, err := definition.LoadFile(cfg.File)
		if err != nil {
			return pipeline.Pipeline{}, err
		}

		return file.Pipeline()
	case len(cfg.Operations) > 0:
		return definition.ParseAll(cfg.Operations)
	default:
		return pipeline.Pipeline{}, ErrNoOperation
	}
}

type input struct {
	name    string
	content string
}

func readInputs(paths []string, stdin io.Reader) ([]input, error) {
	if len(paths) == 0 {
		content, err := textfile.Read(stdin)
		if err != nil {
			return nil, err
		}

		return []input{{name: "stdin", content: content}}, nil
	}

	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		content, err := textfile.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: path, content: content})
	}

	return inputs, nil
}

func runPipeline(ctx context.Context, pipe pipeline.Pipeline, cfg config.Config, paths []string, stdin io.Reader, out io.Writer) error {
	inputs, err := readInputs(paths, stdin)
	if err != nil {
		return err
	}

	var (
		msr  *measure.DefaultMeasure
		opts []model.PipelineOption
	)

	if cfg.Output.Measure {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, measure.PipelineMeasure(msr))
	}

	if cfg.Output.Graph != "" {
		var drawerMeasure measure.Measure
		if msr != nil {
			drawerMeasure = msr
		}
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(cfg.Output.Graph), drawerMeasure))
	}

	if cfg.Batch.Lines && len(opts) > 0 {
		log.Warn("--measure and --graph are ignored with --lines")
	}

	for _, in := range inputs {
		logger := log.WithField("input", in.name)

		var res string
		if cfg.Batch.Lines {
			res, err = processLines(ctx, pipe, in.content, cfg.Batch.Concurrency)
		} else {
			res, err = pipe.Run(ctx, in.content, opts...)
		}

		if err != nil {
			return errors.Wrapf(err, "unable to process %s", in.name)
		}
		logger.Debugf("Processed %d bytes into %d bytes", len(in.content), len(res))

		_, err = fmt.Fprintln(out, res)
		if err != nil {
			return errors.Wrap(err, "unable to write output")
		}
	}

	if msr != nil {
		logMeasure(msr)
	}

	if cfg.Output.Graph != "" && !cfg.Batch.Lines {
		log.Infof("Pipeline graph written to %s", cfg.Output.Graph)
	}

	return nil
}

func processLines(ctx context.Context, pipe pipeline.Pipeline, content string, concurrency int) (string, error) {
	lines := textfile.SplitLines(content)

	res, err := pipe.ProcessBatch(ctx, lines, pipeline.BatchConcurrency(concurrency))
	if err != nil {
		return "", err
	}

	return strings.Join(res, "\n"), nil
}

func logMeasure(msr *measure.DefaultMeasure) {
	for _, name := range msr.Names() {
		mt := msr.GetMetric(name)
		if name == model.StartStep.Key() {
			continue
		}

		if name == model.EndStep.Key() {
			log.WithFields(log.Fields{
				"runs": mt.Count(),
				"avg":  mt.AVGDuration(),
				"last": mt.GetTotalDuration(),
			}).Info("Pipeline")

			continue
		}

		inputSize, outputSize := mt.Sizes()
		log.WithFields(log.Fields{
			"runs":         mt.Count(),
			"avg":          mt.AVGDuration(),
			"input_bytes":  inputSize,
			"output_bytes": outputSize,
		}).Infof("Operation %s", name)
	}
}
