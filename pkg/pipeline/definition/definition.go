package definition

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/pkg/pipeline"
)

// Definition describes one operation.
type Definition struct {
	Kind string `json:"kind" validate:"required,oneof=remove_punctuation trim_spaces lowercase ngrams"`
	// Separator is only used by ngrams. It defaults to DefaultSeparator.
	Separator *string `json:"separator,omitempty"`
	// N is only used by ngrams, where it must be at least 1.
	N int `json:"n,omitempty"`
}

// validateNGramSize reports an ngrams definition whose size is lower than 1.
func validateNGramSize(sl validator.StructLevel) {
	def, ok := sl.Current().Interface().(Definition)
	if !ok {
		return
	}

	if def.Kind == pipeline.NGramsName && def.N < 1 {
		sl.ReportError(def.N, "n", "N", ngramSizeTag, "1")
	}
}

// Operation validates the definition and creates the matching operation.
func (d Definition) Operation() (pipeline.Operation, error) {
	if kind, ok := canonicalKind(d.Kind); ok {
		d.Kind = kind
	}

	err := validate(d)
	if err != nil {
		return nil, err
	}

	switch d.Kind {
	case pipeline.RemovePunctuationName:
		return pipeline.RemovePunctuation(), nil
	case pipeline.TrimSpacesName:
		return pipeline.TrimSpaces(), nil
	case pipeline.LowercaseName:
		return pipeline.Lowercase(), nil
	case pipeline.NGramsName:
		separator := DefaultSeparator
		if d.Separator != nil {
			separator = *d.Separator
		}

		return pipeline.NGrams(separator, d.N), nil
	default:
		return nil, errors.Wrapf(ErrUnknownOperation, "%q", d.Kind)
	}
}

// Build creates a pipeline running the definitions in the given order.
func Build(defs []Definition) (pipeline.Pipeline, error) {
	pipe := pipeline.New()

	for idx, def := range defs {
		op, err := def.Operation()
		if err != nil {
			return pipeline.Pipeline{}, errors.Wrapf(err, "operation %d", idx)
		}

		pipe = pipe.Append(op)
	}

	return pipe, nil
}
