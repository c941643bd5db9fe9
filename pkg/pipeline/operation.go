package pipeline

import (
	"fmt"
)

// Operation is one string transformation of a pipeline.
//
// The set of operations is closed, only the types of this package implement it:
// RemovePunctuationOp, TrimSpacesOp, LowercaseOp and NGramsOp.
type Operation interface {
	// Name returns the stable name of the operation.
	Name() string
	// String returns the name of the operation with its parameters.
	String() string

	operation()
}

const (
	RemovePunctuationName = "remove_punctuation"
	TrimSpacesName        = "trim_spaces"
	LowercaseName         = "lowercase"
	NGramsName            = "ngrams"
)

// RemovePunctuationOp removes every ASCII punctuation character.
type RemovePunctuationOp struct{}

// TrimSpacesOp collapses every run of whitespace into a single space and trims both ends.
type TrimSpacesOp struct{}

// LowercaseOp maps the text to its lowercase form.
type LowercaseOp struct{}

// NGramsOp replaces the text by its word n-grams.
type NGramsOp struct {
	// Separator is written between two n-grams.
	Separator string
	// N is the number of words of each n-gram.
	N int
}

func RemovePunctuation() RemovePunctuationOp { return RemovePunctuationOp{} }

func TrimSpaces() TrimSpacesOp { return TrimSpacesOp{} }

func Lowercase() LowercaseOp { return LowercaseOp{} }

// NGrams creates an n-gram operation. The size is checked when the pipeline runs:
// a size lower than 1 makes the run fail with ErrInvalidNGramSize.
func NGrams(separator string, n int) NGramsOp {
	return NGramsOp{Separator: separator, N: n}
}

func (RemovePunctuationOp) Name() string   { return RemovePunctuationName }
func (RemovePunctuationOp) String() string { return RemovePunctuationName }
func (RemovePunctuationOp) operation()     {}

func (TrimSpacesOp) Name() string   { return TrimSpacesName }
func (TrimSpacesOp) String() string { return TrimSpacesName }
func (TrimSpacesOp) operation()     {}

func (LowercaseOp) Name() string   { return LowercaseName }
func (LowercaseOp) String() string { return LowercaseName }
func (LowercaseOp) operation()     {}

func (NGramsOp) Name() string { return NGramsName }

func (o NGramsOp) String() string {
	return fmt.Sprintf("%s(sep=%q, n=%d)", NGramsName, o.Separator, o.N)
}

func (NGramsOp) operation() {}

var (
	_ Operation = RemovePunctuationOp{}
	_ Operation = TrimSpacesOp{}
	_ Operation = LowercaseOp{}
	_ Operation = NGramsOp{}
)
