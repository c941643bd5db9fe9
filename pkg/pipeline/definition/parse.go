package definition

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/pkg/pipeline"
)

var (
	ErrUnknownOperation  = errors.New("unknown operation")
	ErrInvalidDefinition = errors.New("invalid operation definition")
)

// DefaultSeparator separates n-grams when no separator is given.
const DefaultSeparator = " "

var aliases = map[string]string{
	"punct": pipeline.RemovePunctuationName,
	"trim":  pipeline.TrimSpacesName,
	"lower": pipeline.LowercaseName,
}

// Kinds returns the canonical names of all the operations, in the order they are documented.
func Kinds() []string {
	return []string{
		pipeline.RemovePunctuationName,
		pipeline.TrimSpacesName,
		pipeline.LowercaseName,
		pipeline.NGramsName,
	}
}

// canonicalKind resolves aliases and case. The second value is false for unknown names.
func canonicalKind(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if kind, ok := aliases[name]; ok {
		return kind, true
	}

	for _, kind := range Kinds() {
		if kind == name {
			return kind, true
		}
	}

	return name, false
}

// Parse creates an operation from its compact form, e.g. "lowercase" or "ngrams:2:; ".
func Parse(s string) (pipeline.Operation, error) {
	name, args, hasArgs := strings.Cut(s, ":")

	kind, ok := canonicalKind(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperation, "%q", name)
	}

	if kind != pipeline.NGramsName {
		if hasArgs {
			return nil, errors.Wrapf(ErrInvalidDefinition, "%s does not take any argument", kind)
		}

		return Definition{Kind: kind}.Operation()
	}

	if !hasArgs {
		return nil, errors.Wrapf(ErrInvalidDefinition, "%s requires a size, e.g. %s:2", kind, kind)
	}

	size, separator, hasSeparator := strings.Cut(args, ":")

	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDefinition, "%s size %q is not a number", kind, size)
	}

	def := Definition{Kind: kind, N: n}
	if hasSeparator {
		def.Separator = &separator
	}

	return def.Operation()
}

// ParseAll creates a pipeline running the operations in the given order.
func ParseAll(compact []string) (pipeline.Pipeline, error) {
	pipe := pipeline.New()

	for idx, s := range compact {
		op, err := Parse(s)
		if err != nil {
			return pipeline.Pipeline{}, errors.Wrapf(err, "operation %d", idx)
		}

		pipe = pipe.Append(op)
	}

	return pipe, nil
}
