package pipeline

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// apply runs a single operation on text.
func apply(op Operation, text string) (string, error) {
	switch o := op.(type) {
	case RemovePunctuationOp:
		return removePunctuation(text), nil
	case TrimSpacesOp:
		return trimSpaces(text), nil
	case LowercaseOp:
		return lowercase(text), nil
	case NGramsOp:
		return nGrams(text, o.Separator, o.N)
	case nil:
		return "", ErrNilOperation
	default:
		return "", errors.Wrapf(ErrUnknownOperation, "%T", op)
	}
}

func isASCIIPunctuation(r rune) bool {
	switch {
	case r >= '!' && r <= '/',
		r >= ':' && r <= '@',
		r >= '[' && r <= '`',
		r >= '{' && r <= '~':
		return true
	default:
		return false
	}
}

// removePunctuation works on bytes: punctuation is ASCII only and the other bytes,
// including invalid UTF-8, are copied as they are.
func removePunctuation(text string) string {
	first := strings.IndexFunc(text, func(r rune) bool {
		return r < utf8.RuneSelf && isASCIIPunctuation(r)
	})
	if first < 0 {
		return text
	}

	var builder strings.Builder
	builder.Grow(len(text))
	builder.WriteString(text[:first])

	for idx := first; idx < len(text); idx++ {
		c := text[idx]
		if c < utf8.RuneSelf && isASCIIPunctuation(rune(c)) {
			continue
		}
		builder.WriteByte(c)
	}

	return builder.String()
}

func trimSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// lowercase uses the root locale: the result does not depend on the environment.
// A Caser keeps state between calls, a new one is created for each text.
func lowercase(text string) string {
	return cases.Lower(language.Und).String(text)
}

func nGrams(text, separator string, n int) (string, error) {
	if n < 1 {
		return "", errors.Wrapf(ErrInvalidNGramSize, "got %d", n)
	}

	words := strings.Fields(text)
	if len(words) < n {
		return "", nil
	}

	var builder strings.Builder

	for start := 0; start+n <= len(words); start++ {
		if start > 0 {
			builder.WriteString(separator)
		}

		for idx, word := range words[start : start+n] {
			if idx > 0 {
				builder.WriteByte(' ')
			}

			builder.WriteString(word)
		}
	}

	return builder.String(), nil
}
