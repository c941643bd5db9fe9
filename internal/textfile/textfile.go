// Package textfile loads the text given to a pipeline.
package textfile

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var ErrPathMustBeSet = errors.New("path must be set")

// ReadFile returns the whole content of the file stored at path.
func ReadFile(path string) (string, error) {
	if path == "" {
		return "", ErrPathMustBeSet
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read file %s", path)
	}

	return string(buf), nil
}

// Read returns the whole content of r.
func Read(r io.Reader) (string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "unable to read input")
	}

	return string(buf), nil
}

// ReadLines returns the lines of the file stored at path, see SplitLines.
func ReadLines(path string) ([]string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return SplitLines(content), nil
}

// SplitLines splits text on "\n". A trailing "\r" is removed from every line
// and the empty line after the last line break is dropped.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for idx, line := range lines {
		lines[idx] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
