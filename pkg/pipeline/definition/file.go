package definition

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hjson/hjson-go"
	"github.com/pkg/errors"

	"github.com/askiada/go-textpipe/pkg/pipeline"
)

// File is the content of a pipeline definition file.
type File struct {
	Operations []Definition `json:"operations" validate:"required,min=1,dive"`
}

// Pipeline creates the pipeline described by the file.
func (f File) Pipeline() (pipeline.Pipeline, error) {
	return Build(f.Operations)
}

// Load reads an hjson pipeline definition.
// Operation kinds are resolved, aliases included, and every definition is validated.
func Load(r io.Reader) (File, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return File{}, errors.Wrap(err, "unable to read pipeline definition")
	}

	// hjson decodes into generic values only: go through json to fill the struct.
	var tmp map[string]interface{}

	err = hjson.Unmarshal(buf, &tmp)
	if err != nil {
		return File{}, errors.Wrap(err, "unable to parse pipeline definition")
	}

	tmpJSON, err := json.Marshal(tmp)
	if err != nil {
		return File{}, errors.Wrap(err, "unable to convert pipeline definition")
	}

	var file File

	err = json.Unmarshal(tmpJSON, &file)
	if err != nil {
		return File{}, errors.Wrap(ErrInvalidDefinition, err.Error())
	}

	for idx := range file.Operations {
		if kind, ok := canonicalKind(file.Operations[idx].Kind); ok {
			file.Operations[idx].Kind = kind
		}
	}

	err = validate(file)
	if err != nil {
		return File{}, err
	}

	return file, nil
}

// LoadFile reads the hjson pipeline definition stored at path.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, errors.Wrapf(err, "unable to open pipeline definition %s", path)
	}
	defer f.Close()

	file, err := Load(f)
	if err != nil {
		return File{}, errors.Wrap(err, path)
	}

	return file, nil
}
