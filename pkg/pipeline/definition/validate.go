package definition

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const ngramSizeTag = "ngram_size"

var (
	structValidator *validator.Validate
	once            sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in error messages
		structValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(fld.Name)
			}

			return name
		})

		structValidator.RegisterStructValidation(validateNGramSize, Definition{})
	})

	return structValidator
}

// validate checks s against its struct tags and returns an error wrapping ErrInvalidDefinition.
func validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(ErrInvalidDefinition, err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Namespace()+": "+formatValidationError(e))
	}

	return errors.Wrap(ErrInvalidDefinition, strings.Join(messages, "; "))
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + e.Param()
	case ngramSizeTag:
		return "must be at least " + e.Param() + " for ngrams"
	case "min":
		return "must contain at least " + e.Param() + " element(s)"
	default:
		return "failed on " + e.Tag()
	}
}
