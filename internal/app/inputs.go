package app

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/content-admin/internal/domain"
)

// validate is the package-level validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// QuestionInput carries the attributes submitted for create and update.
// The admin form posts question[title]; the JSON API sends {"title": ...}.
type QuestionInput struct {
	Title string `form:"question[title]" json:"title" validate:"required,max=255"`
}

// Attrs returns the domain attributes with surrounding whitespace removed.
func (in QuestionInput) Attrs() domain.QuestionAttrs {
	return domain.QuestionAttrs{Title: strings.TrimSpace(in.Title)}
}

// Validate checks the input before it reaches the store.
func (in QuestionInput) Validate() error {
	trimmed := QuestionInput{Title: strings.TrimSpace(in.Title)}

	return toValidationError(domain.EntityQuestion, validate.Struct(trimmed))
}

// ContentInput carries the attributes submitted to create a Content.
type ContentInput struct {
	Title string `json:"title" validate:"required,max=255"`
}

// Validate checks the input before it reaches the store.
func (in ContentInput) Validate() error {
	trimmed := ContentInput{Title: strings.TrimSpace(in.Title)}

	return toValidationError(domain.EntityContent, validate.Struct(trimmed))
}

// toValidationError converts validator output into a domain.ValidationError
// keyed by lower-case field name.
func toValidationError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}

	return domain.NewValidationErrorWithFields(entity, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "can't be blank"
	case "max":
		return "is too long (maximum is " + fe.Param() + " characters)"
	default:
		return "is invalid"
	}
}
