package validator

import (
	"reflect"
	"strings"

	"github.com/academiq/ielts-reading-service/internal/scoring"
	"github.com/go-playground/validator/v10"
)

// Validator wraps a go-playground validator with the reading-specific tags
// registered.
type Validator struct {
	structValidator *validator.Validate
}

func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct returns the raw validator error
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate validates struct tags and reports failures as ValidationErrors
func (v *Validator) Validate(s interface{}) error {
	if err := v.ValidateStruct(s); err != nil {
		if errs := ToValidationErrors(err); len(errs) > 0 {
			return errs
		}
		return err
	}
	return nil
}

// Var validates a single value against a tag expression
func (v *Validator) Var(field interface{}, tag string) error {
	return v.structValidator.Var(field, tag)
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_number", validateQuestionNumber)
	validate.RegisterValidation("correct_count", validateCorrectCount)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateQuestionNumber(fl validator.FieldLevel) bool {
	n, ok := intValue(fl.Field())
	return ok && n >= 1 && n <= scoring.TotalQuestions
}

func validateCorrectCount(fl validator.FieldLevel) bool {
	n, ok := intValue(fl.Field())
	return ok && n >= 0 && n <= scoring.TotalQuestions
}

func intValue(v reflect.Value) (int64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), true
	default:
		return 0, false
	}
}
