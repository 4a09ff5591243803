package rpc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/example/dayboard/internal/models"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "tag", func(fl validator.FieldLevel) bool {
		return models.Tag(fl.Field().String()).Valid()
	})
	mustRegister(v, "column", func(fl validator.FieldLevel) bool {
		return models.Column(fl.Field().String()).Valid()
	})
	mustRegister(v, "review_type", func(fl validator.FieldLevel) bool {
		return models.ReviewType(fl.Field().String()).Valid()
	})
	mustRegister(v, "automation_status", func(fl validator.FieldLevel) bool {
		return models.AutomationStatus(fl.Field().String()).Valid()
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		return models.IsDate(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validator %s: %v", tag, err))
	}
}

// describeValidation turns validator failures into one caller-facing message.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" "+describeRule(fe))
	}
	return strings.Join(parts, "; ")
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "tag":
		return fmt.Sprintf("must be one of %s", joinValues(models.AllTags()))
	case "column":
		return fmt.Sprintf("must be one of %s", joinValues(models.AllColumns()))
	case "review_type":
		return fmt.Sprintf("must be one of %s", joinValues(models.AllReviewTypes()))
	case "automation_status":
		return fmt.Sprintf("must be one of %s", joinValues(models.AllAutomationStatuses()))
	case "isodate":
		return "must be a YYYY-MM-DD date"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func joinValues[T ~string](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%q", string(v))
	}
	return strings.Join(s, ", ")
}
