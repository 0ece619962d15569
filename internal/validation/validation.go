// Package validation checks request DTOs declared with `validate` struct tags.
//
// A field may carry a `msg` tag with the message reported for any rule it
// fails; fields without one get a generic message for the failed rule.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"devconnector/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// DateLayouts are the accepted formats for fields validated with `date`.
var DateLayouts = []string{time.RFC3339, "2006-01-02"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank rejects values that are empty once trimmed; taglist wants at
	// least one non-blank entry in a comma separated list.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("taglist", func(fl validator.FieldLevel) bool {
		for _, tag := range strings.Split(fl.Field().String(), ",") {
			if strings.TrimSpace(tag) != "" {
				return true
			}
		}
		return false
	})

	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return v
}

// ParseDate parses s using the first matching layout in DateLayouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid date: " + s)
}

// Struct validates v and returns a validation AppError listing every failing
// field in declaration order, or nil.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.NewInternalError(err)
	}

	typ := reflect.TypeOf(v)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	fields := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, models.FieldError{
			Field: fe.Field(),
			Msg:   messageFor(typ, fe),
		})
	}
	return models.NewFieldErrors(fields...)
}

func messageFor(typ reflect.Type, fe validator.FieldError) string {
	if typ.Kind() == reflect.Struct {
		if sf, ok := typ.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get("msg"); msg != "" {
				return msg
			}
		}
	}

	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "taglist":
		return fe.Field() + " needs at least one entry"
	case "email":
		return "Please include a valid email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "date":
		return fe.Field() + " must be a valid date"
	case "url":
		return fe.Field() + " must be a valid URL"
	default:
		return "Invalid value"
	}
}
