package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NewValidator: validator.New() yang melaporkan field pakai nama json-nya.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationFieldErrors mengubah validator.ValidationErrors → map field → pesan.
// Namespace root struct dibuang: "CGPACalculateRequest.courses[0].credit" → "courses[0].credit".
func ValidationFieldErrors(err error) map[string][]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string][]string{"_": {err.Error()}}
	}

	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out[field] = append(out[field], fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s items/characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "grade":
		return "must be a letter grade (A, A-, B+, B, B-, C+, C, C-, D+, D, F)"
	default:
		return fe.Tag() // bisa diganti jadi pesan kustom
	}
}

// ValidationError: shortcut controller → 422
func ValidationError(c *fiber.Ctx, err error) error {
	return JsonValidationError(c, ValidationFieldErrors(err))
}
