package helper

import (
	"errors"

	"unicalc_backend/internals/features/calculators/calcerr"

	"github.com/gofiber/fiber/v2"
)

// FromCalcError memetakan error projector ke response JSON konsisten.
//   - ErrInvalidInput   → 422 (field "input")
//   - ErrDivisionByZero → 422 (field "total_credits")
//   - *fiber.Error      → kode bawaan
//   - lainnya           → 500
func FromCalcError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, calcerr.ErrInvalidInput):
		return JsonValidationError(c, map[string][]string{"input": {err.Error()}})
	case errors.Is(err, calcerr.ErrDivisionByZero):
		return JsonValidationError(c, map[string][]string{"total_credits": {err.Error()}})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
