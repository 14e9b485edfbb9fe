// Package calcerr berisi jenis error yang dipakai bersama oleh projector.
package calcerr

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput: field angka wajib kosong, tidak finite, di luar rentang,
	// atau huruf nilai tidak ada di skala.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero: penyebut CGPA (total credit) bernilai 0.
	ErrDivisionByZero = errors.New("division by zero")
)

// Invalid membungkus ErrInvalidInput dengan nama field.
func Invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, fmt.Sprintf(format, args...))
}

// Required mengembalikan *p, atau ErrInvalidInput dengan nama field kalau p nil.
func Required(field string, p *float64) (float64, error) {
	if p == nil {
		return 0, Invalid(field, "is required")
	}
	return Finite(field, *p)
}

func Finite(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, Invalid(field, "is not a number")
	}
	return v, nil
}

func NonNegative(field string, v float64) (float64, error) {
	v, err := Finite(field, v)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, Invalid(field, "must not be negative")
	}
	return v, nil
}

func Between(field string, v, lo, hi float64) (float64, error) {
	v, err := Finite(field, v)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, Invalid(field, "must be between %.2f and %.2f", lo, hi)
	}
	return v, nil
}
