package errors

import "math"

// ValidateMinInt checks that an integer shape parameter is at least min.
// It returns an INVALID_SHAPE error naming the parameter otherwise.
//
// Shape generators use it to reject degenerate sizes instead of silently
// producing empty boards.
func ValidateMinInt(name string, value, min int) error {
	if value < min {
		return New(ErrCodeInvalidShape, "%s must be >= %d, got %d", name, min, value)
	}
	return nil
}

// ValidatePositive checks that a float option is finite and strictly positive.
func ValidatePositive(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if value <= 0 {
		return New(ErrCodeInvalidInput, "%s must be > 0, got %g", name, value)
	}
	return nil
}

// ValidateNonNegative checks that a float option is finite and not negative.
func ValidateNonNegative(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if value < 0 {
		return New(ErrCodeInvalidInput, "%s must be >= 0, got %g", name, value)
	}
	return nil
}

// ValidateFieldType checks that a field type tag is a non-negative integer.
func ValidateFieldType(value int) error {
	if value < 0 {
		return New(ErrCodeInvalidInput, "field type must be >= 0, got %d", value)
	}
	return nil
}
