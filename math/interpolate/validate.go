package interpolate

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the smallest allowed gap between adjacent breakpoints.
const Epsilon = 1e-8

// ErrorKind classifies the reason a table could not be constructed.
type ErrorKind int

const (
	MinLength ErrorKind = iota
	ShapeMismatch
	InvalidValue
	NotStrictlyIncreasing
)

// Sentinel errors matching each ErrorKind. A *ConstructionError unwraps to
// the sentinel for its kind, so callers can use errors.Is.
var (
	ErrMinLength = errors.New(
		"At least two values should be provided for all dimensions",
	)
	ErrShapeMismatch = errors.New(
		"Breakpoint and value dimensions do not match",
	)
	ErrInvalidValue = errors.New(
		"Cannot create a lookup table containing NaNs or Infinities",
	)
	ErrNotStrictlyIncreasing = errors.New(
		"Breakpoints should be in strictly increasing order",
	)
)

func (k ErrorKind) String() string {
	switch k {
	case MinLength:
		return "MinLength"
	case ShapeMismatch:
		return "ShapeMismatch"
	case InvalidValue:
		return "InvalidValue"
	case NotStrictlyIncreasing:
		return "NotStrictlyIncreasing"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case MinLength:
		return ErrMinLength
	case ShapeMismatch:
		return ErrShapeMismatch
	case InvalidValue:
		return ErrInvalidValue
	case NotStrictlyIncreasing:
		return ErrNotStrictlyIncreasing
	}
	return nil
}

// ConstructionError is returned by every table constructor when the supplied
// samples are malformed. Name is the offending input ("xs", "ys", or "vals")
// and Index is the position of the first bad element, or -1 if the problem
// concerns the input as a whole. For a 2D surface, Index is the row for
// length and shape errors and the row-major cell index for invalid values.
type ConstructionError struct {
	Kind  ErrorKind
	Name  string
	Index int
}

func (err *ConstructionError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("%s (%s).", err.Kind.sentinel(), err.Name)
	}
	return fmt.Sprintf(
		"%s (%s[%d]).", err.Kind.sentinel(), err.Name, err.Index,
	)
}

func (err *ConstructionError) Unwrap() error { return err.Kind.sentinel() }

// Validate1D checks that xs and vals describe a valid 1D table. The checks are
// made in a fixed order and the first failure is returned: minimum length,
// matching lengths, finite values, and strictly increasing breakpoints.
func Validate1D(xs, vals []float64) error {
	if len(xs) < 2 {
		return &ConstructionError{MinLength, "xs", -1}
	} else if len(vals) < 2 {
		return &ConstructionError{MinLength, "vals", -1}
	}

	if len(xs) != len(vals) {
		return &ConstructionError{ShapeMismatch, "vals", -1}
	}

	if i := firstNonFinite(xs); i >= 0 {
		return &ConstructionError{InvalidValue, "xs", i}
	} else if i := firstNonFinite(vals); i >= 0 {
		return &ConstructionError{InvalidValue, "vals", i}
	}

	if i := firstNonIncreasing(xs); i >= 0 {
		return &ConstructionError{NotStrictlyIncreasing, "xs", i}
	}

	return nil
}

// Validate2D checks that xs, ys, and the surface vals describe a valid 2D
// table, where vals[i][j] is the value at (xs[i], ys[j]). The axes are checked
// independently with the same rules as Validate1D. The surface is checked
// for shape and finiteness but has no ordering requirement.
func Validate2D(xs, ys []float64, vals [][]float64) error {
	if len(xs) < 2 {
		return &ConstructionError{MinLength, "xs", -1}
	} else if len(ys) < 2 {
		return &ConstructionError{MinLength, "ys", -1}
	} else if len(vals) < 2 {
		return &ConstructionError{MinLength, "vals", -1}
	}
	for i := range vals {
		if len(vals[i]) < 2 {
			return &ConstructionError{MinLength, "vals", i}
		}
	}

	if len(vals) != len(xs) {
		return &ConstructionError{ShapeMismatch, "vals", -1}
	}
	for i := range vals {
		if len(vals[i]) != len(ys) {
			return &ConstructionError{ShapeMismatch, "vals", i}
		}
	}

	if i := firstNonFinite(xs); i >= 0 {
		return &ConstructionError{InvalidValue, "xs", i}
	} else if i := firstNonFinite(ys); i >= 0 {
		return &ConstructionError{InvalidValue, "ys", i}
	}
	for i := range vals {
		if j := firstNonFinite(vals[i]); j >= 0 {
			return &ConstructionError{InvalidValue, "vals", i*len(ys) + j}
		}
	}

	if i := firstNonIncreasing(xs); i >= 0 {
		return &ConstructionError{NotStrictlyIncreasing, "xs", i}
	} else if i := firstNonIncreasing(ys); i >= 0 {
		return &ConstructionError{NotStrictlyIncreasing, "ys", i}
	}

	return nil
}

// firstNonFinite returns the index of the first NaN or infinite element of xs
// or -1 if there isn't one.
func firstNonFinite(xs []float64) int {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return i
		}
	}
	return -1
}

// firstNonIncreasing returns the index i of the first element where
// xs[i] - xs[i-1] <= Epsilon, or -1 if there isn't one.
func firstNonIncreasing(xs []float64) int {
	for i := 1; i < len(xs); i++ {
		if !(xs[i]-xs[i-1] > Epsilon) {
			return i
		}
	}
	return -1
}
