package slate

import (
	"github.com/go-slate/slate/errors"
)

// Comparison identifies a relational test applied to each cell of a Column
type Comparison int

const (
	// Eq is the equality Comparison
	Eq Comparison = iota
	// Neq is the inequality Comparison
	Neq
	// Lt is the less-than Comparison
	Lt
	// Gt is the greater-than Comparison
	Gt
	// Leq is the less-than-or-equal Comparison
	Leq
	// Geq is the greater-than-or-equal Comparison
	Geq
)

// String returns a human-readable representation of a Comparison
func (c Comparison) String() string {
	switch c {
	case Eq:
		return "=="
	case Neq:
		return "!="
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Leq:
		return "<="
	default:
		return ">="
	}
}

// Mask is an ordered sequence of booleans, one per data row of a Table,
// used to select a subset of rows via Table.Filter. Masks are produced by
// Column.Test and Column.TestString and may be combined with And, Or and Not.
type Mask []bool

// CountTrue returns the number of rows this Mask selects
func (m Mask) CountTrue() int {
	n := 0
	for _, b := range m {
		if b {
			n++
		}
	}
	return n
}

// And combines two Masks of equal length into one which selects only rows selected by both
func (m Mask) And(other Mask) (Mask, error) {
	if len(m) != len(other) {
		return nil, errors.MaskLengthError{Expected: len(m), Actual: len(other)}
	}
	result := make(Mask, len(m))
	for i := range m {
		result[i] = m[i] && other[i]
	}
	return result, nil
}

// Or combines two Masks of equal length into one which selects rows selected by either
func (m Mask) Or(other Mask) (Mask, error) {
	if len(m) != len(other) {
		return nil, errors.MaskLengthError{Expected: len(m), Actual: len(other)}
	}
	result := make(Mask, len(m))
	for i := range m {
		result[i] = m[i] || other[i]
	}
	return result, nil
}

// Not returns a new Mask selecting exactly the rows this one does not
func (m Mask) Not() Mask {
	result := make(Mask, len(m))
	for i := range m {
		result[i] = !m[i]
	}
	return result
}
