package errors

import (
	"fmt"
)

// IncompatibleTypeError occurs when an operation requiring one column dtype is invoked on another
type IncompatibleTypeError struct {
	Op    string
	DType string
}

// Error returns a textual representation of this IncompatibleTypeError
func (e IncompatibleTypeError) Error() string {
	return fmt.Sprintf("Operation %s is not compatible with dtype %s", e.Op, e.DType)
}

// ColumnNotFoundError occurs when a referenced column name does not exist in a Table
type ColumnNotFoundError struct{ Name string }

// Error returns a textual representation of this ColumnNotFoundError
func (e ColumnNotFoundError) Error() string {
	return fmt.Sprintf("Column %s does not exist", e.Name)
}

// MaskLengthError occurs when a Mask's length does not match a Table's row count,
// or when a new Column's length does not match its Table's existing columns
type MaskLengthError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this MaskLengthError
func (e MaskLengthError) Error() string {
	return fmt.Sprintf("Length %d does not match row count %d", e.Actual, e.Expected)
}

// DuplicateColumnError occurs when two columns in the same Table share a name
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column %s already exists", e.Name)
}

// RaggedRowError occurs when a delimited row is missing more than one
// trailing field, or carries more fields than the header
type RaggedRowError struct {
	Line     int
	Expected int
	Actual   int
}

// Error returns a textual representation of this RaggedRowError
func (e RaggedRowError) Error() string {
	return fmt.Sprintf("Row on line %d has %d fields but the header has %d", e.Line, e.Actual, e.Expected)
}

// EmptyColumnError occurs when Min or Max is computed over a column with no non-missing values
type EmptyColumnError struct{ Name string }

// Error returns a textual representation of this EmptyColumnError
func (e EmptyColumnError) Error() string {
	return fmt.Sprintf("Column %s has no non-missing values", e.Name)
}
