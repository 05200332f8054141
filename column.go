package slate

import (
	"sort"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/go-slate/slate/errors"
)

// Column is a named, typed, ordered sequence of cell values within a Table.
// Cells are stored textually; an empty string denotes a missing value.
// A Column's dtype is fixed at creation from the observed data: every
// non-missing cell is guaranteed parseable as the dtype.
type Column struct {
	name   string
	dtype  DType
	values []string
}

// CreateColumn builds a Column from raw cell values, inferring its dtype
func CreateColumn(name string, values []string) *Column {
	return &Column{
		name:   name,
		dtype:  InferDType(values),
		values: values,
	}
}

// Name returns the name of this Column
func (c *Column) Name() string {
	return c.name
}

// DType returns the inferred dtype of this Column
func (c *Column) DType() DType {
	return c.dtype
}

// Len returns the number of cells in this Column, missing cells included
func (c *Column) Len() int {
	return len(c.values)
}

// Value returns the cell at row i
func (c *Column) Value(i int) string {
	return c.values[i]
}

// Values returns a snapshot copy of this Column's cells. The copy is not a
// live view: in-place Table mutations do not affect it.
func (c *Column) Values() []string {
	values := make([]string, len(c.values))
	copy(values, c.values)
	return values
}

// Sum computes the sum of the non-missing cells of a numeric Column
func (c *Column) Sum() (float64, error) {
	if !c.dtype.IsNumeric() {
		return 0, errors.IncompatibleTypeError{Op: "Sum", DType: c.dtype.String()}
	}
	var sum float64
	for _, v := range c.values {
		if len(v) == 0 {
			continue
		}
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, err
		}
		sum += num
	}
	return sum, nil
}

// Mean computes the arithmetic mean of the non-missing cells of a numeric
// Column. Missing cells are excluded from both the sum and the denominator.
func (c *Column) Mean() (float64, error) {
	if !c.dtype.IsNumeric() {
		return 0, errors.IncompatibleTypeError{Op: "Mean", DType: c.dtype.String()}
	}
	sum, err := c.Sum()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, v := range c.values {
		if len(v) > 0 {
			count++
		}
	}
	if count == 0 {
		return 0, errors.EmptyColumnError{Name: c.name}
	}
	return sum / float64(count), nil
}

// Sorted returns a new ascending-order copy of this Column's cells, compared
// numerically. Sorting a StringType column is not supported.
func (c *Column) Sorted() ([]string, error) {
	if !c.dtype.IsNumeric() {
		return nil, errors.IncompatibleTypeError{Op: "Sorted", DType: c.dtype.String()}
	}
	result := make([]string, len(c.values))
	copy(result, c.values)
	sort.Slice(result, func(i, j int) bool {
		// missing cells sort first
		a, errA := strconv.ParseFloat(result[i], 64)
		b, errB := strconv.ParseFloat(result[j], 64)
		if errA != nil {
			return errB == nil
		}
		if errB != nil {
			return false
		}
		return a < b
	})
	return result, nil
}

// Min returns the smallest non-missing value of a numeric Column
func (c *Column) Min() (float64, error) {
	sorted, err := c.Sorted()
	if err != nil {
		return 0, err
	}
	for _, v := range sorted {
		if len(v) > 0 {
			return strconv.ParseFloat(v, 64)
		}
	}
	return 0, errors.EmptyColumnError{Name: c.name}
}

// Max returns the largest non-missing value of a numeric Column
func (c *Column) Max() (float64, error) {
	sorted, err := c.Sorted()
	if err != nil {
		return 0, err
	}
	if len(sorted) == 0 || len(sorted[len(sorted)-1]) == 0 {
		return 0, errors.EmptyColumnError{Name: c.name}
	}
	return strconv.ParseFloat(sorted[len(sorted)-1], 64)
}

// FillMissing replaces every missing cell in place with fill, coerced to the
// textual form of this Column's dtype
func (c *Column) FillMissing(fill FillValue) {
	replacement := fill.forDType(c.dtype)
	for i, v := range c.values {
		if len(v) == 0 {
			c.values[i] = replacement
		}
	}
}

// Test applies a relational Comparison between each cell of a numeric Column
// and a numeric key, producing a Mask with one entry per row. A missing cell
// yields false under every Comparison, Neq included. A cell which fails to
// parse as a number also yields false rather than surfacing an error.
func (c *Column) Test(op Comparison, key float64) (Mask, error) {
	if !c.dtype.IsNumeric() {
		return nil, errors.IncompatibleTypeError{Op: op.String(), DType: c.dtype.String()}
	}
	mask := make(Mask, len(c.values))
	for i, v := range c.values {
		if len(v) == 0 {
			continue
		}
		num, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		mask[i] = compareFloat(op, num, key)
	}
	return mask, nil
}

// TestString applies a relational Comparison between each cell of a
// StringType Column and a text key, producing a Mask with one entry per row.
// Comparison is byte-wise lexicographic, and missing cells receive no special
// treatment: the empty string compares like any other value.
func (c *Column) TestString(op Comparison, key string) (Mask, error) {
	if c.dtype.IsNumeric() {
		return nil, errors.IncompatibleTypeError{Op: op.String(), DType: c.dtype.String()}
	}
	mask := make(Mask, len(c.values))
	for i, v := range c.values {
		mask[i] = compareString(op, v, key)
	}
	return mask, nil
}

// Fingerprint returns a hash of this Column's name, dtype and cells
func (c *Column) Fingerprint() uint64 {
	hasher := xxhash.New()
	hasher.WriteString(c.name)
	hasher.WriteString(c.dtype.String())
	for _, v := range c.values {
		hasher.WriteString(v)
		hasher.Write([]byte{0})
	}
	return hasher.Sum64()
}

// clone returns a deep copy of this Column
func (c *Column) clone() *Column {
	return &Column{
		name:   c.name,
		dtype:  c.dtype,
		values: c.Values(),
	}
}

// selectRows returns a new Column holding the rows mask selects
func (c *Column) selectRows(mask Mask) *Column {
	values := make([]string, 0, mask.CountTrue())
	for i, keep := range mask {
		if keep {
			values = append(values, c.values[i])
		}
	}
	return &Column{name: c.name, dtype: c.dtype, values: values}
}

func compareFloat(op Comparison, v float64, key float64) bool {
	switch op {
	case Eq:
		return v == key
	case Neq:
		return v != key
	case Lt:
		return v < key
	case Gt:
		return v > key
	case Leq:
		return v <= key
	default:
		return v >= key
	}
}

func compareString(op Comparison, v string, key string) bool {
	switch op {
	case Eq:
		return v == key
	case Neq:
		return v != key
	case Lt:
		return v < key
	case Gt:
		return v > key
	case Leq:
		return v <= key
	default:
		return v >= key
	}
}
