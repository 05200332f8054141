package slate

import (
	"encoding/binary"
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/gofrs/uuid"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/go-slate/slate/errors"
)

// Table is an ordered collection of equal-length Columns sharing a row
// index. Column order is tracked separately from the name lookup and the two
// never diverge. Tables are not safe for concurrent mutation; callers
// coordinating across goroutines must supply their own synchronization.
type Table struct {
	id    uuid.UUID
	order []string
	cols  map[string]*Column
}

// RenamePair maps an existing column name to its replacement
type RenamePair struct {
	Old string
	New string
}

// CreateTable builds an empty Table. Parsers populate it with AddColumn.
func CreateTable() *Table {
	return &Table{
		id:   uuid.Must(uuid.NewV4()),
		cols: make(map[string]*Column),
	}
}

// ID returns a unique identifier for this Table instance, for log
// correlation. Derived Tables receive fresh IDs.
func (t *Table) ID() string {
	return t.id.String()
}

// NumRows returns the number of data rows in this Table
func (t *Table) NumRows() int {
	if len(t.order) == 0 {
		return 0
	}
	return t.cols[t.order[0]].Len()
}

// NumColumns returns the number of Columns in this Table
func (t *Table) NumColumns() int {
	return len(t.order)
}

// ColumnNames returns the column names of this Table in logical order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// HasColumn returns true iff this Table contains a Column with the given name
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Select returns the named Column
func (t *Table) Select(name string) (*Column, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, errors.ColumnNotFoundError{Name: name}
	}
	return col, nil
}

// AddColumn appends a Column to this Table. The new Column's length must
// match the Table's existing row count, and its name must be unused.
func (t *Table) AddColumn(col *Column) error {
	if _, exists := t.cols[col.Name()]; exists {
		return errors.DuplicateColumnError{Name: col.Name()}
	}
	if len(t.order) > 0 && col.Len() != t.NumRows() {
		return errors.MaskLengthError{Expected: t.NumRows(), Actual: col.Len()}
	}
	t.order = append(t.order, col.Name())
	t.cols[col.Name()] = col
	return nil
}

// Rename moves columns to new names, keeping each at its existing position
// in the Table's column order and leaving dtype and data untouched. All
// pairs are validated before any is applied: unknown old names and new
// names colliding with an existing column (or with each other) are
// accumulated and returned together.
func (t *Table) Rename(pairs []RenamePair) error {
	var errs *multierror.Error
	taken := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		if _, ok := t.cols[pair.Old]; !ok {
			errs = multierror.Append(errs, errors.ColumnNotFoundError{Name: pair.Old})
		}
		_, exists := t.cols[pair.New]
		if (exists && pair.New != pair.Old) || taken[pair.New] {
			errs = multierror.Append(errs, errors.DuplicateColumnError{Name: pair.New})
		}
		taken[pair.New] = true
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}
	for _, pair := range pairs {
		col := t.cols[pair.Old]
		renamed := &Column{name: pair.New, dtype: col.dtype, values: col.values}
		delete(t.cols, pair.Old)
		t.cols[pair.New] = renamed
		for i, name := range t.order {
			if name == pair.Old {
				t.order[i] = pair.New
			}
		}
	}
	return nil
}

// FillMissing replaces every missing cell in every Column of this Table with
// fill, coerced per-column to the receiving dtype
func (t *Table) FillMissing(fill FillValue) {
	for _, name := range t.order {
		t.cols[name].FillMissing(fill)
	}
}

// DropMissing removes from every Column the rows where the named Column's
// cell is missing
func (t *Table) DropMissing(name string) error {
	col, err := t.Select(name)
	if err != nil {
		return err
	}
	keep := make(Mask, col.Len())
	for i := 0; i < col.Len(); i++ {
		keep[i] = len(col.Value(i)) > 0
	}
	for _, n := range t.order {
		t.cols[n].values = t.cols[n].selectRows(keep).values
	}
	return nil
}

// Filter produces a new, fully independent Table containing only the rows
// mask selects, preserving column order, names and dtypes. The source Table
// is never mutated, and the two share no storage afterwards.
func (t *Table) Filter(mask Mask) (*Table, error) {
	if len(mask) != t.NumRows() {
		return nil, errors.MaskLengthError{Expected: t.NumRows(), Actual: len(mask)}
	}
	filtered := CreateTable()
	for _, name := range t.order {
		filtered.order = append(filtered.order, name)
		filtered.cols[name] = t.cols[name].selectRows(mask)
	}
	return filtered, nil
}

// Clone returns a deep copy of this Table with a fresh ID
func (t *Table) Clone() *Table {
	cloned := CreateTable()
	for _, name := range t.order {
		cloned.order = append(cloned.order, name)
		cloned.cols[name] = t.cols[name].clone()
	}
	return cloned
}

// Head returns a new Table holding the first n rows of this one. n=0 means
// all rows; n beyond the row count is clamped.
func (t *Table) Head(n int) *Table {
	return t.slice(n, false)
}

// Tail returns a new Table holding the last n rows of this one. n=0 means
// all rows; n beyond the row count is clamped.
func (t *Table) Tail(n int) *Table {
	return t.slice(n, true)
}

func (t *Table) slice(n int, tail bool) *Table {
	rows := t.NumRows()
	if n == 0 || n > rows {
		n = rows
	}
	mask := make(Mask, rows)
	start := 0
	if tail {
		start = rows - n
	}
	for i := start; i < start+n; i++ {
		mask[i] = true
	}
	sliced, _ := t.Filter(mask)
	return sliced
}

// Equals returns nil iff two Tables hold the same column names in the same
// order, with identical dtypes and cell values
func (t *Table) Equals(other *Table) error {
	if t.NumColumns() != other.NumColumns() {
		return fmt.Errorf("Tables have unequal numbers of columns")
	}
	for i, name := range t.order {
		if other.order[i] != name {
			return fmt.Errorf("Column %d is named %s in one Table and %s in the other", i, name, other.order[i])
		}
		a := t.cols[name]
		b := other.cols[name]
		if a.DType() != b.DType() {
			return fmt.Errorf("Column %s dtypes do not match", name)
		}
		if a.Len() != b.Len() {
			return fmt.Errorf("Column %s lengths do not match", name)
		}
		for j := 0; j < a.Len(); j++ {
			if a.Value(j) != b.Value(j) {
				return fmt.Errorf("Column %s differs at row %d", name, j)
			}
		}
	}
	return nil
}

// Fingerprint returns a hash of this Table's column order and contents.
// Two Tables with equal Fingerprints hold the same data in the same layout.
func (t *Table) Fingerprint() uint64 {
	hasher := xxhash.New()
	buf := make([]byte, 8)
	for _, name := range t.order {
		binary.LittleEndian.PutUint64(buf, t.cols[name].Fingerprint())
		hasher.Write(buf)
	}
	return hasher.Sum64()
}
