// Package stats summarizes numeric Columns.
package stats

import (
	"github.com/go-slate/slate"
)

// Summary holds descriptive statistics for a single numeric Column. Missing
// cells contribute to Missing and are excluded from every other figure.
type Summary struct {
	Name    string
	DType   slate.DType
	Count   int
	Missing int
	Sum     float64
	Mean    float64
	Min     float64
	Max     float64
}

// Describe computes a Summary of a numeric Column. StringType columns are
// not summarizable and yield an IncompatibleTypeError.
func Describe(c *slate.Column) (*Summary, error) {
	sum, err := c.Sum()
	if err != nil {
		return nil, err
	}
	mean, err := c.Mean()
	if err != nil {
		return nil, err
	}
	min, err := c.Min()
	if err != nil {
		return nil, err
	}
	max, err := c.Max()
	if err != nil {
		return nil, err
	}
	missing := 0
	for i := 0; i < c.Len(); i++ {
		if len(c.Value(i)) == 0 {
			missing++
		}
	}
	return &Summary{
		Name:    c.Name(),
		DType:   c.DType(),
		Count:   c.Len() - missing,
		Missing: missing,
		Sum:     sum,
		Mean:    mean,
		Min:     min,
		Max:     max,
	}, nil
}

// DescribeTable computes Summaries for every numeric Column of a Table, in
// table order. StringType columns are skipped rather than rejected.
func DescribeTable(t *slate.Table) ([]*Summary, error) {
	summaries := make([]*Summary, 0, t.NumColumns())
	for _, name := range t.ColumnNames() {
		col, err := t.Select(name)
		if err != nil {
			return nil, err
		}
		if !col.DType().IsNumeric() {
			continue
		}
		summary, err := Describe(col)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
