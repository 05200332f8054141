// Package render produces bounded textual views of Tables and Columns for
// display. It consumes the store through its read-only accessors and holds
// no state of its own.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/go-slate/slate"
)

// DefaultRows is the row bound applied by Head and Tail
const DefaultRows = 5

// Table writes the first (or, with tail, the last) n rows of a Table to w in
// a fixed-width layout, one column per Table column plus a header line.
// n=0 renders every row.
func Table(w io.Writer, t *slate.Table, n int, tail bool) error {
	view := t.Head(n)
	if tail {
		view = t.Tail(n)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	names := view.ColumnNames()
	fmt.Fprintln(tw, strings.Join(names, "\t"))

	row := make([]string, len(names))
	for i := 0; i < view.NumRows(); i++ {
		for j, name := range names {
			col, err := view.Select(name)
			if err != nil {
				return err
			}
			row[j] = col.Value(i)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nPrinted: %d rows\n", view.NumRows())
	return err
}

// Column writes the first (or, with tail, the last) n cells of a Column to
// w, underneath its underlined name. n=0 renders every cell.
func Column(w io.Writer, c *slate.Column, n int, tail bool) error {
	rows := c.Len()
	if n == 0 || n > rows {
		n = rows
	}
	start := 0
	if tail {
		start = rows - n
	}
	fmt.Fprintln(w, c.Name())
	fmt.Fprintln(w, strings.Repeat("-", len(c.Name())))
	for i := start; i < start+n; i++ {
		fmt.Fprintln(w, c.Value(i))
	}
	_, err := fmt.Fprintf(w, "\nPrinted: %d rows\n", n)
	return err
}

// Head writes the first DefaultRows rows of a Table to w
func Head(w io.Writer, t *slate.Table) error {
	return Table(w, t, DefaultRows, false)
}

// Tail writes the last DefaultRows rows of a Table to w
func Tail(w io.Writer, t *slate.Table) error {
	return Table(w, t, DefaultRows, true)
}
