package dsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pierrec/lz4"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/errors"
	"github.com/go-slate/slate/logging"
)

// WriterConf configures a DSV Writer. The zero value produces the default
// layout: comma-separated, header line, leading index column, missing cells
// rendered as the empty string, all columns in table order.
type WriterConf struct {
	Separator  string   // The separator joining fields on each line. Defaults to ,
	NoHeader   bool     // Suppresses the header line
	NoIndex    bool     // Suppresses the leading index column of zero-based row numbers
	NilValue   string   // The marker rendered in place of missing cells. Defaults to "" (the empty string).
	Columns    []string // The columns to write, in order. Defaults to all columns in table order.
	Compressed bool     // Whether to lz4-compress the output. Defaults to false.
}

// Writer renders Tables as DSV data
type Writer struct {
	conf *WriterConf
}

// CreateWriter returns a new DSV Writer
func CreateWriter(conf *WriterConf) *Writer {
	if len(conf.Separator) == 0 {
		conf.Separator = ","
	}
	return &Writer{conf: conf}
}

// Write renders a Table to w. Every requested column is validated before any
// output is produced; unknown names are accumulated and returned together.
// The row count is taken from the first written column.
func (wr *Writer) Write(w io.Writer, t *slate.Table) error {
	cols := wr.conf.Columns
	if len(cols) == 0 {
		cols = t.ColumnNames()
	}
	var errs *multierror.Error
	selected := make([]*slate.Column, 0, len(cols))
	for _, name := range cols {
		col, err := t.Select(name)
		if err != nil {
			errs = multierror.Append(errs, errors.ColumnNotFoundError{Name: name})
			continue
		}
		selected = append(selected, col)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	if wr.conf.Compressed {
		zw := lz4.NewWriter(w)
		if err := wr.write(zw, selected); err != nil {
			return err
		}
		return zw.Close()
	}
	return wr.write(w, selected)
}

func (wr *Writer) write(w io.Writer, cols []*slate.Column) error {
	buf := bufio.NewWriter(w)
	sep := wr.conf.Separator

	if !wr.conf.NoHeader {
		if !wr.conf.NoIndex {
			buf.WriteString("index")
			buf.WriteString(sep)
		}
		for i, col := range cols {
			if i > 0 {
				buf.WriteString(sep)
			}
			buf.WriteString(col.Name())
		}
		buf.WriteByte('\n')
	}

	numRows := 0
	if len(cols) > 0 {
		numRows = cols[0].Len()
	}
	for row := 0; row < numRows; row++ {
		if !wr.conf.NoIndex {
			buf.WriteString(strconv.Itoa(row))
			buf.WriteString(sep)
		}
		for i, col := range cols {
			if i > 0 {
				buf.WriteString(sep)
			}
			value := col.Value(row)
			if len(value) == 0 {
				value = wr.conf.NilValue
			}
			buf.WriteString(value)
		}
		buf.WriteByte('\n')
	}
	return buf.Flush()
}

// WriteFile renders a Table to a freshly created file
func (wr *Writer) WriteFile(path string, t *slate.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to open %s for writing: %w", path, err)
	}
	if err := wr.Write(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logging.Logf(logging.InfoLevel, "Saved table %s to %s with separator %q", t.ID(), path, wr.conf.Separator)
	return nil
}
