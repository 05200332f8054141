// Package dsv parses delimiter-separated values into a slate.Table. The
// first line of the input names the columns; every following line is one
// data row. Fields are split on the raw delimiter with no quoting or
// escaping, so a field containing the delimiter is misparsed - a documented
// limitation of the format, not something the parser repairs.
package dsv
