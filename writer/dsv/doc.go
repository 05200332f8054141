// Package dsv renders a slate.Table back to delimiter-separated text, with
// configurable separator, header and index lines, missing-value marker and
// column subset. Output can optionally be lz4-compressed; the datasource/dsv
// parser reads it back with its Compressed option.
package dsv
