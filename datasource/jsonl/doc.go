// Package jsonl parses JSON-lines data into a slate.Table. Each line holds
// one JSON object; configured columns are gjson paths evaluated against
// every line, and paths with no result produce missing cells. Cell values
// are stored textually and column dtypes are inferred from the result, so a
// stream of numeric JSON values yields a numeric column.
package jsonl
