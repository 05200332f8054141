package jsonl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/errors"
)

func TestJSONLParserBasic(t *testing.T) {
	input := `{"name":"alice","age":30,"meta":{"city":"berlin"}}
{"name":"bob","age":25,"meta":{"city":"kyoto"}}
`
	parser := CreateParser(&ParserConf{Columns: []string{"name", "age", "meta.city"}})
	table, err := parser.Parse(strings.NewReader(input))
	require.Nil(t, err)

	require.Equal(t, []string{"name", "age", "meta.city"}, table.ColumnNames())
	require.Equal(t, 2, table.NumRows())

	age, err := table.Select("age")
	require.Nil(t, err)
	require.Equal(t, slate.IntType, age.DType())
	require.Equal(t, []string{"30", "25"}, age.Values())

	city, err := table.Select("meta.city")
	require.Nil(t, err)
	require.Equal(t, []string{"berlin", "kyoto"}, city.Values())
}

func TestJSONLParserMissingAndNullBecomeMissingCells(t *testing.T) {
	input := `{"name":"alice","age":30}
{"name":"bob","age":null}
{"name":"carol"}
`
	parser := CreateParser(&ParserConf{Columns: []string{"name", "age"}})
	table, err := parser.Parse(strings.NewReader(input))
	require.Nil(t, err)

	age, err := table.Select("age")
	require.Nil(t, err)
	require.Equal(t, []string{"30", "", ""}, age.Values())
	// missing cells are ignored for inference
	require.Equal(t, slate.IntType, age.DType())
}

func TestJSONLParserRejectsDuplicateColumns(t *testing.T) {
	parser := CreateParser(&ParserConf{Columns: []string{"a", "a"}})
	_, err := parser.Parse(strings.NewReader(`{"a":1}`))
	require.IsType(t, errors.DuplicateColumnError{}, err)
}

func TestJSONLParserRequiresColumns(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	_, err := parser.Parse(strings.NewReader(`{"a":1}`))
	require.NotNil(t, err)
}

func TestJSONLParserSkipsCommentLines(t *testing.T) {
	input := "# header comment\n{\"a\":1}\n\n{\"a\":2}\n"
	parser := CreateParser(&ParserConf{Columns: []string{"a"}, Comment: '#'})
	table, err := parser.Parse(strings.NewReader(input))
	require.Nil(t, err)
	require.Equal(t, 2, table.NumRows())
}
