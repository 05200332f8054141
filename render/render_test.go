package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-slate/slate"
)

func buildTable(t *testing.T) *slate.Table {
	table := slate.CreateTable()
	require.Nil(t, table.AddColumn(slate.CreateColumn("name", []string{"alice", "bob", "carol", "dave", "erin", "frank"})))
	require.Nil(t, table.AddColumn(slate.CreateColumn("age", []string{"30", "25", "41", "", "29", "52"})))
	return table
}

func TestRenderTableHead(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Table(&buf, buildTable(t), 2, false))
	out := buf.String()

	require.True(t, strings.Contains(out, "name"))
	require.True(t, strings.Contains(out, "alice"))
	require.True(t, strings.Contains(out, "bob"))
	require.False(t, strings.Contains(out, "carol"))
	require.True(t, strings.Contains(out, "Printed: 2 rows"))
}

func TestRenderTableTail(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Table(&buf, buildTable(t), 2, true))
	out := buf.String()

	require.False(t, strings.Contains(out, "alice"))
	require.True(t, strings.Contains(out, "erin"))
	require.True(t, strings.Contains(out, "frank"))
}

func TestRenderTableZeroMeansAllRows(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Table(&buf, buildTable(t), 0, false))
	require.True(t, strings.Contains(buf.String(), "Printed: 6 rows"))
}

func TestRenderTableDoesNotMutate(t *testing.T) {
	table := buildTable(t)
	before := table.Fingerprint()
	var buf bytes.Buffer
	require.Nil(t, Table(&buf, table, 3, false))
	require.Equal(t, before, table.Fingerprint())
}

func TestRenderColumn(t *testing.T) {
	table := buildTable(t)
	col, err := table.Select("name")
	require.Nil(t, err)

	var buf bytes.Buffer
	require.Nil(t, Column(&buf, col, 2, false))
	require.Equal(t, "name\n----\nalice\nbob\n\nPrinted: 2 rows\n", buf.String())

	buf.Reset()
	require.Nil(t, Column(&buf, col, 1, true))
	require.Equal(t, "name\n----\nfrank\n\nPrinted: 1 rows\n", buf.String())
}

func TestRenderHeadDefaultBound(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, Head(&buf, buildTable(t)))
	require.True(t, strings.Contains(buf.String(), "Printed: 5 rows"))
	require.False(t, strings.Contains(buf.String(), "frank"))
}
