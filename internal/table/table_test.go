package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Render(t *testing.T) {
	tbl := New(
		Column{Header: "ID", MinWidth: 3, Align: AlignRight},
		Column{Header: "NAME", MinWidth: 10, Align: AlignLeft},
		Column{Header: "AGE", MinWidth: 3, Align: AlignRight},
	)

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, []Row{{"0", "Kitty", "8"}, {"1", "Bruno", "12"}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "|  ID | NAME       | AGE |", lines[1])
	assert.Equal(t, "|   0 | Kitty      |   8 |", lines[3])
	assert.Equal(t, "|   1 | Bruno      |  12 |", lines[4])
	assert.Equal(t, "2 rows in set.", lines[6])
	for _, i := range []int{0, 2, 5} {
		assert.Equal(t, len(lines[1]), len(lines[i]), "border %d spans the table", i)
		assert.True(t, strings.HasPrefix(lines[i], "+-"))
	}
}

func TestTable_GrowsToWidestCell(t *testing.T) {
	tbl := New(Column{Header: "NAME", MinWidth: 2})

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, []Row{{"Bartholomew"}}))
	assert.Contains(t, buf.String(), "| Bartholomew |")
	assert.Contains(t, buf.String(), "| NAME        |")
}

func TestTable_WideRunes(t *testing.T) {
	tbl := New(Column{Header: "NAME"})
	tbl.Footer = ""

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, []Row{{"ポチ"}}))
	assert.Contains(t, buf.String(), "| ポチ |")
	assert.NotContains(t, buf.String(), "rows in set")
}

func TestTable_ShortRowsArePadded(t *testing.T) {
	tbl := New(Column{Header: "A"}, Column{Header: "B"})

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, []Row{{"x"}, {"1", "2", "3"}}))
	assert.Contains(t, buf.String(), "| x |   |")
	assert.Contains(t, buf.String(), "| 1 | 2 |")
}

type pet struct {
	name string
	age  int
}

func TestIndexed_KeepsSourceIDs(t *testing.T) {
	x := NewIndexed(
		func(p pet) Row { return Row{p.name, strings.Repeat("*", p.age)} },
		Column{Header: "ID", Align: AlignRight},
		Column{Header: "NAME"},
		Column{Header: "AGE"},
	)

	var buf bytes.Buffer
	require.NoError(t, x.Render(&buf, []Entry[pet]{{ID: 4, Value: pet{"Rex", 2}}}))
	assert.Contains(t, buf.String(), "|  4 | Rex  | **  |")
	assert.Contains(t, buf.String(), "1 rows in set.")

	buf.Reset()
	x.SetFooter("")
	require.NoError(t, x.Render(&buf, nil))
	assert.NotContains(t, buf.String(), "rows in set")
}
