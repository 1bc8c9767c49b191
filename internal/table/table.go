// Package table renders rows of text as a bordered, auto-sized console table.
//
//	+-------------------+
//	| ID | NAME  | AGE |
//	+-------------------+
//	|  0 | Kitty |   8 |
//	+-------------------+
//	1 rows in set.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align is the horizontal alignment of a column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. The rendered width is the largest of
// MinWidth, the header and every cell.
type Column struct {
	Header   string
	MinWidth int
	Align    Align
}

// Row is one line of cell values, one per column.
type Row []string

// Table is a set of columns plus the footer format. Footer receives the row
// count; an empty Footer omits the line.
type Table struct {
	Columns []Column
	Footer  string
}

// New returns a table with the given columns and the default footer.
func New(cols ...Column) *Table {
	return &Table{Columns: cols, Footer: "%d rows in set.\n"}
}

// Render writes rows to w. Rows shorter than the column list are padded with
// empty cells; extra cells are dropped.
func (t *Table) Render(w io.Writer, rows []Row) error {
	widths := t.widths(rows)

	var b strings.Builder
	border := t.border(widths)
	b.WriteString(border)
	t.line(&b, widths, t.headers())
	b.WriteString(border)
	for _, r := range rows {
		t.line(&b, widths, r)
	}
	b.WriteString(border)
	if t.Footer != "" {
		fmt.Fprintf(&b, t.Footer, len(rows))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Table) headers() Row {
	h := make(Row, len(t.Columns))
	for i, c := range t.Columns {
		h[i] = c.Header
	}
	return h
}

func (t *Table) widths(rows []Row) []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = max(c.MinWidth, runewidth.StringWidth(c.Header))
	}
	for _, r := range rows {
		for i := range t.Columns {
			if i < len(r) {
				widths[i] = max(widths[i], runewidth.StringWidth(r[i]))
			}
		}
	}
	return widths
}

// border is a single dashed line spanning the whole table.
func (t *Table) border(widths []int) string {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return "+" + strings.Repeat("-", total-2) + "+\n"
}

func (t *Table) line(b *strings.Builder, widths []int, r Row) {
	b.WriteString("|")
	for i, c := range t.Columns {
		cell := ""
		if i < len(r) {
			cell = r[i]
		}
		b.WriteString(" ")
		if c.Align == AlignRight {
			b.WriteString(runewidth.FillLeft(cell, widths[i]))
		} else {
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
