package table

import (
	"io"
	"strconv"
)

// RowMapper turns a value into its cells, excluding the id column.
type RowMapper[T any] func(T) Row

// Entry is a value together with its id in the data source it came from.
type Entry[T any] struct {
	ID    int
	Value T
}

// Indexed renders values with a leading id column. Filtering the data
// before rendering keeps each value's original id.
type Indexed[T any] struct {
	table  *Table
	mapRow RowMapper[T]
}

// NewIndexed builds an indexed table. idCol heads the id column; cols follow.
func NewIndexed[T any](mapRow RowMapper[T], idCol Column, cols ...Column) *Indexed[T] {
	all := append([]Column{idCol}, cols...)
	return &Indexed[T]{table: New(all...), mapRow: mapRow}
}

// SetFooter replaces the footer format. An empty string omits it.
func (x *Indexed[T]) SetFooter(format string) { x.table.Footer = format }

// Render writes entries to w in the order given.
func (x *Indexed[T]) Render(w io.Writer, entries []Entry[T]) error {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = append(Row{strconv.Itoa(e.ID)}, x.mapRow(e.Value)...)
	}
	return x.table.Render(w, rows)
}
