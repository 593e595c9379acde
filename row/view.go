package row

import (
	"iter"

	"github.com/colwire/chcol/block"
)

// View is a cheap, row-major projection of one row of a Block: looking
// up a column by name and projecting its idx-th cell is O(1) for
// fixed-width scalars, matching spec §4.5.
type View struct {
	b   *block.Block
	idx int
}

// NewView wraps block b's row idx. idx must be in [0, b.RowCount).
func NewView(b *block.Block, idx int) View {
	return View{b: b, idx: idx}
}

// Index returns this view's row index within its block.
func (v View) Index() int {
	return v.idx
}

// Column projects the named column's value at this view's row.
func (v View) Column(name string) (Value, bool) {
	col, ok := v.b.Column(name)
	if !ok {
		return Value{}, false
	}

	return Project(col, v.idx), true
}

// All returns an iterator over every (name, Value) pair in this row, in
// the block's declared column order.
func (v View) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, c := range v.b.Columns {
			if !yield(c.Name, Project(c.Column, v.idx)) {
				return
			}
		}
	}
}

// Rows returns an iterator over every row of b as (index, View) pairs,
// mirroring the teacher's NumericBlob.All(metricID) iter.Seq2[int,
// NumericDataPoint] family.
func Rows(b *block.Block) iter.Seq2[int, View] {
	return func(yield func(int, View) bool) {
		for i := 0; i < b.RowCount; i++ {
			if !yield(i, NewView(b, i)) {
				return
			}
		}
	}
}
