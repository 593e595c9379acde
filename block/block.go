// Package block decodes one native-format block: a block-info section
// (possibly holding no fields), a column count, a row count, and that many (name, type, body) column
// triples. ReadStream generalizes to a sequence of blocks packed
// back-to-back, the way the teacher's blob package exposes iterator
// families over its own columnar payloads.
package block

import (
	"io"
	"iter"
	"strings"

	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/column"
	"github.com/colwire/chcol/internal/pool"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// Info is the block-info prefix: is_overflows and bucket_num, each
// present only when the server tags the block with it. ReadBlock always
// reads this section: a block with no info fields still carries the 0
// terminator byte, and a block with no block-info section at all is not
// recognised (its first bytes are read as block-info fields).
type Info struct {
	IsOverflows bool
	BucketNum   int32
}

// NamedColumn is one column slot in a Block, in declared order.
type NamedColumn struct {
	Name   string
	Type   typeexpr.TypeTree
	Column *column.Column
}

// Block is one decoded native-format block: an ordered set of named
// columns sharing one row count.
type Block struct {
	Info     Info
	RowCount int
	Columns  []NamedColumn
}

// Column looks up a column by name.
func (b *Block) Column(name string) (*column.Column, bool) {
	for _, c := range b.Columns {
		if c.Name == name {
			return c.Column, true
		}
	}

	return nil, false
}

// readBlockInfo reads the optional (field-id, value) prefix terminated
// by field-id 0. Field 1 is a 1-byte is_overflows; field 2 is a 4-byte
// bucket_num. Any other field id has no known width and is rejected.
func readBlockInfo(cur *wire.Cursor) (Info, error) {
	var info Info

	for {
		fieldID, err := readUvarintBlock(cur)
		if err != nil {
			return Info{}, err
		}
		if fieldID == 0 {
			return info, nil
		}

		switch fieldID {
		case 1:
			b, err := cur.Take(1)
			if err != nil {
				return Info{}, err
			}
			info.IsOverflows = b[0] != 0
		case 2:
			b, err := cur.Take(4)
			if err != nil {
				return Info{}, err
			}
			v, _, err := wire.ReadInt32(b)
			if err != nil {
				return Info{}, err
			}
			info.BucketNum = v
		default:
			return Info{}, chcolerr.At(cur.Pos(), chcolerr.ErrInvalidHeaderSize)
		}
	}
}

func readUvarintBlock(cur *wire.Cursor) (uint64, error) {
	v, n, err := wire.ReadUvarint(cur.Remaining())
	if err != nil {
		return 0, err
	}
	if err := cur.Advance(n); err != nil {
		return 0, err
	}

	return v, nil
}

func readLengthPrefixedString(cur *wire.Cursor) (string, error) {
	b, n, err := wire.ReadString(cur.Remaining())
	if err != nil {
		return "", err
	}
	if err := cur.Advance(n); err != nil {
		return "", err
	}

	return string(b), nil
}

// ReadBlock decodes one block starting at the cursor's current
// position, leaving the cursor immediately after the last column.
func ReadBlock(cur *wire.Cursor, opt Config) (Block, error) {
	info, err := readBlockInfo(cur)
	if err != nil {
		return Block{}, err
	}

	colCount, err := readUvarintBlock(cur)
	if err != nil {
		return Block{}, err
	}

	rowCount, err := readUvarintBlock(cur)
	if err != nil {
		return Block{}, err
	}

	columns := make([]NamedColumn, colCount)
	for i := range columns {
		name, err := readLengthPrefixedString(cur)
		if err != nil {
			return Block{}, err
		}

		typeExpr, err := readLengthPrefixedString(cur)
		if err != nil {
			return Block{}, chcolerr.AtColumn(cur.Pos(), name, err)
		}

		tt, err := typeexpr.Parse(typeExpr)
		if err != nil {
			return Block{}, chcolerr.AtColumn(cur.Pos(), name, err)
		}

		col, err := column.Decode(tt, int(rowCount), cur, opt.Config)
		if err != nil {
			return Block{}, chcolerr.AtColumn(cur.Pos(), name, err)
		}

		columns[i] = NamedColumn{Name: name, Type: tt, Column: col}
	}

	b := Block{Info: info, RowCount: int(rowCount), Columns: columns}
	if opt.AssumeFlattenedNested {
		b.Columns = regroupFlattenedNested(b.Columns)
	}

	return b, nil
}

// regroupFlattenedNested merges consecutive "parent.field" sibling
// columns sharing the same "parent" prefix back into one synthetic
// Nested column, undoing the flattened representation the server uses
// when assume_flattened_nested is set. Each sibling was itself decoded
// as Array(T) (one array per row); the regrouped column zips their
// inner columns into a single Array(Tuple(fields)), reusing the first
// sibling's offsets as canonical — flattened siblings of one Nested
// column always share the same per-row cardinality.
func regroupFlattenedNested(columns []NamedColumn) []NamedColumn {
	out := make([]NamedColumn, 0, len(columns))

	i := 0
	for i < len(columns) {
		parent, _, ok := splitNestedName(columns[i].Name)
		if !ok || columns[i].Column.Array == nil {
			out = append(out, columns[i])
			i++
			continue
		}

		j := i
		var fields []typeexpr.Field
		var group []NamedColumn
		for j < len(columns) {
			p, f, ok := splitNestedName(columns[j].Name)
			if !ok || p != parent || columns[j].Column.Array == nil {
				break
			}
			fields = append(fields, typeexpr.Field{Name: f, Type: columns[j].Column.Array.Inner.Type})
			group = append(group, columns[j])
			j++
		}

		tupleType := typeexpr.TypeTree{Kind: typeexpr.KindTuple, Fields: fields}
		nestedType := typeexpr.TypeTree{Kind: typeexpr.KindNested, Fields: fields}
		arrayType := typeexpr.TypeTree{Kind: typeexpr.KindArray, Inner: &tupleType}

		offsets := group[0].Column.Array.Offsets
		rows := len(offsets)
		innerRows := 0
		if rows > 0 {
			innerRows = int(offsets[rows-1])
		}

		tupleCol := &column.Column{
			Type: tupleType,
			Rows: innerRows,
			Tuple: &column.TupleColumn{
				Names: fieldNames(fields),
				Elems: innerColumnPointers(group),
			},
		}

		out = append(out, NamedColumn{
			Name: parent,
			Type: nestedType,
			Column: &column.Column{
				Type: arrayType,
				Rows: rows,
				Array: &column.ArrayColumn{
					Offsets: offsets,
					Inner:   tupleCol,
				},
			},
		})

		i = j
	}

	return out
}

func innerColumnPointers(group []NamedColumn) []*column.Column {
	cols := make([]*column.Column, len(group))
	for i, g := range group {
		cols[i] = g.Column.Array.Inner
	}

	return cols
}

func splitNestedName(name string) (parent, field string, ok bool) {
	idx := strings.IndexByte(name, '.')
	if idx < 0 {
		return "", "", false
	}

	return name[:idx], name[idx+1:], true
}

func fieldNames(fields []typeexpr.Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	return names
}

// readAllPooled reads r to completion using a pooled whole-block scratch
// buffer, then hands back one exactly-sized owned copy: avoids repeated
// reallocation of a growing buffer across the many sequential reads
// io.ReadAll would otherwise perform directly against a fresh slice.
func readAllPooled(r io.Reader) ([]byte, error) {
	bb := pool.GetBlockBuffer()
	bb.Reset()
	defer pool.PutBlockBuffer(bb)

	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			bb.MustWrite(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	owned := make([]byte, bb.Len())
	copy(owned, bb.Bytes())

	return owned, nil
}

// ReadStream reads r fully into memory and yields one Block per
// sequentially packed block until end-of-input, the way the teacher's
// NumericBlob.All exposes a lazy iter.Seq2 over an in-memory payload.
func ReadStream(r io.Reader, opt Config) iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		data, err := readAllPooled(r)
		if err != nil {
			yield(Block{}, err)
			return
		}

		cur := wire.NewCursor(data)
		for cur.Len() > 0 {
			b, err := ReadBlock(cur, opt)
			if err != nil {
				yield(Block{}, err)
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}
