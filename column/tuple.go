package column

import (
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// TupleColumn is Tuple(T1,...,Tn): each field's column decoded
// back-to-back in declared order, each of length row_count. Nested(f...)
// in non-flattened mode decodes identically to Array(Tuple(f...)), so
// it reuses this type as the Array's inner column.
type TupleColumn struct {
	Names []string // empty when the tuple is unnamed
	Elems []*Column
}

func decodeTuple(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*TupleColumn, error) {
	var names []string
	var memberTypes []typeexpr.TypeTree

	if len(tt.Fields) > 0 {
		for _, f := range tt.Fields {
			names = append(names, f.Name)
			memberTypes = append(memberTypes, f.Type)
		}
	} else {
		memberTypes = tt.Elems
	}

	elems := make([]*Column, len(memberTypes))
	for i, mt := range memberTypes {
		col, err := decode(mt, rows, cur, opt)
		if err != nil {
			return nil, err
		}
		elems[i] = col
	}

	return &TupleColumn{Names: names, Elems: elems}, nil
}

// decodeNested treats Nested(f...) as Array(Tuple(f...)): the spec
// reserves flattened-mode handling for the block level, where
// "parent.field" columns simply appear as ordinary siblings.
func decodeNested(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*ArrayColumn, error) {
	tupleType := typeexpr.TypeTree{Kind: typeexpr.KindTuple, Fields: tt.Fields}
	arrayType := typeexpr.TypeTree{Kind: typeexpr.KindArray, Inner: &tupleType}

	return decodeArray(arrayType, rows, cur, opt)
}

// decodeMap treats Map(K,V) as Array(Tuple(K,V)), per spec §4.3.
func decodeMap(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*ArrayColumn, error) {
	tupleType := typeexpr.TypeTree{Kind: typeexpr.KindTuple, Elems: []typeexpr.TypeTree{*tt.Key, *tt.Value}}
	arrayType := typeexpr.TypeTree{Kind: typeexpr.KindArray, Inner: &tupleType}

	return decodeArray(arrayType, rows, cur, opt)
}
