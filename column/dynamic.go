package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// dynamicStructureVersion is the only structure-version word this
// decoder recognizes, mirrored from the database's DynamicStructureVersion.
const dynamicStructureVersion = 1

// DynamicColumn is Dynamic: a Variant whose member type list is
// discovered from the stream itself rather than declared in the type
// expression.
type DynamicColumn struct {
	MemberTypes []typeexpr.TypeTree
	Variant     *VariantColumn
}

func decodeDynamic(rows int, cur *wire.Cursor, opt Config) (*DynamicColumn, error) {
	versionRaw, err := cur.Take(8)
	if err != nil {
		return nil, err
	}
	version, _, err := wire.ReadUint64(versionRaw)
	if err != nil {
		return nil, err
	}
	if version != dynamicStructureVersion {
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrVersionMismatch)
	}

	count, err := readUvarint(cur)
	if err != nil {
		return nil, err
	}

	members := make([]typeexpr.TypeTree, count)
	for i := range members {
		raw, err := readLengthPrefixed(cur)
		if err != nil {
			return nil, err
		}

		tt, err := typeexpr.Parse(string(raw))
		if err != nil {
			return nil, chcolerr.At(cur.Pos(), err)
		}
		members[i] = tt
	}

	variantType := typeexpr.TypeTree{Kind: typeexpr.KindVariant, Elems: members}
	v, err := decodeVariant(variantType, rows, cur, opt)
	if err != nil {
		return nil, err
	}

	return &DynamicColumn{MemberTypes: members, Variant: v}, nil
}
