package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// variantNullDiscriminator is the reserved discriminator value meaning
// "no alternative selected" (null/absent).
const variantNullDiscriminator = 0xFF

// VariantColumn is Variant(T1,...,Tn): a per-row discriminator byte
// selecting which Tᵢ alternative the row belongs to, followed by one
// sub-column per alternative holding only that alternative's rows.
type VariantColumn struct {
	Discriminators []uint8
	Alternatives   []*Column
}

func decodeVariant(tt typeexpr.TypeTree, rows int, cur *wire.Cursor, opt Config) (*VariantColumn, error) {
	discRaw, err := cur.Take(rows)
	if err != nil {
		return nil, err
	}

	discs := make([]uint8, rows)
	copy(discs, discRaw)

	counts := make([]int, len(tt.Elems))
	for _, d := range discs {
		if d == variantNullDiscriminator {
			continue
		}
		if int(d) >= len(tt.Elems) {
			return nil, chcolerr.At(cur.Pos(), chcolerr.ErrInvalidDiscriminator)
		}
		counts[d]++
	}

	alts := make([]*Column, len(tt.Elems))
	for i, memberType := range tt.Elems {
		col, err := decode(memberType, counts[i], cur, opt)
		if err != nil {
			return nil, err
		}
		alts[i] = col
	}

	return &VariantColumn{Discriminators: discs, Alternatives: alts}, nil
}
