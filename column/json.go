package column

import (
	"github.com/colwire/chcol/chcolerr"
	"github.com/colwire/chcol/typeexpr"
	"github.com/colwire/chcol/wire"
)

// jsonStructureVersion is the only structure-version word this decoder
// recognizes, mirrored from the database's JSON structure version.
const jsonStructureVersion = 1

// JSONPath is one discovered subpath of a Json column whose values
// share no single declared type, decoded as Dynamic.
type JSONPath struct {
	Path   string
	Column *DynamicColumn
}

// JSONTypedPath is one discovered subpath whose values all share a
// single inline-declared type.
type JSONTypedPath struct {
	Path   string
	Type   typeexpr.TypeTree
	Column *Column
}

// JSONColumn is Json: a self-describing sub-schema of dynamic and typed
// subpaths, plus a shared-data bucket holding whatever per-row JSON
// fragments didn't fit either.
type JSONColumn struct {
	DynamicPaths []JSONPath
	TypedPaths   []JSONTypedPath
	SharedData   *ArrayColumn
}

func decodeJSON(rows int, cur *wire.Cursor, opt Config) (*JSONColumn, error) {
	versionRaw, err := cur.Take(8)
	if err != nil {
		return nil, err
	}
	version, _, err := wire.ReadUint64(versionRaw)
	if err != nil {
		return nil, err
	}
	if version != jsonStructureVersion {
		return nil, chcolerr.At(cur.Pos(), chcolerr.ErrVersionMismatch)
	}

	dynCount, err := readUvarint(cur)
	if err != nil {
		return nil, err
	}

	dynPaths := make([]JSONPath, dynCount)
	for i := range dynPaths {
		pathRaw, err := readLengthPrefixed(cur)
		if err != nil {
			return nil, err
		}

		dc, err := decodeDynamic(rows, cur, opt)
		if err != nil {
			return nil, err
		}

		dynPaths[i] = JSONPath{Path: string(pathRaw), Column: dc}
	}

	typedCount, err := readUvarint(cur)
	if err != nil {
		return nil, err
	}

	typedPaths := make([]JSONTypedPath, typedCount)
	for i := range typedPaths {
		pathRaw, err := readLengthPrefixed(cur)
		if err != nil {
			return nil, err
		}

		typeRaw, err := readLengthPrefixed(cur)
		if err != nil {
			return nil, err
		}

		tt, err := typeexpr.Parse(string(typeRaw))
		if err != nil {
			return nil, chcolerr.At(cur.Pos(), err)
		}

		col, err := decode(tt, rows, cur, opt)
		if err != nil {
			return nil, err
		}

		typedPaths[i] = JSONTypedPath{Path: string(pathRaw), Type: tt, Column: col}
	}

	sharedEntry := typeexpr.TypeTree{Kind: typeexpr.KindString}
	sharedTuple := typeexpr.TypeTree{Kind: typeexpr.KindTuple, Elems: []typeexpr.TypeTree{sharedEntry, sharedEntry}}
	sharedArray := typeexpr.TypeTree{Kind: typeexpr.KindArray, Inner: &sharedTuple}

	sharedData, err := decodeArray(sharedArray, rows, cur, opt)
	if err != nil {
		return nil, err
	}

	return &JSONColumn{DynamicPaths: dynPaths, TypedPaths: typedPaths, SharedData: sharedData}, nil
}
