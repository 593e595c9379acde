package typeexpr

// Geo types are fixed aliases over Array/Tuple nests; parsing desugars
// them immediately so the rest of the system only ever sees the
// underlying shape, per spec §4.2.

func desugarPoint() TypeTree {
	f64 := TypeTree{Kind: KindFloat64}
	return TypeTree{Kind: KindTuple, Elems: []TypeTree{f64, f64}}
}

func desugarRing() TypeTree {
	point := desugarPoint()
	return TypeTree{Kind: KindArray, Inner: &point}
}

func desugarLineString() TypeTree {
	point := desugarPoint()
	return TypeTree{Kind: KindArray, Inner: &point}
}

func desugarPolygon() TypeTree {
	ring := desugarRing()
	return TypeTree{Kind: KindArray, Inner: &ring}
}

func desugarMultiLineString() TypeTree {
	line := desugarLineString()
	return TypeTree{Kind: KindArray, Inner: &line}
}

func desugarMultiPolygon() TypeTree {
	polygon := desugarPolygon()
	return TypeTree{Kind: KindArray, Inner: &polygon}
}
