package typeexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colwire/chcol/chcolerr"
)

// Parse parses a textual type description into a TypeTree. Geo aliases
// (Point, Ring, LineString, Polygon, MultiLineString, MultiPolygon) are
// desugared into their underlying Array/Tuple form before returning, so
// the result never carries a geo Kind.
func Parse(expr string) (TypeTree, error) {
	p := &parser{input: expr}
	p.skipWS()

	t, err := p.parseType()
	if err != nil {
		return TypeTree{}, err
	}

	p.skipWS()
	if !p.eof() {
		return TypeTree{}, p.errorf("unexpected trailing input")
	}

	return t, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s (at offset %d in %q)", chcolerr.ErrInvalidType, msg, p.pos, p.input)
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) skipWS() {
	for !p.eof() {
		c := p.input[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		break
	}
}

func (p *parser) peekByte() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) consumeByte(b byte) error {
	p.skipWS()
	if p.eof() || p.input[p.pos] != b {
		return p.errorf("expected %q", b)
	}
	p.pos++
	return nil
}

// tryConsumeByte consumes b if present and reports whether it did,
// without erroring otherwise.
func (p *parser) tryConsumeByte(b byte) bool {
	save := p.pos
	p.skipWS()
	if !p.eof() && p.input[p.pos] == b {
		p.pos++
		return true
	}
	p.pos = save
	return false
}

// parseIdent reads a bare or backtick-quoted identifier (letters,
// digits, underscore; backticks tolerate arbitrary characters inside).
func (p *parser) parseIdent() (string, error) {
	p.skipWS()
	if p.eof() {
		return "", p.errorf("expected identifier")
	}

	if p.input[p.pos] == '`' {
		start := p.pos + 1
		end := strings.IndexByte(p.input[start:], '`')
		if end < 0 {
			return "", p.errorf("unterminated backtick identifier")
		}
		p.pos = start + end + 1
		return p.input[start : start+end], nil
	}

	start := p.pos
	for !p.eof() {
		c := p.input[p.pos]
		if isIdentByte(c) {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", p.errorf("expected identifier")
	}

	return p.input[start:p.pos], nil
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// parseStringLiteral reads a single-quoted string literal; a doubled
// quote ('') inside the literal is an escaped literal quote character.
func (p *parser) parseStringLiteral() (string, error) {
	if err := p.consumeByte('\''); err != nil {
		return "", err
	}

	var sb strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string literal")
		}
		c := p.input[p.pos]
		if c == '\'' {
			if p.pos+1 < len(p.input) && p.input[p.pos+1] == '\'' {
				sb.WriteByte('\'')
				p.pos += 2
				continue
			}
			p.pos++
			return sb.String(), nil
		}
		sb.WriteByte(c)
		p.pos++
	}
}

func (p *parser) parseIntLit() (int64, error) {
	p.skipWS()
	start := p.pos
	if !p.eof() && (p.input[p.pos] == '-' || p.input[p.pos] == '+') {
		p.pos++
	}
	digitsStart := p.pos
	for !p.eof() && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == digitsStart {
		return 0, p.errorf("expected integer literal")
	}

	v, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil {
		return 0, p.errorf("invalid integer literal: %v", err)
	}

	return v, nil
}

func (p *parser) parseUintLit() (uint64, error) {
	v, err := p.parseIntLit()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, p.errorf("expected non-negative integer literal")
	}

	return uint64(v), nil
}

// parseType dispatches on the leading identifier to the right
// constructor-specific parse function.
func (p *parser) parseType() (TypeTree, error) {
	name, err := p.parseIdent()
	if err != nil {
		return TypeTree{}, err
	}

	switch name {
	case "Int8":
		return TypeTree{Kind: KindInt8}, nil
	case "Int16":
		return TypeTree{Kind: KindInt16}, nil
	case "Int32":
		return TypeTree{Kind: KindInt32}, nil
	case "Int64":
		return TypeTree{Kind: KindInt64}, nil
	case "Int128":
		return TypeTree{Kind: KindInt128}, nil
	case "Int256":
		return TypeTree{Kind: KindInt256}, nil
	case "UInt8":
		return TypeTree{Kind: KindUInt8}, nil
	case "UInt16":
		return TypeTree{Kind: KindUInt16}, nil
	case "UInt32":
		return TypeTree{Kind: KindUInt32}, nil
	case "UInt64":
		return TypeTree{Kind: KindUInt64}, nil
	case "UInt128":
		return TypeTree{Kind: KindUInt128}, nil
	case "UInt256":
		return TypeTree{Kind: KindUInt256}, nil
	case "Float16":
		return TypeTree{Kind: KindFloat16}, nil
	case "BFloat16":
		return TypeTree{Kind: KindBFloat16}, nil
	case "Float32":
		return TypeTree{Kind: KindFloat32}, nil
	case "Float64":
		return TypeTree{Kind: KindFloat64}, nil
	case "String":
		return TypeTree{Kind: KindString}, nil
	case "Bool":
		return TypeTree{Kind: KindBool}, nil
	case "UUID":
		return TypeTree{Kind: KindUUID}, nil
	case "IPv4":
		return TypeTree{Kind: KindIPv4}, nil
	case "IPv6":
		return TypeTree{Kind: KindIPv6}, nil
	case "Date":
		return TypeTree{Kind: KindDate}, nil
	case "Date32":
		return TypeTree{Kind: KindDate32}, nil
	case "Nothing":
		return TypeTree{Kind: KindNothing}, nil
	case "JSON":
		return p.parseJSONArgs()
	case "Dynamic":
		return TypeTree{Kind: KindDynamic}, nil
	case "Point":
		return desugarPoint(), nil
	case "Ring":
		return desugarRing(), nil
	case "LineString":
		return desugarLineString(), nil
	case "Polygon":
		return desugarPolygon(), nil
	case "MultiLineString":
		return desugarMultiLineString(), nil
	case "MultiPolygon":
		return desugarMultiPolygon(), nil
	case "FixedString":
		return p.parseFixedString()
	case "Decimal":
		return p.parseDecimalGeneric()
	case "Decimal32":
		return p.parseDecimalSized(KindDecimal32)
	case "Decimal64":
		return p.parseDecimalSized(KindDecimal64)
	case "Decimal128":
		return p.parseDecimalSized(KindDecimal128)
	case "Decimal256":
		return p.parseDecimalSized(KindDecimal256)
	case "Time":
		return p.parseTime()
	case "DateTime64":
		return p.parseDateTime64()
	case "DateTime":
		return p.parseDateTime()
	case "Enum8":
		return p.parseEnum(KindEnum8, 8)
	case "Enum16":
		return p.parseEnum(KindEnum16, 16)
	case "Nullable":
		return p.parseWrapped(KindNullable)
	case "LowCardinality":
		return p.parseWrapped(KindLowCardinality)
	case "Array":
		return p.parseWrapped(KindArray)
	case "Tuple":
		return p.parseTuple()
	case "Map":
		return p.parseMap()
	case "Nested":
		return p.parseNested()
	case "Variant":
		return p.parseVariant()
	default:
		return TypeTree{}, fmt.Errorf("%w: unknown type constructor %q", chcolerr.ErrInvalidType, name)
	}
}

func (p *parser) parseWrapped(kind Kind) (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}
	inner, err := p.parseType()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: kind, Inner: &inner}, nil
}

func (p *parser) parseFixedString() (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}
	n, err := p.parseUintLit()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: KindFixedString, Width: int(n)}, nil
}

// decimalKindForPrecision maps a generic Decimal(P,S) precision to the
// storage-width-specific Kind, mirroring the database's own bucketing.
func decimalKindForPrecision(precision int) (Kind, error) {
	switch {
	case precision < 10:
		return KindDecimal32, nil
	case precision < 19:
		return KindDecimal64, nil
	case precision < 39:
		return KindDecimal128, nil
	case precision < 77:
		return KindDecimal256, nil
	default:
		return "", fmt.Errorf("%w: decimal precision %d out of range", chcolerr.ErrInvalidType, precision)
	}
}

func (p *parser) parseDecimalGeneric() (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}
	precision, err := p.parseUintLit()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(','); err != nil {
		return TypeTree{}, err
	}
	scale, err := p.parseUintLit()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	kind, err := decimalKindForPrecision(int(precision))
	if err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: kind, Scale: int(scale)}, nil
}

func (p *parser) parseDecimalSized(kind Kind) (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}
	scale, err := p.parseUintLit()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: kind, Scale: int(scale)}, nil
}

func (p *parser) parseTime() (TypeTree, error) {
	if !p.tryConsumeByte('(') {
		return TypeTree{Kind: KindTime, Scale: 0}, nil
	}
	scale, err := p.parseUintLit()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: KindTime, Scale: int(scale)}, nil
}

func (p *parser) parseDateTime() (TypeTree, error) {
	if !p.tryConsumeByte('(') {
		return TypeTree{Kind: KindDateTime}, nil
	}
	tz, err := p.parseStringLiteral()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: KindDateTime, TZ: tz}, nil
}

func (p *parser) parseDateTime64() (TypeTree, error) {
	if !p.tryConsumeByte('(') {
		return TypeTree{Kind: KindDateTime64, Scale: 3}, nil
	}
	scale, err := p.parseUintLit()
	if err != nil {
		return TypeTree{}, err
	}

	t := TypeTree{Kind: KindDateTime64, Scale: int(scale)}
	if p.tryConsumeByte(',') {
		tz, err := p.parseStringLiteral()
		if err != nil {
			return TypeTree{}, err
		}
		t.TZ = tz
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return t, nil
}

func (p *parser) parseEnum(kind Kind, bits int) (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}

	var entries []EnumEntry
	for {
		name, err := p.parseStringLiteral()
		if err != nil {
			return TypeTree{}, err
		}
		if err := p.consumeByte('='); err != nil {
			return TypeTree{}, err
		}
		v, err := p.parseIntLit()
		if err != nil {
			return TypeTree{}, err
		}
		if bits == 8 && (v < -128 || v > 127) {
			return TypeTree{}, fmt.Errorf("%w: enum8 value %d out of range", chcolerr.ErrInvalidEnumValue, v)
		}
		if bits == 16 && (v < -32768 || v > 32767) {
			return TypeTree{}, fmt.Errorf("%w: enum16 value %d out of range", chcolerr.ErrInvalidEnumValue, v)
		}
		entries = append(entries, EnumEntry{Name: name, Value: int32(v)})

		if p.tryConsumeByte(',') {
			continue
		}
		break
	}

	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: kind, Enum: entries}, nil
}

func (p *parser) parseTuple() (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}

	var elems []TypeTree
	var fields []Field
	named := false

	for {
		matchedField := false
		save := p.pos
		if ident, identErr := p.parseIdent(); identErr == nil && p.couldStartNamedField() {
			if sub, err := p.parseType(); err == nil {
				named = true
				matchedField = true
				fields = append(fields, Field{Name: ident, Type: sub})
			}
		}

		if !matchedField {
			p.pos = save
			sub, err := p.parseType()
			if err != nil {
				return TypeTree{}, err
			}
			elems = append(elems, sub)
		}

		if p.tryConsumeByte(',') {
			continue
		}
		break
	}

	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	if named {
		return TypeTree{Kind: KindTuple, Fields: fields}, nil
	}

	return TypeTree{Kind: KindTuple, Elems: elems}, nil
}

// couldStartNamedField reports whether the byte following a parsed
// identifier looks like the start of a type expression, distinguishing
// "name Type" / "name:Type" tuple fields from bare type constructors.
func (p *parser) couldStartNamedField() bool {
	save := p.pos
	p.skipWS()
	ok := !p.eof() && p.input[p.pos] != '(' && p.input[p.pos] != ',' && p.input[p.pos] != ')'
	p.pos = save
	return ok
}

func (p *parser) parseMap() (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}
	k, err := p.parseType()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(','); err != nil {
		return TypeTree{}, err
	}
	v, err := p.parseType()
	if err != nil {
		return TypeTree{}, err
	}
	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: KindMap, Key: &k, Value: &v}, nil
}

func (p *parser) parseNested() (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}

	var fields []Field
	for {
		name, err := p.parseIdent()
		if err != nil {
			return TypeTree{}, err
		}
		p.skipWS()
		// Accept either a ':' separator or plain whitespace between
		// the field name and its type.
		p.tryConsumeByte(':')
		sub, err := p.parseType()
		if err != nil {
			return TypeTree{}, err
		}
		fields = append(fields, Field{Name: name, Type: sub})

		if p.tryConsumeByte(',') {
			continue
		}
		break
	}

	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: KindNested, Fields: fields}, nil
}

func (p *parser) parseVariant() (TypeTree, error) {
	if err := p.consumeByte('('); err != nil {
		return TypeTree{}, err
	}

	var elems []TypeTree
	for {
		sub, err := p.parseType()
		if err != nil {
			return TypeTree{}, err
		}
		elems = append(elems, sub)

		if p.tryConsumeByte(',') {
			continue
		}
		break
	}

	if err := p.consumeByte(')'); err != nil {
		return TypeTree{}, err
	}

	return TypeTree{Kind: KindVariant, Elems: elems}, nil
}

func (p *parser) parseJSONArgs() (TypeTree, error) {
	// JSON may appear bare or with a server-specific hint argument list
	// (e.g. "JSON(max_dynamic_paths=100)"); the hints don't affect wire
	// decoding, so they're accepted and discarded.
	if !p.tryConsumeByte('(') {
		return TypeTree{Kind: KindJSON}, nil
	}

	depth := 1
	for depth > 0 {
		if p.eof() {
			return TypeTree{}, p.errorf("unterminated JSON argument list")
		}
		switch p.input[p.pos] {
		case '(':
			depth++
		case ')':
			depth--
		}
		p.pos++
	}

	return TypeTree{Kind: KindJSON}, nil
}
