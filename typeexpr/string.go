package typeexpr

import (
	"strconv"
	"strings"
)

// String renders the canonical textual form of t. Re-parsing the
// result reproduces an equal TypeTree (geo aliases have already
// been desugared, so they round-trip as their Array/Tuple expansion
// rather than their original alias name). Tuple and Nested field names
// are written bare, without backticks, so a field name that is not a
// plain identifier (letters, digits, underscore) does not re-parse.
func (t TypeTree) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t TypeTree) write(sb *strings.Builder) {
	switch t.Kind {
	case KindFixedString:
		sb.WriteString("FixedString(")
		sb.WriteString(strconv.Itoa(t.Width))
		sb.WriteByte(')')
	case KindDecimal32, KindDecimal64, KindDecimal128, KindDecimal256:
		sb.WriteString(string(t.Kind))
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(t.Scale))
		sb.WriteByte(')')
	case KindTime:
		sb.WriteString("Time(")
		sb.WriteString(strconv.Itoa(t.Scale))
		sb.WriteByte(')')
	case KindDateTime:
		sb.WriteString("DateTime")
		if t.TZ != "" {
			sb.WriteByte('(')
			sb.WriteByte('\'')
			sb.WriteString(escapeQuote(t.TZ))
			sb.WriteByte('\'')
			sb.WriteByte(')')
		}
	case KindDateTime64:
		sb.WriteString("DateTime64(")
		sb.WriteString(strconv.Itoa(t.Scale))
		if t.TZ != "" {
			sb.WriteString(", '")
			sb.WriteString(escapeQuote(t.TZ))
			sb.WriteByte('\'')
		}
		sb.WriteByte(')')
	case KindEnum8, KindEnum16:
		sb.WriteString(string(t.Kind))
		sb.WriteByte('(')
		for i, e := range t.Enum {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('\'')
			sb.WriteString(escapeQuote(e.Name))
			sb.WriteString("' = ")
			sb.WriteString(strconv.Itoa(int(e.Value)))
		}
		sb.WriteByte(')')
	case KindNullable, KindLowCardinality, KindArray:
		sb.WriteString(string(t.Kind))
		sb.WriteByte('(')
		t.Inner.write(sb)
		sb.WriteByte(')')
	case KindTuple:
		sb.WriteString("Tuple(")
		if len(t.Fields) > 0 {
			for i, f := range t.Fields {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(f.Name)
				sb.WriteByte(' ')
				f.Type.write(sb)
			}
		} else {
			for i, e := range t.Elems {
				if i > 0 {
					sb.WriteString(", ")
				}
				e.write(sb)
			}
		}
		sb.WriteByte(')')
	case KindMap:
		sb.WriteString("Map(")
		t.Key.write(sb)
		sb.WriteString(", ")
		t.Value.write(sb)
		sb.WriteByte(')')
	case KindNested:
		sb.WriteString("Nested(")
		for i, f := range t.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteByte(' ')
			f.Type.write(sb)
		}
		sb.WriteByte(')')
	case KindVariant:
		sb.WriteString("Variant(")
		for i, e := range t.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.write(sb)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString(string(t.Kind))
	}
}

func escapeQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
