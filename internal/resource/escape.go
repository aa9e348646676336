package resource

import "strings"

// StringifyLine renders one line of text as a C string literal that decodes
// to the line followed by a newline. Percent signs are doubled so the
// literal can be handed to a printf-style formatter as-is. A '?' that
// follows another '?' is escaped so no trigraph can form.
func StringifyLine(line string) string {
	var b strings.Builder
	b.Grow(len(line) + 4)
	b.WriteByte('"')
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '%':
			b.WriteString("%%")
		case '?':
			if i > 0 && line[i-1] == '?' {
				b.WriteString(`\?`)
			} else {
				b.WriteByte('?')
			}
		default:
			writeEscaped(&b, c, '"')
		}
	}
	b.WriteString(`\n"`)
	return b.String()
}

// CharLiteral renders c as a C character literal.
func CharLiteral(c byte) string {
	var b strings.Builder
	b.WriteByte('\'')
	switch c {
	case '\'':
		b.WriteString(`\'`)
	case 0:
		b.WriteString(`\0`)
	default:
		writeEscaped(&b, c, '\'')
	}
	b.WriteByte('\'')
	return b.String()
}

// controlEscapes maps the control bytes C has a named escape for.
var controlEscapes = map[byte]string{
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
}

// writeEscaped writes c using C escaping rules. Bytes at or above 0x80 are
// copied through in string literals so UTF-8 text stays readable. In
// character literals (quote is a single quote) they are written in octal,
// since a lone byte of a multibyte sequence is not a character.
func writeEscaped(b *strings.Builder, c byte, quote byte) {
	if c == '\\' {
		b.WriteString(`\\`)
		return
	}
	if esc, ok := controlEscapes[c]; ok {
		b.WriteString(esc)
		return
	}
	switch {
	case c >= 0x20 && c < 0x7f:
		b.WriteByte(c)
	case c >= 0x80 && quote == '"':
		b.WriteByte(c)
	default:
		writeOctal(b, c)
	}
}

// writeOctal always uses three digits so a following digit in the source
// cannot extend the escape.
func writeOctal(b *strings.Builder, c byte) {
	b.WriteByte('\\')
	b.WriteByte('0' + c>>6)
	b.WriteByte('0' + c>>3&7)
	b.WriteByte('0' + c&7)
}
