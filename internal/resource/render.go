package resource

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
)

const (
	// binaryRowWidth is the number of elements per row in binary mode.
	binaryRowWidth = 16
	// xxdRowWidth matches the default column count of xxd -i.
	xxdRowWidth = 12
)

// Text renders data as a macro named <name>_RES that expands to one string
// literal holding every line of the trimmed input, each newline-terminated.
func Text(name string, data []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "#define %s_RES \\\n", name)

	lines := splitLines(data)
	for i, line := range lines {
		if i > 0 {
			buf.WriteString(" \\\n")
		}
		buf.WriteByte('\t')
		buf.WriteString(StringifyLine(line))
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

// splitLines normalises line endings, trims surrounding whitespace and splits
// on '\n'. Input that is empty after trimming has no lines.
func splitLines(data []byte) []string {
	text := string(data)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimFunc(text, isSpace)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// isSpace matches Python's str.isspace, which also counts the ASCII
// separators 0x1c-0x1f as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1c && r <= 0x1f
}

// Binary renders data as a nul-terminated static char array named <name>_RES.
func Binary(name string, data []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "static const char %s_RES[] = {\n", name)

	for i, c := range data {
		buf.WriteString(CharLiteral(c))
		buf.WriteByte(',')
		if (i+1)%binaryRowWidth == 0 {
			buf.WriteByte('\n')
		} else if i+1 < len(data) {
			buf.WriteByte(' ')
		}
	}
	if len(data)%binaryRowWidth != 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("0};\n")
	return buf.Bytes()
}

// XXD renders data the way `xxd -i` does: an unsigned char array named ident
// and an unsigned int ident_len holding its length.
func XXD(ident string, data []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "unsigned char %s[] = {\n", ident)

	for i, c := range data {
		switch {
		case i == 0:
			buf.WriteString("  ")
		case i%xxdRowWidth == 0:
			buf.WriteString(",\n  ")
		default:
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "0x%02x", c)
	}
	if len(data) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteString("};\n")
	fmt.Fprintf(&buf, "unsigned int %s_len = %d;\n", ident, len(data))
	return buf.Bytes()
}
