package resource

import (
	"fmt"
	"strings"
)

// decodeEscape decodes the C escape sequence starting at s[i], which must be
// a backslash. It returns the byte and the index just past the sequence.
func decodeEscape(s string, i int) (byte, int, error) {
	if i+1 >= len(s) {
		return 0, 0, fmt.Errorf("dangling backslash at %d", i)
	}
	c := s[i+1]
	switch c {
	case '\\', '"', '\'', '?':
		return c, i + 2, nil
	case 'a':
		return '\a', i + 2, nil
	case 'b':
		return '\b', i + 2, nil
	case 'f':
		return '\f', i + 2, nil
	case 'n':
		return '\n', i + 2, nil
	case 'r':
		return '\r', i + 2, nil
	case 't':
		return '\t', i + 2, nil
	case 'v':
		return '\v', i + 2, nil
	}
	if c < '0' || c > '7' {
		return 0, 0, fmt.Errorf("unknown escape \\%c", c)
	}
	var v int
	j := i + 1
	for ; j < len(s) && j < i+4 && s[j] >= '0' && s[j] <= '7'; j++ {
		v = v*8 + int(s[j]-'0')
	}
	if v > 0xff {
		return 0, 0, fmt.Errorf("octal escape out of range: %o", v)
	}
	return byte(v), j, nil
}

// decodeStringLiteral decodes one double-quoted C string literal and then
// applies printf's %% collapsing. A literal containing "??" is rejected,
// since a strict ISO C compiler may replace it as a trigraph before any
// escape is processed.
func decodeStringLiteral(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("not a string literal: %s", lit)
	}
	body := lit[1 : len(lit)-1]
	if i := strings.Index(body, "??"); i >= 0 {
		return "", fmt.Errorf("possible trigraph at %d in %s", i, lit)
	}
	var b strings.Builder
	for i := 0; i < len(body); {
		switch c := body[i]; c {
		case '\\':
			v, next, err := decodeEscape(body, i)
			if err != nil {
				return "", err
			}
			b.WriteByte(v)
			i = next
		case '"':
			return "", fmt.Errorf("unescaped quote at %d in %s", i, lit)
		case '%':
			if i+1 >= len(body) || body[i+1] != '%' {
				return "", fmt.Errorf("lone %% at %d in %s", i, lit)
			}
			b.WriteByte('%')
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

// decodeCharArray decodes the elements of a generated binary-mode array up
// to, and excluding, the 0 terminator.
func decodeCharArray(src string) ([]byte, error) {
	start := strings.Index(src, "{\n")
	if start < 0 {
		return nil, fmt.Errorf("no array opening")
	}
	body := src[start+2:]
	var out []byte
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == ' ' || c == '\n' || c == ',':
			i++
		case c == '0' && strings.HasPrefix(body[i:], "0};\n"):
			if i+4 != len(body) {
				return nil, fmt.Errorf("trailing data after terminator")
			}
			return out, nil
		case c == '\'':
			i++
			if i >= len(body) {
				return nil, fmt.Errorf("unterminated literal")
			}
			var v byte
			if body[i] == '\\' {
				var err error
				v, i, err = decodeEscape(body, i)
				if err != nil {
					return nil, err
				}
			} else {
				v = body[i]
				i++
			}
			if i >= len(body) || body[i] != '\'' {
				return nil, fmt.Errorf("literal at %d has more than one character", i)
			}
			out = append(out, v)
			i++
		default:
			return nil, fmt.Errorf("unexpected %q at %d", c, i)
		}
	}
	return nil, fmt.Errorf("missing terminator")
}
