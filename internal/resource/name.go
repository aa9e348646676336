package resource

import (
	"os"
	"strings"
)

// DeriveName returns the symbol name for a resource path: the last path
// segment up to its first '.', uppercased. "assets/icon.png" becomes "ICON".
// The result is not checked; see ValidIdentifier.
func DeriveName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, separators); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return strings.ToUpper(base)
}

// XXDName returns the identifier xxd -i would use for path: every byte that
// is not an ASCII letter or digit becomes '_', and a leading digit gets a
// "__" prefix.
func XXDName(path string) string {
	var b strings.Builder
	if path != "" && isDigit(path[0]) {
		b.WriteString("__")
	}
	for i := 0; i < len(path); i++ {
		c := path[i]
		if isDigit(c) || isLetter(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ValidIdentifier reports whether s is usable as a C identifier.
func ValidIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && !isLetter(c) && c != '_' {
			return false
		}
	}
	return true
}

var separators = func() string {
	if os.PathSeparator == '/' {
		return "/"
	}
	return "/" + string(os.PathSeparator)
}()

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
