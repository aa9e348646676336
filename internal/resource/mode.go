package resource

import "fmt"

// Mode selects how a resource is rendered.
type Mode string

const (
	ModeText   Mode = "text"
	ModeBinary Mode = "binary"
	ModeXXD    Mode = "xxd"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeText, ModeBinary, ModeXXD}

// Symbol returns the identifier the mode declares for the resource at path.
func (m Mode) Symbol(path string) string {
	switch m {
	case ModeXXD:
		return XXDName(path)
	default:
		return DeriveName(path) + "_RES"
	}
}

// Render produces the generated source for data read from path.
func (m Mode) Render(path string, data []byte) ([]byte, error) {
	switch m {
	case ModeText:
		return Text(DeriveName(path), data), nil
	case ModeBinary:
		return Binary(DeriveName(path), data), nil
	case ModeXXD:
		return XXD(XXDName(path), data), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", string(m))
	}
}
