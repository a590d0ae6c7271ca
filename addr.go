package jsondiff

import (
	"strconv"
	"strings"
)

// Addr is a single step into a JSON tree: an object key or an array index
type Addr interface {
	// String renders the address the way it appears in a diff path
	String() string
	// Token is the RFC 6901 JSON-pointer reference token for this address
	Token() string
}

// StringAddr is an object key
type StringAddr string

// String returns the key itself
func (a StringAddr) String() string { return string(a) }

// Token escapes "~" & "/" per RFC 6901
func (a StringAddr) Token() string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(string(a))
}

// IndexAddr is an array index
type IndexAddr int

// String returns the index wrapped in brackets, eg: [2]
func (a IndexAddr) String() string { return "[" + strconv.Itoa(int(a)) + "]" }

// Token returns the decimal index
func (a IndexAddr) Token() string { return strconv.Itoa(int(a)) }

// RootPath is the path recorded for a difference at the root of an
// unprefixed comparison, eg: two top-level values of different kinds
const RootPath = "(root)"

// joinPath appends addr to a diff path. Keys are dot-separated, indices are
// bracketed with no separator: a.b[0].c
func joinPath(parent string, addr Addr) string {
	switch a := addr.(type) {
	case IndexAddr:
		return parent + a.String()
	default:
		if parent == "" {
			return a.String()
		}
		return parent + "." + a.String()
	}
}

// Pointer renders addrs as an RFC 6901 JSON pointer. No addresses is the
// whole document, which is the empty pointer
func Pointer(addrs []Addr) string {
	if len(addrs) == 0 {
		return ""
	}
	b := &strings.Builder{}
	for _, a := range addrs {
		b.WriteByte('/')
		b.WriteString(a.Token())
	}
	return b.String()
}
