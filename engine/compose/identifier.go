package compose

import (
	"strconv"

	"github.com/dlclark/regexp2"
)

// placeholderName matches glyph names which carry no information beyond the
// glyph index, e.g. "glyph42" or "17".
var placeholderName = regexp2.MustCompile(`^(glyph|gid)?[0-9]+$`, regexp2.None)

// ResolveIdentifier returns the identifier for a glyph. It is the glyph's name,
// if present and not a generic placeholder, and "gid<index>" otherwise.
func ResolveIdentifier(name string, gid int) string {
	if name != "" {
		if generic, err := placeholderName.MatchString(name); err == nil && !generic {
			return name
		}
	}
	return "gid" + strconv.Itoa(gid)
}
