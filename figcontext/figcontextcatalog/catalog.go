package figcontextcatalog

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/mathfig/figcontext"
)

var Catalog = []figcontext.Context{
	Starter,
	Diagnostic,
	Examples,
	Challenge,
}

func Find(section string) (figcontext.Context, bool) {
	for _, c := range Catalog {
		if strings.EqualFold(c.Section, section) {
			return c, true
		}
	}

	return figcontext.Context{}, false
}

// Default is the context used when no section is named.
func Default() figcontext.Context {
	return Examples
}

func Sections() []string {
	out := make([]string, 0, len(Catalog))
	for _, c := range Catalog {
		out = append(out, c.Section)
	}
	return out
}

func CLIString() string {
	var s strings.Builder
	for _, c := range Catalog {
		s.WriteString(fmt.Sprintf("- %s: %s (%vx%v)\n", c.Section, c.Name, c.FixedWidth, c.FixedHeight))
	}
	return s.String()
}
