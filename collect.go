package schemagen

import (
	"strings"

	"github.com/flowdsl/schemagen/catalog"
	"github.com/flowdsl/schemagen/internal/strutil"
)

// collectProperties appends t's declared properties to acc and then walks
// the supertype chain with the same rules. Semantics preserved from the
// upstream generator:
//
//   - a property missing its name or type is warned about and skipped,
//     processing continues with the next one;
//   - an "object:<Ref>" property whose referent is banned is skipped
//     silently; "array:" and "enum:" referents are deliberately not
//     checked;
//   - "__"-prefixed directives are always appended, never deduplicated;
//   - a duplicate non-internal name stops collection for the remainder of
//     this branch, ancestors included.
//
// An unresolvable supertype link ends the recursion.
func (g *generator) collectProperties(acc *[]catalog.Property, t *catalog.Type) {
	if t == nil {
		return
	}

	var declared []catalog.Property
	if t.Marker != nil {
		declared = t.Marker.Properties
	}

	for _, p := range declared {
		if p.Name == "" || p.Type == "" {
			g.log.Warnf("missing name or type for property %q (type %q) on %s", p.Name, p.Type, t.Name)
			continue
		}

		if strings.HasPrefix(p.Type, "object:") {
			if g.banned(g.cat.Resolve(strutil.After(p.Type, ":"))) {
				continue
			}
		}

		if strings.HasPrefix(p.Name, internalPrefix) {
			*acc = append(*acc, p)
			continue
		}

		if hasProperty(*acc, p.Name) {
			// duplicate declaration: the first occurrence wins and
			// collection stops here for this branch
			return
		}
		*acc = append(*acc, p)
	}

	if t.Extends != "" {
		g.collectProperties(acc, g.cat.Resolve(t.Extends))
	}
}

func hasProperty(props []catalog.Property, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}
