package strutil

// Package strutil holds the small string helpers shared by the catalog and
// the generator. This package is internal and not part of the public API.

import "strings"

// After returns the part of s after the first occurrence of sep, or "" when
// sep is absent.
func After(s, sep string) string {
	i := strings.Index(s, sep)
	if i < 0 {
		return ""
	}
	return s[i+len(sep):]
}

// DashToCamelCase converts a hyphenated name to its compact form, e.g.
// "max-age" becomes "maxAge". Names without a dash are returned unchanged.
func DashToCamelCase(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	upper := false
	for _, r := range s {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			sb.WriteString(strings.ToUpper(string(r)))
			upper = false
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
