package navigation

import (
	"regexp"
	"strings"
)

// patternToRegexp compiles a normalized pattern into a matcher for literal
// segment sequences. ":name" matches one or more characters other than "/"
// and "?", ":name?" additionally matches the absent segment, and "*"
// matches anything. The result is anchored at both ends.
func patternToRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")

	for i, segment := range strings.Split(pattern, "/") {
		sep := ""
		if i > 0 {
			sep = "/"
		}

		switch {
		case segment == "*":
			b.WriteString(sep)
			b.WriteString("(.*)")
		case strings.HasPrefix(segment, ":"):
			if strings.HasSuffix(segment, "?") {
				b.WriteString("(?:")
				b.WriteString(sep)
				b.WriteString(`([^/?]+))?`)
			} else {
				b.WriteString(sep)
				b.WriteString(`([^/?]+)`)
			}
		default:
			b.WriteString(sep)
			b.WriteString(regexp.QuoteMeta(segment))
		}
	}

	b.WriteString("$")
	return regexp.Compile(b.String())
}

// paramName extracts the parameter name from a ":name" or ":name?" token.
func paramName(segment string) string {
	return strings.TrimSuffix(strings.TrimPrefix(segment, ":"), "?")
}
