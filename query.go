package navigation

import "strings"

// EncodeQuery serializes params into a query string, preserving insertion
// order rather than sorting keys. Scalar values use their default textual
// form. Slice values repeat the key once per element; any other non scalar
// value falls back to its default textual form.
func EncodeQuery(params Params) string {
	var pairs []string
	for _, param := range params {
		switch v := param.Value.(type) {
		case []string:
			for _, item := range v {
				pairs = append(pairs, encodeComponent(param.Key)+"="+encodeComponent(item))
			}
		case []any:
			for _, item := range v {
				pairs = append(pairs, encodeComponent(param.Key)+"="+encodeComponent(stringifyValue(item)))
			}
		default:
			pairs = append(pairs, encodeComponent(param.Key)+"="+encodeComponent(stringifyValue(param.Value)))
		}
	}
	return strings.Join(pairs, "&")
}

// encodeComponent percent-encodes s for use as a path segment or query
// component. Unreserved characters and !*'()~ stay literal; everything
// else, including multi byte runes, is escaped byte by byte.
func encodeComponent(s string) string {
	const upperhex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscapeComponent(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func shouldEscapeComponent(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}
