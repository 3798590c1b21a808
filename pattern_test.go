package navigation

import "testing"

func TestPatternToRegexp(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		match   bool
	}{
		{"chat/:author/:id", "chat/jane/42", true},
		{"chat/:author/:id", "chat/jane", false},
		{"chat/:author/:id", "chat/jane/42/extra", false},
		{"chat/:author/:id", "chat/ja?ne/42", false},
		{"profile/:id?", "profile", true},
		{"profile/:id?", "profile/7", true},
		{"profile/:id?", "profile/7/8", false},
		{"*", "anything/at/all", true},
		{"*", "", true},
		{"feed/*", "feed/hot/today", true},
		{"feed/*", "blog/hot", false},
		{"a.b/:x", "a.b/1", true},
		{"a.b/:x", "axb/1", false},
		{"", "", true},
		{"", "home", false},
	}

	for _, tc := range cases {
		re, err := patternToRegexp(tc.pattern)
		if err != nil {
			t.Fatalf("patternToRegexp(%q) returned error: %v", tc.pattern, err)
		}
		if got := re.MatchString(tc.input); got != tc.match {
			t.Errorf("pattern %q match %q = %v, want %v", tc.pattern, tc.input, got, tc.match)
		}
	}
}

func TestParamName(t *testing.T) {
	cases := map[string]string{
		":id":    "id",
		":id?":   "id",
		":user":  "user",
		"static": "static",
	}
	for segment, want := range cases {
		if got := paramName(segment); got != want {
			t.Errorf("paramName(%q) = %q, want %q", segment, got, want)
		}
	}
}
