package navigation

import "strings"

// resolveConfigEntry selects the config item serving route. A single entry
// is used directly; alternatives are tried in order and the first candidate
// the route satisfies wins.
func resolveConfigEntry(route *Route, entry configEntry) (*configItem, error) {
	if entry.single != nil {
		return entry.single, nil
	}

	for _, item := range entry.alts {
		if routeSatisfies(route, item) {
			return item, nil
		}
	}

	return nil, newUnmatchedRouteError(route.Name)
}

// routeSatisfies reports whether item can serve route. A route carrying the
// literal path it was opened from is tested against the item's pattern;
// otherwise the next nested route is checked against the item's screens,
// one level deeper per recursion step. A route with neither a literal path
// nor a nested state satisfies any candidate.
func routeSatisfies(route *Route, item *configItem) bool {
	if route.Path != "" {
		re, err := patternToRegexp(item.pattern)
		if err != nil {
			return false
		}
		return re.MatchString(strings.Trim(route.Path, "/"))
	}

	if route.State == nil || len(route.State.Routes) == 0 {
		return true
	}

	next, err := route.State.active()
	if err != nil {
		return false
	}

	entry, ok := item.screens[next.Name]
	if !ok {
		return false
	}

	if entry.single != nil {
		return routeSatisfies(next, entry.single)
	}
	for _, alt := range entry.alts {
		if routeSatisfies(next, alt) {
			return true
		}
	}
	return false
}
