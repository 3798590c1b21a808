package navigation

import (
	"fmt"
	"strings"
)

// configItem is a normalized screen entry. Its pattern never starts or ends
// with "/" and contains no duplicate "/".
type configItem struct {
	pattern   string
	stringify map[string]StringifyFunc
	screens   map[string]configEntry
}

// configEntry holds either a single normalized item or an ordered list of
// alternatives for one route name.
type configEntry struct {
	single *configItem
	alts   []*configItem
}

// normalizeScreens turns the declarative configuration into the internal
// pattern tree. parent is the pattern of the enclosing screen; non exact
// entries join their own path onto it.
func normalizeScreens(screens PathConfigMap, parent string) (map[string]configEntry, error) {
	if len(screens) == 0 {
		return nil, nil
	}

	normalized := make(map[string]configEntry, len(screens))
	for name, config := range screens {
		switch c := config.(type) {
		case Template:
			normalized[name] = configEntry{single: &configItem{pattern: joinPaths(parent, string(c))}}
		case Screen:
			item, err := normalizeScreen(c, parent)
			if err != nil {
				return nil, err
			}
			normalized[name] = configEntry{single: item}
		case Alternatives:
			alts := make([]*configItem, 0, len(c))
			for _, alt := range c {
				item, err := normalizeScreen(alt, parent)
				if err != nil {
					return nil, err
				}
				alts = append(alts, item)
			}
			normalized[name] = configEntry{alts: alts}
		default:
			return nil, newConfigError(fmt.Sprintf("screen %s has unsupported configuration %T", name, config), map[string]any{
				"screen": name,
			})
		}
	}

	return normalized, nil
}

func normalizeScreen(config Screen, parent string) (*configItem, error) {
	var pattern string
	if config.Exact {
		pattern = joinPaths(config.Path)
	} else {
		pattern = joinPaths(parent, config.Path)
	}

	item := &configItem{pattern: pattern, stringify: config.Stringify}

	if config.Screens != nil {
		screens, err := normalizeScreens(config.Screens, pattern)
		if err != nil {
			return nil, err
		}
		item.screens = screens
	}

	return item, nil
}

// joinPaths joins path fragments with single slashes, dropping empty
// segments so the result never starts or ends with "/".
func joinPaths(paths ...string) string {
	var segments []string
	for _, path := range paths {
		for _, segment := range strings.Split(path, "/") {
			if segment != "" {
				segments = append(segments, segment)
			}
		}
	}
	return strings.Join(segments, "/")
}

// collapseSlashes collapses runs of "/" into one.
func collapseSlashes(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}
