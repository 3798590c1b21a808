package navigation

import (
	"fmt"

	"dario.cat/mergo"
	"gopkg.in/yaml.v2"
)

// ScreensFromYAML builds a PathConfigMap from one or more YAML documents.
// Later documents overlay earlier ones key by key, so a base linking
// configuration can be patched per environment. Each route name maps to a
// template string, a mapping with path / exact / screens keys, or a list of
// such mappings (ordered alternatives):
//
//	Profile: profile/:id
//	Feed:
//	  path: feed
//	  screens:
//	    Latest: latest
//	Catalog:
//	  - path: catalog/:section
//	  - path: legacy-catalog
//	    exact: true
//
// Stringifiers are code-only and cannot be declared in YAML.
func ScreensFromYAML(docs ...[]byte) (PathConfigMap, error) {
	merged := map[string]any{}
	for _, doc := range docs {
		var raw map[string]any
		if err := yaml.Unmarshal(doc, &raw); err != nil {
			return nil, newConfigError(fmt.Sprintf("invalid screens document: %v", err), nil)
		}

		normalized, ok := normalizeYAMLValue(raw).(map[string]any)
		if !ok {
			return nil, newConfigError("screens document is not a mapping", nil)
		}

		if err := mergo.Merge(&merged, normalized, mergo.WithOverride); err != nil {
			return nil, newConfigError(fmt.Sprintf("cannot overlay screens document: %v", err), nil)
		}
	}

	return screensFromRaw(merged, "")
}

// normalizeYAMLValue rewrites the map[any]any trees produced by yaml.v2
// into map[string]any trees.
func normalizeYAMLValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeYAMLValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAMLValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeYAMLValue(item)
		}
		return out
	default:
		return value
	}
}

func screensFromRaw(values map[string]any, parent string) (PathConfigMap, error) {
	screens := make(PathConfigMap, len(values))
	for name, value := range values {
		at := name
		if parent != "" {
			at = parent + "." + name
		}

		switch v := value.(type) {
		case string:
			screens[name] = Template(v)
		case map[string]any:
			screen, err := screenFromRaw(v, at)
			if err != nil {
				return nil, err
			}
			screens[name] = screen
		case []any:
			alts := make(Alternatives, 0, len(v))
			for i, item := range v {
				mapping, ok := item.(map[string]any)
				if !ok {
					return nil, newConfigError(fmt.Sprintf("screen %s alternative %d is not a mapping", at, i), map[string]any{
						"screen": at,
					})
				}
				alt, err := screenFromRaw(mapping, at)
				if err != nil {
					return nil, err
				}
				alts = append(alts, alt)
			}
			screens[name] = alts
		default:
			return nil, newConfigError(fmt.Sprintf("screen %s has unsupported value %T", at, value), map[string]any{
				"screen": at,
			})
		}
	}
	return screens, nil
}

func screenFromRaw(values map[string]any, at string) (Screen, error) {
	var screen Screen
	hasPath := false

	for key, value := range values {
		switch key {
		case "path":
			s, ok := value.(string)
			if !ok {
				return Screen{}, newConfigError(fmt.Sprintf("screen %s has non-string path", at), map[string]any{
					"screen": at,
				})
			}
			screen.Path = s
			hasPath = true
		case "exact":
			b, ok := value.(bool)
			if !ok {
				return Screen{}, newConfigError(fmt.Sprintf("screen %s has non-boolean exact", at), map[string]any{
					"screen": at,
				})
			}
			screen.Exact = b
		case "screens":
			mapping, ok := value.(map[string]any)
			if !ok {
				return Screen{}, newConfigError(fmt.Sprintf("screen %s has non-mapping screens", at), map[string]any{
					"screen": at,
				})
			}
			nested, err := screensFromRaw(mapping, at)
			if err != nil {
				return Screen{}, err
			}
			screen.Screens = nested
		case "initialRouteName":
			// Part of the linking config contract; not consulted here.
		default:
			return Screen{}, newConfigError(fmt.Sprintf("screen %s has unknown key %q", at, key), map[string]any{
				"screen": at,
				"key":    key,
			})
		}
	}

	if screen.Exact && !hasPath {
		return Screen{}, newConfigError(fmt.Sprintf("screen %s sets exact: true without a path", at), map[string]any{
			"screen": at,
		})
	}

	return screen, nil
}
