package navigation

import "strings"

// PathFromState serializes a navigation state into the canonical URL path
// it deep links to, guided by the screens configuration in opts.
//
// The result always begins with "/", uses percent encoded "/"-separated
// segments, and carries the focused route's residual parameters as an
// insertion ordered query string. Route chains with no matching screens
// configuration collapse to the "/"-joined chain of active route names.
// There is no trailing slash except for the bare root "/".
//
// Either the full string is produced or an error is returned; no partial
// path is ever emitted.
func PathFromState(state *NavigationState, opts *Options) (string, error) {
	if state == nil {
		return "", newInvalidStateError("cannot serialize a nil navigation state; pass the state object returned by the navigator")
	}

	var configs map[string]configEntry
	if opts != nil {
		if err := ValidatePathConfig(opts); err != nil {
			return "", err
		}
		var err error
		if configs, err = normalizeScreens(opts.Screens, ""); err != nil {
			return "", err
		}
	}

	lgr := getLogger()

	focused, err := ActiveRoute(state)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("/")

	// Global accumulation of stringified params across nesting levels.
	// Deeper levels overwrite identically named params from shallower ones.
	allParams := newOrderedParams()

	for current := state; current != nil; {
		route, err := current.active()
		if err != nil {
			return "", err
		}

		pattern := ""
		patternResolved := false
		var focusedParams *orderedParams

		// Walk the config tree in lock step with the state chain. When the
		// chain leaves configured territory the outer loop picks the rest
		// up again from the root configuration.
		currentConfigs := configs
		for {
			entry, ok := currentConfigs[route.Name]
			if !ok {
				break
			}

			item, err := resolveConfigEntry(route, entry)
			if err != nil {
				return "", err
			}

			pattern = item.pattern
			patternResolved = true

			if len(route.Params) > 0 {
				currentParams := stringifyParams(route.Params, item.stringify)
				if pattern != "" {
					allParams.merge(currentParams)
				}
				if route == focused {
					// Params consumed positionally by pattern tokens never
					// reach the query string.
					focusedParams = currentParams.clone()
					for _, segment := range strings.Split(pattern, "/") {
						if strings.HasPrefix(segment, ":") {
							focusedParams.delete(paramName(segment))
						}
					}
				}
			}

			if item.screens == nil || route.State == nil {
				break
			}

			next, err := route.State.active()
			if err != nil {
				return "", err
			}
			if _, ok := item.screens[next.Name]; !ok {
				break
			}

			route = next
			currentConfigs = item.screens
		}

		if patternResolved {
			lgr.Debug("route %q resolved to pattern %q", route.Name, pattern)

			segments := strings.Split(pattern, "/")
			parts := make([]string, len(segments))
			for i, segment := range segments {
				switch {
				case segment == "*":
					// A wildcard has no fixed segment; the route name is the
					// closest stand-in.
					parts[i] = route.Name
				case strings.HasPrefix(segment, ":"):
					value, ok := allParams.get(paramName(segment))
					switch {
					case ok:
						parts[i] = encodeComponent(value)
					case strings.HasSuffix(segment, "?"):
						// Optional param without a value contributes an empty
						// segment, collapsed below.
						parts[i] = ""
					default:
						parts[i] = undefinedValue
					}
				default:
					parts[i] = encodeComponent(segment)
				}
			}
			sb.WriteString(strings.Join(parts, "/"))
		} else {
			sb.WriteString(encodeComponent(route.Name))
		}

		if route.State != nil {
			sb.WriteString("/")
		} else {
			if query := focusedQuery(focusedParams, focused); query != "" {
				sb.WriteString("?")
				sb.WriteString(query)
			}
		}

		current = route.State
	}

	path := collapseSlashes(sb.String())
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if opts != nil && opts.Path != "" {
		path = "/" + joinPaths(opts.Path, path)
	}

	return path, nil
}

// focusedQuery serializes the focused route's residual params. When the
// walk captured (and pruned) params for the focused route those are used;
// otherwise the focused route's raw params are taken as-is. Params whose
// textual form is the literal "undefined" are dropped either way.
func focusedQuery(focusedParams *orderedParams, focused *Route) string {
	if focusedParams != nil {
		focusedParams.dropUndefined()
		return EncodeQuery(focusedParams.toParams())
	}

	residual := make(Params, 0, len(focused.Params))
	for _, param := range focused.Params {
		if stringifyValue(param.Value) == undefinedValue {
			continue
		}
		residual = append(residual, param)
	}
	return EncodeQuery(residual)
}
