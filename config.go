package navigation

import "fmt"

// StringifyFunc converts a parameter value to its textual path or query
// representation.
type StringifyFunc func(value any) string

// PathConfigMap maps route names to their path configuration. A route name
// may be configured with a bare Template, a Screen, or an ordered list of
// Alternatives disambiguated at serialization time.
type PathConfigMap map[string]ScreenConfig

// ScreenConfig is implemented by Template, Screen and Alternatives.
type ScreenConfig interface {
	screenConfig()
}

// Template is a bare path template, e.g. "chat/:author/:id". When nested it
// is joined onto the pattern of the enclosing screen.
type Template string

// Screen configures a route's path template along with optional per
// parameter stringifiers and nested screens.
type Screen struct {
	// Path is the template for this screen. It may be empty so the screen
	// contributes no segment of its own.
	Path string

	// Exact uses Path verbatim, ignoring patterns inherited from enclosing
	// screens. This lets a screen declare an absolute path regardless of
	// nesting.
	Exact bool

	// Stringify overrides the textual form of individual parameters.
	Stringify map[string]StringifyFunc

	// Screens configures nested routes.
	Screens PathConfigMap
}

// Alternatives is an ordered list of candidate screens for one route name.
// The first candidate satisfied by the route being serialized wins.
type Alternatives []Screen

func (Template) screenConfig()     {}
func (Screen) screenConfig()       {}
func (Alternatives) screenConfig() {}

// Options configures PathFromState.
type Options struct {
	// Path is an optional prefix joined onto the front of the result.
	Path string

	// InitialRouteName is part of the linking configuration contract; it is
	// not consulted during serialization.
	InitialRouteName string

	// Screens declares per route path templates.
	Screens PathConfigMap
}

// ValidatePathConfig checks the declarative configuration for shape
// violations. PathFromState runs it before normalization; it is exported so
// callers can validate configuration up front, independent of any state.
func ValidatePathConfig(opts *Options) error {
	if opts == nil {
		return nil
	}
	return validateScreens(opts.Screens, "")
}

func validateScreens(screens PathConfigMap, parent string) error {
	for name, config := range screens {
		at := name
		if parent != "" {
			at = parent + "." + name
		}

		if name == "" {
			return newConfigError("screen configured with an empty route name", map[string]any{
				"screen": at,
			})
		}

		if config == nil {
			return newConfigError(fmt.Sprintf("screen %s has no configuration", at), map[string]any{
				"screen": at,
			})
		}

		switch c := config.(type) {
		case Template:
		case Screen:
			if err := validateScreens(c.Screens, at); err != nil {
				return err
			}
		case Alternatives:
			if len(c) == 0 {
				return newConfigError(fmt.Sprintf("screen %s has an empty alternatives list", at), map[string]any{
					"screen": at,
				})
			}
			for _, alt := range c {
				if err := validateScreens(alt.Screens, at); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
