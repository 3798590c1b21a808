package navigation

import (
	"github.com/google/uuid"
)

// Param is a single route parameter. Parameter order is significant: query
// strings preserve insertion order rather than sorting keys.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered collection of route parameters.
type Params []Param

// Get returns the value stored under key and whether it is present.
func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Route is a named, keyed entry in a navigation state. A route may carry
// parameters, the literal path it was opened from, and a nested state when
// it is itself a navigator.
type Route struct {
	Name   string
	Key    string
	Path   string
	Params Params
	State  *NavigationState
}

// NavigationState is the tree of active routes produced by a navigator.
// Index selects the active route; when nil the last route is active.
type NavigationState struct {
	Index  *int
	Routes []Route
}

// Index returns a pointer to i, for use as the Index of a NavigationState
// literal.
func Index(i int) *int { return &i }

// NewRoute returns a Route with a generated unique key in the same
// "<name>-<id>" form navigators use.
func NewRoute(name string) Route {
	return Route{Name: name, Key: name + "-" + uuid.NewString()}
}

// active returns a pointer to the active route of s. The pointer aliases
// the state's backing array so route identity survives the walk.
func (s *NavigationState) active() (*Route, error) {
	if s == nil || len(s.Routes) == 0 {
		return nil, newInvalidStateError("navigation state has no routes")
	}

	idx := len(s.Routes) - 1
	if s.Index != nil {
		if *s.Index < 0 || *s.Index >= len(s.Routes) {
			return nil, newInvalidStateError("navigation state index is out of range")
		}
		idx = *s.Index
	}

	return &s.Routes[idx], nil
}

// ActiveRoute returns the deepest focused route of state, following the
// active route's nested state at each level.
func ActiveRoute(state *NavigationState) (*Route, error) {
	route, err := state.active()
	if err != nil {
		return nil, err
	}

	for route.State != nil && len(route.State.Routes) > 0 {
		route, err = route.State.active()
		if err != nil {
			return nil, err
		}
	}

	return route, nil
}
