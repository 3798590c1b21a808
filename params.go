package navigation

import (
	"fmt"

	"github.com/spf13/cast"
)

// undefinedValue is the textual form of an absent parameter value. Query
// parameters carrying it are dropped before encoding.
const undefinedValue = "undefined"

// stringifyValue is the default textual coercion for parameter values.
func stringifyValue(value any) string {
	if value == nil {
		return undefinedValue
	}
	if s, err := cast.ToStringE(value); err == nil {
		return s
	}
	return fmt.Sprint(value)
}

// stringifyParams converts a route's parameters to strings, using the
// configured stringifier for a key when present. Values are stringified
// once, when their owning route is visited.
func stringifyParams(params Params, stringify map[string]StringifyFunc) *orderedParams {
	out := newOrderedParams()
	for _, param := range params {
		if fn, ok := stringify[param.Key]; ok && fn != nil {
			out.set(param.Key, fn(param.Value))
		} else {
			out.set(param.Key, stringifyValue(param.Value))
		}
	}
	return out
}

// orderedParams is the insertion ordered accumulator threaded through the
// walk. Overwriting an existing key keeps its original position, so the
// last write wins without reordering the query string.
type orderedParams struct {
	keys   []string
	values map[string]string
}

func newOrderedParams() *orderedParams {
	return &orderedParams{values: map[string]string{}}
}

func (p *orderedParams) set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *orderedParams) get(key string) (string, bool) {
	value, ok := p.values[key]
	return value, ok
}

func (p *orderedParams) delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

func (p *orderedParams) merge(other *orderedParams) {
	for _, key := range other.keys {
		p.set(key, other.values[key])
	}
}

func (p *orderedParams) clone() *orderedParams {
	out := newOrderedParams()
	out.merge(p)
	return out
}

func (p *orderedParams) len() int {
	return len(p.keys)
}

// dropUndefined removes entries whose value stringified to the literal
// "undefined".
func (p *orderedParams) dropUndefined() {
	for _, key := range append([]string(nil), p.keys...) {
		if p.values[key] == undefinedValue {
			p.delete(key)
		}
	}
}

// toParams returns the accumulated entries as ordered key/value pairs.
func (p *orderedParams) toParams() Params {
	out := make(Params, 0, len(p.keys))
	for _, key := range p.keys {
		out = append(out, Param{Key: key, Value: p.values[key]})
	}
	return out
}
