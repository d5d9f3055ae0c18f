package eval

import (
	"sort"

	"github.com/jcorbin/gotrio/internal/value"
)

// Env is a variable environment, owned by the caller and passed by
// reference into every evaluation.
type Env interface {
	Lookup(name string) (value.Value, bool)
	Bind(name string, v value.Value)
}

// Vars is a map backed Env.
type Vars map[string]value.Value

// Lookup returns the value bound to name.
func (vars Vars) Lookup(name string) (value.Value, bool) {
	v, ok := vars[name]
	return v, ok
}

// Bind sets name to v.
func (vars Vars) Bind(name string, v value.Value) { vars[name] = v }

// Names returns all bound names, sorted.
func (vars Vars) Names() []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
