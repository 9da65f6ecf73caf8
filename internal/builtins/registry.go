package builtins

import (
	"github.com/macressler/fastr/internal/core"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var registry = map[string]*core.Builtin{}

func register(builtins ...*core.Builtin) {
	for _, b := range builtins {
		if _, ok := registry[b.Name]; ok {
			panic("builtin " + b.Name + " registered twice")
		}
		registry[b.Name] = b
	}
}

// Lookup returns the builtin named name.
func Lookup(name string) (*core.Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names returns the sorted names of all builtins.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}
