package data

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

// A Symbol is an interned name, two symbols with the same name are the same pointer.
type Symbol struct {
	name string
}

var symbolTable = cmap.New[*Symbol]()

// Sym returns the unique symbol for name.
func Sym(name string) *Symbol {
	if sym, ok := symbolTable.Get(name); ok {
		return sym
	}
	return symbolTable.Upsert(name, nil, func(exist bool, valueInMap, _ *Symbol) *Symbol {
		if exist {
			return valueInMap
		}
		return &Symbol{name: name}
	})
}

// Syms interns each of the names, empty strings are mapped to nil.
func Syms(names ...string) []*Symbol {
	symbols := make([]*Symbol, len(names))
	for i, name := range names {
		if name != "" {
			symbols[i] = Sym(name)
		}
	}
	return symbols
}

func (s *Symbol) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *Symbol) String() string {
	return s.Name()
}
