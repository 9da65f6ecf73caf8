package data

import "sync/atomic"

// Above this count a lookup index is built for Names.
const NAMES_LINEAR_SCAN_LIMIT = 10

// Names is the names attribute of a vector, it maps indexes to symbols and
// must not be modified after creation.
type Names struct {
	symbols []*Symbol

	//built on first lookup, concurrent builds are harmless because the index is derived data.
	index atomic.Pointer[map[*Symbol]int]
}

func NewNames(symbols []*Symbol) *Names {
	return &Names{symbols: symbols}
}

func (n *Names) Len() int {
	return len(n.symbols)
}

func (n *Names) At(i int) *Symbol {
	return n.symbols[i]
}

// Map returns the index of the first element named name or -1.
func (n *Names) Map(name *Symbol) int {
	if len(n.symbols) <= NAMES_LINEAR_SCAN_LIMIT {
		for i, sym := range n.symbols {
			if sym == name {
				return i
			}
		}
		return -1
	}

	index := n.index.Load()
	if index == nil {
		index = n.buildIndex()
		n.index.Store(index)
	}
	if i, ok := (*index)[name]; ok {
		return i
	}
	return -1
}

func (n *Names) buildIndex() *map[*Symbol]int {
	index := make(map[*Symbol]int, len(n.symbols))
	for i, sym := range n.symbols {
		if _, ok := index[sym]; !ok {
			index[sym] = i
		}
	}
	return &index
}

// Strings returns the names as strings, missing names are returned as empty strings.
func (n *Names) Strings() []string {
	res := make([]string, len(n.symbols))
	for i, sym := range n.symbols {
		res[i] = sym.Name()
	}
	return res
}

func (n *Names) hasIndex() bool {
	return n.index.Load() != nil
}
