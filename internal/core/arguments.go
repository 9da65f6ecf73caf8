package core

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/macressler/fastr/internal/data"
)

var VARIADIC_PARAM_SYMBOL = data.Sym("...")

// Formals describes the parameters of a callable. The variadic parameter (...) is not part
// of Names, it collects the arguments no named parameter matched.
type Formals struct {
	Names    []*data.Symbol
	Variadic bool
}

// NewFormals creates the formals from parameter names, a "..." name makes the callable variadic.
func NewFormals(names ...string) Formals {
	formals := Formals{}
	for _, name := range names {
		sym := data.Sym(name)
		if sym == VARIADIC_PARAM_SYMBOL {
			formals.Variadic = true
			continue
		}
		formals.Names = append(formals.Names, sym)
	}
	return formals
}

// NamedCount returns the number of parameters other than "...".
func (f Formals) NamedCount() int {
	return len(f.Names)
}

// BoundArguments is the result of matching the arguments of a call site against the parameters
// of the callee. It is computed once per call site and must not be modified.
type BoundArguments struct {
	// parameter index of each argument, -1 for arguments that are unbound (empty or overflowing).
	ArgPositions []int

	// set of the parameters that received an argument.
	Provided *bitset.BitSet

	// indexes of the arguments that match no parameter, in call order.
	Overflow []int
}

// BindArguments matches arguments to parameters: first by exact name, then by position for the
// remaining arguments. An empty argument (argHasExpr[i] == false) consumes a positional slot without
// providing it. If several arguments have the same name the last one wins. BindArguments never fails,
// unmatched arguments are reported in Overflow and missing parameters are left for the callee to check.
func BindArguments(params []*data.Symbol, argNames []*data.Symbol, argHasExpr []bool) *BoundArguments {
	nParams := len(params)
	nArgs := len(argNames)

	bound := &BoundArguments{
		ArgPositions: make([]int, nArgs),
		Provided:     bitset.New(uint(nParams)),
	}
	matched := bitset.New(uint(nArgs))

	for i := range bound.ArgPositions {
		bound.ArgPositions[i] = -1
	}

	//matching by name
	for i, name := range argNames {
		if name == nil {
			continue
		}
		for j, param := range params {
			if name == param {
				bound.ArgPositions[i] = j
				bound.Provided.Set(uint(j))
				matched.Set(uint(i))
				break
			}
		}
	}

	//matching by position
	nextParam := 0
	for i := 0; i < nArgs; i++ {
		if matched.Test(uint(i)) {
			continue
		}
		for nextParam < nParams && bound.Provided.Test(uint(nextParam)) {
			nextParam++
		}
		if nextParam == nParams {
			bound.Overflow = append(bound.Overflow, i)
			continue
		}
		if i < len(argHasExpr) && !argHasExpr[i] {
			nextParam++
			continue
		}
		bound.ArgPositions[i] = nextParam
		bound.Provided.Set(uint(nextParam))
	}

	return bound
}
