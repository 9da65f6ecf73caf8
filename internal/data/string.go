package data

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// StringVector implements Value, missing elements are tracked in a bit set.
type StringVector struct {
	attributes
	elements []string
	na       *bitset.BitSet //nil if no element is missing
}

func NewStringVector(elements ...string) *StringVector {
	return &StringVector{elements: elements}
}

// NewStringVectorWithNA creates a string vector whose elements at the indexes in naIndexes are missing.
func NewStringVectorWithNA(elements []string, naIndexes ...int) *StringVector {
	vec := &StringVector{elements: elements}
	if len(naIndexes) > 0 {
		vec.na = bitset.New(uint(len(elements)))
		for _, i := range naIndexes {
			vec.na.Set(uint(i))
		}
	}
	return vec
}

func (v *StringVector) Kind() Kind {
	return StringKind
}

func (v *StringVector) Len() int {
	return len(v.elements)
}

// At returns the i-th element, the result is meaningless if the element is missing.
func (v *StringVector) At(i int) string {
	return v.elements[i]
}

func (v *StringVector) IsNA(i int) bool {
	return v.na != nil && v.na.Test(uint(i))
}

func (v *StringVector) String() string {
	return formatElements(len(v.elements), func(i int) string {
		if v.IsNA(i) {
			return "NA"
		}
		return strconv.Quote(v.elements[i])
	})
}
