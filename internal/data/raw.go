package data

import "encoding/hex"

// RawVector implements Value, raw bytes have no missing value.
type RawVector struct {
	attributes
	elements []byte
}

func NewRawVector(elements ...byte) *RawVector {
	return &RawVector{elements: elements}
}

func (v *RawVector) Kind() Kind {
	return RawKind
}

func (v *RawVector) Len() int {
	return len(v.elements)
}

func (v *RawVector) At(i int) byte {
	return v.elements[i]
}

func (v *RawVector) IsNA(i int) bool {
	return false
}

func (v *RawVector) String() string {
	return formatElements(len(v.elements), func(i int) string {
		return hex.EncodeToString(v.elements[i : i+1])
	})
}
