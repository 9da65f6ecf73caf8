package data

import "strings"

// List implements Value, it is a generic vector.
type List struct {
	attributes
	elements []Value
}

func NewList(elements ...Value) *List {
	return &List{elements: elements}
}

func (l *List) Kind() Kind {
	return ListKind
}

func (l *List) Len() int {
	return len(l.elements)
}

func (l *List) At(i int) Value {
	return l.elements[i]
}

func (l *List) IsNA(i int) bool {
	e := l.elements[i]
	return e.Len() == 1 && e.Kind().IsAtomic() && e.IsNA(0)
}

func (l *List) WithNames(names *Names) *List {
	clone := *l
	clone.names = names
	return &clone
}

func (l *List) String() string {
	buf := strings.Builder{}
	buf.WriteString("list(")
	for i, e := range l.elements {
		if i > 0 {
			buf.WriteString(", ")
		}
		if l.names != nil && i < l.names.Len() && l.names.At(i) != nil {
			buf.WriteString(l.names.At(i).Name())
			buf.WriteString(" = ")
		}
		buf.WriteString(e.String())
	}
	buf.WriteByte(')')
	return buf.String()
}

// NullT implements Value, Null is its only instance.
type NullT struct{}

var Null = NullT{}

func (NullT) Kind() Kind {
	return NullKind
}

func (NullT) Len() int {
	return 0
}

func (NullT) IsNA(i int) bool {
	return false
}

func (NullT) Names() *Names {
	return nil
}

func (NullT) Dimensions() []int {
	return nil
}

func (NullT) String() string {
	return "NULL"
}
