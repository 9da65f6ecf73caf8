package data

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidLiteral = errors.New("invalid literal")

// ParseLiteral reads a constant written in the surface syntax: NULL, TRUE, F, NA, 12L, 1.5, 2i,
// "text", c(...) of constants and list(...) of constants.
func ParseLiteral(text string) (Value, error) {
	p := literalParser{src: []rune(text)}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.i != len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidLiteral, string(p.src[p.i:]), p.i)
	}
	return v, nil
}

type literalParser struct {
	src []rune
	i   int
}

func (p *literalParser) skipSpaces() {
	for p.i < len(p.src) && unicode.IsSpace(p.src[p.i]) {
		p.i++
	}
}

func (p *literalParser) hasPrefix(s string) bool {
	return strings.HasPrefix(string(p.src[p.i:]), s)
}

func (p *literalParser) parseValue() (Value, error) {
	p.skipSpaces()
	if p.i >= len(p.src) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrInvalidLiteral)
	}

	switch {
	case p.hasPrefix("c("):
		p.i += 2
		elements, err := p.parseElements()
		if err != nil {
			return nil, err
		}
		return combine(elements)
	case p.hasPrefix("list("):
		p.i += 5
		elements, err := p.parseElements()
		if err != nil {
			return nil, err
		}
		return NewList(elements...), nil
	case p.src[p.i] == '"':
		return p.parseString()
	}

	start := p.i
	for p.i < len(p.src) && !unicode.IsSpace(p.src[p.i]) && p.src[p.i] != ',' && p.src[p.i] != ')' {
		p.i++
	}
	return parseAtom(string(p.src[start:p.i]))
}

func (p *literalParser) parseElements() ([]Value, error) {
	var elements []Value
	for {
		p.skipSpaces()
		if p.i < len(p.src) && p.src[p.i] == ')' {
			p.i++
			return elements, nil
		}
		if len(elements) > 0 {
			if p.i >= len(p.src) || p.src[p.i] != ',' {
				return nil, fmt.Errorf("%w: ',' or ')' expected at offset %d", ErrInvalidLiteral, p.i)
			}
			p.i++
		}
		e, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
}

func (p *literalParser) parseString() (Value, error) {
	start := p.i
	p.i++
	for p.i < len(p.src) {
		switch p.src[p.i] {
		case '\\':
			p.i += 2
			continue
		case '"':
			p.i++
			s, err := strconv.Unquote(string(p.src[start:p.i]))
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidLiteral, err)
			}
			return NewStringVector(s), nil
		}
		p.i++
	}
	return nil, fmt.Errorf("%w: unterminated string", ErrInvalidLiteral)
}

func parseAtom(atom string) (Value, error) {
	switch atom {
	case "NULL":
		return Null, nil
	case "TRUE", "T":
		return LogicalTrue, nil
	case "FALSE", "F":
		return LogicalFalse, nil
	case "NA":
		return LogicalNA, nil
	case "NA_integer_":
		return NewIntScalar(IntNA), nil
	case "NA_real_":
		return NewDoubleScalar(DoubleNA), nil
	case "NA_character_":
		return NewStringVectorWithNA([]string{""}, 0), nil
	}

	status := ConversionStatus{}
	switch {
	case strings.HasSuffix(atom, "L"):
		i := String2Int(strings.TrimSuffix(atom, "L"), &status)
		if !status.NAIntroduced {
			return NewIntScalar(i), nil
		}
	case strings.HasSuffix(atom, "i"):
		c := String2Complex(atom, &status)
		if !status.NAIntroduced {
			return NewComplexVector(c), nil
		}
	default:
		d := String2Double(atom, &status)
		if !status.NAIntroduced {
			return NewDoubleScalar(d), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, atom)
}

// combine concatenates atomic values into a vector of the most general kind among them.
func combine(values []Value) (Value, error) {
	kind := NullKind
	total := 0
	for _, v := range values {
		if !v.Kind().IsAtomic() && v.Kind() != NullKind {
			return NewList(values...), nil
		}
		if v.Kind() > kind {
			kind = v.Kind()
		}
		total += v.Len()
	}

	status := ConversionStatus{}
	switch kind {
	case NullKind:
		return Null, nil
	case LogicalKind:
		elements := make([]Logical, 0, total)
		for _, v := range values {
			l, _ := AsLogical(v, &status)
			elements = append(elements, l.elements...)
		}
		return NewLogicalVector(elements...), nil
	case IntKind:
		elements := make([]int32, 0, total)
		for _, v := range values {
			i, _ := AsInt(v, &status)
			elements = append(elements, i.elements...)
		}
		return NewIntVector(elements...), nil
	case DoubleKind:
		elements := make([]float64, 0, total)
		for _, v := range values {
			d, _ := AsDouble(v, &status)
			elements = append(elements, d.elements...)
		}
		return NewDoubleVector(elements...), nil
	case ComplexKind:
		elements := make([]complex128, 0, total)
		for _, v := range values {
			if c, ok := v.(*ComplexVector); ok {
				elements = append(elements, c.elements...)
				continue
			}
			d, _ := AsDouble(v, &status)
			for i, e := range d.elements {
				if d.IsNA(i) {
					elements = append(elements, ComplexNA)
				} else {
					elements = append(elements, complex(e, 0))
				}
			}
		}
		return NewComplexVector(elements...), nil
	}

	elements := make([]string, 0, total)
	var naIndexes []int
	for _, v := range values {
		for i := 0; i < v.Len(); i++ {
			if v.IsNA(i) {
				naIndexes = append(naIndexes, len(elements))
				elements = append(elements, "")
				continue
			}
			elements = append(elements, elementString(v, i))
		}
	}
	return NewStringVectorWithNA(elements, naIndexes...), nil
}

func elementString(v Value, i int) string {
	switch vec := v.(type) {
	case *StringVector:
		return vec.elements[i]
	case *LogicalVector:
		return vec.elements[i].String()
	case *IntVector:
		return strconv.FormatInt(int64(vec.elements[i]), 10)
	case *DoubleVector:
		return formatDouble(vec.elements[i])
	case *ComplexVector:
		return strconv.FormatComplex(vec.elements[i], 'g', 7, 128)
	case *RawVector:
		return strconv.FormatUint(uint64(vec.elements[i]), 16)
	}
	return ""
}
