package data

func mapElements[From, To any](src []From, fn func(From) To) []To {
	res := make([]To, len(src))
	for i, e := range src {
		res[i] = fn(e)
	}
	return res
}

// AsLogical coerces v to the logical family, attributes other than dimensions are dropped.
// status is updated when a missing value is introduced by the conversion.
func AsLogical(v Value, status *ConversionStatus) (*LogicalVector, error) {
	switch vec := v.(type) {
	case *LogicalVector:
		return vec, nil
	case *IntVector:
		return &LogicalVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, Int2Logical)}, nil
	case *DoubleVector:
		return &LogicalVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, Double2Logical)}, nil
	case *ComplexVector:
		return &LogicalVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, Complex2Logical)}, nil
	case *RawVector:
		return &LogicalVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, Raw2Logical)}, nil
	case *StringVector:
		elements := make([]Logical, len(vec.elements))
		for i, s := range vec.elements {
			if vec.IsNA(i) {
				elements[i] = NA
				continue
			}
			elements[i] = String2Logical(s, status)
		}
		return &LogicalVector{attributes: attributes{dims: vec.dims}, elements: elements}, nil
	case NullT:
		return NewLogicalVector(), nil
	}
	return nil, ErrUncoercible
}

// AsInt coerces v to the integer family.
func AsInt(v Value, status *ConversionStatus) (*IntVector, error) {
	switch vec := v.(type) {
	case *IntVector:
		return vec, nil
	case *LogicalVector:
		return &IntVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, Logical2Int)}, nil
	case *DoubleVector:
		elements := make([]int32, len(vec.elements))
		for i, d := range vec.elements {
			elements[i] = Double2Int(d, status)
		}
		return &IntVector{attributes: attributes{dims: vec.dims}, elements: elements}, nil
	case *RawVector:
		return &IntVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, func(b byte) int32 { return int32(b) })}, nil
	case *StringVector:
		elements := make([]int32, len(vec.elements))
		for i, s := range vec.elements {
			if vec.IsNA(i) {
				elements[i] = IntNA
				continue
			}
			elements[i] = String2Int(s, status)
		}
		return &IntVector{attributes: attributes{dims: vec.dims}, elements: elements}, nil
	case NullT:
		return NewIntVector(), nil
	}
	return nil, ErrUncoercible
}

// AsDouble coerces v to the double family.
func AsDouble(v Value, status *ConversionStatus) (*DoubleVector, error) {
	switch vec := v.(type) {
	case *DoubleVector:
		return vec, nil
	case *LogicalVector:
		return &DoubleVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, Logical2Double)}, nil
	case *IntVector:
		return &DoubleVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, Int2Double)}, nil
	case *ComplexVector:
		return &DoubleVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, func(c complex128) float64 { return real(c) })}, nil
	case *RawVector:
		return &DoubleVector{attributes: attributes{dims: vec.dims}, elements: mapElements(vec.elements, func(b byte) float64 { return float64(b) })}, nil
	case *StringVector:
		elements := make([]float64, len(vec.elements))
		for i, s := range vec.elements {
			if vec.IsNA(i) {
				elements[i] = DoubleNA
				continue
			}
			elements[i] = String2Double(s, status)
		}
		return &DoubleVector{attributes: attributes{dims: vec.dims}, elements: elements}, nil
	case NullT:
		return NewDoubleVector(), nil
	}
	return nil, ErrUncoercible
}

// LogicalAt coerces the i-th element of v to a logical without converting the whole vector.
func LogicalAt(v Value, i int, status *ConversionStatus) (Logical, error) {
	switch vec := v.(type) {
	case *LogicalVector:
		return vec.elements[i], nil
	case *IntVector:
		return Int2Logical(vec.elements[i]), nil
	case *DoubleVector:
		return Double2Logical(vec.elements[i]), nil
	case *ComplexVector:
		return Complex2Logical(vec.elements[i]), nil
	case *RawVector:
		return Raw2Logical(vec.elements[i]), nil
	case *StringVector:
		if vec.IsNA(i) {
			return NA, nil
		}
		return String2Logical(vec.elements[i], status), nil
	}
	return NA, ErrUncoercible
}
