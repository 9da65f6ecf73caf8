package data

import (
	"math"
	"strconv"
	"strings"
)

// ConversionStatus collects the side conditions of element conversions.
type ConversionStatus struct {
	// set when a conversion produced a missing value from a non-missing input
	NAIntroduced bool
	OutOfRange   bool
}

func (s *ConversionStatus) Reset() {
	s.NAIntroduced = false
	s.OutOfRange = false
}

func Int2Logical(i int32) Logical {
	switch i {
	case IntNA:
		return NA
	case 0:
		return False
	default:
		return True
	}
}

func Double2Logical(d float64) Logical {
	switch {
	case math.IsNaN(d):
		return NA
	case d == 0:
		return False
	default:
		return True
	}
}

func Complex2Logical(c complex128) Logical {
	r, i := real(c), imag(c)
	switch {
	case math.IsNaN(r) || math.IsNaN(i):
		return NA
	case r == 0 && i == 0:
		return False
	default:
		return True
	}
}

func Raw2Logical(b byte) Logical {
	return LogicalOf(b != 0)
}

func Logical2Int(l Logical) int32 {
	if l == NA {
		return IntNA
	}
	return int32(l)
}

func Logical2Double(l Logical) float64 {
	if l == NA {
		return DoubleNA
	}
	return float64(l)
}

func Int2Double(i int32) float64 {
	if i == IntNA {
		return DoubleNA
	}
	return float64(i)
}

// Double2Int truncates d, values out of the int32 range become NA.
func Double2Int(d float64, status *ConversionStatus) int32 {
	if math.IsNaN(d) {
		return IntNA
	}
	if d >= math.MaxInt32+1 || d <= math.MinInt32 {
		status.NAIntroduced = true
		return IntNA
	}
	return int32(d)
}

// String2Logical accepts the spellings TRUE, true, True, T and their FALSE counterparts.
func String2Logical(s string, status *ConversionStatus) Logical {
	switch s {
	case "TRUE", "true", "True", "T":
		return True
	case "FALSE", "false", "False", "F":
		return False
	case "NA":
		return NA
	}
	status.NAIntroduced = true
	return NA
}

func String2Int(s string, status *ConversionStatus) int32 {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return IntNA
	}
	i, err := strconv.ParseInt(s, 10, 32)
	if err == nil && i != IntNA {
		return int32(i)
	}

	//integral doubles such as 1e3 are accepted.
	d, err := strconv.ParseFloat(s, 64)
	if err != nil || d != math.Trunc(d) {
		status.NAIntroduced = true
		return IntNA
	}
	return Double2Int(d, status)
}

func String2Double(s string, status *ConversionStatus) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "NA":
		return DoubleNA
	case "NaN":
		return math.NaN()
	case "Inf":
		return math.Inf(1)
	case "-Inf":
		return math.Inf(-1)
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return d
		}
		status.NAIntroduced = true
		return DoubleNA
	}
	return d
}

func String2Complex(s string, status *ConversionStatus) complex128 {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return ComplexNA
	}
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		status.NAIntroduced = true
		return ComplexNA
	}
	return c
}

// String2Raw parses a hexadecimal byte, raw vectors have no NA so invalid input yields 0.
func String2Raw(s string, status *ConversionStatus) byte {
	s = strings.TrimSpace(s)
	i, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			status.OutOfRange = true
		} else {
			status.NAIntroduced = true
		}
		return 0
	}
	if i > math.MaxUint8 {
		status.OutOfRange = true
		return 0
	}
	return byte(i)
}
