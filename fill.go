package slate

import (
	"strconv"
)

type fillKind int

const (
	fillInt fillKind = iota
	fillFloat
	fillString
)

// FillValue is a tagged value used to replace missing cells. Construct one
// with FillInt, FillFloat or FillString; the value is coerced to the textual
// form of the receiving column's dtype when applied.
type FillValue struct {
	kind fillKind
	i    int64
	f    float64
	s    string
}

// FillInt returns a FillValue holding a signed integer
func FillInt(v int64) FillValue {
	return FillValue{kind: fillInt, i: v}
}

// FillFloat returns a FillValue holding a decimal number
func FillFloat(v float64) FillValue {
	return FillValue{kind: fillFloat, f: v}
}

// FillString returns a FillValue holding raw text
func FillString(v string) FillValue {
	return FillValue{kind: fillString, s: v}
}

// forDType renders this FillValue as a cell of the given dtype. A float fill
// applied to an IntType column truncates toward zero; an integer fill applied
// to a FloatType column is formatted as a decimal. Text fills are stored
// verbatim regardless of dtype.
func (v FillValue) forDType(dtype DType) string {
	switch v.kind {
	case fillInt:
		if dtype == FloatType {
			return strconv.FormatFloat(float64(v.i), 'f', -1, 64)
		}
		return strconv.FormatInt(v.i, 10)
	case fillFloat:
		if dtype == IntType {
			return strconv.FormatInt(int64(v.f), 10)
		}
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	default:
		return v.s
	}
}
