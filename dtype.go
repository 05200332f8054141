package slate

import "strconv"

// DType identifies the primitive type of a Column. It is inferred once from
// the observed data and is immutable thereafter.
type DType int

const (
	// IntType is the DType of a column whose non-missing cells all parse as signed integers
	IntType DType = iota
	// FloatType is the DType of a column whose non-missing cells all parse as decimal numbers
	FloatType
	// StringType is the DType of any column which is neither IntType nor FloatType
	StringType
)

// String returns a human-readable representation of a DType
func (t DType) String() string {
	switch t {
	case IntType:
		return "int"
	case FloatType:
		return "float"
	default:
		return "string"
	}
}

// IsNumeric returns true iff this DType is IntType or FloatType
func (t DType) IsNumeric() bool {
	return t == IntType || t == FloatType
}

// IsInteger returns true iff s parses fully as a signed integer, with no trailing characters
func IsInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IsFloat returns true iff s parses fully as a decimal number. Every
// integer-like string is also float-like.
func IsFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// InferDType classifies a sequence of raw cell values as IntType, FloatType
// or StringType. Missing cells (empty strings) are ignored, and are legal in
// a column of any DType. A sequence with no non-missing cells infers
// StringType.
func InferDType(values []string) DType {
	allInt := true
	allFloat := true
	present := 0
	for _, v := range values {
		if len(v) == 0 {
			continue
		}
		present++
		if allInt && !IsInteger(v) {
			allInt = false
		}
		if allFloat && !IsFloat(v) {
			allFloat = false
		}
		if !allInt && !allFloat {
			break
		}
	}
	if present == 0 {
		return StringType
	}
	if allInt {
		return IntType
	}
	if allFloat {
		return FloatType
	}
	return StringType
}
