package slate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferDTypeAllIntegers(t *testing.T) {
	require.Equal(t, IntType, InferDType([]string{"1", "2", "3"}))
	require.Equal(t, IntType, InferDType([]string{"-1", "0", "42"}))
}

func TestInferDTypeMixedNumeric(t *testing.T) {
	require.Equal(t, FloatType, InferDType([]string{"1", "2.5"}))
	require.Equal(t, FloatType, InferDType([]string{"-0.5", "3.14"}))
}

func TestInferDTypeText(t *testing.T) {
	require.Equal(t, StringType, InferDType([]string{"1", "a"}))
	require.Equal(t, StringType, InferDType([]string{"2.5x"}))
}

func TestInferDTypeIgnoresMissing(t *testing.T) {
	require.Equal(t, IntType, InferDType([]string{"1", "", "3"}))
	require.Equal(t, FloatType, InferDType([]string{"", "2.5", ""}))
}

func TestInferDTypeAllMissingDefaultsToString(t *testing.T) {
	require.Equal(t, StringType, InferDType([]string{"", "", ""}))
	require.Equal(t, StringType, InferDType(nil))
}

func TestIsIntegerRejectsTrailingCharacters(t *testing.T) {
	require.True(t, IsInteger("123"))
	require.True(t, IsInteger("-7"))
	require.False(t, IsInteger("123abc"))
	require.False(t, IsInteger("1.0"))
	require.False(t, IsInteger(""))
}

func TestIsFloatIsSupersetOfInteger(t *testing.T) {
	require.True(t, IsFloat("123"))
	require.True(t, IsFloat("1.5"))
	require.True(t, IsFloat("-0.25"))
	require.False(t, IsFloat("1.5.2"))
	require.False(t, IsFloat("abc"))
	require.False(t, IsFloat(""))
}

func TestDTypeIsNumeric(t *testing.T) {
	require.True(t, IntType.IsNumeric())
	require.True(t, FloatType.IsNumeric())
	require.False(t, StringType.IsNumeric())
}
