package slate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-slate/slate/errors"
)

func TestMaskCombinators(t *testing.T) {
	a := Mask{true, true, false, false}
	b := Mask{true, false, true, false}

	and, err := a.And(b)
	require.Nil(t, err)
	require.Equal(t, Mask{true, false, false, false}, and)

	or, err := a.Or(b)
	require.Nil(t, err)
	require.Equal(t, Mask{true, true, true, false}, or)

	require.Equal(t, Mask{false, false, true, true}, a.Not())
	require.Equal(t, 2, a.CountTrue())
}

func TestMaskCombinatorsRejectLengthMismatch(t *testing.T) {
	a := Mask{true}
	b := Mask{true, false}
	_, err := a.And(b)
	require.IsType(t, errors.MaskLengthError{}, err)
	_, err = a.Or(b)
	require.IsType(t, errors.MaskLengthError{}, err)
}
