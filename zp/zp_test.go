package zp_test

import (
	"testing"

	"github.com/mirvel/tdakit/zp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsNonPrimes verifies modulus validation.
func TestNew_RejectsNonPrimes(t *testing.T) {
	for _, p := range []int64{-7, 0, 1, 4, 9, 15, 1001} {
		_, err := zp.New(p)
		assert.ErrorIs(t, err, zp.ErrInvalidModulus, "p=%d must be rejected", p)
	}
	_, err := zp.New(1001)
	assert.ErrorContains(t, err, "1001")
	for _, p := range []int64{2, 3, 5, 7, 31, 997} {
		_, err := zp.New(p)
		assert.NoError(t, err, "p=%d is prime", p)
	}
}

// TestField_BasicOps checks add/sub/neg/mul over Z/7Z against hand values.
func TestField_BasicOps(t *testing.T) {
	f, err := zp.New(7)
	require.NoError(t, err)

	assert.Equal(t, zp.Element(3), f.Add(5, 5))
	assert.Equal(t, zp.Element(5), f.Sub(3, 5))
	assert.Equal(t, zp.Element(4), f.Neg(3))
	assert.Equal(t, zp.Element(0), f.Neg(0))
	assert.Equal(t, zp.Element(1), f.Mul(3, 5))
	assert.Equal(t, zp.Element(2), f.Norm(-5))
	assert.Equal(t, zp.Element(2), f.Norm(9))
}

// TestField_Inv verifies a·a⁻¹ = 1 for every nonzero element of Z/31Z,
// and the GF(2) degenerate case.
func TestField_Inv(t *testing.T) {
	f, err := zp.New(31)
	require.NoError(t, err)

	for a := zp.Element(1); a < 31; a++ {
		inv, invErr := f.Inv(a)
		require.NoError(t, invErr)
		assert.Equal(t, zp.Element(1), f.Mul(a, inv), "a=%d", a)
	}

	gf2, err := zp.New(2)
	require.NoError(t, err)
	inv, err := gf2.Inv(1)
	require.NoError(t, err)
	assert.Equal(t, zp.Element(1), inv)
}

// TestField_InvZero verifies the zero element has no inverse.
func TestField_InvZero(t *testing.T) {
	f, err := zp.New(5)
	require.NoError(t, err)

	_, err = f.Inv(0)
	assert.ErrorIs(t, err, zp.ErrDivisionByZero)
}
