package curves

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCurveContract runs the shared backend contract against every
// registered curve.
func TestCurveContract(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name)
			require.NoError(t, err)
			assert.Equal(t, name, c.Name())

			n := c.Order()
			require.NotNil(t, n)
			assert.Equal(t, 1, n.Sign())

			// Order returns a copy: mutating it must not poison the backend.
			n.SetInt64(7)
			assert.NotEqual(t, int64(7), c.Order().Int64())

			testScalarSampling(t, c)
			testScalarReduction(t, c)
			testPointArithmetic(t, c)
			testPointRoundTrip(t, c)
			testDecodeRejection(t, c)
		})
	}
}

func testScalarSampling(t *testing.T, c Curve) {
	n := c.Order()
	for i := 0; i < 32; i++ {
		k, err := c.RandomScalar()
		require.NoError(t, err)
		assert.Equal(t, 1, k.Sign(), "scalar must be >= 1")
		assert.Negative(t, k.Cmp(n), "scalar must be < order")
	}
}

func testScalarReduction(t *testing.T, c Curve) {
	n := c.Order()

	// Big-endian reduction is pinned: the order itself reduces to zero,
	// order+1 to one, and a single byte passes through unchanged.
	assert.Zero(t, c.ScalarFromBytes(n.Bytes()).Sign())
	overflow := new(big.Int).Add(n, big.NewInt(1))
	assert.Equal(t, int64(1), c.ScalarFromBytes(overflow.Bytes()).Int64())
	assert.Equal(t, int64(0x2a), c.ScalarFromBytes([]byte{0x2a}).Int64())
	assert.Zero(t, c.ScalarFromBytes(nil).Sign())
}

func testPointArithmetic(t *testing.T, c Curve) {
	g := c.BasePoint()
	require.NotNil(t, g)
	assert.False(t, g.IsIdentity())

	// G == 1*G
	assert.True(t, g.Equal(c.ScalarBaseMult(big.NewInt(1))))

	// G+G == 2*G == 2 via base mult
	two := big.NewInt(2)
	assert.True(t, g.Add(g).Equal(g.ScalarMult(two)))
	assert.True(t, g.Add(g).Equal(c.ScalarBaseMult(two)))

	// Key consistency for a random key pair.
	k, err := c.RandomScalar()
	require.NoError(t, err)
	pub := c.ScalarBaseMult(k)
	assert.True(t, pub.Equal(g.ScalarMult(k)))
	assert.False(t, pub.IsIdentity())

	// ECDH commutes: a*(b*G) == b*(a*G).
	a, err := c.RandomScalar()
	require.NoError(t, err)
	b, err := c.RandomScalar()
	require.NoError(t, err)
	left := c.ScalarBaseMult(a).ScalarMult(b)
	right := c.ScalarBaseMult(b).ScalarMult(a)
	assert.True(t, left.Equal(right))

	// n*G is the identity, and wraparound is well-defined.
	assert.True(t, c.ScalarBaseMult(c.Order()).IsIdentity())
	wrapped := new(big.Int).Add(c.Order(), big.NewInt(5))
	assert.True(t, c.ScalarBaseMult(wrapped).Equal(c.ScalarBaseMult(big.NewInt(5))))

	// A zero scalar maps to the identity through both multiplication
	// paths, including scalars that only reduce to zero.
	zero := big.NewInt(0)
	assert.True(t, c.ScalarBaseMult(zero).IsIdentity())
	assert.True(t, g.ScalarMult(zero).IsIdentity())
	assert.True(t, g.ScalarMult(c.Order()).IsIdentity())
}

func testPointRoundTrip(t *testing.T, c Curve) {
	k, err := c.RandomScalar()
	require.NoError(t, err)
	p := c.ScalarBaseMult(k)

	enc := p.Bytes()
	dec, err := c.DecodePoint(enc)
	require.NoError(t, err)
	assert.True(t, p.Equal(dec))
	assert.Equal(t, enc, dec.Bytes())

	// The generator round-trips too.
	g, err := c.DecodePoint(c.BasePoint().Bytes())
	require.NoError(t, err)
	assert.True(t, g.Equal(c.BasePoint()))
}

func testDecodeRejection(t *testing.T, c Curve) {
	width := len(c.BasePoint().Bytes())

	// Wrong lengths.
	for _, n := range []int{0, 1, width - 1, width + 1, 2 * width} {
		_, err := c.DecodePoint(make([]byte, n))
		assert.ErrorIs(t, err, ErrPointDecode, "length %d must be rejected", n)
	}

	// Garbage of the right length. All-ones is out of field range for
	// the gnark backends and has an invalid prefix for secp256k1; for
	// ed25519 an all-zero buffer decodes to a 4-torsion point, which
	// the subgroup check must refuse.
	garbage := bytes.Repeat([]byte{0xff}, width)
	if c.Name() == Ed25519 {
		garbage = make([]byte, width)
	}
	if _, err := c.DecodePoint(garbage); err == nil {
		t.Fatal("garbage bytes decoded to a point")
	}
}

func TestNewUnknownCurve(t *testing.T) {
	for _, name := range []string{"", "p256", "bn256", "BN254"} {
		_, err := New(name)
		assert.ErrorIs(t, err, ErrUnknownCurve, "name %q", name)
	}
}

// TestEd25519TorsionRejected feeds a canonical encoding of a small-order
// point (the order-2 point (0, -1)) to the decoder. It is on the curve
// but outside the prime-order subgroup and must not decode.
func TestEd25519TorsionRejected(t *testing.T) {
	c, err := New(Ed25519)
	require.NoError(t, err)

	orderTwo := bytes.Repeat([]byte{0xff}, 32)
	orderTwo[0] = 0xec // y = p-1, little-endian
	orderTwo[31] = 0x7f

	_, err = c.DecodePoint(orderTwo)
	assert.ErrorIs(t, err, ErrPointDecode)
}

// TestSecp256k1IdentityEncoding pins the behavior that the identity has
// no valid wire form: encoding it yields bytes that fail to decode.
func TestSecp256k1IdentityEncoding(t *testing.T) {
	c, err := New(Secp256k1)
	require.NoError(t, err)

	inf := c.ScalarBaseMult(c.Order())
	require.True(t, inf.IsIdentity())

	_, err = c.DecodePoint(inf.Bytes())
	assert.ErrorIs(t, err, ErrPointDecode)
}

func TestCompressedWidths(t *testing.T) {
	widths := map[string]int{
		BN254:     32,
		BLS12381:  48,
		BLS12377:  48,
		Secp256k1: 33,
		Ed25519:   32,
	}
	for name, want := range widths {
		c, err := New(name)
		require.NoError(t, err)
		assert.Len(t, c.BasePoint().Bytes(), want, name)
	}
}
