package hash2field

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rymnc/go-erc5564/internal/crypto/curves"
)

// Known keccak-256 vector: the empty input.
const keccakEmpty = "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

func TestKeccak256Vector(t *testing.T) {
	assert.Equal(t, keccakEmpty, hex.EncodeToString(Keccak256()))

	// Concatenation is associative: Keccak256(a, b) == Keccak256(a||b).
	a, b := []byte("stealth"), []byte("address")
	assert.Equal(t, Keccak256(append(append([]byte{}, a...), b...)), Keccak256(a, b))
}

func TestDeriveScalarDeterministic(t *testing.T) {
	for _, name := range curves.Names() {
		t.Run(name, func(t *testing.T) {
			c, err := curves.New(name)
			require.NoError(t, err)

			p := c.ScalarBaseMult(big.NewInt(42))

			s1 := DeriveScalar(c, p, nil)
			s2 := DeriveScalar(c, p, nil)
			assert.Zero(t, s1.Cmp(s2), "same point must derive the same scalar")

			// The scalar is the big-endian reduction of the digest.
			want := c.ScalarFromBytes(Digest(p, nil))
			assert.Zero(t, s1.Cmp(want))
			assert.Negative(t, s1.Cmp(c.Order()))
		})
	}
}

func TestDomainSeparation(t *testing.T) {
	c, err := curves.New(curves.BN254)
	require.NoError(t, err)

	p := c.ScalarBaseMult(big.NewInt(7))

	plain := DeriveScalar(c, p, nil)
	tagged := DeriveScalar(c, p, []byte("erc5564:v1"))
	assert.NotZero(t, plain.Cmp(tagged), "domain tag must change the derivation")

	other := c.ScalarBaseMult(big.NewInt(8))
	assert.NotZero(t, plain.Cmp(DeriveScalar(c, other, nil)),
		"different points must derive different scalars")
}

func TestDeriveWithTagConsistent(t *testing.T) {
	c, err := curves.New(curves.BLS12381)
	require.NoError(t, err)

	p := c.ScalarBaseMult(big.NewInt(99))

	s, tag := DeriveWithTag(c, p, nil)
	assert.Zero(t, s.Cmp(DeriveScalar(c, p, nil)))
	assert.Equal(t, Tag(p, nil), tag)
	assert.Equal(t, Digest(p, nil)[0], tag)
}
