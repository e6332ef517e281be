// Package hash2field derives scalar-field elements and view tags from
// Diffie-Hellman shared points. The convention is load-bearing for
// cross-implementation compatibility and is pinned here: one keccak-256
// digest over the canonical compressed point followed by the optional
// domain tag, reduced big-endian modulo the group order. The view tag
// is the first byte of the same digest.
package hash2field

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/rymnc/go-erc5564/internal/crypto/curves"
)

// Keccak256 returns the legacy keccak-256 digest of the concatenation
// of its inputs.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// Digest hashes the point's canonical serialization and the optional
// domain tag. Deterministic: equal inputs always produce equal output.
func Digest(p curves.Point, domain []byte) []byte {
	return Keccak256(p.Bytes(), domain)
}

// DeriveScalar binds a shared point to the curve's scalar field.
func DeriveScalar(c curves.Curve, p curves.Point, domain []byte) *big.Int {
	return c.ScalarFromBytes(Digest(p, domain))
}

// DeriveWithTag returns the blinding scalar together with the one-byte
// view tag. Both come from the same digest, so a scanner that
// recomputes the tag and a generator that emitted it can never disagree
// about the scalar.
func DeriveWithTag(c curves.Curve, p curves.Point, domain []byte) (*big.Int, byte) {
	d := Digest(p, domain)
	return c.ScalarFromBytes(d), d[0]
}

// Tag returns only the view tag for a shared point.
func Tag(p curves.Point, domain []byte) byte {
	return Digest(p, domain)[0]
}
