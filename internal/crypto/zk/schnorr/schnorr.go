// Package schnorr implements a Schnorr proof of knowledge of a discrete
// logarithm over any curve backend. Recipients use it to demonstrate
// ownership of a recovered stealth key without revealing the key.
package schnorr

import (
	"errors"
	"math/big"

	"github.com/rymnc/go-erc5564/internal/crypto/curves"
	"github.com/rymnc/go-erc5564/internal/crypto/hash2field"
)

// Proof proves knowledge of x such that X = x*G.
type Proof struct {
	R curves.Point // commitment R = k*G
	S *big.Int     // response s = k + e*x mod n
}

// Prove generates a proof for the secret x with public key X = x*G.
func Prove(c curves.Curve, x *big.Int, X curves.Point) (*Proof, error) {
	if x == nil || X == nil {
		return nil, errors.New("schnorr: inputs cannot be nil")
	}

	// 1. Random nonce k, commitment R = k*G.
	k, err := c.RandomScalar()
	if err != nil {
		return nil, err
	}
	R := c.ScalarBaseMult(k)

	// 2. Challenge e = H(X, R) mod n.
	e := challenge(c, X, R)

	// 3. Response s = k + e*x mod n.
	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, c.Order())

	return &Proof{R: R, S: s}, nil
}

// Verify checks the proof against the public key X.
func (p *Proof) Verify(c curves.Curve, X curves.Point) bool {
	if p == nil || p.R == nil || p.S == nil || X == nil {
		return false
	}
	n := c.Order()
	if p.S.Sign() < 0 || p.S.Cmp(n) >= 0 {
		return false
	}

	// s*G == R + e*X
	e := challenge(c, X, p.R)
	lhs := c.ScalarBaseMult(p.S)
	rhs := p.R.Add(X.ScalarMult(e))
	return lhs.Equal(rhs)
}

// challenge computes keccak256(X || R) reduced into the scalar field.
func challenge(c curves.Curve, X, R curves.Point) *big.Int {
	return c.ScalarFromBytes(hash2field.Keccak256(X.Bytes(), R.Bytes()))
}
