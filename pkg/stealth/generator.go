package stealth

import (
	"math/big"

	"github.com/rymnc/go-erc5564/internal/crypto/hash2field"
)

// Generator derives stealth addresses on behalf of senders. It holds
// no state between calls beyond its configuration.
type Generator struct {
	suite  *Suite
	domain []byte
}

// NewGenerator returns a generator for the suite. domainTag is an
// optional hash-to-scalar domain separator; pass nil for the plain
// derivation. Generator and scanner must agree on it.
func NewGenerator(s *Suite, domainTag []byte) *Generator {
	return &Generator{suite: s, domain: domainTag}
}

// Generate derives a fresh stealth address for the recipient:
//
//	r, R = r*G          ephemeral key pair
//	S = r * ViewPub     ECDH against the viewing key
//	s, tag = H(S)       shared scalar and view tag
//	P = SpendPub + s*G  stealth public key
//
// It returns the public announcement and the ephemeral private key.
// The ephemeral key is exposed for tests and diagnostics only; a sender
// must discard it, it is never needed again.
func (g *Generator) Generate(recipient *MetaAddress) (*Announcement, *big.Int, error) {
	if err := g.suite.validateMetaAddress(recipient); err != nil {
		return nil, nil, err
	}

	curve := g.suite.curve
	r, err := curve.RandomScalar()
	if err != nil {
		return nil, nil, err
	}
	R := curve.ScalarBaseMult(r)

	shared := recipient.ViewPub.ScalarMult(r)
	s, tag := hash2field.DeriveWithTag(curve, shared, g.domain)

	stealthPub := recipient.SpendPub.Add(curve.ScalarBaseMult(s))

	ann := &Announcement{
		EphemeralPubKey: R.Bytes(),
		StealthAddress:  addressFromPoint(stealthPub),
		ViewTag:         tag,
	}
	return ann, r, nil
}
