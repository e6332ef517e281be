// Package stealth implements the cryptographic core of the ERC-5564
// stealth address scheme: meta-address key management, sender-side
// stealth address generation and recipient-side scanning, generic over
// the elliptic curve backend.
//
// A sender holding a recipient's public MetaAddress derives a fresh,
// unlinkable one-time address and publishes an Announcement. The
// recipient scans announcements with their viewing key, cheaply
// filtering by view tag, and on a match recovers the one-time address
// together with the private key that controls it.
package stealth

import (
	"github.com/rymnc/go-erc5564/internal/crypto/curves"
)

// Supported curve names, accepted by NewSuite.
const (
	BN254     = curves.BN254
	BLS12381  = curves.BLS12381
	BLS12377  = curves.BLS12377
	Secp256k1 = curves.Secp256k1
	Ed25519   = curves.Ed25519
)

// Suite binds the protocol to one curve backend. The curve is chosen
// once at construction and injected into every component; different
// suites can coexist in one process.
type Suite struct {
	curve curves.Curve
}

// NewSuite returns a suite for the named curve, or ErrUnknownCurve.
func NewSuite(curveName string) (*Suite, error) {
	c, err := curves.New(curveName)
	if err != nil {
		return nil, err
	}
	return &Suite{curve: c}, nil
}

// CurveName returns the name of the suite's curve.
func (s *Suite) CurveName() string { return s.curve.Name() }
