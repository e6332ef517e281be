// Package curves provides the elliptic curve backends used by the
// stealth address protocol. Each backend exposes the same small
// capability set (scalar sampling, base-point and arbitrary-point
// multiplication, point addition, canonical serialization) so the
// protocol layer stays curve-agnostic.
package curves

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Curve names accepted by New.
const (
	BN254     = "bn254"
	BLS12381  = "bls12-381"
	BLS12377  = "bls12-377"
	Secp256k1 = "secp256k1"
	Ed25519   = "ed25519"
)

var (
	// ErrPointDecode is returned when bytes do not decode to a valid
	// group element (malformed, off-curve or outside the prime-order
	// subgroup).
	ErrPointDecode = errors.New("curves: invalid point encoding")

	// ErrUnknownCurve is returned by New when no backend exists for the
	// requested name. There is no default curve.
	ErrUnknownCurve = errors.New("curves: unknown curve")
)

// Point represents an element of the curve's prime-order group.
// Implementations are immutable: every operation returns a new Point.
type Point interface {
	// Bytes returns the canonical compressed serialization of the point.
	Bytes() []byte

	// Add returns this point plus p. Mixing points from different
	// backends is a programming error and panics.
	Add(p Point) Point

	// ScalarMult returns k times this point.
	ScalarMult(k *big.Int) Point

	// IsIdentity reports whether the point is the group identity
	// (point at infinity).
	IsIdentity() bool

	// Equal reports whether both points represent the same group element.
	Equal(p Point) bool
}

// Curve is the capability set a backend must provide. Exactly one
// backend is chosen at composition time and injected into the protocol
// components; there is no process-wide curve state.
type Curve interface {
	// Name returns the registry name of the curve.
	Name() string

	// Order returns the order n of the prime-order group. The returned
	// value is a fresh copy and safe to mutate.
	Order() *big.Int

	// RandomScalar samples a uniform scalar in [1, n-1] from a
	// cryptographically secure source.
	RandomScalar() (*big.Int, error)

	// ScalarFromBytes interprets b as a big-endian integer and reduces
	// it modulo n.
	ScalarFromBytes(b []byte) *big.Int

	// ScalarBaseMult returns k times the fixed generator G.
	ScalarBaseMult(k *big.Int) Point

	// BasePoint returns the fixed generator G.
	BasePoint() Point

	// DecodePoint parses a canonical compressed encoding. It returns an
	// error wrapping ErrPointDecode for anything that is not a valid
	// group element; it never substitutes a default value.
	DecodePoint(b []byte) (Point, error)
}

// New returns the backend for the named curve. The choice is explicit:
// an unrecognized name is a configuration error, never a silent default.
func New(name string) (Curve, error) {
	switch name {
	case BN254:
		return &bn254Curve{}, nil
	case BLS12381:
		return &bls12381Curve{}, nil
	case BLS12377:
		return &bls12377Curve{}, nil
	case Secp256k1:
		return &secpCurve{}, nil
	case Ed25519:
		return &ed25519Curve{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
}

// Names lists every registered backend.
func Names() []string {
	return []string{BN254, BLS12381, BLS12377, Secp256k1, Ed25519}
}

var one = big.NewInt(1)

// randomScalar samples uniformly from [1, order-1].
func randomScalar(order *big.Int) (*big.Int, error) {
	k, err := rand.Int(rand.Reader, new(big.Int).Sub(order, one))
	if err != nil {
		return nil, err
	}
	return k.Add(k, one), nil
}

// scalarFromBytes reduces a big-endian byte string modulo order.
func scalarFromBytes(b []byte, order *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).SetBytes(b), order)
}
