package curves

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secpCurve is the backend for secp256k1, the curve pinned by the
// ERC-5564 scheme registry. The cofactor is 1, so every on-curve point
// is in the prime-order group.
type secpCurve struct{}

const secpCompressedSize = 33

func (c *secpCurve) Name() string { return Secp256k1 }

func (c *secpCurve) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().N)
}

func (c *secpCurve) RandomScalar() (*big.Int, error) {
	return randomScalar(secp256k1.S256().N)
}

func (c *secpCurve) ScalarFromBytes(b []byte) *big.Int {
	return scalarFromBytes(b, secp256k1.S256().N)
}

func (c *secpCurve) BasePoint() Point {
	return c.ScalarBaseMult(one)
}

func (c *secpCurve) ScalarBaseMult(k *big.Int) Point {
	var s secp256k1.ModNScalar
	s.SetByteSlice(k.Bytes())
	// ScalarBaseMultNonConst leaves garbage affine coordinates for a
	// zero scalar instead of Z = 0; map it to the identity ourselves.
	if s.IsZero() {
		return &secpPoint{}
	}
	var p secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s, &p)
	normalizeJacobian(&p)
	return &secpPoint{p: p}
}

func (c *secpCurve) DecodePoint(b []byte) (Point, error) {
	// Only the 33-byte compressed form is canonical here; ParsePubKey
	// would also accept uncompressed and hybrid encodings.
	if len(b) != secpCompressedSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			ErrPointDecode, secpCompressedSize, len(b))
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	var p secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	normalizeJacobian(&p)
	return &secpPoint{p: p}, nil
}

// normalizeJacobian converts to affine coordinates, leaving the point
// at infinity (Z = 0) untouched.
func normalizeJacobian(p *secp256k1.JacobianPoint) {
	z := p.Z
	if z.Normalize().IsZero() {
		return
	}
	p.ToAffine()
}

// secpPoint holds an affine-normalized Jacobian point; the identity
// keeps Z = 0.
type secpPoint struct {
	p secp256k1.JacobianPoint
}

func (p *secpPoint) Bytes() []byte {
	// The identity has no SEC1 encoding; an all-zero buffer round-trips
	// to a decode error, which is the desired behavior for it.
	if p.IsIdentity() {
		return make([]byte, secpCompressedSize)
	}
	x, y := p.p.X, p.p.Y
	return secp256k1.NewPublicKey(&x, &y).SerializeCompressed()
}

func (p *secpPoint) Add(other Point) Point {
	o, ok := other.(*secpPoint)
	if !ok {
		panic("curves: point type mismatch")
	}
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &o.p, &r)
	normalizeJacobian(&r)
	return &secpPoint{p: r}
}

func (p *secpPoint) ScalarMult(k *big.Int) Point {
	var s secp256k1.ModNScalar
	s.SetByteSlice(k.Bytes())
	// Same zero-scalar gap as in ScalarBaseMult.
	if s.IsZero() {
		return &secpPoint{}
	}
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&s, &p.p, &r)
	normalizeJacobian(&r)
	return &secpPoint{p: r}
}

func (p *secpPoint) IsIdentity() bool {
	z := p.p.Z
	return z.Normalize().IsZero()
}

func (p *secpPoint) Equal(other Point) bool {
	o, ok := other.(*secpPoint)
	if !ok {
		return false
	}
	if p.IsIdentity() || o.IsIdentity() {
		return p.IsIdentity() && o.IsIdentity()
	}
	px, py, ox, oy := p.p.X, p.p.Y, o.p.X, o.p.Y
	return px.Normalize().Equals(ox.Normalize()) &&
		py.Normalize().Equals(oy.Normalize())
}
