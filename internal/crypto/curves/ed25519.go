package curves

import (
	"fmt"
	"math/big"

	"filippo.io/edwards25519"
)

// ed25519Curve is the backend for the prime-order subgroup of
// edwards25519, the curve CryptoNote-style stealth addresses use.
// The full curve has cofactor 8, so decoding performs a torsion check.
type ed25519Curve struct{}

// l = 2^252 + 27742317777372353535851937790883648493
var ed25519Order, _ = new(big.Int).SetString(
	"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

// ed25519EightInv is 8^-1 mod l, used for the subgroup check on decode.
var ed25519EightInv = mustEd25519Scalar(
	new(big.Int).ModInverse(big.NewInt(8), ed25519Order))

func (c *ed25519Curve) Name() string { return Ed25519 }

func (c *ed25519Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *ed25519Curve) RandomScalar() (*big.Int, error) {
	return randomScalar(ed25519Order)
}

func (c *ed25519Curve) ScalarFromBytes(b []byte) *big.Int {
	return scalarFromBytes(b, ed25519Order)
}

func (c *ed25519Curve) BasePoint() Point {
	return &ed25519Point{p: edwards25519.NewGeneratorPoint()}
}

func (c *ed25519Curve) ScalarBaseMult(k *big.Int) Point {
	s := mustEd25519Scalar(k)
	return &ed25519Point{p: edwards25519.NewIdentityPoint().ScalarBaseMult(s)}
}

func (c *ed25519Curve) DecodePoint(b []byte) (Point, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: want 32 bytes, got %d", ErrPointDecode, len(b))
	}
	p, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	// P is torsion-free iff (1/8)*(8*P) == P. Low-order components are
	// killed by the cofactor multiplication, so the equality fails for
	// any point outside the prime-order subgroup.
	q := edwards25519.NewIdentityPoint().MultByCofactor(p)
	q.ScalarMult(ed25519EightInv, q)
	if q.Equal(p) != 1 {
		return nil, fmt.Errorf("%w: point has a torsion component", ErrPointDecode)
	}
	return &ed25519Point{p: p}, nil
}

// mustEd25519Scalar reduces k mod l and converts it to the library's
// little-endian scalar type.
func mustEd25519Scalar(k *big.Int) *edwards25519.Scalar {
	v := new(big.Int).Mod(k, ed25519Order)
	buf := v.FillBytes(make([]byte, 32))
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(buf)
	if err != nil {
		// Unreachable: the value was reduced mod l above.
		panic("curves: non-canonical ed25519 scalar: " + err.Error())
	}
	return s
}

type ed25519Point struct {
	p *edwards25519.Point
}

func (p *ed25519Point) Bytes() []byte { return p.p.Bytes() }

func (p *ed25519Point) Add(other Point) Point {
	o, ok := other.(*ed25519Point)
	if !ok {
		panic("curves: point type mismatch")
	}
	return &ed25519Point{p: edwards25519.NewIdentityPoint().Add(p.p, o.p)}
}

func (p *ed25519Point) ScalarMult(k *big.Int) Point {
	s := mustEd25519Scalar(k)
	return &ed25519Point{p: edwards25519.NewIdentityPoint().ScalarMult(s, p.p)}
}

func (p *ed25519Point) IsIdentity() bool {
	return p.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *ed25519Point) Equal(other Point) bool {
	o, ok := other.(*ed25519Point)
	if !ok {
		return false
	}
	return p.p.Equal(o.p) == 1
}
