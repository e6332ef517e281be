package curves

import (
	"fmt"
	"math/big"

	bls12377 "github.com/consensys/gnark-crypto/ecc/bls12-377"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// bls12377Curve works in G1 of BLS12-377, with the same contract as the
// other gnark-crypto backends.
type bls12377Curve struct{}

func (c *bls12377Curve) Name() string { return BLS12377 }

func (c *bls12377Curve) Order() *big.Int { return fr.Modulus() }

func (c *bls12377Curve) RandomScalar() (*big.Int, error) {
	return randomScalar(fr.Modulus())
}

func (c *bls12377Curve) ScalarFromBytes(b []byte) *big.Int {
	return scalarFromBytes(b, fr.Modulus())
}

func (c *bls12377Curve) BasePoint() Point {
	_, _, g1, _ := bls12377.Generators()
	return &bls12377Point{p: g1}
}

func (c *bls12377Curve) ScalarBaseMult(k *big.Int) Point {
	_, _, g1, _ := bls12377.Generators()
	var p bls12377.G1Affine
	p.ScalarMultiplication(&g1, k)
	return &bls12377Point{p: p}
}

func (c *bls12377Curve) DecodePoint(b []byte) (Point, error) {
	if len(b) != bls12377.SizeOfG1AffineCompressed {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			ErrPointDecode, bls12377.SizeOfG1AffineCompressed, len(b))
	}
	var p bls12377.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	return &bls12377Point{p: p}, nil
}

type bls12377Point struct {
	p bls12377.G1Affine
}

func (p *bls12377Point) Bytes() []byte {
	buf := p.p.Bytes()
	return buf[:]
}

func (p *bls12377Point) Add(other Point) Point {
	o, ok := other.(*bls12377Point)
	if !ok {
		panic("curves: point type mismatch")
	}
	var a, b bls12377.G1Jac
	a.FromAffine(&p.p)
	b.FromAffine(&o.p)
	a.AddAssign(&b)
	var r bls12377.G1Affine
	r.FromJacobian(&a)
	return &bls12377Point{p: r}
}

func (p *bls12377Point) ScalarMult(k *big.Int) Point {
	var r bls12377.G1Affine
	r.ScalarMultiplication(&p.p, k)
	return &bls12377Point{p: r}
}

func (p *bls12377Point) IsIdentity() bool { return p.p.IsInfinity() }

func (p *bls12377Point) Equal(other Point) bool {
	o, ok := other.(*bls12377Point)
	if !ok {
		return false
	}
	return p.p.Equal(&o.p)
}
