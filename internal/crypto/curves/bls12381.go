package curves

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// bls12381Curve works in G1 of BLS12-381. G1 has a large cofactor, so
// membership in the prime-order subgroup is checked on decode.
type bls12381Curve struct{}

func (c *bls12381Curve) Name() string { return BLS12381 }

func (c *bls12381Curve) Order() *big.Int { return fr.Modulus() }

func (c *bls12381Curve) RandomScalar() (*big.Int, error) {
	return randomScalar(fr.Modulus())
}

func (c *bls12381Curve) ScalarFromBytes(b []byte) *big.Int {
	return scalarFromBytes(b, fr.Modulus())
}

func (c *bls12381Curve) BasePoint() Point {
	_, _, g1, _ := bls12381.Generators()
	return &bls12381Point{p: g1}
}

func (c *bls12381Curve) ScalarBaseMult(k *big.Int) Point {
	_, _, g1, _ := bls12381.Generators()
	var p bls12381.G1Affine
	p.ScalarMultiplication(&g1, k)
	return &bls12381Point{p: p}
}

func (c *bls12381Curve) DecodePoint(b []byte) (Point, error) {
	if len(b) != bls12381.SizeOfG1AffineCompressed {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			ErrPointDecode, bls12381.SizeOfG1AffineCompressed, len(b))
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	return &bls12381Point{p: p}, nil
}

type bls12381Point struct {
	p bls12381.G1Affine
}

func (p *bls12381Point) Bytes() []byte {
	buf := p.p.Bytes()
	return buf[:]
}

func (p *bls12381Point) Add(other Point) Point {
	o, ok := other.(*bls12381Point)
	if !ok {
		panic("curves: point type mismatch")
	}
	var a, b bls12381.G1Jac
	a.FromAffine(&p.p)
	b.FromAffine(&o.p)
	a.AddAssign(&b)
	var r bls12381.G1Affine
	r.FromJacobian(&a)
	return &bls12381Point{p: r}
}

func (p *bls12381Point) ScalarMult(k *big.Int) Point {
	var r bls12381.G1Affine
	r.ScalarMultiplication(&p.p, k)
	return &bls12381Point{p: r}
}

func (p *bls12381Point) IsIdentity() bool { return p.p.IsInfinity() }

func (p *bls12381Point) Equal(other Point) bool {
	o, ok := other.(*bls12381Point)
	if !ok {
		return false
	}
	return p.p.Equal(&o.p)
}
