package curves

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// bn254Curve works in G1 of the BN254 pairing curve. Scalars live in
// the fr field, whose modulus equals the order of G1.
type bn254Curve struct{}

func (c *bn254Curve) Name() string { return BN254 }

func (c *bn254Curve) Order() *big.Int { return fr.Modulus() }

func (c *bn254Curve) RandomScalar() (*big.Int, error) {
	return randomScalar(fr.Modulus())
}

func (c *bn254Curve) ScalarFromBytes(b []byte) *big.Int {
	return scalarFromBytes(b, fr.Modulus())
}

func (c *bn254Curve) BasePoint() Point {
	_, _, g1, _ := bn254.Generators()
	return &bn254Point{p: g1}
}

func (c *bn254Curve) ScalarBaseMult(k *big.Int) Point {
	_, _, g1, _ := bn254.Generators()
	var p bn254.G1Affine
	p.ScalarMultiplication(&g1, k)
	return &bn254Point{p: p}
}

func (c *bn254Curve) DecodePoint(b []byte) (Point, error) {
	if len(b) != bn254.SizeOfG1AffineCompressed {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			ErrPointDecode, bn254.SizeOfG1AffineCompressed, len(b))
	}
	var p bn254.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointDecode, err)
	}
	return &bn254Point{p: p}, nil
}

type bn254Point struct {
	p bn254.G1Affine
}

func (p *bn254Point) Bytes() []byte {
	buf := p.p.Bytes()
	return buf[:]
}

func (p *bn254Point) Add(other Point) Point {
	o, ok := other.(*bn254Point)
	if !ok {
		panic("curves: point type mismatch")
	}
	var a, b bn254.G1Jac
	a.FromAffine(&p.p)
	b.FromAffine(&o.p)
	a.AddAssign(&b)
	var r bn254.G1Affine
	r.FromJacobian(&a)
	return &bn254Point{p: r}
}

func (p *bn254Point) ScalarMult(k *big.Int) Point {
	var r bn254.G1Affine
	r.ScalarMultiplication(&p.p, k)
	return &bn254Point{p: r}
}

func (p *bn254Point) IsIdentity() bool { return p.p.IsInfinity() }

func (p *bn254Point) Equal(other Point) bool {
	o, ok := other.(*bn254Point)
	if !ok {
		return false
	}
	return p.p.Equal(&o.p)
}
