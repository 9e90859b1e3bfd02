package curve

import (
	"crypto/rand"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secp256k1OrderHex is N, the order of the secp256k1 group, reproduced here
// (it is a publicly known curve parameter) so Order() can hand callers a
// *big.Int without reaching into the backend's internal representation.
const secp256k1OrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

// Secp256k1 is the Group implementation backing this module's accumulator,
// built on github.com/decred/dcrd/dcrec/secp256k1/v4. The spec's ยง8 test
// vectors are fixed against this curve.
type Secp256k1 struct {
	order *big.Int
}

// NewSecp256k1 returns the secp256k1 Group.
func NewSecp256k1() *Secp256k1 {
	n, ok := new(big.Int).SetString(secp256k1OrderHex, 16)
	if !ok {
		panic("curve: invalid secp256k1 order constant")
	}
	return &Secp256k1{order: n}
}

func (g *Secp256k1) Order() *big.Int { return new(big.Int).Set(g.order) }

func (g *Secp256k1) Zero() Scalar {
	var s secp256k1.ModNScalar
	return &secp256k1Scalar{s: s}
}

func (g *Secp256k1) One() Scalar {
	var s secp256k1.ModNScalar
	s.SetInt(1)
	return &secp256k1Scalar{s: s}
}

func (g *Secp256k1) RandomScalar() (Scalar, error) {
	var buf [32]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, err
		}
		var s secp256k1.ModNScalar
		overflow := s.SetByteSlice(buf[:])
		if overflow || s.IsZero() {
			continue
		}
		return &secp256k1Scalar{s: s}, nil
	}
}

func (g *Secp256k1) ScalarFromBytes(b []byte) Scalar {
	if len(b) > 32 {
		// SetByteSlice keeps only the first 32 bytes; reduce the whole
		// integer first.
		b = new(big.Int).Mod(new(big.Int).SetBytes(b), g.order).Bytes()
	}
	var s secp256k1.ModNScalar
	s.SetByteSlice(b)
	return &secp256k1Scalar{s: s}
}

// PointFromBytes parses the single-byte identity encoding or a 33-byte SEC1
// compressed encoding, as produced by Point.Bytes.
func (g *Secp256k1) PointFromBytes(b []byte) (Point, error) {
	if len(b) == 1 && b[0] == 0x00 {
		var p secp256k1.JacobianPoint
		return &secp256k1Point{p: p}, nil
	}
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	var p secp256k1.JacobianPoint
	pub.AsJacobian(&p)
	return &secp256k1Point{p: p}, nil
}

func (g *Secp256k1) Identity() Point {
	var p secp256k1.JacobianPoint
	return &secp256k1Point{p: p}
}

func (g *Secp256k1) Generator() Point {
	one := new(secp256k1.ModNScalar).SetInt(1)
	var p secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(one, &p)
	return &secp256k1Point{p: p}
}

// secp256k1Scalar wraps secp256k1.ModNScalar behind the Scalar interface.
type secp256k1Scalar struct {
	s secp256k1.ModNScalar
}

func (s *secp256k1Scalar) Add(other Scalar) Scalar {
	o := other.(*secp256k1Scalar)
	var r secp256k1.ModNScalar
	r.Add2(&s.s, &o.s)
	return &secp256k1Scalar{s: r}
}

func (s *secp256k1Scalar) Sub(other Scalar) Scalar {
	o := other.(*secp256k1Scalar)
	var neg secp256k1.ModNScalar
	neg.Set(&o.s)
	neg.Negate()
	var r secp256k1.ModNScalar
	r.Add2(&s.s, &neg)
	return &secp256k1Scalar{s: r}
}

func (s *secp256k1Scalar) Mul(other Scalar) Scalar {
	o := other.(*secp256k1Scalar)
	var r secp256k1.ModNScalar
	r.Mul2(&s.s, &o.s)
	return &secp256k1Scalar{s: r}
}

func (s *secp256k1Scalar) Inverse() (Scalar, error) {
	if s.s.IsZero() {
		return nil, ErrZeroScalar
	}
	var r secp256k1.ModNScalar
	r.Set(&s.s)
	r.InverseNonConst()
	return &secp256k1Scalar{s: r}, nil
}

func (s *secp256k1Scalar) Equal(other Scalar) bool {
	o, ok := other.(*secp256k1Scalar)
	if !ok {
		return false
	}
	return s.s.Equals(&o.s)
}

func (s *secp256k1Scalar) IsZero() bool { return s.s.IsZero() }

func (s *secp256k1Scalar) Bytes() []byte {
	b := s.s.Bytes()
	return b[:]
}

// secp256k1Point wraps secp256k1.JacobianPoint behind the Point interface.
// The identity O is represented, by Jacobian-coordinate convention, as any
// point whose Z coordinate is zero.
type secp256k1Point struct {
	p secp256k1.JacobianPoint
}

func (p *secp256k1Point) Add(other Point) Point {
	o := other.(*secp256k1Point)
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &o.p, &r)
	return &secp256k1Point{p: r}
}

func (p *secp256k1Point) Mul(s Scalar) Point {
	sc := s.(*secp256k1Scalar)
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&sc.s, &p.p, &r)
	return &secp256k1Point{p: r}
}

func (p *secp256k1Point) Equal(other Point) bool {
	o, ok := other.(*secp256k1Point)
	if !ok {
		return false
	}
	if p.IsIdentity() || o.IsIdentity() {
		return p.IsIdentity() == o.IsIdentity()
	}
	a, b := p.p, o.p
	a.ToAffine()
	b.ToAffine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

func (p *secp256k1Point) IsIdentity() bool {
	return p.p.Z.IsZero()
}

func (p *secp256k1Point) Bytes() []byte {
	if p.IsIdentity() {
		return []byte{0x00}
	}
	a := p.p
	a.ToAffine()
	xBytes := a.X.Bytes()
	prefix := byte(0x02)
	if a.Y.IsOdd() {
		prefix = 0x03
	}
	out := make([]byte, 0, 33)
	out = append(out, prefix)
	out = append(out, xBytes[:]...)
	return out
}
