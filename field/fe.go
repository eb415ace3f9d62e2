package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

// Element represents an element of the field GF(2^255-19).
//
// All arguments and receivers are allowed to alias.
//
// The zero value is a valid zero element.
type Element struct {
	// An element t represents the integer
	//     t.l0 + t.l1*2^64 + t.l2*2^128 + t.l3*2^192
	// and is kept in [0, 2^255-19) by every operation.
	l0 uint64
	l1 uint64
	l2 uint64
	l3 uint64
}

const maskLow63Bits = 1<<63 - 1

// Limbs of p = 2^255-19.
const (
	p0 = 0xffffffffffffffed
	p3 = maskLow63Bits
)

var feZero = &Element{0, 0, 0, 0}

// Zero sets v = 0, and returns v.
func (v *Element) Zero() *Element {
	*v = *feZero
	return v
}

var feOne = &Element{1, 0, 0, 0}

// One sets v = 1, and returns v.
func (v *Element) One() *Element {
	*v = *feOne
	return v
}

// Set sets v = a, and returns v.
func (v *Element) Set(a *Element) *Element {
	*v = *a
	return v
}

// SetBytes sets v to x, where x is a 32-byte little-endian encoding. If x is
// not of the right length, SetBytes returns nil and an error, and the
// receiver is unchanged.
//
// Consistent with RFC 7748, the most significant bit (the high bit of the
// last byte) is ignored, and non-canonical values (2^255-19 through 2^255-1)
// are accepted and reduced. Callers that need RFC 8032 strictness compare
// [Element.Bytes] of the result against the input.
func (v *Element) SetBytes(x []byte) (*Element, error) {
	if len(x) != 32 {
		return nil, errors.New("field: invalid field element input size")
	}

	v.reduce(
		binary.LittleEndian.Uint64(x[0*8:]),
		binary.LittleEndian.Uint64(x[1*8:]),
		binary.LittleEndian.Uint64(x[2*8:]),
		binary.LittleEndian.Uint64(x[3*8:])&maskLow63Bits,
	)
	return v, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of v.
func (v *Element) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var out [32]byte
	return v.bytes(&out)
}

// FillBytes sets buf to the canonical 32-byte little-endian encoding of v,
// and returns buf. If buf is shorter than 32 bytes, FillBytes panics.
func (v *Element) FillBytes(buf []byte) []byte {
	binary.LittleEndian.PutUint64(buf[0*8:], v.l0)
	binary.LittleEndian.PutUint64(buf[1*8:], v.l1)
	binary.LittleEndian.PutUint64(buf[2*8:], v.l2)
	binary.LittleEndian.PutUint64(buf[3*8:], v.l3)
	return buf[:32]
}

func (v *Element) bytes(out *[32]byte) []byte {
	return v.FillBytes(out[:])
}

// Equal returns 1 if v and u are equal, and 0 otherwise.
func (v *Element) Equal(u *Element) int {
	var su, sv [32]byte
	return subtle.ConstantTimeCompare(u.bytes(&su), v.bytes(&sv))
}

// IsZero returns 1 if v == 0, and 0 otherwise.
func (v *Element) IsZero() int {
	return v.Equal(feZero)
}

// mask64Bits returns 0xffffffffffffffff if cond is 1, and 0 otherwise.
func mask64Bits(cond int) uint64 { return ^(uint64(cond) - 1) }

// Select sets v to a if cond == 1, and to b if cond == 0.
func (v *Element) Select(a, b *Element, cond int) *Element {
	m := mask64Bits(cond)
	v.l0 = (m & a.l0) | (^m & b.l0)
	v.l1 = (m & a.l1) | (^m & b.l1)
	v.l2 = (m & a.l2) | (^m & b.l2)
	v.l3 = (m & a.l3) | (^m & b.l3)
	return v
}

// Swap swaps v and u if cond == 1 or leaves them unchanged if cond == 0.
func (v *Element) Swap(u *Element, cond int) {
	m := mask64Bits(cond)
	t := m & (v.l0 ^ u.l0)
	v.l0 ^= t
	u.l0 ^= t
	t = m & (v.l1 ^ u.l1)
	v.l1 ^= t
	u.l1 ^= t
	t = m & (v.l2 ^ u.l2)
	v.l2 ^= t
	u.l2 ^= t
	t = m & (v.l3 ^ u.l3)
	v.l3 ^= t
	u.l3 ^= t
}

// Add sets v = x + y, and returns v.
func (v *Element) Add(x, y *Element) *Element {
	feAdd(v, x, y)
	return v
}

// Subtract sets v = x - y, and returns v.
func (v *Element) Subtract(x, y *Element) *Element {
	feSub(v, x, y)
	return v
}

// Multiply sets v = x * y, and returns v.
func (v *Element) Multiply(x, y *Element) *Element {
	feMul(v, x, y)
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element) Square(x *Element) *Element {
	feMul(v, x, x)
	return v
}

// Mult32 sets v = x * y, and returns v.
func (v *Element) Mult32(x *Element, y uint32) *Element {
	return v.Multiply(x, &Element{uint64(y), 0, 0, 0})
}

// Negate sets v = -a, and returns v.
func (v *Element) Negate(a *Element) *Element {
	return v.Subtract(feZero, a)
}

// IsNegative returns 1 if v is negative, and 0 otherwise.
//
// An element is negative if its canonical encoding is odd.
func (v *Element) IsNegative() int {
	return int(v.l0 & 1)
}

// Absolute sets v to |u|, and returns v.
func (v *Element) Absolute(u *Element) *Element {
	return v.Select(new(Element).Negate(u), u, u.IsNegative())
}

// pow2k sets v = x^(2^k), and returns v. k must be positive.
func (v *Element) pow2k(x *Element, k int) *Element {
	v.Square(x)
	for i := 1; i < k; i++ {
		v.Square(v)
	}
	return v
}

// pow22501 sets t = z^(2^250-1) and z11 = z^11. It is the common prefix of
// the addition chains of [Element.Invert] and [Element.Pow22523].
func pow22501(t, z11, z *Element) {
	var z2, z9, z2_5_0, z2_10_0, z2_20_0, z2_50_0, z2_100_0 Element

	z2.Square(z)                                               // 2
	z9.pow2k(&z2, 2).Multiply(&z9, z)                          // 9
	z11.Multiply(&z9, &z2)                                     // 11
	z2_5_0.Square(z11).Multiply(&z2_5_0, &z9)                  // 2^5 - 2^0
	z2_10_0.pow2k(&z2_5_0, 5).Multiply(&z2_10_0, &z2_5_0)      // 2^10 - 2^0
	z2_20_0.pow2k(&z2_10_0, 10).Multiply(&z2_20_0, &z2_10_0)   // 2^20 - 2^0
	t.pow2k(&z2_20_0, 20).Multiply(t, &z2_20_0)                // 2^40 - 2^0
	z2_50_0.pow2k(t, 10).Multiply(&z2_50_0, &z2_10_0)          // 2^50 - 2^0
	z2_100_0.pow2k(&z2_50_0, 50).Multiply(&z2_100_0, &z2_50_0) // 2^100 - 2^0
	t.pow2k(&z2_100_0, 100).Multiply(t, &z2_100_0)             // 2^200 - 2^0
	t.pow2k(t, 50).Multiply(t, &z2_50_0)                       // 2^250 - 2^0
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element) Invert(z *Element) *Element {
	// Inversion is exponentiation with exponent p - 2 = 2^255 - 21, using
	// 254 squarings and 11 multiplications.
	var t, z11 Element
	pow22501(&t, &z11, z)
	t.pow2k(&t, 5)              // 2^255 - 2^5
	return v.Multiply(&t, &z11) // 2^255 - 21
}

// Pow22523 sets v = x^((p-5)/8), and returns v. (p-5)/8 is 2^252-3.
func (v *Element) Pow22523(x *Element) *Element {
	var t, x11 Element
	pow22501(&t, &x11, x)
	t.pow2k(&t, 2)            // 2^252 - 2^2
	return v.Multiply(&t, x) // 2^252 - 3
}

// sqrtM1 is 2^((p-1)/4), which squared is equal to -1 by Euler's Criterion.
var sqrtM1 = &Element{
	l0: 14190309331451158704,
	l1: 3405592160176694392,
	l2: 3120150775007532967,
	l3: 3135389899092516619,
}

// SqrtRatio sets r to the non-negative square root of the ratio of u and v.
//
// If u/v is square, SqrtRatio returns r and 1. If u/v is not square, SqrtRatio
// sets r according to Section 4.3 of draft-irtf-cfrg-ristretto255-decaf448-00,
// and returns r and 0.
func (r *Element) SqrtRatio(u, v *Element) (R *Element, wasSquare int) {
	var v3, v7, uv3, uv7, rr, check, uNeg, uNegI, t Element

	// r = (u * v^3) * (u * v^7)^((p-5)/8), RFC 8032 Section 5.1.3.
	v3.Square(v).Multiply(&v3, v)
	v7.Square(&v3).Multiply(&v7, v)
	uv3.Multiply(u, &v3)
	uv7.Multiply(u, &v7)
	rr.Multiply(&uv3, t.Pow22523(&uv7))

	check.Multiply(v, t.Square(&rr)) // check = v * r^2

	uNeg.Negate(u)
	uNegI.Multiply(&uNeg, sqrtM1)
	correctSignSqrt := check.Equal(u)
	flippedSignSqrt := check.Equal(&uNeg)
	flippedSignSqrtI := check.Equal(&uNegI)

	// r = CT_SELECT(r * SQRT_M1 IF flipped_sign_sqrt | flipped_sign_sqrt_i ELSE r)
	t.Multiply(&rr, sqrtM1)
	rr.Select(&t, &rr, flippedSignSqrt|flippedSignSqrtI)

	r.Absolute(&rr) // Choose the nonnegative square root.
	return r, correctSignSqrt | flippedSignSqrt
}
