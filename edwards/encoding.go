package edwards

import (
	"crypto/subtle"
	"errors"

	"github.com/AlexanderYastrebov/ed25519/field"
)

// ErrInvalidEncoding is returned when a point encoding is rejected: wrong
// length, y not on the curve, or a non-canonical form refused by strict
// decoding.
var ErrInvalidEncoding = errors.New("edwards: invalid point encoding")

// Bytes returns the canonical 32-byte encoding of v, according to RFC 8032,
// Section 5.1.2.
func (v *Point) Bytes() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var buf [32]byte
	return v.bytes(&buf)
}

func (v *Point) bytes(buf *[32]byte) []byte {
	checkInitialized(v)

	var zInv, x, y field.Element
	zInv.Invert(&v.z)       // zInv = 1 / Z
	x.Multiply(&v.x, &zInv) // x = X / Z
	y.Multiply(&v.y, &zInv) // y = Y / Z

	out := y.FillBytes(buf[:])
	out[31] |= byte(x.IsNegative() << 7)
	return out
}

// SetBytes sets v = x, where x is a 32-byte encoding of v. If x does not
// represent a valid point on the curve, SetBytes returns nil and
// ErrInvalidEncoding, and the receiver is unchanged.
//
// Decoding follows RFC 8032, Section 5.1.3 strictly: the y coordinate must be
// below 2^255-19, and the sign bit must be clear when x = 0.
func (v *Point) SetBytes(x []byte) (*Point, error) {
	return v.setBytes(x, true)
}

// SetBytesPermissive is like [Point.SetBytes], but it also accepts the
// non-canonical encodings allowed by ZIP-215: y in [2^255-19, 2^255) is
// reduced, and the sign bit is ignored when x = 0.
func (v *Point) SetBytesPermissive(x []byte) (*Point, error) {
	return v.setBytes(x, false)
}

func (v *Point) setBytes(x []byte, strict bool) (*Point, error) {
	if len(x) != 32 {
		return nil, ErrInvalidEncoding
	}
	if strict && !isCanonicalY(x) {
		return nil, ErrInvalidEncoding
	}

	// Specifying only the y coordinate and the sign of x is enough, as
	//
	//     -x² + y² = 1 + dx²y²
	//     x² + dx²y² = x²(dy² + 1) = y² - 1
	//     x² = (y² - 1) / (dy² + 1)
	y, err := new(field.Element).SetBytes(x)
	if err != nil {
		return nil, ErrInvalidEncoding
	}

	// u = y² - 1
	y2 := new(field.Element).Square(y)
	u := new(field.Element).Subtract(y2, feOne)

	// vv = dy² + 1
	vv := new(field.Element).Multiply(y2, d)
	vv = vv.Add(vv, feOne)

	// xx = sqrt(u/vv)
	xx, wasSquare := new(field.Element).SqrtRatio(u, vv)
	if wasSquare == 0 {
		return nil, ErrInvalidEncoding
	}

	sign := int(x[31] >> 7)
	if strict && xx.IsZero()&sign == 1 {
		return nil, ErrInvalidEncoding
	}

	// Select the negative square root if the sign bit is set.
	xxNeg := new(field.Element).Negate(xx)
	xx = xx.Select(xxNeg, xx, sign)

	v.x.Set(xx)
	v.y.Set(y)
	v.z.One()
	v.t.Multiply(xx, y) // xy = T / Z

	return v, nil
}

// isCanonicalY returns whether the low 255 bits of x encode a value below
// 2^255-19.
func isCanonicalY(x []byte) bool {
	var buf [32]byte
	copy(buf[:], x)
	buf[31] &= 0x7f

	y, err := new(field.Element).SetBytes(buf[:])
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(y.Bytes(), buf[:]) == 1
}

// minusOneBytes is the canonical encoding of -1 = 2^255-20.
var minusOneBytes = new(field.Element).Negate(feOne).Bytes()

// IsCanonicalEncoding reports whether x is the encoding [Point.Bytes] would
// produce for some point with this y coordinate: y is fully reduced, and the
// sign bit is not set for the two points with x = 0 (y = 1 and y = -1).
//
// It does not check that the encoding decodes to a point on the curve.
func IsCanonicalEncoding(x []byte) bool {
	if len(x) != 32 || !isCanonicalY(x) {
		return false
	}
	if x[31]>>7 == 0 {
		return true
	}

	var buf [32]byte
	copy(buf[:], x)
	buf[31] &= 0x7f
	one := feOne.Bytes()
	return subtle.ConstantTimeCompare(buf[:], one) == 0 &&
		subtle.ConstantTimeCompare(buf[:], minusOneBytes) == 0
}
