package scalar

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"math/bits"
)

// A Scalar is an integer modulo
//
//	L = 2^252 + 27742317777372353535851937790883648493
//
// which is the prime order of the edwards25519 group.
//
// The zero value is a valid zero element.
type Scalar struct {
	// s is kept in [0, L), little-endian limbs.
	s [4]uint64
}

// ErrNonCanonical is returned by [Scalar.SetCanonicalBytes] when the input
// encodes a value greater than or equal to L.
var ErrNonCanonical = errors.New("scalar: invalid scalar encoding")

var scOne = [4]uint64{1, 0, 0, 0}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Zero sets s = 0, and returns s.
func (s *Scalar) Zero() *Scalar {
	s.s = [4]uint64{}
	return s
}

// One sets s = 1, and returns s.
func (s *Scalar) One() *Scalar {
	s.s = scOne
	return s
}

// Set sets s = x, and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	*s = *x
	return s
}

// MultiplyAdd sets s = x * y + z mod L, and returns s.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	var t [4]uint64
	montMul(&t, &x.s, &y.s) // xy/R
	montMul(&t, &t, &rr)    // xy
	addMod(&s.s, &t, &z.s)
	return s
}

// Add sets s = x + y mod L, and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	addMod(&s.s, &x.s, &y.s)
	return s
}

// Subtract sets s = x - y mod L, and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	subMod(&s.s, &x.s, &y.s)
	return s
}

// Negate sets s = -x mod L, and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	var zero [4]uint64
	subMod(&s.s, &zero, &x.s)
	return s
}

// Multiply sets s = x * y mod L, and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	var t [4]uint64
	montMul(&t, &x.s, &y.s)
	montMul(&s.s, &t, &rr)
	return s
}

// SetUniformBytes sets s = x mod L, where x is a 64-byte little-endian
// integer. If x is not of the right length, SetUniformBytes returns nil and
// an error, and the receiver is unchanged.
//
// SetUniformBytes can be used to set s to a uniformly distributed value given
// 64 uniformly distributed random bytes, or to reduce a SHA-512 digest.
func (s *Scalar) SetUniformBytes(x []byte) (*Scalar, error) {
	if len(x) != 64 {
		return nil, errors.New("scalar: invalid SetUniformBytes input length")
	}

	var lo, hi [4]uint64
	for i := 0; i < 4; i++ {
		lo[i] = binary.LittleEndian.Uint64(x[i*8:])
		hi[i] = binary.LittleEndian.Uint64(x[32+i*8:])
	}

	// x = lo + hi*R. lo*R/R = lo mod L, and hi*R^2/R = hi*R mod L.
	montMul(&lo, &lo, &rr)
	montMul(&lo, &lo, &scOne)
	montMul(&hi, &hi, &rr)
	addMod(&s.s, &lo, &hi)
	return s, nil
}

// SetCanonicalBytes sets s = x, where x is a 32-byte little-endian encoding
// of s, and returns s. If x is not a canonical encoding of s, SetCanonicalBytes
// returns nil and an error, and the receiver is unchanged.
func (s *Scalar) SetCanonicalBytes(x []byte) (*Scalar, error) {
	if len(x) != 32 {
		return nil, errors.New("scalar: invalid scalar length")
	}
	if IsCanonical(x) == 0 {
		return nil, ErrNonCanonical
	}

	for i := 0; i < 4; i++ {
		s.s[i] = binary.LittleEndian.Uint64(x[i*8:])
	}
	return s, nil
}

// IsCanonical returns 1 if the 32-byte little-endian integer b is below L,
// and 0 otherwise. It panics if b is shorter than 32 bytes.
func IsCanonical(b []byte) int {
	_ = b[31]
	var borrow uint64
	for i := 0; i < 4; i++ {
		_, borrow = bits.Sub64(binary.LittleEndian.Uint64(b[i*8:]), order[i], borrow)
	}
	return int(borrow)
}

// Clamp applies the X25519/Ed25519 bit masking to the 32-byte buffer b:
// the three lowest bits and the highest bit are cleared and bit 254 is set.
func Clamp(b []byte) {
	_ = b[31]
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}

// SetBytesWithClamping applies the buffer pruning described in RFC 8032,
// Section 5.1.5 (also known as clamping) and sets s to the result. The input
// must be 32 bytes, and it is not modified. If x is not of the right length,
// SetBytesWithClamping returns nil and an error, and the receiver is
// unchanged.
//
// Note that since L < 2^255 the clamped value does not in general fit a
// canonical scalar, and it is reduced modulo L. Multiplying a point of
// order L by the result is unaffected by the reduction.
func (s *Scalar) SetBytesWithClamping(x []byte) (*Scalar, error) {
	if len(x) != 32 {
		return nil, errors.New("scalar: invalid SetBytesWithClamping input length")
	}

	var wide [64]byte
	copy(wide[:], x)
	Clamp(wide[:32])
	return s.SetUniformBytes(wide[:])
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	var encoded [32]byte
	return s.bytes(&encoded)
}

func (s *Scalar) bytes(out *[32]byte) []byte {
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], s.s[i])
	}
	return out[:]
}

// Equal returns 1 if s and t are equal, and 0 otherwise.
func (s *Scalar) Equal(t *Scalar) int {
	var bs, bt [32]byte
	return subtle.ConstantTimeCompare(s.bytes(&bs), t.bytes(&bt))
}

// SignedRadix16 returns the signed radix-16 digits of s: 64 digits in
// [-8, 8) such that s = sum(d[i] * 16^i).
//
// s must be below 2^255, which every canonical scalar is.
func (s *Scalar) SignedRadix16() [64]int8 {
	var b [32]byte
	s.bytes(&b)

	var digits [64]int8

	// Compute unsigned radix-16 digits:
	for i := 0; i < 32; i++ {
		digits[2*i] = int8(b[i] & 15)
		digits[2*i+1] = int8((b[i] >> 4) & 15)
	}

	// Recenter coefficients:
	for i := 0; i < 63; i++ {
		carry := (digits[i] + 8) >> 4
		digits[i] -= carry << 4
		digits[i+1] += carry
	}

	return digits
}
