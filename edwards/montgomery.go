package edwards

import (
	"github.com/AlexanderYastrebov/ed25519/field"
)

// BytesMontgomery returns the RFC 7748 encoding of the u-coordinate of v on
// Curve25519, the Montgomery form of the curve. It is the X25519 public key
// that corresponds to the Ed25519 public key v.
//
// v and -v map to the same u. The identity maps to u = 0.
func (v *Point) BytesMontgomery() []byte {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var buf [32]byte
	return v.bytesMontgomery(&buf)
}

// https://www.rfc-editor.org/rfc/rfc7748.html#section-4.1
// (u, v) = ((1+y)/(1-y), sqrt(-486664)*u/x)
//
// Only u is computed. With y = Y/Z,
//
//	u = (1+y)/(1-y) = (Z+Y)/(Z-Y)
func (v *Point) bytesMontgomery(buf *[32]byte) []byte {
	checkInitialized(v)

	var n, r, u field.Element
	n.Add(&v.z, &v.y)      // n = Z + Y
	r.Subtract(&v.z, &v.y) // r = Z - Y
	r.Invert(&r)           // identity has Z = Y, and 1/0 = 0
	u.Multiply(&n, &r)     // u = n / r

	return u.FillBytes(buf[:])
}
