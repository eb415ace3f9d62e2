package scalar

import "math/bits"

// Limbs of L.
var order = [4]uint64{0x5812631a5cf5d3ed, 0x14def9dea2f79cd6, 0, 0x1000000000000000}

// lInv is -1/L mod 2^64.
const lInv = 0xd2b51da312547e1b

// rr is R^2 mod L, R = 2^256.
var rr = [4]uint64{0xa40611e3449c0f01, 0xd00e1ba768859347, 0xceec73d217f5be65, 0x0399411b7c309a3d}

// montMul sets out = a * b / R mod L. a may be any 256-bit value, b must be
// below L.
func montMul(out, a, b *[4]uint64) {
	var t [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		t[i+4] = carry
	}

	for i := 0; i < 4; i++ {
		m := t[i] * lInv
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(m, order[j])
			var c uint64
			lo, c = bits.Add64(lo, t[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			t[i+j] = lo
			carry = hi
		}
		for j := i + 4; j < 8; j++ {
			t[j], carry = bits.Add64(t[j], carry, 0)
		}
	}

	// t[4:] < 2L here.
	condSubL(out, &[4]uint64{t[4], t[5], t[6], t[7]})
}

// condSubL sets out = a - L if a >= L, and out = a otherwise. a must be
// below 2L.
func condSubL(out, a *[4]uint64) {
	var d [4]uint64
	var b uint64
	d[0], b = bits.Sub64(a[0], order[0], 0)
	d[1], b = bits.Sub64(a[1], order[1], b)
	d[2], b = bits.Sub64(a[2], order[2], b)
	d[3], b = bits.Sub64(a[3], order[3], b)

	m := -b // all ones if a < L
	for i := 0; i < 4; i++ {
		out[i] = (m & a[i]) | (^m & d[i])
	}
}

// addMod sets out = a + b mod L for a, b < L.
func addMod(out, a, b *[4]uint64) {
	var s [4]uint64
	var c uint64
	s[0], c = bits.Add64(a[0], b[0], 0)
	s[1], c = bits.Add64(a[1], b[1], c)
	s[2], c = bits.Add64(a[2], b[2], c)
	s[3], _ = bits.Add64(a[3], b[3], c)
	condSubL(out, &s)
}

// subMod sets out = a - b mod L for a, b < L.
func subMod(out, a, b *[4]uint64) {
	var d [4]uint64
	var b0 uint64
	d[0], b0 = bits.Sub64(a[0], b[0], 0)
	d[1], b0 = bits.Sub64(a[1], b[1], b0)
	d[2], b0 = bits.Sub64(a[2], b[2], b0)
	d[3], b0 = bits.Sub64(a[3], b[3], b0)

	m := -b0
	var c uint64
	out[0], c = bits.Add64(d[0], m&order[0], 0)
	out[1], c = bits.Add64(d[1], m&order[1], c)
	out[2], c = bits.Add64(d[2], m&order[2], c)
	out[3], _ = bits.Add64(d[3], m&order[3], c)
}
