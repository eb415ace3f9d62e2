package field

import "math/bits"

// reduce sets v = t mod p for t = t0 + t1*2^64 + t2*2^128 + t3*2^192 < 2^256.
func (v *Element) reduce(t0, t1, t2, t3 uint64) *Element {
	// 2^255 = 19 mod p, fold the top bit back in.
	top := t3 >> 63
	t3 &= maskLow63Bits
	t0, c := bits.Add64(t0, top*19, 0)
	t1, c = bits.Add64(t1, 0, c)
	t2, c = bits.Add64(t2, 0, c)
	t3 += c

	// Now t < 2^255 + 19. If t >= p then t + 19 has bit 255 set, and
	// t - p is t + 19 with that bit cleared.
	u0, c := bits.Add64(t0, 19, 0)
	u1, c := bits.Add64(t1, 0, c)
	u2, c := bits.Add64(t2, 0, c)
	u3 := t3 + c
	m := -(u3 >> 63)
	u3 &= maskLow63Bits

	v.l0 = (m & u0) | (^m & t0)
	v.l1 = (m & u1) | (^m & t1)
	v.l2 = (m & u2) | (^m & t2)
	v.l3 = (m & u3) | (^m & t3)
	return v
}

// feAdd sets v = x + y.
func feAdd(v, x, y *Element) {
	// Both operands are below 2^255, so the sum fits in 256 bits.
	t0, c := bits.Add64(x.l0, y.l0, 0)
	t1, c := bits.Add64(x.l1, y.l1, c)
	t2, c := bits.Add64(x.l2, y.l2, c)
	t3, _ := bits.Add64(x.l3, y.l3, c)
	v.reduce(t0, t1, t2, t3)
}

// feSub sets v = x - y.
func feSub(v, x, y *Element) {
	t0, b := bits.Sub64(x.l0, y.l0, 0)
	t1, b := bits.Sub64(x.l1, y.l1, b)
	t2, b := bits.Sub64(x.l2, y.l2, b)
	t3, b := bits.Sub64(x.l3, y.l3, b)

	// On borrow the difference wrapped around 2^256; adding p modulo 2^256
	// brings it back to x - y + p, which is in [0, p).
	m := -b
	t0, c := bits.Add64(t0, m&p0, 0)
	t1, c = bits.Add64(t1, m, c)
	t2, c = bits.Add64(t2, m, c)
	t3, _ = bits.Add64(t3, m&p3, c)

	v.l0, v.l1, v.l2, v.l3 = t0, t1, t2, t3
}

// feMul sets v = x * y.
func feMul(v, x, y *Element) {
	a := [4]uint64{x.l0, x.l1, x.l2, x.l3}
	b := [4]uint64{y.l0, y.l1, y.l2, y.l3}

	// Schoolbook 256x256 -> 512-bit product.
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

	// 2^256 = 38 mod p, fold the high half into the low half.
	var r [4]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(t[i+4], 38)
		var c uint64
		lo, c = bits.Add64(lo, t[i], 0)
		hi += c
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		r[i] = lo
		carry = hi
	}

	// carry <= 38. If folding it overflows again, the wrapped value is
	// tiny and the second fold of 38 cannot overflow.
	var c uint64
	r[0], c = bits.Add64(r[0], carry*38, 0)
	r[1], c = bits.Add64(r[1], 0, c)
	r[2], c = bits.Add64(r[2], 0, c)
	r[3], c = bits.Add64(r[3], 0, c)
	r[0] += c * 38

	v.reduce(r[0], r[1], r[2], r[3])
}
