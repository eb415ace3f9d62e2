package edwards

import (
	"crypto/subtle"

	"github.com/AlexanderYastrebov/ed25519/field"
)

// A precomputed lookup table for variable-base, constant-time scalar muls.
type projLookupTable struct {
	points [8]projCached
}

// A precomputed lookup table for fixed-base, constant-time scalar muls.
type affineLookupTable struct {
	points [8]affineCached
}

// Builds a lookup table at runtime. Fast.
func (v *projLookupTable) FromP3(q *Point) {
	// Goal: v.points[i] = (i+1)*Q, i.e., Q, 2Q, ..., 8Q
	// This allows lookup of -8Q, ..., -Q, 0, Q, ..., 8Q
	v.points[0].FromP3(q)
	tmpP3 := Point{}
	tmpP1xP1 := projP1xP1{}
	for i := 0; i < 7; i++ {
		// Compute (i+1)*Q + Q = (i+2)*Q
		tmpP3.fromP1xP1(tmpP1xP1.Add(q, &v.points[i]))
		v.points[i+1].FromP3(&tmpP3)
	}
}

// fromAffineRows fills tables from the points rows[i][j] = (j+1)*Q_i, moving
// them to affine coordinates with a single field inversion.
func fromAffineRows(tables []affineLookupTable, rows [][8]Point) {
	zInv := make([]field.Element, len(rows)*8)
	scratch := make([]field.Element, len(rows)*8)
	for i := range rows {
		for j := range rows[i] {
			zInv[i*8+j].Set(&rows[i][j].z)
		}
	}

	field.BatchInvert(zInv, scratch)

	var x, y field.Element
	for i := range rows {
		for j := range rows[i] {
			x.Multiply(&rows[i][j].x, &zInv[i*8+j])
			y.Multiply(&rows[i][j].y, &zInv[i*8+j])
			tables[i].points[j].fromAffine(&x, &y)
		}
	}
}

// Set dest to x*Q, where -8 <= x <= 8, in constant time.
func (v *projLookupTable) SelectInto(dest *projCached, x int8) {
	// Compute xabs = |x|
	xmask := x >> 7
	xabs := uint8((x + xmask) ^ xmask)

	dest.Zero()
	for j := 1; j <= 8; j++ {
		// Set dest = j*Q if |x| = j
		cond := subtle.ConstantTimeByteEq(xabs, uint8(j))
		dest.Select(&v.points[j-1], dest, cond)
	}
	// Now dest = |x|*Q, conditionally negate to get x*Q
	dest.CondNeg(int(xmask & 1))
}

// Set dest to x*Q, where -8 <= x <= 8, in constant time.
func (v *affineLookupTable) SelectInto(dest *affineCached, x int8) {
	// Compute xabs = |x|
	xmask := x >> 7
	xabs := uint8((x + xmask) ^ xmask)

	dest.Zero()
	for j := 1; j <= 8; j++ {
		// Set dest = j*Q if |x| = j
		cond := subtle.ConstantTimeByteEq(xabs, uint8(j))
		dest.Select(&v.points[j-1], dest, cond)
	}
	// Now dest = |x|*Q, conditionally negate to get x*Q
	dest.CondNeg(int(xmask & 1))
}
