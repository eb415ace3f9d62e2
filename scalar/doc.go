// Package scalar implements arithmetic modulo the prime order of the
// edwards25519 base point, L = 2^252 + 27742317777372353535851937790883648493.
//
// Multiplication is Montgomery multiplication with R = 2^256 over four 64-bit
// limbs. Every exported operation runs in time independent of its inputs and
// leaves the receiver in canonical form.
package scalar
