// Package field implements constant-time arithmetic modulo 2^255-19.
//
// [Element] type API follows [filippo.io/edwards25519/field.Element], with one
// difference in representation: elements are stored as four 64-bit limbs and
// every operation returns a fully reduced value in [0, 2^255-19). Equality is
// therefore a byte comparison and [Element.IsNegative] reads a single bit.
//
// Arithmetic kernels are written in portable Go on top of [math/bits] and run
// in time independent of the operand values. Inversion is exponentiation by
// p-2 along a fixed addition chain; there is no variable-time fallback.
package field
