// Package edwards implements group operations on the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + -(121665/121666)*x^2*y^2
//
// over GF(2^255-19), the curve of the Ed25519 signature scheme.
//
// Points are kept in extended coordinates and combined with the unified
// a = -1 formulas, which are complete: they hold for every pair of inputs,
// the identity and small order points included. Scalar multiplications use a
// signed radix-16 window with constant-time table lookups.
//
// The point encoding follows RFC 8032, Section 5.1.2. [Point.SetBytes]
// decodes strictly, [Point.SetBytesPermissive] accepts the non-canonical
// encodings allowed by ZIP-215.
package edwards
