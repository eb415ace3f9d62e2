// Package ed25519 implements the Ed25519 signature algorithm as specified in
// RFC 8032, Section 5.1.
//
// Keys are derived deterministically from a 32-byte seed, and signing is
// deterministic: the same key and message always produce the same signature.
// Secret-dependent computations run in constant time.
//
// [Verify] follows RFC 8032 strictly. [VerifyWithOptions] adds the ZIP-215
// validation rules with [ModeZIP215] and reports why a signature was
// rejected.
//
// The keys interoperate with [crypto/ed25519]: [PrivateKey] is the 64-byte
// seed and public key concatenation, and [PublicKey] is the 32-byte point
// encoding. [PublicKey.X25519] and [SigningKey.X25519PrivateKey] convert keys
// for use with X25519 ([crypto/ecdh]).
package ed25519
