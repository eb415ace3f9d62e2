package ed25519

import (
	"bytes"
	"fmt"

	"github.com/AlexanderYastrebov/ed25519/edwards"
)

// X25519 returns the X25519 public key, the Curve25519 u-coordinate, that
// corresponds to pub through the birational map of RFC 7748, Section 4.1.
//
// pub is decoded strictly. An error matching [ErrInvalidEncoding] is
// returned if it does not encode a point.
func (pub PublicKey) X25519() ([]byte, error) {
	if l := len(pub); l != PublicKeySize {
		return nil, fmt.Errorf("%w: bad public key length: %d", ErrInvalidEncoding, l)
	}

	A, err := new(edwards.Point).SetBytes(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidEncoding, err)
	}
	return A.BytesMontgomery(), nil
}

// X25519PrivateKey returns the X25519 private key that matches
// [PublicKey.X25519] of the public key of k: the clamped first half of
// SHA-512(seed).
func (k *SigningKey) X25519PrivateKey() []byte {
	return bytes.Clone(k.scalar[:])
}
