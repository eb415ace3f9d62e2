package ed25519

import (
	"bytes"
	"crypto"
	cryptorand "crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/AlexanderYastrebov/ed25519/edwards"
	"github.com/AlexanderYastrebov/ed25519/scalar"
)

const (
	// SeedSize is the size, in bytes, of private key seeds. These are the
	// private key representations used by RFC 8032.
	SeedSize = 32
	// PublicKeySize is the size, in bytes, of public keys.
	PublicKeySize = 32
	// PrivateKeySize is the size, in bytes, of private keys: the seed
	// followed by the public key.
	PrivateKeySize = 64
	// SignatureSize is the size, in bytes, of signatures.
	SignatureSize = 64
)

// PublicKey is the type of Ed25519 public keys.
type PublicKey []byte

// Equal reports whether pub and x have the same value.
func (pub PublicKey) Equal(x crypto.PublicKey) bool {
	xx, ok := x.(PublicKey)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(pub, xx) == 1
}

// PrivateKey is the type of Ed25519 private keys. It implements
// [crypto.Signer].
type PrivateKey []byte

// Public returns the [PublicKey] corresponding to priv.
func (priv PrivateKey) Public() crypto.PublicKey {
	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, priv[SeedSize:])
	return PublicKey(publicKey)
}

// Equal reports whether priv and x have the same value.
func (priv PrivateKey) Equal(x crypto.PrivateKey) bool {
	xx, ok := x.(PrivateKey)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare(priv, xx) == 1
}

// Seed returns the private key seed corresponding to priv.
func (priv PrivateKey) Seed() []byte {
	return bytes.Clone(priv[:SeedSize])
}

// Sign signs the given message with priv. rand is ignored.
//
// The message must not be hashed, as Ed25519 performs two passes over
// messages to be signed: opts.HashFunc() must return zero.
func (priv PrivateKey) Sign(rand io.Reader, message []byte, opts crypto.SignerOpts) (signature []byte, err error) {
	if opts.HashFunc() != crypto.Hash(0) {
		return nil, errors.New("ed25519: cannot sign hashed message")
	}
	return Sign(priv, message), nil
}

// GenerateKey generates a public/private key pair using entropy from rand.
// If rand is nil, [crypto/rand.Reader] will be used.
func GenerateKey(rand io.Reader) (PublicKey, PrivateKey, error) {
	if rand == nil {
		rand = cryptorand.Reader
	}

	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand, seed); err != nil {
		return nil, nil, err
	}

	privateKey := NewKeyFromSeed(seed)
	clear(seed)
	return privateKey.Public().(PublicKey), privateKey, nil
}

// NewKeyFromSeed calculates a private key from a seed. It will panic if
// len(seed) is not [SeedSize].
func NewKeyFromSeed(seed []byte) PrivateKey {
	k, err := KeyPairFromSeed(seed)
	if err != nil {
		panic("ed25519: bad seed length: " + strconv.Itoa(len(seed)))
	}
	defer k.Wipe()

	privateKey := make([]byte, PrivateKeySize)
	copy(privateKey, seed)
	copy(privateKey[SeedSize:], k.public[:])
	return privateKey
}

// SigningKey is the expanded form of a seed, ready for signing: the clamped
// secret scalar, the nonce prefix and the public key. Call [SigningKey.Wipe]
// once the key is no longer needed.
type SigningKey struct {
	scalar [32]byte // clamped first half of SHA-512(seed)
	prefix [32]byte // second half of SHA-512(seed)
	public [PublicKeySize]byte
}

// KeyPairFromSeed expands seed as described in RFC 8032, Section 5.1.5, and
// derives the public key. The only error is a seed that is not [SeedSize]
// bytes long.
func KeyPairFromSeed(seed []byte) (*SigningKey, error) {
	if l := len(seed); l != SeedSize {
		return nil, fmt.Errorf("%w: bad seed length: %d", ErrInvalidEncoding, l)
	}

	k := new(SigningKey)
	k.expand(seed)

	s := k.secretScalar()
	defer s.Zero()

	A := new(edwards.Point).ScalarBaseMult(s)
	copy(k.public[:], A.Bytes())
	return k, nil
}

// expand sets the clamped secret scalar bytes and the prefix of k from seed.
func (k *SigningKey) expand(seed []byte) {
	h := sha512.Sum512(seed)
	defer clear(h[:])

	copy(k.scalar[:], h[:32])
	scalar.Clamp(k.scalar[:])
	copy(k.prefix[:], h[32:])
}

// secretScalar returns a new Scalar holding the secret scalar of k. Callers
// zero it when done.
func (k *SigningKey) secretScalar() *scalar.Scalar {
	s, err := scalar.NewScalar().SetBytesWithClamping(k.scalar[:])
	if err != nil {
		panic("ed25519: internal error: setting scalar failed")
	}
	return s
}

// PublicKey returns a copy of the public key of k.
func (k *SigningKey) PublicKey() PublicKey {
	return bytes.Clone(k.public[:])
}

// Sign signs the message with k and returns a signature, as described in
// RFC 8032, Section 5.1.6. The signature is deterministic.
func (k *SigningKey) Sign(message []byte) []byte {
	// Outline the function body so that the returned signature can be
	// stack-allocated.
	signature := make([]byte, SignatureSize)
	k.sign(signature, message)
	return signature
}

func (k *SigningKey) sign(signature, message []byte) {
	s := k.secretScalar()
	defer s.Zero()

	r := hashToScalar(k.prefix[:], message)
	defer r.Zero()

	R := new(edwards.Point).ScalarBaseMult(r)

	var encodedR [32]byte
	copy(encodedR[:], R.Bytes())

	kh := hashToScalar(encodedR[:], k.public[:], message)
	S := scalar.NewScalar().MultiplyAdd(kh, s, r)

	copy(signature[:32], encodedR[:])
	copy(signature[32:], S.Bytes())
}

// Wipe zeroes the secret material of k. k must not be used afterwards.
func (k *SigningKey) Wipe() {
	clear(k.scalar[:])
	clear(k.prefix[:])
	clear(k.public[:])
}

// Sign signs the message with privateKey and returns a signature. It will
// panic if len(privateKey) is not [PrivateKeySize].
func Sign(privateKey PrivateKey, message []byte) []byte {
	if l := len(privateKey); l != PrivateKeySize {
		panic("ed25519: bad private key length: " + strconv.Itoa(l))
	}

	var k SigningKey
	defer k.Wipe()

	k.expand(privateKey[:SeedSize])
	copy(k.public[:], privateKey[SeedSize:])

	signature := make([]byte, SignatureSize)
	k.sign(signature, message)
	return signature
}

// hashToScalar returns SHA-512(parts[0] || parts[1] || ...) reduced modulo
// the group order.
func hashToScalar(parts ...[]byte) *scalar.Scalar {
	h := sha512.New()
	for _, p := range parts {
		if _, err := h.Write(p); err != nil {
			panic(fmt.Errorf("%w: %w", ErrHashFailure, err))
		}
	}

	var digest [sha512.Size]byte
	s, err := scalar.NewScalar().SetUniformBytes(h.Sum(digest[:0]))
	if err != nil {
		panic("ed25519: internal error: setting scalar failed")
	}
	return s
}
