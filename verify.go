package ed25519

import (
	"fmt"

	"github.com/AlexanderYastrebov/ed25519/edwards"
	"github.com/AlexanderYastrebov/ed25519/scalar"
)

// Mode selects the signature validation rules.
type Mode int

const (
	// ModeRFC8032 decodes the public key and R strictly, requires S to be
	// canonical, and checks the cofactorless equation [S]B = R + [k]A.
	ModeRFC8032 Mode = iota

	// ModeZIP215 accepts non-canonical encodings of the public key and R,
	// requires S to be canonical, and checks the cofactored equation
	// [8]([S]B - R - [k]A) = 0, as specified by ZIP-215.
	ModeZIP215
)

func (m Mode) String() string {
	switch m {
	case ModeRFC8032:
		return "RFC8032"
	case ModeZIP215:
		return "ZIP215"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures [VerifyWithOptions]. The zero value selects
// [ModeRFC8032].
type Options struct {
	Mode Mode
}

// Verify reports whether sig is a valid signature of message by publicKey,
// following RFC 8032, Section 5.1.7. It returns false for keys and signatures
// of the wrong length instead of panicking.
func Verify(publicKey PublicKey, message, sig []byte) bool {
	return verify(publicKey, message, sig, ModeRFC8032) == nil
}

// VerifyWithOptions reports whether sig is a valid signature of message by
// publicKey. A nil opts is equivalent to &Options{}.
//
// A rejected signature yields an error that matches [ErrInvalidEncoding],
// [ErrNonCanonicalScalar] or [ErrVerificationFailed] with [errors.Is].
func VerifyWithOptions(publicKey PublicKey, message, sig []byte, opts *Options) error {
	mode := ModeRFC8032
	if opts != nil {
		mode = opts.Mode
	}
	switch mode {
	case ModeRFC8032, ModeZIP215:
	default:
		return fmt.Errorf("ed25519: unsupported verification mode %v", mode)
	}
	return verify(publicKey, message, sig, mode)
}

func verify(publicKey PublicKey, message, sig []byte, mode Mode) error {
	if l := len(publicKey); l != PublicKeySize {
		return fmt.Errorf("%w: bad public key length: %d", ErrInvalidEncoding, l)
	}
	if l := len(sig); l != SignatureSize {
		return fmt.Errorf("%w: bad signature length: %d", ErrInvalidEncoding, l)
	}

	decode := (*edwards.Point).SetBytes
	if mode == ModeZIP215 {
		decode = (*edwards.Point).SetBytesPermissive
	}

	A, err := decode(new(edwards.Point), publicKey)
	if err != nil {
		return fmt.Errorf("%w: public key: %w", ErrInvalidEncoding, err)
	}
	R, err := decode(new(edwards.Point), sig[:32])
	if err != nil {
		return fmt.Errorf("%w: R: %w", ErrInvalidEncoding, err)
	}
	S, err := scalar.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return ErrNonCanonicalScalar
	}

	k := hashToScalar(sig[:32], publicKey, message)

	var ok int
	switch mode {
	case ModeZIP215:
		// [8]([S]B - R - [k]A) = 0
		check := new(edwards.Point).ScalarBaseMult(S)
		check.Subtract(check, R)
		check.Subtract(check, new(edwards.Point).ScalarMult(k, A))
		check.MultByCofactor(check)
		ok = check.Equal(edwards.NewIdentityPoint())
	default:
		// [S]B = R + [k]A
		lhs := new(edwards.Point).ScalarBaseMult(S)
		rhs := new(edwards.Point).ScalarMult(k, A)
		rhs.Add(R, rhs)
		ok = lhs.Equal(rhs)
	}

	if ok != 1 {
		return ErrVerificationFailed
	}
	return nil
}
