package ed25519

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is returned when a key or signature has the wrong
	// length, or encodes a point or scalar that is rejected.
	ErrInvalidEncoding = errors.New("ed25519: invalid encoding")

	// ErrNonCanonicalScalar is returned when the S half of a signature is not
	// below the group order. It wraps ErrInvalidEncoding.
	ErrNonCanonicalScalar = fmt.Errorf("%w: non-canonical S", ErrInvalidEncoding)

	// ErrVerificationFailed is returned when a well-formed signature does
	// not satisfy the verification equation.
	ErrVerificationFailed = errors.New("ed25519: verification failed")

	// ErrHashFailure reports a failure of the SHA-512 collaborator. It is
	// never returned: operations panic with an error wrapping it.
	ErrHashFailure = errors.New("ed25519: hash failure")
)
