package edwards

import (
	"math/big"

	"github.com/AlexanderYastrebov/ed25519/field"
)

// Curve constants, RFC 8032, Section 5.1.
var (
	// d = -121665/121666
	d = fieldElementFromString("37095705934669439343138083508754565189542113879843219016388785533085940283555")
	// d2 = 2*d
	d2 = new(field.Element).Add(d, d)

	// The base point B, with y = 4/5 and positive x.
	generatorX = fieldElementFromString("15112221349535400772501151409588531511454012693041857206046113283949847762202")
	generatorY = fieldElementFromString("46316835694926478169428394003475163141307993866256225615783033603165251855960")
)

// Constant 1
var feOne = new(field.Element).One()

func fieldElementFromString(s string) *field.Element {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid fieldElement string")
	}
	return fieldElementFromBigInt(n)
}

func fieldElementFromBigInt(n *big.Int) *field.Element {
	var buf [32]byte
	fe, err := new(field.Element).SetBytes(bigIntBytes(n, buf[:]))
	if err != nil {
		panic(err)
	}
	return fe
}

// bigIntBytes writes n into buf as 32 little-endian bytes.
func bigIntBytes(n *big.Int, buf []byte) []byte {
	if n == nil || n.Sign() < 0 {
		panic("n must be non-negative")
	}
	if n.BitLen() > 255 {
		panic("n must be less than 2^255")
	}
	return reverse(n.FillBytes(buf[:32]))
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
