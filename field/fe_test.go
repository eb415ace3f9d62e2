package field

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"

	reference "filippo.io/edwards25519/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quickCheckConfig returns a quick.Config that scales the max count by the
// given factor if the -short flag is not set.
func quickCheckConfig(slowScale int) *quick.Config {
	cfg := new(quick.Config)
	if !testing.Short() {
		cfg.MaxCountScale = float64(slowScale)
	}
	return cfg
}

func generateFieldElement(rand *mathrand.Rand) Element {
	var v Element
	return *v.reduce(rand.Uint64(), rand.Uint64(), rand.Uint64(), rand.Uint64())
}

func (Element) Generate(rand *mathrand.Rand, size int) reflect.Value {
	return reflect.ValueOf(generateFieldElement(rand))
}

var bigP = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))

func toBig(x *Element) *big.Int {
	b := x.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return new(big.Int).SetBytes(b)
}

// isInBounds returns whether the element is fully reduced.
func isInBounds(x *Element) bool {
	return toBig(x).Cmp(bigP) < 0
}

func toReference(t testing.TB, x *Element) *reference.Element {
	r, err := new(reference.Element).SetBytes(x.Bytes())
	require.NoError(t, err)
	return r
}

func TestAdd(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for n := 0; n < 10; n++ {
		x.Add(x, y)
	}

	assert.Equal(t, uint64(21), x.l0)
	assert.Equal(t, uint64(0), x.l1)
	assert.Equal(t, uint64(0), x.l2)
	assert.Equal(t, uint64(0), x.l3)
}

func TestSubtract(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for n := 0; n < 10; n++ {
		x.Subtract(x, y)
	}

	assert.Equal(t, uint64(1<<64-19-19), x.l0)
	assert.Equal(t, uint64(1<<64-1), x.l1)
	assert.Equal(t, uint64(1<<64-1), x.l2)
	assert.Equal(t, uint64(1<<63-1), x.l3)
}

func TestMultiply(t *testing.T) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	for n := 0; n < 10; n++ {
		x.Multiply(x, y)
	}

	assert.Equal(t, uint64(1024), x.l0)
	assert.Equal(t, uint64(0), x.l1)
	assert.Equal(t, uint64(0), x.l2)
	assert.Equal(t, uint64(0), x.l3)
}

func TestSquare(t *testing.T) {
	x := new(Element).Add(feOne, feOne)

	for n := 0; n < 3; n++ {
		x.Square(x)
	}

	assert.Equal(t, uint64(256), x.l0)
	assert.Equal(t, uint64(0), x.l1)
	assert.Equal(t, uint64(0), x.l2)
	assert.Equal(t, uint64(0), x.l3)
}

func TestMultiplyWrapsAroundP(t *testing.T) {
	// (p-1)^2 = 1 mod p.
	minusOne := new(Element).Negate(feOne)
	assert.Equal(t, 1, new(Element).Multiply(minusOne, minusOne).Equal(feOne))

	// 2^254 * 2 = 2^255 = 19 mod p.
	var b [32]byte
	b[31] = 0x40
	x, err := new(Element).SetBytes(b[:])
	require.NoError(t, err)
	assert.Equal(t, 1, x.Mult32(x, 2).Equal(&Element{19, 0, 0, 0}))
}

func TestMultiplyDistributesOverAdd(t *testing.T) {
	multiplyDistributesOverAdd := func(x, y, z Element) bool {
		// Compute t1 = (x+y)*z
		t1 := new(Element)
		t1.Add(&x, &y)
		t1.Multiply(t1, &z)

		// Compute t2 = x*z + y*z
		t2 := new(Element)
		t3 := new(Element)
		t2.Multiply(&x, &z)
		t3.Multiply(&y, &z)
		t2.Add(t2, t3)

		return t1.Equal(t2) == 1 && isInBounds(t1) && isInBounds(t2)
	}

	err := quick.Check(multiplyDistributesOverAdd, quickCheckConfig(1024))
	assert.NoError(t, err)
}

func TestMatchesBigInt(t *testing.T) {
	matches := func(x, y Element) bool {
		bx, by := toBig(&x), toBig(&y)

		sum := new(big.Int).Add(bx, by)
		diff := new(big.Int).Sub(bx, by)
		prod := new(big.Int).Mul(bx, by)

		return toBig(new(Element).Add(&x, &y)).Cmp(sum.Mod(sum, bigP)) == 0 &&
			toBig(new(Element).Subtract(&x, &y)).Cmp(diff.Mod(diff, bigP)) == 0 &&
			toBig(new(Element).Multiply(&x, &y)).Cmp(prod.Mod(prod, bigP)) == 0
	}

	err := quick.Check(matches, quickCheckConfig(1024))
	assert.NoError(t, err)
}

func TestMatchesReference(t *testing.T) {
	matches := func(x, y Element) bool {
		rx, ry := toReference(t, &x), toReference(t, &y)

		return bytes.Equal(new(Element).Multiply(&x, &y).Bytes(), new(reference.Element).Multiply(rx, ry).Bytes()) &&
			bytes.Equal(new(Element).Square(&x).Bytes(), new(reference.Element).Square(rx).Bytes()) &&
			bytes.Equal(new(Element).Subtract(&x, &y).Bytes(), new(reference.Element).Subtract(rx, ry).Bytes()) &&
			bytes.Equal(new(Element).Invert(&x).Bytes(), new(reference.Element).Invert(rx).Bytes())
	}

	err := quick.Check(matches, quickCheckConfig(128))
	assert.NoError(t, err)
}

func TestInvert(t *testing.T) {
	invertWorks := func(x Element) bool {
		if x.IsZero() == 1 {
			return true
		}
		xinv := new(Element).Invert(&x)
		return new(Element).Multiply(&x, xinv).Equal(feOne) == 1
	}
	err := quick.Check(invertWorks, quickCheckConfig(128))
	assert.NoError(t, err)

	zero := new(Element).Invert(feZero)
	assert.Equal(t, 1, zero.IsZero())
}

func TestPow22523(t *testing.T) {
	x := generateFieldElement(mathrand.New(mathrand.NewSource(1)))
	exp := new(big.Int).Sub(bigP, big.NewInt(5))
	exp.Rsh(exp, 3)
	want := new(big.Int).Exp(toBig(&x), exp, bigP)

	got := new(Element).Pow22523(&x)
	assert.Equal(t, 0, toBig(got).Cmp(want))
}

func TestSetBytes(t *testing.T) {
	_, err := new(Element).SetBytes(make([]byte, 31))
	assert.Error(t, err)

	// p, p+1 and 2^255-1 are accepted and reduced.
	for _, tt := range []struct {
		in, want string
	}{
		{
			"edffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
			"0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			"eeffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
			"0100000000000000000000000000000000000000000000000000000000000000",
		},
		{
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
			"1200000000000000000000000000000000000000000000000000000000000000",
		},
		{
			// The top bit is ignored.
			"0500000000000000000000000000000000000000000000000000000000000080",
			"0500000000000000000000000000000000000000000000000000000000000000",
		},
	} {
		v, err := new(Element).SetBytes(decodeHex(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, hex.EncodeToString(v.Bytes()))
		assert.True(t, isInBounds(v))
	}
}

func TestBytesRoundTrip(t *testing.T) {
	roundTrip := func(x Element) bool {
		y, err := new(Element).SetBytes(x.Bytes())
		return err == nil && *y == x
	}
	err := quick.Check(roundTrip, quickCheckConfig(1024))
	assert.NoError(t, err)
}

func TestSelectSwap(t *testing.T) {
	a := &Element{358744748052810, 1691584618240980, 977650209285361, 1429865912637724}
	b := &Element{351011408108080, 1291548961237291, 1127153017813201, 2224612373536512}

	var c, d Element

	c.Select(a, b, 1)
	d.Select(a, b, 0)

	assert.Equal(t, *a, c)
	assert.Equal(t, *b, d)

	c.Swap(&d, 0)

	assert.Equal(t, *a, c)
	assert.Equal(t, *b, d)

	c.Swap(&d, 1)

	assert.Equal(t, *b, c)
	assert.Equal(t, *a, d)
}

func TestIsNegativeAbsolute(t *testing.T) {
	one := new(Element).One()
	two := new(Element).Add(one, one)
	minusOne := new(Element).Negate(one)
	minusTwo := new(Element).Negate(two)

	// Negative means the canonical encoding is odd: 1 is negative, and
	// -1 = p - 1 is not.
	assert.Equal(t, 1, one.IsNegative())
	assert.Equal(t, 0, two.IsNegative())
	assert.Equal(t, 0, minusOne.IsNegative())
	assert.Equal(t, 1, minusTwo.IsNegative())
	assert.Equal(t, 1, new(Element).Absolute(minusTwo).Equal(two))
	assert.Equal(t, 1, new(Element).Absolute(two).Equal(two))
	assert.Equal(t, 1, new(Element).Absolute(one).Equal(minusOne))
	assert.Equal(t, 1, new(Element).Absolute(minusOne).Equal(minusOne))
}

func TestSqrtRatio(t *testing.T) {
	// From draft-irtf-cfrg-ristretto255-decaf448-00, Appendix A.4.
	type test struct {
		u, v      string
		wasSquare int
		r         string
	}
	tests := []test{
		// If u is 0, the function is defined to return (0, TRUE), even if v
		// is zero. Note that where used in this module, the denominator v
		// is never zero.
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			"0000000000000000000000000000000000000000000000000000000000000000",
			1, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// 0/1 == 0²
		{
			"0000000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			1, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// If u is non-zero and v is zero, defined to return (0, FALSE).
		{
			"0100000000000000000000000000000000000000000000000000000000000000",
			"0000000000000000000000000000000000000000000000000000000000000000",
			0, "0000000000000000000000000000000000000000000000000000000000000000",
		},
		// 2/1 is not square in this field.
		{
			"0200000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			0, "3c5ff1b5d8e4113b871bd052f9e7bcd0582804c266ffb2d4f4203eb07fdb7c54",
		},
		// 4/1 == 2²
		{
			"0400000000000000000000000000000000000000000000000000000000000000",
			"0100000000000000000000000000000000000000000000000000000000000000",
			1, "0200000000000000000000000000000000000000000000000000000000000000",
		},
		// 1/4 == (2⁻¹)² == (2^(p-2))² per Euler's theorem
		{
			"0100000000000000000000000000000000000000000000000000000000000000",
			"0400000000000000000000000000000000000000000000000000000000000000",
			1, "f6ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff3f",
		},
	}

	for i, tt := range tests {
		u, _ := new(Element).SetBytes(decodeHex(tt.u))
		v, _ := new(Element).SetBytes(decodeHex(tt.v))
		want, _ := new(Element).SetBytes(decodeHex(tt.r))
		got, wasSquare := new(Element).SqrtRatio(u, v)
		if got.Equal(want) == 0 || wasSquare != tt.wasSquare {
			t.Errorf("%d: got (%v, %v), want (%v, %v)", i, got, wasSquare, want, tt.wasSquare)
		}
	}
}

func TestSqrtM1(t *testing.T) {
	minusOne := new(Element).Negate(feOne)
	assert.Equal(t, 1, new(Element).Square(sqrtM1).Equal(minusOne))
}

func TestBatchInvert(t *testing.T) {
	for _, n := range []int{1, 2, 10, 100, 1000} {
		t.Run("", func(t *testing.T) {
			var buf [32]byte

			a := make([]Element, n)
			s := make([]Element, n)
			e := make([]Element, n)
			for i := 0; i < n; i++ {
				_, _ = rand.Read(buf[:])
				buf[0] |= 1 // non-zero
				_, err := a[i].SetBytes(buf[:])
				require.NoError(t, err)

				e[i].Invert(&a[i])
			}

			BatchInvert(a, s)

			for i := 0; i < n; i++ {
				assert.Equal(t, e[i].Bytes(), a[i].Bytes())
			}
		})
	}

	assert.NotPanics(t, func() { BatchInvert(nil, nil) })
	assert.Panics(t, func() { BatchInvert(make([]Element, 2), make([]Element, 1)) })
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func BenchmarkAdd(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		x.Add(x, y)
	}
}

func BenchmarkSubtract(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		x.Subtract(x, y)
	}
}

func BenchmarkMultiply(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		x.Multiply(x, y)
	}
}

var z Element

func BenchmarkMultiplyNoAlias(b *testing.B) {
	x := new(Element).One()
	y := new(Element).Add(x, x)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		z.Multiply(x, y)
	}
}

func BenchmarkSquare(b *testing.B) {
	x := new(Element).Add(feOne, feOne)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		x.Square(x)
	}
}

func BenchmarkInvert(b *testing.B) {
	x := new(Element).Add(feOne, feOne)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		x.Invert(x)
	}
}
