package field

// BatchInvert sets a[i] = 1/a[i] for every element of a, using scratch as a
// buffer of at least len(a) elements.
//
// It uses:
//
//	3*(n-1) multiplications
//	1 invert = ~265 multiplications
//
// Complexity: 3M*n + 262M
//
// If any element of a is zero, all of a is set to zero. Callers invert
// values known to be non-zero, such as projective Z coordinates.
//
// https://en.wikipedia.org/wiki/Modular_multiplicative_inverse#Multiple_inverses
func BatchInvert(a, scratch []Element) {
	n := len(a)
	if n == 0 {
		return
	}
	if len(scratch) < n {
		panic("field: scratch buffer too short")
	}

	var t Element
	acc := new(Element).Set(&a[0]) // a[0]*a[1]*...*a[i-1]
	for i := 1; i < n; i++ {
		scratch[i].Set(acc)
		acc.Multiply(acc, &a[i])
	}

	accInv := new(Element).Invert(acc)

	for i := n - 1; i > 0; i-- {
		t.Multiply(accInv, &scratch[i])
		accInv.Multiply(accInv, &a[i])
		a[i].Set(&t)
	}
	a[0].Set(accInv)
}
