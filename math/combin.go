package math

import (
	"fortio.org/safecast"

	"github.com/db47h/decint"
)

// MulRange sets z to the product of all integers in the range [a, b]
// inclusively and returns z. If a > b (empty range), the result is 1.
func MulRange(z *decint.Int, a, b int64) *decint.Int {
	switch {
	case a > b:
		return z.SetUint64(1) // empty range
	case a <= 0 && b >= 0:
		return z.SetUint64(0) // range includes 0
	}
	// a <= b && (b < 0 || a > 0)

	neg := false
	lo, hi := uint64(a), uint64(b)
	if a < 0 {
		neg = (b-a)&1 == 0
		lo, hi = uint64(-b), uint64(-a)
	}

	p := decint.NewInt(1)
	t := new(decint.Int)
	for i := lo; ; i++ {
		p.Mul(p, t.SetUint64(i))
		if i == hi {
			break
		}
	}
	if neg {
		p.Neg(p)
	}
	return z.Set(p)
}

// Factorial sets z to n! and returns z. It panics with an OutOfRange
// *decint.Error if n does not fit in an int64.
func Factorial(z *decint.Int, n uint64) *decint.Int {
	m, err := safecast.Conv[int64](n)
	if err != nil {
		panic(&decint.Error{Kind: decint.OutOfRange, Op: "Factorial", Err: err})
	}
	return MulRange(z, 1, m)
}

// Binomial sets z to the binomial coefficient C(n, k) and returns z.
func Binomial(z *decint.Int, n, k int64) *decint.Int {
	if k > n {
		return z.SetUint64(0)
	}
	// reduce the number of multiplications by reducing k
	if k > n-k {
		k = n - k // C(n, k) == C(n, n-k)
	}
	var a, b decint.Int
	MulRange(&a, n-k+1, n)
	MulRange(&b, 1, k)
	return z.Quo(&a, &b)
}
