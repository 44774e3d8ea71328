package math

import (
	"github.com/db47h/decint"
)

// constants
var (
	one     = decint.NewInt(1)
	four    = decint.NewInt(4)
	ten     = decint.NewInt(10)
	sixteen = decint.NewInt(16)
)

// Pow sets z to x**n and returns z. Pow(z, x, 0) is 1 for any valid x.
func Pow(z, x *decint.Int, n uint64) *decint.Int {
	if !x.IsValid() {
		panic(&decint.Error{Kind: decint.UninitializedOperand, Op: "Pow"})
	}
	if n == 0 {
		return z.SetUint64(1)
	}
	y := decint.NewInt(1)
	z.Set(x)

	// Russian Peasant Method: x**n == product of x**(2**i) for all i where
	// bit i of n is set.
	for n > 1 {
		if n%2 != 0 {
			y.Mul(y, z)
		}
		z.Mul(z, z)
		n /= 2
	}
	if y.Cmp(one) == 0 {
		return z
	}
	return z.Mul(z, y)
}

// GCD sets z to the greatest common divisor of |x| and |y| and returns z.
// GCD(z, 0, 0) is 0.
func GCD(z, x, y *decint.Int) *decint.Int {
	a := new(decint.Int).Abs(x)
	b := new(decint.Int).Abs(y)
	for !b.IsZero() {
		a.Rem(a, b)
		a, b = b, a
	}
	return z.Set(a)
}
