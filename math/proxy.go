package math

import "github.com/db47h/decint"

// Sqrt sets z to ⌊√x⌋ and returns z.
//
// The function panics with a NegativeOperand *decint.Error if x < 0. The
// value of z is undefined in that case.
//
// This function is a proxy for z.Sqrt(x)
func Sqrt(z, x *decint.Int) *decint.Int {
	return z.Sqrt(x)
}
