package math

import (
	"sync"

	"github.com/db47h/decint"
)

// guard digits used by pi() to absorb the truncation error of each series
// term.
const piGuardDigits = 10

var _pi struct {
	sync.Mutex
	digits uint
	v      *decint.Int // ⌊π×10**digits⌋
}

// Pi sets z to ⌊π×10**n⌋, that is π truncated to n decimal places with the
// decimal point removed, and returns z. Pi(z, 2) is 314.
//
// The largest value computed so far is cached; Pi is safe for concurrent use.
func Pi(z *decint.Int, n uint) *decint.Int {
	_pi.Lock()
	defer _pi.Unlock()
	if _pi.v == nil || _pi.digits < n {
		_pi.v = pi(n)
		_pi.digits = n
	}
	if _pi.digits == n {
		return z.Set(_pi.v)
	}
	// ⌊⌊π×10**m⌋ / 10**(m-n)⌋ == ⌊π×10**n⌋
	var p decint.Int
	return z.Quo(_pi.v, Pow(&p, ten, uint64(_pi.digits-n)))
}

// pi computes ⌊π×10**n⌋ with Machin's formula
//
//   π = 16×atan(1/5) - 4×atan(1/239)
//
// in fixed-point arithmetic scaled by 10**(n+piGuardDigits).
func pi(n uint) *decint.Int {
	var unity decint.Int
	Pow(&unity, ten, uint64(n+piGuardDigits))

	a := arctanInv(5, &unity)
	b := arctanInv(239, &unity)
	z := new(decint.Int).Mul(a, sixteen)
	z.Sub(z, b.Mul(b, four))
	return z.Quo(z, Pow(a, ten, piGuardDigits))
}

// arctanInv returns atan(1/x)×unity, using the series
//
//   atan(1/x) = 1/x - 1/(3x³) + 1/(5x⁵) - ...
//
// The sum stops at the first term that truncates to zero.
func arctanInv(x int64, unity *decint.Int) *decint.Int {
	x2 := decint.NewInt(x * x)
	power := new(decint.Int).Quo(unity, decint.NewInt(x)) // unity/x**k
	sum := new(decint.Int).Set(power)
	term := new(decint.Int)
	k := new(decint.Int)
	for i := int64(3); ; i += 2 {
		power.Quo(power, x2)
		if power.IsZero() {
			break
		}
		term.Quo(power, k.SetInt64(i))
		if i%4 == 3 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}
