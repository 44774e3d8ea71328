package math_test

import (
	"errors"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/decint"
	"github.com/db47h/decint/math"
)

func TestPow(t *testing.T) {
	td := []struct {
		x    int64
		n    uint64
		want string
	}{
		{0, 0, "1"},
		{7, 0, "1"},
		{0, 5, "0"},
		{1, 1000, "1"},
		{2, 10, "1024"},
		{2, 100, "1267650600228229401496703205376"},
		{-3, 3, "-27"},
		{-3, 4, "81"},
		{10, 25, "1" + "0000000000000000000000000"},
	}
	for _, d := range td {
		t.Run(strconv.FormatInt(d.x, 10)+"^"+strconv.FormatUint(d.n, 10), func(t *testing.T) {
			x := decint.NewInt(d.x)
			assert.Equal(t, d.want, math.Pow(new(decint.Int), x, d.n).String())
			// aliasing
			assert.Equal(t, d.want, math.Pow(x, x, d.n).String())
		})
	}
	assert.Panics(t, func() { math.Pow(new(decint.Int), new(decint.Int), 0) })
}

var mulRanges = []struct {
	a, b int64
	prod string
}{
	{0, 0, "0"},
	{1, 1, "1"},
	{1, 2, "2"},
	{1, 3, "6"},
	{10, 10, "10"},
	{0, 100, "0"},
	{0, 1e9, "0"},
	{1, 0, "1"},                    // empty range
	{100, 1, "1"},                  // empty range
	{1, 10, "3628800"},             // 10!
	{1, 20, "2432902008176640000"}, // 20!
	{1, 100,
		"933262154439441526816992388562667004907159682643816214685929" +
			"638952175999932299156089414639761565182862536979208272237582" +
			"51185210916864000000000000000000000000", // 100!
	},
	{-1, 1, "0"},
	{-2, -1, "2"},
	{-3, -1, "-6"},
	{-10, -10, "-10"},
}

func TestMulRange(t *testing.T) {
	for i, r := range mulRanges {
		prod := math.MulRange(new(decint.Int), r.a, r.b).String()
		assert.Equal(t, r.prod, prod, "#%d: MulRange(%d, %d)", i, r.a, r.b)
	}
}

func TestFactorial(t *testing.T) {
	z := new(decint.Int)
	assert.Equal(t, "1", math.Factorial(z, 0).String())
	assert.Equal(t, "2432902008176640000", math.Factorial(z, 20).String())
	assert.Equal(t, "15511210043330985984000000", math.Factorial(z, 25).String())

	defer func() {
		err, _ := recover().(error)
		assert.True(t, errors.Is(err, decint.ErrOutOfRange), "got %v", err)
	}()
	math.Factorial(z, 1<<63)
}

func TestBinomial(t *testing.T) {
	for _, d := range []struct {
		n, k int64
	}{
		{0, 0}, {1, 0}, {1, 1}, {5, 2}, {5, 6}, {10, 3}, {64, 32}, {100, 50}, {120, 7},
	} {
		want := new(big.Int).Binomial(d.n, d.k)
		got := math.Binomial(new(decint.Int), d.n, d.k)
		assert.Equal(t, want.String(), got.String(), "Binomial(%d, %d)", d.n, d.k)
	}
	assert.Equal(t, "100891344545564193334812497256", math.Binomial(new(decint.Int), 100, 50).String())
}

func TestGCD(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), uint(rnd.Intn(150)+1)))
		y := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), uint(rnd.Intn(150)+1)))
		common := big.NewInt(rnd.Int63n(1e6) + 1)
		x.Mul(x, common)
		y.Mul(y, common)
		if i%2 == 1 {
			x.Neg(x)
		}
		want := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y))

		dx := new(decint.Int).SetBigInt(x)
		dy := new(decint.Int).SetBigInt(y)
		got := math.GCD(new(decint.Int), dx, dy)
		require.Equal(t, want.String(), got.String(), "GCD(%s, %s)", x, y)
	}
	assert.Equal(t, "0", math.GCD(new(decint.Int), decint.NewInt(0), decint.NewInt(0)).String())
	assert.Equal(t, "7", math.GCD(new(decint.Int), decint.NewInt(0), decint.NewInt(-7)).String())
}

func TestSqrt(t *testing.T) {
	x, err := decint.Parse("2" + strings.Repeat("0", 40))
	require.NoError(t, err)
	assert.Equal(t, "141421356237309504880", math.Sqrt(new(decint.Int), x).String())
}
