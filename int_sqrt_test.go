// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntSqrt(t *testing.T) {
	for _, d := range []struct {
		x, z string
	}{
		{"0", "0"},
		{"1", "1"},
		{"2", "1"},
		{"3", "1"},
		{"4", "2"},
		{"15", "3"},
		{"16", "4"},
		{"17", "4"},
		{"99", "9"},
		{"100", "10"},
		{"12345678901234567890123", "111111110611"},
		{"2" + strings.Repeat("0", 40), "141421356237309504880"},
		{"1" + strings.Repeat("0", 40), "1" + strings.Repeat("0", 20)},
	} {
		x := mustParse(t, d.x)
		assert.Equal(t, d.z, new(Int).Sqrt(x).String(), "√%s", d.x)
		x.Sqrt(x)
		assert.Equal(t, d.z, x.String(), "√%s aliased", d.x)
	}
}

func TestIntSqrtRandom(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := new(Int).Abs(rndInt(80))
		z := new(Int).Sqrt(x)
		want := new(big.Int).Sqrt(x.BigInt(nil))
		require.Equal(t, want.String(), z.String(), "√%s", x)

		// z² <= x < (z+1)²
		assert.True(t, new(Int).Mul(z, z).LessOrEqual(x))
		z1 := new(Int).Add(z, NewInt(1))
		assert.True(t, x.Less(new(Int).Mul(z1, z1)))
	}
}

func TestIntSqrtNegative(t *testing.T) {
	assert.Equal(t, NegativeOperand, panicKind(func() { new(Int).Sqrt(NewInt(-4)) }))
}

func BenchmarkIntSqrt(b *testing.B) {
	x := new(Int).Abs(rndInt(100))
	z := new(Int)
	for i := 0; i < b.N; i++ {
		z.Sqrt(x)
	}
}
