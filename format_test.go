// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfp

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatConstructors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f      Format
		family Family
		digits uint64
	}{
		{FixedDigits(6), Fixed, 6},
		{FracDigits(2), Frac, 2},
		{FreeDigits(53), Free, 53},
		{FreeMinDigits(53), FreeMin, 53},
		{FreeDigits(PrecInf), Free, PrecInf},
		{FixedDigits(0), Fixed, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.family, test.f.Family())
			a.Equal(test.digits, test.f.Digits())
			a.Equal(ToNearestEven, test.f.Mode())
			a.False(test.f.Prefix())
			a.False(test.f.ForcesExp())
		})
	}
}

func TestFormatMergeSameFamily(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y Format
	}{
		{FixedDigits(2), FixedDigits(10)},
		{FracDigits(2), FracDigits(10)},
		{FreeDigits(2), FreeDigits(10)},
		{FreeMinDigits(2), FreeMinDigits(10)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			m := test.x.Merge(test.y)
			a.Equal(test.x.Family(), m.Family())
			a.Equal(uint64(10), m.Digits())
		})
	}
}

// Merging formats from different families is undefined at the engine;
// this test pins the encoding actually produced, it does not bless it.
func TestFormatMergeCrossFamily(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y   Format
		family Family
	}{
		// Fixed carries no family bits and loses to anything
		{FixedDigits(2), FracDigits(3), Frac},
		{FixedDigits(2), FreeDigits(3), Free},
		{FixedDigits(2), FreeMinDigits(3), FreeMin},
		// Frac and Free union to the FreeMin encoding
		{FracDigits(2), FreeDigits(3), FreeMin},
		{FracDigits(2), FreeMinDigits(3), FreeMin},
		{FreeDigits(2), FreeMinDigits(3), FreeMin},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.family, test.x.Merge(test.y).Family())
			a.Equal(test.family, test.y.Merge(test.x).Family())
		})
	}
}

func TestFormatModeEmbedding(t *testing.T) {
	a := assert.New(t)
	for mode := ToNearestEven; mode <= Faithful; mode++ {
		f := FracDigits(7).Merge(mode.Format())
		a.Equal(mode, f.Mode())
		a.Equal(uint64(7), f.Digits())
		a.Equal(Frac, f.Family())
		a.Equal(uint64(0), mode.Format().Digits())
	}
}

func TestFormatCosmetics(t *testing.T) {
	a := assert.New(t)

	f := FreeMinDigits(24).Merge(AddPrefix())
	a.True(f.Prefix())
	a.False(f.ForcesExp())

	f = f.Merge(ForceExp())
	a.True(f.Prefix())
	a.True(f.ForcesExp())
	a.Equal(FreeMin, f.Family())
	a.Equal(uint64(24), f.Digits())

	a.Equal(uint64(0), AddPrefix().Digits())
	a.Equal(uint64(0), ForceExp().Digits())
}

func TestFormatMergeAlgebra(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		x := Format{digits: r.Uint64(), flags: r.Uint32()}
		y := Format{digits: r.Uint64(), flags: r.Uint32()}
		z := Format{digits: r.Uint64(), flags: r.Uint32()}
		a.Equal(x.Merge(y), y.Merge(x), "commutativity")
		a.Equal(x.Merge(y).Merge(z), x.Merge(y.Merge(z)), "associativity")
		a.Equal(x, x.Merge(Format{}), "identity")
		m := x.Merge(y)
		a.Equal(umax64(x.digits, y.digits), m.digits)
		a.Equal(x.flags|y.flags, m.flags)
	}
}

func TestFamilyString(t *testing.T) {
	a := assert.New(t)
	a.Equal("Fixed", Fixed.String())
	a.Equal("Frac", Frac.String())
	a.Equal("Free", Free.String())
	a.Equal("FreeMin", FreeMin.String())
	a.Equal("Family(4)", Family(4).String())
}
