// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfp

// A Format describes how the engine converts a value to text: a digit
// count, a format family selecting how that count is interpreted, the
// rounding mode applied when digits are dropped, and cosmetic flags.
//
// A Format is built by merging fragments, like a Config. Exactly one
// of the four family constructors should contribute to a given Format;
// see Merge for what happens otherwise. The zero Format is the
// identity for Merge.
type Format struct {
	digits uint64
	flags  uint32
}

// A Family identifies which of the four format constructors a Format
// was built from.
type Family byte

// The family tag values are the engine's own codes. FreeMin is the
// bitwise union of Frac and Free; this is a property of the engine's
// encoding, not an accident (see Format.Merge).
const (
	Fixed   Family = iota // FixedDigits
	Frac                  // FracDigits
	Free                  // FreeDigits
	FreeMin               // FreeMinDigits
)

//go:generate stringer -type=Family

// FixedDigits returns a Format rendering exactly n significant digits.
func FixedDigits(n uint64) Format {
	return Format{digits: n, flags: uint32(Fixed) << formatFamilyShift}
}

// FracDigits returns a Format rendering exactly n digits after the
// radix point.
func FracDigits(n uint64) Format {
	return Format{digits: n, flags: uint32(Frac) << formatFamilyShift}
}

// FreeDigits returns a Format rendering the minimum number of digits
// sufficient to read the value back exactly at a source precision of
// prec bits. prec may be PrecInf when the target radix is a power of
// two. The digit count is meaningful only if the rendered value was
// itself rounded to prec bits; rendering an un-rounded value with a
// free-form Format does not round-trip.
func FreeDigits(prec uint64) Format {
	return Format{digits: prec, flags: uint32(Free) << formatFamilyShift}
}

// FreeMinDigits is like FreeDigits, but the engine searches for the
// provably minimal digit count instead of a sufficient one. Rendering
// costs more in exchange for the shorter output.
func FreeMinDigits(prec uint64) Format {
	return Format{digits: prec, flags: uint32(FreeMin) << formatFamilyShift}
}

// AddPrefix returns a Format fragment asking for a radix prefix:
// non-zero values rendered in base 16, 8 or 2 are prefixed with 0x,
// 0o or 0b respectively.
func AddPrefix() Format {
	return Format{flags: flagAddPrefix}
}

// ForceExp returns a Format fragment forcing exponential notation
// regardless of the value's magnitude.
func ForceExp() Format {
	return Format{flags: flagForceExp}
}

// Merge combines x and y, taking the larger of the two digit counts
// and the union of the flag bits. Merge is associative and
// commutative, and the zero Format is its identity.
//
// Merging Formats built from different family constructors produces a
// family field that identifies neither: Fixed contributes no family
// bits, and Frac combined with Free encodes as FreeMin. The engine's
// behavior on such a Format is undefined; Merge does not detect or
// repair the combination.
func (x Format) Merge(y Format) Format {
	return Format{
		digits: umax64(x.digits, y.digits),
		flags:  x.flags | y.flags,
	}
}

// Digits returns x's digit count: significant digits for Fixed,
// digits after the radix point for Frac, and the source precision in
// bits (or PrecInf) for the free-form families.
func (x Format) Digits() uint64 {
	return x.digits
}

// Flags returns x's raw flag word as the engine consumes it.
func (x Format) Flags() uint32 {
	return x.flags
}

// Mode returns the rounding mode encoded in x.
func (x Format) Mode() RoundingMode {
	return RoundingMode(x.flags & rndMask)
}

// Family returns the format family encoded in x.
func (x Format) Family() Family {
	return Family(x.flags >> formatFamilyShift & formatFamilyMask)
}

// Prefix reports whether x asks for a radix prefix.
func (x Format) Prefix() bool {
	return x.flags&flagAddPrefix != 0
}

// ForcesExp reports whether x forces exponential notation.
func (x Format) ForcesExp() bool {
	return x.flags&flagForceExp != 0
}
