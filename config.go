// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfp

// A Config describes how the engine carries out one arithmetic
// operation: the mantissa precision of the result, the exponent width,
// whether subnormal results are representable, and the rounding mode.
//
// A Config is built by merging fragments, each produced by one of the
// constructors below; see the package documentation for the merge
// algebra. The zero Config is the identity for Merge and, used on its
// own, asks for precision 0 with default flags (widest exponent range,
// no subnormals, ToNearestEven), which the engine rejects as an invalid
// argument.
type Config struct {
	prec  uint64
	flags uint32
}

// PrecBits returns a Config asking for a result precision of n
// mantissa bits. The caller must ensure PrecMin <= n <= PrecMax; this
// is not checked here, and the engine reports an out-of-range
// precision as an invalid operation when the Config is used.
func PrecBits(n uint64) Config {
	return Config{prec: n}
}

// InfPrec returns a Config asking for infinite precision: the engine
// computes the exact result, with no rounding step. Only operations
// whose exact result has a finite binary representation accept it.
func InfPrec() Config {
	return Config{prec: PrecInf}
}

// ExpBits returns a Config asking for an exponent width of n bits,
// limiting the result's exponent range to roughly ±2**(n-1). The
// caller must ensure ExpBitsMin <= n <= ExpBitsMax (unchecked, as for
// PrecBits). A Config that carries no ExpBits fragment decodes to
// ExpBitsMax: the flag field stores ExpBitsMax-n, so the widest range
// is the zero encoding.
func ExpBits(n uint) Config {
	return Config{flags: packExpBits(n)}
}

// AllowSubnormal returns a Config allowing subnormal results: values
// below the smallest normalized magnitude for the configured exponent
// width lose precision gradually instead of flushing to zero.
func AllowSubnormal() Config {
	return Config{flags: flagSubnormal}
}

// Merge combines x and y, taking the larger of the two precisions and
// the union of the flag bits. Merge is associative and commutative,
// and the zero Config is its identity.
func (x Config) Merge(y Config) Config {
	return Config{
		prec:  umax64(x.prec, y.prec),
		flags: x.flags | y.flags,
	}
}

// Prec returns the precision x asks for, in bits, or PrecInf.
func (x Config) Prec() uint64 {
	return x.prec
}

// Flags returns x's raw flag word as the engine consumes it.
func (x Config) Flags() uint32 {
	return x.flags
}

// Mode returns the rounding mode encoded in x.
func (x Config) Mode() RoundingMode {
	return RoundingMode(x.flags & rndMask)
}

// ExpBits returns the exponent width encoded in x.
func (x Config) ExpBits() uint {
	return unpackExpBits(x.flags)
}

// Subnormal reports whether x allows subnormal results.
func (x Config) Subnormal() bool {
	return x.flags&flagSubnormal != 0
}

// IEEE 754 interchange format presets. Each carries the format's
// precision and exponent width but no rounding mode; merge one in:
//
//	cfg := bigfp.Float64().Merge(bigfp.ToNearestEven.Config())
//
// Add AllowSubnormal for full interchange-format semantics.

// Float16 returns a Config with binary16 precision and exponent width.
func Float16() Config { return PrecBits(11).Merge(ExpBits(5)) }

// Float32 returns a Config with binary32 precision and exponent width.
func Float32() Config { return PrecBits(24).Merge(ExpBits(8)) }

// Float64 returns a Config with binary64 precision and exponent width.
func Float64() Config { return PrecBits(53).Merge(ExpBits(11)) }

// Float128 returns a Config with binary128 precision and exponent width.
func Float128() Config { return PrecBits(113).Merge(ExpBits(15)) }

// Float256 returns a Config with binary256 precision and exponent width.
func Float256() Config { return PrecBits(237).Merge(ExpBits(19)) }
