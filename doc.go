// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfp defines the configuration and status model for an
arbitrary-precision binary floating-point engine.

The engine itself (mantissa storage, arithmetic algorithms, string
conversion) is a separate component: its entry points take a Config or a
Format describing how to carry out an operation, and report exceptional
conditions through a Status. This package defines those three descriptor
types plus RoundingMode, and nothing else. All four are small immutable
value types; they are freely copyable, comparable, and safe to share
between goroutines without synchronization.

Configs and Formats are built from primitive fragments and combined with
Merge. Merging takes the larger of the two precision (or digit count)
fields and the union of the flag bits, so fragments can be folded in any
order:

	cfg := bigfp.PrecBits(53).
		Merge(bigfp.ExpBits(11)).
		Merge(bigfp.ToNearestEven.Config())

describes IEEE 754 binary64 arithmetic, and is identical to folding the
same three fragments in any other order. The zero Config (and the zero
Format) is the identity for Merge. Presets for the IEEE interchange
formats are provided (Float16 through Float256); they carry no rounding
mode, so a mode fragment is typically merged in as above.

Construction never fails and nothing is validated here: a precision
outside [PrecMin, PrecMax] or an exponent width outside
[ExpBitsMin, ExpBitsMax] is a contract violation that the engine reports
as an invalid operation when the descriptor is used. Values are not
clamped.

A Format plays the same role for the engine's text-rendering entry
points. Exactly one of the four family constructors (FixedDigits,
FracDigits, FreeDigits, FreeMinDigits) should contribute to any given
Format; merging formats built from different families produces a flag
word whose family field no longer identifies either constructor, and the
engine's behavior on such a format is undefined (see Format.Merge).

A Status is the engine's side channel: it is produced by every
arithmetic and rendering entry point and never consumed by one.
Application code reads it with Has (or Any) and renders it with String;
constructing Status values by OR-ing the named bits is normally only
done in tests.

The flag bit layout, the rounding-mode codes, the family tag values and
the five status bit positions are part of the engine's ABI and cross the
boundary without translation. The constants in this package must be kept
bit-exact with the engine's own definitions; see limits.go.
*/
package bigfp
