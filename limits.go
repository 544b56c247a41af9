// This file mirrors the engine's limb layout and limit constants.
// Every value here is part of the engine ABI and must match the
// engine's own definitions bit for bit; none of them may be changed
// independently of the engine.

package bigfp

// The engine stores mantissas in 64-bit limbs.
const limbBits = 64

// Precision and exponent-width limits.
//
// PrecInf is the "infinite precision" sentinel: a Config (or a
// free-form Format) carrying it asks the engine for exact operation,
// with no rounding step at all.
const (
	PrecMin    = 2                   // smallest supported precision, in bits
	PrecMax    = 1<<(limbBits-2) - 2 // largest supported precision, in bits
	PrecInf    = uint64(PrecMax) + 1 // infinite precision sentinel
	ExpBitsMin = 3                   // smallest supported exponent width
	ExpBitsMax = limbBits - 3        // largest supported exponent width
)

// Flag word layout, shared by Config and Format. The low region is
// common to both; the Format-only bits start at formatFamilyShift.
//
// bits 0-2    rounding mode code
// bit  3      allow subnormal results
// bits 5-10   exponent width, stored as ExpBitsMax-n
// bits 16-17  format family tag (Format only)
// bit  20     force exponent notation (Format only)
// bit  21     add radix prefix (Format only)
const (
	rndMask       = 0x7
	flagSubnormal = 1 << 3
	expBitsShift  = 5
	expBitsMask   = 0x3f

	formatFamilyShift = 16
	formatFamilyMask  = 0x3
	flagForceExp      = 1 << 20
	flagAddPrefix     = 1 << 21
)

// packExpBits encodes an exponent width of n bits into its flag-word
// field. The field stores ExpBitsMax-n, not n: the all-zero flag word
// then decodes to the engine's widest exponent range, which is the
// engine's default. This is the engine's own encoding, not a choice
// made here.
func packExpBits(n uint) uint32 {
	return uint32(ExpBitsMax-n) << expBitsShift
}

// unpackExpBits is the inverse of packExpBits.
func unpackExpBits(flags uint32) uint {
	return ExpBitsMax - uint(flags>>expBitsShift&expBitsMask)
}

func umax64(x, y uint64) uint64 {
	if x > y {
		return x
	}
	return y
}
