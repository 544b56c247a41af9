package bigfp

// RoundingMode determines how the engine selects a representable value
// when an exact result cannot be represented at the requested
// precision. A mode on its own does nothing; it is folded into a
// Config or a Format with the Config and Format methods.
type RoundingMode byte

// These constants define the supported rounding modes. The numeric
// values are the engine's own codes and must not be reordered.
//
// Faithful rounds in an unspecified direction: repeating the same
// operation may round up one time and down the next. In exchange the
// engine can skip the exact-direction test, which makes it the fastest
// mode. Operations rounded faithfully always report Inexact.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToZero                            // == IEEE 754-2008 roundTowardZero
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
	ToNearestAway                     // == IEEE 754-2008 roundTiesToAway
	AwayFromZero                      // no IEEE 754-2008 equivalent
	Faithful                          // nondeterministic direction, always inexact
)

//go:generate stringer -type=RoundingMode

// Config returns a Config fragment carrying only mode's bits. Merged
// into another Config it sets the rounding mode and leaves the
// precision at the other operand's value.
func (mode RoundingMode) Config() Config {
	return Config{flags: uint32(mode) & rndMask}
}

// Format returns a Format fragment carrying only mode's bits, for use
// with the engine's text-rendering entry points. Rendering rounds when
// a value has more digits than the Format asks for.
func (mode RoundingMode) Format() Format {
	return Format{flags: uint32(mode) & rndMask}
}
