// Copyright 2021 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfp

import (
	"strconv"
	"strings"
)

// A Status is a bitset of the exceptional conditions raised by one
// engine operation. It is produced by every arithmetic and rendering
// entry point and never consumed by one; callers read individual
// conditions with Has. Several bits may be set at once (an overflowing
// result is also inexact). The zero Status, Ok, means no condition was
// raised.
type Status uint32

// The individual conditions. The bit positions are the engine's own
// and must not be reordered.
const (
	InvalidOp    Status = 1 << iota // operand outside the operation's domain
	DivideByZero                    // finite operand divided by zero
	Overflow                        // result magnitude above the largest representable value
	Underflow                       // result magnitude below the smallest normalized value
	Inexact                         // result was rounded
)

// Ok is the zero Status: no condition raised.
const Ok Status = 0

// Has reports whether every bit of flag is set in s.
func (s Status) Has(flag Status) bool {
	return s&flag == flag && flag != 0
}

// Any reports whether any condition is set in s.
func (s Status) Any() bool {
	return s != 0
}

// statusNames lists the conditions in rendering order. The order is
// fixed: InvalidOp, DivideByZero, Overflow, Underflow, Inexact.
var statusNames = [...]struct {
	bit  Status
	name string
}{
	{InvalidOp, "InvalidOp"},
	{DivideByZero, "DivideByZero"},
	{Overflow, "Overflow"},
	{Underflow, "Underflow"},
	{Inexact, "Inexact"},
}

// String renders s as "Ok" when no condition is set, and otherwise as
// a bracketed, comma-separated list of the set conditions in a fixed
// order, e.g. "[Overflow,Inexact]". A non-zero Status none of whose
// bits are known (an engine newer than this package) renders as its
// raw value; String never fails.
func (s Status) String() string {
	if s == 0 {
		return "Ok"
	}
	var names []string
	for _, f := range statusNames {
		if s&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	if names == nil {
		return "Status(0x" + strconv.FormatUint(uint64(s), 16) + ")"
	}
	return "[" + strings.Join(names, ",") + "]"
}
