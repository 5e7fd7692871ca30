// Package fixedpoint provides a fixed point base 10 decimal number
// with a compile-time precision.
//
// The equation for a value is:
//
//	number = Stored / 10^D
//
// Where Stored is a scaled integer and D is the precision, the number
// of decimal digits after the point. For example:
//
//	1.25 = 125 / 10^2
//
// D is part of the type, not of the value: a Value[int32, D2] and a
// Value[int32, D3] are distinct types and cannot be mixed, so a
// precision mismatch is a compile error rather than a runtime check.
// The storage type ranges from 8 to 32 bits; arithmetic, parsing and
// formatting cost no more than plain integer operations, which makes
// the type usable where floating point is unavailable or undesirable.
//
// # Construction
//
// A value is constructed from an integer already scaled to a known
// number of fractional digits:
//
//	v := fixedpoint.New[int16, fixedpoint.D2](11, 1) // 1.1, stored 110
//
// from a string at run time:
//
//	v, err := fixedpoint.Parse[int16, fixedpoint.D2]("1.1")
//
// or from a decimal literal token, computed with exact integer
// arithmetic at build time by cmd/fixedgen, or at program start:
//
//	var rate = fixedpoint.MustLit[uint16, fixedpoint.D3]("0.25")
//
// # Formatting
//
// String renders the canonical form "integer.decimal": the fractional
// part keeps up to D digits with trailing zeros stripped and at least
// one digit retained, so whole numbers render with ".0". Parsing
// truncates excess fractional digits toward zero. No operation ever
// rounds.
//
// # Serialization
//
// Values marshal to JSON as plain numbers through the float conversion
// and unmarshal by scaling and truncating the incoming number, failing
// when it does not fit the storage type. The binary encoding is the
// stored integer alone, big-endian with a trailing sign bit; the
// precision travels in the type.
package fixedpoint
