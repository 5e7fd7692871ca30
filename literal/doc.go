// Package literal parses source-level decimal literal tokens.
//
// A token has the shape:
//
//	[sign] digits ['.' digits] [suffix]
//
// Underscores may appear between digits as pure formatting and are
// ignored, so 1_1.0_1 denotes 11.01. The suffix names the storage kind
// (i8, u8, i16, u16, i32, u32) and defaults to i32.
//
// Scaling is exact integer arithmetic on the digit string: the literal
// value multiplied by 10^precision, with excess fractional digits
// truncated toward zero. No computation goes through floating point, so
// a generated constant is bit-identical to what runtime parsing of the
// same digits would produce.
package literal
