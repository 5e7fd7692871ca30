package fixedpoint

// Integer is the set of storage types a Value may be backed by.
//
// Storage is capped at 32 bits so that every stored value, scaled or
// not, is exactly representable in the int64 intermediates used for
// parsing, formatting and float conversion.
type Integer interface {
	int8 | int16 | int32 | uint8 | uint16 | uint32
}

// Value is a fixed point base 10 decimal number.
//
// The numeric value is Stored / 10^D. The sign of Stored is the sign of
// the whole value; there is no separate sign field.
type Value[T Integer, D Precision] struct {
	Stored T
}

// New returns a value from an integer already scaled to decimal
// fractional digits, rescaled up to the precision D.
//
// decimal must not exceed D; narrowing through New is not supported and
// callers must pre-truncate.
func New[T Integer, D Precision](number T, decimal uint8) Value[T, D] {
	var d D
	return Value[T, D]{Stored: number * T(pow10[d.digits()-decimal])}
}

// DecimalLength returns the precision D.
func (v Value[T, D]) DecimalLength() uint8 {
	var d D
	return d.digits()
}

// Exp returns the scale exponent 10^D.
func (v Value[T, D]) Exp() int64 {
	var d D
	return pow10[d.digits()]
}

// Integer returns the integer part. Division truncates toward zero and
// follows the sign of the stored value: at precision 2, stored -110 has
// integer part -1.
func (v Value[T, D]) Integer() T {
	return v.Stored / T(v.Exp())
}

// Decimal returns the fractional part scaled to D digits. The remainder
// keeps the sign of the stored value, so Integer()*10^D + Decimal()
// always reconstructs Stored.
func (v Value[T, D]) Decimal() T {
	return v.Stored % T(v.Exp())
}

// Div divides the stored integer by n, truncating toward zero.
//
// The divisor is a dimensionless count, not another fixed-point
// quantity: truncation applies to the stored representation, so 1.0 at
// precision 1 (stored 10) divided by 3 is stored 3, i.e. 0.3. Division
// by zero panics per Go integer semantics.
func (v Value[T, D]) Div(n T) Value[T, D] {
	return Value[T, D]{Stored: v.Stored / n}
}

// Float32 returns the value widened to a float32.
func (v Value[T, D]) Float32() float32 {
	return float32(int64(v.Stored)) / float32(v.Exp())
}
