package fixedpoint

import "fmt"

// String returns the canonical form "integer.decimal".
//
// The fractional part is rendered with trailing zeros stripped and at
// least one digit retained, so whole numbers render as "1.0". Only
// zeros are elided; no rounding ever occurs here. Values in (-1, 0)
// keep their sign even though the integer part alone is zero.
func (v Value[T, D]) String() string {
	decimal := int64(v.Decimal())
	if decimal < 0 {
		decimal = -decimal
	}
	if v.DecimalLength() == 0 || decimal == 0 {
		return fmt.Sprintf("%d.0", v.Integer())
	}
	length := int(v.DecimalLength())
	for decimal%10 == 0 {
		decimal /= 10
		length--
	}
	integer := v.Integer()
	if integer == 0 && v.Stored < 0 {
		return fmt.Sprintf("-0.%0*d", length, decimal)
	}
	return fmt.Sprintf("%d.%0*d", integer, length, decimal)
}

// MarshalText implements encoding.TextMarshaler.
func (v Value[T, D]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
