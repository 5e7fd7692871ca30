package fixedpoint

import "github.com/qiuchengxuan/fixed-point/literal"

// MustLit returns the value of a decimal literal token such as "1.25",
// "-1.1i16" or "1_1.0_1u16". The token's storage suffix, when present,
// must name the storage type T. Fractional digits beyond the precision
// D are truncated toward zero; the computation is exact integer
// arithmetic and never goes through floating point.
//
// MustLit panics on malformed tokens, mismatched suffixes and values
// that do not fit T. It is intended for package-level variable
// initializers only; use cmd/fixedgen to move the computation to build
// time entirely.
func MustLit[T Integer, D Precision](token string) Value[T, D] {
	var d D
	lit, err := literal.Parse(token)
	if err != nil {
		panic(err)
	}
	if suffix := suffixOf[T](); lit.Suffix != "" && lit.Suffix != suffix {
		panic(Error.New("literal %q has suffix %s, want %s", token, lit.Suffix, suffix))
	}
	scaled, err := lit.Scaled(d.digits())
	if err != nil {
		panic(err)
	}
	var v Value[T, D]
	if int64(T(scaled)) != scaled {
		panic(Error.New("literal %q does not fit in %T", token, v.Stored))
	}
	v.Stored = T(scaled)
	return v
}

// suffixOf names the storage kind of T in literal-token form.
func suffixOf[T Integer]() string {
	switch any(T(0)).(type) {
	case int8:
		return "i8"
	case uint8:
		return "u8"
	case int16:
		return "i16"
	case uint16:
		return "u16"
	case uint32:
		return "u32"
	default:
		return "i32"
	}
}
