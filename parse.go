package fixedpoint

import "math"

// Parse converts a string to a fixed-point value.
//
// The accepted grammar is [-]digits[.digits]. Anything else, including
// the empty string, a missing integer part, a bare trailing dot, a
// second dot, or a value that does not fit the storage type, fails with
// ErrParse. Fractional digits beyond the precision D are truncated
// toward zero, never rounded: "1.001" at precision 2 is stored as 100.
func Parse[T Integer, D Precision](s string) (Value[T, D], error) {
	var v Value[T, D]
	if err := v.UnmarshalText([]byte(s)); err != nil {
		return Value[T, D]{}, err
	}
	return v, nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same
// contract as Parse.
func (v *Value[T, D]) UnmarshalText(text []byte) error {
	var d D
	stored, err := parse(string(text), d.digits())
	if err != nil {
		return err
	}
	if int64(T(stored)) != stored {
		return Error.Wrap(ErrParse)
	}
	v.Stored = T(stored)
	return nil
}

// parse scans [-]digits[.digits] and returns the value scaled by
// 10^prec. All intermediates are int64, which bounds the fractional
// part at 18 digits before overflow; scale-down exponents beyond the
// pow10 table collapse the fractional contribution to zero instead of
// indexing out of range.
func parse(s string, prec uint8) (int64, error) {
	pos, width := 0, len(s)

	neg := pos < width && s[pos] == '-'
	if neg {
		pos++
	}

	start := pos
	var integer int64
	var ok bool
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		integer, ok = accum(integer, s[pos]-'0')
		if !ok {
			return 0, Error.Wrap(ErrParse)
		}
		pos++
	}
	if pos == start {
		return 0, Error.Wrap(ErrParse)
	}
	integer, ok = scaleUp(integer, int(prec))
	if !ok {
		return 0, Error.Wrap(ErrParse)
	}

	var frac int64
	if pos < width {
		if s[pos] != '.' {
			return 0, Error.Wrap(ErrParse)
		}
		pos++
		start = pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			frac, ok = accum(frac, s[pos]-'0')
			if !ok {
				return 0, Error.Wrap(ErrParse)
			}
			pos++
		}
		if pos == start || pos != width {
			return 0, Error.Wrap(ErrParse)
		}
		length := pos - start
		if length > 255 {
			length = 255
		}
		if int(prec) >= length {
			frac, ok = scaleUp(frac, int(prec)-length)
			if !ok {
				return 0, Error.Wrap(ErrParse)
			}
		} else if diff := length - int(prec); diff < len(pow10) {
			frac /= pow10[diff]
		} else {
			frac = 0
		}
	}

	total := integer + frac
	if total < integer {
		return 0, Error.Wrap(ErrParse)
	}
	if neg {
		total = -total
	}
	return total, nil
}

// accum appends one decimal digit to n, reporting overflow.
func accum(n int64, digit byte) (int64, bool) {
	if n > (math.MaxInt64-int64(digit))/10 {
		return 0, false
	}
	return n*10 + int64(digit), true
}

// scaleUp multiplies a non-negative n by 10^exp, reporting overflow.
func scaleUp(n int64, exp int) (int64, bool) {
	if exp >= len(pow10) {
		return 0, n == 0
	}
	p := pow10[exp]
	if n > math.MaxInt64/p {
		return 0, false
	}
	return n * p, true
}
