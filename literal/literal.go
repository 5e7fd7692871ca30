package literal

import (
	"math"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("literal")

// DefaultSuffix is the storage kind to assume when a token carries no
// suffix and nothing else determines the storage type.
const DefaultSuffix = "i32"

// suffixes are the recognized storage kinds, mirroring the storage
// types of the fixedpoint package.
var suffixes = map[string]bool{
	"i8":  true,
	"u8":  true,
	"i16": true,
	"u16": true,
	"i32": true,
	"u32": true,
}

// Literal is a decomposed decimal literal token.
type Literal struct {
	Negative bool
	Int      string // integer digits, separators removed
	Frac     string // fractional digits, separators removed
	Suffix   string // storage kind, empty if the token carries none
}

// Parse decomposes a literal token.
func Parse(token string) (lit Literal, err error) {
	defer Error.WrapP(&err)

	rest := token
	if strings.HasPrefix(rest, "-") {
		lit.Negative = true
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	}

	var pos int
	lit.Int, pos, err = digits(rest, 0)
	if err != nil {
		return Literal{}, err
	}

	if pos < len(rest) && rest[pos] == '.' {
		lit.Frac, pos, err = digits(rest, pos+1)
		if err != nil {
			return Literal{}, err
		}
	}

	lit.Suffix = rest[pos:]
	if lit.Suffix != "" && !suffixes[lit.Suffix] {
		return Literal{}, Error.New("unknown suffix %q in %q", rest[pos:], token)
	}

	return lit, nil
}

// digits scans a run of decimal digits starting at pos, skipping
// underscore separators. A separator is only valid after a digit, and
// the run must contain at least one digit.
func digits(s string, pos int) (string, int, error) {
	var b strings.Builder
	for pos < len(s) {
		c := s[pos]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '_' && b.Len() > 0:
			// separator
		default:
			if b.Len() == 0 {
				return "", 0, Error.New("digits expected at %q", s[pos:])
			}
			return b.String(), pos, nil
		}
		pos++
	}
	if b.Len() == 0 {
		return "", 0, Error.New("digits expected")
	}
	return b.String(), pos, nil
}

// Inferred returns the precision implied by the token: the number of
// fractional digits, capped at 255.
func (l Literal) Inferred() uint8 {
	if len(l.Frac) > 255 {
		return 255
	}
	return uint8(len(l.Frac))
}

// Scaled returns the literal value multiplied by 10^precision,
// truncated toward zero. Fractional digits beyond the precision are
// discarded without rounding; missing ones pad with zeros. Overflow of
// the int64 result is an error.
func (l Literal) Scaled(precision uint8) (int64, error) {
	frac := l.Frac
	if int(precision) < len(frac) {
		frac = frac[:precision]
	}

	var scaled int64
	for _, part := range []string{l.Int, frac} {
		for i := 0; i < len(part); i++ {
			digit := int64(part[i] - '0')
			if scaled > (math.MaxInt64-digit)/10 {
				return 0, Error.New("%s.%s overflows at precision %d", l.Int, l.Frac, precision)
			}
			scaled = scaled*10 + digit
		}
	}
	for pad := int(precision) - len(frac); pad > 0; pad-- {
		if scaled > math.MaxInt64/10 {
			return 0, Error.New("%s.%s overflows at precision %d", l.Int, l.Frac, precision)
		}
		scaled *= 10
	}

	if l.Negative {
		scaled = -scaled
	}
	return scaled, nil
}
