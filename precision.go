package fixedpoint

// Precision fixes the number of decimal digits of a Value.
//
// Each precision is a distinct tag type, so values with different
// precisions are different types: mixing them is a compile error, not a
// runtime one. The interface is sealed; D0 through D9 cover every
// precision whose scale exponent fits the supported storage types
// (10^10 already exceeds 32 bits).
type Precision interface {
	digits() uint8
}

// Precision tags.
type (
	D0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D0) digits() uint8 { return 0 }
func (D1) digits() uint8 { return 1 }
func (D2) digits() uint8 { return 2 }
func (D3) digits() uint8 { return 3 }
func (D4) digits() uint8 { return 4 }
func (D5) digits() uint8 { return 5 }
func (D6) digits() uint8 { return 6 }
func (D7) digits() uint8 { return 7 }
func (D8) digits() uint8 { return 8 }
func (D9) digits() uint8 { return 9 }

// pow10[i] = 10^i for every exponent representable in an int64.
var pow10 = [...]int64{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000,
	100000000000000000, 1000000000000000000,
}
