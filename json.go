package fixedpoint

import (
	"encoding/json"
	"math"
)

// float64 values at or beyond this bound cannot be converted to int64.
const maxFloat = float64(math.MaxInt64)

// MarshalJSON implements json.Marshaler. The value is encoded as a JSON
// number through the Float32 conversion.
func (v Value[T, D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Float32())
}

// UnmarshalJSON implements json.Unmarshaler. The incoming JSON number
// is scaled by 10^D, truncated toward zero and range-checked into the
// storage type; a value that does not fit is an error.
func (v *Value[T, D]) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err != nil {
		return Error.Wrap(err)
	}
	scaled := number * float64(v.Exp())
	if math.IsNaN(scaled) || scaled >= maxFloat || scaled <= -maxFloat {
		return Error.New("%v does not fit in %T", number, v.Stored)
	}
	stored := int64(scaled)
	if int64(T(stored)) != stored {
		return Error.New("%v does not fit in %T", number, v.Stored)
	}
	v.Stored = T(stored)
	return nil
}
