package fixedpoint

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The stored integer is encoded big-endian with a trailing sign bit:
// the magnitude is shifted left by one and the low bit carries the
// sign. No leading zero bytes are emitted, but zero itself encodes as a
// single zero byte. The precision is part of the type and is not
// encoded.
func (v Value[T, D]) MarshalBinary() (data []byte, err error) {
	magnitude := int64(v.Stored)
	negative := magnitude < 0
	if negative {
		magnitude = -magnitude
	}

	u := uint64(magnitude) << 1
	if negative {
		u |= 1
	}

	length := 1
	for rest := u >> 8; rest != 0; rest >>= 8 {
		length++
	}

	data = make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		data[i] = byte(u)
		u >>= 8
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value[T, D]) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 || len(data) > 8 {
		return Error.New("invalid length: %d", len(data))
	}

	var u uint64
	for _, b := range data {
		u = u<<8 | uint64(b)
	}

	magnitude := int64(u >> 1)
	if u&1 == 1 {
		magnitude = -magnitude
	}
	if int64(T(magnitude)) != magnitude {
		return Error.New("%d does not fit in %T", magnitude, v.Stored)
	}

	v.Stored = T(magnitude)

	return nil
}
