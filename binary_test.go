package fixedpoint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name   string
		stored int16
		data   []byte
	}

	tcs := []TC{
		{
			name:   "+0",
			stored: 0,
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name:   "+1",
			stored: 1,
			data: []byte{
				0b0000_0010,
			},
		},
		{
			name:   "-1",
			stored: -1,
			data: []byte{
				0b0000_0011,
			},
		},
		{
			name:   "+127",
			stored: 127,
			data: []byte{
				0b1111_1110,
			},
		},
		{
			name:   "-127",
			stored: -127,
			data: []byte{
				0b1111_1111,
			},
		},
		{
			name:   "+32767",
			stored: 32767,
			data: []byte{
				0b1111_1111,
				0b1111_1110,
			},
		},
		{
			name:   "-32767",
			stored: -32767,
			data: []byte{
				0b1111_1111,
				0b1111_1111,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				v := Value[int16, D2]{Stored: tc.stored}
				data, err := v.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				var v Value[int16, D2]
				err := v.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.stored, v.Stored)
			})
		})
	}
}

func TestBinaryUnmarshalErrors(t *testing.T) {
	var v Value[uint8, D1]

	require.Error(t, v.UnmarshalBinary(nil))
	require.Error(t, v.UnmarshalBinary(make([]byte, 9)))

	// 300 does not fit an uint8: 300<<1 = 600 = 0x0258.
	require.Error(t, v.UnmarshalBinary([]byte{0x02, 0x58}))

	// Negative values do not fit unsigned storage.
	require.Error(t, v.UnmarshalBinary([]byte{0b0000_0011}))
}

func BenchmarkBinaryMarshal(b *testing.B) {
	v := Value[int32, D2]{Stored: -123456}
	for n := 0; n < b.N; n++ {
		_, err := v.MarshalBinary()
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkBinaryUnmarshal(b *testing.B) {
	v := Value[int32, D2]{Stored: -123456}
	data, err := v.MarshalBinary()
	if err != nil {
		b.Fatalf("%+v", err)
	}

	for n := 0; n < b.N; n++ {
		var u Value[int32, D2]
		err := u.UnmarshalBinary(data)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
