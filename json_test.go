package fixedpoint_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	fixedpoint "github.com/qiuchengxuan/fixed-point"
)

func TestJSONMarshal(t *testing.T) {
	v := fixedpoint.Value[uint16, fixedpoint.D2]{Stored: 125}
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.Equal(t, "1.25", string(data))

	n := fixedpoint.Value[int16, fixedpoint.D2]{Stored: -125}
	data, err = json.Marshal(n)
	require.NoError(t, err)
	require.Equal(t, "-1.25", string(data))
}

func TestJSONUnmarshal(t *testing.T) {
	var v fixedpoint.Value[uint16, fixedpoint.D2]
	require.NoError(t, json.Unmarshal([]byte("1.25"), &v))
	require.Equal(t, uint16(125), v.Stored)

	// Excess precision truncates toward zero.
	require.NoError(t, json.Unmarshal([]byte("0.119"), &v))
	require.Equal(t, uint16(11), v.Stored)

	var n fixedpoint.Value[int16, fixedpoint.D2]
	require.NoError(t, json.Unmarshal([]byte("-1.25"), &n))
	require.Equal(t, int16(-125), n.Stored)
}

func TestJSONUnmarshalRange(t *testing.T) {
	var v fixedpoint.Value[uint8, fixedpoint.D1]
	require.Error(t, json.Unmarshal([]byte("700"), &v))

	var n fixedpoint.Value[uint16, fixedpoint.D2]
	require.Error(t, json.Unmarshal([]byte("-1.25"), &n))
	require.Error(t, json.Unmarshal([]byte(`"1.25"`), &n))
	require.Error(t, json.Unmarshal([]byte("1e30"), &n))
}

func TestJSONRoundtrip(t *testing.T) {
	type TC struct {
		name   string
		stored int16
	}

	tcs := []TC{
		{"0.0", 0},
		{"1.25", 125},
		{"-1.25", -125},
		{"-0.01", -1},
		{"300.0", 30000},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v := fixedpoint.Value[int16, fixedpoint.D2]{Stored: tc.stored}

			data, err := json.Marshal(v)
			require.NoError(t, err)

			var u fixedpoint.Value[int16, fixedpoint.D2]
			require.NoError(t, json.Unmarshal(data, &u))
			require.Equal(t, v.Stored, u.Stored, spew.Sdump(v, u))
		})
	}
}
