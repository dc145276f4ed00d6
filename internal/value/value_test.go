package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatNs(t *testing.T) {
	cases := []struct {
		ns   int64
		want string
	}{
		{500, "500ns"},
		{1500, "1.500us"},
		{1500000, "1.500ms"},
		{1500000000, "1.5000s"},
	}
	for _, c := range cases {
		v, err := Format(NewNs(c.ns))
		require.NoError(t, err)
		require.Equal(t, c.want, v.StrString())
	}
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{512, "512B"},
		{4096, "4KiB"},
		{1 << 20, "1MiB"},
	}
	for _, c := range cases {
		v, err := Format(NewBytes(c.n))
		require.NoError(t, err)
		require.Equal(t, c.want, v.StrString())
	}
}

func TestFormatUnformattable(t *testing.T) {
	_, err := Format(Value{Kind: None})
	require.Error(t, err)
}

func TestFormatArrayPreservesShape(t *testing.T) {
	arr := NewArray2D([]Value{NewNs(1), NewNs(2), NewNs(3), NewNs(4)}, 2, 2)
	formatted, err := Format(arr)
	require.NoError(t, err)
	require.Equal(t, arr.Rows, formatted.Rows)
	require.Equal(t, arr.Cols, formatted.Cols)
	require.Equal(t, len(arr.Items), len(formatted.Items))
}

func TestBytesPerSecond(t *testing.T) {
	v, err := BytesPerSecond(NewNs(1e9), 4096)
	require.NoError(t, err)
	require.Equal(t, Bps, v.Kind)
	require.Equal(t, int64(4096), v.Scalar)
}

func TestBytesPerSecondZeroNs(t *testing.T) {
	v, err := BytesPerSecond(NewNs(0), 4096)
	require.NoError(t, err)
	require.Equal(t, int64(0), v.Scalar)
}

func TestReduceScalarMinMaxIgnoreZero(t *testing.T) {
	items := []Value{NewNs(0), NewNs(300), NewNs(100), NewNs(500)}

	min, err := ReduceScalar(items, AggMin)
	require.NoError(t, err)
	require.Equal(t, int64(100), min.Scalar)

	max, err := ReduceScalar(items, AggMax)
	require.NoError(t, err)
	require.Equal(t, int64(500), max.Scalar)
}

func TestReduceScalarAvgAndTotal(t *testing.T) {
	items := []Value{NewNs(100), NewNs(200), NewNs(300)}

	avg, err := ReduceScalar(items, AggAvg)
	require.NoError(t, err)
	require.Equal(t, int64(200), avg.Scalar)

	total, err := ReduceScalar(items, AggTotal)
	require.NoError(t, err)
	require.Equal(t, int64(600), total.Scalar)
}

func TestReduceScalarMixedKindsRejected(t *testing.T) {
	_, err := ReduceScalar([]Value{NewNs(1), NewBps(1)}, AggTotal)
	require.Error(t, err)
}

func TestReduceScalarEmptyRejected(t *testing.T) {
	_, err := ReduceScalar(nil, AggTotal)
	require.Error(t, err)
}
