package flashbench_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flashbench-go/flashbench"
)

func TestRunAgainstMockDevice(t *testing.T) {
	mock := flashbench.NewMockDevice(1 << 20)

	prog := flashbench.Seq(
		&flashbench.OpNode{Code: flashbench.OpWriteOne},
	)

	v, err := flashbench.Run(prog, mock, 0, mock.Size(), 4096)
	require.NoError(t, err)
	require.Equal(t, "ns", v.Kind.String())

	reads, writes, erases := mock.CallCounts()
	require.Equal(t, 0, reads)
	require.Equal(t, 1, writes)
	require.Equal(t, 0, erases)

	data := mock.Bytes()
	for _, b := range data[:4096] {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestMockDeviceWrapsPosition(t *testing.T) {
	mock := flashbench.NewMockDevice(4096)

	prog := &flashbench.OpNode{Code: flashbench.OpRead}
	_, err := flashbench.Run(prog, mock, 8192, mock.Size(), 512)
	require.NoError(t, err)

	reads, _, _ := mock.CallCounts()
	require.Equal(t, 1, reads)
}

func TestMetricsObserverRecordsMockWrites(t *testing.T) {
	mock := flashbench.NewMockDevice(1 << 20)
	metrics := flashbench.NewMetrics()
	observer := flashbench.NewMetricsObserver(metrics)

	v, err := flashbench.Run(&flashbench.OpNode{Code: flashbench.OpWriteZero}, mock, 0, mock.Size(), 4096)
	require.NoError(t, err)
	observer.ObserveWrite(4096, v.Scalar, nil)

	snap := metrics.Snapshot()
	require.Equal(t, uint64(1), snap.WriteOps)
	require.Equal(t, uint64(4096), snap.WriteBytes)
}
