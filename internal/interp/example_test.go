package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flashbench-go/flashbench/internal/device"
)

// openTestDevice backs a Device with a regular file; O_DIRECT against
// a plain file is supported on most Linux filesystems, so this stands
// in for a real block device in unit tests.
func openTestDevice(t *testing.T) *device.Device {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backing.img")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(1<<20))
	require.NoError(t, f.Close())

	d, err := device.Open(path, device.Options{SkipRealtimePriority: true})
	if err != nil {
		t.Skipf("O_DIRECT unsupported on this filesystem: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

// TestHelloWorldProgram reproduces the source tool's literal
// "Hello, World!" demonstration program: greet, then reduce eight
// reads across four geometrically growing lengths down to their
// minimum latency, then a trailing newline.
func TestHelloWorldProgram(t *testing.T) {
	dev := openTestDevice(t)

	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	prog := Seq(
		&OpNode{Code: OpPrint, String: "Hello, World!\n"},
		&OpNode{
			Code: OpPrintf,
			Children: []*OpNode{
				{
					Code:      OpReduce,
					Num:       4,
					Aggregate: AggMin,
					Children: []*OpNode{
						{
							Code: OpLenPow2,
							Num:  4,
							Val:  4096,
							Children: []*OpNode{
								{
									Code: OpOffLin,
									Num:  8,
									Val:  4096,
									Children: []*OpNode{
										{Code: OpRead},
									},
								},
							},
						},
					},
				},
			},
		},
		&OpNode{Code: OpPrint, String: "\n"},
	)

	_, err := Execute(prog, dev, 0, 1<<20, 1)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Hello, World!\n")
}

func TestReduceMinOfOffLinReads(t *testing.T) {
	dev := openTestDevice(t)

	prog := &OpNode{
		Code:      OpReduce,
		Num:       8,
		Aggregate: AggMin,
		Children: []*OpNode{
			{
				Code: OpOffLin,
				Num:  8,
				Val:  4096,
				Children: []*OpNode{
					{Code: OpRead},
				},
			},
		},
	}

	v, err := Execute(prog, dev, 0, 0, 512)
	require.NoError(t, err)
	require.Equal(t, "ns", v.Kind.String())
	require.Greater(t, v.Scalar, int64(0))
}

func TestOffRandProducesBoundedPermutation(t *testing.T) {
	dev := openTestDevice(t)

	prog := &OpNode{
		Code: OpOffRand,
		Num:  64,
		Val:  4096,
		Children: []*OpNode{
			{Code: OpRead},
		},
	}

	v, err := Execute(prog, dev, 0, 1<<20, 512)
	require.NoError(t, err)
	require.Greater(t, v.Rows, uint32(0))
	require.LessOrEqual(t, v.Rows, uint32(64))
}
