package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flashbench-go/flashbench/internal/coreerr"
)

func TestHelloWorldSequence(t *testing.T) {
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	prog := Seq(
		&OpNode{Code: OpPrint, String: "hi\n"},
	)

	_, err := Execute(prog, nil, 0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "hi\n", buf.String())
}

func TestArityMismatch(t *testing.T) {
	// PRINT requires a String; omit it to trigger BadArity.
	_, err := Execute(&OpNode{Code: OpPrint}, nil, 0, 0, 0)
	require.Error(t, err)
	require.True(t, coreerr.IsCode(err, coreerr.CodeBadArity))
}

func TestUnknownOpcode(t *testing.T) {
	_, err := Execute(&OpNode{Code: Opcode(999)}, nil, 0, 0, 0)
	require.Error(t, err)
	require.True(t, coreerr.IsCode(err, coreerr.CodeUnknownOp))
}

func TestSequenceRequiresEnd(t *testing.T) {
	prog := &OpNode{
		Code: OpSequence,
		Num:  1,
		Children: []*OpNode{
			{Code: OpPrint, String: "x"},
			// missing END sentinel
			{Code: OpNewline},
		},
	}
	_, err := Execute(prog, nil, 0, 0, 0)
	require.Error(t, err)
	require.True(t, coreerr.IsCode(err, coreerr.CodeSyntaxError))
}

func TestLenPow2Monotonic(t *testing.T) {
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	defer func() { Stdout = old }()

	emit := Seq(
		&OpNode{Code: OpPrintf, Children: []*OpNode{{Code: OpLength}}},
		&OpNode{Code: OpNewline},
	)
	prog := &OpNode{
		Code:     OpLenPow2,
		Num:      4,
		Val:      1,
		Children: []*OpNode{emit},
	}

	_, err := Execute(prog, nil, 0, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n4\n8\n", buf.String())
}
