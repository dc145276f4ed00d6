package device

import (
	"testing"
	"unsafe"

	"github.com/flashbench-go/flashbench/internal/constants"
)

func TestWrapPos(t *testing.T) {
	cases := []struct {
		pos, size, want int64
	}{
		{0, 1024, 0},
		{1024, 1024, 0},
		{1025, 1024, 1},
		{-1, 1024, 1023},
	}
	for _, c := range cases {
		if got := wrapPos(c.pos, c.size); got != c.want {
			t.Errorf("wrapPos(%d, %d) = %d, want %d", c.pos, c.size, got, c.want)
		}
	}
}

func TestAlignedBufferAlignment(t *testing.T) {
	buf := alignedBuffer(8192, 0x5A)
	if len(buf) != 8192 {
		t.Fatalf("len(buf) = %d, want 8192", len(buf))
	}
	if addr := uintptr(unsafe.Pointer(&buf[0])); addr%constants.PageAlignment != 0 {
		t.Fatalf("buf starts at %#x, not aligned to %d", addr, constants.PageAlignment)
	}
	for i, b := range buf {
		if b != 0x5A {
			t.Fatalf("buf[%d] = %#x, want 0x5a", i, b)
		}
	}
}

func TestTooBig(t *testing.T) {
	d := &Device{observer: noopObserver{}}
	_, err := d.TimeRead(0, constants.MaxBufferSize+1)
	if err == nil {
		t.Fatal("expected TooBig error for oversized read")
	}
}
