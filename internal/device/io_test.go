package device

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenTimeReadWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backing.img")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create backing file: %v", err)
	}
	if err := f.Truncate(1 << 20); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	f.Close()

	d, err := Open(path, Options{SkipRealtimePriority: true})
	if err != nil {
		t.Skipf("O_DIRECT unsupported on this filesystem: %v", err)
	}
	defer d.Close()

	if d.Size() != 1<<20 {
		t.Fatalf("Size() = %d, want %d", d.Size(), 1<<20)
	}

	if _, err := d.TimeWrite(0, 4096, WriteOne); err != nil {
		t.Fatalf("TimeWrite: %v", err)
	}
	if _, err := d.TimeRead(0, 4096); err != nil {
		t.Fatalf("TimeRead: %v", err)
	}
}

func TestTimeEraseRequiresBlockDevice(t *testing.T) {
	t.Skip("BLKDISCARD requires a real block device, not exercised in unit tests")
}
