// Command flash-erase issues a single BLKDISCARD over a byte range of
// a block device: flash-erase <device> <start> <length>.
package main

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/sys/unix"
)

// blkDiscard is the Linux BLKDISCARD ioctl request number,
// _IO(0x12, 119) in linux/fs.h.
const blkDiscard = 0x1277

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintf(os.Stderr, "usage: %s <device> <start> <length>\n", os.Args[0])
		os.Exit(1)
	}

	path := os.Args[1]
	start, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flash-erase: invalid start %q: %v\n", os.Args[2], err)
		os.Exit(1)
	}
	length, err := strconv.ParseUint(os.Args[3], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flash-erase: invalid length %q: %v\n", os.Args[3], err)
		os.Exit(1)
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_DIRECT, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flash-erase: open: %v\n", err)
		os.Exit(1)
	}
	defer unix.Close(fd)

	fmt.Printf("erasing %d to %d on %s\n", start, start+length, path)

	rng := [2]uint64{start, length}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(blkDiscard), uintptr(unsafe.Pointer(&rng[0])))
	if errno != 0 {
		fmt.Fprintf(os.Stderr, "flash-erase: ioctl: %v\n", errno)
		os.Exit(int(errno))
	}
}
