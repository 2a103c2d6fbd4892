//go:build unix

package serialize

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// readBody returns the full contents of path: mmap'd read-only when
// opts.UseMmap is set (the default), or a plain read otherwise. This
// mirrors the teacher's own x/sys-gated fast path (x/sys/cpu picks a
// SIMD primitive at runtime; here x/sys/unix picks a zero-copy load
// path), without changing what Load hands back to the caller — a []byte
// either way.
func readBody(path string, opts Options) ([]byte, error) {
	if !opts.UseMmap {
		return readBodyPlain(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	size := info.Size()
	if size == 0 {
		return nil, fmt.Errorf("%w: empty dump file", ErrIO)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrIO, err)
	}
	return data, nil
}

func readBodyPlain(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return buf, nil
}
