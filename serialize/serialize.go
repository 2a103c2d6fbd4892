// Package serialize implements the Instruction Tape's on-disk format:
// a native-endian, 8-byte state-count header followed by the raw
// state bytes, exactly as spec.md §4.6/§6 describes. There is no magic
// number, no version field, and no checksum — the format is as bare as
// the source's fwrite/fread pair, and this package does not add any of
// those things on top of it.
package serialize

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/jsalzbergedu/fst-fast-system/tape"
)

// ErrIO wraps the underlying *os.PathError/io errors Dump and Load
// surface, giving callers a single sentinel to errors.Is against
// regardless of which step (open, header, body) failed.
var ErrIO = errors.New("serialize: I/O error")

// sizeTWidth is the width, in bytes, of the header's state-count field:
// the source's native `size_t` on 64-bit platforms. The header is 8 bytes
// on every platform, including 32-bit ones where `size_t` is 4 bytes.
const sizeTWidth = 8

// Options controls how Load reads a dump file back into memory.
type Options struct {
	// UseMmap memory-maps the file instead of reading it into a
	// freshly allocated buffer. Only honored on unix-family GOOS; the
	// !unix build maps it onto a plain read regardless of this field.
	// Default: true.
	UseMmap bool
}

// DefaultOptions returns the Options Load uses when none are given:
// UseMmap true, favoring the zero-copy path.
func DefaultOptions() Options {
	return Options{UseMmap: true}
}

// Dump writes t's finished states to path: an 8-byte native-endian state
// count, followed by state count * tape.StateSize raw bytes. Dump always
// uses plain buffered file I/O; a dump is a single sequential write, so
// there is nothing for mmap to buy here.
func Dump(t *tape.Tape, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var header [sizeTWidth]byte
	nativeEndian.PutUint64(header[:], uint64(t.Length()))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := w.Write(t.Raw()); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return f.Sync()
}

// Load reads a tape previously written by Dump, using DefaultOptions.
func Load(path string) (*tape.Tape, error) {
	return LoadOptions(path, DefaultOptions())
}

// LoadOptions is Load with an explicit Options, letting callers force
// the plain-read path (UseMmap: false) even on unix.
func LoadOptions(path string, opts Options) (*tape.Tape, error) {
	buf, err := readBody(path, opts)
	if err != nil {
		return nil, err
	}
	if len(buf) < sizeTWidth {
		return nil, fmt.Errorf("%w: dump file shorter than header", ErrIO)
	}
	stateCount := int(nativeEndian.Uint64(buf[:sizeTWidth]))
	body := buf[sizeTWidth:]
	if len(body) < stateCount*tape.StateSize {
		return nil, fmt.Errorf("%w: dump file shorter than header's state count declares", ErrIO)
	}
	return tape.FromRaw(body[:stateCount*tape.StateSize], stateCount), nil
}

// nativeEndian is the machine's own byte order, matching the source's
// fwrite of a raw size_t (no htonl-style normalization).
var nativeEndian = binary.NativeEndian
