//go:build !unix

package serialize

import (
	"fmt"
	"os"
)

// readBody on non-unix GOOS always does a plain read; Options.UseMmap is
// accepted but has no effect here, since there is no portable mmap to
// reach for outside the unix family.
func readBody(path string, opts Options) ([]byte, error) {
	_ = opts
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return buf, nil
}
