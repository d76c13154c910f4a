// 3 Aug 2020

package seq

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mapFile maps a file read-only and returns a reader over its bytes and
// a function to unmap it. Empty files cannot be mapped, and neither can
// pipes, so for those we fall back to reading from the file itself.
func mapFile(fp *os.File) (io.Reader, func() error, error) {
	nothing := func() error { return nil }
	fi, err := fp.Stat()
	if err != nil {
		return nil, nothing, err
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		return fp, nothing, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, nothing, err
	}
	return bytes.NewReader(mm), mm.Unmap, nil
}
