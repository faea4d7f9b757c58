//go:build !unix

package storage

import (
	"io"
	"os"
)

// appendPartFile copies src into dst. Platforms without sendfile use a
// buffered copy.
func appendPartFile(dst, src *os.File) (int64, error) {
	return io.Copy(dst, src)
}
