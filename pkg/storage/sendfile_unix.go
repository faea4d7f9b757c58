//go:build unix

package storage

import (
	"io"
	"os"
	"syscall"
)

// sendfileChunk caps a single Sendfile call so the length argument fits in
// an int on 32-bit platforms.
const sendfileChunk = 1 << 30

// appendPartFile copies src into dst through the kernel. Filesystems that
// refuse sendfile get a plain buffered copy instead, provided nothing has
// been written yet.
func appendPartFile(dst, src *os.File) (int64, error) {
	info, err := src.Stat()
	if err != nil {
		return 0, err
	}
	remaining := info.Size()
	if remaining == 0 {
		return 0, nil
	}

	dstFd := int(dst.Fd())
	srcFd := int(src.Fd())

	var written int64
	for remaining > 0 {
		n := remaining
		if n > sendfileChunk {
			n = sendfileChunk
		}
		sent, err := syscall.Sendfile(dstFd, srcFd, nil, int(n))
		if err != nil {
			if written == 0 && sendfileRefused(err) {
				if _, err := src.Seek(0, io.SeekStart); err != nil {
					return 0, err
				}
				return io.Copy(dst, src)
			}
			return written, err
		}
		if sent == 0 {
			break
		}
		written += int64(sent)
		remaining -= int64(sent)
	}
	return written, nil
}

func sendfileRefused(err error) bool {
	return err == syscall.EINVAL || err == syscall.ENOSYS ||
		err == syscall.ENOTSUP || err == syscall.EOPNOTSUPP
}
