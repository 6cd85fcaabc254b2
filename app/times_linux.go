//go:build linux

package app

import (
	"os"
	"syscall"
	"time"
)

// fileTimes extracts the modification time and the closest available
// approximation of a creation time. Linux exposes no birth time through
// Stat, so the inode change time stands in.
func fileTimes(info os.FileInfo) (modify, create time.Time) {
	modify = info.ModTime()
	create = modify
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		create = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return modify, create
}
