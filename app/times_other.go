//go:build !linux

package app

import (
	"os"
	"time"
)

func fileTimes(info os.FileInfo) (modify, create time.Time) {
	modify = info.ModTime()
	return modify, modify
}
