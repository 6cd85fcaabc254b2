package app

import (
	"os"
	"strconv"
	"strings"
)

// hostRoots enumerates the mount points backed by real devices, the
// Unix equivalent of listing drive letters. When /proc/mounts cannot
// be read the filesystem root is used alone.
func hostRoots() ([]string, error) {
	data, err := os.ReadFile("/proc/mounts")
	if err != nil {
		return []string{"/"}, nil
	}

	var roots []string
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		roots = append(roots, unescapeMount(fields[1]))
	}
	if len(roots) == 0 {
		roots = []string{"/"}
	}
	return roots, nil
}

// unescapeMount decodes the octal escapes /proc/mounts uses for
// spaces, tabs, newlines and backslashes in mount points.
func unescapeMount(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
