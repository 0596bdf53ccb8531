//go:build unix

package cpu

import "golang.org/x/sys/unix"

func discoverPageSize() int {
	return unix.Getpagesize()
}
