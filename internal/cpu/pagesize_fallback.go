//go:build !unix && !windows

package cpu

func discoverPageSize() int {
	return WantPageSize
}
