//go:build windows

package cpu

import "golang.org/x/sys/windows"

func discoverPageSize() int {
	var info windows.SystemInfo
	windows.GetSystemInfo(&info)
	return int(info.PageSize)
}
