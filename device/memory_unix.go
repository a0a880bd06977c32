//go:build linux

package device

import "golang.org/x/sys/unix"

// systemMemory reports total physical memory in bytes, used to size
// the device's reported GlobalMemory and MaxAllocation.
func systemMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return defaultGlobalMemory
	}
	return uint64(info.Totalram) * uint64(info.Unit)
}
