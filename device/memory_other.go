//go:build !linux

package device

// systemMemory falls back to a conservative default on platforms
// without a Sysinfo-style syscall.
func systemMemory() uint64 {
	return defaultGlobalMemory
}
