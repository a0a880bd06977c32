package device

import "golang.org/x/sys/cpu"

// hasHostSIMD reports whether the host CPU's feature set was
// successfully probed. Device.HostSIMD is informational only: see
// DESIGN.md for why the CPU-backed device does not branch on specific
// instruction sets for table lookups.
func hasHostSIMD() bool {
	return cpu.Initialized
}
