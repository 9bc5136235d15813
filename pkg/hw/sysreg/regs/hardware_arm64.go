//go:build arm64

package regs

// Implemented in sysreg_arm64.s, each one a single MRS or MSR instruction

func readCCSIDREL1() uint32
func readCSSELREL1() uint32
func writeCSSELREL1(value uint32)
func readHCREL2() uint64
func writeHCREL2(value uint64)
func readHSTREL2() uint32
func writeHSTREL2(value uint32)
func readSCTLREL2() uint32
func writeSCTLREL2(value uint32)
func readSPSREL2() uint32
func writeSPSREL2(value uint32)
func readTTBR0EL2() uint64
func writeTTBR0EL2(value uint64)
func readVBAREL2() uint64
func writeVBAREL2(value uint64)
func readVTTBREL2() uint64
func writeVTTBREL2(value uint64)
