//go:build !arm64

package regs

// Without the real registers, the accessors read and write the simulated bank

func readCCSIDREL1() uint32 {
	return uint32(Simulated.Load("CCSIDR_EL1"))
}

func readCSSELREL1() uint32 {
	return uint32(Simulated.Load("CSSELR_EL1"))
}

func writeCSSELREL1(value uint32) {
	Simulated.Store("CSSELR_EL1", uint64(value))
}

func readHCREL2() uint64 {
	return Simulated.Load("HCR_EL2")
}

func writeHCREL2(value uint64) {
	Simulated.Store("HCR_EL2", value)
}

func readHSTREL2() uint32 {
	return uint32(Simulated.Load("HSTR_EL2"))
}

func writeHSTREL2(value uint32) {
	Simulated.Store("HSTR_EL2", uint64(value))
}

func readSCTLREL2() uint32 {
	return uint32(Simulated.Load("SCTLR_EL2"))
}

func writeSCTLREL2(value uint32) {
	Simulated.Store("SCTLR_EL2", uint64(value))
}

func readSPSREL2() uint32 {
	return uint32(Simulated.Load("SPSR_EL2"))
}

func writeSPSREL2(value uint32) {
	Simulated.Store("SPSR_EL2", uint64(value))
}

func readTTBR0EL2() uint64 {
	return Simulated.Load("TTBR0_EL2")
}

func writeTTBR0EL2(value uint64) {
	Simulated.Store("TTBR0_EL2", value)
}

func readVBAREL2() uint64 {
	return Simulated.Load("VBAR_EL2")
}

func writeVBAREL2(value uint64) {
	Simulated.Store("VBAR_EL2", value)
}

func readVTTBREL2() uint64 {
	return Simulated.Load("VTTBR_EL2")
}

func writeVTTBREL2(value uint64) {
	Simulated.Store("VTTBR_EL2", value)
}
