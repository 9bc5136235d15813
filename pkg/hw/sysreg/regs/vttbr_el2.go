package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

var (
	VTTBR_EL2_VMID = &bitfield.Field[uint64]{
		Name:        "VMID",
		Offset:      48,
		Bits:        16,
		Description: "The VMID for the translation table. If the implementation has an 8-bit VMID, VMID[15:8] are RES0",
	}

	VTTBR_EL2_BADDR = baddrField()
	VTTBR_EL2_CnP   = cnpField()

	VTTBR_EL2_Layout = bitfield.NewLayout(&bitfield.Layout[uint64]{
		Name:        "VTTBR_EL2",
		Description: "Virtualization Translation Table Base Register",
		Details:     "Holds the base address of the translation table for the initial lookup for stage 2 of the Non-secure EL1&0 translation regime",
	}, VTTBR_EL2_VMID, VTTBR_EL2_BADDR, VTTBR_EL2_CnP)
)

// VTTBR_EL2 accessor
type VTTBREL2 struct {
	sysreg.ReadWrite[uint64]
}

// Returns the stage 2 translation table base address
func (r VTTBREL2) GetBaddr() uint64 {
	return getBaddr(r.ReadWrite, VTTBR_EL2_BADDR)
}

// Sets the stage 2 translation table base address, preserving VMID and CnP. Odd addresses lose bit 0
func (r VTTBREL2) SetBaddr(addr uint64) {
	setBaddr(r.ReadWrite, VTTBR_EL2_BADDR, addr)
}

var VTTBR_EL2 = VTTBREL2{sysreg.NewReadWrite(VTTBR_EL2_Layout, readVTTBREL2, writeVTTBREL2)}
