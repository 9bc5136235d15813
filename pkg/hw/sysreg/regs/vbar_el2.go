package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

var VBAR_EL2_Layout = bitfield.NewLayout(&bitfield.Layout[uint64]{
	Name:        "VBAR_EL2",
	Description: "Vector Base Address Register",
	Details:     "Holds the vector base address for any exception that is taken to EL2",
})

var VBAR_EL2 = sysreg.NewReadWrite(VBAR_EL2_Layout, readVBAREL2, writeVBAREL2)
