package regs

import (
	"github.com/Manu343726/sysregs/pkg/hw/bitfield"
	"github.com/Manu343726/sysregs/pkg/hw/sysreg"
)

// Execution state of the exception levels below EL2
type ExecutionState uint64

const (
	ExecutionState_AllLowerELsAreAarch32 ExecutionState = 0
	ExecutionState_EL1IsAarch64          ExecutionState = 1
)

func (s ExecutionState) String() string {
	return HCR_EL2_RW.Symbol(s)
}

type BarrierShareability uint64

const (
	BarrierShareability_NoEffect       BarrierShareability = 0
	BarrierShareability_InnerShareable BarrierShareability = 1
	BarrierShareability_OuterShareable BarrierShareability = 2
	BarrierShareability_FullSystem     BarrierShareability = 3
)

func (s BarrierShareability) String() string {
	return HCR_EL2_BSU.Symbol(s)
}

func hcrFlag(name string, offset int, description string) *bitfield.Field[uint64] {
	return &bitfield.Field[uint64]{
		Name:        name,
		Offset:      offset,
		Bits:        1,
		Description: description,
	}
}

var (
	HCR_EL2_RW = bitfield.NewEnumField[ExecutionState](&bitfield.Field[uint64]{
		Name:        "RW",
		Offset:      31,
		Bits:        1,
		Description: "Execution state control for lower Exception levels. RAO/WI if all lower Exception levels cannot use AArch32",
		Values: []bitfield.EnumValue[uint64]{
			{Name: "AllLowerELsAreAarch32", Value: uint64(ExecutionState_AllLowerELsAreAarch32), Description: "Lower levels are all AArch32"},
			{Name: "EL1IsAarch64", Value: uint64(ExecutionState_EL1IsAarch64), Description: "EL1 is AArch64, EL0 is determined by PSTATE.nRW"},
		},
	})

	HCR_EL2_DC = hcrFlag("DC", 12, "Default Cacheability. When set, Non-secure EL1&0 stage 1 behaves as if the MMU was disabled and HCR_EL2.VM was set")

	HCR_EL2_BSU = bitfield.NewEnumField[BarrierShareability](&bitfield.Field[uint64]{
		Name:        "BSU",
		Offset:      10,
		Bits:        2,
		Description: "Barrier Shareability upgrade. Minimum shareability domain applied to any barrier executed from Non-secure EL1 or EL0",
		Values: []bitfield.EnumValue[uint64]{
			{Name: "NoEffect", Value: uint64(BarrierShareability_NoEffect)},
			{Name: "InnerShareable", Value: uint64(BarrierShareability_InnerShareable)},
			{Name: "OuterShareable", Value: uint64(BarrierShareability_OuterShareable)},
			{Name: "FullSystem", Value: uint64(BarrierShareability_FullSystem)},
		},
	})

	HCR_EL2_FB   = hcrFlag("FB", 9, "Force broadcast of TLB and instruction cache maintenance executed from Non-secure EL1 within the Inner Shareable domain")
	HCR_EL2_VSE  = hcrFlag("VSE", 8, "Virtual System Error/Asynchronous Abort pending. Only enabled when HCR_EL2.AMO is set")
	HCR_EL2_VI   = hcrFlag("VI", 7, "Virtual IRQ pending. Only enabled when HCR_EL2.IMO is set")
	HCR_EL2_VF   = hcrFlag("VF", 6, "Virtual FIQ pending. Only enabled when HCR_EL2.FMO is set")
	HCR_EL2_AMO  = hcrFlag("AMO", 5, "Route physical Asynchronous External Aborts and SError interrupts to EL2, enabling their virtual counterparts")
	HCR_EL2_IMO  = hcrFlag("IMO", 4, "Route physical IRQs to EL2, enabling virtual IRQs")
	HCR_EL2_FMO  = hcrFlag("FMO", 3, "Route physical FIQs to EL2, enabling virtual FIQs")
	HCR_EL2_PTW  = hcrFlag("PTW", 2, "Protected Table Walk. Stage 1 table walks that resolve to Device memory generate a stage 2 Permission fault")
	HCR_EL2_SWIO = hcrFlag("SWIO", 1, "Set/Way Invalidation Override. Data cache invalidate by set/way performs a clean and invalidate")
	HCR_EL2_VM   = hcrFlag("VM", 0, "Virtualization MMU enable for Non-secure EL1 and EL0 stage 2 address translation")

	HCR_EL2_Layout = bitfield.NewLayout(&bitfield.Layout[uint64]{
		Name:        "HCR_EL2",
		Description: "Hypervisor Configuration Register",
		Details:     "Provides configuration controls for virtualization, including defining whether various operations are trapped to EL2",
	},
		HCR_EL2_RW,
		HCR_EL2_DC,
		HCR_EL2_BSU,
		HCR_EL2_FB,
		HCR_EL2_VSE,
		HCR_EL2_VI,
		HCR_EL2_VF,
		HCR_EL2_AMO,
		HCR_EL2_IMO,
		HCR_EL2_FMO,
		HCR_EL2_PTW,
		HCR_EL2_SWIO,
		HCR_EL2_VM,
	)
)

var HCR_EL2 = sysreg.NewReadWrite(HCR_EL2_Layout, readHCREL2, writeHCREL2)
