package sysreg

// Kind of access a register supports
type Capability uint

const (
	Capability_ReadOnly Capability = iota
	Capability_WriteOnly
	Capability_ReadWrite
)

func (c Capability) CanRead() bool {
	return c == Capability_ReadOnly || c == Capability_ReadWrite
}

func (c Capability) CanWrite() bool {
	return c == Capability_WriteOnly || c == Capability_ReadWrite
}

func (c Capability) String() string {
	switch c {
	case Capability_ReadOnly:
		return "RO"
	case Capability_WriteOnly:
		return "WO"
	case Capability_ReadWrite:
		return "RW"
	}

	return "??"
}
