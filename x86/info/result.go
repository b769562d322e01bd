package info

import (
	"fmt"

	"github.com/colorfulnotion/x86info/x86"
)

// UsedRegister is a register read or written by an instruction.
type UsedRegister struct {
	Register x86.Register `json:"register"`
	Access   OpAccess     `json:"access"`
}

func (u UsedRegister) String() string {
	return fmt.Sprintf("%s:%s", u.Register, u.Access)
}

// UsedMemory is a memory location read or written by an instruction.
// Displacement is already extended and masked to AddressSize; for an
// IP-relative operand it is the absolute address and Base is None.
type UsedMemory struct {
	Segment      x86.Register   `json:"segment"`
	Base         x86.Register   `json:"base"`
	Index        x86.Register   `json:"index"`
	Scale        int            `json:"scale"`
	Displacement uint64         `json:"displacement"`
	MemorySize   x86.MemorySize `json:"memory_size"`
	Access       OpAccess       `json:"access"`
	// AddressSize is 2, 4 or 8, or 0 when unknown.
	AddressSize int `json:"address_size"`
	// VsibSize is the index element size of a VSIB operand, else 0.
	VsibSize int `json:"vsib_size,omitempty"`
}

func (m UsedMemory) String() string {
	s := fmt.Sprintf("%s:[", m.Segment)
	sep := ""
	if m.Base != x86.None {
		s += m.Base.String()
		sep = "+"
	}
	if m.Index != x86.None {
		s += fmt.Sprintf("%s%s*%d", sep, m.Index, m.Scale)
		sep = "+"
	}
	if m.Displacement != 0 || sep == "" {
		s += fmt.Sprintf("%s0x%x", sep, m.Displacement)
	}
	return fmt.Sprintf("%s];%s;%s", s, m.MemorySize, m.Access)
}

// RegisterValueFunc returns the value of reg. For a VSIB index register it
// returns element elementIndex of size elementSize. Segment registers are
// asked for their base address.
type RegisterValueFunc func(reg x86.Register, elementIndex, elementSize int) (uint64, bool)

// VirtualAddress computes segment base + base + index*scale + displacement,
// masked to the address size. It returns false if a register value is
// unavailable.
func (m UsedMemory) VirtualAddress(elementIndex int, get RegisterValueFunc) (uint64, bool) {
	var addr uint64
	if m.Base != x86.None {
		v, ok := get(m.Base, 0, 0)
		if !ok {
			return 0, false
		}
		addr += v
	}
	if m.Index != x86.None {
		var v uint64
		var ok bool
		if m.VsibSize != 0 {
			v, ok = get(m.Index, elementIndex, m.VsibSize)
			if ok && m.VsibSize == 4 {
				v = uint64(int64(int32(v)))
			}
		} else {
			v, ok = get(m.Index, 0, 0)
		}
		if !ok {
			return 0, false
		}
		addr += v * uint64(m.Scale)
	}
	addr += m.Displacement
	switch m.AddressSize {
	case 2:
		addr = uint64(uint16(addr))
	case 4:
		addr = uint64(uint32(addr))
	}
	if m.Segment != x86.None {
		seg, ok := get(m.Segment, 0, 0)
		if !ok {
			return 0, false
		}
		addr += seg
	}
	return addr, true
}

// InstructionInfo is the register and memory usage of one instruction plus
// its scalar facts.
type InstructionInfo struct {
	usedRegisters []UsedRegister
	usedMemory    []UsedMemory
	opAccesses    [x86.MaxOpCount]OpAccess
	opCount       int
	rflags        RflagsInfo
	flow          FlowControl
	encoding      EncodingKind
	cpuid         CpuidFeature
}

// UsedRegisters returns the register usages in the order they were found.
// When produced by a Factory the slice is only valid until its next call.
func (ii InstructionInfo) UsedRegisters() []UsedRegister { return ii.usedRegisters }

// UsedMemory returns the memory usages in the order they were found. When
// produced by a Factory the slice is only valid until its next call.
func (ii InstructionInfo) UsedMemory() []UsedMemory { return ii.usedMemory }

// OpAccess returns the access of operand op, AccessNone past the operand
// count.
func (ii InstructionInfo) OpAccess(op int) OpAccess {
	if op < 0 || op >= x86.MaxOpCount {
		return AccessNone
	}
	return ii.opAccesses[op]
}

func (ii InstructionInfo) OpCount() int                { return ii.opCount }
func (ii InstructionInfo) RflagsInfo() RflagsInfo      { return ii.rflags }
func (ii InstructionInfo) RflagsRead() RflagsBits      { return ii.rflags.Read() }
func (ii InstructionInfo) RflagsWritten() RflagsBits   { return ii.rflags.Written() }
func (ii InstructionInfo) RflagsCleared() RflagsBits   { return ii.rflags.Cleared() }
func (ii InstructionInfo) RflagsSet() RflagsBits       { return ii.rflags.Set() }
func (ii InstructionInfo) RflagsUndefined() RflagsBits { return ii.rflags.Undefined() }
func (ii InstructionInfo) RflagsModified() RflagsBits  { return ii.rflags.Modified() }
func (ii InstructionInfo) FlowControl() FlowControl    { return ii.flow }
func (ii InstructionInfo) Encoding() EncodingKind      { return ii.encoding }
func (ii InstructionInfo) CpuidFeature() CpuidFeature  { return ii.cpuid }

// Clone returns a copy that owns its slices.
func (ii InstructionInfo) Clone() InstructionInfo {
	c := ii
	c.usedRegisters = append([]UsedRegister(nil), ii.usedRegisters...)
	c.usedMemory = append([]UsedMemory(nil), ii.usedMemory...)
	return c
}
