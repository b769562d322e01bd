package decoder

import (
	"github.com/colorfulnotion/x86info/x86"
	"golang.org/x/arch/x86/x86asm"
)

// regRange maps a contiguous block of x86asm registers onto x86 registers.
type regRange struct {
	first, last x86asm.Reg
	base        x86.Register
}

var regRanges = []regRange{
	{x86asm.AL, x86asm.R15B, x86.AL},
	{x86asm.AX, x86asm.R15W, x86.AX},
	{x86asm.EAX, x86asm.R15L, x86.EAX},
	{x86asm.RAX, x86asm.R15, x86.RAX},
	{x86asm.EIP, x86asm.RIP, x86.EIP},
	{x86asm.F0, x86asm.F7, x86.ST0},
	{x86asm.M0, x86asm.M7, x86.MM0},
	{x86asm.X0, x86asm.X15, x86.XMM0},
	{x86asm.ES, x86asm.GS, x86.ES},
}

// mapReg returns x86.None for registers the info engine does not model
// (IP, control, debug and table registers).
func mapReg(r x86asm.Reg) x86.Register {
	for _, rr := range regRanges {
		if r >= rr.first && r <= rr.last {
			return rr.base + x86.Register(r-rr.first)
		}
	}
	return x86.None
}

func isStringSource(r x86asm.Reg) bool {
	return r == x86asm.SI || r == x86asm.ESI || r == x86asm.RSI
}

func isStringDest(r x86asm.Reg) bool {
	return r == x86asm.DI || r == x86asm.EDI || r == x86asm.RDI
}
