package decoder

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/x86info/x86"
	"golang.org/x/arch/x86/x86asm"
	"golang.org/x/exp/slices"
)

// form is a resolved code together with the name token chosen for each
// operand. The tokens drive operand kind selection.
type form struct {
	code   x86.Code
	args   []x86asm.Arg
	tokens []string
}

var opAliases = map[x86asm.Op]string{
	x86asm.XLATB: "XLAT",
	x86asm.RET:   "RETN",
	x86asm.LRET:  "RETF",
	x86asm.LCALL: "CALL",
	x86asm.LJMP:  "JMP",
	x86asm.PUSHF: "PUSHFW",
	x86asm.POPF:  "POPFW",
	x86asm.PUSHA: "PUSHAW",
	x86asm.POPA:  "POPAW",
	x86asm.IRET:  "IRETW",
}

// stackOps default to a 64-bit operand size in 64-bit mode.
var stackOps = map[x86asm.Op]bool{
	x86asm.PUSH:  true,
	x86asm.POP:   true,
	x86asm.RET:   true,
	x86asm.ENTER: true,
	x86asm.LEAVE: true,
	x86asm.CALL:  true,
	x86asm.JMP:   true,
}

func opcodeByte(inst *x86asm.Inst) byte { return byte(inst.Opcode >> 24) }

// operandSize is DataSize with the 64-bit stack default applied.
func operandSize(inst *x86asm.Inst) int {
	if inst.Mode == 64 && stackOps[inst.Op] && inst.DataSize != 16 {
		return 64
	}
	return inst.DataSize
}

func sizeLetter(bits int) string {
	switch bits {
	case 16:
		return "W"
	case 32:
		return "D"
	case 64:
		return "Q"
	}
	return ""
}

func counterName(addrSize int) string {
	switch addrSize {
	case 16:
		return "CX"
	case 32:
		return "ECX"
	}
	return "RCX"
}

// baseNames returns the mnemonic prefixes a code name may start with.
func baseNames(inst *x86asm.Inst) []string {
	name, ok := opAliases[inst.Op]
	if !ok {
		name = inst.Op.String()
	}
	names := []string{name}
	for _, bits := range []int{operandSize(inst), inst.AddrSize} {
		n := name + sizeLetter(bits)
		if !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	return names
}

// rmFirst reports whether a register-to-register ALU or MOV encoding has its
// destination in the modrm rm field.
func rmFirst(inst *x86asm.Inst) bool {
	b := opcodeByte(inst)
	alu := b < 0x40 && b&7 < 4
	mov := b >= 0x84 && b <= 0x8B
	return (alu || mov) && b&2 == 0
}

func regTokens(inst *x86asm.Inst, i int, r x86.Register) []string {
	exact := strings.ToUpper(r.String())
	switch {
	case r.IsGPR():
		bits := fmt.Sprint(r.Size() * 8)
		if i == 0 && rmFirst(inst) {
			return []string{exact, "RM" + bits, "R" + bits}
		}
		return []string{exact, "R" + bits, "RM" + bits}
	case r.IsSegment():
		return []string{exact, "SREG"}
	case r.IsMM():
		return []string{"MM", "MMM64"}
	case r.IsXMM():
		return []string{"XMM", "XMMM128", "XMMM64", "XMMM32"}
	}
	return []string{exact}
}

func isMoffs(inst *x86asm.Inst) bool {
	b := opcodeByte(inst)
	return inst.Op == x86asm.MOV && b >= 0xA0 && b <= 0xA3
}

func memTokens(inst *x86asm.Inst) []string {
	bits := inst.MemBytes * 8
	if isMoffs(inst) {
		return []string{fmt.Sprintf("MOFFS%d", bits)}
	}
	if bits == 0 {
		return []string{"M8", "M16", "M32", "M64", "M128", "M"}
	}
	toks := []string{fmt.Sprintf("M%d", bits), fmt.Sprintf("RM%d", bits)}
	switch bits {
	case 128:
		toks = append(toks, "XMMM128")
	case 64:
		toks = append(toks, "MMM64", "XMMM64")
	case 32:
		toks = append(toks, "XMMM32")
	}
	return append(toks, "M")
}

// immToken derives the immediate width from the opcode byte, the same way
// the encoding tables assign it.
func immToken(inst *x86asm.Inst, i int, args []x86asm.Arg) string {
	if i > 0 {
		if _, ok := args[i-1].(x86asm.Imm); ok {
			return "IMM8"
		}
	}
	b := opcodeByte(inst)
	switch {
	case b == 0xD0 || b == 0xD1:
		return "1"
	case b == 0xC2 || b == 0xCA || b == 0xC8:
		return "IMM16"
	case b >= 0xB8 && b <= 0xBF:
		if inst.DataSize == 64 {
			return "IMM64"
		}
	case b < 0x40 && b&7 == 4,
		b >= 0xB0 && b <= 0xB7,
		b >= 0xE4 && b <= 0xE7:
		return "IMM8"
	}
	switch b {
	case 0x0F, 0x6A, 0x6B, 0x80, 0x82, 0x83, 0xA8, 0xC0, 0xC1, 0xC6, 0xCD, 0xF6:
		return "IMM8"
	}
	if inst.DataSize == 16 {
		return "IMM16"
	}
	return "IMM32"
}

func relTokens(inst *x86asm.Inst) []string {
	switch inst.PCRel {
	case 1:
		return []string{fmt.Sprintf("REL8_%d", inst.Mode)}
	case 2:
		return []string{"REL16"}
	}
	return []string{fmt.Sprintf("REL32_%d", inst.Mode)}
}

func argTokens(inst *x86asm.Inst, i int, args []x86asm.Arg) []string {
	switch a := args[i].(type) {
	case x86asm.Reg:
		r := mapReg(a)
		if r == x86.None {
			return nil
		}
		return regTokens(inst, i, r)
	case x86asm.Mem:
		return memTokens(inst)
	case x86asm.Imm:
		return []string{immToken(inst, i, args)}
	case x86asm.Rel:
		return relTokens(inst)
	}
	return nil
}

func isFarPointer(inst *x86asm.Inst, args []x86asm.Arg) bool {
	if (inst.Op != x86asm.LCALL && inst.Op != x86asm.LJMP) || len(args) != 2 {
		return false
	}
	_, sel := args[0].(x86asm.Imm)
	_, off := args[1].(x86asm.Imm)
	return sel && off
}

// resolveForm picks the first code table entry whose name matches the
// decoded mnemonic and operand shapes.
func resolveForm(inst *x86asm.Inst, args []x86asm.Arg) (form, bool) {
	switch {
	case inst.Op == x86asm.INT && opcodeByte(inst) == 0xCC:
		return form{code: x86.INT3}, true
	case isFarPointer(inst, args):
		name := fmt.Sprintf("%s_PTR16%d", opAliases[inst.Op], inst.DataSize)
		if c, ok := x86.CodeByName(name); ok {
			return form{code: c, args: args, tokens: []string{"PTR"}}, true
		}
		return form{}, false
	}

	tokens := make([][]string, len(args))
	for i := range args {
		if tokens[i] = argTokens(inst, i, args); len(tokens[i]) == 0 {
			return form{}, false
		}
	}
	suffixes := []string{""}
	switch inst.Op {
	case x86asm.LOOP, x86asm.LOOPE, x86asm.LOOPNE:
		suffixes = []string{"_" + counterName(inst.AddrSize)}
	}

	chosen := make([]string, len(args))
	var walk func(prefix string, i int) (x86.Code, bool)
	walk = func(prefix string, i int) (x86.Code, bool) {
		if i == len(args) {
			for _, s := range suffixes {
				if c, ok := x86.CodeByName(prefix + s); ok && c.OpCount() == len(args) {
					return c, true
				}
			}
			return x86.INVALID, false
		}
		for _, tok := range tokens[i] {
			chosen[i] = tok
			if c, ok := walk(prefix+"_"+tok, i+1); ok {
				return c, true
			}
		}
		return x86.INVALID, false
	}
	for _, base := range baseNames(inst) {
		if c, ok := walk(base, 0); ok {
			return form{code: c, args: args, tokens: chosen}, true
		}
	}
	return form{}, false
}
