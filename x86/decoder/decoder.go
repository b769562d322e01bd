// Package decoder turns machine code into x86.Instruction values using the
// golang.org/x/arch disassembler. Only instructions with a form in the code
// table are produced; everything else reports ErrUnsupportedInstruction.
package decoder

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/x86info/log"
	"github.com/colorfulnotion/x86info/x86"
	"github.com/colorfulnotion/x86info/x86errors"
	"golang.org/x/arch/x86/x86asm"
)

func validBitness(bitness int) bool {
	return bitness == 16 || bitness == 32 || bitness == 64
}

// Decode decodes the first instruction in code, located at ip.
func Decode(code []byte, bitness int, ip uint64) (x86.Instruction, error) {
	if !validBitness(bitness) {
		return x86.Instruction{}, fmt.Errorf("%w: %d", x86errors.ErrInvalidBitness, bitness)
	}
	inst, err := x86asm.Decode(code, bitness)
	if err != nil {
		return x86.Instruction{}, fmt.Errorf("%w: %v", x86errors.ErrDecode, err)
	}
	return convert(&inst, ip)
}

func convert(inst *x86asm.Inst, ip uint64) (x86.Instruction, error) {
	var args []x86asm.Arg
	for _, a := range inst.Args {
		if a == nil {
			break
		}
		args = append(args, a)
	}
	f, ok := resolveForm(inst, args)
	if !ok {
		text := x86asm.IntelSyntax(*inst, ip, nil)
		log.Debug(log.DecodeMonitoring, "no code table form", "ip", fmt.Sprintf("%#x", ip), "asm", text)
		return x86.Instruction{}, fmt.Errorf("%w: %s", x86errors.ErrUnsupportedInstruction, text)
	}

	out, err := x86.NewInstruction(f.code)
	if err != nil {
		return x86.Instruction{}, err
	}
	out.SetCodeSize(x86.CodeSizeFromBitness(inst.Mode))
	out.SetLen(inst.Len)
	out.SetIP(ip)
	setPrefixes(&out, inst)

	if len(f.tokens) == 1 && f.tokens[0] == "PTR" {
		return out, setFarPointer(&out, inst, args)
	}
	for i := range f.args {
		if err := setOperand(&out, inst, i, f.args, f.tokens[i]); err != nil {
			return x86.Instruction{}, err
		}
	}
	log.Trace(log.DecodeMonitoring, "decoded", "ip", fmt.Sprintf("%#x", ip), "code", f.code, "len", inst.Len)
	return out, nil
}

func setPrefixes(out *x86.Instruction, inst *x86asm.Inst) {
	for _, p := range inst.Prefix {
		if p == 0 {
			break
		}
		if p&x86asm.PrefixIgnored != 0 {
			continue
		}
		switch p &^ (x86asm.PrefixImplicit | x86asm.PrefixInvalid) {
		case x86asm.PrefixREP:
			out.SetHasRepPrefix(true)
		case x86asm.PrefixREPN:
			out.SetHasRepnePrefix(true)
		case x86asm.PrefixLOCK:
			out.SetHasLockPrefix(true)
		case x86asm.PrefixXACQUIRE:
			out.SetHasXacquirePrefix(true)
		case x86asm.PrefixXRELEASE:
			out.SetHasXreleasePrefix(true)
		}
	}
}

func setFarPointer(out *x86.Instruction, inst *x86asm.Inst, args []x86asm.Arg) error {
	kind := x86.OpKindFarBranch32
	if inst.DataSize == 16 {
		kind = x86.OpKindFarBranch16
	}
	if err := out.SetOpKind(0, kind); err != nil {
		return err
	}
	out.SetFarBranchSelector(uint16(args[0].(x86asm.Imm)))
	out.SetFarBranch32(uint32(args[1].(x86asm.Imm)))
	return nil
}

func setOperand(out *x86.Instruction, inst *x86asm.Inst, i int, args []x86asm.Arg, token string) error {
	switch a := args[i].(type) {
	case x86asm.Reg:
		return out.SetRegisterOp(i, mapReg(a))
	case x86asm.Mem:
		return setMemory(out, inst, i, a)
	case x86asm.Imm:
		if err := out.SetOpKind(i, immKind(inst, i, token)); err != nil {
			return err
		}
		return out.SetImmediate(i, uint64(a))
	case x86asm.Rel:
		return setBranch(out, inst, i, a)
	}
	return fmt.Errorf("%w: operand %d is %T", x86errors.ErrUnsupportedInstruction, i, args[i])
}

func immKind(inst *x86asm.Inst, i int, token string) x86.OpKind {
	size := operandSize(inst)
	switch token {
	case "1":
		return x86.OpKindImmediate8
	case "IMM8":
		if i > 0 {
			if _, ok := inst.Args[i-1].(x86asm.Imm); ok {
				return x86.OpKindImmediate8_2nd
			}
		}
		switch opcodeByte(inst) {
		case 0x6A, 0x6B, 0x83:
			switch size {
			case 16:
				return x86.OpKindImmediate8to16
			case 64:
				return x86.OpKindImmediate8to64
			}
			return x86.OpKindImmediate8to32
		}
		return x86.OpKindImmediate8
	case "IMM16":
		return x86.OpKindImmediate16
	case "IMM64":
		return x86.OpKindImmediate64
	}
	if size == 64 {
		return x86.OpKindImmediate32to64
	}
	return x86.OpKindImmediate32
}

func setBranch(out *x86.Instruction, inst *x86asm.Inst, i int, rel x86asm.Rel) error {
	target := out.NextIP() + uint64(int64(rel))
	switch {
	case inst.Mode == 64:
		if err := out.SetOpKind(i, x86.OpKindNearBranch64); err != nil {
			return err
		}
		out.SetNearBranch64(target)
	case inst.DataSize == 16:
		if err := out.SetOpKind(i, x86.OpKindNearBranch16); err != nil {
			return err
		}
		out.SetNearBranch16(uint16(target))
	default:
		if err := out.SetOpKind(i, x86.OpKindNearBranch32); err != nil {
			return err
		}
		out.SetNearBranch32(uint32(target))
	}
	return nil
}

// stringKind maps an implicit string operand onto its SI or DI memory kind.
func stringKind(base x86asm.Reg, addrSize int) (x86.OpKind, bool) {
	idx := 0
	switch addrSize {
	case 32:
		idx = 1
	case 64:
		idx = 2
	}
	switch {
	case isStringSource(base):
		return []x86.OpKind{x86.OpKindMemorySegSI, x86.OpKindMemorySegESI, x86.OpKindMemorySegRSI}[idx], true
	case isStringDest(base):
		return []x86.OpKind{x86.OpKindMemoryESDI, x86.OpKindMemoryESEDI, x86.OpKindMemoryESRDI}[idx], true
	}
	return 0, false
}

func isStringOp(inst *x86asm.Inst) bool {
	name := inst.Op.String()
	for _, p := range []string{"MOVS", "STOS", "LODS", "CMPS", "SCAS", "INS", "OUTS"} {
		if strings.HasPrefix(name, p) && len(name) == len(p)+1 {
			return strings.ContainsAny(name[len(p):], "BWDQ")
		}
	}
	return false
}

func setMemory(out *x86.Instruction, inst *x86asm.Inst, i int, m x86asm.Mem) error {
	if isStringOp(inst) {
		if kind, ok := stringKind(m.Base, inst.AddrSize); ok {
			if isStringSource(m.Base) && m.Segment != x86asm.DS {
				if err := out.SetSegmentPrefix(mapReg(m.Segment)); err != nil {
					return err
				}
			}
			return out.SetOpKind(i, kind)
		}
	}
	if m.Segment != 0 {
		if err := out.SetSegmentPrefix(mapReg(m.Segment)); err != nil {
			return err
		}
	}
	if isMoffs(inst) && inst.AddrSize == 64 {
		if err := out.SetOpKind(i, x86.OpKindMemory64); err != nil {
			return err
		}
		out.SetMemoryDisplacement64(uint64(m.Disp))
		return out.SetMemoryDisplSize(8)
	}
	if err := out.SetOpKind(i, x86.OpKindMemory); err != nil {
		return err
	}
	base, index := mapReg(m.Base), mapReg(m.Index)
	if err := out.SetMemoryBase(base); err != nil {
		return err
	}
	if err := out.SetMemoryIndex(index); err != nil {
		return err
	}
	scale := int(m.Scale)
	if scale == 0 {
		scale = 1
	}
	if err := out.SetMemoryIndexScale(scale); err != nil {
		return err
	}
	out.SetMemoryDisplacement64(uint64(m.Disp))
	return out.SetMemoryDisplSize(displSize(inst, base, index, m.Disp))
}

func displSize(inst *x86asm.Inst, base, index x86.Register, disp int64) int {
	switch {
	case base == x86.None && index == x86.None:
		return inst.AddrSize / 8
	case base.IsIP():
		return 4
	case disp == 0:
		return 0
	case disp >= -128 && disp <= 127:
		return 1
	case inst.AddrSize == 16:
		return 2
	}
	return 4
}

// Decoded is one step of a byte stream walk.
type Decoded struct {
	Offset      int
	Bytes       []byte
	Asm         string
	Instruction x86.Instruction
	Err         error
}

// DecodeAll walks code from ip. Bytes x86asm rejects are reported one at a
// time; instructions without a code table form keep their length and carry
// ErrUnsupportedInstruction.
func DecodeAll(code []byte, bitness int, ip uint64) ([]Decoded, error) {
	if !validBitness(bitness) {
		return nil, fmt.Errorf("%w: %d", x86errors.ErrInvalidBitness, bitness)
	}
	var out []Decoded
	offset := 0
	for offset < len(code) {
		at := ip + uint64(offset)
		inst, err := x86asm.Decode(code[offset:], bitness)
		if err != nil {
			out = append(out, Decoded{
				Offset: offset,
				Bytes:  code[offset : offset+1],
				Asm:    fmt.Sprintf("db 0x%02x", code[offset]),
				Err:    fmt.Errorf("%w: %v", x86errors.ErrDecode, err),
			})
			offset++
			continue
		}
		d := Decoded{
			Offset: offset,
			Bytes:  code[offset : offset+inst.Len],
			Asm:    x86asm.IntelSyntax(inst, at, nil),
		}
		d.Instruction, d.Err = convert(&inst, at)
		out = append(out, d)
		offset += inst.Len
	}
	return out, nil
}

// Disassemble renders a listing of code, one instruction per line.
func Disassemble(code []byte, bitness int, ip uint64) (string, error) {
	steps, err := DecodeAll(code, bitness, ip)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, d := range steps {
		var hexBytes []string
		for _, b := range d.Bytes {
			hexBytes = append(hexBytes, fmt.Sprintf("%02x", b))
		}
		sb.WriteString(fmt.Sprintf("0x%04x: %-24s %s\n", ip+uint64(d.Offset), strings.Join(hexBytes, " "), d.Asm))
	}
	return sb.String(), nil
}
