package x86

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/colorfulnotion/x86info/x86errors"
)

// MaxOpCount is the largest operand count of any code.
const MaxOpCount = 5

// Instruction is one decoded or hand-built instruction. The zero value is an
// INVALID instruction with unknown code size.
//
// Operand kinds and registers past OpCount are not meaningful. Equal and Hash
// ignore the byte length.
type Instruction struct {
	nextIP     uint64
	memDispl   uint64
	immediate  uint64
	nearBranch uint64
	farOffset  uint32
	farSel     uint16

	code    Code
	opKinds [MaxOpCount]OpKind
	opRegs  [MaxOpCount - 1]Register

	memBase    Register
	memIndex   Register
	memScale   uint8 // log2 of the index scale
	displSize  uint8
	segPrefix  Register
	broadcast  bool
	immediate2 uint8

	lock     bool
	rep      bool
	repne    bool
	xacquire bool
	xrelease bool

	opMask  Register
	zeroing bool
	rc      RoundingControl
	sae     bool

	codeSize CodeSize
	length   uint8
}

// NewInstruction returns an instruction with the given code and every operand
// set to a None register.
func NewInstruction(code Code) (Instruction, error) {
	var in Instruction
	if err := in.SetCode(code); err != nil {
		return Instruction{}, err
	}
	return in, nil
}

func (in *Instruction) Code() Code { return in.code }

func (in *Instruction) SetCode(code Code) error {
	if !code.IsValid() {
		return fmt.Errorf("%w: %d", x86errors.ErrInvalidCode, uint16(code))
	}
	in.code = code
	return nil
}

func (in *Instruction) Mnemonic() string { return in.code.Mnemonic() }

// OpCount is derived from the code.
func (in *Instruction) OpCount() int { return in.code.OpCount() }

func (in *Instruction) checkOp(op int) error {
	if op < 0 || op >= in.OpCount() {
		return fmt.Errorf("%w: operand %d of %s (%d operands)", x86errors.ErrOperandIndexOutOfRange, op, in.code, in.OpCount())
	}
	return nil
}

// OpKind returns the stored kind of operand op. It panics if op is not in
// 0..4; kinds past OpCount are not meaningful.
func (in *Instruction) OpKind(op int) OpKind { return in.opKinds[op] }

func (in *Instruction) Op0Kind() OpKind { return in.opKinds[0] }
func (in *Instruction) Op1Kind() OpKind { return in.opKinds[1] }
func (in *Instruction) Op2Kind() OpKind { return in.opKinds[2] }
func (in *Instruction) Op3Kind() OpKind { return in.opKinds[3] }
func (in *Instruction) Op4Kind() OpKind { return in.opKinds[4] }

// SetOpKind sets the kind of operand op. Operand 4 only takes Immediate8.
func (in *Instruction) SetOpKind(op int, kind OpKind) error {
	if err := in.checkOp(op); err != nil {
		return err
	}
	if !kind.IsValid() {
		return fmt.Errorf("%w: %s", x86errors.ErrWrongOperandKind, kind)
	}
	if op == 4 && kind != OpKindImmediate8 {
		return fmt.Errorf("%w: operand 4 must be Immediate8, got %s", x86errors.ErrWrongOperandKind, kind)
	}
	in.opKinds[op] = kind
	return nil
}

// OpRegister returns the register of operand op.
func (in *Instruction) OpRegister(op int) (Register, error) {
	if err := in.checkOp(op); err != nil {
		return None, err
	}
	if in.opKinds[op] != OpKindRegister {
		return None, fmt.Errorf("%w: operand %d is %s", x86errors.ErrWrongOperandKind, op, in.opKinds[op])
	}
	if op == 4 {
		return None, nil
	}
	return in.opRegs[op], nil
}

func (in *Instruction) Op0Register() Register { return in.opRegs[0] }
func (in *Instruction) Op1Register() Register { return in.opRegs[1] }
func (in *Instruction) Op2Register() Register { return in.opRegs[2] }
func (in *Instruction) Op3Register() Register { return in.opRegs[3] }

// Op4Register is always None.
func (in *Instruction) Op4Register() Register { return None }

// SetOpRegister stores the register of operand op. The operand kind is not
// changed. Operand 4 only takes None.
func (in *Instruction) SetOpRegister(op int, reg Register) error {
	if err := in.checkOp(op); err != nil {
		return err
	}
	if !reg.IsValid() {
		return fmt.Errorf("%w: %d", x86errors.ErrInvalidRegister, uint8(reg))
	}
	if op == 4 {
		if reg != None {
			return fmt.Errorf("%w: operand 4 has no register, got %s", x86errors.ErrInvalidRegister, reg)
		}
		return nil
	}
	in.opRegs[op] = reg
	return nil
}

// SetRegisterOp is SetOpKind(op, Register) followed by SetOpRegister.
func (in *Instruction) SetRegisterOp(op int, reg Register) error {
	if err := in.SetOpKind(op, OpKindRegister); err != nil {
		return err
	}
	return in.SetOpRegister(op, reg)
}

// Immediate returns the value of immediate operand op, sign extended to 64
// bits for the 8to16, 8to32, 8to64 and 32to64 kinds.
func (in *Instruction) Immediate(op int) (uint64, error) {
	if err := in.checkOp(op); err != nil {
		return 0, err
	}
	switch in.opKinds[op] {
	case OpKindImmediate8:
		return uint64(in.Immediate8()), nil
	case OpKindImmediate8_2nd:
		return uint64(in.immediate2), nil
	case OpKindImmediate16:
		return uint64(in.Immediate16()), nil
	case OpKindImmediate32:
		return uint64(in.Immediate32()), nil
	case OpKindImmediate64:
		return in.immediate, nil
	case OpKindImmediate8to16:
		return uint64(int64(in.Immediate8to16())), nil
	case OpKindImmediate8to32:
		return uint64(int64(in.Immediate8to32())), nil
	case OpKindImmediate8to64:
		return uint64(in.Immediate8to64()), nil
	case OpKindImmediate32to64:
		return uint64(in.Immediate32to64()), nil
	}
	return 0, fmt.Errorf("%w: operand %d is %s", x86errors.ErrWrongOperandKind, op, in.opKinds[op])
}

// SetImmediate stores v truncated to the width of immediate operand op.
func (in *Instruction) SetImmediate(op int, v uint64) error {
	if err := in.checkOp(op); err != nil {
		return err
	}
	switch in.opKinds[op] {
	case OpKindImmediate8, OpKindImmediate8to16, OpKindImmediate8to32, OpKindImmediate8to64:
		in.immediate = uint64(uint8(v))
	case OpKindImmediate8_2nd:
		in.immediate2 = uint8(v)
	case OpKindImmediate16:
		in.immediate = uint64(uint16(v))
	case OpKindImmediate32, OpKindImmediate32to64:
		in.immediate = uint64(uint32(v))
	case OpKindImmediate64:
		in.immediate = v
	default:
		return fmt.Errorf("%w: operand %d is %s", x86errors.ErrWrongOperandKind, op, in.opKinds[op])
	}
	return nil
}

func (in *Instruction) Immediate8() uint8         { return uint8(in.immediate) }
func (in *Instruction) SetImmediate8(v uint8)     { in.immediate = uint64(v) }
func (in *Instruction) Immediate8_2nd() uint8     { return in.immediate2 }
func (in *Instruction) SetImmediate8_2nd(v uint8) { in.immediate2 = v }
func (in *Instruction) Immediate16() uint16       { return uint16(in.immediate) }
func (in *Instruction) SetImmediate16(v uint16)   { in.immediate = uint64(v) }
func (in *Instruction) Immediate32() uint32       { return uint32(in.immediate) }
func (in *Instruction) SetImmediate32(v uint32)   { in.immediate = uint64(v) }
func (in *Instruction) Immediate64() uint64       { return in.immediate }
func (in *Instruction) SetImmediate64(v uint64)   { in.immediate = v }

func (in *Instruction) Immediate8to16() int16  { return int16(int8(in.immediate)) }
func (in *Instruction) Immediate8to32() int32  { return int32(int8(in.immediate)) }
func (in *Instruction) Immediate8to64() int64  { return int64(int8(in.immediate)) }
func (in *Instruction) Immediate32to64() int64 { return int64(int32(in.immediate)) }

func (in *Instruction) SetImmediate8to16(v int16)  { in.immediate = uint64(uint8(v)) }
func (in *Instruction) SetImmediate8to32(v int32)  { in.immediate = uint64(uint8(v)) }
func (in *Instruction) SetImmediate8to64(v int64)  { in.immediate = uint64(uint8(v)) }
func (in *Instruction) SetImmediate32to64(v int64) { in.immediate = uint64(uint32(v)) }

func (in *Instruction) NearBranch16() uint16 { return uint16(in.nearBranch) }
func (in *Instruction) NearBranch32() uint32 { return uint32(in.nearBranch) }
func (in *Instruction) NearBranch64() uint64 { return in.nearBranch }

func (in *Instruction) SetNearBranch16(v uint16) { in.nearBranch = uint64(v) }
func (in *Instruction) SetNearBranch32(v uint32) { in.nearBranch = uint64(v) }
func (in *Instruction) SetNearBranch64(v uint64) { in.nearBranch = v }

// NearBranchTarget returns the branch target of operand 0, or 0 if operand 0
// is not a near branch.
func (in *Instruction) NearBranchTarget() uint64 {
	if in.OpCount() == 0 {
		return 0
	}
	switch in.opKinds[0] {
	case OpKindNearBranch16:
		return uint64(in.NearBranch16())
	case OpKindNearBranch32:
		return uint64(in.NearBranch32())
	case OpKindNearBranch64:
		return in.nearBranch
	}
	return 0
}

func (in *Instruction) FarBranchSelector() uint16     { return in.farSel }
func (in *Instruction) SetFarBranchSelector(v uint16) { in.farSel = v }
func (in *Instruction) FarBranch16() uint16           { return uint16(in.farOffset) }
func (in *Instruction) SetFarBranch16(v uint16)       { in.farOffset = uint32(v) }
func (in *Instruction) FarBranch32() uint32           { return in.farOffset }
func (in *Instruction) SetFarBranch32(v uint32)       { in.farOffset = v }

func (in *Instruction) MemoryBase() Register  { return in.memBase }
func (in *Instruction) MemoryIndex() Register { return in.memIndex }

// SetMemoryBase accepts None, a general purpose register or EIP/RIP.
func (in *Instruction) SetMemoryBase(reg Register) error {
	if reg != None && !reg.IsGPR16() && !reg.IsGPR32() && !reg.IsGPR64() && !reg.IsIP() {
		return fmt.Errorf("%w: %s as memory base", x86errors.ErrInvalidRegister, reg)
	}
	in.memBase = reg
	return nil
}

// SetMemoryIndex accepts None, a general purpose register or, for VSIB
// operands, a vector register.
func (in *Instruction) SetMemoryIndex(reg Register) error {
	if reg != None && !reg.IsGPR16() && !reg.IsGPR32() && !reg.IsGPR64() && !reg.IsVectorReg() {
		return fmt.Errorf("%w: %s as memory index", x86errors.ErrInvalidRegister, reg)
	}
	in.memIndex = reg
	return nil
}

// MemoryIndexScale returns 1, 2, 4 or 8.
func (in *Instruction) MemoryIndexScale() int { return 1 << in.memScale }

func (in *Instruction) SetMemoryIndexScale(scale int) error {
	switch scale {
	case 1:
		in.memScale = 0
	case 2:
		in.memScale = 1
	case 4:
		in.memScale = 2
	case 8:
		in.memScale = 3
	default:
		return fmt.Errorf("%w: scale %d", x86errors.ErrInvalidMemoryOperand, scale)
	}
	return nil
}

func (in *Instruction) MemoryDisplacement32() uint32 { return uint32(in.memDispl) }

// SetMemoryDisplacement32 stores v zero extended.
func (in *Instruction) SetMemoryDisplacement32(v uint32) { in.memDispl = uint64(v) }

func (in *Instruction) MemoryDisplacement64() uint64     { return in.memDispl }
func (in *Instruction) SetMemoryDisplacement64(v uint64) { in.memDispl = v }

// MemoryDisplSize returns the encoded displacement size: 0, 1, 2, 4 or 8.
func (in *Instruction) MemoryDisplSize() int { return int(in.displSize) }

func (in *Instruction) SetMemoryDisplSize(size int) error {
	switch size {
	case 0, 1, 2, 4, 8:
		in.displSize = uint8(size)
		return nil
	}
	return fmt.Errorf("%w: displacement size %d", x86errors.ErrInvalidMemoryOperand, size)
}

// SegmentPrefix returns the segment override, or None.
func (in *Instruction) SegmentPrefix() Register { return in.segPrefix }

func (in *Instruction) SetSegmentPrefix(reg Register) error {
	if reg != None && !reg.IsSegment() {
		return fmt.Errorf("%w: %s as segment prefix", x86errors.ErrInvalidRegister, reg)
	}
	in.segPrefix = reg
	return nil
}

// MemorySegment returns the effective segment of a Memory operand: the
// override if present, SS for a stack or frame pointer base, else DS.
func (in *Instruction) MemorySegment() Register {
	if in.segPrefix != None {
		return in.segPrefix
	}
	switch in.memBase {
	case SP, ESP, RSP, BP, EBP, RBP:
		return SS
	}
	return DS
}

func (in *Instruction) IsBroadcast() bool     { return in.broadcast }
func (in *Instruction) SetIsBroadcast(b bool) { in.broadcast = b }

// MemorySize is looked up from the code and the broadcast flag.
func (in *Instruction) MemorySize() MemorySize { return in.code.MemorySize(in.broadcast) }

// MemoryAddressSize returns the address size in bytes of the Memory operand,
// derived from the base and index registers and the code size.
func (in *Instruction) MemoryAddressSize() int {
	for _, r := range [2]Register{in.memBase, in.memIndex} {
		switch {
		case r.IsGPR64(), r == RIP:
			return 8
		case r.IsGPR32(), r == EIP:
			return 4
		case r.IsGPR16():
			return 2
		}
	}
	switch in.displSize {
	case 2:
		return 2
	case 8:
		return 8
	case 4:
		if in.codeSize == CodeSize16 {
			return 4
		}
	}
	return in.codeSize.AddressSize()
}

func (in *Instruction) IsIPRelativeMemoryOperand() bool { return in.memBase.IsIP() }

// IPRelativeMemoryAddress returns NextIP plus the displacement, wrapped to 32
// bits for an EIP base.
func (in *Instruction) IPRelativeMemoryAddress() uint64 {
	addr := in.nextIP + uint64(int64(int32(in.memDispl)))
	if in.memBase == EIP {
		return uint64(uint32(addr))
	}
	return addr
}

func (in *Instruction) HasLockPrefix() bool         { return in.lock }
func (in *Instruction) SetHasLockPrefix(b bool)     { in.lock = b }
func (in *Instruction) HasRepPrefix() bool          { return in.rep }
func (in *Instruction) SetHasRepPrefix(b bool)      { in.rep = b }
func (in *Instruction) HasRepePrefix() bool         { return in.rep }
func (in *Instruction) SetHasRepePrefix(b bool)     { in.rep = b }
func (in *Instruction) HasRepnePrefix() bool        { return in.repne }
func (in *Instruction) SetHasRepnePrefix(b bool)    { in.repne = b }
func (in *Instruction) HasXacquirePrefix() bool     { return in.xacquire }
func (in *Instruction) SetHasXacquirePrefix(b bool) { in.xacquire = b }
func (in *Instruction) HasXreleasePrefix() bool     { return in.xrelease }
func (in *Instruction) SetHasXreleasePrefix(b bool) { in.xrelease = b }

// HasAnyRepPrefix reports whether a rep, repe or repne prefix is present.
func (in *Instruction) HasAnyRepPrefix() bool { return in.rep || in.repne }

// OpMask returns the opmask register, or None.
func (in *Instruction) OpMask() Register { return in.opMask }

// SetOpMask accepts None or K0..K7. K0 encodes "no masking" and is reported
// by HasOpMask as absent.
func (in *Instruction) SetOpMask(reg Register) error {
	if reg != None && !reg.IsK() {
		return fmt.Errorf("%w: %s as opmask", x86errors.ErrInvalidRegister, reg)
	}
	in.opMask = reg
	return nil
}

func (in *Instruction) HasOpMask() bool { return in.opMask != None && in.opMask != K0 }

func (in *Instruction) ZeroingMasking() bool     { return in.zeroing }
func (in *Instruction) SetZeroingMasking(b bool) { in.zeroing = b }

// MergingMasking reports whether an opmask is present and unwritten elements
// keep their old value.
func (in *Instruction) MergingMasking() bool { return in.HasOpMask() && !in.zeroing }

func (in *Instruction) RoundingControl() RoundingControl { return in.rc }

func (in *Instruction) SetRoundingControl(rc RoundingControl) error {
	if rc > RoundTowardZero {
		return fmt.Errorf("%w: rounding control %d", x86errors.ErrWrongOperandKind, uint8(rc))
	}
	in.rc = rc
	return nil
}

func (in *Instruction) SuppressAllExceptions() bool     { return in.sae }
func (in *Instruction) SetSuppressAllExceptions(b bool) { in.sae = b }

func (in *Instruction) CodeSize() CodeSize     { return in.codeSize }
func (in *Instruction) SetCodeSize(c CodeSize) { in.codeSize = c }

// StackPointer returns SP, ESP or RSP for the code size and its width.
func (in *Instruction) StackPointer() (Register, int) {
	switch in.codeSize {
	case CodeSize16:
		return SP, 2
	case CodeSize32:
		return ESP, 4
	}
	return RSP, 8
}

func (in *Instruction) Len() int       { return int(in.length) }
func (in *Instruction) SetLen(n int)   { in.length = uint8(n) }
func (in *Instruction) NextIP() uint64 { return in.nextIP }

func (in *Instruction) SetNextIP(ip uint64) { in.nextIP = ip }

// IP is NextIP minus Len.
func (in *Instruction) IP() uint64 { return in.nextIP - uint64(in.length) }

// SetIP keeps Len and moves NextIP.
func (in *Instruction) SetIP(ip uint64) { in.nextIP = ip + uint64(in.length) }

// Equal compares every field except the byte length.
func (in *Instruction) Equal(other *Instruction) bool {
	a, b := *in, *other
	a.length, b.length = 0, 0
	return a == b
}

// Hash is consistent with Equal.
func (in *Instruction) Hash() uint64 {
	buf := make([]byte, 0, 96)
	buf = binary.LittleEndian.AppendUint64(buf, in.nextIP)
	buf = binary.LittleEndian.AppendUint64(buf, in.memDispl)
	buf = binary.LittleEndian.AppendUint64(buf, in.immediate)
	buf = binary.LittleEndian.AppendUint64(buf, in.nearBranch)
	buf = binary.LittleEndian.AppendUint32(buf, in.farOffset)
	buf = binary.LittleEndian.AppendUint16(buf, in.farSel)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(in.code))
	for _, k := range in.opKinds {
		buf = append(buf, byte(k))
	}
	for _, r := range in.opRegs {
		buf = append(buf, byte(r))
	}
	buf = append(buf,
		byte(in.memBase), byte(in.memIndex), in.memScale, in.displSize,
		byte(in.segPrefix), in.immediate2, byte(in.opMask), byte(in.rc), byte(in.codeSize),
		packBools(in.broadcast, in.lock, in.rep, in.repne, in.xacquire, in.xrelease, in.zeroing, in.sae))
	return xxhash.Sum64(buf)
}

func packBools(bs ...bool) byte {
	var b byte
	for i, v := range bs {
		if v {
			b |= 1 << i
		}
	}
	return b
}
