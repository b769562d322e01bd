package info

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/x86info/x86"
)

// INVALID and the data declarations keep the zero descriptor: no operand
// access, FlowNext, no handler.

func mustCode(name string) x86.Code {
	c, ok := x86.CodeByName(name)
	if !ok {
		panic(fmt.Sprintf("info: no code named %s", name))
	}
	return c
}

// widthCpuid is the feature introducing the operand width named by suffix.
func widthCpuid(suffix string) CpuidFeature {
	switch {
	case strings.Contains(suffix, "64"):
		return CpuidX64
	case strings.Contains(suffix, "32"):
		return CpuidINTEL386
	}
	return CpuidINTEL8086
}

func init() {
	initArith()
	initMoves()
	initShifts()
	initMulDiv()
	initSystem()
	initStack()
	initBranches()
	initStrings()
	initSimd()
	initVendor()
}

var aluForms = []string{
	"_RM8_R8", "_RM16_R16", "_RM32_R32", "_RM64_R64", "_R32_RM32", "_R64_RM64",
	"_RM8_IMM8", "_RM32_IMM8", "_RM64_IMM8", "_EAX_IMM32",
}

// aluClearForms are the register/register shapes where op r,r ignores the
// old value.
var aluClearForms = map[string]bool{
	"_RM8_R8": true, "_RM16_R16": true, "_RM32_R32": true, "_RM64_R64": true,
	"_R32_RM32": true, "_R64_RM64": true,
}

func initArith() {
	alu := []struct {
		name   string
		op0    OpInfo0
		rflags RflagsInfo
		clear  RflagsInfo
	}{
		{"ADD", Op0ReadWrite, RflagsW_acopsz, RflagsInfoNone},
		{"OR", Op0ReadWrite, RflagsW_psz_C_co_U_a, RflagsInfoNone},
		{"AND", Op0ReadWrite, RflagsW_psz_C_co_U_a, RflagsInfoNone},
		{"SUB", Op0ReadWrite, RflagsW_acopsz, RflagsC_acos_S_pz},
		{"XOR", Op0ReadWrite, RflagsW_psz_C_co_U_a, RflagsC_cos_S_pz_U_a},
		{"CMP", Op0Read, RflagsW_acopsz, RflagsInfoNone},
	}
	for _, a := range alu {
		for _, form := range aluForms {
			b := def(mustCode(a.name+form)).Ops(a.op0, Op1Read).Rflags(a.rflags).Cpuid(widthCpuid(form))
			if a.clear != RflagsInfoNone && aluClearForms[form] {
				b.Handler(HandlerClearReg, uint8(a.clear))
			}
		}
	}
	for _, name := range []string{"ADC", "SBB"} {
		def(mustCode(name+"_RM32_R32")).Ops(Op0ReadWrite, Op1Read).Rflags(RflagsR_c_W_acopsz).Cpuid(CpuidINTEL386)
		def(mustCode(name+"_RM64_R64")).Ops(Op0ReadWrite, Op1Read).Rflags(RflagsR_c_W_acopsz).Cpuid(CpuidX64)
	}
	def(x86.TEST_RM32_R32).Ops(Op0Read, Op1Read).Rflags(RflagsW_psz_C_co_U_a).Cpuid(CpuidINTEL386)
	def(x86.TEST_RM64_R64).Ops(Op0Read, Op1Read).Rflags(RflagsW_psz_C_co_U_a).Cpuid(CpuidX64)
	def(x86.TEST_RM8_IMM8).Ops(Op0Read, Op1Read).Rflags(RflagsW_psz_C_co_U_a)

	def(x86.INC_RM32).Op0(Op0ReadWrite).Rflags(RflagsW_aopsz).Cpuid(CpuidINTEL386)
	def(x86.INC_RM64).Op0(Op0ReadWrite).Rflags(RflagsW_aopsz).Cpuid(CpuidX64)
	def(x86.DEC_RM32).Op0(Op0ReadWrite).Rflags(RflagsW_aopsz).Cpuid(CpuidINTEL386)
	def(x86.NEG_RM32).Op0(Op0ReadWrite).Rflags(RflagsW_acopsz).Cpuid(CpuidINTEL386)
	def(x86.NEG_RM64).Op0(Op0ReadWrite).Rflags(RflagsW_acopsz).Cpuid(CpuidX64)
	def(x86.NOT_RM32).Op0(Op0ReadWrite).Cpuid(CpuidINTEL386)

	def(x86.XCHG_RM32_R32).Ops(Op0ReadWrite, Op1ReadWrite).Cpuid(CpuidINTEL386)
	def(x86.XCHG_RM64_R64).Ops(Op0ReadWrite, Op1ReadWrite).Cpuid(CpuidX64)
	def(x86.XADD_RM32_R32).Ops(Op0ReadWrite, Op1ReadWrite).Rflags(RflagsW_acopsz).Cpuid(CpuidINTEL486)
	def(x86.XADD_RM64_R64).Ops(Op0ReadWrite, Op1ReadWrite).Rflags(RflagsW_acopsz).Cpuid(CpuidX64)
	def(x86.BSWAP_R32).Op0(Op0ReadWrite).Cpuid(CpuidINTEL486)
	def(x86.BSWAP_R64).Op0(Op0ReadWrite).Cpuid(CpuidX64)

	def(x86.CMPXCHG_RM8_R8).Ops(Op0ReadCondWrite, Op1Read).Rflags(RflagsW_acopsz).Handler(HandlerFixedRegs, 0).Cpuid(CpuidINTEL486)
	def(x86.CMPXCHG_RM16_R16).Ops(Op0ReadCondWrite, Op1Read).Rflags(RflagsW_acopsz).Handler(HandlerFixedRegs, 0).Cpuid(CpuidINTEL486)
	def(x86.CMPXCHG_RM32_R32).Ops(Op0ReadCondWrite, Op1Read).Rflags(RflagsW_acopsz).Handler(HandlerFixedRegs, 0).Cpuid(CpuidINTEL486)
	def(x86.CMPXCHG_RM64_R64).Ops(Op0ReadCondWrite, Op1Read).Rflags(RflagsW_acopsz).Handler(HandlerFixedRegs, 0).Cpuid(CpuidX64)
	def(x86.CMPXCHG8B_M64).Op0(Op0ReadCondWrite).Rflags(RflagsW_z).Handler(HandlerFixedRegs, 0).Cpuid(CpuidCMPXCHG8B)
	def(x86.CMPXCHG16B_M128).Op0(Op0ReadCondWrite).Rflags(RflagsW_z).Handler(HandlerFixedRegs, 0).Cpuid(CpuidCMPXCHG16B)

	def(x86.CLC).Rflags(RflagsC_c)
	def(x86.STC).Rflags(RflagsS_c)
	def(x86.CMC).Rflags(RflagsR_c_W_c)
	def(x86.CLD).Rflags(RflagsC_d)
	def(x86.STD).Rflags(RflagsS_d)
	def(x86.LAHF).Rflags(RflagsR_acpsz).Handler(HandlerFixedRegs, 0)
	def(x86.SAHF).Rflags(RflagsW_acpsz).Handler(HandlerFixedRegs, 0)
}

func initMoves() {
	for _, form := range []string{"_RM8_R8", "_RM16_R16", "_RM32_R32", "_RM64_R64", "_R8_RM8", "_R32_RM32", "_R64_RM64",
		"_R32_IMM32", "_R64_IMM64", "_RM32_IMM32", "_RM64_IMM32",
		"_AL_MOFFS8", "_EAX_MOFFS32", "_RAX_MOFFS64", "_MOFFS32_EAX", "_MOFFS64_RAX"} {
		def(mustCode("MOV"+form)).Ops(Op0Write, Op1Read).Cpuid(widthCpuid(form))
	}
	def(x86.MOV_RM16_SREG).Ops(Op0Write, Op1Read)
	def(x86.MOV_SREG_RM16).Ops(Op0Write, Op1Read)
	def(x86.MOVZX_R32_RM8).Ops(Op0Write, Op1Read).Cpuid(CpuidINTEL386)
	def(x86.MOVZX_R32_RM16).Ops(Op0Write, Op1Read).Cpuid(CpuidINTEL386)
	def(x86.MOVSX_R32_RM8).Ops(Op0Write, Op1Read).Cpuid(CpuidINTEL386)
	def(x86.MOVSXD_R64_RM32).Ops(Op0Write, Op1Read).Cpuid(CpuidX64)

	def(x86.LEA_R16_M).Ops(Op0Write, Op1NoMemAccess)
	def(x86.LEA_R32_M).Ops(Op0Write, Op1NoMemAccess).Cpuid(CpuidINTEL386)
	def(x86.LEA_R64_M).Ops(Op0Write, Op1NoMemAccess).Cpuid(CpuidX64)

	def(x86.CMOVE_R32_RM32).Ops(Op0CondWrite32_ReadWrite64, Op1Read).Rflags(RflagsR_z).Cpuid(CpuidCMOV)
	def(x86.CMOVNE_R32_RM32).Ops(Op0CondWrite32_ReadWrite64, Op1Read).Rflags(RflagsR_z).Cpuid(CpuidCMOV)
	def(x86.CMOVE_R64_RM64).Ops(Op0CondWrite, Op1Read).Rflags(RflagsR_z).Cpuid(CpuidCMOV)
	def(x86.SETE_RM8).Op0(Op0Write).Rflags(RflagsR_z).Cpuid(CpuidINTEL386)

	def(x86.NOP)
	def(x86.NOP_RM32).Op0(Op0NoMemAccess).Cpuid(CpuidINTEL386)
	def(x86.PREFETCHT0_M8).Op0(Op0NoMemAccess).Cpuid(CpuidSSE)
	def(x86.CLFLUSH_M8).Op0(Op0Read).Cpuid(CpuidCLFSH)

	def(x86.IN_AL_DX).Ops(Op0Write, Op1Read)
	def(x86.OUT_DX_AL).Ops(Op0Read, Op1Read)
}

func initShifts() {
	shifts := []struct {
		form   string
		rflags RflagsInfo
		mask   uint8
	}{
		{"SHL_RM8_IMM8", RflagsW_cpsz_U_ao, shiftMask1F},
		{"SHL_RM32_IMM8", RflagsW_cpsz_U_ao, shiftMask1F},
		{"SHL_RM64_IMM8", RflagsW_cpsz_U_ao, shiftMask3F},
		{"SHR_RM32_IMM8", RflagsW_cpsz_U_ao, shiftMask1F},
		{"SHR_RM64_IMM8", RflagsW_cpsz_U_ao, shiftMask3F},
		{"SAR_RM32_IMM8", RflagsW_cpsz_U_ao, shiftMask1F},
		{"SAR_RM64_IMM8", RflagsW_cpsz_U_ao, shiftMask3F},
		{"ROL_RM32_IMM8", RflagsW_c_U_o, shiftMask1F},
		{"ROL_RM64_IMM8", RflagsW_c_U_o, shiftMask3F},
		{"ROR_RM32_IMM8", RflagsW_c_U_o, shiftMask1F},
		{"RCL_RM8_IMM8", RflagsR_c_W_c_U_o, shiftMod9},
		{"RCR_RM8_IMM8", RflagsR_c_W_c_U_o, shiftMod9},
		{"RCL_RM16_IMM8", RflagsR_c_W_c_U_o, shiftMod17},
		{"RCR_RM16_IMM8", RflagsR_c_W_c_U_o, shiftMod17},
		{"RCL_RM32_IMM8", RflagsR_c_W_c_U_o, shiftMask1F},
		{"RCR_RM64_IMM8", RflagsR_c_W_c_U_o, shiftMask3F},
	}
	for _, s := range shifts {
		cpuid := CpuidINTEL186
		if s.mask == shiftMask3F {
			cpuid = CpuidX64
		}
		def(mustCode(s.form)).Ops(Op0ReadWrite, Op1Read).Rflags(s.rflags).
			Handler(HandlerShiftImm, shiftArg(1, s.mask)).Cpuid(cpuid)
	}
	def(x86.SHL_RM32_1).Ops(Op0ReadWrite, Op1Read).Rflags(RflagsW_copsz_U_a).Cpuid(CpuidINTEL386)
	def(x86.SHL_RM32_CL).Ops(Op0ReadWrite, Op1Read).Rflags(RflagsW_cpsz_U_ao).Cpuid(CpuidINTEL386)
	def(x86.SHR_RM64_CL).Ops(Op0ReadWrite, Op1Read).Rflags(RflagsW_cpsz_U_ao).Cpuid(CpuidX64)
	def(x86.SHLD_RM32_R32_IMM8).Ops(Op0ReadWrite, Op1Read).Op2(Op2Read).Rflags(RflagsW_cpsz_U_ao).
		Handler(HandlerShiftImm, shiftArg(2, shiftMask1F)).Cpuid(CpuidINTEL386)
	def(x86.SHRD_RM64_R64_IMM8).Ops(Op0ReadWrite, Op1Read).Op2(Op2Read).Rflags(RflagsW_cpsz_U_ao).
		Handler(HandlerShiftImm, shiftArg(2, shiftMask3F)).Cpuid(CpuidX64)
	def(x86.SHLD_RM32_R32_CL).Ops(Op0ReadWrite, Op1Read).Op2(Op2Read).Rflags(RflagsW_cpsz_U_ao).Cpuid(CpuidINTEL386)
}

func initMulDiv() {
	for _, c := range []x86.Code{x86.MUL_RM8, x86.MUL_RM16, x86.MUL_RM32, x86.MUL_RM64, x86.IMUL_RM8, x86.IMUL_RM32, x86.IMUL_RM64} {
		def(c).Op0(Op0Read).Rflags(RflagsW_co_U_apsz).Handler(HandlerFixedRegs, 0).Cpuid(widthCpuid(c.String()))
	}
	for _, c := range []x86.Code{x86.DIV_RM8, x86.DIV_RM16, x86.DIV_RM32, x86.DIV_RM64, x86.IDIV_RM8, x86.IDIV_RM32, x86.IDIV_RM64} {
		def(c).Op0(Op0Read).Rflags(RflagsU_acopsz).Handler(HandlerFixedRegs, 0).Cpuid(widthCpuid(c.String()))
	}
	def(x86.IMUL_R32_RM32).Ops(Op0ReadWrite, Op1Read).Rflags(RflagsW_co_U_apsz).Cpuid(CpuidINTEL386)
	def(x86.IMUL_R64_RM64).Ops(Op0ReadWrite, Op1Read).Rflags(RflagsW_co_U_apsz).Cpuid(CpuidX64)
	def(x86.IMUL_R32_RM32_IMM32).Ops(Op0Write, Op1Read).Op2(Op2Read).Rflags(RflagsW_co_U_apsz).Cpuid(CpuidINTEL386)
	def(x86.IMUL_R32_RM32_IMM8).Ops(Op0Write, Op1Read).Op2(Op2Read).Rflags(RflagsW_co_U_apsz).Cpuid(CpuidINTEL386)
	def(x86.MULX_R32_R32_RM32).Ops(Op0Write, Op1Write).Op2(Op2Read).Enc(EncodingVEX).Handler(HandlerFixedRegs, 0).Cpuid(CpuidBMI2)
	def(x86.MULX_R64_R64_RM64).Ops(Op0Write, Op1Write).Op2(Op2Read).Enc(EncodingVEX).Handler(HandlerFixedRegs, 0).Cpuid(CpuidBMI2)

	def(x86.CBW).Handler(HandlerFixedRegs, 0)
	def(x86.CWDE).Handler(HandlerFixedRegs, 0).Cpuid(CpuidINTEL386)
	def(x86.CDQE).Handler(HandlerFixedRegs, 0).Cpuid(CpuidX64)
	def(x86.CWD).Handler(HandlerFixedRegs, 0)
	def(x86.CDQ).Handler(HandlerFixedRegs, 0).Cpuid(CpuidINTEL386)
	def(x86.CQO).Handler(HandlerFixedRegs, 0).Cpuid(CpuidX64)
}

func initSystem() {
	def(x86.CPUID).Handler(HandlerFixedRegs, 0).Cpuid(CpuidCPUID)
	def(x86.RDTSC).Handler(HandlerFixedRegs, 0).Cpuid(CpuidTSC)
	def(x86.RDTSCP).Handler(HandlerFixedRegs, 0).Cpuid(CpuidRDTSCP)
	def(x86.XGETBV).Handler(HandlerFixedRegs, 0).Cpuid(CpuidXSAVE)
	def(x86.XSETBV).Handler(HandlerFixedRegs, 0).Cpuid(CpuidXSAVE)
	def(x86.RDMSR).Handler(HandlerFixedRegs, 0).Cpuid(CpuidMSR)
	def(x86.WRMSR).Handler(HandlerFixedRegs, 0).Cpuid(CpuidMSR)

	def(x86.INT3).Flow(FlowInterrupt)
	def(x86.INT_IMM8).Op0(Op0Read).Flow(FlowInterrupt)
	def(x86.UD2).Flow(FlowException).Cpuid(CpuidINTEL286)
	def(x86.HLT)

	def(x86.SYSCALL).Flow(FlowCall).Handler(HandlerSyscall, 0).Cpuid(CpuidSYSCALL)
	def(x86.SYSENTER).Flow(FlowCall).Handler(HandlerSysenter, 0).Cpuid(CpuidSEP)
	def(x86.SYSEXITD).Flow(FlowReturn).Handler(HandlerFixedRegs, 0).Cpuid(CpuidSEP)
	def(x86.SYSEXITQ).Flow(FlowReturn).Handler(HandlerFixedRegs, 0).Cpuid(CpuidSEP)
	def(x86.SYSRETD).Flow(FlowReturn).Handler(HandlerFixedRegs, 0).Cpuid(CpuidSYSCALL)
	def(x86.SYSRETQ).Flow(FlowReturn).Handler(HandlerFixedRegs, 0).Cpuid(CpuidSYSCALL)
}

func initStack() {
	sizes := []struct {
		suffix string
		size   int
		cpuid  CpuidFeature
	}{
		{"16", 2, CpuidINTEL8086},
		{"32", 4, CpuidINTEL386},
		{"64", 8, CpuidX64},
	}
	for _, s := range sizes {
		arg := stackArg(s.size, 1)
		def(mustCode("PUSH_R"+s.suffix)).Op0(Op0Read).Handler(HandlerPush, arg).Cpuid(s.cpuid)
		def(mustCode("PUSH_RM"+s.suffix)).Op0(Op0Read).Handler(HandlerPush, arg).Cpuid(s.cpuid)
		def(mustCode("POP_R"+s.suffix)).Op0(Op0Write).Handler(HandlerPop, arg).Cpuid(s.cpuid)
		def(mustCode("POP_RM"+s.suffix)).Op0(Op0Write).Handler(HandlerPopRm, arg).Cpuid(s.cpuid)
		def(mustCode("CALL_RM"+s.suffix)).Op0(Op0Read).Flow(FlowIndirectCall).Handler(HandlerPush, arg).Cpuid(s.cpuid)
	}
	def(x86.PUSHW_IMM8).Op0(Op0Read).Handler(HandlerPush, stackArg(2, 1)).Cpuid(CpuidINTEL186)
	def(x86.PUSHD_IMM32).Op0(Op0Read).Handler(HandlerPush, stackArg(4, 1)).Cpuid(CpuidINTEL386)
	def(x86.PUSHQ_IMM8).Op0(Op0Read).Handler(HandlerPush, stackArg(8, 1)).Cpuid(CpuidX64)
	def(x86.PUSHQ_IMM32).Op0(Op0Read).Handler(HandlerPush, stackArg(8, 1)).Cpuid(CpuidX64)

	def(x86.PUSHFW).Rflags(RflagsR_acopszdi).Handler(HandlerPush, stackArg(2, 1))
	def(x86.PUSHFD).Rflags(RflagsR_acopszdi).Handler(HandlerPush, stackArg(4, 1)).Cpuid(CpuidINTEL386)
	def(x86.PUSHFQ).Rflags(RflagsR_acopszdi).Handler(HandlerPush, stackArg(8, 1)).Cpuid(CpuidX64)
	def(x86.POPFW).Rflags(RflagsW_acopszdi).Handler(HandlerPop, stackArg(2, 1))
	def(x86.POPFD).Rflags(RflagsW_acopszdi).Handler(HandlerPop, stackArg(4, 1)).Cpuid(CpuidINTEL386)
	def(x86.POPFQ).Rflags(RflagsW_acopszdi).Handler(HandlerPop, stackArg(8, 1)).Cpuid(CpuidX64)

	def(x86.PUSHAW).Handler(HandlerPusha, 2).Cpuid(CpuidINTEL186)
	def(x86.PUSHAD).Handler(HandlerPusha, 4).Cpuid(CpuidINTEL386)
	def(x86.POPAW).Handler(HandlerPopa, 2).Cpuid(CpuidINTEL186)
	def(x86.POPAD).Handler(HandlerPopa, 4).Cpuid(CpuidINTEL386)

	def(x86.ENTERW_IMM16_IMM8).Ops(Op0Read, Op1Read).Handler(HandlerEnter, 2).Cpuid(CpuidINTEL186)
	def(x86.ENTERD_IMM16_IMM8).Ops(Op0Read, Op1Read).Handler(HandlerEnter, 4).Cpuid(CpuidINTEL386)
	def(x86.ENTERQ_IMM16_IMM8).Ops(Op0Read, Op1Read).Handler(HandlerEnter, 8).Cpuid(CpuidX64)
	def(x86.LEAVEW).Handler(HandlerLeave, 2).Cpuid(CpuidINTEL186)
	def(x86.LEAVED).Handler(HandlerLeave, 4).Cpuid(CpuidINTEL386)
	def(x86.LEAVEQ).Handler(HandlerLeave, 8).Cpuid(CpuidX64)
}

func initBranches() {
	def(x86.CALL_REL16).Op0(Op0Read).Flow(FlowCall).Handler(HandlerPush, stackArg(2, 1))
	def(x86.CALL_REL32_32).Op0(Op0Read).Flow(FlowCall).Handler(HandlerPush, stackArg(4, 1)).Cpuid(CpuidINTEL386)
	def(x86.CALL_REL32_64).Op0(Op0Read).Flow(FlowCall).Handler(HandlerPush, stackArg(8, 1)).Cpuid(CpuidX64)
	def(x86.CALL_PTR1616).Op0(Op0Read).Flow(FlowCall).Handler(HandlerPush, stackArg(2, 2))
	def(x86.CALL_PTR1632).Op0(Op0Read).Flow(FlowCall).Handler(HandlerPush, stackArg(4, 2)).Cpuid(CpuidINTEL386)

	def(x86.RETNW).Flow(FlowReturn).Handler(HandlerPop, stackArg(2, 1))
	def(x86.RETND).Flow(FlowReturn).Handler(HandlerPop, stackArg(4, 1)).Cpuid(CpuidINTEL386)
	def(x86.RETNQ).Flow(FlowReturn).Handler(HandlerPop, stackArg(8, 1)).Cpuid(CpuidX64)
	def(x86.RETNW_IMM16).Op0(Op0Read).Flow(FlowReturn).Handler(HandlerPop, stackArg(2, 1))
	def(x86.RETND_IMM16).Op0(Op0Read).Flow(FlowReturn).Handler(HandlerPop, stackArg(4, 1)).Cpuid(CpuidINTEL386)
	def(x86.RETNQ_IMM16).Op0(Op0Read).Flow(FlowReturn).Handler(HandlerPop, stackArg(8, 1)).Cpuid(CpuidX64)
	def(x86.RETFD).Flow(FlowReturn).Handler(HandlerPop, stackArg(4, 2)).Cpuid(CpuidINTEL386)
	def(x86.IRETW).Flow(FlowReturn).Rflags(RflagsW_acopszdi).Handler(HandlerIret, 2)
	def(x86.IRETD).Flow(FlowReturn).Rflags(RflagsW_acopszdi).Handler(HandlerIret, 4).Cpuid(CpuidINTEL386)
	def(x86.IRETQ).Flow(FlowReturn).Rflags(RflagsW_acopszdi).Handler(HandlerIret, 8).Cpuid(CpuidX64)

	def(x86.JMP_REL8_16).Op0(Op0Read).Flow(FlowUnconditionalBranch)
	def(x86.JMP_REL8_32).Op0(Op0Read).Flow(FlowUnconditionalBranch).Cpuid(CpuidINTEL386)
	def(x86.JMP_REL8_64).Op0(Op0Read).Flow(FlowUnconditionalBranch).Cpuid(CpuidX64)
	def(x86.JMP_REL32_32).Op0(Op0Read).Flow(FlowUnconditionalBranch).Cpuid(CpuidINTEL386)
	def(x86.JMP_REL32_64).Op0(Op0Read).Flow(FlowUnconditionalBranch).Cpuid(CpuidX64)
	def(x86.JMP_RM32).Op0(Op0Read).Flow(FlowIndirectBranch).Cpuid(CpuidINTEL386)
	def(x86.JMP_RM64).Op0(Op0Read).Flow(FlowIndirectBranch).Cpuid(CpuidX64)
	def(x86.JMP_PTR1616).Op0(Op0Read).Flow(FlowUnconditionalBranch)
	def(x86.JMP_PTR1632).Op0(Op0Read).Flow(FlowUnconditionalBranch).Cpuid(CpuidINTEL386)

	def(x86.JE_REL8_32).Op0(Op0Read).Flow(FlowConditionalBranch).Rflags(RflagsR_z).Cpuid(CpuidINTEL386)
	def(x86.JE_REL8_64).Op0(Op0Read).Flow(FlowConditionalBranch).Rflags(RflagsR_z).Cpuid(CpuidX64)
	def(x86.JNE_REL32_64).Op0(Op0Read).Flow(FlowConditionalBranch).Rflags(RflagsR_z).Cpuid(CpuidX64)
	for _, c := range []x86.Code{x86.JCXZ_REL8_16, x86.JECXZ_REL8_32, x86.JECXZ_REL8_64, x86.JRCXZ_REL8_64,
		x86.LOOP_REL8_16_CX, x86.LOOP_REL8_32_ECX, x86.LOOP_REL8_64_RCX} {
		def(c).Op0(Op0Read).Flow(FlowConditionalBranch).Handler(HandlerFixedRegs, 0).Cpuid(widthCpuid(c.String()))
	}
	def(x86.LOOPE_REL8_64_RCX).Op0(Op0Read).Flow(FlowConditionalBranch).Rflags(RflagsR_z).Handler(HandlerFixedRegs, 0).Cpuid(CpuidX64)
}

func initStrings() {
	str := []struct {
		code   x86.Code
		op0    OpInfo0
		rflags RflagsInfo
	}{
		{x86.STOSB_M8_AL, Op0Write, RflagsR_d},
		{x86.STOSW_M16_AX, Op0Write, RflagsR_d},
		{x86.STOSD_M32_EAX, Op0Write, RflagsR_d},
		{x86.STOSQ_M64_RAX, Op0Write, RflagsR_d},
		{x86.LODSB_AL_M8, Op0Write, RflagsR_d},
		{x86.LODSW_AX_M16, Op0Write, RflagsR_d},
		{x86.LODSD_EAX_M32, Op0Write, RflagsR_d},
		{x86.LODSQ_RAX_M64, Op0Write, RflagsR_d},
		{x86.MOVSB_M8_M8, Op0Write, RflagsR_d},
		{x86.MOVSW_M16_M16, Op0Write, RflagsR_d},
		{x86.MOVSD_M32_M32, Op0Write, RflagsR_d},
		{x86.MOVSQ_M64_M64, Op0Write, RflagsR_d},
		{x86.CMPSB_M8_M8, Op0Read, RflagsR_d_W_acopsz},
		{x86.CMPSD_M32_M32, Op0Read, RflagsR_d_W_acopsz},
		{x86.CMPSQ_M64_M64, Op0Read, RflagsR_d_W_acopsz},
		{x86.SCASB_AL_M8, Op0Read, RflagsR_d_W_acopsz},
		{x86.SCASD_EAX_M32, Op0Read, RflagsR_d_W_acopsz},
		{x86.SCASQ_RAX_M64, Op0Read, RflagsR_d_W_acopsz},
		{x86.INSB_M8_DX, Op0Write, RflagsR_d},
		{x86.INSD_M32_DX, Op0Write, RflagsR_d},
		{x86.OUTSB_DX_M8, Op0Read, RflagsR_d},
		{x86.OUTSD_DX_M32, Op0Read, RflagsR_d},
	}
	for _, s := range str {
		cpuid := widthCpuid(s.code.String())
		if s.code.Mnemonic() == "insb" || s.code.Mnemonic() == "outsb" {
			cpuid = CpuidINTEL186
		}
		def(s.code).Ops(s.op0, Op1Read).Rflags(s.rflags).Handler(HandlerString, 0).Cpuid(cpuid)
	}
	def(x86.XLAT_M8).Op0(Op0Read).Handler(HandlerXlat, 0)

	def(x86.MASKMOVQ_RDI_MM_MM).Ops(Op0CondWrite, Op1Read).Op2(Op2Read).Cpuid(CpuidSSE)
	def(x86.MASKMOVDQU_RDI_XMM_XMM).Ops(Op0CondWrite, Op1Read).Op2(Op2Read).Cpuid(CpuidSSE2)
	def(x86.VMASKMOVDQU_RDI_XMM_XMM).Ops(Op0CondWrite, Op1Read).Op2(Op2Read).Enc(EncodingVEX).Cpuid(CpuidAVX)
}

func initSimd() {
	def(x86.PXOR_XMM_XMMM128).Ops(Op0ReadWrite, Op1Read).Handler(HandlerClearReg, uint8(RflagsInfoNone)).Cpuid(CpuidSSE2)
	def(x86.PSUBB_XMM_XMMM128).Ops(Op0ReadWrite, Op1Read).Handler(HandlerClearReg, uint8(RflagsInfoNone)).Cpuid(CpuidSSE2)
	def(x86.XORPS_XMM_XMMM128).Ops(Op0ReadWrite, Op1Read).Handler(HandlerClearReg, uint8(RflagsInfoNone)).Cpuid(CpuidSSE)
	def(x86.MOVAPS_XMM_XMMM128).Ops(Op0Write, Op1Read).Cpuid(CpuidSSE)
	def(x86.MOVSS_XMMM32_XMM).Ops(Op0WriteMem_ReadWriteReg, Op1Read).Cpuid(CpuidSSE)

	def(x86.VPXOR_XMM_XMM_XMMM128).Ops(Op0Write, Op1Read).Op2(Op2Read).Enc(EncodingVEX).Handler(HandlerClearVec3, 0).Cpuid(CpuidAVX)
	def(x86.VPXOR_YMM_YMM_YMMM256).Ops(Op0Write, Op1Read).Op2(Op2Read).Enc(EncodingVEX).Handler(HandlerClearVec3, 0).Cpuid(CpuidAVX2)
	def(x86.VXORPS_YMM_YMM_YMMM256).Ops(Op0Write, Op1Read).Op2(Op2Read).Enc(EncodingVEX).Handler(HandlerClearVec3, 0).Cpuid(CpuidAVX)
	def(x86.VMOVAPS_YMM_YMMM256).Ops(Op0Write, Op1Read).Enc(EncodingVEX).Cpuid(CpuidAVX)

	def(x86.VPXORD_ZMM_K1Z_ZMM_ZMMM512B32).Ops(Op0Write, Op1Read).Op2(Op2Read).Enc(EncodingEVEX).Handler(HandlerClearVec3, 0).Cpuid(CpuidAVX512F)
	def(x86.VPADDD_XMM_K1Z_XMM_XMMM128B32).Ops(Op0Write, Op1Read).Op2(Op2Read).Enc(EncodingEVEX).Cpuid(CpuidAVX512F)
	def(x86.VADDPS_ZMM_K1Z_ZMM_ZMMM512B32_ER).Ops(Op0Write, Op1Read).Op2(Op2Read).Enc(EncodingEVEX).Cpuid(CpuidAVX512F)
	def(x86.VMOVDQA32_ZMM_K1Z_ZMMM512).Ops(Op0Write, Op1Read).Enc(EncodingEVEX).Cpuid(CpuidAVX512F)
	def(x86.VMOVUPS_ZMMM512_K1Z_ZMM).Ops(Op0Write, Op1Read).Enc(EncodingEVEX).Cpuid(CpuidAVX512F)
	def(x86.VPCMPEQD_KR_K1_ZMM_ZMMM512B32).Ops(Op0WriteForce, Op1Read).Op2(Op2Read).Enc(EncodingEVEX).Cpuid(CpuidAVX512F)

	def(x86.VPGATHERDD_XMM_VM32X_XMM).Ops(Op0ReadCondWrite, Op1CondRead).Op2(Op2ReadWrite).Vsib(Vsib32).Enc(EncodingVEX).Cpuid(CpuidAVX2)
	def(x86.VPGATHERQQ_YMM_VM64Y_YMM).Ops(Op0ReadCondWrite, Op1CondRead).Op2(Op2ReadWrite).Vsib(Vsib64).Enc(EncodingVEX).Cpuid(CpuidAVX2)
	def(x86.VPGATHERDD_ZMM_K1_VM32Z).Ops(Op0ReadCondWrite, Op1CondRead).OpmaskRW().Vsib(Vsib32).Enc(EncodingEVEX).Cpuid(CpuidAVX512F)
	def(x86.VPSCATTERDD_VM32Z_K1_ZMM).Ops(Op0CondWrite, Op1Read).OpmaskRW().Vsib(Vsib32).Enc(EncodingEVEX).Cpuid(CpuidAVX512F)

	def(x86.V4FMADDPS_ZMM_K1Z_ZMMP3_M128).Ops(Op0ReadWrite, Op1ReadP3).Op2(Op2Read).Enc(EncodingEVEX).Cpuid(CpuidAVX512_4FMAPS)
	def(x86.VP4DPWSSD_ZMM_K1Z_ZMMP3_M128).Ops(Op0ReadWrite, Op1ReadP3).Op2(Op2Read).Enc(EncodingEVEX).Cpuid(CpuidAVX512_4VNNIW)

	def(x86.VFMADDPS_XMM_XMM_XMMM128_XMM).Ops(Op0Write, Op1Read).Op2(Op2Read).Op3(Op3Read).Enc(EncodingVEX).Cpuid(CpuidFMA4)
	def(x86.VPCMOV_XMM_XMM_XMMM128_XMM).Ops(Op0Write, Op1Read).Op2(Op2Read).Op3(Op3Read).Enc(EncodingXOP).Cpuid(CpuidXOP)
	def(x86.VPERMIL2PS_XMM_XMM_XMMM128_XMM_IMM4).Ops(Op0Write, Op1Read).Op2(Op2Read).Op3(Op3Read).Op4(Op4Read).Enc(EncodingVEX).Cpuid(CpuidXOP)
	def(x86.PFADD_MM_MMM64).Ops(Op0ReadWrite, Op1Read).Enc(Encoding3DNow).Cpuid(Cpuid3DNOW)
}

// addrSizes maps the _16/_32/_64 and W/D/Q code suffixes to address sizes.
var addrSizes = []struct {
	num, letter string
	size        int
}{
	{"16", "W", 2},
	{"32", "D", 4},
	{"64", "Q", 8},
}

func initVendor() {
	for _, a := range addrSizes {
		asz := uint8(a.size)
		def(mustCode("XSTORE_"+a.num)).Handler(HandlerXstore, asz).Cpuid(CpuidPADLOCK_RNG)
		def(mustCode("XCRYPTECB_"+a.num)).Handler(HandlerXcrypt, xcryptArg(a.size, false)).Cpuid(CpuidPADLOCK_ACE)
		for _, mode := range []string{"XCRYPTCBC_", "XCRYPTCTR_", "XCRYPTCFB_", "XCRYPTOFB_"} {
			def(mustCode(mode+a.num)).Handler(HandlerXcrypt, xcryptArg(a.size, true)).Cpuid(CpuidPADLOCK_ACE)
		}
		def(mustCode("XSHA1_"+a.num)).Handler(HandlerXsha, asz).Cpuid(CpuidPADLOCK_PHE)
		def(mustCode("XSHA256_"+a.num)).Handler(HandlerXsha, asz).Cpuid(CpuidPADLOCK_PHE)
		def(mustCode("MONTMUL_"+a.num)).Handler(HandlerMontmul, asz).Cpuid(CpuidPADLOCK_PMM)

		for _, svm := range []string{"VMLOAD", "VMSAVE", "VMRUN"} {
			def(mustCode(svm+a.letter)).Handler(HandlerSvm, asz).Cpuid(CpuidSVM)
		}
		def(mustCode("MONITOR"+a.letter)).Handler(HandlerMonitor, asz).Cpuid(CpuidMONITOR)
		def(mustCode("MONITORX"+a.letter)).Handler(HandlerMonitor, asz).Cpuid(CpuidMONITORX)
		def(mustCode("CLZERO"+a.letter)).Handler(HandlerClzero, asz).Cpuid(CpuidCLZERO)
		def(mustCode("INVLPGA"+a.letter)).Handler(HandlerInvlpga, asz).Cpuid(CpuidSVM)

		def(mustCode("MOVDIR64B_R"+a.num+"_M512")).Ops(Op0Read, Op1Read).Handler(HandlerMovdir64b, 0).Cpuid(CpuidMOVDIR64B)
		def(mustCode("UMONITOR_R"+a.num)).Op0(Op0Read).Handler(HandlerUmonitor, 0).Cpuid(CpuidWAITPKG)
	}
	def(x86.LLWPCB_R32).Op0(Op0Read).Enc(EncodingXOP).Handler(HandlerLlwpcb, 0).Cpuid(CpuidLWP)
	def(x86.LLWPCB_R64).Op0(Op0Read).Enc(EncodingXOP).Handler(HandlerLlwpcb, 0).Cpuid(CpuidLWP)

	def(x86.MWAIT).Handler(HandlerFixedRegs, 0).Cpuid(CpuidMONITOR)
	def(x86.MWAITX).Handler(HandlerFixedRegs, 0).Cpuid(CpuidMONITORX)
	def(x86.VMFUNC).Handler(HandlerFixedRegs, 0).Cpuid(CpuidVMX)
	def(x86.ENCLS).Handler(HandlerEncls, 0).Cpuid(CpuidSGX1)
	def(x86.PCONFIG).Handler(HandlerEncls, 0).Cpuid(CpuidPCONFIG)
}
