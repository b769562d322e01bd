package info

import (
	"encoding/json"

	"github.com/colorfulnotion/x86info/x86"
)

type instructionInfoJSON struct {
	OpAccesses      []OpAccess     `json:"op_accesses"`
	UsedRegisters   []UsedRegister `json:"used_registers"`
	UsedMemory      []UsedMemory   `json:"used_memory"`
	RflagsInfo      RflagsInfo     `json:"rflags_info"`
	RflagsRead      RflagsBits     `json:"rflags_read"`
	RflagsWritten   RflagsBits     `json:"rflags_written"`
	RflagsCleared   RflagsBits     `json:"rflags_cleared"`
	RflagsSet       RflagsBits     `json:"rflags_set"`
	RflagsUndefined RflagsBits     `json:"rflags_undefined"`
	FlowControl     FlowControl    `json:"flow_control"`
	Encoding        EncodingKind   `json:"encoding"`
	CpuidFeature    CpuidFeature   `json:"cpuid_feature"`
}

// MarshalJSON emits the accesses of the first OpCount operands and empty
// arrays rather than null for missing usages.
func (ii InstructionInfo) MarshalJSON() ([]byte, error) {
	out := instructionInfoJSON{
		OpAccesses:      append([]OpAccess{}, ii.opAccesses[:ii.opCount]...),
		UsedRegisters:   append([]UsedRegister{}, ii.usedRegisters...),
		UsedMemory:      append([]UsedMemory{}, ii.usedMemory...),
		RflagsInfo:      ii.rflags,
		RflagsRead:      ii.rflags.Read(),
		RflagsWritten:   ii.rflags.Written(),
		RflagsCleared:   ii.rflags.Cleared(),
		RflagsSet:       ii.rflags.Set(),
		RflagsUndefined: ii.rflags.Undefined(),
		FlowControl:     ii.flow,
		Encoding:        ii.encoding,
		CpuidFeature:    ii.cpuid,
	}
	return json.Marshal(out)
}

// Report pairs an instruction with its info for display and diffing.
type Report struct {
	Code     x86.Code        `json:"code"`
	CodeSize string          `json:"code_size"`
	IP       uint64          `json:"ip"`
	Length   int             `json:"length,omitempty"`
	Info     InstructionInfo `json:"info"`
}

// NewReport computes the info of in with opts.
func NewReport(in *x86.Instruction, opts Options) Report {
	return Report{
		Code:     in.Code(),
		CodeSize: in.CodeSize().String(),
		IP:       in.IP(),
		Length:   in.Len(),
		Info:     Info(in, opts),
	}
}
