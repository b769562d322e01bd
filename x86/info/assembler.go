// Package info computes the register and memory usage, operand accesses and
// rflags effects of an x86.Instruction.
package info

import (
	"github.com/colorfulnotion/x86info/log"
	"github.com/colorfulnotion/x86info/x86"
)

// Options drops whole usage lists from the result.
type Options struct {
	NoRegisterUsage bool
	NoMemoryUsage   bool
}

// Info returns the usage of in. The result owns its slices and is safe to
// keep. It is total over every valid instruction, including INVALID and the
// data declarations, which use nothing.
func Info(in *x86.Instruction, opts Options) InstructionInfo {
	var f Factory
	return *f.Info(in, opts)
}

// Factory computes InstructionInfo reusing its buffers between calls.
//
// The *InstructionInfo returned by Info, and the slices it hands out, are
// overwritten by the next call on the same Factory. Call Clone to keep a
// result. A Factory must not be used from more than one goroutine at a time.
type Factory struct {
	c     collector
	patch PatchSet
	info  InstructionInfo
}

func NewFactory() *Factory {
	return &Factory{
		c: collector{
			regs: make([]UsedRegister, 0, 16),
			mem:  make([]UsedMemory, 0, 4),
		},
	}
}

func (f *Factory) Info(in *x86.Instruction, opts Options) *InstructionInfo {
	d := DescriptorOf(in.Code())
	n := in.OpCount()

	acc := baselineAccesses(in, d)
	f.patch.Reset()
	runHandler(in, d, acc, &f.patch)
	for op := 0; op < n; op++ {
		if a, ok := f.patch.AccessOverride(op); ok {
			acc[op] = a
		}
	}
	rflags := d.Rflags()
	if f.patch.HasRflags {
		rflags = f.patch.Rflags
	}

	f.c.reset(in, d, opts)
	f.c.addOperands(acc, &f.patch)
	f.c.addOpmask()
	f.c.addPatch(&f.patch)

	if !f.patch.IsEmpty() {
		log.Trace(log.InfoMonitoring, "handler patch", "code", in.Code(), "handler", d.Handler(),
			"regs", len(f.patch.Registers), "mem", len(f.patch.Memory), "rflags", rflags)
	}

	f.info = InstructionInfo{
		usedRegisters: f.c.regs,
		usedMemory:    f.c.mem,
		opAccesses:    acc,
		opCount:       n,
		rflags:        rflags,
		flow:          d.FlowControl(),
		encoding:      d.Encoding(),
		cpuid:         d.CpuidFeature(),
	}
	return &f.info
}
