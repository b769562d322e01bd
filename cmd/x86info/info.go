package main

import (
	"encoding/json"
	"fmt"

	log "github.com/colorfulnotion/x86info/log"
	"github.com/colorfulnotion/x86info/x86/info"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

func newInfoCmd() *cobra.Command {
	var asJSON, structured bool
	cmd := &cobra.Command{
		Use:     "info <hex bytes>",
		Short:   "Decode one instruction and print its usage info",
		Example: "  x86info info 48 01 03\n  x86info info --bitness 32 --json f3aa",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseHex(args...)
			if err != nil {
				return err
			}
			_, rep, err := decodeReport(code, &cfg)
			if err != nil {
				return err
			}
			if structured {
				log.EnableModule(log.CliMonitoring)
				log.Structured(log.CliMonitoring, "instruction_info", rep)
			}
			if asJSON {
				out, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}
			fmt.Println(reportTree(rep).String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a tree")
	cmd.Flags().BoolVar(&structured, "structured", false, "also emit a structured log record")
	return cmd
}

// reportTree renders a report the way block trees are printed.
func reportTree(rep info.Report) treeprint.Tree {
	ii := rep.Info
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("%s (%s-bit, ip %#x, len %d)", rep.Code, rep.CodeSize, rep.IP, rep.Length))

	if n := ii.OpCount(); n > 0 {
		ops := tree.AddBranch("operands")
		for i := 0; i < n; i++ {
			ops.AddNode(fmt.Sprintf("op%d: %s", i, ii.OpAccess(i)))
		}
	}
	if regs := ii.UsedRegisters(); len(regs) > 0 {
		b := tree.AddBranch("registers")
		for _, r := range regs {
			b.AddNode(r.String())
		}
	}
	if mem := ii.UsedMemory(); len(mem) > 0 {
		b := tree.AddBranch("memory")
		for _, m := range mem {
			b.AddNode(m.String())
		}
	}
	rf := tree.AddBranch(fmt.Sprintf("rflags: %s", ii.RflagsInfo()))
	if ii.RflagsInfo() != info.RflagsInfoNone {
		rf.AddNode("read: " + ii.RflagsRead().String())
		rf.AddNode("written: " + ii.RflagsWritten().String())
		rf.AddNode("cleared: " + ii.RflagsCleared().String())
		rf.AddNode("set: " + ii.RflagsSet().String())
		rf.AddNode("undefined: " + ii.RflagsUndefined().String())
	}
	tree.AddNode("flow: " + ii.FlowControl().String())
	tree.AddNode("encoding: " + ii.Encoding().String())
	tree.AddNode("cpuid: " + ii.CpuidFeature().String())
	return tree
}
