package main

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/x86info/x86"
	"github.com/colorfulnotion/x86info/x86/info"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// codeRow is one line of the code listing.
type codeRow struct {
	Code     x86.Code
	Ops      int
	Flow     info.FlowControl
	Encoding info.EncodingKind
	Cpuid    info.CpuidFeature
}

// listCodes returns the codes whose name contains filter and, when set,
// whose cpuid feature or encoding name matches exactly. Rows are sorted by
// sortBy: "name" or "code".
func listCodes(filter, cpuid, encoding, sortBy string) []codeRow {
	filter = strings.ToLower(filter)
	var rows []codeRow
	for c := x86.Code(0); int(c) < x86.CodeCount; c++ {
		d := info.DescriptorOf(c)
		row := codeRow{Code: c, Ops: c.OpCount(), Flow: d.FlowControl(), Encoding: d.Encoding(), Cpuid: d.CpuidFeature()}
		if filter != "" && !strings.Contains(c.String(), filter) {
			continue
		}
		if cpuid != "" && !strings.EqualFold(row.Cpuid.String(), cpuid) {
			continue
		}
		if encoding != "" && !strings.EqualFold(row.Encoding.String(), encoding) {
			continue
		}
		rows = append(rows, row)
	}
	if sortBy == "name" {
		slices.SortFunc(rows, func(a, b codeRow) int {
			return strings.Compare(a.Code.String(), b.Code.String())
		})
	}
	return rows
}

func newCodesCmd() *cobra.Command {
	var filter, cpuid, encoding, sortBy string
	cmd := &cobra.Command{
		Use:   "codes [filter]",
		Short: "List the instruction codes known to the info engine",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				filter = args[0]
			}
			if sortBy != "name" && sortBy != "code" {
				return fmt.Errorf("unknown sort key %q", sortBy)
			}
			rows := listCodes(filter, cpuid, encoding, sortBy)
			for _, r := range rows {
				fmt.Printf("%-40s ops=%d %-16s %-8s %s\n", r.Code, r.Ops, r.Flow, r.Encoding, r.Cpuid)
			}
			fmt.Printf("%d codes\n", len(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&cpuid, "cpuid", "", "only codes requiring this cpuid feature")
	cmd.Flags().StringVar(&encoding, "encoding", "", "only codes with this encoding (Legacy, VEX, EVEX, XOP, 3DNow)")
	cmd.Flags().StringVar(&sortBy, "sort", "code", "sort by: code or name")
	return cmd
}
