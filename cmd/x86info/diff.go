package main

import (
	"encoding/json"
	"fmt"

	"github.com/nsf/jsondiff"
	"github.com/spf13/cobra"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

func newDiffCmd() *cobra.Command {
	var (
		format       string
		rightBitness int
		noColor      bool
	)
	cmd := &cobra.Command{
		Use:   "diff <hex bytes> <hex bytes>",
		Short: "Compare the usage info of two instructions",
		Example: "  x86info diff 'f3 aa' 'aa'\n" +
			"  x86info diff --right-bitness 32 50 50",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			right := cfg
			if rightBitness != 0 {
				right.Bitness = rightBitness
				if err := right.validate(); err != nil {
					return err
				}
			}
			a, err := reportJSON(args[0], &cfg)
			if err != nil {
				return err
			}
			b, err := reportJSON(args[1], &right)
			if err != nil {
				return err
			}
			out, same, err := diffReports(a, b, format, !noColor)
			if err != nil {
				return err
			}
			if same {
				fmt.Println("no differences")
				return nil
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "ascii", "diff format: ascii or inline")
	cmd.Flags().IntVar(&rightBitness, "right-bitness", 0, "bitness of the second instruction (default: --bitness)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	return cmd
}

func reportJSON(hexBytes string, c *config) ([]byte, error) {
	code, err := parseHex(hexBytes)
	if err != nil {
		return nil, err
	}
	_, rep, err := decodeReport(code, c)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rep)
}

// diffReports renders the difference between two JSON reports. same is true
// when they match.
func diffReports(a, b []byte, format string, color bool) (string, bool, error) {
	switch format {
	case "inline":
		opts := jsondiff.DefaultJSONOptions()
		if color {
			opts = jsondiff.DefaultConsoleOptions()
		}
		diff, out := jsondiff.Compare(a, b, &opts)
		return out, diff == jsondiff.FullMatch, nil
	case "ascii":
		delta, err := gojsondiff.New().Compare(a, b)
		if err != nil {
			return "", false, err
		}
		if !delta.Modified() {
			return "", true, nil
		}
		var left map[string]interface{}
		if err := json.Unmarshal(a, &left); err != nil {
			return "", false, err
		}
		f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
			ShowArrayIndex: true,
			Coloring:       color,
		})
		out, err := f.Format(delta)
		return out, false, err
	}
	return "", false, fmt.Errorf("unknown diff format %q", format)
}
