package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/colorfulnotion/x86info/log"
	"github.com/colorfulnotion/x86info/x86/decoder"
	"github.com/colorfulnotion/x86info/x86/info"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/spf13/cobra"
)

// flowNode is one decoded instruction of a def-use graph.
type flowNode struct {
	Name    string
	Asm     string
	Reads   []string
	Writes  []string
	Skipped bool
}

// flowEdge links the last writer of a register or flag to a later reader.
type flowEdge struct {
	From, To int
	Via      string
}

const rflagsResource = "rflags"

// buildDataflow walks code and links every read of a full register or of
// rflags to the instruction that last wrote it. Memory is not tracked.
func buildDataflow(code []byte, c *config) ([]flowNode, []flowEdge, error) {
	steps, err := decoder.DecodeAll(code, c.Bitness, c.IP)
	if err != nil {
		return nil, nil, err
	}
	f := info.NewFactory()
	lastWriter := map[string]int{}
	var nodes []flowNode
	var edges []flowEdge
	for i, s := range steps {
		n := flowNode{
			Name: fmt.Sprintf("%#x %s", c.IP+uint64(s.Offset), s.Asm),
			Asm:  s.Asm,
		}
		if s.Err != nil {
			log.Debug(log.CliMonitoring, "dataflow skips instruction", "offset", s.Offset, "err", s.Err)
			n.Skipped = true
			nodes = append(nodes, n)
			continue
		}
		ii := f.Info(&s.Instruction, info.Options{NoMemoryUsage: true})

		var reads, writes []string
		for _, u := range ii.UsedRegisters() {
			name := u.Register.FullRegister().String()
			if u.Access.Reads() {
				reads = appendUnique(reads, name)
			}
			if u.Access.Writes() {
				writes = appendUnique(writes, name)
			}
		}
		if ii.RflagsRead() != info.RflagsNone {
			reads = append(reads, rflagsResource)
		}
		if ii.RflagsModified() != info.RflagsNone {
			writes = append(writes, rflagsResource)
		}
		for _, r := range reads {
			if w, ok := lastWriter[r]; ok {
				edges = append(edges, flowEdge{From: w, To: i, Via: r})
			}
		}
		for _, w := range writes {
			lastWriter[w] = i
		}
		n.Reads, n.Writes = reads, writes
		nodes = append(nodes, n)
	}
	return nodes, edges, nil
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

func setupGraph(title string, nodes []flowNode, edges []flowEdge) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "register and flag def-use chains",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	gn := make([]opts.GraphNode, 0, len(nodes))
	for _, n := range nodes {
		tip := fmt.Sprintf("%s<br/>reads: %s<br/>writes: %s", n.Asm, strings.Join(n.Reads, ","), strings.Join(n.Writes, ","))
		if n.Skipped {
			tip = n.Asm + "<br/>no usage info"
		}
		gn = append(gn, opts.GraphNode{
			Name: n.Name,
			Tooltip: &opts.Tooltip{
				Show:      opts.Bool(true),
				Formatter: types.FuncStr(tip),
			},
		})
	}
	gl := make([]opts.GraphLink, 0, len(edges))
	for _, e := range edges {
		gl = append(gl, opts.GraphLink{
			Source: nodes[e.From].Name,
			Target: nodes[e.To].Name,
		})
	}

	graph.AddSeries("dataflow", gn, gl).SetSeriesOptions(
		charts.WithGraphChartOpts(opts.GraphChart{
			Force:  &opts.GraphForce{Repulsion: 1000, Gravity: 0.3},
			Layout: "force",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right", Formatter: "{b}"}),
	)
	return graph
}

func renderDataflow(w io.Writer, title string, nodes []flowNode, edges []flowEdge) error {
	page := components.NewPage()
	page.AddCharts(setupGraph(title, nodes, edges))
	return page.Render(w)
}

func newGraphCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "graph <hex bytes>",
		Short: "Render the register def-use graph of a byte stream as HTML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseHex(args...)
			if err != nil {
				return err
			}
			nodes, edges, err := buildDataflow(code, &cfg)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			title := fmt.Sprintf("%d bytes, %d-bit code at %#x", len(code), cfg.Bitness, cfg.IP)
			if err := renderDataflow(f, title, nodes, edges); err != nil {
				return err
			}
			fmt.Printf("✓ %d instructions, %d edges written to %s\n", len(nodes), len(edges), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "dataflow.html", "output HTML file")
	return cmd
}
