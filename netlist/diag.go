//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"fmt"
	"sort"

	"github.com/markkurossi/tabulate"
)

// writeDiagRound writes one progress line to Params.Out after a round
// of Optimize, in the same "op / count / %" register as the teacher's
// profiling report in circuit/timing.go, minus the timing columns this
// package has no use for (a single Optimize call runs in-process, not
// across a network link worth profiling).
func (d *Design) writeDiagRound(round, progress int) {
	fmt.Fprintf(d.params.Out, "round %d: %d live nodes, %d rewrites\n",
		round, d.store.count(), progress)
}

// writeDiagSummary renders the full per-pass rewrite table plus the
// live-node fanout histogram, styled on circuit/timing.go's use of
// github.com/markkurossi/tabulate: one tabulate.Table per report,
// UnicodeLight borders, a bold Total row.
func (d *Design) writeDiagSummary() {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Pass").SetAlign(tabulate.ML)
	tab.Header("Before").SetAlign(tabulate.MR)
	tab.Header("After").SetAlign(tabulate.MR)
	tab.Header("Rewrites").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	totalRewrites := 0
	for i, name := range d.stats.passName {
		row := tab.Row()
		row.Column(name)
		row.Column(fmt.Sprintf("%d", d.stats.before[i]))
		row.Column(fmt.Sprintf("%d", d.stats.after[i]))
		row.Column(fmt.Sprintf("%d", d.stats.rewrites[i]))
		pct := 0.0
		if d.stats.before[i] > 0 {
			pct = float64(d.stats.rewrites[i]) / float64(d.stats.before[i]) * 100
		}
		row.Column(fmt.Sprintf("%.2f%%", pct))
		totalRewrites += d.stats.rewrites[i]
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", totalRewrites)).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	tab.Print(d.params.Out)

	d.diagFanoutHistogram()
}

// diagFanoutHistogram reproduces original_source's opt_limit_fanout
// "--- Before ---" / "--- After ---" histogram printing, routed through
// Params.Out instead of unconditional stdout: one row per distinct
// fanout value, with how many live nodes currently have that many
// readers.
func (d *Design) diagFanoutHistogram() {
	counts := d.fanoutCounts()
	hist := make(map[int]int)
	d.store.each(func(n *Node) {
		hist[counts[n.id]]++
	})

	var fanouts []int
	for f := range hist {
		fanouts = append(fanouts, f)
	}
	sort.Ints(fanouts)

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Fanout").SetAlign(tabulate.MR)
	tab.Header("Nodes").SetAlign(tabulate.MR)
	for _, f := range fanouts {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", f))
		row.Column(fmt.Sprintf("%d", hist[f]))
	}
	tab.Print(d.params.Out)
}
