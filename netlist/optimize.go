//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import "fmt"

// maxOptimizeRounds bounds how many times Optimize repeats the full
// pass sequence looking for further progress, guarding against a pass
// ordering that could in principle oscillate.
const maxOptimizeRounds = 16

// Optimize runs the full pass pipeline to a fixed point: dead-node
// elimination, local contraction, literal canonicalization, structural
// dedup, tristate merge, and (if Params.FanoutLimit is set) fanout
// limiting, repeated until a full round makes no further change. This
// is the orchestration order the component design calls for: DCE first
// so later passes never waste work on unreachable nodes, contraction
// before dedup so folded constants expose more structural matches, and
// fanout limiting last so it sees the graph after the earlier passes'
// redirects, which move every reader of one node onto another and so
// can raise that node's fanout.
//
// On the first failing pass, Optimize stops and returns that pass's
// error wrapped with the pass name, leaving the Design in whatever
// partial state that pass left it in — callers that need a fallback
// should clone their Design (or keep an external copy) before calling
// Optimize.
func (d *Design) Optimize() error {
	for round := 0; round < maxOptimizeRounds; round++ {
		progress := 0

		n, err := d.OptDeadNodeElimination()
		if err != nil {
			return fmt.Errorf("OptDeadNodeElimination: %w", err)
		}
		progress += n

		n, err = d.OptContract()
		if err != nil {
			return fmt.Errorf("OptContract: %w", err)
		}
		progress += n

		n, err = d.OptCombineLiterals()
		if err != nil {
			return fmt.Errorf("OptCombineLiterals: %w", err)
		}
		progress += n

		n, err = d.OptDedup()
		if err != nil {
			return fmt.Errorf("OptDedup: %w", err)
		}
		progress += n

		n, err = d.OptTristateMerge()
		if err != nil {
			return fmt.Errorf("OptTristateMerge: %w", err)
		}
		progress += n

		n, err = d.OptLimitFanout()
		if err != nil {
			return fmt.Errorf("OptLimitFanout: %w", err)
		}
		progress += n

		if d.params.Diagnostics && d.params.Out != nil {
			d.writeDiagRound(round, progress)
		}

		if progress == 0 {
			break
		}
	}
	// A final DCE sweep catches anything the last productive round's
	// later passes (dedup, tristate merge, fanout limiting) made dead
	// but did not themselves need to clean up.
	if _, err := d.OptDeadNodeElimination(); err != nil {
		return fmt.Errorf("OptDeadNodeElimination: %w", err)
	}

	if d.params.Diagnostics && d.params.Out != nil {
		d.writeDiagSummary()
	}
	return nil
}
