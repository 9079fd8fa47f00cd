//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"fmt"
	"sort"
)

// reader is one (owner, slot) pair referencing another node's output.
type reader struct {
	owner ID
	slot  int
}

// fanoutCounts returns, for every live node, how many input slots
// across the whole design currently reference it.
func (d *Design) fanoutCounts() map[ID]int {
	counts := make(map[ID]int)
	d.store.each(func(n *Node) {
		for i := 0; i < n.NumInputs(); i++ {
			if in := n.Input(i); in != InvalidID {
				counts[in]++
			}
		}
	})
	return counts
}

// readersOf returns every (owner, slot) pair currently referencing id,
// in stable (owner, slot) order.
func (d *Design) readersOf(id ID) []reader {
	var out []reader
	d.store.each(func(n *Node) {
		for i := 0; i < n.NumInputs(); i++ {
			if n.Input(i) == id {
				out = append(out, reader{owner: n.id, slot: i})
			}
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].owner != out[j].owner {
			return out[i].owner < out[j].owner
		}
		return out[i].slot < out[j].slot
	})
	return out
}

// clonable reports whether a node of this kind may be duplicated to
// split its fanout, rather than needing a buffer inserted downstream of
// it. Lit, Inv and Nand are pure combinational and safe to clone
// outright; Reg is clonable only when Params.BuffersForRegs is false,
// since cloning a register duplicates state, not just logic; Mem and
// Tristate are never clonable (a memory has one set of ports, and
// cloning a tristate driver would change which net its enable drives).
func (d *Design) clonable(k Kind) bool {
	switch k {
	case KindLit, KindInv, KindNand:
		return true
	case KindReg:
		return !d.params.BuffersForRegs
	default:
		return false
	}
}

func cloneNode(n *Node) Node {
	c := *n
	c.src = append([]ID(nil), n.src...)
	c.memAddr = append([]ID(nil), n.memAddr...)
	c.memData = append([]ID(nil), n.memData...)
	c.memWrAddr = append([]ID(nil), n.memWrAddr...)
	return c
}

// OptLimitFanout ensures no live node has more than Params.FanoutLimit
// readers, either by cloning the offending node (for clonable kinds) or
// by inserting a two-gate Inv(Inv(x)) buffer between it and the excess
// readers (for Mem, Tristate, and Regs when Params.BuffersForRegs is
// set). The buffer is deliberately non-self-referential: the
// intermediate reads the offender, and repl reads the intermediate, so
// the offender's own fanout count drops by one less than the number of
// readers moved to repl (the intermediate is its one new reader), round
// by round, rather than the buffer referencing its own output.
//
// With Params.Diagnostics set and Params.Out non-nil, it prints a
// fanout histogram before and after the pass.
//
// It returns the number of clone/buffer operations performed, or
// ErrFanoutNonTermination if Params.FanoutMaxIterations rounds are not
// enough to bring every node's fanout at or under the limit.
func (d *Design) OptLimitFanout() (int, error) {
	if d.params.FanoutLimit <= 0 {
		return 0, nil
	}
	diag := d.params.Diagnostics && d.params.Out != nil
	if diag {
		fmt.Fprintln(d.params.Out, "--- Before ---")
		d.diagFanoutHistogram()
	}
	before := d.store.count()
	ops := 0
	var byKind [numKinds]int

	for iter := 0; ; iter++ {
		counts := d.fanoutCounts()
		var offender ID = InvalidID
		d.store.each(func(n *Node) {
			if offender != InvalidID {
				return
			}
			if counts[n.id] > d.params.FanoutLimit {
				offender = n.id
			}
		})
		if offender == InvalidID {
			break
		}
		if iter >= d.params.FanoutMaxIterations {
			return ops, &OptError{Kind: ErrFanoutNonTermination, NodeID: offender, Pass: "OptLimitFanout",
				Message: "fanout limiter did not converge within FanoutMaxIterations"}
		}

		n, err := d.store.get(offender)
		if err != nil {
			continue
		}
		readers := d.readersOf(offender)
		limit := d.params.FanoutLimit
		if len(readers) <= limit {
			continue
		}

		var target ID
		var move []reader
		if d.clonable(n.kind) {
			// A clone is an independent node: it never itself becomes a
			// reader of offender, so offender keeps exactly `limit` of
			// its original readers.
			move = readers[limit:]
			clone := cloneNode(n)
			target = d.store.append(clone)
		} else {
			// The buffer's intermediate node reads offender, so offender
			// must give up one more original reader than in the clone
			// case to land at `limit` total (limit-1 kept + intermediate).
			keepN := limit - 1
			if keepN < 0 {
				keepN = 0
			}
			move = readers[keepN:]
			intermediate := d.NewInv(offender, n.path)
			target = d.NewInv(intermediate, n.path)
		}
		for _, r := range move {
			owner, err := d.store.get(r.owner)
			if err != nil {
				continue
			}
			owner.SetInput(r.slot, target)
		}
		ops++
		byKind[n.kind]++
	}

	d.permute()
	d.recordPass("LimitFanout", before, d.store.count(), ops, byKind)
	if diag {
		fmt.Fprintln(d.params.Out, "--- After ---")
		d.diagFanoutHistogram()
	}
	return ops, nil
}
