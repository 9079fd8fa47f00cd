//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import "fmt"

// structKey returns a canonical string key for a node's (kind, inputs)
// pair, used to hash-cons structurally identical nodes together. Nand
// is commutative (De Morgan: Nand(a,b) == Nand(b,a)), so its two inputs
// are sorted before hashing; Tristate's (input, enable) pairs are
// order-sensitive (they describe a priority-free but positionally
// distinct driver list) and are hashed as given. Lit, Reg and Mem are
// never deduplicated structurally: two Regs with identical D inputs are
// still two distinct pieces of state, and Lit dedup is
// OptCombineLiterals's job, not this pass's.
func structKey(n *Node) (string, bool) {
	switch n.kind {
	case KindInv:
		return fmt.Sprintf("Inv(%d)", n.src[0]), true
	case KindNand:
		a, b := n.src[0], n.src[1]
		if a > b {
			a, b = b, a
		}
		return fmt.Sprintf("Nand(%d,%d)", a, b), true
	case KindTristate:
		return fmt.Sprintf("Tristate%v", n.src), true
	default:
		return "", false
	}
}

// OptDedup merges structurally identical combinational nodes (same
// kind, same inputs) via hash-consing: the first occurrence of a given
// structure is kept, every later occurrence is redirected to it. Nodes
// are visited in increasing id order, so inputs built earlier (and
// already canonicalized by an earlier iteration of this pass, or a
// previous OptDedup call) are what later nodes hash against; this
// mirrors the strash-style "build low, reuse low" traversal rather than
// a fixed-point worklist, since the combinational fanin of any live node
// in this core is acyclic (registers are the only feedback path, and
// Reg is excluded from structural keying above).
func (d *Design) OptDedup() (int, error) {
	before := d.store.count()
	seen := make(map[string]ID)
	merged := 0
	var byKind [numKinds]int

	var ids []ID
	d.store.each(func(n *Node) { ids = append(ids, n.id) })

	for _, id := range ids {
		n, err := d.store.get(id)
		if err != nil {
			continue
		}
		key, ok := structKey(n)
		if !ok {
			continue
		}
		if existing, dup := seen[key]; dup {
			d.redirect(id, existing)
			d.store.markDead(id)
			merged++
			byKind[n.kind]++
			continue
		}
		seen[key] = id
	}

	d.permute()
	d.recordPass("Dedup", before, d.store.count(), merged, byKind)
	return merged, nil
}
