//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

// litVal reports whether id names a Lit node, and if so its value.
func (d *Design) litVal(id ID) (value bool, isLit bool) {
	if id == InvalidID {
		return false, false
	}
	n, err := d.store.get(id)
	if err != nil || n.kind != KindLit {
		return false, false
	}
	return n.litValue, true
}

// OptContract applies local peephole simplifications until a fixed
// point: no single full scan leaves any further rewrite applicable.
// After every scan it runs OptDeadNodeElimination, exactly as
// original_source/opt.cpp's opt_contract do/while loop calls
// opt_dead_node_elimination() on every iteration: a rewrite commonly
// orphans a node (folding Inv(Inv(x)) to x leaves the inner Inv
// referenced by nobody) and the next scan should not have to look at
// it. Run standalone, this is what makes OptContract alone able to
// reach the live-node count the do/while loop promises, rather than
// needing a separate OptDeadNodeElimination call afterward. It returns
// the total number of rewrites applied across all rounds.
//
// Rules, applied in this priority order per node:
//
//	Inv(Inv(x))       -> x                         (redirect)
//	Inv(Lit(v))       -> Lit(!v)                   (redirect to CanonicalLit)
//	Nand(x, x)        -> Inv(x)                    (replace)
//	Nand(x, Lit(0))   -> Lit(1)                    (redirect to CanonicalLit, either operand order)
//	Nand(x, Lit(1))   -> Inv(x)                    (replace, either operand order)
//	Tristate first (in, enable==1) pair found -> in (redirect, stops immediately)
//	Tristate, no enable==1 pair                -> drop every (in, enable==0) pair
func (d *Design) OptContract() (int, error) {
	before := d.store.count()
	total := 0
	var byKind [numKinds]int
	for {
		n, err := d.contractPass(&byKind)
		if err != nil {
			return total, err
		}
		total += n
		if _, err := d.OptDeadNodeElimination(); err != nil {
			return total, err
		}
		if n == 0 {
			break
		}
	}
	d.recordPass("Contract", before, d.store.count(), total, byKind)
	return total, nil
}

func (d *Design) contractPass(byKind *[numKinds]int) (int, error) {
	count := 0
	// Snapshot ids first: the loop body may append new Lit nodes
	// (Inv(Lit(v)) folding) and we must not revisit those in this pass.
	ids := make([]ID, 0, len(d.store.nodes))
	d.store.each(func(n *Node) { ids = append(ids, n.id) })

	for _, id := range ids {
		n, err := d.store.get(id)
		if err != nil {
			continue // already redirected away earlier in this pass
		}
		switch n.kind {
		case KindInv:
			src := n.src[0]
			if sn, err := d.store.get(src); err == nil && sn.kind == KindInv {
				d.redirect(id, sn.src[0])
				d.store.markDead(id)
				count++
				byKind[KindInv]++
				continue
			}
			if v, ok := d.litVal(src); ok {
				lit := d.CanonicalLit(!v, n.path)
				d.redirect(id, lit)
				d.store.markDead(id)
				count++
				byKind[KindInv]++
				continue
			}
		case KindNand:
			a, b := n.src[0], n.src[1]
			if a == b {
				if err := d.replace(id, Node{kind: KindInv, src: []ID{a}, path: n.path}); err != nil {
					return count, err
				}
				count++
				byKind[KindNand]++
				continue
			}
			av, aIsLit := d.litVal(a)
			bv, bIsLit := d.litVal(b)
			switch {
			case aIsLit && !av, bIsLit && !bv:
				lit := d.CanonicalLit(true, n.path)
				d.redirect(id, lit)
				d.store.markDead(id)
				count++
				byKind[KindNand]++
			case aIsLit && av:
				if err := d.replace(id, Node{kind: KindInv, src: []ID{b}, path: n.path}); err != nil {
					return count, err
				}
				count++
				byKind[KindNand]++
			case bIsLit && bv:
				if err := d.replace(id, Node{kind: KindInv, src: []ID{a}, path: n.path}); err != nil {
					return count, err
				}
				count++
				byKind[KindNand]++
			}
		case KindTristate:
			collapsed := false
			for i := 0; i+1 < len(n.src); i += 2 {
				if ev, ok := d.litVal(n.src[i+1]); ok && ev {
					d.redirect(id, n.src[i])
					d.store.markDead(id)
					count++
					byKind[KindTristate]++
					collapsed = true
					break
				}
			}
			if collapsed {
				continue
			}
			var kept []ID
			changed := false
			for i := 0; i+1 < len(n.src); i += 2 {
				if ev, ok := d.litVal(n.src[i+1]); ok && !ev {
					changed = true
					continue
				}
				kept = append(kept, n.src[i], n.src[i+1])
			}
			if changed {
				if err := d.replace(id, Node{kind: KindTristate, src: kept, path: n.path}); err != nil {
					return count, err
				}
				count++
				byKind[KindTristate]++
			}
		}
	}
	return count, nil
}
