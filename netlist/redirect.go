//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

// redirect retargets every reader of `from` to `to`: every live node's
// input slot naming `from`, plus every root-registry entry naming it
// directly. It does not mark `from` dead itself — callers that know
// `from` is now unreferenced do that explicitly, since a node can
// legitimately keep existing (e.g. still named by a tap) even after its
// readers move on.
//
// This is the full-scan alternative to the source's swap-the-tail
// trick, chosen because it keeps root-registry entries correct for
// free: a tap or port naming `from` follows the redirect exactly like
// any other reader would, which matters when the node being collapsed
// is itself directly tapped.
func (d *Design) redirect(from, to ID) {
	if from == to {
		return
	}
	d.store.each(func(n *Node) {
		for i := 0; i < n.NumInputs(); i++ {
			if n.Input(i) == from {
				n.SetInput(i, to)
			}
		}
	})
	for i := range d.roots_.taps {
		if d.roots_.taps[i].Owner == InvalidID && d.roots_.taps[i].direct == from {
			d.roots_.taps[i].direct = to
		}
	}
	for i := 0; i < 2; i++ {
		if d.canonLit[i] == from {
			d.canonLit[i] = to
		}
	}
}

// replace swaps the implementation of the node named by id in place:
// id, path, and every existing reader's reference to id are preserved.
// Used by local contraction to turn e.g. Nand(x, x) into Inv(x)
// without disturbing who points at the node.
func (d *Design) replace(id ID, n Node) error {
	return d.store.replace(id, n)
}

// permute compacts the store to only its live nodes and fixes up every
// reference: reader input slots (via store.remapInputs), root-registry
// entries, and the canonical-literal cache. It is the "permute" rewrite
// primitive from the node-store component, and the thing every pass
// calls after it finishes marking nodes dead.
func (d *Design) permute() {
	mapping := d.store.permute()
	d.store.remapInputs(mapping)
	for i := range d.roots_.taps {
		t := &d.roots_.taps[i]
		if t.Owner == InvalidID {
			if t.direct != InvalidID && int(t.direct) < len(mapping) {
				t.direct = mapping[t.direct]
			}
		} else if int(t.Owner) < len(mapping) {
			t.Owner = mapping[t.Owner]
		}
	}
	for i := range d.roots_.ports {
		p := &d.roots_.ports[i]
		if int(p.Owner) < len(mapping) {
			p.Owner = mapping[p.Owner]
		}
	}
	for i := 0; i < 2; i++ {
		if d.canonLit[i] != InvalidID && int(d.canonLit[i]) < len(mapping) {
			d.canonLit[i] = mapping[d.canonLit[i]]
		}
	}
}
