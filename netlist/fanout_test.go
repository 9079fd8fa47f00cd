//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import "testing"

func TestLimitFanoutClonesCombinational(t *testing.T) {
	params := NewParams()
	params.FanoutLimit = 2
	d := NewDesign(params)

	src := d.NewLit(true, "")
	var readers []ID
	for i := 0; i < 5; i++ {
		inv := d.NewInv(src, "")
		d.RegisterTap(inv)
		readers = append(readers, inv)
	}

	if _, err := d.OptLimitFanout(); err != nil {
		t.Fatalf("OptLimitFanout: %v", err)
	}

	counts := d.fanoutCounts()
	// The original source id may itself have been replaced by permute;
	// re-resolve every reader's current input and recompute against
	// whichever ids they now name.
	seen := make(map[ID]int)
	for _, r := range readers {
		id := d.Get(NetDirect(r))
		n, err := d.Node(id)
		if err != nil {
			t.Fatalf("Node: %v", err)
		}
		seen[n.Input(0)]++
	}
	for driver, n := range seen {
		if n > params.FanoutLimit {
			t.Errorf("driver %v has %d readers after limiting, want <= %d", driver, n, params.FanoutLimit)
		}
	}
	_ = counts
}

func TestLimitFanoutBuffersTristate(t *testing.T) {
	params := NewParams()
	params.FanoutLimit = 2
	d := NewDesign(params)

	en := d.NewLit(true, "")
	in := d.NewLit(false, "")
	tri := d.NewTristate([]ID{in, en}, "")

	r1 := d.NewInv(tri, "")
	r2 := d.NewInv(tri, "")
	r3 := d.NewInv(tri, "")
	d.RegisterTap(r1)
	d.RegisterTap(r2)
	d.RegisterTap(r3)
	d.RegisterTap(in)
	d.RegisterTap(en)

	if _, err := d.OptLimitFanout(); err != nil {
		t.Fatalf("OptLimitFanout: %v", err)
	}

	counts := d.fanoutCounts()
	var triIDs []ID
	d.Each(func(n *Node) {
		if n.kind == KindTristate {
			triIDs = append(triIDs, n.id)
		}
	})
	for _, id := range triIDs {
		if counts[id] > params.FanoutLimit {
			t.Errorf("Tristate node %v still has fanout %d > %d after buffering", id, counts[id], params.FanoutLimit)
		}
	}
}

func TestLimitFanoutZeroDisables(t *testing.T) {
	d := NewDesign(nil) // FanoutLimit defaults to 0
	a := d.NewLit(true, "")
	for i := 0; i < 10; i++ {
		d.RegisterTap(d.NewInv(a, ""))
	}
	ops, err := d.OptLimitFanout()
	if err != nil {
		t.Fatalf("OptLimitFanout: %v", err)
	}
	if ops != 0 {
		t.Fatalf("FanoutLimit == 0 should disable the pass, got %d ops", ops)
	}
}
