//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import "testing"

func TestCombineLiterals(t *testing.T) {
	d := NewDesign(nil)
	a := d.NewLit(true, "")
	b := d.NewLit(true, "")
	c := d.NewLit(false, "")
	d.RegisterTap(a)
	d.RegisterTap(b)
	d.RegisterTap(c)

	merged, err := d.OptCombineLiterals()
	if err != nil {
		t.Fatalf("OptCombineLiterals: %v", err)
	}
	if merged != 1 {
		t.Fatalf("merged = %d, want 1", merged)
	}

	idA := tapID(d, 0)
	idB := tapID(d, 1)
	if idA != idB {
		t.Fatalf("two Lit(true) nodes should collapse to the same id, got %v and %v", idA, idB)
	}
	idC := tapID(d, 2)
	if idC == idA {
		t.Fatalf("Lit(false) must not collapse with Lit(true)")
	}
}

func TestCanonicalLitIdempotent(t *testing.T) {
	d := NewDesign(nil)
	first := d.CanonicalLit(true, "")
	second := d.CanonicalLit(true, "")
	if first != second {
		t.Fatalf("CanonicalLit(true) should be stable across calls, got %v then %v", first, second)
	}
}
