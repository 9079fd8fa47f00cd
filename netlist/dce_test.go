//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import "testing"

func TestDeadNodeElimination(t *testing.T) {
	d := NewDesign(nil)
	a := d.NewLit(true, "")
	live := d.NewInv(a, "")
	d.RegisterTap(live)

	dead := d.NewInv(a, "") // never tapped, never read

	if removed, err := d.OptDeadNodeElimination(); err != nil {
		t.Fatalf("OptDeadNodeElimination: %v", err)
	} else if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	if !d.Has(live) {
		t.Errorf("tapped node %v should survive DCE", live)
	}
	_ = dead
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (lit + inv)", d.Len())
	}
}

func TestRegDIsImplicitRoot(t *testing.T) {
	d := NewDesign(nil)
	a := d.NewLit(true, "")
	d.NewReg(a, "clk", "") // no explicit tap needed on D

	if removed, err := d.OptDeadNodeElimination(); err != nil {
		t.Fatalf("OptDeadNodeElimination: %v", err)
	} else if removed != 1 {
		t.Fatalf("removed = %d, want 1: the D input is a root, the untapped Reg itself is not", removed)
	}
}

func TestModuleOutputsAreNotImplicitRoots(t *testing.T) {
	// Per the resolved Open Question: a node that is nobody's input and
	// was never registered as a tap or port is dead, even if a caller
	// thinks of it as a module "output".
	d := NewDesign(nil)
	d.NewLit(true, "")

	removed, err := d.OptDeadNodeElimination()
	if err != nil {
		t.Fatalf("OptDeadNodeElimination: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1 (unregistered output is not a root)", removed)
	}
}
