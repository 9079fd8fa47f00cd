//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import "testing"

func TestNodeUniformInputs(t *testing.T) {
	d := NewDesign(nil)
	a := d.NewLit(true, "")
	b := d.NewLit(false, "")
	inv := d.NewInv(a, "")
	nand := d.NewNand(a, b, "")
	reg := d.NewReg(nand, "clk", "")

	invNode, err := d.Node(inv)
	if err != nil {
		t.Fatalf("Node(inv): %v", err)
	}
	if invNode.NumInputs() != 1 || invNode.Input(0) != a {
		t.Fatalf("Inv inputs = %v, want [%v]", invNode.Sources(), a)
	}

	nandNode, err := d.Node(nand)
	if err != nil {
		t.Fatalf("Node(nand): %v", err)
	}
	if nandNode.NumInputs() != 2 || nandNode.Input(0) != a || nandNode.Input(1) != b {
		t.Fatalf("Nand inputs wrong: %v", nandNode.Sources())
	}

	regNode, err := d.Node(reg)
	if err != nil {
		t.Fatalf("Node(reg): %v", err)
	}
	if regNode.NumInputs() != 1 || regNode.Input(0) != nand {
		t.Fatalf("Reg input = %v, want %v", regNode.Input(0), nand)
	}
	regNode.SetInput(0, a)
	if regNode.Input(0) != a {
		t.Fatalf("Reg SetInput did not take effect")
	}
}

func TestNodeMemUniformInputs(t *testing.T) {
	d := NewDesign(nil)
	a0 := d.NewLit(false, "")
	a1 := d.NewLit(true, "")
	d0 := d.NewLit(false, "")
	wa0 := d.NewLit(true, "")
	we := d.NewLit(true, "")

	mem := d.NewMemory([]ID{a0, a1}, []ID{d0}, []ID{wa0}, we, "", "")
	n, err := d.Node(mem)
	if err != nil {
		t.Fatalf("Node(mem): %v", err)
	}
	if n.NumInputs() != 5 {
		t.Fatalf("Mem NumInputs = %d, want 5", n.NumInputs())
	}
	want := []ID{a0, a1, d0, wa0, we}
	for i, w := range want {
		if got := n.Input(i); got != w {
			t.Errorf("Mem Input(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestCheckArity(t *testing.T) {
	d := NewDesign(nil)
	a := d.NewLit(true, "")
	inv := d.NewInv(a, "")
	n, _ := d.Node(inv)
	n.src = append(n.src, a) // force an arity violation
	if err := n.CheckArity(); err == nil {
		t.Fatalf("expected arity error, got nil")
	}
}
