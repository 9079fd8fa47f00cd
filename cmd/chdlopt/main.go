//
// main.go
//
// Copyright (c) 2019-2022 Markku Rossi
//
// All rights reserved.
//

// Command chdlopt builds a small demonstration netlist and runs it
// through the full optimization pipeline, printing diagnostics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rcurtin/chdl/netlist"
)

func main() {
	fanoutLimit := flag.Int("fanout-limit", 4, "maximum fanout before cloning or buffering a node")
	diagnostics := flag.Bool("diagnostics", true, "print pass diagnostics to stdout")
	flag.Parse()

	params := netlist.NewParams()
	params.FanoutLimit = *fanoutLimit
	params.Diagnostics = *diagnostics
	params.Out = os.Stdout

	d := netlist.NewDesign(params)
	buildDemo(d)

	if err := d.Validate(); err != nil {
		log.Fatalf("invalid design before optimization: %v", err)
	}

	if err := d.Optimize(); err != nil {
		log.Fatalf("optimize: %v", err)
	}

	fmt.Printf("final live node count: %d\n", d.Len())
	fmt.Printf("fingerprint: %x\n", d.Fingerprint())
}

// buildDemo wires up a small, deliberately redundant netlist: a
// double-negated literal, two duplicate Nand gates, and a literal read
// by many inverters. Every gate here reads only literals, so
// contraction folds each of them to a constant before dedup or the
// fanout limiter run.
func buildDemo(d *netlist.Design) {
	one := d.NewLit(true, "demo.one")
	zero := d.NewLit(false, "demo.zero")

	doubled := d.NewInv(d.NewInv(one, "demo.inv1"), "demo.inv2")
	d.RegisterTap(doubled)

	a := d.NewNand(one, zero, "demo.nand_a")
	b := d.NewNand(one, zero, "demo.nand_b")
	d.RegisterTap(a)
	d.RegisterTap(b)

	for i := 0; i < 10; i++ {
		d.RegisterTap(d.NewInv(one, "demo.fanout"))
	}

	d.NewReg(a, "clk0", "demo.reg")
}
