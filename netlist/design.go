//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"io"
)

// Params bundles the knobs every optimization pass reads, modeled on
// the teacher's own compiler option bag (compiler/utils.Params): a flat
// struct with a NewParams constructor filling in sane defaults, no
// functional options, no config file parsing.
type Params struct {
	// Diagnostics gates whether Optimize writes progress tables to Out.
	Diagnostics bool
	// Out receives diagnostics output when Diagnostics is set. Defaults
	// to nil (discarded) until the caller supplies one.
	Out io.Writer

	// FanoutLimit is the maximum number of readers any single node's
	// output may have after Design.OptLimitFanout runs. Zero disables
	// the pass.
	FanoutLimit int
	// FanoutMaxIterations bounds how many clone/buffer rounds the fanout
	// limiter may take before it reports ErrFanoutNonTermination.
	FanoutMaxIterations int

	// BuffersForRegs controls whether Reg nodes are cloned (like Nand,
	// Inv and Lit) or buffered when their fanout exceeds the limit.
	// Cloning a register duplicates its storage; some backends cannot
	// afford that, hence the flag rather than a hardcoded choice.
	BuffersForRegs bool
}

// NewParams returns Params initialized with the defaults this package
// uses when a caller does not otherwise care: fanout limiting off,
// diagnostics off.
func NewParams() *Params {
	return &Params{
		FanoutLimit:         0,
		FanoutMaxIterations: 64,
	}
}

// Design bundles the node store and the root-set registry into a single
// value, per the Design Note on avoiding module-global state: every
// piece of mutable graph state a pass touches hangs off one Design,
// never off package-level variables.
type Design struct {
	store   *store
	roots_  RootRegistry
	params  *Params
	stats   passStats
	canonLit [2]ID // canonical Lit(false)/Lit(true) ids, once built
}

// NewDesign returns an empty Design ready to accept nodes. A nil params
// is replaced by NewParams()'s defaults.
func NewDesign(params *Params) *Design {
	if params == nil {
		params = NewParams()
	}
	return &Design{
		store:    newStore(),
		params:   params,
		canonLit: [2]ID{InvalidID, InvalidID},
	}
}

// Params returns the Design's option bag, mutable in place.
func (d *Design) Params() *Params { return d.params }

// Len returns the number of currently live nodes.
func (d *Design) Len() int { return d.store.count() }

// Node returns the live node named by id.
func (d *Design) Node(id ID) (*Node, error) { return d.store.get(id) }

// Has reports whether id names a live node.
func (d *Design) Has(id ID) bool { return d.store.has(id) }

// Each calls f for every live node in increasing id order.
func (d *Design) Each(f func(*Node)) { d.store.each(f) }

// NewLit adds a constant node with value v and returns its id. Prefer
// CanonicalLit for ids that must survive repeated OptCombineLiterals
// passes without drifting; NewLit always allocates a fresh node.
func (d *Design) NewLit(v bool, path HierPath) ID {
	return d.store.append(Node{kind: KindLit, litValue: v, path: path})
}

// NewInv adds an inverter with the given source and returns its id.
func (d *Design) NewInv(src ID, path HierPath) ID {
	return d.store.append(Node{kind: KindInv, src: []ID{src}, path: path})
}

// NewNand adds a two-input Nand and returns its id.
func (d *Design) NewNand(a, b ID, path HierPath) ID {
	return d.store.append(Node{kind: KindNand, src: []ID{a, b}, path: path})
}

// NewReg adds a register with data input d, clocked in domain cd, and
// returns its id. The D input is automatically a liveness root (§3
// invariant): callers never need to RegisterTap a register's D net.
func (d *Design) NewReg(din ID, cd ClockDomain, path HierPath) ID {
	return d.store.append(Node{kind: KindReg, regD: din, clockDomain: cd, path: path})
}

// NewMemory adds a memory node with the given address, data, and
// write-address bit vectors plus a single write-enable bit, and returns
// its id. Every bit in addr/data/wrAddr, plus wrEn, is automatically a
// liveness root.
func (d *Design) NewMemory(addr, data, wrAddr []ID, wrEn ID, initFile string, path HierPath) ID {
	return d.store.append(Node{
		kind:      KindMem,
		memAddr:   append([]ID(nil), addr...),
		memData:   append([]ID(nil), data...),
		memWrAddr: append([]ID(nil), wrAddr...),
		memWrEn:   wrEn,
		memInit:   initFile,
		path:      path,
	})
}

// NewTristate adds a tristate-merge node from the given (input, enable)
// pairs and returns its id. pairs must have even length (invariant 5);
// violating that is caught at the next CheckArity/validate call, not
// here, since construction itself is not a rewrite pass.
func (d *Design) NewTristate(pairs []ID, path HierPath) ID {
	return d.store.append(Node{kind: KindTristate, src: append([]ID(nil), pairs...), path: path})
}

// RegisterTap marks id as an externally observed net, keeping it (and
// its fanin cone) alive across dead-node elimination.
func (d *Design) RegisterTap(id ID) { d.roots_.RegisterTap(id) }

// RegisterPort marks the net at owner's input slot as a submodule port,
// keeping its fanin cone alive even if owner itself later becomes dead.
func (d *Design) RegisterPort(owner ID, slot int) { d.roots_.RegisterPort(owner, slot) }

// Get returns the id currently named by a Net handle.
func (d *Design) Get(n Net) ID { return n.resolve(d) }

// Set retargets the net named by a Net handle to id. Used by callers
// that hold a Net into a node's input slot and want to rewire it
// directly, bypassing the rewrite primitives in redirect.go (which
// operate on every reader of an id at once, not a single slot).
func (d *Design) Set(n Net, id ID) error {
	if n.Owner == InvalidID {
		return &OptError{Kind: ErrOutOfRange, NodeID: id,
			Message: "cannot Set a free-standing (tap) net; use RegisterTap instead"}
	}
	owner, err := d.store.get(n.Owner)
	if err != nil {
		return err
	}
	owner.SetInput(n.Slot, id)
	return nil
}

// Validate checks invariant 5 (arity) for every live node and invariant
// 3/4 (every referenced input names a live node) transitively.
func (d *Design) Validate() error {
	var firstErr error
	d.store.each(func(n *Node) {
		if firstErr != nil {
			return
		}
		if err := n.CheckArity(); err != nil {
			firstErr = err
			return
		}
		for i := 0; i < n.NumInputs(); i++ {
			in := n.Input(i)
			if in == InvalidID {
				continue
			}
			if !d.store.has(in) {
				firstErr = &OptError{Kind: ErrOutOfRange, NodeID: n.id, NodeKind: n.kind,
					Message: "input references a dead or unknown node"}
			}
		}
	})
	return firstErr
}

// passStats accumulates per-pass rewrite counts for the diagnostics
// tables in diag.go.
type passStats struct {
	passName   []string
	before     []int
	after      []int
	rewrites   []int
	byKind     [][numKinds]int
}

func (d *Design) recordPass(name string, before, after, rewrites int, byKind [numKinds]int) {
	d.stats.passName = append(d.stats.passName, name)
	d.stats.before = append(d.stats.before, before)
	d.stats.after = append(d.stats.after, after)
	d.stats.rewrites = append(d.stats.rewrites, rewrites)
	d.stats.byKind = append(d.stats.byKind, byKind)
}
