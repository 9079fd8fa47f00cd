//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a structural digest of the live subgraph that is
// stable under order-preserving renumbering such as compaction: two
// Designs whose live nodes match one for one in the same relative id
// order hash identically, because the digest walks nodes in id order
// and records structure (kind, relative input offsets) rather than raw
// ids. The same nodes listed in a different order hash differently.
//
// Borrows golang.org/x/crypto the same way the teacher does (vole.go
// imports the package's chacha20 subpackage for a cipher); this core
// uses its blake2b subpackage for a hash instead.
func (d *Design) Fingerprint() [32]byte {
	h, _ := blake2b.New256(nil)

	var buf [8]byte
	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	d.store.each(func(n *Node) {
		writeUint(uint64(n.kind))
		switch n.kind {
		case KindLit:
			if n.litValue {
				writeUint(1)
			} else {
				writeUint(0)
			}
		default:
			writeUint(uint64(n.NumInputs()))
			for i := 0; i < n.NumInputs(); i++ {
				in := n.Input(i)
				if in == InvalidID {
					writeUint(^uint64(0))
					continue
				}
				// Record the input's id relative to the current node's
				// id rather than its absolute value: absolute ids shift
				// under renumbering even when shape does not.
				writeUint(uint64(int64(n.id) - int64(in)))
			}
		}
	})

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
