//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package netlist

// store is the dense node array described in the node-store component.
// Nodes are appended monotonically within a build/optimize cycle and
// compacted (via permute) between or after passes; there is no free
// list and no node is ever deleted in place, only marked dead and later
// swept by permute.
type store struct {
	nodes []Node
	// live is a parallel bitmap: live[i] is false once a pass has marked
	// the node dead (markDead), prior to permute renumbering it away
	// entirely.
	live []bool
}

func newStore() *store {
	return &store{}
}

// append adds n to the store, assigns it the next id, and returns that
// id.
func (s *store) append(n Node) ID {
	id := ID(len(s.nodes))
	n.id = id
	s.nodes = append(s.nodes, n)
	s.live = append(s.live, true)
	return id
}

// get returns a pointer to the node named by id, or an out-of-range
// error if id does not name a live slot.
func (s *store) get(id ID) (*Node, error) {
	if id == InvalidID || int(id) >= len(s.nodes) {
		return nil, &OptError{Kind: ErrOutOfRange, NodeID: id,
			Message: "id does not name a node in the store"}
	}
	if !s.live[id] {
		return nil, &OptError{Kind: ErrOutOfRange, NodeID: id,
			Message: "id names a node already marked dead"}
	}
	return &s.nodes[id], nil
}

// has reports whether id names a currently-live node, without erroring.
func (s *store) has(id ID) bool {
	return id != InvalidID && int(id) < len(s.nodes) && s.live[id]
}

// replace swaps a node's implementation in place: id, path and the
// node's identity as seen by every reader are preserved, only kind and
// payload change. This is the "replace" rewrite primitive.
func (s *store) replace(id ID, n Node) error {
	old, err := s.get(id)
	if err != nil {
		return err
	}
	n.id = id
	n.path = old.path
	s.nodes[id] = n
	return nil
}

// markDead flags id as no longer live. It does not touch any reader's
// input slots; callers that remove a node must first redirect every
// reader elsewhere.
func (s *store) markDead(id ID) {
	if int(id) < len(s.live) {
		s.live[id] = false
	}
}

// count returns the number of live nodes.
func (s *store) count() int {
	n := 0
	for _, l := range s.live {
		if l {
			n++
		}
	}
	return n
}

// each calls f for every live node in increasing id order.
func (s *store) each(f func(*Node)) {
	for i := range s.nodes {
		if s.live[i] {
			f(&s.nodes[i])
		}
	}
}

// permute compacts the store to hold only live nodes, renumbered to a
// contiguous [0, count) range in the order live nodes currently appear.
// It returns the old-id -> new-id mapping (InvalidID for dead nodes) so
// callers (redirect.go) can fix up every reference: reader input slots,
// the root registry, and the canonical-literal cache.
func (s *store) permute() []ID {
	mapping := make([]ID, len(s.nodes))
	newNodes := make([]Node, 0, s.count())
	newLive := make([]bool, 0, cap(newNodes))
	for i := range s.nodes {
		if s.live[i] {
			newID := ID(len(newNodes))
			mapping[i] = newID
			n := s.nodes[i]
			n.id = newID
			newNodes = append(newNodes, n)
			newLive = append(newLive, true)
		} else {
			mapping[i] = InvalidID
		}
	}
	s.nodes = newNodes
	s.live = newLive
	return mapping
}

// remapInputs rewrites every live node's input slots through mapping,
// the old-id -> new-id table permute returns. It is the reader-side half
// of compaction: Design.permute in redirect.go fixes the remaining
// reference sites, the root registry and the canonical-literal cache.
func (s *store) remapInputs(mapping []ID) {
	for i := range s.nodes {
		n := &s.nodes[i]
		for j := 0; j < n.NumInputs(); j++ {
			old := n.Input(j)
			if old != InvalidID && int(old) < len(mapping) {
				n.SetInput(j, mapping[old])
			}
		}
	}
}
