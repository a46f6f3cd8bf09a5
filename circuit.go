// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// slotRef addresses one input slot of one node.
type slotRef struct {
	node ID
	slot int
}

// An Edge is a directed connection from the single output pin of Source to
// input slot Slot of Target.
//
type Edge struct {
	Source ID
	Target ID
	Slot   int
}

// A Circuit owns a set of nodes and the edges connecting them. The zero
// value is not usable; call New. A Circuit is not safe for concurrent use;
// a multi-threaded host must serialize access with its own lock.
//
type Circuit struct {
	nodes   map[ID]*node
	created []ID // creation order; canonical Input/Output ordering
	nextID  ID

	sources map[slotRef]ID // incoming edge per input slot
	fanout  map[ID][]slotRef

	assign map[ID]bool // live values of Input nodes

	order []ID // cached topological order, nil when stale

	notifier notifier
}

// New returns a new empty Circuit.
//
func New() *Circuit {
	return &Circuit{
		nodes:   make(map[ID]*node),
		sources: make(map[slotRef]ID),
		fanout:  make(map[ID][]slotRef),
		assign:  make(map[ID]bool),
	}
}

// AddNode allocates a new node of the given kind and returns its id. Input
// nodes start with a live value of false. AddNode always succeeds; it panics
// only on an invalid kind, which indicates a programming error in the
// caller.
//
func (c *Circuit) AddNode(k Kind) ID {
	if k <= KindInvalid || k > KindOutput {
		panic("gatesim: AddNode with invalid kind " + k.String())
	}
	id := c.nextID
	c.nextID++
	c.nodes[id] = &node{id: id, kind: k}
	c.created = append(c.created, id)
	if k == KindInput {
		c.assign[id] = false
	}
	c.invalidate()
	c.notifier.post(Event{Kind: GraphChanged, Node: id})
	return id
}

// RemoveNode removes the node id and every edge touching it. Fails with
// ErrUnknownNode if no such node exists.
//
func (c *Circuit) RemoveNode(id ID) error {
	n, ok := c.nodes[id]
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "remove node %d", id)
	}
	// drop incoming edges
	for s := 0; s < n.kind.Slots(); s++ {
		ref := slotRef{node: id, slot: s}
		if src, ok := c.sources[ref]; ok {
			delete(c.sources, ref)
			c.dropFanout(src, ref)
		}
	}
	// drop outgoing edges
	for _, ref := range c.fanout[id] {
		delete(c.sources, ref)
	}
	delete(c.fanout, id)
	delete(c.assign, id)
	delete(c.nodes, id)
	for i, cid := range c.created {
		if cid == id {
			c.created = append(c.created[:i], c.created[i+1:]...)
			break
		}
	}
	c.invalidate()
	c.notifier.post(Event{Kind: GraphChanged, Node: id})
	return nil
}

// Node returns a snapshot of the node id, or fails with ErrUnknownNode.
//
func (c *Circuit) Node(id ID) (Node, error) {
	n, ok := c.nodes[id]
	if !ok {
		return Node{}, errors.Wrapf(ErrUnknownNode, "node %d", id)
	}
	return Node{ID: n.id, Kind: n.kind}, nil
}

// Nodes returns the ids of all nodes in creation order.
//
func (c *Circuit) Nodes() []ID {
	ids := make([]ID, len(c.created))
	copy(ids, c.created)
	return ids
}

// Inputs returns the ids of all Input nodes in creation order. This is the
// canonical input ordering used by truth tables.
//
func (c *Circuit) Inputs() []ID {
	return c.nodesOfKind(KindInput)
}

// Outputs returns the ids of all Output nodes in creation order.
//
func (c *Circuit) Outputs() []ID {
	return c.nodesOfKind(KindOutput)
}

func (c *Circuit) nodesOfKind(k Kind) []ID {
	var ids []ID
	for _, id := range c.created {
		if c.nodes[id].kind == k {
			ids = append(ids, id)
		}
	}
	return ids
}

// Edges returns all edges, ordered by target creation order then slot.
//
func (c *Circuit) Edges() []Edge {
	var es []Edge
	for _, id := range c.created {
		n := c.nodes[id]
		for s := 0; s < n.kind.Slots(); s++ {
			if src, ok := c.sources[slotRef{node: id, slot: s}]; ok {
				es = append(es, Edge{Source: src, Target: id, Slot: s})
			}
		}
	}
	return es
}

// Value returns the node's cached value from the last successful Evaluate.
// ok is false if the node does not exist or no evaluation has completed
// since the node was added.
//
func (c *Circuit) Value(id ID) (v, ok bool) {
	n, found := c.nodes[id]
	if !found || !n.valid {
		return false, false
	}
	return n.value, true
}

// SetInput sets the live value of the Input node id and raises
// AssignmentChanged. The live assignment is what Evaluate(nil) evaluates
// against. Fails with ErrUnknownNode or ErrNotAnInput.
//
func (c *Circuit) SetInput(id ID, v bool) error {
	n, ok := c.nodes[id]
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "set input %d", id)
	}
	if n.kind != KindInput {
		return errors.Wrapf(ErrNotAnInput, "set input %d (%s)", id, n.kind)
	}
	c.assign[id] = v
	c.notifier.post(Event{Kind: AssignmentChanged, Node: id})
	return nil
}

// Assignment returns a copy of the live input assignment: one entry per
// Input node.
//
func (c *Circuit) Assignment() map[ID]bool {
	m := make(map[ID]bool, len(c.assign))
	for id, v := range c.assign {
		m[id] = v
	}
	return m
}

// Subscribe registers fn to be called on every circuit change. Delivery is
// synchronous, in subscription order, on the goroutine performing the
// mutation.
//
func (c *Circuit) Subscribe(fn Listener) Subscription {
	return c.notifier.subscribe(fn)
}

// Unsubscribe removes the subscription h. Unknown handles are ignored.
//
func (c *Circuit) Unsubscribe(h Subscription) {
	c.notifier.unsubscribe(h)
}

// invalidate discards the cached topological order and all cached node
// values.
func (c *Circuit) invalidate() {
	c.order = nil
	for _, n := range c.nodes {
		n.valid = false
	}
}

func (c *Circuit) dropFanout(src ID, ref slotRef) {
	refs := c.fanout[src]
	for i, r := range refs {
		if r == ref {
			c.fanout[src] = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	if len(c.fanout[src]) == 0 {
		delete(c.fanout, src)
	}
}
