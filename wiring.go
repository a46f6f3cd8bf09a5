// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// Connect adds an edge from the output pin of source to input slot slot of
// target. Fan-out is unrestricted; each input slot accepts at most one
// incoming edge.
//
// Connect validates everything before mutating: on failure the edge set is
// unchanged. Failure modes are ErrUnknownNode (either id), ErrInvalidSlot
// (slot out of range for the target's kind, or target has no input slots),
// ErrSlotOccupied and ErrCycleDetected.
//
func (c *Circuit) Connect(source, target ID, slot int) error {
	src, ok := c.nodes[source]
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "connect source %d", source)
	}
	dst, ok := c.nodes[target]
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "connect target %d", target)
	}
	if slot < 0 || slot >= dst.kind.Slots() {
		return errors.Wrapf(ErrInvalidSlot, "connect %d -> %d slot %d (%s has %d slots)",
			source, target, slot, dst.kind, dst.kind.Slots())
	}
	ref := slotRef{node: target, slot: slot}
	if prev, occupied := c.sources[ref]; occupied {
		return errors.Wrapf(ErrSlotOccupied, "connect %d -> %d slot %d (driven by %d)",
			source, target, slot, prev)
	}
	// The new edge closes a cycle iff source is already reachable from
	// target. Checked before committing so the operation stays atomic.
	if c.reaches(target, source) {
		return errors.Wrapf(ErrCycleDetected, "connect %d -> %d slot %d", source, target, slot)
	}

	c.sources[ref] = source
	c.fanout[src.id] = append(c.fanout[src.id], ref)
	c.invalidate()
	c.notifier.post(Event{Kind: GraphChanged, Node: target})
	return nil
}

// Disconnect removes the edge feeding input slot slot of target. Fails with
// ErrUnknownNode if target does not exist, ErrInvalidSlot if the slot is out
// of range, and ErrNoSuchEdge if nothing is connected there.
//
func (c *Circuit) Disconnect(target ID, slot int) error {
	dst, ok := c.nodes[target]
	if !ok {
		return errors.Wrapf(ErrUnknownNode, "disconnect target %d", target)
	}
	if slot < 0 || slot >= dst.kind.Slots() {
		return errors.Wrapf(ErrInvalidSlot, "disconnect %d slot %d (%s has %d slots)",
			target, slot, dst.kind, dst.kind.Slots())
	}
	ref := slotRef{node: target, slot: slot}
	src, ok := c.sources[ref]
	if !ok {
		return errors.Wrapf(ErrNoSuchEdge, "disconnect %d slot %d", target, slot)
	}
	delete(c.sources, ref)
	c.dropFanout(src, ref)
	c.invalidate()
	c.notifier.post(Event{Kind: GraphChanged, Node: target})
	return nil
}

// SourceOf returns the node driving input slot slot of target, if any.
//
func (c *Circuit) SourceOf(target ID, slot int) (ID, bool) {
	src, ok := c.sources[slotRef{node: target, slot: slot}]
	return src, ok
}

// reaches reports whether to is reachable from from by following edges
// forward. Iterative DFS over the fan-out index.
func (c *Circuit) reaches(from, to ID) bool {
	if from == to {
		return true
	}
	seen := map[ID]bool{from: true}
	stack := []ID{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ref := range c.fanout[n] {
			if ref.node == to {
				return true
			}
			if !seen[ref.node] {
				seen[ref.node] = true
				stack = append(stack, ref.node)
			}
		}
	}
	return false
}
