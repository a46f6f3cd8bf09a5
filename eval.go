// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// Evaluate computes the boolean value of every node in the circuit for the
// given input assignment and returns the full id-to-value map. If assignment
// is nil, the circuit's live assignment is used.
//
// Input nodes take their value from the assignment; an Input missing from an
// explicit assignment fails with ErrMissingAssignment. Gate slots with no
// incoming edge read false. Evaluation is all-or-nothing: on failure no node
// value is cached and the returned map is nil.
//
func (c *Circuit) Evaluate(assignment map[ID]bool) (map[ID]bool, error) {
	if assignment == nil {
		assignment = c.assign
	}
	order, err := c.topoOrder()
	if err != nil {
		return nil, err
	}

	values := make(map[ID]bool, len(order))
	for _, id := range order {
		n := c.nodes[id]
		if n.kind == KindInput {
			v, ok := assignment[id]
			if !ok {
				return nil, errors.Wrapf(ErrMissingAssignment, "input %d", id)
			}
			values[id] = v
			continue
		}
		in := make([]bool, n.kind.Slots())
		for s := range in {
			if src, ok := c.sources[slotRef{node: id, slot: s}]; ok {
				in[s] = values[src]
			}
		}
		values[id] = n.eval(in)
	}

	for id, v := range values {
		n := c.nodes[id]
		n.value = v
		n.valid = true
	}
	return values, nil
}

// topoOrder returns a topological order over all nodes, computing and
// caching it with Kahn's algorithm. Fails with ErrCycleDetected if the edge
// set contains a cycle; Connect rejects those, so this is defensive.
func (c *Circuit) topoOrder() ([]ID, error) {
	if c.order != nil {
		return c.order, nil
	}

	indeg := make(map[ID]int, len(c.nodes))
	for _, id := range c.created {
		indeg[id] = 0
	}
	for ref := range c.sources {
		indeg[ref.node]++
	}

	// Seed with zero in-degree nodes in creation order so the computed
	// order is deterministic for a given construction sequence.
	var queue []ID
	for _, id := range c.created {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]ID, 0, len(c.nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, ref := range c.fanout[id] {
			indeg[ref.node]--
			if indeg[ref.node] == 0 {
				queue = append(queue, ref.node)
			}
		}
	}
	if len(order) != len(c.nodes) {
		return nil, errors.Wrap(ErrCycleDetected, "topological sort")
	}
	c.order = order
	return order, nil
}
