// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// Error kinds returned by Circuit operations. Call sites wrap these with
// additional context; match them with errors.Cause:
//
//	if errors.Cause(err) == gatesim.ErrCycleDetected { ... }
//
// Every failure is a caller-correctable precondition violation. A rejected
// mutation leaves the Circuit unchanged.
//
var (
	// ErrUnknownNode reports an id that names no node in the circuit.
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidSlot reports an input slot index out of range for the
	// target node's kind.
	ErrInvalidSlot = errors.New("invalid input slot")

	// ErrSlotOccupied reports a connect to an input slot that already has
	// an incoming edge.
	ErrSlotOccupied = errors.New("input slot already connected")

	// ErrNoSuchEdge reports a disconnect from a slot with no incoming edge.
	ErrNoSuchEdge = errors.New("no edge at input slot")

	// ErrCycleDetected reports a connect that would close a directed cycle.
	ErrCycleDetected = errors.New("connection would create a cycle")

	// ErrMissingAssignment reports an Input node absent from an explicit
	// assignment passed to Evaluate.
	ErrMissingAssignment = errors.New("input has no assigned value")

	// ErrInputCountExceeded reports a truth table request on a circuit with
	// more Input nodes than the enumeration ceiling.
	ErrInputCountExceeded = errors.New("input count exceeds truth table ceiling")

	// ErrNotAnInput reports a SetInput on a node that is not an Input.
	ErrNotAnInput = errors.New("node is not an input")
)
