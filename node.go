// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// An ID names a node within its Circuit. IDs are opaque, stable for the
// lifetime of the node and never reused by the owning Circuit.
//
type ID int

// A Kind discriminates circuit elements. The set is closed: evaluation
// dispatches on Kind with a switch rather than per-kind methods, which keeps
// the evaluator a pure function over data.
//
type Kind int

// Node kinds.
const (
	KindInvalid Kind = iota
	KindInput
	KindAnd
	KindOr
	KindNot
	KindOutput
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInput:   "input",
	KindAnd:     "and",
	KindOr:      "or",
	KindNot:     "not",
	KindOutput:  "output",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Slots returns the number of input slots for nodes of kind k: 0 for Input,
// 2 for And and Or, 1 for Not and Output.
//
func (k Kind) Slots() int {
	switch k {
	case KindAnd, KindOr:
		return 2
	case KindNot, KindOutput:
		return 1
	default:
		return 0
	}
}

// ParseKind returns the Kind named by s, as written by Kind.String.
//
func ParseKind(s string) (Kind, bool) {
	for k, n := range kindNames {
		if Kind(k) != KindInvalid && n == s {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}

// A Node is a circuit element snapshot as returned by Circuit.Node. It does
// not alias Circuit state.
//
type Node struct {
	ID   ID
	Kind Kind
}

// node is the registry's mutable record.
type node struct {
	id    ID
	kind  Kind
	value bool // cached result of the last successful Evaluate
	valid bool
}

// eval computes the node's output from its input slot values. Unconnected
// slots read false, so a disconnected Not outputs true.
func (n *node) eval(in []bool) bool {
	switch n.kind {
	case KindAnd:
		return in[0] && in[1]
	case KindOr:
		return in[0] || in[1]
	case KindNot:
		return !in[0]
	case KindOutput:
		return in[0]
	default:
		return false
	}
}
