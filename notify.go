// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// An EventKind classifies circuit change events.
//
type EventKind int

const (
	// GraphChanged signals a topology or connectivity mutation: a node was
	// added or removed, or an edge connected or disconnected.
	GraphChanged EventKind = iota
	// AssignmentChanged signals that an Input node's live value changed.
	AssignmentChanged
)

func (k EventKind) String() string {
	switch k {
	case GraphChanged:
		return "graph-changed"
	case AssignmentChanged:
		return "assignment-changed"
	default:
		return "unknown"
	}
}

// An Event describes one circuit change. Node is the node the mutation
// touched: the added/removed node, the edge's target, or the toggled Input.
//
type Event struct {
	Kind EventKind
	Node ID
}

// A Listener receives circuit change events. Listeners run synchronously on
// the goroutine performing the mutation; they must not mutate the circuit
// they observe.
//
type Listener func(Event)

// A Subscription identifies one registered listener.
//
type Subscription int

type subscriber struct {
	handle Subscription
	fn     Listener
}

// notifier delivers events to subscribers in subscription order. No
// queuing, no deduplication; a presentation layer wanting coalesced
// redraws batches on its side.
type notifier struct {
	next Subscription
	subs []subscriber
}

func (n *notifier) subscribe(fn Listener) Subscription {
	n.next++
	n.subs = append(n.subs, subscriber{handle: n.next, fn: fn})
	return n.next
}

func (n *notifier) unsubscribe(h Subscription) {
	for i, s := range n.subs {
		if s.handle == h {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

func (n *notifier) post(e Event) {
	for _, s := range n.subs {
		s.fn(e)
	}
}
