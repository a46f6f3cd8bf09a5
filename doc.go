// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package gatesim implements a combinational logic-circuit evaluation engine.

A Circuit is a directed acyclic graph of nodes: toggle inputs, AND/OR/NOT
gates and outputs, connected output pin to input slot. The engine validates
connections as they are made (slot arity, slot occupancy, acyclicity),
evaluates the whole graph in topological order for a given input assignment,
and derives complete truth tables over all 2^n input combinations.

The engine is a pure library core: it performs no rendering and no I/O.
A presentation layer drives it through the construction and query methods on
Circuit and subscribes to its change events to learn when to refresh.

All operations are synchronous and single-threaded; a multi-threaded host
must guard each Circuit instance with its own lock.
*/
package gatesim
