// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gatetest provides utility functions for testing circuits.
//
package gatetest

import (
	"testing"

	"gatesim"
)

// Equivalent asserts that two circuits implement the same boolean function:
// same input count, same output count, and identical output rows over the
// full truth table. Inputs and outputs are matched positionally, in each
// circuit's creation order.
//
func Equivalent(t *testing.T, a, b *gatesim.Circuit) {
	t.Helper()

	ta, err := a.TruthTable(0)
	if err != nil {
		t.Fatal(err)
	}
	tb, err := b.TruthTable(0)
	if err != nil {
		t.Fatal(err)
	}

	if len(ta.Inputs) != len(tb.Inputs) {
		t.Fatalf("input count mismatch: %d != %d", len(ta.Inputs), len(tb.Inputs))
	}
	if len(ta.Outputs) != len(tb.Outputs) {
		t.Fatalf("output count mismatch: %d != %d", len(ta.Outputs), len(tb.Outputs))
	}

	for i := range ta.Rows {
		ra, rb := ta.Rows[i], tb.Rows[i]
		for o := range ra.Outputs {
			if ra.Outputs[o] != rb.Outputs[o] {
				t.Errorf("row %d (inputs %v): output %d differs: %v != %v",
					i, ra.Inputs, o, ra.Outputs[o], rb.Outputs[o])
			}
		}
	}
}
