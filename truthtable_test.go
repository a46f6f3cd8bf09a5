// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim_test

import (
	"reflect"
	"testing"

	gs "gatesim"
)

// xorCircuit builds out = (a or b) and not(a and b).
func xorCircuit(t *testing.T) (*gs.Circuit, gs.ID, gs.ID, gs.ID) {
	t.Helper()
	c := gs.New()
	a := c.AddNode(gs.KindInput)
	b := c.AddNode(gs.KindInput)
	or := c.AddNode(gs.KindOr)
	and := c.AddNode(gs.KindAnd)
	not := c.AddNode(gs.KindNot)
	top := c.AddNode(gs.KindAnd)
	o := c.AddNode(gs.KindOutput)
	for _, e := range []struct {
		src, dst gs.ID
		slot     int
	}{
		{a, or, 0}, {b, or, 1},
		{a, and, 0}, {b, and, 1},
		{and, not, 0},
		{or, top, 0}, {not, top, 1},
		{top, o, 0},
	} {
		if err := c.Connect(e.src, e.dst, e.slot); err != nil {
			t.Fatal(err)
		}
	}
	return c, a, b, o
}

func Test_truthTable_xor(t *testing.T) {
	c, a, b, o := xorCircuit(t)
	tt, err := c.TruthTable(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(tt.Inputs) != 2 || tt.Inputs[0] != a || tt.Inputs[1] != b {
		t.Fatalf("Inputs = %v, want [%d %d]", tt.Inputs, a, b)
	}
	if len(tt.Outputs) != 1 || tt.Outputs[0] != o {
		t.Fatalf("Outputs = %v, want [%d]", tt.Outputs, o)
	}
	want := []bool{false, true, true, false}
	if len(tt.Rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(tt.Rows))
	}
	for i, row := range tt.Rows {
		if row.Outputs[0] != want[i] {
			t.Errorf("row %d: out = %v, want %v", i, row.Outputs[0], want[i])
		}
	}
}

func Test_truthTable_rowOrder(t *testing.T) {
	// row i's inputs are the binary representation of i, first input MSB.
	c := gs.New()
	c.AddNode(gs.KindInput)
	c.AddNode(gs.KindInput)
	c.AddNode(gs.KindInput)

	tt, err := c.TruthTable(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(tt.Rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(tt.Rows))
	}
	for i, row := range tt.Rows {
		for bit, v := range row.Inputs {
			want := i&(1<<uint(len(row.Inputs)-1-bit)) != 0
			if v != want {
				t.Errorf("row %d input %d = %v, want %v", i, bit, v, want)
			}
		}
	}
}

func Test_truthTable_idempotent(t *testing.T) {
	c, _, _, _ := xorCircuit(t)
	t1, err := c.TruthTable(0)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := c.TruthTable(0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(t1, t2) {
		t.Error("repeated generation on an unmodified circuit differs")
	}
}

func Test_truthTable_ceiling(t *testing.T) {
	c := gs.New()
	for i := 0; i < 3; i++ {
		c.AddNode(gs.KindInput)
	}

	// exactly the ceiling succeeds
	if _, err := c.TruthTable(3); err != nil {
		t.Fatal(err)
	}

	// one past the ceiling fails before any enumeration
	c.AddNode(gs.KindInput)
	_, err := c.TruthTable(3)
	checkCause(t, err, gs.ErrInputCountExceeded)
}

func Test_truthTable_defaultCeiling(t *testing.T) {
	c := gs.New()
	for i := 0; i < gs.DefaultMaxInputs+1; i++ {
		c.AddNode(gs.KindInput)
	}
	_, err := c.TruthTable(0)
	checkCause(t, err, gs.ErrInputCountExceeded)
}

func Test_truthTable_noInputs(t *testing.T) {
	// a constant circuit still has one row
	c := gs.New()
	n := c.AddNode(gs.KindNot)
	o := c.AddNode(gs.KindOutput)
	if err := c.Connect(n, o, 0); err != nil {
		t.Fatal(err)
	}
	tt, err := c.TruthTable(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(tt.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(tt.Rows))
	}
	if tt.Rows[0].Outputs[0] != true {
		t.Error("not(unconnected) should be true")
	}
}
