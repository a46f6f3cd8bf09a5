// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package circuitfile_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatesim"
	"gatesim/circuitfile"
)

const xorSrc = `
input "a" {}
input "b" { value = true }

gate "and" "ab" {
  in = ["a", "b"]
}
gate "not" "nab" {
  in = ["ab"]
}
gate "or" "any" {
  in = ["a", "b"]
}
gate "and" "xor" {
  in = ["any", "nab"]
}

output "led" { from = "xor" }
`

func TestLoad(t *testing.T) {
	d, err := circuitfile.LoadBytes([]byte(xorSrc), "xor.hcl")
	require.NoError(t, err)

	ins := d.Circuit.Inputs()
	require.Len(t, ins, 2)
	assert.Equal(t, "a", d.NameOf(ins[0]))
	assert.Equal(t, "b", d.NameOf(ins[1]))
	require.Len(t, d.Circuit.Outputs(), 1)
	assert.Len(t, d.Circuit.Edges(), 8)

	// value = true seeds the live assignment
	assert.Equal(t, map[gatesim.ID]bool{ins[0]: false, ins[1]: true}, d.Circuit.Assignment())

	// xor truth table
	tt, err := d.Circuit.TruthTable(0)
	require.NoError(t, err)
	want := []bool{false, true, true, false}
	for i, row := range tt.Rows {
		assert.Equal(t, want[i], row.Outputs[0], "row %d", i)
	}
}

func TestLoad_unconnectedSlot(t *testing.T) {
	src := `
input "a" {}
gate "and" "g" {
  in = ["", "a"]
}
`
	d, err := circuitfile.LoadBytes([]byte(src), "test.hcl")
	require.NoError(t, err)
	g := d.IDs["g"]
	_, ok := d.Circuit.SourceOf(g, 0)
	assert.False(t, ok, "slot 0 should be unconnected")
	src0, ok := d.Circuit.SourceOf(g, 1)
	require.True(t, ok)
	assert.Equal(t, d.IDs["a"], src0)
}

func TestLoad_errors(t *testing.T) {
	td := []struct {
		name string
		src  string
		msg  string
	}{
		{"syntax", `input "a" {`, "parse"},
		{"unknown op", `gate "nand" "g" {}`, "unknown op"},
		{"op input", `gate "input" "g" {}`, "unknown op"},
		{"duplicate name", "input \"a\" {}\ngate \"not\" \"a\" {}", "duplicate signal name"},
		{"unknown source", `gate "not" "g" { in = ["x"] }`, "unknown source"},
		{"too many sources", "input \"a\" {}\ngate \"not\" \"g\" { in = [\"a\", \"a\"] }", "sources for"},
		{"unknown output source", `output "led" { from = "x" }`, "unknown source"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := circuitfile.LoadBytes([]byte(d.src), "test.hcl")
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.msg)
		})
	}
}

func TestLoad_cycleRejected(t *testing.T) {
	src := `
gate "not" "p" { in = ["q"] }
gate "not" "q" { in = ["p"] }
`
	_, err := circuitfile.LoadBytes([]byte(src), "test.hcl")
	require.Error(t, err)
	assert.Equal(t, gatesim.ErrCycleDetected, errors.Cause(err))
}

func TestSave_roundTrip(t *testing.T) {
	d1, err := circuitfile.LoadBytes([]byte(xorSrc), "xor.hcl")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, circuitfile.Save(d1, &buf))

	d2, err := circuitfile.LoadBytes(buf.Bytes(), "roundtrip.hcl")
	require.NoError(t, err)

	// same signals, same topology, same live assignment
	require.Equal(t, len(d1.IDs), len(d2.IDs))
	for name, id1 := range d1.IDs {
		id2, ok := d2.IDs[name]
		require.True(t, ok, "signal %q lost", name)
		n1, err := d1.Circuit.Node(id1)
		require.NoError(t, err)
		n2, err := d2.Circuit.Node(id2)
		require.NoError(t, err)
		assert.Equal(t, n1.Kind, n2.Kind, "signal %q", name)
	}
	assert.Equal(t, len(d1.Circuit.Edges()), len(d2.Circuit.Edges()))

	ins1, ins2 := d1.Circuit.Inputs(), d2.Circuit.Inputs()
	require.Equal(t, len(ins1), len(ins2))
	a1, a2 := d1.Circuit.Assignment(), d2.Circuit.Assignment()
	for i := range ins1 {
		assert.Equal(t, d1.NameOf(ins1[i]), d2.NameOf(ins2[i]), "input order")
		assert.Equal(t, a1[ins1[i]], a2[ins2[i]], "live value of %s", d1.NameOf(ins1[i]))
	}

	// bit-identical truth tables
	t1, err := d1.Circuit.TruthTable(0)
	require.NoError(t, err)
	t2, err := d2.Circuit.TruthTable(0)
	require.NoError(t, err)
	require.Equal(t, len(t1.Rows), len(t2.Rows))
	for i := range t1.Rows {
		assert.Equal(t, t1.Rows[i].Outputs, t2.Rows[i].Outputs, "row %d", i)
	}
}

func TestSave_unnamedNode(t *testing.T) {
	c := gatesim.New()
	c.AddNode(gatesim.KindInput)
	d := &circuitfile.Design{
		Circuit: c,
		Names:   map[gatesim.ID]string{},
		IDs:     map[string]gatesim.ID{},
	}
	err := circuitfile.Save(d, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}
