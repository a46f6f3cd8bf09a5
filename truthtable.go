// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxInputs is the default truth table ceiling. Enumeration is
// exhaustive (2^n rows), which stops being practical long before memory
// runs out; requests beyond the ceiling fail fast with
// ErrInputCountExceeded instead of grinding.
const DefaultMaxInputs = 24

// A TruthTable is the exhaustive enumeration of a circuit's outputs over
// all input combinations. It is a read-only derived artifact: regenerate it
// after any topology change rather than patching it.
//
type TruthTable struct {
	// Inputs hold the Input node ids in creation order. The first entry is
	// the most significant bit of the row index.
	Inputs []ID
	// Outputs hold the Output node ids in creation order.
	Outputs []ID
	// Rows are indexed by the binary value of their input combination.
	Rows []TruthTableRow
}

// A TruthTableRow pairs one input combination with the resulting output
// values, both ordered as the table's Inputs and Outputs.
//
type TruthTableRow struct {
	Inputs  []bool
	Outputs []bool
}

// TruthTable generates the circuit's truth table, evaluating once per input
// combination. maxInputs caps the number of Input nodes; values <= 0 mean
// DefaultMaxInputs. A circuit with more inputs than the cap fails with
// ErrInputCountExceeded; exactly the cap succeeds.
//
// Generation is deterministic: the same circuit construction sequence
// always yields a bit-identical table.
//
func (c *Circuit) TruthTable(maxInputs int) (*TruthTable, error) {
	if maxInputs <= 0 {
		maxInputs = DefaultMaxInputs
	}
	ins := c.Inputs()
	if len(ins) > maxInputs {
		return nil, errors.Wrapf(ErrInputCountExceeded, "%d inputs, ceiling %d", len(ins), maxInputs)
	}
	outs := c.Outputs()

	t := &TruthTable{
		Inputs:  ins,
		Outputs: outs,
		Rows:    make([]TruthTableRow, 1<<uint(len(ins))),
	}
	assignment := make(map[ID]bool, len(ins))
	for i := range t.Rows {
		row := &t.Rows[i]
		row.Inputs = make([]bool, len(ins))
		for bit, id := range ins {
			// first input is the MSB
			v := i&(1<<uint(len(ins)-1-bit)) != 0
			row.Inputs[bit] = v
			assignment[id] = v
		}
		values, err := c.Evaluate(assignment)
		if err != nil {
			return nil, err
		}
		row.Outputs = make([]bool, len(outs))
		for o, id := range outs {
			row.Outputs[o] = values[id]
		}
	}
	return t, nil
}

// String renders the table with one column per input and output, node ids
// as headers and 0/1 cells. Hosts with their own signal names should render
// the table themselves; this is a debugging aid.
//
func (t *TruthTable) String() string {
	headers := make([]string, 0, len(t.Inputs)+len(t.Outputs))
	for _, id := range t.Inputs {
		headers = append(headers, fmt.Sprintf("in:%d", id))
	}
	for _, id := range t.Outputs {
		headers = append(headers, fmt.Sprintf("out:%d", id))
	}

	var b strings.Builder
	b.WriteString(strings.Join(headers, " "))
	b.WriteByte('\n')
	for _, row := range t.Rows {
		col := 0
		for _, v := range row.Inputs {
			fmt.Fprintf(&b, "%*s ", len(headers[col]), bit(v))
			col++
		}
		for _, v := range row.Outputs {
			fmt.Fprintf(&b, "%*s ", len(headers[col]), bit(v))
			col++
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
