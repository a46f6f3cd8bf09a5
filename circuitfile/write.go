// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package circuitfile

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"gatesim"
)

// Save writes d as an HCL circuit document. Blocks are emitted in node
// creation order (inputs, then gates, then outputs), so saving an
// unmodified loaded design reproduces its declaration order. Every node
// must have an entry in d.Names.
func Save(d *Design, w io.Writer) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	assign := d.Circuit.Assignment()

	var gates, outputs []gatesim.ID
	for _, id := range d.Circuit.Nodes() {
		n, err := d.Circuit.Node(id)
		if err != nil {
			return err
		}
		switch n.Kind {
		case gatesim.KindInput:
			name, err := d.nameFor(id)
			if err != nil {
				return err
			}
			blk := body.AppendNewBlock("input", []string{name})
			if assign[id] {
				blk.Body().SetAttributeValue("value", cty.True)
			}
		case gatesim.KindOutput:
			outputs = append(outputs, id)
		default:
			gates = append(gates, id)
		}
	}
	body.AppendNewline()

	for _, id := range gates {
		name, err := d.nameFor(id)
		if err != nil {
			return err
		}
		n, _ := d.Circuit.Node(id)
		blk := body.AppendNewBlock("gate", []string{n.Kind.String(), name})
		in, err := d.slotNames(id, n.Kind.Slots())
		if err != nil {
			return err
		}
		blk.Body().SetAttributeValue("in", in)
	}
	body.AppendNewline()

	for _, id := range outputs {
		name, err := d.nameFor(id)
		if err != nil {
			return err
		}
		blk := body.AppendNewBlock("output", []string{name})
		if src, ok := d.Circuit.SourceOf(id, 0); ok {
			from, err := d.nameFor(src)
			if err != nil {
				return err
			}
			blk.Body().SetAttributeValue("from", cty.StringVal(from))
		}
	}

	_, err := f.WriteTo(w)
	return errors.Wrap(err, "write circuit file")
}

func (d *Design) nameFor(id gatesim.ID) (string, error) {
	name, ok := d.Names[id]
	if !ok {
		return "", errors.Errorf("node %d has no name", id)
	}
	return name, nil
}

// slotNames returns the gate's "in" attribute value: one entry per slot,
// empty string for unconnected slots.
func (d *Design) slotNames(id gatesim.ID, slots int) (cty.Value, error) {
	vals := make([]cty.Value, slots)
	for s := 0; s < slots; s++ {
		if src, ok := d.Circuit.SourceOf(id, s); ok {
			name, err := d.nameFor(src)
			if err != nil {
				return cty.NilVal, err
			}
			vals[s] = cty.StringVal(name)
		} else {
			vals[s] = cty.StringVal("")
		}
	}
	if len(vals) == 0 {
		return cty.ListValEmpty(cty.String), nil
	}
	return cty.ListVal(vals), nil
}
