// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package circuitfile loads and saves gatesim circuits as HCL documents.

A circuit file declares named signals; the engine itself knows only node
ids, so the loader returns a Design carrying the name tables alongside the
reconstructed circuit:

	input "a" {}
	input "b" { value = true }

	gate "or" "any" {
	  in = ["a", "b"]
	}

	output "led" { from = "any" }

A gate's "in" list assigns sources to input slots in order; an empty string
leaves that slot unconnected. Files written by Save round-trip: loading the
result yields a circuit with identical topology, live input values and
truth table.
*/
package circuitfile

import (
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"gatesim"
)

// A Design is a circuit together with the signal names of its description
// file.
type Design struct {
	Circuit *gatesim.Circuit
	// Names maps every node to its file-level name and back. The two maps
	// are kept consistent by Load; hand-built Designs must do the same for
	// Save to work.
	Names map[gatesim.ID]string
	IDs   map[string]gatesim.ID
}

// NameOf returns the file-level name of id, or "#<id>" for unnamed nodes.
func (d *Design) NameOf(id gatesim.ID) string {
	if n, ok := d.Names[id]; ok {
		return n
	}
	return "#" + strconv.Itoa(int(id))
}

// fileSchema is the gohcl decode target for a circuit document.
type fileSchema struct {
	Inputs  []*inputBlock  `hcl:"input,block"`
	Gates   []*gateBlock   `hcl:"gate,block"`
	Outputs []*outputBlock `hcl:"output,block"`
}

type inputBlock struct {
	Name  string `hcl:"name,label"`
	Value *bool  `hcl:"value,optional"`
}

type gateBlock struct {
	Op   string   `hcl:"op,label"`
	Name string   `hcl:"name,label"`
	In   []string `hcl:"in,optional"`
}

type outputBlock struct {
	Name string `hcl:"name,label"`
	From string `hcl:"from,optional"`
}

// Load reads and reconstructs the circuit described by the HCL file at
// path.
func Load(path string) (*Design, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read circuit file")
	}
	return LoadBytes(src, path)
}

// LoadBytes reconstructs the circuit described by src. filename is used in
// error messages only.
func LoadBytes(src []byte, filename string) (*Design, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parse %s: %s", filename, diags.Error())
	}
	var fs fileSchema
	if diags = gohcl.DecodeBody(file.Body, nil, &fs); diags.HasErrors() {
		return nil, errors.Errorf("decode %s: %s", filename, diags.Error())
	}

	d := &Design{
		Circuit: gatesim.New(),
		Names:   make(map[gatesim.ID]string),
		IDs:     make(map[string]gatesim.ID),
	}

	// first pass: declare all signals
	for _, in := range fs.Inputs {
		if err := d.declare(in.Name, gatesim.KindInput); err != nil {
			return nil, err
		}
	}
	for _, g := range fs.Gates {
		kind, ok := gatesim.ParseKind(g.Op)
		if !ok || kind.Slots() == 0 || kind == gatesim.KindOutput {
			return nil, errors.Errorf("gate %q: unknown op %q", g.Name, g.Op)
		}
		if err := d.declare(g.Name, kind); err != nil {
			return nil, err
		}
	}
	for _, out := range fs.Outputs {
		if err := d.declare(out.Name, gatesim.KindOutput); err != nil {
			return nil, err
		}
	}

	// second pass: wire slots and seed live input values
	for _, in := range fs.Inputs {
		if in.Value != nil {
			if err := d.Circuit.SetInput(d.IDs[in.Name], *in.Value); err != nil {
				return nil, err
			}
		}
	}
	for _, g := range fs.Gates {
		id := d.IDs[g.Name]
		kind, _ := gatesim.ParseKind(g.Op)
		if len(g.In) > kind.Slots() {
			return nil, errors.Errorf("gate %q: %d sources for %d slots", g.Name, len(g.In), kind.Slots())
		}
		for slot, src := range g.In {
			if src == "" {
				continue
			}
			if err := d.connect(src, g.Name, id, slot); err != nil {
				return nil, err
			}
		}
	}
	for _, out := range fs.Outputs {
		if out.From == "" {
			continue
		}
		if err := d.connect(out.From, out.Name, d.IDs[out.Name], 0); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Design) declare(name string, kind gatesim.Kind) error {
	if name == "" {
		return errors.New("empty signal name")
	}
	if _, dup := d.IDs[name]; dup {
		return errors.Errorf("duplicate signal name %q", name)
	}
	id := d.Circuit.AddNode(kind)
	d.IDs[name] = id
	d.Names[id] = name
	return nil
}

func (d *Design) connect(srcName, dstName string, dst gatesim.ID, slot int) error {
	src, ok := d.IDs[srcName]
	if !ok {
		return errors.Errorf("%q: unknown source %q", dstName, srcName)
	}
	if err := d.Circuit.Connect(src, dst, slot); err != nil {
		return errors.Wrapf(err, "%q slot %d", dstName, slot)
	}
	return nil
}
