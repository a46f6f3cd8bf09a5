// Copyright 2026 The gatesim authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command gatesim loads a circuit description file and prints its truth
// table.
//
//	gatesim [-v] [-set a=1,b=0] circuit.hcl
//
// -set overrides the live value of named inputs and additionally prints the
// resulting single evaluation of every output.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gatesim"
	"gatesim/circuitfile"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gatesim:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("gatesim", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable debug logging")
	set := fs.String("set", "", "input overrides, e.g. a=1,b=0")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: gatesim [-v] [-set a=1,b=0] circuit.hcl")
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()

	d, err := circuitfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	logger.Debug("circuit loaded",
		zap.String("file", fs.Arg(0)),
		zap.Int("nodes", len(d.Circuit.Nodes())),
		zap.Int("edges", len(d.Circuit.Edges())))

	// the same event stream a GUI layer would use to schedule redraws
	sub := d.Circuit.Subscribe(func(e gatesim.Event) {
		logger.Debug("circuit event",
			zap.Stringer("kind", e.Kind),
			zap.Int("node", int(e.Node)))
	})
	defer d.Circuit.Unsubscribe(sub)

	if *set != "" {
		if err = applyOverrides(d, *set); err != nil {
			return err
		}
		values, err := d.Circuit.Evaluate(nil)
		if err != nil {
			return err
		}
		for _, id := range d.Circuit.Outputs() {
			fmt.Fprintf(w, "%s = %s\n", d.NameOf(id), bit(values[id]))
		}
		fmt.Fprintln(w)
	}

	tt, err := d.Circuit.TruthTable(0)
	if err != nil {
		return err
	}
	return renderTable(w, d, tt)
}

// applyOverrides parses "a=1,b=0" and sets the named live input values.
func applyOverrides(d *circuitfile.Design, s string) error {
	for _, kv := range strings.Split(s, ",") {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return errors.Errorf("bad override %q, want name=bool", kv)
		}
		v, err := strconv.ParseBool(val)
		if err != nil {
			return errors.Wrapf(err, "bad override %q", kv)
		}
		id, ok := d.IDs[name]
		if !ok {
			return errors.Errorf("unknown input %q", name)
		}
		if err = d.Circuit.SetInput(id, v); err != nil {
			return err
		}
	}
	return nil
}

// renderTable prints the truth table with the design's signal names as
// column headers.
func renderTable(w io.Writer, d *circuitfile.Design, tt *gatesim.TruthTable) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	cols := make([]string, 0, len(tt.Inputs)+len(tt.Outputs))
	for _, id := range tt.Inputs {
		cols = append(cols, d.NameOf(id))
	}
	for _, id := range tt.Outputs {
		cols = append(cols, d.NameOf(id)+"*")
	}
	fmt.Fprintln(tw, strings.Join(cols, "\t"))

	row := make([]string, len(cols))
	for _, r := range tt.Rows {
		for i, v := range r.Inputs {
			row[i] = bit(v)
		}
		for o, v := range r.Outputs {
			row[len(r.Inputs)+o] = bit(v)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
