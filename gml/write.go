package gml

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/protsim/core"
)

// Write serialises g as GML that Parse reads back into an equal graph.
// Attributes are written sorted by key; values that read as numbers are
// written bare, everything else quoted.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "graph [")
	fmt.Fprintln(bw, "  directed 0")
	if name := g.Name(); name != "" {
		fmt.Fprintf(bw, "  label %s\n", value(name))
	}
	for _, v := range g.Vertices() {
		fmt.Fprintln(bw, "  node [")
		fmt.Fprintf(bw, "    id %d\n", v.ID)
		writeAttrs(bw, v.Attrs)
		fmt.Fprintln(bw, "  ]")
	}

	var from, to *core.Vertex
	var err error
	for _, e := range g.Edges() {
		if from, err = g.Vertex(e.From); err != nil {
			return fmt.Errorf("gml: write: %w", err)
		}
		if to, err = g.Vertex(e.To); err != nil {
			return fmt.Errorf("gml: write: %w", err)
		}
		fmt.Fprintln(bw, "  edge [")
		fmt.Fprintf(bw, "    source %d\n", from.ID)
		fmt.Fprintf(bw, "    target %d\n", to.ID)
		writeAttrs(bw, e.Attrs)
		fmt.Fprintln(bw, "  ]")
	}
	fmt.Fprintln(bw, "]")

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("gml: write: %w", err)
	}

	return nil
}

func writeAttrs(w io.Writer, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "    %s %s\n", k, value(attrs[k]))
	}
}

// value renders s bare when it is a plain decimal number, quoted otherwise.
func value(s string) string {
	if s != "" && !strings.ContainsFunc(s, func(c rune) bool { return !isNumberRune(c) }) {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return s
		}
	}

	return `"` + s + `"`
}
