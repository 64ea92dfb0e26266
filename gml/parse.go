package gml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/protsim/core"
)

// ErrNoGraph is returned when the input holds no top-level graph list.
var ErrNoGraph = errors.New("gml: no graph found")

// SyntaxError reports malformed or inconsistent input at a line.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gml: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}

	return fmt.Sprintf("gml: line %d: %s", e.Line, e.Msg)
}

// Unwrap exposes the core error behind a semantic failure.
func (e *SyntaxError) Unwrap() error { return e.Err }

// pair is one key/value entry; exactly one of scalar or list is meaningful.
type pair struct {
	key    string
	line   int
	isList bool
	scalar string
	list   []pair
}

// ParseFile opens path and parses it. The graph is named after the label
// if present, else after path.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gml: %w", err)
	}
	defer f.Close()

	return parse(f, path)
}

// Parse reads one graph from r.
func Parse(r io.Reader) (*core.Graph, error) {
	return parse(r, "")
}

func parse(r io.Reader, fallbackName string) (*core.Graph, error) {
	// 1) Tokens → key/value tree.
	p := &parser{lex: newLexer(r)}
	top, err := p.list(false)
	if err != nil {
		return nil, err
	}

	// 2) First top-level "graph" list.
	for _, kv := range top {
		if kv.key == "graph" && kv.isList {
			return build(kv.list, fallbackName)
		}
	}

	return nil, ErrNoGraph
}

type parser struct {
	lex *lexer
}

// list reads key/value pairs until ']' (nested) or end of input (top level).
func (p *parser) list(nested bool) ([]pair, error) {
	var out []pair
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokEOF:
			if nested {
				return nil, &SyntaxError{Line: tok.line, Msg: "missing ']'"}
			}
			return out, nil
		case tokClose:
			if !nested {
				return nil, &SyntaxError{Line: tok.line, Msg: "unexpected ']'"}
			}
			return out, nil
		case tokKey:
		default:
			return nil, &SyntaxError{Line: tok.line, Msg: fmt.Sprintf("expected key, got %s %q", tok.kind, tok.text)}
		}

		val, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		kv := pair{key: tok.text, line: tok.line}
		switch val.kind {
		case tokNumber, tokString:
			kv.scalar = val.text
		case tokOpen:
			kv.isList = true
			if kv.list, err = p.list(true); err != nil {
				return nil, err
			}
		default:
			return nil, &SyntaxError{Line: val.line, Msg: fmt.Sprintf("missing value for %q", tok.text)}
		}
		out = append(out, kv)
	}
}

// build turns the body of a graph list into a core.Graph.
func build(body []pair, name string) (*core.Graph, error) {
	for _, kv := range body {
		if kv.key == "label" && !kv.isList {
			name = kv.scalar
		}
	}
	g := core.NewGraph(core.WithName(name))

	// Nodes first, so edges may precede their endpoints in the file.
	for _, kv := range body {
		if kv.key != "node" || !kv.isList {
			continue
		}
		if err := addNode(g, kv); err != nil {
			return nil, err
		}
	}
	for _, kv := range body {
		if kv.key != "edge" || !kv.isList {
			continue
		}
		if err := addEdge(g, kv); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func addNode(g *core.Graph, node pair) error {
	id, ok, err := intField(node, "id")
	if err != nil {
		return err
	}
	if !ok {
		return &SyntaxError{Line: node.line, Msg: "node without id"}
	}

	attrs := scalars(node.list, "id")
	if _, err = g.AddVertex(id, core.WithVertexAttrs(attrs)); err != nil {
		return &SyntaxError{Line: node.line, Msg: fmt.Sprintf("node %d", id), Err: err}
	}

	return nil
}

func addEdge(g *core.Graph, edge pair) error {
	src, okS, err := intField(edge, "source")
	if err != nil {
		return err
	}
	dst, okT, err := intField(edge, "target")
	if err != nil {
		return err
	}
	if !okS || !okT {
		return &SyntaxError{Line: edge.line, Msg: "edge needs source and target"}
	}

	attrs := scalars(edge.list, "source", "target")
	if _, err = g.AddEdgeByID(src, dst, core.WithEdgeAttrs(attrs)); err != nil {
		return &SyntaxError{Line: edge.line, Msg: fmt.Sprintf("edge %d-%d", src, dst), Err: err}
	}

	return nil
}

// intField finds key among the scalars of kv and parses it as an integer.
func intField(kv pair, key string) (int, bool, error) {
	for _, f := range kv.list {
		if f.key != key || f.isList {
			continue
		}
		n, err := strconv.Atoi(f.scalar)
		if err != nil {
			return 0, false, &SyntaxError{Line: f.line, Msg: fmt.Sprintf("%s %q is not an integer", key, f.scalar)}
		}
		return n, true, nil
	}

	return 0, false, nil
}

// scalars collects every scalar entry except the skipped keys. A repeated
// key keeps its last value.
func scalars(list []pair, skip ...string) map[string]string {
	out := make(map[string]string, len(list))
next:
	for _, f := range list {
		if f.isList {
			continue
		}
		for _, s := range skip {
			if f.key == s {
				continue next
			}
		}
		out[f.key] = f.scalar
	}

	return out
}
