package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Legacy config file names, searched by Discover.
const (
	HomeFileName  = ".bk_protsim.cfg"
	LocalFileName = "bk_protsim.cfg"
)

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config: no config file found")

// Warning is a non-fatal problem found while reading a legacy file.
type Warning struct {
	Line int
	Msg  string
}

func (w Warning) String() string { return fmt.Sprintf("line %d: %s", w.Line, w.Msg) }

// Discover returns the config file to use: $HOME/.bk_protsim.cfg if it
// exists, else ./bk_protsim.cfg in dir, else ErrNotFound. An empty home is
// skipped.
func Discover(home, dir string) (string, error) {
	var candidates []string
	if home != "" {
		candidates = append(candidates, filepath.Join(home, HomeFileName))
	}
	candidates = append(candidates, filepath.Join(dir, LocalFileName))

	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}

	return "", ErrNotFound
}

// Load reads path over base and returns the merged settings. The format is
// chosen by extension: .hcl, .yaml/.yml, anything else is legacy key = value.
// Keys absent from the file keep their base value. Load does not validate.
func Load(path string, base Settings) (Settings, []Warning, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return base, nil, fmt.Errorf("config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		s, err := decodeHCL(path, src, base)
		return s, nil, err
	case ".yaml", ".yml":
		s, err := decodeYAML(path, src, base)
		return s, nil, err
	default:
		return DecodeLegacy(strings.NewReader(string(src)), base)
	}
}

func decodeHCL(path string, src []byte, base Settings) (Settings, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, path)
	if diags.HasErrors() {
		return base, fmt.Errorf("config: parse %s: %w", path, diags)
	}
	out := base
	if diags = gohcl.DecodeBody(file.Body, nil, &out); diags.HasErrors() {
		return base, fmt.Errorf("config: decode %s: %w", path, diags)
	}

	return out, nil
}

func decodeYAML(path string, src []byte, base Settings) (Settings, error) {
	out := base
	dec := yaml.NewDecoder(strings.NewReader(string(src)))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return out, nil
}

// DecodeLegacy reads the bk_protsim format: one "key = value" per line, '#'
// starts a comment line. Lists are comma separated; booleans accept
// yes/no/true/false/1/0. Malformed lines and unknown keys are skipped and
// reported as warnings; a bad value for a known key is an error.
func DecodeLegacy(r io.Reader, base Settings) (Settings, []Warning, error) {
	out := base
	var warns []Warning

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, val, ok := strings.Cut(text, "=")
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		if !ok || key == "" {
			warns = append(warns, Warning{Line: line, Msg: "could not parse line, skipping"})
			continue
		}
		known, err := out.setLegacy(key, val)
		if err != nil {
			return base, warns, fmt.Errorf("config: line %d: %w", line, err)
		}
		if !known {
			warns = append(warns, Warning{Line: line, Msg: fmt.Sprintf("unknown key %q", key)})
		}
	}
	if err := sc.Err(); err != nil {
		return base, warns, fmt.Errorf("config: %w", err)
	}

	return out, warns, nil
}

// setLegacy assigns one legacy key. It reports false for unknown keys.
func (s *Settings) setLegacy(key, val string) (bool, error) {
	var err error
	switch key {
	case "output_path":
		s.OutputPath = val
	case "silent":
		s.Silent, err = parseBool(key, val)
	case "edge_attrs":
		s.EdgeAttrs = splitList(val)
	case "vertex_attrs":
		s.VertexAttrs = splitList(val)
	case "match_any":
		s.MatchAny, err = parseBool(key, val)
	case "select":
		s.Select = val
	case "min_size":
		s.MinSize, err = parseInt(key, val)
	case "filter_permutations":
		s.FilterPermutations, err = parseBool(key, val)
	case "write_mapping_files":
		s.WriteMappingFiles, err = parseBool(key, val)
	case "max_cliques":
		s.MaxCliques, err = parseInt(key, val)
	case "max_product_vertices":
		s.MaxProductVertices, err = parseInt(key, val)
	case "timeout":
		s.Timeout = val
	case "workers":
		s.Workers, err = parseInt(key, val)
	case "log_level":
		s.LogLevel = val
	case "log_format":
		s.LogFormat = val
	case "metrics_file":
		s.MetricsFile = val
	default:
		return false, nil
	}

	return true, err
}

func parseBool(key, val string) (bool, error) {
	switch strings.ToLower(val) {
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s: %q is not a boolean", key, val)
	}
}

func parseInt(key, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, val)
	}

	return n, nil
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return out
}
