package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protsim/compat"
	"github.com/katalvlaran/protsim/config"
	"github.com/katalvlaran/protsim/result"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestDefaults(t *testing.T) {
	s := config.Defaults()
	require.NoError(t, s.Validate())
	assert.Equal(t, "./", s.OutputPath)
	assert.False(t, s.Silent)

	cfg, ok, err := s.Similarity()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, compat.DefaultRule(), cfg.Rule)
	assert.Equal(t, result.PolicyAll(), cfg.Policy)
	assert.Equal(t, 1, cfg.Workers)
	// Mapping files are only written for filtered runs.
	assert.False(t, cfg.Align)

	s.FilterPermutations = true
	cfg, _, err = s.Similarity()
	require.NoError(t, err)
	assert.True(t, cfg.Align)

	s.WriteMappingFiles = false
	cfg, _, err = s.Similarity()
	require.NoError(t, err)
	assert.False(t, cfg.Align)
}

func TestLoad_HCL(t *testing.T) {
	p := writeFile(t, t.TempDir(), "protsim.hcl", `
output_path         = "/tmp/results"
edge_attrs          = ["spatial", "seq_dist"]
select              = "largest"
filter_permutations = true
timeout             = "30s"
workers             = 4
`)
	s, warns, err := config.Load(p, config.Defaults())
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, "/tmp/results", s.OutputPath)
	assert.Equal(t, []string{"spatial", "seq_dist"}, s.EdgeAttrs)
	assert.Equal(t, []string{"sse_type"}, s.VertexAttrs, "absent keys keep their default")
	assert.True(t, s.FilterPermutations)

	cfg, ok, err := s.Similarity()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, result.PolicyLargest(), cfg.Policy)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_HCLUnknownAttribute(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.hcl", `colour = "blue"`)
	_, _, err := config.Load(p, config.Defaults())
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "protsim.yaml", `
match_any: true
select: min_size
min_size: 3
log_format: json
`)
	s, _, err := config.Load(p, config.Defaults())
	require.NoError(t, err)
	assert.True(t, s.MatchAny)
	assert.Equal(t, "json", s.LogFormat)

	cfg, ok, err := s.Similarity()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, cfg.Rule.MatchAny)
	assert.Equal(t, result.PolicyMinSize(3), cfg.Policy)

	bad := writeFile(t, t.TempDir(), "bad.yml", "unknown_key: 1\n")
	_, _, err = config.Load(bad, config.Defaults())
	assert.Error(t, err)

	empty := writeFile(t, t.TempDir(), "empty.yaml", "")
	s, _, err = config.Load(empty, config.Defaults())
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), s)
}

func TestDecodeLegacy(t *testing.T) {
	src := `# bk_protsim settings
output_path = /data/out/
silent = yes
edge_attrs = spatial, seq
not a setting
colour = blue
max_cliques = 100
`
	s, warns, err := config.DecodeLegacy(strings.NewReader(src), config.Defaults())
	require.NoError(t, err)
	assert.Equal(t, "/data/out/", s.OutputPath)
	assert.True(t, s.Silent)
	assert.Equal(t, []string{"spatial", "seq"}, s.EdgeAttrs)
	assert.Equal(t, 100, s.MaxCliques)

	require.Len(t, warns, 2)
	assert.Equal(t, 5, warns[0].Line)
	assert.Contains(t, warns[1].String(), `unknown key "colour"`)
}

func TestDecodeLegacy_BadValue(t *testing.T) {
	_, _, err := config.DecodeLegacy(strings.NewReader("silent = maybe\n"), config.Defaults())
	assert.ErrorContains(t, err, "line 1")

	_, _, err = config.DecodeLegacy(strings.NewReader("workers = many\n"), config.Defaults())
	assert.Error(t, err)
}

func TestLoad_LegacyByExtension(t *testing.T) {
	p := writeFile(t, t.TempDir(), config.LocalFileName, "silent = no\nselect = l\n")
	s, _, err := config.Load(p, config.Defaults())
	require.NoError(t, err)
	pol, ok := s.Policy()
	assert.True(t, ok)
	assert.Equal(t, result.PolicyLargest(), pol)

	_, _, err = config.Load(filepath.Join(t.TempDir(), "missing.cfg"), config.Defaults())
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	home, dir := t.TempDir(), t.TempDir()

	_, err := config.Discover(home, dir)
	assert.ErrorIs(t, err, config.ErrNotFound)

	local := writeFile(t, dir, config.LocalFileName, "")
	p, err := config.Discover(home, dir)
	require.NoError(t, err)
	assert.Equal(t, local, p)

	p, err = config.Discover("", dir)
	require.NoError(t, err)
	assert.Equal(t, local, p)

	inHome := writeFile(t, home, config.HomeFileName, "")
	p, err = config.Discover(home, dir)
	require.NoError(t, err)
	assert.Equal(t, inHome, p, "home wins over the working directory")
}

func TestValidate(t *testing.T) {
	s := config.Defaults()
	s.OutputPath = ""
	s.LogLevel = "loud"
	s.Timeout = "soon"
	s.MinSize = -2
	s.EdgeAttrs = []string{"spatial", "spatial"}

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, compat.ErrInvalidRule)
	msg := err.Error()
	for _, want := range []string{"output_path", "log_level", "timeout", "min_size", "duplicate attribute"} {
		assert.Contains(t, msg, want)
	}

	_, _, err = s.Similarity()
	assert.Error(t, err)
}

func TestSimilarity_UnknownSelectFallsBack(t *testing.T) {
	s := config.Defaults()
	s.Select = "biggest"
	cfg, ok, err := s.Similarity()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, result.PolicyAll(), cfg.Policy)
}
