package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/protsim/config"
	"github.com/katalvlaran/protsim/core"
	"github.com/katalvlaran/protsim/gml"
	"github.com/katalvlaran/protsim/internal/ctxlog"
	"github.com/katalvlaran/protsim/metrics"
	"github.com/katalvlaran/protsim/output"
	"github.com/katalvlaran/protsim/similarity"
)

// compareOptions holds the flags of the compare command.
type compareOptions struct {
	configPath  string
	all         bool
	largest     bool
	minSize     int
	selector    string
	filter      bool
	mappings    bool
	exportGML   bool
	outputDir   string
	jsonReport  bool
	timeout     string
	maxCliques  int
	workers     int
	edgeAttrs   []string
	vertexAttrs []string
	matchAny    bool
	metricsFile string
	silent      bool
}

func newCompareCommand(root *rootOptions) *cobra.Command {
	o := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare GRAPH1.gml GRAPH2.gml",
		Short: "Search common substructures of two graphs",
		Long: `Search the maximal common substructures of two graphs and print one
JSON object per substructure: {"first":[ids in GRAPH1],"second":[ids in GRAPH2]}.

Settings are read from --config, else from $HOME/.bk_protsim.cfg, else from
./bk_protsim.cfg; flags override the file.

Output selection:
  --all          every maximal clique (default)
  --largest      only the largest cliques
  --min-size n   only cliques with at least n product vertices
  --filter       drop records that repeat an earlier one up to ordering`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, root, o, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Config file (.hcl, .yaml or bk_protsim key = value).")
	f.BoolVarP(&o.all, "all", "a", false, "Output all cliques.")
	f.BoolVarP(&o.largest, "largest", "l", false, "Output only the largest cliques.")
	f.IntVarP(&o.minSize, "min-size", "s", 0, "Output only cliques with at least this many product vertices.")
	f.StringVar(&o.selector, "select", "", "Selector keyword: all, largest or min_size.")
	f.BoolVarP(&o.filter, "filter", "f", false, "Filter permutations, i.e. print unique records only.")
	f.BoolVar(&o.mappings, "write-mappings", true, "With --filter, write results_<i>_first/second.txt mapping files.")
	f.BoolVar(&o.exportGML, "export-gml", false, "Write each common substructure as a pair of GML files.")
	f.StringVar(&o.outputDir, "output-dir", "", "Directory for mapping and GML files.")
	f.BoolVar(&o.jsonReport, "json", false, "Print one JSON report instead of JSON lines.")
	f.StringVar(&o.timeout, "timeout", "", "Stop the search after this duration, e.g. 30s.")
	f.IntVar(&o.maxCliques, "max-cliques", 0, "Stop the search after this many cliques (0 = unlimited).")
	f.IntVar(&o.workers, "workers", 1, "Goroutines used for clique enumeration.")
	f.StringSliceVar(&o.edgeAttrs, "edge-attr", nil, "Edge attribute that must match (repeatable).")
	f.StringSliceVar(&o.vertexAttrs, "vertex-attr", nil, "Vertex attribute that must match on aligned endpoints (repeatable).")
	f.BoolVar(&o.matchAny, "match-any", false, "Treat every edge pair as compatible.")
	f.StringVar(&o.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile.")
	f.BoolVar(&o.silent, "silent", false, "Only log warnings and errors.")
	cmd.MarkFlagsMutuallyExclusive("all", "largest", "min-size", "select")

	return cmd
}

func runCompare(cmd *cobra.Command, root *rootOptions, o *compareOptions, pathA, pathB string) error {
	ctx := cmd.Context()

	// 1) Settings: defaults, file, flags.
	s, err := loadSettings(cmd, o)
	if err != nil {
		return err
	}
	if level, format, ok := fileLogging(cmd, root, s); ok {
		ctx = ctxlog.WithLogger(ctx, newLogger(level, format, root.stderr))
	}
	log := ctxlog.FromContext(ctx)

	cfg, policyOK, err := s.Similarity()
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if !policyOK {
		log.Warn("Unknown output parameter, using default (all cliques).", "select", s.Select)
	}
	// The JSON report carries the mappings.
	cfg.Align = cfg.Align || o.jsonReport

	// 2) Graphs
	a, err := loadGraph(pathA)
	if err != nil {
		return runtimeError(err)
	}
	b, err := loadGraph(pathB)
	if err != nil {
		return runtimeError(err)
	}
	log.Info("Graph loaded.", "file", pathA, "vertices", a.VertexCount(), "edges", a.EdgeCount())
	log.Info("Graph loaded.", "file", pathB, "vertices", b.VertexCount(), "edges", b.EdgeCount())

	// 3) Search
	var rec *metrics.Recorder
	if s.MetricsFile != "" {
		rec = metrics.NewRecorder()
	}
	rep, err := similarity.Compare(ctx, a, b, cfg, similarity.WithRecorder(rec))
	if err != nil {
		return runtimeError(err)
	}
	if rep.Filtered {
		log.Info(fmt.Sprintf("Found %d possible vertex mappings. Filtered permutations, %d elements remaining.",
			rep.Dedupe.Before, rep.Dedupe.After))
	}
	if rep.Empty() {
		log.Info("No common substructure found.")
	}

	// 4) Output
	if o.jsonReport {
		err = output.WriteReport(root.stdout, rep)
	} else {
		err = output.WriteJSONLines(root.stdout, rep.Records)
	}
	if err != nil {
		return runtimeError(err)
	}

	if rep.Filtered && s.WriteMappingFiles {
		paths, err := output.WriteMappingFiles(s.OutputPath, rep.Records, rep.Mappings)
		if err != nil {
			return runtimeError(err)
		}
		for i := 0; i+1 < len(paths); i += 2 {
			log.Info("Wrote result mapping pair.", "index", i/2, "first", paths[i], "second", paths[i+1])
		}
	}
	if o.exportGML {
		paths, err := output.WriteSubstructures(s.OutputPath, a, b, rep.Records)
		if err != nil {
			return runtimeError(err)
		}
		log.Info("Exported common substructures.", "files", len(paths), "dir", s.OutputPath)
	}
	if rec != nil {
		if err = rec.WriteTextfile(s.MetricsFile); err != nil {
			return runtimeError(err)
		}
	}

	return nil
}

// loadSettings merges defaults, the config file and the changed flags.
func loadSettings(cmd *cobra.Command, o *compareOptions) (config.Settings, error) {
	log := ctxlog.FromContext(cmd.Context())
	s := config.Defaults()

	path := o.configPath
	if path == "" {
		home, _ := os.UserHomeDir()
		found, err := config.Discover(home, ".")
		switch {
		case errors.Is(err, config.ErrNotFound):
			log.Debug("No config file found, using internal default settings.")
		case err != nil:
			return s, runtimeError(err)
		default:
			path = found
		}
	}
	if path != "" {
		loaded, warns, err := config.Load(path, s)
		if err != nil {
			return s, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		for _, w := range warns {
			log.Warn("Config file problem, skipping line.", "file", path, "detail", w.String())
		}
		log.Debug("Parsed config file.", "file", path)
		s = loaded
	}

	f := cmd.Flags()
	switch {
	case f.Changed("all"):
		s.Select = "all"
	case f.Changed("largest"):
		s.Select = "largest"
	case f.Changed("min-size"):
		s.Select, s.MinSize = "min_size", o.minSize
	case f.Changed("select"):
		s.Select = o.selector
	}
	if f.Changed("filter") {
		s.FilterPermutations = o.filter
	}
	if f.Changed("write-mappings") {
		s.WriteMappingFiles = o.mappings
	}
	if f.Changed("output-dir") {
		s.OutputPath = o.outputDir
	}
	if f.Changed("timeout") {
		s.Timeout = o.timeout
	}
	if f.Changed("max-cliques") {
		s.MaxCliques = o.maxCliques
	}
	if f.Changed("workers") {
		s.Workers = o.workers
	}
	if f.Changed("edge-attr") {
		s.EdgeAttrs = o.edgeAttrs
	}
	if f.Changed("vertex-attr") {
		s.VertexAttrs = o.vertexAttrs
	}
	if f.Changed("match-any") {
		s.MatchAny = o.matchAny
	}
	if f.Changed("metrics-file") {
		s.MetricsFile = o.metricsFile
	}
	if f.Changed("silent") {
		s.Silent = o.silent
	}

	return s, nil
}

// fileLogging resolves logging settings that come from the config file. Flags
// given on the command line win. It reports false when nothing changes.
func fileLogging(cmd *cobra.Command, root *rootOptions, s config.Settings) (level, format string, ok bool) {
	level, format = root.logLevel, root.logFormat
	if !cmd.Flags().Changed("log-level") {
		level = s.LogLevel
		if s.Silent {
			level = "warn"
		}
	}
	if !cmd.Flags().Changed("log-format") {
		format = s.LogFormat
	}

	return level, format, level != root.logLevel || format != root.logFormat
}

func loadGraph(path string) (*core.Graph, error) {
	g, err := gml.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return g, nil
}
