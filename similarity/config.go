package similarity

import (
	"errors"
	"time"

	"github.com/katalvlaran/protsim/compat"
	"github.com/katalvlaran/protsim/result"
)

// Config parameterises one Compare call. It is passed by value and never
// modified.
type Config struct {
	// Rule decides which edge pairs become product vertices.
	Rule compat.Rule

	// Policy selects the cliques that are reported.
	Policy result.Policy

	// Filter removes records that repeat an earlier one up to ordering.
	Filter bool

	// Align computes an explicit vertex mapping per output record. The
	// search is exponential in the worst case, so enable it only when the
	// mappings are consumed.
	Align bool

	// MaxCliques stops enumeration after this many cliques; 0 = unlimited.
	MaxCliques int

	// Timeout bounds the whole run, construction and alignment included;
	// expiry yields a partial Report. 0 = none.
	Timeout time.Duration

	// Workers is the number of enumeration goroutines; ≤ 1 runs sequentially.
	Workers int

	// MaxProductVertices aborts runs whose product graph would be larger;
	// 0 = unlimited.
	MaxProductVertices int
}

// DefaultConfig returns the settings of a plain run: default rule, all
// cliques, no filtering, no limits.
func DefaultConfig() Config {
	return Config{
		Rule:    compat.DefaultRule(),
		Policy:  result.PolicyAll(),
		Workers: 1,
	}
}

// Validate reports every configuration problem joined into one error whose
// parts are *compat.ConfigError.
func (c Config) Validate() error {
	errs := []error{c.Rule.Validate()}
	if c.Policy.Kind == result.MinSize && c.Policy.MinSize < 0 {
		errs = append(errs, &compat.ConfigError{Field: "min_size", Reason: "must not be negative"})
	}
	if c.MaxCliques < 0 {
		errs = append(errs, &compat.ConfigError{Field: "max_cliques", Reason: "must not be negative"})
	}
	if c.Timeout < 0 {
		errs = append(errs, &compat.ConfigError{Field: "timeout", Reason: "must not be negative"})
	}
	if c.MaxProductVertices < 0 {
		errs = append(errs, &compat.ConfigError{Field: "max_product_vertices", Reason: "must not be negative"})
	}

	return errors.Join(errs...)
}
