// Package config loads protsim settings: built-in defaults, then one config
// file (HCL, YAML or the legacy bk_protsim key = value format), then
// command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/protsim/compat"
	"github.com/katalvlaran/protsim/result"
	"github.com/katalvlaran/protsim/similarity"
)

// Settings is the flat, file-facing form of a run configuration.
type Settings struct {
	OutputPath         string   `hcl:"output_path,optional" yaml:"output_path" validate:"required"`
	Silent             bool     `hcl:"silent,optional" yaml:"silent"`
	EdgeAttrs          []string `hcl:"edge_attrs,optional" yaml:"edge_attrs" validate:"dive,required"`
	VertexAttrs        []string `hcl:"vertex_attrs,optional" yaml:"vertex_attrs" validate:"dive,required"`
	MatchAny           bool     `hcl:"match_any,optional" yaml:"match_any"`
	Select             string   `hcl:"select,optional" yaml:"select"`
	MinSize            int      `hcl:"min_size,optional" yaml:"min_size" validate:"gte=0"`
	FilterPermutations bool     `hcl:"filter_permutations,optional" yaml:"filter_permutations"`
	WriteMappingFiles  bool     `hcl:"write_mapping_files,optional" yaml:"write_mapping_files"`
	MaxCliques         int      `hcl:"max_cliques,optional" yaml:"max_cliques" validate:"gte=0"`
	MaxProductVertices int      `hcl:"max_product_vertices,optional" yaml:"max_product_vertices" validate:"gte=0"`
	Timeout            string   `hcl:"timeout,optional" yaml:"timeout" validate:"omitempty,duration"`
	Workers            int      `hcl:"workers,optional" yaml:"workers" validate:"gte=0,lte=1024"`
	LogLevel           string   `hcl:"log_level,optional" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat          string   `hcl:"log_format,optional" yaml:"log_format" validate:"oneof=text json"`
	MetricsFile        string   `hcl:"metrics_file,optional" yaml:"metrics_file"`
}

// Defaults mirrors the behaviour of bk_protsim without a config file.
func Defaults() Settings {
	rule := compat.DefaultRule()

	return Settings{
		OutputPath:        "./",
		Silent:            false,
		EdgeAttrs:         rule.EdgeAttrs,
		VertexAttrs:       rule.VertexAttrs,
		Select:            "all",
		WriteMappingFiles: true,
		Workers:           1,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance builds the shared validator: field names are reported
// by their yaml key, and "duration" checks time.ParseDuration.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
			_, err := time.ParseDuration(fl.Field().String())
			return err == nil
		})
	})

	return validate
}

// Validate checks field constraints and the compatibility rule. Every
// problem is a *compat.ConfigError; they are joined into one error.
func (s Settings) Validate() error {
	var errs []error

	err := validatorInstance().Struct(s)
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			errs = append(errs, &compat.ConfigError{Field: fe.Field(), Reason: reason(fe)})
		}
	case err != nil:
		errs = append(errs, err)
	}
	errs = append(errs, s.Rule().Validate())

	return errors.Join(errs...)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "oneof":
		return fmt.Sprintf("must be one of %q, got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "duration":
		return fmt.Sprintf("%q is not a duration", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed %s=%s (value %v)", fe.Tag(), fe.Param(), fe.Value())
	}
}

// Rule builds the compatibility rule. With match_any set the attribute lists
// are ignored.
func (s Settings) Rule() compat.Rule {
	if s.MatchAny {
		return compat.Rule{MatchAny: true}
	}

	return compat.Rule{
		EdgeAttrs:   append([]string(nil), s.EdgeAttrs...),
		VertexAttrs: append([]string(nil), s.VertexAttrs...),
	}
}

// Policy resolves the select key; ok is false when it fell back to all.
func (s Settings) Policy() (result.Policy, bool) {
	return result.ParsePolicy(s.Select, s.MinSize)
}

// TimeoutDuration parses Timeout; empty means no timeout.
func (s Settings) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, &compat.ConfigError{Field: "timeout", Reason: err.Error()}
	}

	return d, nil
}

// Similarity converts s into a similarity.Config. policyOK is false when an
// unknown selector fell back to all cliques; the caller reports it.
func (s Settings) Similarity() (cfg similarity.Config, policyOK bool, err error) {
	if err = s.Validate(); err != nil {
		return similarity.Config{}, false, err
	}
	timeout, err := s.TimeoutDuration()
	if err != nil {
		return similarity.Config{}, false, err
	}

	cfg = similarity.DefaultConfig()
	cfg.Rule = s.Rule()
	cfg.Policy, policyOK = s.Policy()
	cfg.Filter = s.FilterPermutations
	cfg.Align = s.FilterPermutations && s.WriteMappingFiles
	cfg.MaxCliques = s.MaxCliques
	cfg.MaxProductVertices = s.MaxProductVertices
	cfg.Timeout = timeout
	cfg.Workers = max(s.Workers, 1)

	return cfg, policyOK, nil
}
