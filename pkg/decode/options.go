package decode

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configure a Decoder and the Runner built around it.
type Options struct {
	// Workers bounds the goroutines used to score emission log-likelihoods.
	// Values below 1 mean serial; the effective count never exceeds
	// GOMAXPROCS or the sequence length.
	Workers int `yaml:"workers"`

	// LogLevel and LogFormat select the Runner's logger when none is
	// injected directly. Formats: "text", "json", "none".
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// fileOptions mirrors Options with pointer fields so a config file can
// distinguish "not set" from zero values.
type fileOptions struct {
	Workers   *int    `yaml:"workers"`
	LogLevel  *string `yaml:"log_level"`
	LogFormat *string `yaml:"log_format"`
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Workers:   1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Workers < 1 {
		o.Workers = def.Workers
	}
	if o.LogLevel == "" {
		o.LogLevel = def.LogLevel
	}
	if o.LogFormat == "" {
		o.LogFormat = def.LogFormat
	}
	return o
}

// LoadOptions reads a YAML options file and merges it over the defaults.
// Fields absent from the file keep their default values.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	var f fileOptions
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}

	opts := DefaultOptions()
	if f.Workers != nil {
		opts.Workers = *f.Workers
	}
	if f.LogLevel != nil {
		opts.LogLevel = *f.LogLevel
	}
	if f.LogFormat != nil {
		opts.LogFormat = *f.LogFormat
	}
	return opts, nil
}
