// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ips4o-rs/sortbench/benchagg"
	"github.com/ips4o-rs/sortbench/benchplot"
)

const (
	defaultInput  = "./bench.json"
	defaultOutput = "target/python_plot.svg"
	envPrefix     = "SORTPLOT"
)

// Config is the resolved configuration of one run.
type Config struct {
	Input         string   `mapstructure:"input"`
	Output        string   `mapstructure:"output"`
	Algorithm     string   `mapstructure:"algorithm"`
	Distributions []string `mapstructure:"distributions"`
	Mode          string   `mapstructure:"mode"`
	Title         string   `mapstructure:"title"`
	Show          bool     `mapstructure:"show"`
	Viewer        string   `mapstructure:"viewer"`
	Format        string   `mapstructure:"format"`
	Dump          bool     `mapstructure:"dump"`
	Verbose       bool     `mapstructure:"verbose"`

	// Inputs are the files to read, from the command line or else
	// Input.
	Inputs []string `mapstructure:"-"`
}

func addFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "read configuration from `file` (yaml, json or toml)")
	flags.String("input", defaultInput, "benchmark message `file` to read when no arguments are given")
	flags.StringP("output", "o", defaultOutput, "write the figure to `file`; the extension selects the format")
	flags.StringP("algorithm", "a", benchplot.DefaultAlgorithm, "plot the series of `algorithm`")
	flags.StringSliceP("distributions", "d", benchplot.DefaultDistributions(), "comma-separated `list` of distributions to overlay, in legend order")
	flags.StringP("mode", "m", benchagg.TimePerElement.String(), "plotted quantity: total_time or time_per_element")
	flags.String("title", "", "figure title (default the algorithm)")
	flags.Bool("show", true, "open the figure in a viewer after writing it")
	flags.String("viewer", "", "`command` used to show the figure (default the desktop opener)")
	flags.String("format", "none", "also print the plotted series to stdout: none, text or csv")
	flags.Bool("dump", false, "pretty-print the whole aggregate to stdout")
	flags.BoolP("verbose", "v", false, "report what was read on stderr")
}

// loadConfig resolves the configuration from, in decreasing priority,
// flags set on the command line, SORTPLOT_* environment variables
// (including those from a .env file), the config file and the flag
// defaults.
func loadConfig(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		v.SetConfigName("sortplot")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Inputs = args
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = []string{cfg.Input}
	}
	return &cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if _, err := benchagg.ParseMode(cfg.Mode); err != nil {
		return err
	}
	switch cfg.Format {
	case "none", "text", "csv":
	default:
		return fmt.Errorf("unknown format %q (want none, text or csv)", cfg.Format)
	}
	if cfg.Algorithm == "" {
		return fmt.Errorf("no algorithm to plot")
	}
	if len(cfg.Distributions) == 0 {
		return fmt.Errorf("no distributions to plot")
	}
	if cfg.Output == "" {
		return fmt.Errorf("no output file")
	}
	return nil
}

func (cfg *Config) viewer() benchplot.Viewer {
	f := strings.Fields(cfg.Viewer)
	if len(f) == 0 {
		return benchplot.DefaultViewer()
	}
	return benchplot.Viewer{Command: f[0], Args: f[1:]}
}
