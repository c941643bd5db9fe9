// Package config loads the textpipe configuration.
//
// Values are resolved from, by increasing priority: defaults, the config file, TEXTPIPE_* environment
// variables and command line flags.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TEXTPIPE"

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Batch    BatchConfig    `mapstructure:"batch"`
	Output   OutputConfig   `mapstructure:"output"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type PipelineConfig struct {
	// File is an hjson pipeline definition.
	File string `mapstructure:"file"`
	// Operations use the compact syntax, e.g. "ngrams:2:; ". Ignored when File is set.
	Operations []string `mapstructure:"operations"`
}

type BatchConfig struct {
	// Lines processes every line of the input independently.
	Lines       bool `mapstructure:"lines"`
	Concurrency int  `mapstructure:"concurrency"`
}

type OutputConfig struct {
	// Graph is the path of the DOT file describing the pipeline. Empty disables it.
	Graph   string `mapstructure:"graph"`
	Measure bool   `mapstructure:"measure"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Batch: BatchConfig{
			Lines:       false,
			Concurrency: 1,
		},
	}
}

// flagKeys maps every configuration key to the flag overriding it.
var flagKeys = map[string]string{
	"log.level":         "log-level",
	"log.format":        "log-format",
	"pipeline.file":     "pipeline-file",
	"batch.lines":       "lines",
	"batch.concurrency": "concurrency",
	"output.graph":      "graph",
	"output.measure":    "measure",
}

// RegisterPersistentFlags registers the flags shared by every command.
func RegisterPersistentFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.Log.Level, "Log level: trace|debug|info|warn|error|fatal")
	fs.String("log-format", defaults.Log.Format, "Log format: text|json")
}

// RegisterRunFlags registers the flags of the run command.
func RegisterRunFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("pipeline-file", defaults.Pipeline.File, "hjson file describing the pipeline operations")
	fs.Bool("lines", defaults.Batch.Lines, "Process every line of the input independently")
	fs.Int("concurrency", defaults.Batch.Concurrency, "Maximum number of lines processed at the same time")
	fs.String("graph", defaults.Output.Graph, "Write the pipeline graph to this DOT file")
	fs.Bool("measure", defaults.Output.Measure, "Log the duration and the sizes of every operation")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)

	if opts.Cmd != nil {
		fs := opts.Cmd.Flags()
		for key, name := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}

			err := v.BindPFlag(key, flag)
			if err != nil {
				return Config{}, errors.Wrapf(err, "unable to bind flag %s", name)
			}
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "unable to read config file")
		}
	} else {
		v.SetConfigName("textpipe")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, errors.Wrap(err, "unable to read config file")
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unable to decode config")
	}

	if cfg.Batch.Concurrency < 1 {
		return Config{}, errors.Errorf("batch concurrency must be at least 1, got %d", cfg.Batch.Concurrency)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("pipeline.file", c.Pipeline.File)
	v.SetDefault("pipeline.operations", c.Pipeline.Operations)
	v.SetDefault("batch.lines", c.Batch.Lines)
	v.SetDefault("batch.concurrency", c.Batch.Concurrency)
	v.SetDefault("output.graph", c.Output.Graph)
	v.SetDefault("output.measure", c.Output.Measure)
}
