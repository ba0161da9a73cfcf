package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags builds a Config from command-line arguments. Explicitly set
// flags take precedence over the -config file, which takes precedence over
// the defaults.
func ParseFlags(args []string, output io.Writer) (Config, error) {
	fs := flag.NewFlagSet("polyping", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		configPath = fs.String("config", "", "YAML endpoint table (rounds, timeout, endpoints)")
		rounds     = fs.Int("rounds", DefaultRounds, "Requests per endpoint")
		timeout    = fs.Duration("timeout", DefaultTimeout, "Per-request timeout")
		chartPath  = fs.String("chart", "", "Write an average latency PNG chart to this path")
		verbose    = fs.Bool("v", false, "Enable debug logging on stderr")
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := Default()
	if *configPath != "" {
		var err error
		if cfg, err = LoadFile(cfg, *configPath); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rounds":
			cfg.Rounds = *rounds
		case "timeout":
			cfg.Timeout = *timeout
		}
	})
	cfg.ChartPath = *chartPath
	cfg.Verbose = *verbose

	return cfg, nil
}

// Summary describes the run settings for logging
func (c Config) Summary() string {
	return fmt.Sprintf("%d endpoints, %d rounds, %s timeout", len(c.Endpoints), c.Rounds, c.Timeout.Round(time.Millisecond))
}
