package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/htmlchop"
	"gopkg.in/yaml.v3"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input     string `arg:"" help:"Input HTML file"`
	Output    string `arg:"" help:"Output directory"`
	AssetRoot string `arg:"" optional:"" help:"Directory containing referenced stylesheets and images"`

	Config          string `short:"c" optional:"" help:"YAML configuration file"`
	CopyAssets      bool   `help:"Copy the asset root next to each emitted fragment instead of rewriting references"`
	NoOrdinalPrefix bool   `help:"Name output directories and files without NNN_ ordinal prefixes"`
	SharedHead      bool   `help:"Rewrite the shared head block once instead of per fragment"`
	Lang            string `help:"Lang attribute for the <html> root of emitted files"`
	Concurrency     int    `default:"1" help:"Concurrent fragment writes"`
	Manifest        bool   `help:"Write manifest.json with checksums of emitted files"`
	Verbose         bool   `short:"v" help:"Enable verbose logging"`
}

// loadConfig builds the run configuration from defaults, the optional YAML
// config file, and command-line flags. Flags win over the file.
func loadConfig(cli *CLI) (htmlchop.Config, error) {
	cfg := htmlchop.DefaultConfig()

	if cli.Config != "" {
		data, err := os.ReadFile(cli.Config)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %q: %w", cli.Config, err)
		}
	}

	if cli.CopyAssets {
		cfg.RewritePolicy = htmlchop.CopyAssets
	}
	if cli.NoOrdinalPrefix {
		cfg.OrdinalPrefix = false
	}
	if cli.SharedHead {
		cfg.HeadInjection = htmlchop.HeadShared
	}
	if cli.Lang != "" {
		cfg.Lang = cli.Lang
	}
	if cli.Concurrency > 1 {
		cfg.Concurrency = cli.Concurrency
	}
	if cli.Manifest {
		cfg.Manifest = true
	}

	return cfg, cfg.Validate()
}
