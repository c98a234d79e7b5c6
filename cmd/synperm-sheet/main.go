// synperm-sheet writes a CSV of the PDB files in a directory with their
// one-letter sequences and topology labels, for use with ESM C.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/tikz/synperm"
	"github.com/tikz/synperm/config"
	"github.com/tikz/synperm/topology"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var configPath string
	var dir string
	var output string
	var topologyFile string
	var logLevel string

	flagSet := pflag.NewFlagSet("synperm-sheet", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&dir, "dir", ".", "directory containing PDB files")
	flagSet.StringVar(&output, "output", "esm_domains.csv", "output CSV file")
	flagSet.StringVar(&topologyFile, "topology-file", "", "YAML or JSON table of file name to topology")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flagSet.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected argument: %s\n", flagSet.Arg(0))
		return 1
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if flagSet.Changed("topology-file") {
		cfg.TopologyFile = topologyFile
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	table := loadTable(cfg.TopologyFile, logger)

	file, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer file.Close()

	rows, err := synperm.WriteSheet(file, dir, table, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Info("CSV file created", "output", output, "rows", rows)
	return 0
}

// loadTable loads the topology table, or returns an empty one with a warning.
func loadTable(path string, logger *slog.Logger) topology.Table {
	if path == "" {
		logger.Warn("no topology table; continuing without topology information")
		return topology.Table{}
	}

	table, err := topology.Load(path)
	if err != nil {
		logger.Warn("error loading topology table; continuing without topology information", "err", err)
		return topology.Table{}
	}
	logger.Info("loaded topology table", "entries", table.Len())
	return table
}
