// synperm-generate writes every residue-aligned circular permutation of a
// cleaned PDB file into an existing output directory.
//
// Usage:
//
//	synperm-generate [flags] <input_pdb_file> <output_directory>
//
// Permutation i of N is written as <stem>_permutation_<i>.pdb. Permutation
// N-1 moves the last residue to the front, permutation 0 moves every residue.
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
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var configPath string
	var chain string
	var manifest bool
	var logLevel string

	flagSet := pflag.NewFlagSet("synperm-generate", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&chain, "chain", "", "chain token of the residues to permute (default A)")
	flagSet.BoolVar(&manifest, "manifest", false, "write <stem>_permutations.json with a BLAKE3 digest per file")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	flagSet.Usage = func() { printUsage(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	if flagSet.NArg() != 2 {
		printUsage(stderr, flagSet)
		return 1
	}
	inputPath, outputDir := flagSet.Arg(0), flagSet.Arg(1)

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if flagSet.Changed("chain") {
		cfg.Chain = chain
	}
	if flagSet.Changed("manifest") {
		cfg.Manifest = manifest
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

	res, err := synperm.Generate(inputPath, outputDir, synperm.Options{
		Chain:    cfg.Chain,
		Manifest: cfg.Manifest,
		Logger:   logger,
	})
	switch {
	case errors.Is(err, synperm.ErrOutputDir):
		fmt.Fprintf(stderr, "error: %v\n", err)
		fmt.Fprintln(stderr, "No output dir defined! See clean_pdb.sh script which generates an output dir for the synCPs")
		return 1
	case res == nil && err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Generated %d.\n", res.Written())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "Circular permutation generation complete.")
	return 0
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: synperm-generate [flags] <input_pdb_file> <output_directory>\n\nFlags:\n")
	fmt.Fprint(w, flagSet.FlagUsages())
}
