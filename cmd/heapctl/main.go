// Command heapctl runs a scripted heap scenario and prints each result.
//
// Usage:
//
//	heapctl -scenario=steps.toml [-kind=binomial|fibonacci|fib] [-log-level=2]
//
// The scenario file is TOML or YAML (by extension). -kind overrides the
// kind named in the file. Logging goes to stderr unless -log-file is set.
package main

import (
	"context"
	"flag"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/logging/ctxlog"

	"github.com/katalvlaran/meldheap/internal/scenario"
)

var (
	kindFlag     = flag.String("kind", "", "heap kind: binomial, fibonacci or fib; overrides the scenario file")
	scenarioFlag = flag.String("scenario", "", "path to a .toml, .yaml or .yml scenario file")
	logLevelFlag = flag.Int("log-level", 1, "logging level: 0=error, 1=warn, 2=info, 3=debug")
	logFmtFlag   = flag.String("log-format", "text", "log format: text or json")
	logFileFlag  = flag.String("log-file", "", "log file path; stderr if empty, stdout if -")
)

func main() {
	flag.Parse()
	if *scenarioFlag == "" {
		cmdutil.Exit("heapctl: -scenario is required")
	}
	if *kindFlag != "" {
		if err := validateKind(*kindFlag); err != nil {
			cmdutil.Exit("heapctl: -kind: %v", err)
		}
	}
	if err := flags.OneOf(*logFmtFlag).Validate("text", "json"); err != nil {
		cmdutil.Exit("heapctl: -log-format: %v", err)
	}

	logger, err := cmdutil.LoggingConfig{
		Level:  *logLevelFlag,
		File:   *logFileFlag,
		Format: *logFmtFlag,
	}.NewLogger()
	if err != nil {
		cmdutil.Exit("heapctl: %v", err)
	}

	ctx, cancel := context.WithCancel(ctxlog.Context(context.Background(), logger.Logger))
	cmdutil.HandleSignals(cancel, os.Interrupt)

	err = run(ctx, *scenarioFlag, *kindFlag)
	cancel()
	logger.Close()
	if err != nil {
		cmdutil.Exit("heapctl: %v", err)
	}
}

// kindNames are the -kind values; each is accepted by heap.ParseKind.
var kindNames = []string{"binomial", "fibonacci", "fib"}

func validateKind(kind string) error {
	return flags.OneOf(kind).Validate(kindNames[0], kindNames[1:]...)
}

func run(ctx context.Context, path, kind string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if kind != "" {
		sc.Kind = kind
	}
	return scenario.Run(ctx, sc, os.Stdout)
}
