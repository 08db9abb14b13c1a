// Command argsdemo prints the options parsed from its command line.
//
//	argsdemo -bn Something --value TheValue -u 42
//
// Set ARGSDEMO_LOG_LEVEL=debug to see how each token is processed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cardinalby/go-args-ext"
	"github.com/cardinalby/go-args-ext/cmdargs"
)

const logLevelEnv = "ARGSDEMO_LOG_LEVEL"

type options struct {
	Name    string
	Value   string
	Number  uint64
	Verbose bool
}

func applyToken(cur *cmdargs.Cursor, opts *options, token cmdargs.Token) error {
	if token.IsValue() {
		return argsext.NewUnknownArgumentError(token)
	}
	switch token.Qualifier() {
	case "n", "name", "v", "value", "u", "number":
	case "b", "verbose":
		opts.Verbose = true
		return nil
	default:
		return argsext.NewUnknownArgumentError(token)
	}

	s, err := cur.EnforceNextValue(token)
	if err != nil {
		return err
	}
	switch token.Qualifier() {
	case "n", "name":
		opts.Name = s
	case "v", "value":
		opts.Value = s
	default:
		number, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("argument %s requires a numeric value, got %q", token, s)
		}
		opts.Number = number
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelWarn, nil
	}
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}

func run(src cmdargs.Source, logLevel string, stdout, stderr io.Writer) int {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", logLevelEnv, err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var opts options
	if err := argsext.WithArgs(src, &opts, applyToken, argsext.WithLogger(logger)); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fmt.Fprintf(stdout, "Name:    %s\n", opts.Name)
	fmt.Fprintf(stdout, "Value:   %s\n", opts.Value)
	fmt.Fprintf(stdout, "Number:  %d\n", opts.Number)
	fmt.Fprintf(stdout, "Verbose: %t\n", opts.Verbose)
	return 0
}

func main() {
	os.Exit(run(cmdargs.OSArgs(), os.Getenv(logLevelEnv), os.Stdout, os.Stderr))
}
