// Command polycalc evaluates left-to-right integer expressions.
//
//	polycalc [flags] <expression | file:///abs/path>
//
// With no argument it reads one expression from piped stdin, or starts a
// line-oriented REPL when stdin is a terminal. Expressions starting with a
// negative number must follow "--" so they are not parsed as flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/robbyt/go-polycalc"
	"github.com/robbyt/go-polycalc/engines/calc/lang"
	"github.com/robbyt/go-polycalc/options"
	"github.com/robbyt/go-polycalc/platform"
	"github.com/robbyt/go-polycalc/platform/script/loader"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	if err := loadDotEnv(defaultDotEnv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitError)
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

func run(
	ctx context.Context,
	args []string,
	getenv func(string) string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) int {
	cfg, err := configFromEnv(getenv)
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}

	flags := flag.NewFlagSet("polycalc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: polycalc [flags] [expression | file:///abs/path]")
		flags.PrintDefaults()
	}
	overflow := flags.String("overflow", cfg.overflow.String(), "overflow policy: fail, wrap or saturate")
	verbose := flags.Bool("v", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return exitUsage
	}

	policy, err := lang.ParseOverflowPolicy(*overflow)
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}
	if *verbose {
		cfg.logLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.logLevel})
	opts := []options.Option{
		options.WithLogHandler(handler),
		options.WithOverflowPolicy(policy),
	}

	var ldr loader.Loader
	switch {
	case flags.NArg() == 1:
		ldr, err = loader.InferLoader(flags.Arg(0))
	case isTerminal(stdin):
		return repl(ctx, stdin, stdout, stderr, opts)
	default:
		ldr, err = loader.NewFromIoReader(stdin, "stdin")
	}
	if err != nil {
		printError(stderr, err)
		return exitError
	}

	if err := evalOnce(ctx, stdout, ldr, opts); err != nil {
		printError(stderr, err)
		return exitError
	}
	return exitOK
}

func evalOnce(ctx context.Context, w io.Writer, ldr loader.Loader, opts []options.Option) error {
	evaluator, err := polycalc.FromLoader(ldr, opts...)
	if err != nil {
		return err
	}
	resp, err := evaluator.Eval(ctx)
	if err != nil {
		return err
	}
	printResult(w, resp)
	return nil
}

func printResult(w io.Writer, resp platform.EvaluatorResponse) {
	fmt.Fprintln(w, resp.Inspect())
}

// printError reports the expression error itself when there is one, without
// the compile and exec wrapping around it.
func printError(w io.Writer, err error) {
	var langErr *lang.Error
	if errors.As(err, &langErr) {
		err = langErr
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
