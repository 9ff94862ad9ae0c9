package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/robbyt/go-polycalc/options"
	"github.com/robbyt/go-polycalc/platform/script/loader"
)

const prompt = "> "

// repl evaluates each input line as its own expression. Errors are printed
// and the loop continues; it returns when input ends or ctx is done.
func repl(ctx context.Context, in io.Reader, out, errOut io.Writer, opts []options.Option) int {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		ldr, err := loader.NewFromString(line)
		if err == nil {
			err = evalOnce(ctx, out, ldr, opts)
		}
		if err != nil {
			printError(errOut, err)
		}
	}
	fmt.Fprintln(out)

	if err := scanner.Err(); err != nil {
		printError(errOut, err)
		return exitError
	}
	return exitOK
}
