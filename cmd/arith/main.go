// Command arith evaluates arithmetic expressions.
//
// Without arguments it reads one line from standard input. Otherwise
// each argument is evaluated in turn. Results are printed one per
// line on standard output.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atuleu/go-arith"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
)

var (
	version = "dev"
	commit  = "none"
)

// dumper shows node fields rather than their String form.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("arith", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	dumpAST := fs.Bool("ast", false, "dump the compiled tree before its value")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		With().Timestamp().Str("service", "arith").Logger().
		Level(level)

	logger.Debug().Str("version", version).Str("commit", commit).Msg("starting")

	inputs := fs.Args()
	if len(inputs) == 0 {
		line, err := readLine(stdin)
		if err != nil {
			logger.Error().Err(err).Msg("failed to read expression")
			return 1
		}
		inputs = []string{line}
	}

	status := 0
	for _, input := range inputs {
		if err := evaluate(input, *dumpAST, stdout, logger); err != nil {
			logger.Error().Err(err).Str("expression", input).Msg("evaluation failed")
			status = 1
		}
	}
	return status
}

func evaluate(input string, dumpAST bool, out io.Writer, logger zerolog.Logger) error {
	expr, err := arith.Compile(input)
	if err != nil {
		return err
	}
	logger.Debug().Str("expression", input).Stringer("tree", expr).Msg("compiled")

	if dumpAST == true {
		dumper.Fdump(out, expr)
	}

	_, err = fmt.Fprintln(out, strconv.FormatFloat(arith.Eval(expr), 'g', -1, 64))
	return err
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && len(line) == 0:
		return "", errors.New("no expression on standard input")
	case err != nil && errors.Is(err, io.EOF) == false:
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
