// Command lzw is a thin I/O driver around package lzw: it binds an action
// and two file arguments to the codec and nothing else.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/hhrutter/tiffcodec/internal/cliutil"
	"github.com/hhrutter/tiffcodec/lzw"
	"github.com/hhrutter/tiffcodec/pkg/log"
)

const usage = `usage: lzw {encode|decode} <infile|-> <outfile|->

environment:
  EOI_IS_EOD   non-empty selects the lax PDF dialect; empty/unset selects
               the strict TIFF dialect
  LZW_DEBUG    non-empty enables verbose trace logging`

var verbose bool

func init() {
	flag.BoolVar(&verbose, "verbose", false, "")
	flag.BoolVar(&verbose, "v", false, "")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "lzw: %v\n", err)
	if errors.Is(err, cliutil.ErrUsage) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	os.Exit(1)
}

func main() {
	log.SetDefaultLoggers()
	flag.Parse()

	if verbose || os.Getenv("LZW_DEBUG") != "" {
		if err := log.SetZapLoggers(); err != nil {
			fail(errors.Wrap(err, "setting up verbose logging"))
		}
	}

	args := flag.Args()
	if len(args) != 3 {
		fail(errors.Wrapf(cliutil.ErrUsage, "expected 3 arguments, got %d", len(args)))
	}

	action, inName, outName := args[0], args[1], args[2]
	if action != "encode" && action != "decode" {
		fail(errors.Wrapf(cliutil.ErrUsage, "unknown action %q", action))
	}

	in, err := cliutil.OpenInput(inName)
	if err != nil {
		fail(err)
	}
	defer in.Close()

	out, err := cliutil.OpenOutput(outName)
	if err != nil {
		fail(err)
	}
	defer out.Close()

	dialect := cliutil.Dialect(os.Getenv("EOI_IS_EOD"))
	log.Debug.Printf("lzw %s, dialect=%v", action, dialect)

	switch action {
	case "encode":
		w := lzw.NewWriter(out, dialect)
		if _, err := io.Copy(w, in); err != nil {
			fail(err)
		}
		if err := w.Close(); err != nil {
			fail(err)
		}
	case "decode":
		r := lzw.NewReader(in, dialect)
		defer r.Close()
		if _, err := io.Copy(out, r); err != nil {
			fail(err)
		}
	}
}
