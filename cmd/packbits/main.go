// Command packbits is a thin I/O driver around package packbits: it binds
// an action and two file arguments to the codec and nothing else.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/hhrutter/tiffcodec/internal/cliutil"
	"github.com/hhrutter/tiffcodec/packbits"
	"github.com/hhrutter/tiffcodec/pkg/log"
)

const usage = `usage: packbits {pack|unpack} <infile|-> <outfile|->

environment:
  EOI_IS_EOD      non-empty appends a trailing no-op EOD byte on pack;
                   empty/unset omits it (strict TIFF framing)
  PACKBITS_DEBUG  non-empty enables verbose trace logging`

var verbose bool

func init() {
	flag.BoolVar(&verbose, "verbose", false, "")
	flag.BoolVar(&verbose, "v", false, "")
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "packbits: %v\n", err)
	if errors.Is(err, cliutil.ErrUsage) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	os.Exit(1)
}

func main() {
	log.SetDefaultLoggers()
	flag.Parse()

	if verbose || os.Getenv("PACKBITS_DEBUG") != "" {
		if err := log.SetZapLoggers(); err != nil {
			fail(errors.Wrap(err, "setting up verbose logging"))
		}
	}

	args := flag.Args()
	if len(args) != 3 {
		fail(errors.Wrapf(cliutil.ErrUsage, "expected 3 arguments, got %d", len(args)))
	}

	action, inName, outName := args[0], args[1], args[2]
	if action != "pack" && action != "unpack" {
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

	dialect := cliutil.PackbitsDialect(os.Getenv("EOI_IS_EOD"))
	log.Debug.Printf("packbits %s, dialect=%v", action, dialect)

	switch action {
	case "pack":
		buf, err := io.ReadAll(in)
		if err != nil {
			fail(err)
		}
		w := packbits.NewWriter(out, dialect)
		if _, err := w.Write(buf); err != nil {
			fail(err)
		}
		if err := w.Close(); err != nil {
			fail(err)
		}
	case "unpack":
		if err := packbits.Unpack(out, in); err != nil {
			fail(err)
		}
	}
}
