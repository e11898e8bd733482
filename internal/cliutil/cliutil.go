// Package cliutil holds the small amount of plumbing shared by the lzw and
// packbits command-line drivers: binding "-" to a standard stream or a
// filename to a file, turning EOI_IS_EOD into a codec dialect, and the
// ErrUsage sentinel both drivers use to signal a malformed invocation.
package cliutil

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/hhrutter/tiffcodec/lzw"
	"github.com/hhrutter/tiffcodec/packbits"
)

// ErrUsage is the CLI-only member of the codec packages' error taxonomy:
// it marks a malformed invocation (wrong argument count, unknown action)
// so main can print the usage string and exit 2, rather than treating it
// as an I/O or codec failure (exit 1).
var ErrUsage = errors.New("cliutil: usage error")

// OpenInput binds name to an input stream: "-" (or "") means os.Stdin,
// anything else is opened read-only. The caller must close the returned
// stream unless it is os.Stdin.
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening input %q", name)
	}
	return f, nil
}

// OpenOutput binds name to an output stream: "-" (or "") means os.Stdout,
// anything else is created/truncated. The caller must close the returned
// stream unless it is os.Stdout.
func OpenOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return os.Stdout, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output %q", name)
	}
	return f, nil
}

// Dialect maps the EOI_IS_EOD environment variable to an lzw.Dialect: a
// non-empty value selects the lax PDF dialect, empty or unset selects the
// strict TIFF dialect. See DESIGN.md for why this reverses a literal
// reading of the variable's name.
func Dialect(eoiIsEOD string) lzw.Dialect {
	if eoiIsEOD != "" {
		return lzw.DialectLax
	}
	return lzw.DialectStrict
}

// PackbitsDialect maps the same environment variable to a packbits.Dialect,
// using the identical non-empty-means-lax rule.
func PackbitsDialect(eoiIsEOD string) packbits.Dialect {
	if eoiIsEOD != "" {
		return packbits.DialectLax
	}
	return packbits.DialectStrict
}
