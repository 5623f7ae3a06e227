// Command tidycsv reads delimited text and re-emits it either
// column-aligned for human readers or as compact CSV. The field
// separator is auto-detected unless one is given.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rowset/tidycsv/pkg/csv"
)

var cli struct {
	Separator string   `short:"s" placeholder:"CHAR" help:"Field separator. Auto-detected when empty."`
	Compact   bool     `short:"c" help:"Emit compact CSV instead of aligned output."`
	Output    string   `short:"o" placeholder:"FILE" help:"Write output to FILE instead of stdout."`
	Paths     []string `arg:"" optional:"" type:"existingfile" help:"Input files. Reads stdin when none are given."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("tidycsv"),
		kong.Description("Align or compact delimited text files."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	out := io.Writer(os.Stdout)
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if len(cli.Paths) == 0 {
		return tidy(os.Stdin, out)
	}
	for _, path := range cli.Paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = tidy(f, out)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func tidy(in io.Reader, out io.Writer) error {
	rows, sep, err := readRows(in)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	var text string
	if cli.Compact {
		opts := csv.DefaultWriterOptions()
		opts.Separator = sep
		text = csv.FormatWithOptions(rows, opts)
	} else {
		opts := csv.DefaultTidyOptions()
		opts.Separator = sep
		text = csv.FormatTidyWithOptions(rows, opts)
	}

	_, err = fmt.Fprintln(out, text)
	return err
}

func readRows(in io.Reader) ([][]string, rune, error) {
	if cli.Separator == "" {
		return csv.ReadAllDetect(in)
	}

	sep := []rune(cli.Separator)
	if len(sep) != 1 {
		return nil, 0, fmt.Errorf("separator must be a single character, got %q", cli.Separator)
	}
	opts := csv.DefaultReaderOptions()
	opts.Separator = sep[0]
	rows, err := csv.ReadAllWithOptions(in, opts)
	return rows, sep[0], err
}
