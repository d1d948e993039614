// Command seqdiff compares two text files line by line.
//
// Usage:
//
//	seqdiff [flags] FROM TO
//
// The exit status is 0 if the files are byte for byte identical, 1 if they
// differ and 2 if something went wrong. Files that differ only in line
// endings or in the final newline compare equal line by line, so they print
// no diff but still exit with 1.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codinganovel/go-seqdiff/difflib"
)

const (
	exitSame    = 0
	exitDiffers = 1
	exitTrouble = 2
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	format      string
	context     int
	cutoff      float64
	color       string
	ignoreBlank bool
	summary     bool
	verbose     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	code := exitSame
	cmd := newRootCmd(stdout, stderr, &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "seqdiff: %v\n", err)
		return exitTrouble
	}
	return code
}

func newRootCmd(stdout, stderr io.Writer, code *int) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "seqdiff [flags] FROM TO",
		Short:         "Compare two files line by line",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			logger := log.New(io.Discard, "", 0)
			if opts.verbose {
				logger = log.New(stderr, "seqdiff: ", log.Flags())
			}
			differs, err := diffFiles(stdout, logger, args[0], args[1], opts)
			if err != nil {
				return err
			}
			if differs {
				*code = exitDiffers
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", "unified", "output format: unified, context, readable or summary")
	flags.IntVarP(&opts.context, "context", "U", difflib.DefaultContextSize, "lines of context around changes, -1 for all")
	flags.Float64Var(&opts.cutoff, "cutoff", difflib.DefaultCutOffRatio, "similarity needed to pair lines in the readable format")
	flags.StringVar(&opts.color, "color", "auto", "colorize output: auto, always or never")
	flags.BoolVar(&opts.ignoreBlank, "ignore-blank", false, "treat blank lines and lone '#' lines as junk")
	flags.BoolVar(&opts.summary, "summary", false, "append a one line summary of the changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log similarity ratios to stderr")
	return cmd
}

func (o options) validate() error {
	switch o.format {
	case "unified", "context", "readable", "summary":
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
	switch o.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q", o.color)
	}
	if o.context < 0 && o.context != difflib.FullContext {
		return fmt.Errorf("invalid context size %d", o.context)
	}
	if o.cutoff < 0 || o.cutoff > 1 {
		return fmt.Errorf("cut-off ratio %v out of [0, 1]", o.cutoff)
	}
	return nil
}

// diffFiles writes the difference between the files at fromPath and toPath to
// w and reports whether their contents differ.
func diffFiles(w io.Writer, logger *log.Logger, fromPath, toPath string, opts options) (bool, error) {
	fromData, fromInfo, err := readFile(fromPath)
	if err != nil {
		return false, err
	}
	toData, toInfo, err := readFile(toPath)
	if err != nil {
		return false, err
	}
	from, to := difflib.SplitLines(string(fromData)), difflib.SplitLines(string(toData))
	logger.Printf("%s: %d lines, %s: %d lines", fromPath, len(from), toPath, len(to))

	var isJunk func(string) bool
	if opts.ignoreBlank {
		isJunk = difflib.IsLineJunk
	}
	m := difflib.NewMatcherWithJunk(from, to, true, isJunk)
	d := difflib.NewDiffer(m,
		difflib.WithContextSize(opts.context),
		difflib.WithCutOffRatio(opts.cutoff))
	logger.Printf("real quick ratio %.4f, quick ratio %.4f, ratio %.4f",
		m.RealQuickRatio(), m.QuickRatio(), m.Ratio())

	out := newOutput(w, opts.color)
	header := difflib.FileHeader{
		FromFile: fromPath,
		FromDate: fromInfo.ModTime().Format(timeFormat),
		ToFile:   toPath,
		ToDate:   toInfo.ModTime().Format(timeFormat),
	}
	writer := newWriter(opts.format, out, header)
	if err := d.Diff(writer); err != nil {
		return false, fmt.Errorf("writing diff: %w", err)
	}
	if opts.summary || opts.format == "summary" {
		if err := d.WriteSummary(writer, m.Operations()); err != nil {
			return false, fmt.Errorf("writing diff: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return false, fmt.Errorf("writing output: %w", err)
	}
	return !bytes.Equal(fromData, toData), nil
}

const timeFormat = "2006-01-02 15:04:05.000000000 -0700"

func readFile(path string) ([]byte, os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, info, nil
}

func newOutput(w io.Writer, color string) difflib.Output {
	switch color {
	case "always":
		return difflib.NewANSIOutput(w)
	case "auto":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return difflib.NewANSIOutput(w)
		}
	}
	return difflib.NewPlainOutput(w)
}

func newWriter(format string, out difflib.Output, header difflib.FileHeader) difflib.Writer[string] {
	switch format {
	case "context":
		return difflib.NewContextWriter(out, header)
	case "readable":
		return difflib.NewReadableWriter(out, difflib.ReadableOptions{})
	case "summary":
		return difflib.NewSummaryWriter[string](out)
	default:
		return difflib.NewUnifiedWriter(out, header)
	}
}
