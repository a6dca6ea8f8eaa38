// Command booklet converts a PDF document into booklet form.
//
// The resulting PDF contains half the number of pages of the input
// document, each page twice the size of the input pages: a 4-page
// 5.5x8.5in input becomes a 2-page 8.5x11in booklet. Printed in
// flip-on-short-edge duplex mode and folded in half, the sheets read in
// the original page order.
//
// An even-length document can carry a centerfold: a separate PDF, already
// composed at sheet size, appended after the body sheets with alternating
// +90/-90 degree rotation so it folds the right way.
//
//	usage: booklet [-h] [-c CENTERFOLD] [-fold-marks] input_file output_file
//
// # Installation
//
//	go install github.com/lvillar/booklet/cmd/booklet@latest
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lvillar/booklet"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("booklet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }

	var centerfold string
	var foldMarks bool
	// -centerfold is an alias for -c; the shared usage() below documents
	// them as one option.
	fs.StringVar(&centerfold, "c", "", "")
	fs.StringVar(&centerfold, "centerfold", "", "")
	fs.BoolVar(&foldMarks, "fold-marks", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		usage(stderr)
		return 2
	}

	var opts []booklet.Option
	if centerfold != "" {
		opts = append(opts, booklet.WithCenterfold(centerfold))
	}
	if foldMarks {
		opts = append(opts, booklet.WithFoldMarks())
	}

	if err := booklet.AssembleToFile(fs.Arg(0), fs.Arg(1), opts...); err != nil {
		fmt.Fprintf(stderr, "booklet: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: booklet [-h] [-c CENTERFOLD] [-fold-marks] input_file output_file

Convert a PDF document into booklet form: half the pages, each twice the
size, reading in order when printed flip-on-short-edge and folded.

  -c FILE, -centerfold FILE
        add FILE as a centerfold
  -fold-marks
        draw a dashed guide line along each fold
`)
}
