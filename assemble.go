package booklet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Assemble converts the PDF at inputPath into booklet form and writes the
// result to w. The output has half as many pages as the input, each twice
// the input width: printed flip-on-short-edge and folded in half, it reads
// in the original page order.
//
// The input must have an even number of pages, and the two pages of each
// sheet must share media box dimensions. On any error nothing is written.
func Assemble(w io.Writer, inputPath string, opts ...Option) error {
	buf, err := build(inputPath, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// AssembleToFile converts the PDF at inputPath into booklet form and saves
// it to outputPath. The output file is only created once assembly has
// succeeded in memory.
func AssembleToFile(inputPath, outputPath string, opts ...Option) error {
	buf, err := build(inputPath, opts)
	if err != nil {
		return err
	}
	return writeFile(outputPath, buf.Bytes())
}

func build(inputPath string, opts []Option) (*bytes.Buffer, error) {
	var cfg assembleConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	body, err := buildBody(inputPath, cfg.foldMarks)
	if err != nil {
		return nil, err
	}

	if cfg.centerfoldPath == "" {
		return body, nil
	}

	centerfold, err := rotatedCenterfold(cfg.centerfoldPath)
	if err != nil {
		return nil, err
	}

	// Splice the centerfold in by stream merge so its pages keep their
	// media boxes and carry only a /Rotate attribute.
	var out bytes.Buffer
	readers := []io.ReadSeeker{bytes.NewReader(body.Bytes()), bytes.NewReader(centerfold.Bytes())}
	if err := api.MergeRaw(readers, &out, false, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("booklet: appending centerfold %s: %w", cfg.centerfoldPath, err)
	}
	return &out, nil
}

// buildBody composites the input pages into sheets in imposition order:
// outermost leaf first, working inward, so that sheet k carries the pages
// lying k leaves deep in the folded stack.
func buildBody(inputPath string, foldMarks bool) (*bytes.Buffer, error) {
	total, err := pageCount(inputPath)
	if err != nil {
		return nil, err
	}
	if total%2 != 0 {
		return nil, fmt.Errorf("booklet: %s has %d pages: %w", inputPath, total, ErrOddPageCount)
	}

	pdf := newSheetPDF()
	imp := gofpdi.NewImporter()

	half := total / 2
	for i := 0; i < half; i += 2 {
		// Outward-facing side: last remaining page left, first right.
		if err := addTwoUpSheet(pdf, imp, inputPath, total-i, i+1, foldMarks); err != nil {
			return nil, err
		}
		// Its mirrored back side, when one remains at this depth.
		if j := i + 1; j < half {
			if err := addTwoUpSheet(pdf, imp, inputPath, j+1, total-j, foldMarks); err != nil {
				return nil, err
			}
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("booklet: assembling %s: %w", inputPath, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("booklet: assembling %s: %w", inputPath, err)
	}
	return &buf, nil
}
