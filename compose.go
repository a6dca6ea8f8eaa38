package booklet

import (
	"bytes"
	"fmt"
	"io"

	gofpdf "github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// TwoUp composites two pages of a source PDF side by side onto a single
// double-width sheet and writes the one-sheet document to w. The left page
// is placed at the origin and the right page translated by one page width.
// Page numbers are 1-based.
//
// The two pages must share media box dimensions; otherwise an error
// wrapping ErrSizeMismatch is returned and nothing is written.
func TwoUp(w io.Writer, inputPath string, leftPage, rightPage int) error {
	buf, err := buildTwoUp(inputPath, leftPage, rightPage)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// TwoUpToFile composites two pages side by side and saves the sheet to a file.
func TwoUpToFile(inputPath, outputPath string, leftPage, rightPage int) error {
	buf, err := buildTwoUp(inputPath, leftPage, rightPage)
	if err != nil {
		return err
	}
	return writeFile(outputPath, buf.Bytes())
}

func buildTwoUp(inputPath string, leftPage, rightPage int) (*bytes.Buffer, error) {
	total, err := pageCount(inputPath)
	if err != nil {
		return nil, err
	}
	for _, p := range []int{leftPage, rightPage} {
		if p < 1 || p > total {
			return nil, fmt.Errorf("booklet: page %d out of range [1, %d]", p, total)
		}
	}

	pdf := newSheetPDF()
	imp := gofpdi.NewImporter()
	if err := addTwoUpSheet(pdf, imp, inputPath, leftPage, rightPage, false); err != nil {
		return nil, err
	}
	if pdf.Err() {
		return nil, fmt.Errorf("booklet: two-up %s: %w", inputPath, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("booklet: two-up %s: %w", inputPath, err)
	}
	return &buf, nil
}

// addTwoUpSheet appends one double-width sheet carrying leftPage at the
// origin and rightPage translated by one page width. The source pages are
// not modified.
func addTwoUpSheet(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, src string, leftPage, rightPage int, foldMark bool) error {
	leftTpl, lw, lh := importPage(pdf, imp, src, leftPage)
	rightTpl, rw, rh := importPage(pdf, imp, src, rightPage)

	if lw != rw || lh != rh {
		return fmt.Errorf("booklet: page %d is %.2fx%.2f pt, page %d is %.2fx%.2f pt: %w",
			leftPage, lw, lh, rightPage, rw, rh, ErrSizeMismatch)
	}

	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: lw * 2, Ht: lh})
	imp.UseImportedTemplate(pdf, leftTpl, 0, 0, lw, lh)
	imp.UseImportedTemplate(pdf, rightTpl, lw, 0, rw, rh)

	if foldMark {
		drawFoldMark(pdf, lw, lh)
	}
	return nil
}

// drawFoldMark renders a dashed guide line along the fold of the current sheet.
func drawFoldMark(pdf *gofpdf.Fpdf, foldX, height float64) {
	pdf.SetDrawColor(170, 170, 170)
	pdf.SetLineWidth(0.3)
	pdf.SetDashPattern([]float64{4, 4}, 0)
	pdf.Line(foldX, 0, foldX, height)
	pdf.SetDashPattern([]float64{}, 0)
}
