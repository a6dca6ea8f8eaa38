package booklet

import (
	"fmt"
	"os"

	gofpdf "github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// A4 in points, used when a page's media box cannot be determined.
const (
	defaultPageWidth  = 595.28
	defaultPageHeight = 841.89
)

// newSheetPDF returns an empty document configured for sheet composition.
// Sheet formats are set per page from the imported page sizes.
func newSheetPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	return pdf
}

// importPage imports a single page from a source file into the target PDF.
// Returns the template ID and page dimensions in points.
func importPage(pdf *gofpdf.Fpdf, imp *gofpdi.Importer, sourceFile string, pageNum int) (tplID int, w, h float64) {
	tplID = imp.ImportPage(pdf, sourceFile, pageNum, "/MediaBox")
	sizes := imp.GetPageSizes()
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	if w == 0 || h == 0 {
		w = defaultPageWidth
		h = defaultPageHeight
	}
	return
}

// pageCount returns the number of pages in a PDF file.
func pageCount(filename string) (int, error) {
	n, err := api.PageCountFile(filename)
	if err != nil {
		return 0, fmt.Errorf("booklet: reading %s: %w", filename, err)
	}
	return n, nil
}

// writeFile writes an assembled document to disk in one pass.
func writeFile(filename string, data []byte) error {
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("booklet: writing %s: %w", filename, err)
	}
	return nil
}
