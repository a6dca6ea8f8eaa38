package booklet_test

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	gofpdf "github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/lvillar/booklet"
)

func TestTwoUp(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "sheet.pdf")
	createTestPDF(t, input, 2, 200, 300)

	if err := booklet.TwoUpToFile(input, output, 2, 1); err != nil {
		t.Fatalf("two-up: %v", err)
	}
	assertSheetDims(t, output, uniformSheets(1, 400, 300))
}

// TestTwoUpPlacement ties each source page to its slot on the sheet: the
// left page's template is placed at the origin, the right page's
// translated by one page width.
func TestTwoUpPlacement(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	output := filepath.Join(dir, "sheet.pdf")
	createTestPDF(t, input, 2, 200, 300)

	if err := booklet.TwoUpToFile(input, output, 2, 1); err != nil {
		t.Fatalf("two-up: %v", err)
	}

	placements := sheetPlacements(t, output, 1)
	if len(placements) != 2 {
		t.Fatalf("expected 2 template placements, got %d: %v", len(placements), placements)
	}
	assertPlacedAt(t, placements, "Page 2 of 2", 0)
	assertPlacedAt(t, placements, "Page 1 of 2", 200)
}

func TestTwoUpToWriter(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	createTestPDF(t, input, 2, 200, 300)

	var buf bytes.Buffer
	if err := booklet.TwoUp(&buf, input, 1, 2); err != nil {
		t.Fatalf("two-up: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF-") {
		t.Errorf("output does not look like a PDF")
	}
}

func TestTwoUpSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	createSizedTestPDF(t, input, []gofpdf.SizeType{
		{Wd: 200, Ht: 300},
		{Wd: 200, Ht: 400},
	})

	var buf bytes.Buffer
	err := booklet.TwoUp(&buf, input, 1, 2)
	if !errors.Is(err, booklet.ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on size mismatch, got %d bytes", buf.Len())
	}
}

func TestTwoUpPageOutOfRange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.pdf")
	createTestPDF(t, input, 2, 200, 300)

	var buf bytes.Buffer
	if err := booklet.TwoUp(&buf, input, 1, 3); err == nil {
		t.Error("expected error for page out of range")
	}
	if err := booklet.TwoUp(&buf, input, 0, 1); err == nil {
		t.Error("expected error for page out of range")
	}
}

func TestTwoUpMissingInput(t *testing.T) {
	var buf bytes.Buffer
	if err := booklet.TwoUp(&buf, "nonexistent.pdf", 1, 2); err == nil {
		t.Error("expected error for missing input")
	}
}

// Template placements appear in sheet content as "a b c d e f cm /Name Do";
// e is the x-translation.
var templatePlacementRE = regexp.MustCompile(`([-\d.]+)\s+([-\d.]+)\s+([-\d.]+)\s+([-\d.]+)\s+([-\d.]+)\s+([-\d.]+)\s+cm\s+/(\S+)\s+Do`)

// Each test fixture page carries its own label as a literal text string,
// which survives into the imported template's stream.
var pageLabelRE = regexp.MustCompile(`\((Page \d+ of \d+)\)`)

// sheetPlacements maps the label of each source page placed on the given
// sheet to the x-translation its template was placed with.
func sheetPlacements(t *testing.T, filename string, pageNum int) map[string]float64 {
	t.Helper()

	ctx, err := api.ReadContextFile(filename)
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	pageDict, _, _, err := ctx.PageDict(pageNum, false)
	if err != nil {
		t.Fatalf("page %d: %v", pageNum, err)
	}
	content := decodedStream(t, ctx, pageDict["Contents"])

	resources, err := ctx.DereferenceDict(pageDict["Resources"])
	if err != nil {
		t.Fatalf("page %d resources: %v", pageNum, err)
	}
	xObjects, err := ctx.DereferenceDict(resources["XObject"])
	if err != nil {
		t.Fatalf("page %d XObjects: %v", pageNum, err)
	}

	labels := make(map[string]string)
	for name, obj := range xObjects {
		if m := pageLabelRE.FindStringSubmatch(decodedStream(t, ctx, obj)); m != nil {
			labels[name] = m[1]
		}
	}

	placements := make(map[string]float64)
	for _, m := range templatePlacementRE.FindAllStringSubmatch(content, -1) {
		label, ok := labels[m[7]]
		if !ok {
			continue
		}
		tx, err := strconv.ParseFloat(m[5], 64)
		if err != nil {
			t.Fatalf("parsing x-translation %q: %v", m[5], err)
		}
		placements[label] = tx
	}
	return placements
}

func assertPlacedAt(t *testing.T, placements map[string]float64, label string, wantX float64) {
	t.Helper()
	tx, ok := placements[label]
	if !ok {
		t.Fatalf("no placement found for %q: %v", label, placements)
	}
	if math.Abs(tx-wantX) > 0.5 {
		t.Errorf("%q placed at x=%.2f pt, want %.2f", label, tx, wantX)
	}
}

// decodedStream dereferences a stream object and returns its decoded content.
func decodedStream(t *testing.T, ctx *model.Context, obj types.Object) string {
	t.Helper()

	var ref types.IndirectRef
	switch v := obj.(type) {
	case types.IndirectRef:
		ref = v
	case *types.IndirectRef:
		ref = *v
	default:
		t.Fatalf("expected stream reference, got %T", obj)
	}

	sd, _, err := ctx.DereferenceStreamDict(ref)
	if err != nil {
		t.Fatalf("dereferencing stream: %v", err)
	}
	if sd == nil {
		t.Fatal("missing stream")
	}
	if err := sd.Decode(); err != nil {
		t.Fatalf("decoding stream: %v", err)
	}
	return string(sd.Content)
}
