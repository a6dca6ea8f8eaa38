// Package booklet rearranges the pages of a PDF document into booklet
// imposition order.
//
// Pairs of source pages are composited side by side onto double-width
// sheets so that, printed in flip-on-short-edge duplex mode and folded in
// half, the stack reads in the original page order. A 4-page 5.5x8.5in
// document becomes a 2-sheet 8.5x11in booklet.
//
// An optional centerfold document, already composed at sheet size, can be
// spliced in after the body sheets with alternating +90/-90 degree
// rotation so it folds the right way.
//
// Source pages are imported as templates via the gofpdi contrib package;
// document inspection, centerfold rotation, and stream merging use pdfcpu.
package booklet
