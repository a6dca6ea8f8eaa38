package booklet

import "errors"

// Sentinel errors for imposition precondition failures.
var (
	// ErrOddPageCount is returned when the input document has an odd
	// number of pages. Imposition consumes pages in pairs.
	ErrOddPageCount = errors.New("booklet: input must have an even number of pages")

	// ErrSizeMismatch is returned when the two pages of a sheet differ
	// in media box dimensions.
	ErrSizeMismatch = errors.New("booklet: pages must be the same size")
)
