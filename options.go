package booklet

// Option is a functional option for Assemble and AssembleToFile.
type Option func(*assembleConfig)

type assembleConfig struct {
	centerfoldPath string
	foldMarks      bool
}

// WithCenterfold splices the pages of the PDF at path into the booklet
// after the body sheets, with alternating +90/-90 degree rotation. The
// centerfold must already be composed at sheet size, i.e. twice the width
// of the input pages.
func WithCenterfold(path string) Option {
	return func(c *assembleConfig) { c.centerfoldPath = path }
}

// WithFoldMarks draws a light dashed guide line along the fold of each
// body sheet. Centerfold pages are never marked.
func WithFoldMarks() Option {
	return func(c *assembleConfig) { c.foldMarks = true }
}
