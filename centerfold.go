package booklet

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// rotatedCenterfold loads the centerfold document and applies the
// alternating fold rotation: +90 degrees on the first page, -90 (written
// as 270) on the second, and so on. Only the /Rotate attribute changes;
// media boxes are left untouched.
func rotatedCenterfold(path string) (*bytes.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("booklet: opening centerfold %s: %w", path, err)
	}

	conf := model.NewDefaultConfiguration()
	ctx, _, _, _, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf, time.Now())
	if err != nil {
		return nil, fmt.Errorf("booklet: reading centerfold %s: %w", path, err)
	}

	odd := types.IntSet{}
	even := types.IntSet{}
	for p := 1; p <= ctx.PageCount; p++ {
		if p%2 == 1 {
			odd[p] = true
		} else {
			even[p] = true
		}
	}

	if len(odd) > 0 {
		if err := pdfcpu.RotatePages(ctx, odd, 90); err != nil {
			return nil, fmt.Errorf("booklet: rotating centerfold %s: %w", path, err)
		}
	}
	if len(even) > 0 {
		if err := pdfcpu.RotatePages(ctx, even, 270); err != nil {
			return nil, fmt.Errorf("booklet: rotating centerfold %s: %w", path, err)
		}
	}

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return nil, fmt.Errorf("booklet: serializing centerfold %s: %w", path, err)
	}
	return &buf, nil
}
