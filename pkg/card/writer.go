// writer.go — Persist the composed card. Adapted from the single-pass
// PNG pipeline: ensure the output directory, downscale from supersample
// resolution with Lanczos, encode, return the path. Last write wins.
package card

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Writer persists finished cards under a fixed output directory.
type Writer struct {
	Dir    string
	Width  int
	Height int
}

// NewWriter creates a writer targeting the standard card resolution.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, Width: TargetWidth, Height: TargetHeight}
}

// Save downsamples img to the target resolution if needed and writes it
// to <Dir>/<jobID>.png, overwriting any existing file. The job id is an
// opaque filename stem. Returns the written path.
func (w *Writer) Save(img image.Image, jobID string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %s: %w", w.Dir, err)
	}

	b := img.Bounds()
	if b.Dx() != w.Width || b.Dy() != w.Height {
		img = imaging.Resize(img, w.Width, w.Height, imaging.Lanczos)
	}

	path := filepath.Join(w.Dir, jobID+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode PNG: %w", err)
	}
	return path, nil
}
