package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	_ "image/png"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Normalizer rewrites oversized images in place so that their larger
// dimension does not exceed maxDimension. Images already within bounds are
// left untouched byte-for-byte.
type Normalizer struct {
	maxDimension int
	jpegQuality  int
	logger       *zap.Logger
}

// NewNormalizer constructs a normalizer with the given dimension bound and
// JPEG re-encode quality.
func NewNormalizer(maxDimension, jpegQuality int, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		maxDimension: maxDimension,
		jpegQuality:  jpegQuality,
		logger:       logger.Named("normalizer"),
	}
}

// Normalize bounds the image at path. A file that cannot be decoded is a
// normal failure outcome reported through the returned error; the file on
// disk is never modified in that case.
func (n *Normalizer) Normalize(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image %s: %w", path, err)
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode image %s: %w", path, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	larger := width
	if height > larger {
		larger = height
	}
	if larger <= n.maxDimension {
		return nil
	}

	// The larger side lands exactly on the bound; the other side is
	// rounded, keeping the aspect ratio within one pixel.
	scale := float64(n.maxDimension) / float64(larger)
	var dstW, dstH int
	if width >= height {
		dstW = n.maxDimension
		dstH = int(float64(height)*scale + 0.5)
	} else {
		dstH = n.maxDimension
		dstW = int(float64(width)*scale + 0.5)
	}
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	// Catmull-Rom keeps enough detail for the downstream face detector;
	// nearest-neighbor visibly degrades detection on small faces.
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: n.jpegQuality}); err != nil {
		return fmt.Errorf("encode image %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write image %s: %w", path, err)
	}

	n.logger.Debug("image downscaled",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("src_width", width),
		zap.Int("src_height", height),
		zap.Int("dst_width", dstW),
		zap.Int("dst_height", dstH),
	)
	return nil
}
