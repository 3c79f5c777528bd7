package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	xdraw "golang.org/x/image/draw"
)

const (
	maxImageDimension = 1200
	jpegQuality       = 80
)

// CompressImage downscales an image so its longest side is at most
// maxDimension and re-encodes it as JPEG.
func CompressImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image (format %q): %w", format, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > maxDimension {
		newWidth = maxDimension
		newHeight = height * maxDimension / width
	} else if height > width && height > maxDimension {
		newHeight = maxDimension
		newWidth = width * maxDimension / height
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
