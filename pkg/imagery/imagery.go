// Package imagery decodes and stores the images carried by recognizer results.
// Results keep the engine's encoded buffers untouched; decoding happens here,
// on request only.
package imagery

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/document-recognizer/pkg/types"
)

// ImageInfo contains basic image metadata
type ImageInfo struct {
	Width       int
	Height      int
	AspectRatio float64
	Area        int
}

// Decode decodes a base64 encoded result image
func Decode(img types.Image) (image.Image, error) {
	if img.Empty() {
		return nil, fmt.Errorf("image is empty")
	}

	data, err := base64.StdEncoding.DecodeString(string(img))
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}

	return decodeImageFromBytes(data)
}

// decodeImageFromBytes decodes an image from byte data with WebP support
func decodeImageFromBytes(data []byte) (image.Image, error) {
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}

	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}

	return nil, fmt.Errorf("image: unknown or unsupported format")
}

// Encode encodes an image the way the engine delivers it (base64)
func Encode(img image.Image, format string, quality int) (types.Image, error) {
	var buf bytes.Buffer

	switch strings.ToLower(format) {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return "", err
		}
	case "webp":
		if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return "", err
		}
	default: // jpg
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return "", err
		}
	}

	return types.Image(base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

// GetImageInfo returns basic information about an image
func GetImageInfo(img image.Image) ImageInfo {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	info := ImageInfo{
		Width:  width,
		Height: height,
		Area:   width * height,
	}

	if height > 0 {
		info.AspectRatio = float64(width) / float64(height)
	}

	return info
}

// Fit shrinks an image so its long side is at most maxDim. 0 keeps the original.
func Fit(img image.Image, maxDim int) image.Image {
	if maxDim <= 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= maxDim && h <= maxDim {
		return img
	}

	if w >= h {
		return imaging.Resize(img, maxDim, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxDim, imaging.Lanczos)
}

// SaveImage saves an image to a file with the specified format and quality
func SaveImage(img image.Image, path, format string, quality int, lossless bool) error {
	switch strings.ToLower(format) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: lossless, Quality: float32(quality)}
		return webp.Encode(f, img, opts)
	case "png":
		return imaging.Save(img, path)
	default: // jpg/jpeg
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	}
}
