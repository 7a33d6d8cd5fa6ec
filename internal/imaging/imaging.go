// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imaging shrinks photos before they are uploaded and converts them
// to and from data URLs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	"image/jpeg"
	_ "image/png" // register decoder
	"math"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// TimelineMaxWidth and TimelineQuality are applied to photo timeline
	// uploads.
	TimelineMaxWidth = 1200
	TimelineQuality  = 0.8

	// ThumbnailMaxWidth and ThumbnailQuality are used for previews.
	ThumbnailMaxWidth = 192
	ThumbnailQuality  = 0.7

	// ContentTypeJPEG is the type every compressed image is encoded as.
	ContentTypeJPEG = "image/jpeg"

	// MaxPixels caps width*height of an image accepted for decoding.
	MaxPixels = 40_000_000
)

var (
	ErrEmptyImage     = errors.New("empty image")
	ErrDecodingImage  = errors.New("error decoding image")
	ErrEncodingImage  = errors.New("error encoding image")
	ErrInvalidDataURL = errors.New("invalid data URL")
	ErrImageTooLarge  = errors.New("image too large")
)

// Compress decodes a JPEG, PNG or GIF image, scales it down to maxWidth
// keeping the aspect ratio and re-encodes it as JPEG with the given quality
// in the (0, 1] range. Images narrower than maxWidth keep their size.
// Images over MaxPixels are rejected with ErrImageTooLarge before decoding.
func Compress(data []byte, maxWidth int, quality float64) ([]byte, error) {
	if err := CheckSize(data); err != nil {
		return nil, err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingImage, err)
	}

	dst := resize(src, maxWidth)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality(quality)}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingImage, err)
	}

	return buf.Bytes(), nil
}

// CheckSize reads only the image header and fails with ErrImageTooLarge when
// the declared dimensions exceed MaxPixels.
func CheckSize(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingImage, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	return nil
}

func resize(src image.Image, maxWidth int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxWidth <= 0 || width <= maxWidth {
		return src
	}

	newHeight := int(math.Round(float64(height) * float64(maxWidth) / float64(width)))
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

func jpegQuality(quality float64) int {
	q := int(math.Round(quality * 100))
	switch {
	case q < 1:
		return jpeg.DefaultQuality
	case q > 100:
		return 100
	}
	return q
}

// ParseDataURL decodes a base64 data URL into its content type and bytes.
func ParseDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(dataURL), "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURL)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}
	if len(data) == 0 {
		return "", nil, ErrEmptyImage
	}

	return contentType, data, nil
}

// DataURL encodes data as a base64 data URL.
func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// CompressDataURL parses a data URL, compresses the image and returns it as a
// JPEG data URL.
func CompressDataURL(dataURL string, maxWidth int, quality float64) (string, error) {
	_, data, err := ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}

	compressed, err := Compress(data, maxWidth, quality)
	if err != nil {
		return "", err
	}

	return DataURL(ContentTypeJPEG, compressed), nil
}
