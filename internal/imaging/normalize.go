// Package imaging turns uploaded files into the base64 JPEG payload sent to the model.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"
)

const (
	PNG  = "png"
	JPEG = "jpeg"
	JPG  = "jpg"
	PDF  = "pdf"
)

var (
	ErrDecode            = errors.New("image decode failed")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// FormatFromFilename maps an upload name to one of the accepted formats.
func FormatFromFilename(name string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case PNG, JPEG, JPG, PDF:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Decode reads an image of the given format. PDF input yields its first page.
func Decode(data []byte, format string) (image.Image, error) {
	if format == PDF {
		return RasterizePDF(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// CanPreview reports whether data decodes as an image of the given format.
// A PDF only has to open; its page is rendered once, by Decode.
func CanPreview(data []byte, format string) bool {
	if format == PDF {
		return CanOpenPDF(data)
	}
	_, _, err := image.DecodeConfig(bytes.NewReader(data))
	return err == nil
}

// ToJPEG decodes data, converts it to RGB and re-encodes it as JPEG with the encoder's default quality.
// data is never modified.
func ToJPEG(data []byte, format string) ([]byte, error) {
	img, err := Decode(data, format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, ToRGB(img), nil); err != nil {
		return nil, fmt.Errorf("jpeg encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Normalize returns the base64 encoding of the RGB JPEG rendition of data.
func Normalize(data []byte, format string) (string, error) {
	jpg, err := ToJPEG(data, format)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jpg), nil
}

// ToRGB returns img in a three-channel form. Alpha is dropped, not composited,
// so transparent pixels keep their underlying color.
func ToRGB(img image.Image) image.Image {
	if ycc, ok := img.(*image.YCbCr); ok {
		return ycc
	}

	b := img.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return dst
}
