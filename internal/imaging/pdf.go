package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

var errNoPages = errors.New("pdf has no pages")

// RasterizePDF renders the first page of a PDF document.
func RasterizePDF(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrDecode, errNoPages)
	}

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("%w: render page: %v", ErrDecode, err)
	}
	return img, nil
}

// CanOpenPDF reports whether data opens as a PDF with at least one page, without rendering it.
func CanOpenPDF(data []byte) bool {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return false
	}
	defer doc.Close()
	return doc.NumPage() > 0
}
