package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func decodeJPEGBase64(t *testing.T, s string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("output is not a JPEG: %v", err)
	}
	return img
}

func TestNormalizeProducesRGB(t *testing.T) {
	rect := image.Rect(0, 0, 8, 6)

	paletted := image.NewPaletted(rect, color.Palette{color.White, color.Black, color.RGBA{R: 200, A: 255}})
	for x := 0; x < 8; x++ {
		paletted.SetColorIndex(x, 3, 2)
	}

	rgba := image.NewNRGBA(rect)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			rgba.SetNRGBA(x, y, color.NRGBA{R: 10, G: 120, B: 240, A: uint8(x * 30)})
		}
	}

	gray := image.NewGray(rect)
	for x := 0; x < 8; x++ {
		gray.SetGray(x, 2, color.Gray{Y: 128})
	}

	tests := []struct {
		name string
		img  image.Image
	}{
		{"paletted", paletted},
		{"rgba", rgba},
		{"gray", gray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(encodePNG(t, tt.img), PNG)
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			img := decodeJPEGBase64(t, out)
			ycc, ok := img.(*image.YCbCr)
			if !ok {
				t.Fatalf("decoded type = %T, want *image.YCbCr", img)
			}
			if ycc.Bounds() != rect {
				t.Errorf("bounds = %v, want %v", ycc.Bounds(), rect)
			}
		})
	}
}

func TestNormalizeDropsAlphaWithoutCompositing(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 250, B: 250, A: 0})
		}
	}

	out, err := Normalize(encodePNG(t, img), PNG)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	r, g, b, _ := decodeJPEGBase64(t, out).At(8, 8).RGBA()
	if r>>8 < 200 || g>>8 < 200 || b>>8 < 200 {
		t.Errorf("transparent pixel became (%d,%d,%d), want near white", r>>8, g>>8, b>>8)
	}
}

func TestNormalizeLeavesInputUntouched(t *testing.T) {
	data := encodePNG(t, image.NewGray(image.Rect(0, 0, 4, 4)))
	orig := append([]byte(nil), data...)

	if _, err := Normalize(data, PNG); err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if !bytes.Equal(data, orig) {
		t.Error("input bytes were modified")
	}
}

func TestNormalizeJPEGInput(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 5, 5)), nil); err != nil {
		t.Fatal(err)
	}
	out, err := Normalize(buf.Bytes(), JPG)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if _, ok := decodeJPEGBase64(t, out).(*image.YCbCr); !ok {
		t.Error("JPEG round trip did not stay YCbCr")
	}
}

func TestNormalizeCorruptInput(t *testing.T) {
	for _, format := range []string{PNG, PDF} {
		t.Run(format, func(t *testing.T) {
			_, err := Normalize([]byte{0x00, 0x13, 0x37, 0xff, 0x00, 0x42}, format)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("error = %v, want ErrDecode", err)
			}
		})
	}
}

func TestCanPreview(t *testing.T) {
	if !CanPreview(encodePNG(t, image.NewGray(image.Rect(0, 0, 2, 2))), PNG) {
		t.Error("CanPreview(valid png) = false")
	}
	if CanPreview([]byte{0x89, 'P', 'N', 'G'}, PNG) {
		t.Error("CanPreview(truncated png) = true")
	}
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"eq.png", PNG, false},
		{"EQ.JPG", JPG, false},
		{"scan.jpeg", JPEG, false},
		{"page.pdf", PDF, false},
		{"eq.gif", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatFromFilename(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("format = %q, want %q", got, tt.want)
			}
		})
	}
}
