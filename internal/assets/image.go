package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/webp"
)

// Background is a decoded, embeddable page background. Format matches what
// the PDF writer expects for image registration.
type Background struct {
	Name   string // registration name inside the document
	Bytes  []byte
	Format string // "PNG", "JPG" or "GIF"
	Width  int    // px
	Height int    // px
}

// SniffFormat identifies the raster container from magic bytes.
func SniffFormat(b []byte) string {
	switch {
	case len(b) > 8 && bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case len(b) > 2 && b[0] == 0xff && b[1] == 0xd8:
		return "JPG"
	case bytes.HasPrefix(b, []byte("GIF8")):
		return "GIF"
	case len(b) > 12 && bytes.HasPrefix(b, []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return "WEBP"
	}
	return ""
}

// PrepareImage validates raw bytes for embedding. Lossless first: PNG/GIF pass
// through after a decode check, WebP is re-encoded to PNG (the writer cannot
// embed WebP directly). If the lossless path fails, the lossy fallback
// re-encodes whatever still decodes as JPEG.
func PrepareImage(name string, raw []byte) (*Background, error) {
	format := SniffFormat(raw)
	switch format {
	case "PNG":
		if cfg, err := png.DecodeConfig(bytes.NewReader(raw)); err == nil {
			return &Background{Name: name, Bytes: raw, Format: "PNG", Width: cfg.Width, Height: cfg.Height}, nil
		}
	case "JPG":
		if cfg, err := jpeg.DecodeConfig(bytes.NewReader(raw)); err == nil {
			return &Background{Name: name, Bytes: raw, Format: "JPG", Width: cfg.Width, Height: cfg.Height}, nil
		}
	case "GIF":
		if cfg, err := gif.DecodeConfig(bytes.NewReader(raw)); err == nil {
			return &Background{Name: name, Bytes: raw, Format: "GIF", Width: cfg.Width, Height: cfg.Height}, nil
		}
	case "WEBP":
		if img, err := webp.Decode(bytes.NewReader(raw)); err == nil {
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err == nil {
				b := img.Bounds()
				return &Background{Name: name, Bytes: buf.Bytes(), Format: "PNG", Width: b.Dx(), Height: b.Dy()}, nil
			}
		}
	}
	return lossyFallback(name, raw)
}

// lossyFallback re-encodes anything image.Decode still understands as JPEG.
func lossyFallback(name string, raw []byte) (*Background, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("asset %s: undecodable: %w", name, err)
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("asset %s: jpeg fallback: %w", name, err)
	}
	b := img.Bounds()
	return &Background{Name: name, Bytes: buf.Bytes(), Format: "JPG", Width: b.Dx(), Height: b.Dy()}, nil
}
