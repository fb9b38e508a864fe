// Package qr renders short links as QR code images.
package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	// ContentType is the media type of rendered images.
	ContentType = "image/png"

	// DefaultSize is the edge length in pixels of rendered images.
	DefaultSize = 200
)

// Renderer encodes content as a QR code image.
type Renderer interface {
	Render(content string) ([]byte, error)
}

// PNGRenderer renders square PNG images with medium error correction.
type PNGRenderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewPNGRenderer creates a renderer producing size x size images.
func NewPNGRenderer(size int) *PNGRenderer {
	return &PNGRenderer{
		size:  size,
		level: qrcode.Medium,
	}
}

func (r *PNGRenderer) Render(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, r.level, r.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}

	return png, nil
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(content string) ([]byte, error)

func (f RenderFunc) Render(content string) ([]byte, error) {
	return f(content)
}
