// Package overlay implements ports.Composer: it stamps the computed text
// block onto raw rendered images and assembles the fixed output canvas.
package overlay

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/orbitlapse/orbitlapse/internal/domain"
	"github.com/orbitlapse/orbitlapse/internal/ports"
)

// Fixed visual contract: the source image is right-aligned on the canvas at
// this width, the text block is left-aligned at these offsets.
const (
	sourceWidth = 1024
	textX       = 50.0
	textTop     = 50.0
	lineHeight  = 45.0
)

// DefaultFontSize is the point size used when a TTF font is configured.
const DefaultFontSize = 40.0

// Composer renders annotated frames on a fixed-size canvas.
type Composer struct {
	width  int
	height int
	face   font.Face
	logger ports.Logger
}

// NewComposer creates a composer for the given canvas dimensions. fontPath
// may name a TTF file; when empty or unloadable the built-in bitmap face is
// used instead.
func NewComposer(spec domain.VideoSpec, fontPath string, logger ports.Logger) *Composer {
	c := &Composer{
		width:  spec.Width,
		height: spec.Height,
		face:   basicfont.Face7x13,
		logger: logger,
	}
	if fontPath != "" {
		face, err := gg.LoadFontFace(fontPath, DefaultFontSize)
		if err != nil {
			logger.Warn("font unavailable, using built-in face",
				ports.String("path", fontPath),
				ports.Err(err),
			)
		} else {
			c.face = face
		}
	}
	return c
}

// Compose decodes raw, scales it to the fixed source width, pastes it
// right-aligned and vertically centered, stamps the text block and returns
// the annotated frame as PNG bytes.
func (c *Composer) Compose(raw []byte, info domain.FrameInfo) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &domain.CompositionError{Cause: fmt.Errorf("decode raw image: %w", err)}
	}

	scaled := scaleToWidth(src, sourceWidth)

	dc := c.newCanvas()
	x := c.width - scaled.Bounds().Dx()
	y := (c.height - scaled.Bounds().Dy()) / 2
	dc.DrawImage(scaled, x, y)

	c.drawText(dc, info)
	return encodePNG(dc)
}

// Placeholder renders a frame with the text block only, reserving the
// sequence index when no raw image is available.
func (c *Composer) Placeholder(info domain.FrameInfo) ([]byte, error) {
	dc := c.newCanvas()
	c.drawText(dc, info)
	return encodePNG(dc)
}

func (c *Composer) newCanvas() *gg.Context {
	dc := gg.NewContext(c.width, c.height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	return dc
}

func (c *Composer) drawText(dc *gg.Context, info domain.FrameInfo) {
	dc.SetFontFace(c.face)
	dc.SetRGB(1, 1, 1)
	y := textTop + DefaultFontSize
	for _, line := range textLines(info) {
		if line != "" {
			dc.DrawString(line, textX, y)
		}
		y += lineHeight
	}
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, &domain.CompositionError{Cause: fmt.Errorf("encode frame: %w", err)}
	}
	return buf.Bytes(), nil
}

// scaleToWidth resizes src to the target width preserving aspect ratio.
func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	if b.Dx() == width {
		return src
	}
	height := int(float64(width) * float64(b.Dy()) / float64(b.Dx()))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
