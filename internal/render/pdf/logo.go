package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"codeberg.org/go-pdf/fpdf"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gompdf/leasedoc/internal/pagination"

	// Decoders for logo formats fpdf cannot embed directly.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
)

// ErrLogoFormat is returned for logo data that is neither a known raster
// format nor SVG.
var ErrLogoFormat = errors.New("pdf: unsupported logo format")

const (
	logoName = "letterhead-logo"
	// LogoMaxHeight caps the drawn logo height in mm.
	LogoMaxHeight = 12.0
	// svgRasterWidth is the pixel width SVG logos are rasterized at.
	svgRasterWidth = 600
)

// Logo is a letterhead image ready to embed.
type Logo struct {
	data      []byte
	imageType string
	width     int
	height    int
}

// Size returns the logo dimensions in pixels.
func (l *Logo) Size() (int, int) {
	return l.width, l.height
}

// Type returns the fpdf image type the logo is embedded as.
func (l *Logo) Type() string {
	return l.imageType
}

// DecodeLogo prepares raw image bytes for embedding. JPEG, PNG and GIF are
// embedded as-is; BMP, TIFF and WebP are re-encoded as PNG and SVG is
// rasterized.
func DecodeLogo(data []byte) (*Logo, error) {
	if len(data) == 0 {
		return nil, ErrLogoFormat
	}
	if isSVG(data) {
		return rasterizeSVG(data)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoFormat, err)
	}
	switch format {
	case "jpeg", "png", "gif":
		typ := format
		if typ == "jpeg" {
			typ = "jpg"
		}
		return &Logo{data: data, imageType: typ, width: cfg.Width, height: cfg.Height}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pdf: decode %s logo: %w", format, err)
	}
	return encodePNG(img)
}

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

func rasterizeSVG(data []byte) (*Logo, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("pdf: parse svg logo: %w", err)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: svg has no view box", ErrLogoFormat)
	}

	w := svgRasterWidth
	h := int(math.Ceil(float64(w) * icon.ViewBox.H / icon.ViewBox.W))
	if h < 1 {
		h = 1
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return encodePNG(img)
}

func encodePNG(img image.Image) (*Logo, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("pdf: encode logo: %w", err)
	}
	b := img.Bounds()
	return &Logo{data: buf.Bytes(), imageType: "png", width: b.Dx(), height: b.Dy()}, nil
}

// drawLogo places the logo at the top right corner of the current page,
// inside the top margin.
func drawLogo(pdf *fpdf.Fpdf, logo *Logo, pageWidth float64, margins pagination.Margins) {
	opts := fpdf.ImageOptions{ImageType: logo.imageType}
	pdf.RegisterImageOptionsReader(logoName, opts, bytes.NewReader(logo.data))
	if pdf.Err() {
		return
	}

	h := LogoMaxHeight
	if room := margins.Top - 4; room < h {
		h = room
	}
	if h <= 0 || logo.height == 0 {
		return
	}
	w := h * float64(logo.width) / float64(logo.height)
	x := pageWidth - margins.Right - w
	y := (margins.Top - h) / 2
	pdf.ImageOptions(logoName, x, y, w, h, false, opts, 0, "")
}
