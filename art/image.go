package art

import (
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/disintegration/imaging"

	"github.com/ardnew/lightfetch/confstore"
)

// Resample returns the imaging filter for f. Unknown filters resample with
// nearest neighbor.
func Resample(f confstore.Filter) imaging.ResampleFilter {
	switch f {
	case confstore.FilterGaussian:
		return imaging.Gaussian
	case confstore.FilterTriangle:
		return imaging.Linear
	case confstore.FilterCatmull:
		return imaging.CatmullRom
	case confstore.FilterLanczos:
		return imaging.Lanczos
	default:
		return imaging.NearestNeighbor
	}
}

// HalfBlocks decodes an image from r and draws it with truecolor half
// blocks, size rows high. Each row covers two pixel rows, the upper one in
// the foreground and the lower one in the background, and ends with a reset
// and a newline. A transparent half is left to the terminal background.
// The width is scaled so that each pixel stays square.
func HalfBlocks(r io.Reader, size uint32, filter confstore.Filter) (string, error) {
	src, err := imaging.Decode(r)
	if err != nil {
		return "", err
	}

	return drawHalfBlocks(src, int(size), Resample(filter)), nil
}

func drawHalfBlocks(src image.Image, size int, filter imaging.ResampleFilter) string {
	b := src.Bounds()
	if size <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	width := max(1, 2*b.Dx()*size/b.Dy())
	img := imaging.Resize(src, width, 2*size, filter)

	var sb strings.Builder

	for y := 0; y+1 < img.Bounds().Dy(); y += 2 {
		for x := range img.Bounds().Dx() {
			upper, lower := img.NRGBAAt(x, y), img.NRGBAAt(x, y+1)

			// Every cell sets both layers so no color carries into the next.
			var style ansi.Style

			block := "▀"

			switch {
			case upper.A == 0 && lower.A == 0:
				style, block = style.DefaultBackgroundColor(), " "
			case upper.A == 0:
				style, block = style.ForegroundColor(rgb(lower)).DefaultBackgroundColor(), "▄"
			case lower.A == 0:
				style = style.ForegroundColor(rgb(upper)).DefaultBackgroundColor()
			default:
				style = style.ForegroundColor(rgb(upper)).BackgroundColor(rgb(lower))
			}

			sb.WriteString(style.String())
			sb.WriteString(block)
		}

		sb.WriteString(ansi.ResetStyle)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func rgb(c color.NRGBA) ansi.RGBColor {
	return ansi.RGBColor{R: c.R, G: c.G, B: c.B}
}
