package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"unicode/utf16"

	"github.com/qrmaster/qr-master/internal/model"
)

// Grid geometry
const (
	GridCells   = 25
	FinderCells = 7
)

// Pixel sizes per render size
const (
	SmallPixels  = 150
	MediumPixels = 200
	LargePixels  = 250
)

// Matrix holds filled cells, indexed [row][column]
type Matrix [GridCells][GridCells]bool

// Pattern computes the cell matrix for value. The same value always gives
// the same matrix.
func Pattern(value string) Matrix {
	hash := valueHash(value)

	var m Matrix
	for i := 0; i < GridCells; i++ {
		for j := 0; j < GridCells; j++ {
			if inFinder(i, j) {
				m[i][j] = finderCell(i%(GridCells-FinderCells), j%(GridCells-FinderCells))
				continue
			}
			m[i][j] = ((hash+i*GridCells+j)*9973)%3 != 0
		}
	}
	return m
}

// valueHash sums the UTF-16 code units of value
func valueHash(value string) int {
	hash := 0
	for _, unit := range utf16.Encode([]rune(value)) {
		hash += int(unit)
	}
	return hash
}

// inFinder reports whether the cell belongs to one of the three corner squares
func inFinder(i, j int) bool {
	far := GridCells - FinderCells
	return (i < FinderCells && j < FinderCells) ||
		(i < FinderCells && j >= far) ||
		(i >= far && j < FinderCells)
}

// finderCell draws the ring and the 3x3 core of a finder square, with i and
// j relative to the square's corner
func finderCell(i, j int) bool {
	edge := FinderCells - 1
	if i == 0 || i == edge || j == 0 || j == edge {
		return true
	}
	return i >= 2 && i <= 4 && j >= 2 && j <= 4
}

// Pixels returns the edge length in pixels for a render size
func Pixels(size model.RenderSize) int {
	switch size {
	case model.SizeSmall:
		return SmallPixels
	case model.SizeLarge:
		return LargePixels
	default:
		return MediumPixels
	}
}

// Image rasterizes the pattern for value into a px by px image
func Image(value string, px int, fg, bg color.Color) *image.RGBA {
	if px < GridCells {
		px = GridCells
	}
	img := image.NewRGBA(image.Rect(0, 0, px, px))
	m := Pattern(value)

	for y := 0; y < px; y++ {
		row := y * GridCells / px
		for x := 0; x < px; x++ {
			col := x * GridCells / px
			if m[row][col] {
				img.Set(x, y, fg)
			} else {
				img.Set(x, y, bg)
			}
		}
	}
	return img
}

// StyledImage renders value with a generated item's style, falling back to
// the default style for unparsable colors
func StyledImage(value string, style model.Style) *image.RGBA {
	defaults := model.DefaultStyle()
	fg, err := ParseHex(style.Foreground)
	if err != nil {
		fg, _ = ParseHex(defaults.Foreground)
	}
	bg, err := ParseHex(style.Background)
	if err != nil {
		bg, _ = ParseHex(defaults.Background)
	}
	return Image(value, Pixels(style.Size), fg, bg)
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
