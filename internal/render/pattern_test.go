package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/qrmaster/qr-master/internal/model"
)

func TestPattern_Deterministic(t *testing.T) {
	a := Pattern("https://example.com")
	b := Pattern("https://example.com")
	if a != b {
		t.Error("Pattern should be deterministic")
	}
}

func TestPattern_DependsOnValue(t *testing.T) {
	if Pattern("a") == Pattern("b") {
		t.Error("Different values should give different patterns")
	}
}

func TestValueHash_SumsUTF16Units(t *testing.T) {
	tests := []struct {
		value    string
		expected int
	}{
		{"", 0},
		{"A", 65},
		{"hi", 104 + 105},
		{"é", 0xE9},
		// U+1F600 encodes as the surrogate pair D83D DE00
		{"😀", 0xD83D + 0xDE00},
	}

	for _, test := range tests {
		if result := valueHash(test.value); result != test.expected {
			t.Errorf("valueHash(%q) = %d, expected %d", test.value, result, test.expected)
		}
	}
}

func TestPattern_AstralMatchesSameUnitSum(t *testing.T) {
	// 0xFFFF + 0xB63E equals the surrogate sum of U+1F600
	if Pattern("😀") != Pattern("\uffff\ub63e") {
		t.Error("Patterns with equal UTF-16 sums should match")
	}
}

func TestPattern_FinderSquares(t *testing.T) {
	m := Pattern("anything")
	far := GridCells - FinderCells

	corners := []struct{ row, col int }{{0, 0}, {0, far}, {far, 0}}
	for _, c := range corners {
		// outer ring
		for k := 0; k < FinderCells; k++ {
			if !m[c.row][c.col+k] || !m[c.row+FinderCells-1][c.col+k] {
				t.Errorf("Finder at (%d,%d): horizontal ring missing at %d", c.row, c.col, k)
			}
			if !m[c.row+k][c.col] || !m[c.row+k][c.col+FinderCells-1] {
				t.Errorf("Finder at (%d,%d): vertical ring missing at %d", c.row, c.col, k)
			}
		}
		// gap between ring and core
		if m[c.row+1][c.col+1] {
			t.Errorf("Finder at (%d,%d): gap cell should be empty", c.row, c.col)
		}
		// core
		if !m[c.row+3][c.col+3] {
			t.Errorf("Finder at (%d,%d): core should be filled", c.row, c.col)
		}
	}
}

func TestPattern_DataCells(t *testing.T) {
	// "A" sums to 65
	m := Pattern("A")
	for i := 0; i < GridCells; i++ {
		for j := 0; j < GridCells; j++ {
			if inFinder(i, j) {
				continue
			}
			expected := ((65+i*GridCells+j)*9973)%3 != 0
			if m[i][j] != expected {
				t.Fatalf("Cell (%d,%d) = %v, expected %v", i, j, m[i][j], expected)
			}
		}
	}
}

func TestPixels(t *testing.T) {
	tests := []struct {
		size     model.RenderSize
		expected int
	}{
		{model.SizeSmall, 150},
		{model.SizeMedium, 200},
		{model.SizeLarge, 250},
		{model.RenderSize(""), 200},
	}

	for _, test := range tests {
		if result := Pixels(test.size); result != test.expected {
			t.Errorf("Pixels(%q) = %d, expected %d", test.size, result, test.expected)
		}
	}
}

func TestImage_Colors(t *testing.T) {
	fg := color.NRGBA{R: 255, A: 255}
	bg := color.NRGBA{B: 255, A: 255}
	img := Image("value", 250, fg, bg)

	if img.Bounds().Dx() != 250 || img.Bounds().Dy() != 250 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}

	// top-left corner belongs to a finder ring
	r, _, _, _ := img.At(0, 0).RGBA()
	if r == 0 {
		t.Error("Expected foreground color at the finder corner")
	}
	// cell (1,1) is the finder gap, 10px per cell at 250px
	_, _, b, _ := img.At(15, 15).RGBA()
	if b == 0 {
		t.Error("Expected background color in the finder gap")
	}
}

func TestImage_MinimumSize(t *testing.T) {
	img := Image("tiny", 3, color.Black, color.White)
	if img.Bounds().Dx() != GridCells {
		t.Errorf("Expected size to be raised to %d, got %d", GridCells, img.Bounds().Dx())
	}
}

func TestStyledImage_FallsBackOnBadColors(t *testing.T) {
	img := StyledImage("x", model.Style{Foreground: "nope", Background: "#12", Size: model.SizeSmall})
	if img.Bounds().Dx() != SmallPixels {
		t.Errorf("Expected %d px, got %d", SmallPixels, img.Bounds().Dx())
	}

	// finder corner falls back to black
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black foreground fallback, got %d,%d,%d", r, g, b)
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, Image("png", 50, color.Black, color.White)); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 50 {
		t.Errorf("Expected width 50, got %d", decoded.Bounds().Dx())
	}
}
