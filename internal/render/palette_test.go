package render

import (
	"errors"
	"image/color"
	"testing"
)

func TestPalette(t *testing.T) {
	palette := Palette()
	if len(palette) != 25 {
		t.Fatalf("Expected 25 preset colors, got %d", len(palette))
	}
	if palette[0] != "#000000" || palette[1] != "#FFFFFF" {
		t.Errorf("Palette should start with black and white, got %v", palette[:2])
	}

	for _, hex := range palette {
		if _, err := ParseHex(hex); err != nil {
			t.Errorf("Preset %s does not parse: %v", hex, err)
		}
	}

	palette[0] = "#123456"
	if Palette()[0] != "#000000" {
		t.Error("Palette() should return a copy")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
	}{
		{"#000000", color.NRGBA{A: 255}},
		{"#FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#6366F1", color.NRGBA{R: 0x63, G: 0x66, B: 0xF1, A: 255}},
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{" #00ff00 ", color.NRGBA{G: 255, A: 255}},
	}

	for _, test := range tests {
		c, err := ParseHex(test.input)
		if err != nil {
			t.Errorf("ParseHex(%q): %v", test.input, err)
			continue
		}
		if c != test.expected {
			t.Errorf("ParseHex(%q) = %v, expected %v", test.input, c, test.expected)
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"", "000000", "#GGGGGG", "red"} {
		if _, err := ParseHex(input); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) expected ErrInvalidColor, got %v", input, err)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("#abc")
	if err != nil {
		t.Fatalf("NormalizeHex: %v", err)
	}
	if got != "#AABBCC" {
		t.Errorf("Expected #AABBCC, got %s", got)
	}
}
