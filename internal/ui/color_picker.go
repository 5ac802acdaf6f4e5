package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/render"
)

// ColorButton shows the current color as a swatch and opens the palette
type ColorButton struct {
	widget.BaseWidget

	hex      string
	swatch   *canvas.Rectangle
	button   *widget.Button
	window   fyne.Window
	title    string
	onChange func(hex string)
}

// NewColorButton creates a swatch button starting at hex
func NewColorButton(window fyne.Window, title, hex string, onChange func(hex string)) *ColorButton {
	cb := &ColorButton{window: window, title: title, onChange: onChange}
	cb.swatch = canvas.NewRectangle(parseOrBlack(hex))
	cb.swatch.SetMinSize(fyne.NewSize(SwatchSize, SwatchSize))
	cb.swatch.CornerRadius = 4
	cb.button = widget.NewButton("", cb.showPalette)
	cb.button.Importance = widget.LowImportance
	cb.hex = hex
	cb.ExtendBaseWidget(cb)
	return cb
}

// SetColor updates the swatch without firing onChange
func (cb *ColorButton) SetColor(hex string) {
	cb.hex = hex
	cb.swatch.FillColor = parseOrBlack(hex)
	cb.swatch.Refresh()
}

// SetTitle sets the palette dialog title
func (cb *ColorButton) SetTitle(title string) {
	cb.title = title
}

// Color returns the current hex color
func (cb *ColorButton) Color() string {
	return cb.hex
}

// CreateRenderer creates the widget renderer
func (cb *ColorButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(cb.swatch, cb.button))
}

func (cb *ColorButton) showPalette() {
	var d dialog.Dialog

	swatches := make([]fyne.CanvasObject, 0, len(render.Palette()))
	for _, hex := range render.Palette() {
		hex := hex
		rect := canvas.NewRectangle(parseOrBlack(hex))
		rect.SetMinSize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
		rect.CornerRadius = 4
		pick := widget.NewButton("", func() {
			cb.SetColor(hex)
			if cb.onChange != nil {
				cb.onChange(hex)
			}
			if d != nil {
				d.Hide()
			}
		})
		pick.Importance = widget.LowImportance
		swatches = append(swatches, container.NewStack(rect, pick))
	}

	d = dialog.NewCustom(cb.title, IconClose, container.NewGridWithColumns(PaletteColumns, swatches...), cb.window)
	d.Show()
}

// parseOrBlack parses hex, logging and falling back to black
func parseOrBlack(hex string) color.Color {
	c, err := render.ParseHex(hex)
	if err != nil {
		log.Printf("Invalid color %q: %v", hex, err)
		return color.Black
	}
	return c
}
