package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/classifier"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// TabLocation puts tabs at the bottom on phones, as native apps do
func (m *MobileUI) TabLocation() container.TabLocation {
	if m.IsMobileDevice() {
		return container.TabLocationBottom
	}
	return container.TabLocationTop
}

// GetMobileSpacing returns appropriate spacing for mobile devices
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return 16
	}
	return 8
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CreateOrientationAwareContainer lays preview and form side by side in
// landscape and stacked otherwise
func (m *MobileUI) CreateOrientationAwareContainer(first, second fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && m.IsLandscape() {
		return container.NewGridWithColumns(2, first, second)
	}
	return container.NewVBox(first, second)
}

// KeyboardFor maps a category keyboard hint to the closest virtual keyboard
func KeyboardFor(hint classifier.KeyboardHint) mobile.KeyboardType {
	switch hint {
	case classifier.KeyboardPhone:
		return mobile.NumberKeyboard
	default:
		return mobile.SingleLineKeyboard
	}
}

// CategoryEntry is a single-line entry that raises the keyboard suited to
// the selected category
type CategoryEntry struct {
	widget.Entry
	hint classifier.KeyboardHint
}

// NewCategoryEntry creates an entry for the given keyboard hint
func NewCategoryEntry(hint classifier.KeyboardHint) *CategoryEntry {
	e := &CategoryEntry{hint: hint}
	e.ExtendBaseWidget(e)
	return e
}

// SetHint changes the keyboard used next time the entry gains focus
func (e *CategoryEntry) SetHint(hint classifier.KeyboardHint) {
	e.hint = hint
}

// Keyboard implements mobile.Keyboardable
func (e *CategoryEntry) Keyboard() mobile.KeyboardType {
	return KeyboardFor(e.hint)
}
