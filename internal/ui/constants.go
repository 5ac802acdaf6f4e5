package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconClose     = "×"
	IconScanned   = "📷"
	IconGenerated = "🔳"
	IconCopy      = "📋"
	IconLink      = "🔗"
	IconDelete    = "🗑️"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (HistoryRow / lists)
const (
	KindIconWidth     float32 = 32
	TimestampWidth    float32 = 120
	RowMinWidth       float32 = 300
	RowMinHeight      float32 = 56
	PreviewMinSize    float32 = 200
	SwatchSize        float32 = 36
	PaletteColumns            = 5
	ResultDialogWidth float32 = 360

	// Touch target minimum size (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Display limits
const (
	RowPayloadMaxRunes    = 48
	ResultPayloadMaxRunes = 512
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 96
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)
