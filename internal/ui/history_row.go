package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/model"
)

// HistoryRow renders one history entry: kind icon, category, payload,
// timestamp and a delete button. Tapping opens the entry; swiping left on
// a touch screen deletes it.
type HistoryRow struct {
	widget.BaseWidget

	item         model.HistoryItem
	localization *Localization

	// UI components
	kindLabel     *widget.Label
	categoryLabel *widget.Label
	payloadLabel  *widget.Label
	timeLabel     *widget.Label
	deleteBtn     *widget.Button

	gestures *GestureHandler

	// Callbacks
	onOpen   func(id string)
	onDelete func(id string)
}

// NewHistoryRow creates a new history row widget
func NewHistoryRow(localization *Localization) *HistoryRow {
	hr := &HistoryRow{localization: localization}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	hr.gestures = NewGestureHandler(hr.onGesture)
	return hr
}

// SetCallbacks sets the action callbacks
func (hr *HistoryRow) SetCallbacks(onOpen func(id string), onDelete func(id string)) {
	hr.onOpen = onOpen
	hr.onDelete = onDelete
}

// UpdateItem updates the row with new item data
func (hr *HistoryRow) UpdateItem(item model.HistoryItem) {
	hr.item = item
	hr.updateFromItem()
	hr.Refresh()
}

// Item returns the displayed entry
func (hr *HistoryRow) Item() model.HistoryItem {
	return hr.item
}

func (hr *HistoryRow) createUI() {
	hr.kindLabel = widget.NewLabel("")
	hr.kindLabel.Alignment = fyne.TextAlignCenter

	hr.categoryLabel = widget.NewLabel("")
	hr.categoryLabel.TextStyle = fyne.TextStyle{Bold: true}

	hr.payloadLabel = widget.NewLabel("")
	hr.payloadLabel.Truncation = fyne.TextTruncateEllipsis

	hr.timeLabel = widget.NewLabel("")
	hr.timeLabel.Alignment = fyne.TextAlignTrailing
	hr.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	hr.deleteBtn = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		hr.requestDelete()
	})
	hr.deleteBtn.Importance = widget.LowImportance
}

// updateFromItem copies the current item into the labels
func (hr *HistoryRow) updateFromItem() {
	item := hr.item

	if item.IsGenerated() {
		hr.kindLabel.SetText(IconGenerated)
	} else {
		hr.kindLabel.SetText(IconScanned)
	}

	category := hr.localization.CategoryLabel(item.Category, item.GetDisplayCategory())
	kind := hr.localization.GetText(KeyKindScanned)
	if item.IsGenerated() {
		kind = hr.localization.GetText(KeyKindGenerated)
	}
	hr.categoryLabel.SetText(category + MiddleDotSeparator + kind)
	hr.payloadLabel.SetText(item.GetDisplayPayload(RowPayloadMaxRunes))
	hr.timeLabel.SetText(item.GetTimestampString())
}

func (hr *HistoryRow) requestDelete() {
	if hr.item.ID == "" {
		return
	}
	if hr.onDelete != nil {
		hr.onDelete(hr.item.ID)
	} else {
		log.Printf("onDelete callback is nil for history item %s", hr.item.ID)
	}
}

func (hr *HistoryRow) requestOpen() {
	if hr.item.ID == "" {
		return
	}
	if hr.onOpen != nil {
		hr.onOpen(hr.item.ID)
	}
}

func (hr *HistoryRow) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		log.Printf("Swipe-left delete on history item %s", hr.item.ID)
		hr.requestDelete()
	case GestureTap:
		hr.requestOpen()
	}
}

// Tapped implements fyne.Tappable for mouse and desktop input
func (hr *HistoryRow) Tapped(*fyne.PointEvent) {
	if fyne.CurrentDevice().IsMobile() {
		// touch input is handled by the gesture handler
		return
	}
	hr.requestOpen()
}

// TouchDown implements mobile.Touchable
func (hr *HistoryRow) TouchDown(event *mobile.TouchEvent) {
	hr.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (hr *HistoryRow) TouchUp(event *mobile.TouchEvent) {
	hr.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (hr *HistoryRow) TouchCancel(event *mobile.TouchEvent) {
	hr.gestures.TouchCancel(event)
}

// CreateRenderer creates the widget renderer
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	return &historyRowRenderer{row: hr}
}

// historyRowRenderer renders the history row widget
type historyRowRenderer struct {
	row    *HistoryRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *historyRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *historyRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		return fyne.NewSize(RowMinWidth, RowMinHeight)
	}
	return r.layout.MinSize().Max(fyne.NewSize(RowMinWidth, RowMinHeight))
}

// Refresh refreshes the renderer
func (r *historyRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *historyRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *historyRowRenderer) Destroy() {}

func (r *historyRowRenderer) createLayout() {
	hr := r.row

	// Fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	text := container.NewVBox(hr.categoryLabel, hr.payloadLabel)
	right := container.NewHBox(fixedWidth(TimestampWidth, hr.timeLabel), hr.deleteBtn)
	main := container.NewBorder(nil, nil, fixedWidth(KindIconWidth, hr.kindLabel), right, text)

	r.layout = container.NewVBox(main, widget.NewSeparator())
}
