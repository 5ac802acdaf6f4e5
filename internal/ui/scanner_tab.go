package ui

import (
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/model"
)

// ScannerTab shows the scanner state and a manual input that feeds the
// same decode path a camera would
type ScannerTab struct {
	ui *RootUI

	statusLabel *widget.Label
	toggleBtn   *widget.Button
	entry       *widget.Entry
	submitBtn   *widget.Button
	lastLabel   *widget.Label
	lastItem    model.HistoryItem
	openLastBtn *widget.Button

	content fyne.CanvasObject
}

// NewScannerTab builds the scanner screen
func NewScannerTab(ui *RootUI) *ScannerTab {
	st := &ScannerTab{ui: ui}
	loc := ui.localization

	st.statusLabel = widget.NewLabel("")
	st.statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	st.statusLabel.Alignment = fyne.TextAlignCenter

	hint := widget.NewLabel(loc.GetText(KeyScanHint))
	hint.Wrapping = fyne.TextWrapWord
	hint.Alignment = fyne.TextAlignCenter

	st.toggleBtn = widget.NewButton("", st.onToggle)

	st.entry = widget.NewEntry()
	st.entry.SetPlaceHolder(loc.GetText(KeyManualEntry))
	st.entry.OnSubmitted = func(string) { st.onSubmit() }

	st.submitBtn = widget.NewButtonWithIcon(loc.GetText(KeySubmitScan), theme.ConfirmIcon(), st.onSubmit)
	st.submitBtn.Importance = widget.HighImportance

	st.lastLabel = widget.NewLabel("")
	st.lastLabel.Truncation = fyne.TextTruncateEllipsis
	st.openLastBtn = widget.NewButtonWithIcon("", theme.VisibilityIcon(), func() {
		if st.lastItem.ID != "" {
			ui.showResult(st.lastItem, true)
		}
	})
	st.openLastBtn.Importance = widget.LowImportance
	st.openLastBtn.Hide()

	st.content = container.NewVBox(
		st.statusLabel,
		hint,
		container.NewCenter(st.toggleBtn),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, nil, st.submitBtn, st.entry),
		container.NewBorder(nil, nil, nil, st.openLastBtn, st.lastLabel),
	)

	st.Refresh()
	return st
}

// Content returns the tab content
func (st *ScannerTab) Content() fyne.CanvasObject {
	return container.NewPadded(st.content)
}

// Refresh syncs the status and toggle with the controller
func (st *ScannerTab) Refresh() {
	loc := st.ui.localization
	if st.ui.scanner.Scanning() {
		st.statusLabel.SetText(loc.GetText(KeyScanningActive))
		st.toggleBtn.SetText(loc.GetText(KeyStopScanning))
		st.toggleBtn.SetIcon(theme.MediaStopIcon())
		st.submitBtn.Enable()
	} else {
		st.statusLabel.SetText(loc.GetText(KeyScanningIdle))
		st.toggleBtn.SetText(loc.GetText(KeyStartScanning))
		st.toggleBtn.SetIcon(theme.MediaPlayIcon())
		st.submitBtn.Disable()
	}
}

// ShowLast displays the most recent scan under the input
func (st *ScannerTab) ShowLast(item model.HistoryItem) {
	st.lastItem = item
	st.lastLabel.SetText(IconScanned + " " + item.GetDisplayPayload(RowPayloadMaxRunes))
	st.openLastBtn.Show()
}

func (st *ScannerTab) onToggle() {
	if st.ui.scanner.Scanning() {
		st.ui.scanner.Stop()
		st.Refresh()
		return
	}
	st.ui.startScanning()
}

func (st *ScannerTab) onSubmit() {
	payload := strings.TrimSpace(st.entry.Text)
	if payload == "" {
		return
	}
	if err := st.ui.source.Submit(payload); err != nil {
		log.Printf("Manual scan rejected: %v", err)
		return
	}
	st.entry.SetText("")
}
