package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/classifier"
	"github.com/qrmaster/qr-master/internal/model"
	"github.com/qrmaster/qr-master/internal/platform"
	"github.com/qrmaster/qr-master/internal/render"
)

// showResult opens the result dialog for a scanned or stored entry.
// fromScan adds the "scan again" action.
func (ui *RootUI) showResult(item model.HistoryItem, fromScan bool) {
	loc := ui.localization

	style := model.DefaultStyle()
	if item.Style != nil {
		style = *item.Style
	}
	preview := canvas.NewImageFromImage(render.StyledImage(item.Payload, style))
	preview.FillMode = canvas.ImageFillContain
	preview.ScaleMode = canvas.ImageScalePixels
	preview.SetMinSize(fyne.NewSize(PreviewMinSize, PreviewMinSize))

	meta := widget.NewLabel(loc.CategoryLabel(item.Category, item.GetDisplayCategory()) +
		MiddleDotSeparator + item.GetTimestampString())
	meta.Alignment = fyne.TextAlignCenter

	payload := widget.NewLabel(truncateRunes(item.Payload, ResultPayloadMaxRunes))
	payload.Wrapping = fyne.TextWrapBreak
	payload.TextStyle = fyne.TextStyle{Monospace: true}

	var d dialog.Dialog

	actions := []fyne.CanvasObject{
		widget.NewButtonWithIcon(loc.GetText(KeyCopy), theme.ContentCopyIcon(), func() {
			ui.copyToClipboard(item.Payload)
		}),
		widget.NewButtonWithIcon(loc.GetText(KeySavePNG), theme.DocumentSaveIcon(), func() {
			ui.exportItem(item)
		}),
	}
	if platform.IsOpenable(item.Payload) {
		open := widget.NewButtonWithIcon(loc.GetText(KeyOpenLink), theme.NavigateNextIcon(), func() {
			ui.openLink(item.Payload)
		})
		if classifier.IsLink(item.Payload) {
			open.Importance = widget.HighImportance
		}
		actions = append([]fyne.CanvasObject{open}, actions...)
	}
	if fromScan {
		actions = append(actions, widget.NewButtonWithIcon(loc.GetText(KeyScanAgain), theme.ViewRefreshIcon(), func() {
			if d != nil {
				d.Hide()
			}
			ui.scanner.Gate().Reset()
			ui.tabs.Select(ui.scannerItem)
			ui.startScanning()
		}))
	}

	content := container.NewVBox(
		container.NewCenter(preview),
		meta,
		container.NewVScroll(payload),
		container.NewGridWithColumns(2, actions...),
	)

	title := loc.GetText(KeyScanResult)
	if item.IsGenerated() {
		title = loc.GetText(KeyKindGenerated)
	}
	d = dialog.NewCustom(title, loc.GetText(KeyClose), content, ui.window)
	d.Resize(fyne.NewSize(ResultDialogWidth, content.MinSize().Height+80))
	d.Show()
}

// truncateRunes shortens s to at most max runes, appending an ellipsis
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
