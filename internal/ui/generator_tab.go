package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/classifier"
	"github.com/qrmaster/qr-master/internal/generator"
	"github.com/qrmaster/qr-master/internal/model"
	"github.com/qrmaster/qr-master/internal/render"
)

// GeneratorTab is the generator form bound to a generator.Controller
type GeneratorTab struct {
	ui *RootUI

	categorySelect *widget.Select
	categoryIDs    map[string]string // localized label -> category id
	prefixLabel    *widget.Label
	entry          *CategoryEntry
	payloadLabel   *widget.Label
	fgButton       *ColorButton
	bgButton       *ColorButton
	sizeRadio      *widget.RadioGroup
	sizeLabels     map[string]model.RenderSize
	preview        *canvas.Image
	previewHint    *widget.Label
	generateBtn    *widget.Button
	saveBtn        *widget.Button
	copyBtn        *widget.Button

	// last recorded item, exported by Save PNG while still Previewing
	generated model.HistoryItem

	content fyne.CanvasObject
}

// NewGeneratorTab builds the generator screen
func NewGeneratorTab(ui *RootUI) *GeneratorTab {
	gt := &GeneratorTab{
		ui:          ui,
		categoryIDs: make(map[string]string),
		sizeLabels:  make(map[string]model.RenderSize),
	}
	loc := ui.localization
	ctl := ui.generator

	labels := make([]string, 0, len(classifier.Categories()))
	for _, category := range classifier.Categories() {
		label := loc.CategoryLabel(category.ID, category.Label)
		gt.categoryIDs[label] = category.ID
		labels = append(labels, label)
	}
	current := ctl.Category()

	gt.prefixLabel = widget.NewLabel("")
	gt.prefixLabel.TextStyle = fyne.TextStyle{Italic: true}

	gt.entry = NewCategoryEntry(current.Keyboard)
	gt.entry.SetText(ctl.Text())
	gt.entry.OnChanged = ctl.SetText

	gt.categorySelect = widget.NewSelect(labels, gt.onCategorySelected)
	gt.categorySelect.SetSelected(loc.CategoryLabel(current.ID, current.Label))

	gt.payloadLabel = widget.NewLabel("")
	gt.payloadLabel.Truncation = fyne.TextTruncateEllipsis
	gt.payloadLabel.TextStyle = fyne.TextStyle{Monospace: true}

	style := ctl.Style()
	gt.fgButton = NewColorButton(ui.window, loc.GetText(KeyChooseColor), style.Foreground, func(hex string) {
		gt.applyStyleErr(ctl.SetForeground(hex))
	})
	gt.bgButton = NewColorButton(ui.window, loc.GetText(KeyChooseColor), style.Background, func(hex string) {
		gt.applyStyleErr(ctl.SetBackground(hex))
	})

	sizeOptions := make([]string, 0, len(model.RenderSizes()))
	for _, size := range model.RenderSizes() {
		label := sizeLabel(loc, size)
		gt.sizeLabels[label] = size
		sizeOptions = append(sizeOptions, label)
	}
	gt.sizeRadio = widget.NewRadioGroup(sizeOptions, func(label string) {
		if size, ok := gt.sizeLabels[label]; ok {
			gt.applyStyleErr(ctl.SetSize(size))
		}
	})
	gt.sizeRadio.Horizontal = true
	gt.sizeRadio.Required = true
	gt.sizeRadio.SetSelected(sizeLabel(loc, style.Size))

	gt.preview = canvas.NewImageFromImage(nil)
	gt.preview.FillMode = canvas.ImageFillContain
	gt.preview.ScaleMode = canvas.ImageScalePixels
	gt.preview.SetMinSize(fyne.NewSize(PreviewMinSize, PreviewMinSize))
	gt.previewHint = widget.NewLabel(loc.GetText(KeyPreviewHint))
	gt.previewHint.Alignment = fyne.TextAlignCenter
	gt.previewHint.Wrapping = fyne.TextWrapWord

	gt.generateBtn = widget.NewButtonWithIcon(loc.GetText(KeyGenerate), theme.ConfirmIcon(), gt.onGenerate)
	gt.generateBtn.Importance = widget.HighImportance
	gt.saveBtn = widget.NewButtonWithIcon(loc.GetText(KeySavePNG), theme.DocumentSaveIcon(), gt.onSave)
	gt.copyBtn = widget.NewButtonWithIcon(loc.GetText(KeyCopy), theme.ContentCopyIcon(), func() {
		if payload := ctl.Payload(); payload != "" {
			ui.copyToClipboard(payload)
		}
	})

	ctl.SetStateCallback(func(model.GeneratorState, string) { gt.refresh() })

	form := widget.NewForm(
		widget.NewFormItem(loc.GetText(KeyCategory), gt.categorySelect),
		widget.NewFormItem(loc.GetText(KeyContent), container.NewVBox(gt.entry, gt.prefixLabel)),
		widget.NewFormItem(loc.GetText(KeyForeground), container.NewHBox(gt.fgButton)),
		widget.NewFormItem(loc.GetText(KeyBackground), container.NewHBox(gt.bgButton)),
		widget.NewFormItem(loc.GetText(KeySize), gt.sizeRadio),
	)

	previewArea := container.NewVBox(
		container.NewStack(container.NewCenter(gt.preview), gt.previewHint),
		gt.payloadLabel,
		container.NewGridWithColumns(3, gt.generateBtn, gt.saveBtn, gt.copyBtn),
	)

	gt.content = container.NewVScroll(ui.mobile.CreateOrientationAwareContainer(form, previewArea))
	gt.refresh()
	return gt
}

// Content returns the tab content
func (gt *GeneratorTab) Content() fyne.CanvasObject {
	return gt.content
}

func (gt *GeneratorTab) onCategorySelected(label string) {
	id, ok := gt.categoryIDs[label]
	if !ok {
		return
	}
	if gt.ui.generator.Category().ID == id {
		return
	}
	if err := gt.ui.generator.SelectCategory(id); err != nil {
		log.Printf("Category selection failed: %v", err)
		return
	}
	category := gt.ui.generator.Category()
	gt.entry.SetHint(category.Keyboard)
	// SetText fires OnChanged, which keeps the controller Idle on empty text
	gt.entry.SetText("")
	gt.refresh()
}

// refresh syncs every widget with the controller state
func (gt *GeneratorTab) refresh() {
	ctl := gt.ui.generator
	category := ctl.Category()
	payload := ctl.Payload()
	state := ctl.State()

	gt.entry.SetPlaceHolder(category.Placeholder)
	switch {
	case category.HasPrefix():
		gt.prefixLabel.SetText(category.Prefix)
		gt.prefixLabel.Show()
	case category.ID == classifier.CategoryPhone:
		gt.prefixLabel.SetText(classifier.PhoneScheme)
		gt.prefixLabel.Show()
	case category.ID == classifier.CategoryEmail:
		gt.prefixLabel.SetText(classifier.EmailScheme)
		gt.prefixLabel.Show()
	default:
		gt.prefixLabel.Hide()
	}

	if payload == "" {
		gt.preview.Image = nil
		gt.preview.Hide()
		gt.previewHint.Show()
		gt.payloadLabel.SetText(DashPlaceholder)
		gt.generateBtn.Disable()
		gt.copyBtn.Disable()
	} else {
		gt.preview.Image = render.StyledImage(payload, ctl.Style())
		gt.preview.Show()
		gt.previewHint.Hide()
		gt.payloadLabel.SetText(payload)
		gt.generateBtn.Enable()
		gt.copyBtn.Enable()
	}
	gt.preview.Refresh()

	if state.IsPreviewing() {
		gt.saveBtn.Enable()
	} else {
		gt.saveBtn.Disable()
	}
}

func (gt *GeneratorTab) applyStyleErr(err error) {
	if err != nil {
		log.Printf("Style change rejected: %v", err)
		return
	}
	gt.refresh()
}

// onGenerate previews and records the current payload
func (gt *GeneratorTab) onGenerate() {
	ctl := gt.ui.generator
	if err := ctl.RequestPreview(); err != nil {
		if errors.Is(err, generator.ErrNothingToEncode) {
			gt.ui.showToast(gt.ui.localization.GetText(KeyNothingToEncode), nil)
		}
		return
	}

	item, err := ctl.Confirm()
	if err != nil {
		log.Printf("Generate failed: %v", err)
		gt.ui.showToast(err.Error(), nil)
		return
	}
	gt.generated = item
	gt.ui.showToast(gt.ui.localization.GetText(KeyGenerated), nil)
}

// onSave exports the last generated item
func (gt *GeneratorTab) onSave() {
	if gt.generated.ID == "" || gt.generated.Payload != gt.ui.generator.Payload() {
		return
	}
	gt.ui.exportItem(gt.generated)
}

// sizeLabel returns the localized label of a render size
func sizeLabel(loc *Localization, size model.RenderSize) string {
	switch size {
	case model.SizeSmall:
		return loc.GetText(KeySizeSmall)
	case model.SizeMedium:
		return loc.GetText(KeySizeMedium)
	case model.SizeLarge:
		return loc.GetText(KeySizeLarge)
	default:
		return size.Label()
	}
}
