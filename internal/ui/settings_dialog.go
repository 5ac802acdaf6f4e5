package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/classifier"
	"github.com/qrmaster/qr-master/internal/config"
	"github.com/qrmaster/qr-master/internal/model"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 520
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged bool)

	// UI components
	languageSelect *widget.Select
	languageCodes  map[string]string // display name -> code
	categorySelect *widget.Select
	categoryIDs    map[string]string // label -> category id
	fgButton       *ColorButton
	bgButton       *ColorButton
	sizeSelect     *widget.Select
	sizeLabels     map[string]model.RenderSize
	limitEntry     *widget.Entry
	cooldownEntry  *widget.Entry
	autoOpenCheck  *widget.Check
	exportDirEntry *widget.Entry
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(languageChanged bool)) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
		categoryIDs:   make(map[string]string),
		sizeLabels:    make(map[string]model.RenderSize),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	// Language selection, shown by display name
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	categoryOptions := []string{}
	for _, category := range classifier.Categories() {
		label := loc.CategoryLabel(category.ID, category.Label)
		sd.categoryIDs[label] = category.ID
		categoryOptions = append(categoryOptions, label)
	}
	sd.categorySelect = widget.NewSelect(categoryOptions, nil)

	sd.fgButton = NewColorButton(sd.window, loc.GetText(KeyChooseColor), config.DefaultForeground, nil)
	sd.bgButton = NewColorButton(sd.window, loc.GetText(KeyChooseColor), config.DefaultBackground, nil)

	sizeOptions := []string{}
	for _, size := range sd.settings.GetRenderSizeOptions() {
		label := sizeLabel(loc, size)
		sd.sizeLabels[label] = size
		sizeOptions = append(sizeOptions, label)
	}
	sd.sizeSelect = widget.NewSelect(sizeOptions, nil)

	sd.limitEntry = widget.NewEntry()
	sd.limitEntry.SetPlaceHolder("1-10")

	sd.cooldownEntry = widget.NewEntry()
	sd.cooldownEntry.SetPlaceHolder("2000")

	sd.autoOpenCheck = widget.NewCheck(loc.GetText(KeyAutoOpenResult), nil)

	sd.exportDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	exportDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.exportDirEntry)

	form := widget.NewForm(
		widget.NewFormItem(loc.GetText(KeyLanguage), sd.languageSelect),
		widget.NewFormItem(loc.GetText(KeyDefaultCategory), sd.categorySelect),
		widget.NewFormItem(loc.GetText(KeyForeground), container.NewHBox(sd.fgButton)),
		widget.NewFormItem(loc.GetText(KeyBackground), container.NewHBox(sd.bgButton)),
		widget.NewFormItem(loc.GetText(KeySize), sd.sizeSelect),
		widget.NewFormItem(loc.GetText(KeyHistoryLimit), sd.limitEntry),
		widget.NewFormItem(loc.GetText(KeyScanCooldown), sd.cooldownEntry),
		widget.NewFormItem("", sd.autoOpenCheck),
		widget.NewFormItem(loc.GetText(KeyExportDirectory), exportDirRow),
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	for name, code := range sd.languageCodes {
		if code == sd.settings.GetLanguage() {
			sd.languageSelect.SetSelected(name)
		}
	}
	for label, id := range sd.categoryIDs {
		if id == sd.settings.GetDefaultCategory() {
			sd.categorySelect.SetSelected(label)
		}
	}
	sd.fgButton.SetColor(sd.settings.GetForegroundColor())
	sd.bgButton.SetColor(sd.settings.GetBackgroundColor())
	sd.sizeSelect.SetSelected(sizeLabel(sd.localization, sd.settings.GetRenderSize()))
	sd.limitEntry.SetText(strconv.Itoa(sd.settings.GetHistoryLimit()))
	sd.cooldownEntry.SetText(strconv.Itoa(sd.settings.GetScanCooldownMs()))
	sd.autoOpenCheck.SetChecked(sd.settings.GetAutoOpenResult())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.exportDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	languageChanged := false
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		languageChanged = true
	}

	if id, ok := sd.categoryIDs[sd.categorySelect.Selected]; ok {
		sd.settings.SetDefaultCategory(id)
	}

	sd.settings.SetForegroundColor(sd.fgButton.Color())
	sd.settings.SetBackgroundColor(sd.bgButton.Color())

	if size, ok := sd.sizeLabels[sd.sizeSelect.Selected]; ok {
		sd.settings.SetRenderSize(size)
	}

	// History size applies on next start, the open store keeps its capacity
	if limit, err := strconv.Atoi(sd.limitEntry.Text); err == nil {
		if limit != sd.settings.GetHistoryLimit() {
			sd.settings.SetHistoryLimit(limit)
			dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeyRestartNeeded), sd.window)
		}
	}

	if cooldown, err := strconv.Atoi(sd.cooldownEntry.Text); err == nil {
		sd.settings.SetScanCooldownMs(cooldown)
	}

	sd.settings.SetAutoOpenResult(sd.autoOpenCheck.Checked)

	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}

	if sd.onSaved != nil {
		sd.onSaved(languageChanged)
	}
}
