package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/config"
	"github.com/qrmaster/qr-master/internal/generator"
	"github.com/qrmaster/qr-master/internal/history"
	"github.com/qrmaster/qr-master/internal/model"
	"github.com/qrmaster/qr-master/internal/platform"
	"github.com/qrmaster/qr-master/internal/scanner"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	store     history.History
	generator *generator.Controller
	scanner   *scanner.Controller
	source    *scanner.ManualSource

	tabs         *container.AppTabs
	scannerItem  *container.TabItem
	scannerTab   *ScannerTab
	generatorTab *GeneratorTab
	historyTab   *HistoryTab
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, store history.History,
	gen *generator.Controller, scan *scanner.Controller) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		store:        store,
		generator:    gen,
		scanner:      scan,
		source:       scanner.NewManualSource(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Store and scanner callbacks may fire off the UI goroutine
	store.SetUpdateCallback(func(items []model.HistoryItem) {
		fyne.Do(func() { ui.historyTab.SetItems(items) })
	})
	store.SetErrorCallback(func(err error) {
		log.Printf("History persistence failed: %v", err)
		fyne.Do(func() { ui.showToast(ui.localization.GetText(KeyHistorySaveFail), nil) })
	})
	scan.SetResultCallback(func(item model.HistoryItem) {
		fyne.Do(func() { ui.onScanResult(item) })
	})

	ui.setupUI()
	log.Printf("UI setup completed successfully")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	selected := 0
	if ui.tabs != nil {
		selected = ui.tabs.SelectedIndex()
	}

	ui.scannerTab = NewScannerTab(ui)
	ui.generatorTab = NewGeneratorTab(ui)
	ui.historyTab = NewHistoryTab(ui)
	ui.historyTab.SetItems(ui.store.List())

	ui.scannerItem = container.NewTabItemWithIcon(ui.localization.GetText(KeyTabScanner), theme.SearchIcon(), ui.scannerTab.Content())
	ui.tabs = container.NewAppTabs(
		ui.scannerItem,
		container.NewTabItemWithIcon(ui.localization.GetText(KeyTabGenerator), theme.ContentAddIcon(), ui.generatorTab.Content()),
		container.NewTabItemWithIcon(ui.localization.GetText(KeyTabHistory), theme.HistoryIcon(), ui.historyTab.Content()),
	)
	ui.tabs.SetTabLocation(ui.mobile.TabLocation())
	ui.tabs.OnSelected = ui.onTabSelected
	ui.tabs.SelectIndex(selected)

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	title := widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	var header fyne.CanvasObject
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, container.NewHBox(logoImage, title), settingsBtn)
	} else {
		header = container.NewBorder(nil, nil, title, settingsBtn)
	}

	ui.window.SetContent(container.NewBorder(header, nil, nil, nil, ui.tabs))
	ui.onTabSelected(ui.tabs.Selected())
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the screens with the current language; the
// controllers keep their state
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
}

// onTabSelected runs the scanner only while its tab is visible
func (ui *RootUI) onTabSelected(item *container.TabItem) {
	if item == ui.scannerItem {
		ui.startScanning()
		return
	}
	if ui.scanner.Scanning() {
		ui.scanner.Stop()
		ui.scannerTab.Refresh()
	}
}

func (ui *RootUI) startScanning() {
	if !ui.scanner.Scanning() {
		ui.scanner.Attach(ui.source)
	}
	ui.scannerTab.Refresh()
}

// onScanResult handles a recorded scan on the UI goroutine
func (ui *RootUI) onScanResult(item model.HistoryItem) {
	ui.scannerTab.ShowLast(item)
	if ui.settings.GetAutoOpenResult() {
		ui.showResult(item, true)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(languageChanged bool) {
		ui.scanner.Gate().SetCooldown(time.Duration(ui.settings.GetScanCooldownMs()) * time.Millisecond)
		if languageChanged {
			ui.localization.SetLanguage(ui.settings.GetLanguage())
			ui.refreshUITexts()
		}
		ui.showToast(ui.localization.GetText(KeySettingsSaved), nil)
	})
}

// copyToClipboard copies text and confirms with a toast
func (ui *RootUI) copyToClipboard(text string) {
	ui.app.Clipboard().SetContent(text)
	ui.showToast(ui.localization.GetText(KeyCopied), nil)
}

// openLink hands an openable payload to the OS
func (ui *RootUI) openLink(payload string) {
	u, err := platform.ParseLink(payload)
	if err != nil {
		log.Printf("Refusing to open %q: %v", payload, err)
		ui.showToast(ui.localization.GetText(KeyErrorOpenLink), nil)
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		log.Printf("Error opening link %s: %v", u, err)
		ui.showToast(ui.localization.GetText(KeyErrorOpenLink)+": "+err.Error(), nil)
	}
}

// exportItem writes item as PNG into the export directory
func (ui *RootUI) exportItem(item model.HistoryItem) {
	path, err := platform.ExportPNG(ui.settings.GetExportDirectory(), item)
	if err != nil {
		log.Printf("Export failed for %s: %v", item.ID, err)
		ui.showToast(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), nil)
		return
	}

	var reveal *widget.Button
	if !ui.mobile.IsMobileDevice() {
		reveal = widget.NewButton(ui.localization.GetText(KeyReveal), func() {
			if err := platform.RevealFile(path); err != nil {
				log.Printf("Error revealing file %s: %v", path, err)
			}
		})
	}
	ui.showToast(ui.localization.GetText(KeyExported)+": "+path, reveal)
}

// showToast shows a short in-app notification in the top-right corner
func (ui *RootUI) showToast(message string, action *widget.Button) {
	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	var content fyne.CanvasObject = container.NewBorder(nil, nil, nil, closeBtn, messageLabel)
	if action != nil {
		action.Importance = widget.HighImportance
		content = container.NewVBox(content, container.NewHBox(action))
	}

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	if toastSize.Width > canvasSize.Width-2*ToastMargin {
		toastSize.Width = canvasSize.Width - 2*ToastMargin
	}
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toastPopup.Hide)
	}()
}
