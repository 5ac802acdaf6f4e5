package config

import (
	"fyne.io/fyne/v2"
	"github.com/qrmaster/qr-master/internal/classifier"
	"github.com/qrmaster/qr-master/internal/model"
	"github.com/qrmaster/qr-master/internal/platform"
	"github.com/qrmaster/qr-master/internal/render"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyDefaultCategory = "default_category"
	KeyForeground      = "foreground_color"
	KeyBackground      = "background_color"
	KeyRenderSize      = "render_size"
	KeyHistoryLimit    = "history_limit"
	KeyScanCooldown    = "scan_cooldown_ms"
	KeyAutoOpenResult  = "auto_open_result"
	KeyExportDir       = "export_directory"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultCategory       = classifier.CategoryText
	DefaultForeground     = "#000000"
	DefaultBackground     = "#FFFFFF"
	DefaultRenderSize     = model.SizeMedium
	DefaultHistoryLimit   = 10
	DefaultScanCooldownMs = 2000
	DefaultAutoOpenResult = true
	MinHistoryLimit       = 1
	MaxHistoryLimit       = 10
	MinScanCooldownMs     = 500
	MaxScanCooldownMs     = 10000
	fallbackExportDir     = "/tmp/qrmaster"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultCategory returns the category the generator opens with
func (s *Settings) GetDefaultCategory() string {
	id := s.app.Preferences().String(KeyDefaultCategory)
	if _, ok := classifier.Lookup(id); !ok {
		s.SetDefaultCategory(DefaultCategory)
		return DefaultCategory
	}
	return id
}

// SetDefaultCategory sets the generator's initial category; unknown ids reset it
func (s *Settings) SetDefaultCategory(id string) {
	if _, ok := classifier.Lookup(id); !ok {
		id = DefaultCategory
	}
	s.app.Preferences().SetString(KeyDefaultCategory, id)
}

// GetForegroundColor returns the default code color
func (s *Settings) GetForegroundColor() string {
	return s.colorWithDefault(KeyForeground, DefaultForeground)
}

// SetForegroundColor sets the default code color
func (s *Settings) SetForegroundColor(hex string) {
	s.setColor(KeyForeground, hex, DefaultForeground)
}

// GetBackgroundColor returns the default background color
func (s *Settings) GetBackgroundColor() string {
	return s.colorWithDefault(KeyBackground, DefaultBackground)
}

// SetBackgroundColor sets the default background color
func (s *Settings) SetBackgroundColor(hex string) {
	s.setColor(KeyBackground, hex, DefaultBackground)
}

func (s *Settings) colorWithDefault(key, fallback string) string {
	value, err := render.NormalizeHex(s.app.Preferences().String(key))
	if err != nil {
		s.app.Preferences().SetString(key, fallback)
		return fallback
	}
	return value
}

func (s *Settings) setColor(key, hex, fallback string) {
	value, err := render.NormalizeHex(hex)
	if err != nil {
		value = fallback
	}
	s.app.Preferences().SetString(key, value)
}

// GetRenderSize returns the default render size
func (s *Settings) GetRenderSize() model.RenderSize {
	size := model.RenderSize(s.app.Preferences().String(KeyRenderSize))
	if !size.IsValid() {
		s.SetRenderSize(DefaultRenderSize)
		return DefaultRenderSize
	}
	return size
}

// SetRenderSize sets the default render size
func (s *Settings) SetRenderSize(size model.RenderSize) {
	if !size.IsValid() {
		size = DefaultRenderSize
	}
	s.app.Preferences().SetString(KeyRenderSize, string(size))
}

// GetRenderSizeOptions returns available render sizes
func (s *Settings) GetRenderSizeOptions() []model.RenderSize {
	return model.RenderSizes()
}

// GetDefaultStyle returns the style new generator sessions start with
func (s *Settings) GetDefaultStyle() model.Style {
	return model.Style{
		Foreground: s.GetForegroundColor(),
		Background: s.GetBackgroundColor(),
		Size:       s.GetRenderSize(),
	}
}

// GetHistoryLimit returns how many history entries are kept
func (s *Settings) GetHistoryLimit() int {
	value := s.app.Preferences().Int(KeyHistoryLimit)
	if value <= 0 {
		s.SetHistoryLimit(DefaultHistoryLimit)
		return DefaultHistoryLimit
	}
	if limit := clamp(value, MinHistoryLimit, MaxHistoryLimit); limit != value {
		s.SetHistoryLimit(limit)
		return limit
	}
	return value
}

// SetHistoryLimit sets how many history entries are kept
func (s *Settings) SetHistoryLimit(limit int) {
	s.app.Preferences().SetInt(KeyHistoryLimit, clamp(limit, MinHistoryLimit, MaxHistoryLimit))
}

// GetScanCooldownMs returns the pause between accepted scans
func (s *Settings) GetScanCooldownMs() int {
	value := s.app.Preferences().Int(KeyScanCooldown)
	if value <= 0 {
		s.SetScanCooldownMs(DefaultScanCooldownMs)
		return DefaultScanCooldownMs
	}
	if ms := clamp(value, MinScanCooldownMs, MaxScanCooldownMs); ms != value {
		s.SetScanCooldownMs(ms)
		return ms
	}
	return value
}

// SetScanCooldownMs sets the pause between accepted scans
func (s *Settings) SetScanCooldownMs(ms int) {
	s.app.Preferences().SetInt(KeyScanCooldown, clamp(ms, MinScanCooldownMs, MaxScanCooldownMs))
}

// GetAutoOpenResult returns whether the result view opens after a scan
func (s *Settings) GetAutoOpenResult() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenResult, DefaultAutoOpenResult)
}

// SetAutoOpenResult sets whether the result view opens after a scan
func (s *Settings) SetAutoOpenResult(autoOpen bool) {
	s.app.Preferences().SetBool(KeyAutoOpenResult, autoOpen)
}

// GetExportDirectory returns the directory PNG exports are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultExportDir()
		if err != nil {
			defaultDir = fallbackExportDir
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// clamp limits value to [lo, hi]
func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
