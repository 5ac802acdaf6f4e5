package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/qrmaster/qr-master/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language pt, got %s", lang)
	}
}

func TestDefaultCategory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if id := settings.GetDefaultCategory(); id != DefaultCategory {
		t.Errorf("Expected default category %s, got %s", DefaultCategory, id)
	}

	settings.SetDefaultCategory("tiktok")
	if id := settings.GetDefaultCategory(); id != "tiktok" {
		t.Errorf("Expected tiktok, got %s", id)
	}

	settings.SetDefaultCategory("myspace")
	if id := settings.GetDefaultCategory(); id != DefaultCategory {
		t.Errorf("Expected unknown category to reset to default, got %s", id)
	}

	// Corrupt stored value
	app.Preferences().SetString(KeyDefaultCategory, "bogus")
	if id := settings.GetDefaultCategory(); id != DefaultCategory {
		t.Errorf("Expected corrupt value to read as default, got %s", id)
	}
}

func TestColors(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if fg := settings.GetForegroundColor(); fg != DefaultForeground {
		t.Errorf("Expected default foreground %s, got %s", DefaultForeground, fg)
	}
	if bg := settings.GetBackgroundColor(); bg != DefaultBackground {
		t.Errorf("Expected default background %s, got %s", DefaultBackground, bg)
	}

	settings.SetForegroundColor("#6366f1")
	if fg := settings.GetForegroundColor(); fg != "#6366F1" {
		t.Errorf("Expected normalized #6366F1, got %s", fg)
	}

	settings.SetBackgroundColor("not-a-color")
	if bg := settings.GetBackgroundColor(); bg != DefaultBackground {
		t.Errorf("Expected invalid color to fall back to default, got %s", bg)
	}
}

func TestRenderSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if size := settings.GetRenderSize(); size != DefaultRenderSize {
		t.Errorf("Expected default size %s, got %s", DefaultRenderSize, size)
	}

	settings.SetRenderSize(model.SizeLarge)
	if size := settings.GetRenderSize(); size != model.SizeLarge {
		t.Errorf("Expected large, got %s", size)
	}

	settings.SetRenderSize("huge")
	if size := settings.GetRenderSize(); size != DefaultRenderSize {
		t.Errorf("Expected invalid size to reset, got %s", size)
	}

	options := settings.GetRenderSizeOptions()
	if len(options) != 3 {
		t.Errorf("Expected 3 render sizes, got %d", len(options))
	}
}

func TestGetDefaultStyle(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetForegroundColor("#EF4444")
	settings.SetRenderSize(model.SizeSmall)

	style := settings.GetDefaultStyle()
	expected := model.Style{Foreground: "#EF4444", Background: DefaultBackground, Size: model.SizeSmall}
	if style != expected {
		t.Errorf("Expected %+v, got %+v", expected, style)
	}
}

func TestHistoryLimit(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if limit := settings.GetHistoryLimit(); limit != DefaultHistoryLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultHistoryLimit, limit)
	}

	settings.SetHistoryLimit(5)
	if limit := settings.GetHistoryLimit(); limit != 5 {
		t.Errorf("Expected limit 5, got %d", limit)
	}

	settings.SetHistoryLimit(0) // Should be clamped to 1
	if settings.GetHistoryLimit() != MinHistoryLimit {
		t.Error("History limit should be clamped to minimum 1")
	}

	settings.SetHistoryLimit(50) // Should be clamped to 10
	if settings.GetHistoryLimit() != MaxHistoryLimit {
		t.Error("History limit should be clamped to maximum 10")
	}
}

func TestScanCooldown(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if ms := settings.GetScanCooldownMs(); ms != DefaultScanCooldownMs {
		t.Errorf("Expected default cooldown %d, got %d", DefaultScanCooldownMs, ms)
	}

	tests := []struct {
		input    int
		expected int
	}{
		{1500, 1500},
		{100, MinScanCooldownMs},
		{60000, MaxScanCooldownMs},
	}

	for _, test := range tests {
		settings.SetScanCooldownMs(test.input)
		if got := settings.GetScanCooldownMs(); got != test.expected {
			t.Errorf("SetScanCooldownMs(%d): expected %d, got %d", test.input, test.expected, got)
		}
	}
}

func TestStoredValuesClampedOnRead(t *testing.T) {
	tests := []struct {
		key      string
		stored   int
		get      func(*Settings) int
		expected int
	}{
		{KeyHistoryLimit, 50, (*Settings).GetHistoryLimit, MaxHistoryLimit},
		{KeyHistoryLimit, 7, (*Settings).GetHistoryLimit, 7},
		{KeyScanCooldown, 100, (*Settings).GetScanCooldownMs, MinScanCooldownMs},
		{KeyScanCooldown, 60000, (*Settings).GetScanCooldownMs, MaxScanCooldownMs},
	}

	for _, tc := range tests {
		app := test.NewApp()
		app.Preferences().SetInt(tc.key, tc.stored)
		settings := NewSettings(app)

		if result := tc.get(settings); result != tc.expected {
			t.Errorf("Stored %s=%d read as %d, expected %d", tc.key, tc.stored, result, tc.expected)
		}
		if persisted := app.Preferences().Int(tc.key); persisted != tc.expected {
			t.Errorf("Stored %s=%d persisted as %d, expected %d", tc.key, tc.stored, persisted, tc.expected)
		}
	}
}

func TestAutoOpenResult(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoOpenResult() {
		t.Error("Expected auto open to default to true")
	}

	settings.SetAutoOpenResult(false)
	if settings.GetAutoOpenResult() {
		t.Error("Expected auto open to be false")
	}
}

func TestExportDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetExportDirectory(); dir == "" {
		t.Error("Export directory should not be empty")
	}

	settings.SetExportDirectory("/custom/exports")
	if dir := settings.GetExportDirectory(); dir != "/custom/exports" {
		t.Errorf("Expected /custom/exports, got %s", dir)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Language option %s should exist", key)
		}
	}
}
