package ui

import (
	"testing"

	"github.com/qrmaster/qr-master/internal/model"
)

func TestLocalization_AllLanguagesCoverEnglishKeys(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s has no texts", code)
			continue
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found && !isCategoryKey(key) {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}

func isCategoryKey(key string) bool {
	return len(key) > len(KeyCategoryPrefix) && key[:len(KeyCategoryPrefix)] == KeyCategoryPrefix
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"de", "pt"}, // unknown languages are ignored
		{"en", "en"},
	}

	l := NewLocalization()
	for _, test := range tests {
		l.SetLanguage(test.code)
		if l.GetCurrentLanguage() != test.expected {
			t.Errorf("SetLanguage(%q): expected %s, got %s", test.code, test.expected, l.GetCurrentLanguage())
		}
	}
}

func TestLocalization_SystemLanguage(t *testing.T) {
	original := systemLanguage
	defer func() { systemLanguage = original }()

	tests := []struct {
		system   string
		expected string
	}{
		{"pt-BR", "pt"},
		{"RU", "ru"},
		{"ja", "en"},
		{"", "en"},
	}

	for _, test := range tests {
		systemLanguage = func() string { return test.system }
		l := NewLocalization()
		l.SetLanguage("system")
		if l.GetCurrentLanguage() != test.expected {
			t.Errorf("system %q: expected %s, got %s", test.system, test.expected, l.GetCurrentLanguage())
		}
	}
}

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText(KeyTabHistory); got != "История" {
		t.Errorf("Expected Russian text, got %s", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}

	// Social networks keep their English brand names
	if got := l.CategoryLabel("instagram", "fallback"); got != "Instagram" {
		t.Errorf("Expected English fallback for brand name, got %s", got)
	}
	if got := l.CategoryLabel("unknown", "fallback"); got != "fallback" {
		t.Errorf("Expected provided fallback, got %s", got)
	}
	if got := l.CategoryLabel("phone", "Phone"); got != "Телефон" {
		t.Errorf("Expected localized category, got %s", got)
	}
}

func TestSizeLabel(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	tests := []struct {
		size     model.RenderSize
		expected string
	}{
		{model.SizeSmall, l.GetText(KeySizeSmall)},
		{model.SizeMedium, l.GetText(KeySizeMedium)},
		{model.SizeLarge, l.GetText(KeySizeLarge)},
		{model.RenderSize("huge"), "Huge"},
	}

	for _, test := range tests {
		if result := sizeLabel(l, test.size); result != test.expected {
			t.Errorf("sizeLabel(%q) = %q, expected %q", test.size, result, test.expected)
		}
	}
}
