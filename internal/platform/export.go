package platform

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/qrmaster/qr-master/internal/model"
	"github.com/qrmaster/qr-master/internal/render"
)

// ExportFileName builds a file name such as "qr-url-20240101-120000.png"
func ExportFileName(category string, at time.Time) string {
	category = SanitizeFileName(category)
	if category == "" {
		category = "code"
	}
	return fmt.Sprintf("qr-%s-%s.png", category, at.Format("20060102-150405"))
}

// SanitizeFileName keeps letters, digits, '-' and '_', lower-cased
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('-')
		}
	}
	return b.String()
}

// ExportPNG renders item with its style into dir and returns the file path
func ExportPNG(dir string, item model.HistoryItem) (string, error) {
	if item.Payload == "" {
		return "", fmt.Errorf("export: empty payload")
	}

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("export: create directory: %w", err)
	}

	at := item.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	path, err := UniqueFilePath(dir, ExportFileName(item.Category, at))
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	style := model.DefaultStyle()
	if item.Style != nil {
		style = *item.Style
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create file: %w", err)
	}

	if err := render.EncodePNG(f, render.StyledImage(item.Payload, style)); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("export: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close file: %w", err)
	}

	if err := NotifyMediaScanner(path); err != nil {
		log.Printf("Media scanner notification failed: %v", err)
	}

	log.Printf("Exported code %s to %s", item.ID, path)
	return path, nil
}
