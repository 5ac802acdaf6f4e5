package model

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Kind tells whether a history item came from the scanner or the generator
type Kind string

const (
	KindScanned   Kind = "scanned"
	KindGenerated Kind = "generated"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known kinds
func (k Kind) IsValid() bool {
	return k == KindScanned || k == KindGenerated
}

// RenderSize is the preview size chosen for a generated code
type RenderSize string

const (
	SizeSmall  RenderSize = "small"
	SizeMedium RenderSize = "medium"
	SizeLarge  RenderSize = "large"
)

// RenderSizes returns the sizes in display order
func RenderSizes() []RenderSize {
	return []RenderSize{SizeSmall, SizeMedium, SizeLarge}
}

// IsValid reports whether s is one of the known sizes
func (s RenderSize) IsValid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// Label returns the capitalized size name ("Small", "Medium", "Large")
func (s RenderSize) Label() string {
	return capitalize(string(s))
}

// Style holds the appearance of a generated code. Colors are hex strings
// such as "#000000".
type Style struct {
	Foreground string
	Background string
	Size       RenderSize
}

// DefaultStyle returns black on white at medium size
func DefaultStyle() Style {
	return Style{
		Foreground: "#000000",
		Background: "#FFFFFF",
		Size:       SizeMedium,
	}
}

// WithDefaults fills empty colors and an unknown size from DefaultStyle
func (s Style) WithDefaults() Style {
	def := DefaultStyle()
	if s.Foreground == "" {
		s.Foreground = def.Foreground
	}
	if s.Background == "" {
		s.Background = def.Background
	}
	if !s.Size.IsValid() {
		s.Size = def.Size
	}
	return s
}

// HistoryItem represents one scan or generation event
type HistoryItem struct {
	ID        string
	Kind      Kind
	Payload   string
	CreatedAt time.Time
	Category  string

	// Style is set only for generated items
	Style *Style
}

// IsGenerated returns true for items produced by the generator
func (h HistoryItem) IsGenerated() bool {
	return h.Kind == KindGenerated
}

// Clone returns a deep copy so callers cannot mutate stored state
func (h HistoryItem) Clone() HistoryItem {
	if h.Style != nil {
		style := *h.Style
		h.Style = &style
	}
	return h
}

// GetDisplayCategory returns the category with the first letter capitalized
func (h HistoryItem) GetDisplayCategory() string {
	return capitalize(h.Category)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// GetDisplayPayload returns the payload on a single line, shortened to max
// runes with an ellipsis when needed. max <= 0 disables shortening.
func (h HistoryItem) GetDisplayPayload(max int) string {
	clean := strings.ReplaceAll(h.Payload, "\r", " ")
	clean = strings.ReplaceAll(clean, "\n", " ")
	clean = strings.ReplaceAll(clean, "\t", " ")
	clean = strings.TrimSpace(clean)

	runes := []rune(clean)
	if max <= 0 || len(runes) <= max {
		return clean
	}
	return string(runes[:max]) + "…"
}

// GetTimestampString formats CreatedAt in local time as "2006-01-02 15:04"
func (h HistoryItem) GetTimestampString() string {
	if h.CreatedAt.IsZero() {
		return "—"
	}
	local := h.CreatedAt.Local()
	return fmt.Sprintf("%s %s", local.Format("2006-01-02"), local.Format("15:04"))
}

// Draft is a history item before the store assigns an ID and a timestamp.
// Drafts are built with NewScannedDraft or NewGeneratedDraft so that only
// generated drafts can carry a Style.
type Draft struct {
	kind     Kind
	payload  string
	category string
	style    *Style
}

// NewScannedDraft creates a draft for decoded content
func NewScannedDraft(payload, category string) Draft {
	return Draft{
		kind:     KindScanned,
		payload:  payload,
		category: category,
	}
}

// NewGeneratedDraft creates a draft for generated content. Missing style
// fields take their defaults, matching what a reload from storage yields.
func NewGeneratedDraft(payload, category string, style Style) Draft {
	style = style.WithDefaults()
	return Draft{
		kind:     KindGenerated,
		payload:  payload,
		category: category,
		style:    &style,
	}
}

// Payload returns the draft payload
func (d Draft) Payload() string { return d.payload }

// Item materializes the draft into a history item
func (d Draft) Item(id string, createdAt time.Time) HistoryItem {
	item := HistoryItem{
		ID:        id,
		Kind:      d.kind,
		Payload:   d.payload,
		CreatedAt: createdAt,
		Category:  d.category,
	}
	if d.style != nil {
		style := *d.style
		item.Style = &style
	}
	return item
}
