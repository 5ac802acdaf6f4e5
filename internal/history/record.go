package history

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/qrmaster/qr-master/internal/model"
)

// record is the persisted shape of a history item
type record struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Data      string `json:"data"`
	Timestamp int64  `json:"timestamp"`
	DataType  string `json:"dataType"`
	Color     string `json:"color,omitempty"`
	BgColor   string `json:"bgColor,omitempty"`
	Size      string `json:"size,omitempty"`
}

func toRecord(item model.HistoryItem) record {
	r := record{
		ID:        item.ID,
		Type:      item.Kind.String(),
		Data:      item.Payload,
		Timestamp: item.CreatedAt.UnixMilli(),
		DataType:  item.Category,
	}
	if item.Kind == model.KindGenerated && item.Style != nil {
		r.Color = item.Style.Foreground
		r.BgColor = item.Style.Background
		r.Size = string(item.Style.Size)
	}
	return r
}

func (r record) toItem() (model.HistoryItem, error) {
	kind := model.Kind(r.Type)
	if !kind.IsValid() {
		return model.HistoryItem{}, fmt.Errorf("unknown type %q", r.Type)
	}
	if r.ID == "" {
		return model.HistoryItem{}, fmt.Errorf("missing id")
	}
	if r.Data == "" {
		return model.HistoryItem{}, fmt.Errorf("empty data")
	}

	item := model.HistoryItem{
		ID:        r.ID,
		Kind:      kind,
		Payload:   r.Data,
		CreatedAt: time.UnixMilli(r.Timestamp),
		Category:  r.DataType,
	}

	if kind == model.KindGenerated {
		style := model.Style{
			Foreground: r.Color,
			Background: r.BgColor,
			Size:       model.RenderSize(r.Size),
		}.WithDefaults()
		item.Style = &style
	}
	return item, nil
}

// encode serializes items as one JSON array
func encode(items []model.HistoryItem) ([]byte, error) {
	records := make([]record, 0, len(items))
	for _, item := range items {
		records = append(records, toRecord(item))
	}
	return json.Marshal(records)
}

// decode parses a persisted array. Entries that break store invariants are
// skipped, and at most capacity entries are kept.
func decode(data []byte, capacity int) ([]model.HistoryItem, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	items := make([]model.HistoryItem, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		item, err := r.toItem()
		if err != nil {
			log.Printf("history: skipping entry %d: %v", i, err)
			continue
		}
		if _, dup := seen[item.ID]; dup {
			log.Printf("history: skipping entry %d: duplicate id %s", i, item.ID)
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
		if len(items) == capacity {
			break
		}
	}
	return items, nil
}
