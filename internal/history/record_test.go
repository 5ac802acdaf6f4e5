package history

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/qrmaster/qr-master/internal/model"
)

func TestEncode_WireFormat(t *testing.T) {
	created := time.UnixMilli(1700000000123)
	items := []model.HistoryItem{
		model.NewGeneratedDraft("https://facebook.com/john.doe", "facebook", model.Style{
			Foreground: "#000000",
			Background: "#FFFFFF",
			Size:       model.SizeSmall,
		}).Item("gen-1", created),
		model.NewScannedDraft("hello", "text").Item("scan-1", created),
	}

	data, err := encode(items)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Output is not a JSON array: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(raw))
	}

	generated := raw[0]
	expected := map[string]interface{}{
		"id":        "gen-1",
		"type":      "generated",
		"data":      "https://facebook.com/john.doe",
		"timestamp": float64(1700000000123),
		"dataType":  "facebook",
		"color":     "#000000",
		"bgColor":   "#FFFFFF",
		"size":      "small",
	}
	for key, value := range expected {
		if generated[key] != value {
			t.Errorf("Field %s: expected %v, got %v", key, value, generated[key])
		}
	}

	scanned := raw[1]
	for _, key := range []string{"color", "bgColor", "size"} {
		if _, present := scanned[key]; present {
			t.Errorf("Scanned entry should not carry %s", key)
		}
	}
}

func TestDecode_IgnoresStyleOnScanned(t *testing.T) {
	data := []byte(`[{"id":"1","type":"scanned","data":"x","timestamp":1,"dataType":"text","color":"#FF0000","size":"large"}]`)

	items, err := decode(data, DefaultCapacity)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Style != nil {
		t.Errorf("Scanned item should not get a style, got %+v", items[0].Style)
	}
}

func TestDecode_NotAnArray(t *testing.T) {
	if _, err := decode([]byte(`{"id":"1"}`), DefaultCapacity); err == nil {
		t.Error("Expected an error for a non-array document")
	}
}
