package scanner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qrmaster/qr-master/internal/history"
	"github.com/qrmaster/qr-master/internal/model"
)

type failingRecorder struct{}

func (failingRecorder) Add(model.Draft) (model.HistoryItem, error) {
	return model.HistoryItem{}, errors.New("disk full")
}

func newTestController(t *testing.T) (*Controller, *history.Store, *manualClock) {
	t.Helper()
	store := history.NewStore(history.NewMemoryBackend())
	t.Cleanup(func() { store.Close() })
	clock := newClock()
	return NewController(store, NewGate(DefaultCooldown, clock.now)), store, clock
}

func TestHandleDecode_RecordsScannedItem(t *testing.T) {
	c, store, _ := newTestController(t)
	c.Start()

	var delivered []model.HistoryItem
	c.SetResultCallback(func(item model.HistoryItem) {
		delivered = append(delivered, item)
	})

	item, ok := c.HandleDecode(DecodeEvent{Payload: "https://example.com", Format: "qr"})
	if !ok {
		t.Fatal("Expected event to be accepted")
	}
	if item.Kind != model.KindScanned {
		t.Errorf("Expected scanned item, got %s", item.Kind)
	}
	if item.Category != "url" {
		t.Errorf("Expected url category, got %s", item.Category)
	}
	if item.Style != nil {
		t.Errorf("Expected no style on scanned item")
	}
	if len(delivered) != 1 || delivered[0].Payload != "https://example.com" {
		t.Errorf("Expected result callback with payload, got %+v", delivered)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 stored item, got %d", store.Len())
	}
}

func TestHandleDecode_Filters(t *testing.T) {
	c, store, clock := newTestController(t)

	if _, ok := c.HandleDecode(DecodeEvent{Payload: "ignored"}); ok {
		t.Error("Expected event to be ignored while stopped")
	}

	c.Start()
	if _, ok := c.HandleDecode(DecodeEvent{Payload: "   "}); ok {
		t.Error("Expected blank payload to be dropped")
	}

	if _, ok := c.HandleDecode(DecodeEvent{Payload: "first"}); !ok {
		t.Fatal("Expected first event to be accepted")
	}

	clock.advance(time.Second)
	if _, ok := c.HandleDecode(DecodeEvent{Payload: "second"}); ok {
		t.Error("Expected event inside cooldown to be dropped")
	}

	clock.advance(time.Second)
	item, ok := c.HandleDecode(DecodeEvent{Payload: "third"})
	if !ok {
		t.Fatal("Expected event after cooldown to be accepted")
	}
	if item.Category != "text" {
		t.Errorf("Expected text category, got %s", item.Category)
	}

	items := store.List()
	if len(items) != 2 || items[0].Payload != "third" || items[1].Payload != "first" {
		t.Errorf("Unexpected history %+v", items)
	}
}

func TestHandleDecode_RecorderError(t *testing.T) {
	c := NewController(failingRecorder{}, nil)
	c.Start()

	called := false
	c.SetResultCallback(func(model.HistoryItem) { called = true })

	if _, ok := c.HandleDecode(DecodeEvent{Payload: "x"}); ok {
		t.Error("Expected failure to report not accepted")
	}
	if called {
		t.Error("Expected no result callback on failure")
	}
}

func TestStartStop(t *testing.T) {
	c, _, _ := newTestController(t)

	if c.Scanning() {
		t.Error("Expected controller to start stopped")
	}
	c.Start()
	c.Start()
	if !c.Scanning() {
		t.Error("Expected scanning after Start")
	}
	c.Stop()
	c.Stop()
	if c.Scanning() {
		t.Error("Expected stopped after Stop")
	}
}

func TestStart_ResetsCooldown(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Start()

	if _, ok := c.HandleDecode(DecodeEvent{Payload: "a"}); !ok {
		t.Fatal("Expected first event accepted")
	}
	c.Stop()
	c.Start()
	if _, ok := c.HandleDecode(DecodeEvent{Payload: "b"}); !ok {
		t.Error("Expected restart to clear the cooldown")
	}
}

func TestAttach_ManualSource(t *testing.T) {
	c, store, _ := newTestController(t)
	src := NewManualSource()

	results := make(chan model.HistoryItem, 1)
	c.SetResultCallback(func(item model.HistoryItem) {
		results <- item
	})

	c.Attach(src)
	if err := src.Submit("WIFI:S:home;;"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	select {
	case item := <-results:
		if item.Payload != "WIFI:S:home;;" {
			t.Errorf("Expected submitted payload, got %q", item.Payload)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for scan result")
	}

	c.Stop()
	if store.Len() != 1 {
		t.Errorf("Expected 1 stored item, got %d", store.Len())
	}
}

func TestManualSource_Closed(t *testing.T) {
	src := NewManualSource()
	src.Close()
	src.Close()

	if err := src.Submit("x"); !errors.Is(err, ErrSourceClosed) {
		t.Errorf("Expected ErrSourceClosed, got %v", err)
	}

	events := make(chan DecodeEvent)
	if err := src.Run(context.Background(), events); err != nil {
		t.Errorf("Expected nil error from closed source, got %v", err)
	}
}

func TestManualSource_RunStopsOnCancel(t *testing.T) {
	src := NewManualSource()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := src.Run(ctx, make(chan DecodeEvent))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
