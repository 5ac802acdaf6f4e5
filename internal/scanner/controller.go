package scanner

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/qrmaster/qr-master/internal/classifier"
	"github.com/qrmaster/qr-master/internal/model"
)

// DecodeEvent is one barcode read by the host decoder
type DecodeEvent struct {
	Payload string
	Format  string // e.g. "qr", "ean13"; informational only
}

// Recorder stores scanned codes. history.Store satisfies it.
type Recorder interface {
	Add(draft model.Draft) (model.HistoryItem, error)
}

// Source produces decode events until ctx is cancelled
type Source interface {
	Run(ctx context.Context, events chan<- DecodeEvent) error
}

// Controller filters decode events and records accepted scans
type Controller struct {
	mu       sync.Mutex
	recorder Recorder
	gate     *Gate
	scanning bool
	onResult func(model.HistoryItem)
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewController creates a stopped controller
func NewController(recorder Recorder, gate *Gate) *Controller {
	if gate == nil {
		gate = NewGate(DefaultCooldown, nil)
	}
	return &Controller{recorder: recorder, gate: gate}
}

// SetResultCallback sets the callback receiving each recorded scan. With an
// attached source it runs on the source goroutine and must not call Stop.
func (c *Controller) SetResultCallback(callback func(model.HistoryItem)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResult = callback
}

// Start enables event handling; the next event bypasses the cooldown
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scanning {
		return
	}
	c.scanning = true
	c.gate.Reset()
	log.Printf("Scanner started")
}

// Stop disables event handling and stops an attached source
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.scanning {
		c.mu.Unlock()
		return
	}
	c.scanning = false
	cancel := c.cancel
	done := c.done
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	log.Printf("Scanner stopped")
}

// Scanning reports whether events are being handled
func (c *Controller) Scanning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scanning
}

// Gate returns the cooldown gate
func (c *Controller) Gate() *Gate {
	return c.gate
}

// HandleDecode records ev unless it is empty, arrives while stopped, or
// falls inside the cooldown window
func (c *Controller) HandleDecode(ev DecodeEvent) (model.HistoryItem, bool) {
	c.mu.Lock()
	scanning := c.scanning
	callback := c.onResult
	c.mu.Unlock()

	if !scanning {
		return model.HistoryItem{}, false
	}
	if strings.TrimSpace(ev.Payload) == "" {
		return model.HistoryItem{}, false
	}
	if !c.gate.Allow() {
		return model.HistoryItem{}, false
	}

	category := classifier.DetectScanned(ev.Payload)
	item, err := c.recorder.Add(model.NewScannedDraft(ev.Payload, category))
	if err != nil {
		log.Printf("Failed to record scan: %v", err)
		return model.HistoryItem{}, false
	}

	log.Printf("Scan recorded: id=%s category=%s format=%s", item.ID, category, ev.Format)
	if callback != nil {
		callback(item)
	}
	return item, true
}

// Attach starts scanning and feeds events from src until Stop
func (c *Controller) Attach(src Source) {
	c.Start()

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan DecodeEvent)
	done := make(chan struct{})

	c.mu.Lock()
	previous, previousDone := c.cancel, c.done
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	if previous != nil {
		previous()
		<-previousDone
	}

	go func() {
		if err := src.Run(ctx, events); err != nil && ctx.Err() == nil {
			log.Printf("Scan source stopped: %v", err)
		}
		close(events)
	}()

	go func() {
		defer close(done)
		for ev := range events {
			c.HandleDecode(ev)
		}
	}()
}
