package generator

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/qrmaster/qr-master/internal/classifier"
	"github.com/qrmaster/qr-master/internal/model"
	"github.com/qrmaster/qr-master/internal/render"
)

var (
	// ErrUnknownCategory is returned when selecting a category that does not exist
	ErrUnknownCategory = errors.New("generator: unknown category")

	// ErrNothingToEncode is returned when previewing or confirming without input
	ErrNothingToEncode = errors.New("generator: nothing to encode")

	// ErrInvalidSize is returned for an unknown render size
	ErrInvalidSize = errors.New("generator: invalid size")
)

// Recorder stores confirmed codes. history.Store satisfies it.
type Recorder interface {
	Add(draft model.Draft) (model.HistoryItem, error)
}

// Controller holds the generator form state
type Controller struct {
	mu       sync.Mutex
	recorder Recorder
	category classifier.Category
	raw      string
	payload  string
	state    model.GeneratorState
	style    model.Style
	onChange func(model.GeneratorState, string) // state and payload after every change
}

// NewController creates a controller starting Idle on the default category
func NewController(recorder Recorder, style model.Style) *Controller {
	c := &Controller{
		recorder: recorder,
		category: classifier.Default(),
		state:    model.GeneratorIdle,
		style:    model.DefaultStyle(),
	}
	// keep only the valid parts of the initial style
	if fg, err := render.NormalizeHex(style.Foreground); err == nil {
		c.style.Foreground = fg
	}
	if bg, err := render.NormalizeHex(style.Background); err == nil {
		c.style.Background = bg
	}
	if style.Size.IsValid() {
		c.style.Size = style.Size
	}
	return c
}

// SetStateCallback sets the callback invoked after every state or payload change
func (c *Controller) SetStateCallback(callback func(model.GeneratorState, string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = callback
}

// SelectCategory switches category and clears the input, returning to Idle
func (c *Controller) SelectCategory(id string) error {
	category, ok := classifier.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, id)
	}

	c.mu.Lock()
	c.category = category
	c.raw = ""
	c.payload = ""
	c.state = model.GeneratorIdle
	c.notifyLocked()
	return nil
}

// SetText updates the raw input and recomputes the payload. Any edit leaves
// Previewing; clearing the input returns to Idle.
func (c *Controller) SetText(raw string) {
	c.mu.Lock()
	c.raw = raw
	c.payload = classifier.BuildPayload(c.category.ID, raw)
	if raw == "" {
		c.state = model.GeneratorIdle
	} else {
		c.state = model.GeneratorDrafting
	}
	c.notifyLocked()
}

// RequestPreview moves to Previewing when there is something to encode
func (c *Controller) RequestPreview() error {
	c.mu.Lock()
	if c.payload == "" {
		c.mu.Unlock()
		return ErrNothingToEncode
	}
	c.state = model.GeneratorPreviewing
	c.notifyLocked()
	return nil
}

// Confirm records the current payload as a generated history item
func (c *Controller) Confirm() (model.HistoryItem, error) {
	c.mu.Lock()
	payload := c.payload
	category := c.category.ID
	style := c.style
	c.mu.Unlock()

	if payload == "" {
		return model.HistoryItem{}, ErrNothingToEncode
	}

	item, err := c.recorder.Add(model.NewGeneratedDraft(payload, category, style))
	if err != nil {
		return model.HistoryItem{}, fmt.Errorf("generator: record: %w", err)
	}

	log.Printf("Generated code recorded: id=%s category=%s", item.ID, category)
	return item, nil
}

// SetForeground sets the code color
func (c *Controller) SetForeground(hex string) error {
	normalized, err := render.NormalizeHex(hex)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.style.Foreground = normalized
	c.notifyLocked()
	return nil
}

// SetBackground sets the background color
func (c *Controller) SetBackground(hex string) error {
	normalized, err := render.NormalizeHex(hex)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.style.Background = normalized
	c.notifyLocked()
	return nil
}

// SetSize sets the render size
func (c *Controller) SetSize(size model.RenderSize) error {
	if !size.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	c.mu.Lock()
	c.style.Size = size
	c.notifyLocked()
	return nil
}

// State returns the current state
func (c *Controller) State() model.GeneratorState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Payload returns the payload for the current input
func (c *Controller) Payload() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payload
}

// Text returns the raw input
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.raw
}

// Category returns the selected category
func (c *Controller) Category() classifier.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}

// Style returns the chosen style
func (c *Controller) Style() model.Style {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.style
}

// notifyLocked releases c.mu and then invokes the change callback
func (c *Controller) notifyLocked() {
	callback := c.onChange
	state := c.state
	payload := c.payload
	c.mu.Unlock()

	if callback != nil {
		callback(state, payload)
	}
}
