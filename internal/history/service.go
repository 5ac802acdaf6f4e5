package history

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qrmaster/qr-master/internal/model"
)

// Store defaults
const (
	DefaultKey      = "qr_history"
	DefaultCapacity = 10
)

var (
	// ErrEmptyPayload is returned by Add for a draft without payload
	ErrEmptyPayload = errors.New("history: empty payload")

	// ErrCorrupt wraps decoding failures of persisted data
	ErrCorrupt = errors.New("history: corrupt persisted data")
)

// Option configures a Store
type Option func(*Store)

// WithCapacity sets the maximum number of kept items; n < 1 keeps the default
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n >= 1 {
			s.capacity = n
		}
	}
}

// WithKey sets the storage key
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock sets the time source used for CreatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the ID source
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// Store holds the history list and persists it through a Backend
type Store struct {
	items    []model.HistoryItem
	mu       sync.RWMutex
	capacity int
	key      string
	backend  Backend
	now      func() time.Time
	newID    func() string
	onUpdate func([]model.HistoryItem) // callback for UI updates
	onError  func(error)               // callback for persistence failures
	issued   map[string]struct{}       // every ID handed out or loaded

	// persistence state, guarded by pmu
	pmu      sync.Mutex
	pending  []byte
	queued   uint64 // sequence of the latest snapshot
	written  uint64 // sequence of the latest attempted write
	lastErr  error
	waiters  []flushWaiter
	closed   bool
	kick     chan struct{}
	stop     chan struct{}
	finished chan struct{}
}

type flushWaiter struct {
	seq  uint64
	done chan struct{}
}

// NewStore creates a store and starts its background writer
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		items:    make([]model.HistoryItem, 0, DefaultCapacity),
		capacity: DefaultCapacity,
		key:      DefaultKey,
		backend:  backend,
		now:      time.Now,
		newID:    uuid.NewString,
		issued:   make(map[string]struct{}),
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.writer()
	return s
}

// SetUpdateCallback sets the callback invoked with the new list after every change
func (s *Store) SetUpdateCallback(callback func([]model.HistoryItem)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetErrorCallback sets the callback invoked when a write fails
func (s *Store) SetErrorCallback(callback func(error)) {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	s.onError = callback
}

// Capacity returns the maximum number of kept items
func (s *Store) Capacity() int {
	return s.capacity
}

// Load replaces the in-memory list with the persisted one. A missing key
// yields an empty list. Unreadable or corrupt data also yields an empty
// list; the error is logged and returned for observability only.
func (s *Store) Load(ctx context.Context) ([]model.HistoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []model.HistoryItem
	data, ok, err := s.backend.Read(s.key)
	switch {
	case err != nil:
		err = fmt.Errorf("history: read %s: %w", s.key, err)
		log.Printf("Error loading history: %v", err)
	case !ok:
		log.Printf("No persisted history under %s", s.key)
	default:
		items, err = decode(data, s.capacity)
		if err != nil {
			log.Printf("Error loading history: %v", err)
			items = nil
		}
	}

	if items == nil {
		items = make([]model.HistoryItem, 0, s.capacity)
	}

	s.mu.Lock()
	s.items = items
	for _, item := range items {
		s.issued[item.ID] = struct{}{}
	}
	snapshot := s.snapshotLocked()
	callback := s.onUpdate
	s.mu.Unlock()

	log.Printf("History loaded: %d items", len(snapshot))
	if callback != nil {
		callback(cloneItems(snapshot))
	}
	return snapshot, err
}

// List returns the items, most recent first
func (s *Store) List() []model.HistoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of items
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns an item by ID
func (s *Store) Get(id string) (model.HistoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return model.HistoryItem{}, false
}

// Add records a new item at the head of the list, evicting the oldest
// items beyond capacity, and schedules a write.
func (s *Store) Add(draft model.Draft) (model.HistoryItem, error) {
	if draft.Payload() == "" {
		return model.HistoryItem{}, ErrEmptyPayload
	}

	s.mu.Lock()
	item := draft.Item(s.uniqueIDLocked(), s.now().Truncate(time.Millisecond))

	items := make([]model.HistoryItem, 0, s.capacity)
	items = append(items, item)
	for _, existing := range s.items {
		if len(items) == s.capacity {
			log.Printf("History full, evicting %s", existing.ID)
			continue
		}
		items = append(items, existing)
	}
	s.items = items
	s.commitLocked()

	log.Printf("History item added: id=%s kind=%s category=%s", item.ID, item.Kind, item.Category)
	return item.Clone(), nil
}

// Remove deletes the item with the given ID; an unknown ID changes nothing
func (s *Store) Remove(id string) {
	s.mu.Lock()

	items := make([]model.HistoryItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	if len(items) != len(s.items) {
		log.Printf("History item removed: %s", id)
	}
	s.items = items
	s.commitLocked()
}

// Clear deletes every item
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = make([]model.HistoryItem, 0, s.capacity)
	s.commitLocked()
	log.Printf("History cleared")
}

// Flush waits until every change made before the call has been written.
// It returns the error of the last attempted write, if any.
func (s *Store) Flush(ctx context.Context) error {
	s.pmu.Lock()
	if s.written >= s.queued {
		err := s.lastErr
		s.pmu.Unlock()
		return err
	}
	w := flushWaiter{seq: s.queued, done: make(chan struct{})}
	s.waiters = append(s.waiters, w)
	s.pmu.Unlock()

	select {
	case <-w.done:
		s.pmu.Lock()
		defer s.pmu.Unlock()
		return s.lastErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close flushes pending writes and stops the writer. Later changes stay in
// memory only.
func (s *Store) Close() error {
	err := s.Flush(context.Background())

	s.pmu.Lock()
	if s.closed {
		s.pmu.Unlock()
		return err
	}
	s.closed = true
	s.pmu.Unlock()

	close(s.stop)
	<-s.finished
	return err
}

// commitLocked snapshots the list, queues a write and releases s.mu before
// notifying the update callback.
func (s *Store) commitLocked() {
	snapshot := s.snapshotLocked()
	callback := s.onUpdate
	s.queueLocked(snapshot)
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// queueLocked hands a snapshot to the writer. Called with s.mu held so that
// snapshots are queued in mutation order.
func (s *Store) queueLocked(items []model.HistoryItem) {
	data, err := encode(items)
	if err != nil {
		log.Printf("Error encoding history: %v", err)
		go s.reportError(fmt.Errorf("history: encode: %w", err))
		return
	}

	s.pmu.Lock()
	if s.closed {
		s.pmu.Unlock()
		log.Printf("History store closed, change kept in memory only")
		return
	}
	s.queued++
	s.pending = data
	s.pmu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// writer persists the latest snapshot whenever kicked. Older snapshots
// queued in between are superseded.
func (s *Store) writer() {
	defer close(s.finished)

	for {
		select {
		case <-s.kick:
			s.writeLatest()
		case <-s.stop:
			s.writeLatest()
			return
		}
	}
}

func (s *Store) writeLatest() {
	s.pmu.Lock()
	if s.written >= s.queued {
		s.pmu.Unlock()
		return
	}
	seq := s.queued
	data := s.pending
	s.pmu.Unlock()

	err := s.backend.Write(s.key, data)
	if err != nil {
		err = fmt.Errorf("history: write %s: %w", s.key, err)
		log.Printf("Error saving history: %v", err)
		s.reportError(err)
	}

	s.pmu.Lock()
	s.written = seq
	s.lastErr = err
	remaining := s.waiters[:0]
	for _, w := range s.waiters {
		if w.seq <= seq {
			close(w.done)
		} else {
			remaining = append(remaining, w)
		}
	}
	s.waiters = remaining
	s.pmu.Unlock()
}

func (s *Store) reportError(err error) {
	s.pmu.Lock()
	callback := s.onError
	s.pmu.Unlock()

	if callback != nil {
		callback(err)
	}
}

// uniqueIDLocked draws IDs until one has never been used by this store
func (s *Store) uniqueIDLocked() string {
	for {
		id := s.newID()
		if id == "" {
			continue
		}
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id
		}
	}
}

func (s *Store) snapshotLocked() []model.HistoryItem {
	return cloneItems(s.items)
}

func cloneItems(items []model.HistoryItem) []model.HistoryItem {
	out := make([]model.HistoryItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
