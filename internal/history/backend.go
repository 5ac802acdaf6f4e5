package history

import (
	"sync"

	"fyne.io/fyne/v2"
)

// PreferencesBackend stores the history in the app's Fyne preferences,
// which are durable on every platform Fyne targets.
type PreferencesBackend struct {
	prefs fyne.Preferences
}

// NewPreferencesBackend creates a backend on top of app preferences
func NewPreferencesBackend(prefs fyne.Preferences) *PreferencesBackend {
	return &PreferencesBackend{prefs: prefs}
}

// Read returns the stored blob, ok is false if the key is unset
func (b *PreferencesBackend) Read(key string) ([]byte, bool, error) {
	value := b.prefs.String(key)
	if value == "" {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Write replaces the stored blob
func (b *PreferencesBackend) Write(key string, data []byte) error {
	b.prefs.SetString(key, string(data))
	return nil
}

// MemoryBackend keeps data in memory. ReadErr and WriteErr, when set, are
// returned by the corresponding calls.
type MemoryBackend struct {
	mu       sync.Mutex
	data     map[string][]byte
	writes   int
	ReadErr  error
	WriteErr error
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// Read returns a copy of the stored blob
func (b *MemoryBackend) Read(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ReadErr != nil {
		return nil, false, b.ReadErr
	}
	data, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Write stores a copy of data
func (b *MemoryBackend) Write(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.writes++
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.data[key] = append([]byte(nil), data...)
	return nil
}

// Set seeds raw data under key
func (b *MemoryBackend) Set(key string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = append([]byte(nil), data...)
}

// Writes returns the number of Write calls, failed ones included
func (b *MemoryBackend) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

// SetWriteErr changes the write failure under the backend lock
func (b *MemoryBackend) SetWriteErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.WriteErr = err
}
