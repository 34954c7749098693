package localstorage

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// Persisted slice keys. Each holds a JSON snapshot of one store slice.
const (
	KeyCartItems       = "cartItems"
	KeyUserInfo        = "userInfo"
	KeyShippingAddress = "shippingAddress"
	KeyPaymentMethod   = "paymentMethod"
)

// Storage is a JSON-file-backed key/value cache standing in for the
// browser's localStorage. Writes go through to disk immediately; the
// whole file is read once at Open.
type Storage struct {
	path string

	mu    sync.Mutex
	items map[string]json.RawMessage
}

func Open(path string) (*Storage, error) {
	s := &Storage{path: path, items: map[string]json.RawMessage{}}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.items); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetItem stores the JSON serialization of value under key and flushes.
func (s *Storage) SetItem(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = encoded
	return s.flush()
}

// GetItem decodes the stored value into out, reporting whether the key
// was present.
func (s *Storage) GetItem(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.items[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *Storage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return s.flush()
}

// flush writes the whole map back. Caller holds the lock.
func (s *Storage) flush() error {
	encoded, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, encoded, 0o644)
}
