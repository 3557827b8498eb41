package localstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore implementa Store en memoria. Mismo contrato que SQLiteStore
// (serializa a JSON, así un valor no serializable falla igual en ambos);
// pensado para tests y para el driver "memory".
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemory crea un almacén vacío.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

// Get deserializa el valor de key en out; (false, nil) si está ausente o
// corrupto.
func (s *MemoryStore) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, nil
	}
	return true, nil
}

// Set serializa value y reemplaza lo guardado en key.
func (s *MemoryStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Remove borra el valor de key. Idempotente.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close no hace nada; existe para cumplir Store.
func (s *MemoryStore) Close() error { return nil }
