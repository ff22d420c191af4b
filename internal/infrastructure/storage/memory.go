package storage

import (
	"sync"

	"github.com/slooze/commodity-admin/internal/domain"
)

// MemoryStore implementación en memoria de KeyValue (tests y modo efímero).
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore crea un almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Seed precarga una clave (helper para tests).
func (s *MemoryStore) Seed(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get devuelve el valor de key, o domain.ErrNotFound si no existe.
func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set escribe o reemplaza el valor de key.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Remove elimina key; es idempotente.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
