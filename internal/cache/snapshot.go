package cache

import (
	"sync"
	"time"
)

// Snapshot guarda um único valor, sem expiração, até ser limpo explicitamente
type Snapshot[T any] struct {
	mu       sync.RWMutex
	data     T
	loaded   bool
	loadedAt time.Time
	now      func() time.Time
}

func NewSnapshot[T any]() *Snapshot[T] {
	return &Snapshot[T]{now: time.Now}
}

// Get retorna o valor armazenado e se ele existe
func (s *Snapshot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data, s.loaded
}

// Set substitui o valor armazenado
func (s *Snapshot[T]) Set(data T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
	s.loaded = true
	s.loadedAt = s.now()
}

// Clear descarta o valor. Chamar em um cache vazio não tem efeito.
func (s *Snapshot[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	s.data = zero
	s.loaded = false
	s.loadedAt = time.Time{}
}

// LoadedAt retorna o instante do último Set, ou zero se vazio
func (s *Snapshot[T]) LoadedAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt, s.loaded
}
