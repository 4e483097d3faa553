package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	s := NewSnapshot[[]int]()
	s.now = func() time.Time { return fixed }

	_, ok := s.Get()
	assert.False(t, ok)
	_, ok = s.LoadedAt()
	assert.False(t, ok)

	s.Set([]int{1, 2, 3})
	data, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, data)

	loadedAt, ok := s.LoadedAt()
	assert.True(t, ok)
	assert.Equal(t, fixed, loadedAt)

	s.Clear()
	data, ok = s.Get()
	assert.False(t, ok)
	assert.Nil(t, data)

	// limpar duas vezes não tem efeito
	s.Clear()
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestSnapshot_Concurrent(t *testing.T) {
	s := NewSnapshot[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			s.Set(v)
		}(i)
		go func() {
			defer wg.Done()
			s.Get()
		}()
	}
	wg.Wait()

	_, ok := s.Get()
	assert.True(t, ok)
}
