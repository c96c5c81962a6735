package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryMailbox implementa Mailbox em memória de processo. Usado em
// desenvolvimento e testes, quando REDIS_ADDR não está configurado;
// não sobrevive a reinícios nem compartilha estado entre réplicas.
type MemoryMailbox struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryMailbox cria um novo MemoryMailbox
func NewMemoryMailbox() *MemoryMailbox {
	return &MemoryMailbox{entries: make(map[string]memoryEntry)}
}

// Put implementa Mailbox.Put
func (m *MemoryMailbox) Put(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)

	m.entries[key] = memoryEntry{value: v, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Take implementa Mailbox.Take
func (m *MemoryMailbox) Take(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.entries, key)

	if time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}
	return entry.value, nil
}
