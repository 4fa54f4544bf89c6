package gym

import (
	"fmt"

	"fitzone/internal/client"
)

// MemoryRepository keeps clients in insertion order, indexed by phone.
type MemoryRepository struct {
	clients []*client.Client
	byPhone map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byPhone: make(map[string]int),
	}
}

func (r *MemoryRepository) Append(c *client.Client) error {
	if _, ok := r.byPhone[c.Phone()]; ok {
		return fmt.Errorf("%w: %s", ErrPhoneTaken, c.Phone())
	}
	r.byPhone[c.Phone()] = len(r.clients)
	r.clients = append(r.clients, c)
	return nil
}

func (r *MemoryRepository) FindByPhone(phone string) (*client.Client, error) {
	i, ok := r.byPhone[phone]
	if !ok {
		return nil, ErrClientNotFound
	}
	return r.clients[i], nil
}

func (r *MemoryRepository) At(index int) (*client.Client, error) {
	if index < 0 || index >= len(r.clients) {
		return nil, &IndexError{Index: index, Count: len(r.clients)}
	}
	return r.clients[index], nil
}

func (r *MemoryRepository) All() []*client.Client {
	out := make([]*client.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

func (r *MemoryRepository) Count() int {
	return len(r.clients)
}
