package world

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu sync.RWMutex
	w  World
}

func NewMemoryRepo(w World) *MemoryRepo {
	return &MemoryRepo{w: w}
}

func (r *MemoryRepo) Get(ctx context.Context) (World, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.w, nil
}

func (r *MemoryRepo) Set(ctx context.Context, w World) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.w = w
	return nil
}
