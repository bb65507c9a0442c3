package worker

import (
	"context"
	"fmt"
	"sync"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	m     map[string]Worker
	order []string // hire order, for stable listing
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[string]Worker{}}
}

func (r *MemoryRepo) Add(ctx context.Context, w Worker) (Worker, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[w.ID]; !ok {
		r.order = append(r.order, w.ID)
	}
	r.m[w.ID] = w
	return w, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Worker, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.m[id]
	return w, ok, nil
}

// List returns workers in hire order.
func (r *MemoryRepo) List(ctx context.Context) ([]Worker, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Worker, 0, len(r.m))
	for _, id := range r.order {
		if w, ok := r.m[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, w Worker) (Worker, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[w.ID]; !ok {
		return Worker{}, fmt.Errorf("worker not found: %s", w.ID)
	}
	r.m[w.ID] = w
	return w, nil
}

func (r *MemoryRepo) UpdateMany(ctx context.Context, ws []Worker) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range ws {
		r.m[w.ID] = w
	}
	return nil
}

func (r *MemoryRepo) Remove(ctx context.Context, id string) (bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[id]; !ok {
		return false, nil
	}
	delete(r.m, id)
	out := make([]string, 0, len(r.order))
	for _, oid := range r.order {
		if oid != id {
			out = append(out, oid)
		}
	}
	r.order = out
	return true, nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m), nil
}
