package enclosure

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryRepo owns the monotonic enclosure ID sequence for one zoo.
type MemoryRepo struct {
	mu     sync.RWMutex
	m      map[int]Enclosure
	nextID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[int]Enclosure{}, nextID: 1}
}

func (r *MemoryRepo) Create(ctx context.Context, e Enclosure) (Enclosure, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	r.m[e.ID] = e
	return e, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (Enclosure, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.m[id]
	return e, ok, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Enclosure, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Enclosure, 0, len(r.m))
	for _, e := range r.m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, e Enclosure) (Enclosure, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[e.ID]; !ok {
		return Enclosure{}, fmt.Errorf("enclosure not found: %d", e.ID)
	}
	r.m[e.ID] = e
	return e, nil
}
