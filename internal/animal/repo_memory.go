package animal

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryRepo owns the monotonic animal ID sequence for one zoo. IDs
// start at 1 and are never reused.
type MemoryRepo struct {
	mu     sync.RWMutex
	m      map[int]Animal
	nextID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[int]Animal{}, nextID: 1}
}

// Add assigns the next identity and stores the animal.
func (r *MemoryRepo) Add(ctx context.Context, a Animal) (Animal, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.m[a.ID] = a
	return a, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id int) (Animal, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.m[id]
	return a, ok, nil
}

// List returns all animals in registry order (ascending ID).
func (r *MemoryRepo) List(ctx context.Context) ([]Animal, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Animal, 0, len(r.m))
	for _, a := range r.m {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, a Animal) (Animal, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[a.ID]; !ok {
		return Animal{}, fmt.Errorf("animal not found: %d", a.ID)
	}
	r.m[a.ID] = a
	return a, nil
}

func (r *MemoryRepo) Remove(ctx context.Context, id int) (bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[id]; !ok {
		return false, nil
	}
	delete(r.m, id)
	return true, nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m), nil
}
