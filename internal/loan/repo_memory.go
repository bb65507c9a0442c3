package loan

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu     sync.RWMutex
	m      map[int]Loan
	nextID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{m: map[int]Loan{}, nextID: 1}
}

func (r *MemoryRepo) Add(ctx context.Context, l Loan) (Loan, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = r.nextID
	r.nextID++
	r.m[l.ID] = l
	return l, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Loan, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Loan, 0, len(r.m))
	for _, l := range r.m {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, l Loan) (Loan, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.m[l.ID]; !ok {
		return Loan{}, fmt.Errorf("loan not found: %d", l.ID)
	}
	r.m[l.ID] = l
	return l, nil
}

func (r *MemoryRepo) PurgeSettled(ctx context.Context) (int, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for id, l := range r.m {
		if l.DaysLeft <= 0 {
			delete(r.m, id)
			purged++
		}
	}
	return purged, nil
}
