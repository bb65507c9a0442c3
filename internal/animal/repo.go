package animal

import "context"

// Repository is the top-level animal registry: the single source of
// truth for animal state. Enclosures only hold resident IDs.
type Repository interface {
	Add(ctx context.Context, a Animal) (Animal, error)
	Get(ctx context.Context, id int) (Animal, bool, error)
	List(ctx context.Context) ([]Animal, error)
	Update(ctx context.Context, a Animal) (Animal, error)
	Remove(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int, error)
}
