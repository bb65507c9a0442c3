package enclosure

import "context"

type Repository interface {
	Create(ctx context.Context, e Enclosure) (Enclosure, error)
	Get(ctx context.Context, id int) (Enclosure, bool, error)
	List(ctx context.Context) ([]Enclosure, error)
	Update(ctx context.Context, e Enclosure) (Enclosure, error)
}
