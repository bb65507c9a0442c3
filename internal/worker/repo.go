package worker

import "context"

type Repository interface {
	Add(ctx context.Context, w Worker) (Worker, error)
	Get(ctx context.Context, id string) (Worker, bool, error)
	List(ctx context.Context) ([]Worker, error)
	Update(ctx context.Context, w Worker) (Worker, error)
	UpdateMany(ctx context.Context, ws []Worker) error
	Remove(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
