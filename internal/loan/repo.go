package loan

import "context"

type Repository interface {
	Add(ctx context.Context, l Loan) (Loan, error)
	List(ctx context.Context) ([]Loan, error)
	Update(ctx context.Context, l Loan) (Loan, error)
	// PurgeSettled drops every loan with no days left and reports how
	// many were removed.
	PurgeSettled(ctx context.Context) (int, error)
}
