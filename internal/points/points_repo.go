package points

import (
	"context"

	"github.com/DhavalSuthar-24/crickethub/internal/store"
)

type PointsRepository interface {
	List(ctx context.Context) ([]Row, error)
	// Replace overwrites the whole table.
	Replace(ctx context.Context, entries []Entry) ([]Row, error)
	Clear(ctx context.Context) error
}

type pointsRepository struct {
	store store.Store
}

func NewPointsRepository(s store.Store) PointsRepository {
	return &pointsRepository{store: s}
}

func (r *pointsRepository) List(ctx context.Context) ([]Row, error) {
	rows, _, err := store.GetJSON[[]Row](ctx, r.store, store.PointsTableKey)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

func (r *pointsRepository) Replace(ctx context.Context, entries []Entry) ([]Row, error) {
	rows := Build(entries)
	if err := store.SetJSON(ctx, r.store, store.PointsTableKey, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pointsRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.PointsTableKey)
}
