package fixture

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("fixture not found")

type FixtureRepository interface {
	List(ctx context.Context) ([]Fixture, error)
	ReplaceAll(ctx context.Context, fixtures []Fixture) ([]Fixture, error)
	Add(ctx context.Context, f Fixture) (*Fixture, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	SetOverride(ctx context.Context, id, override string) (*Fixture, error)
}

type fixtureRepository struct {
	store store.Store
}

func NewFixtureRepository(s store.Store) FixtureRepository {
	return &fixtureRepository{store: s}
}

// List returns fixtures in stored order. Documents written before fixtures
// carried IDs get positional ones ("legacy-1", ...) until the next write.
func (r *fixtureRepository) List(ctx context.Context) ([]Fixture, error) {
	fixtures, _, err := store.GetJSON[[]Fixture](ctx, r.store, store.FixturesKey)
	if err != nil {
		return nil, err
	}
	if fixtures == nil {
		return []Fixture{}, nil
	}
	for i := range fixtures {
		if fixtures[i].ID == "" {
			fixtures[i].ID = fmt.Sprintf("legacy-%d", i+1)
		}
	}
	return fixtures, nil
}

func (r *fixtureRepository) save(ctx context.Context, fixtures []Fixture) error {
	return store.SetJSON(ctx, r.store, store.FixturesKey, fixtures)
}

func (r *fixtureRepository) ReplaceAll(ctx context.Context, fixtures []Fixture) ([]Fixture, error) {
	out := make([]Fixture, len(fixtures))
	for i, f := range fixtures {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		out[i] = f
	}
	if err := r.save(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fixtureRepository) Add(ctx context.Context, f Fixture) (*Fixture, error) {
	fixtures, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	f.ID = uuid.NewString()
	fixtures = append(fixtures, f)
	if err := r.save(ctx, fixtures); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fixtureRepository) Delete(ctx context.Context, id string) error {
	fixtures, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range fixtures {
		if fixtures[i].ID == id {
			return r.save(ctx, append(fixtures[:i], fixtures[i+1:]...))
		}
	}
	return ErrNotFound
}

func (r *fixtureRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.FixturesKey)
}

func (r *fixtureRepository) SetOverride(ctx context.Context, id, override string) (*Fixture, error) {
	fixtures, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range fixtures {
		if fixtures[i].ID == id {
			fixtures[i].Override = override
			if err := r.save(ctx, fixtures); err != nil {
				return nil, err
			}
			return &fixtures[i], nil
		}
	}
	return nil, ErrNotFound
}
