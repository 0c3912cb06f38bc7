package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/DhavalSuthar-24/crickethub/internal/team"
)

var (
	ErrUnknownTeam = errors.New("unknown team")
	ErrNotFound    = errors.New("player not found")
)

type PlayerRepository interface {
	List(ctx context.Context, teamCode string) ([]Player, error)
	// Save merges incoming players into the bucket by lowercased name, or
	// replaces the bucket when replace is set.
	Save(ctx context.Context, teamCode string, incoming []Player, replace bool) ([]Player, error)
	// Upsert writes one player. A non-empty previousName must name an existing
	// player, which is edited and possibly renamed.
	Upsert(ctx context.Context, teamCode string, p Player, previousName string) (*Player, error)
	Delete(ctx context.Context, teamCode, name string) error
	DeleteAll(ctx context.Context, teamCode string) error
	// CountAll returns squad sizes per team code.
	CountAll(ctx context.Context) (map[string]int, error)
}

type playerRepository struct {
	store store.Store
}

func NewPlayerRepository(s store.Store) PlayerRepository {
	return &playerRepository{store: s}
}

func bucket(teamCode string) (string, error) {
	t, ok := team.Lookup(teamCode)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, teamCode)
	}
	return store.PlayersKey(t.Code), nil
}

func (r *playerRepository) List(ctx context.Context, teamCode string) ([]Player, error) {
	key, err := bucket(teamCode)
	if err != nil {
		return nil, err
	}
	players, _, err := store.GetJSON[[]Player](ctx, r.store, key)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []Player{}
	}
	return players, nil
}

func (r *playerRepository) Save(ctx context.Context, teamCode string, incoming []Player, replace bool) ([]Player, error) {
	key, err := bucket(teamCode)
	if err != nil {
		return nil, err
	}

	var existing []Player
	if !replace {
		existing, _, err = store.GetJSON[[]Player](ctx, r.store, key)
		if err != nil {
			return nil, err
		}
	}

	merged := merge(existing, incoming)
	if err := store.SetJSON(ctx, r.store, key, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *playerRepository) Upsert(ctx context.Context, teamCode string, p Player, previousName string) (*Player, error) {
	key, err := bucket(teamCode)
	if err != nil {
		return nil, err
	}
	existing, _, err := store.GetJSON[[]Player](ctx, r.store, key)
	if err != nil {
		return nil, err
	}

	if prev := identity(previousName); prev != "" {
		at := -1
		for i := range existing {
			if identity(existing[i].Name) == prev {
				at = i
				break
			}
		}
		if at < 0 {
			return nil, ErrNotFound
		}
		if prev != identity(p.Name) {
			// carry the old record over so image and stats survive the rename
			old := existing[at]
			existing = append(existing[:at], existing[at+1:]...)
			p = fill(p, old)
		}
	}

	merged := merge(existing, []Player{p})
	if err := store.SetJSON(ctx, r.store, key, merged); err != nil {
		return nil, err
	}
	for i := range merged {
		if identity(merged[i].Name) == identity(p.Name) {
			return &merged[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *playerRepository) Delete(ctx context.Context, teamCode, name string) error {
	key, err := bucket(teamCode)
	if err != nil {
		return err
	}
	existing, _, err := store.GetJSON[[]Player](ctx, r.store, key)
	if err != nil {
		return err
	}

	id := identity(name)
	kept := make([]Player, 0, len(existing))
	for _, p := range existing {
		if identity(p.Name) != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(existing) {
		return ErrNotFound
	}
	return store.SetJSON(ctx, r.store, key, kept)
}

func (r *playerRepository) DeleteAll(ctx context.Context, teamCode string) error {
	key, err := bucket(teamCode)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, key)
}

func (r *playerRepository) CountAll(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, t := range team.All() {
		players, _, err := store.GetJSON[[]Player](ctx, r.store, store.PlayersKey(t.Code))
		if err != nil {
			return nil, err
		}
		counts[t.Code] = len(players)
	}
	return counts, nil
}

// merge applies incoming over existing. Existing order is kept, new names are
// appended, and a later duplicate in incoming wins.
func merge(existing, incoming []Player) []Player {
	out := make([]Player, 0, len(existing)+len(incoming))
	index := make(map[string]int, len(existing)+len(incoming))
	for _, p := range existing {
		id := identity(p.Name)
		if i, ok := index[id]; ok {
			out[i] = p
			continue
		}
		index[id] = len(out)
		out = append(out, p)
	}

	for _, p := range incoming {
		p.IsForeign = isForeign(p.Nationality)
		id := identity(p.Name)
		if i, ok := index[id]; ok {
			out[i] = fill(p, out[i])
			continue
		}
		index[id] = len(out)
		out = append(out, p)
	}
	return out
}

// fill keeps the image and stats of old when p does not carry its own.
func fill(p, old Player) Player {
	if p.Image == "" {
		p.Image = old.Image
	}
	if p.Stats.IsZero() {
		p.Stats = old.Stats
	}
	return p
}
