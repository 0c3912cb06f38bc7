package livematch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/models"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/DhavalSuthar-24/crickethub/internal/team"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var ErrNotFound = errors.New("item not found")

type LiveMatchRepository interface {
	// Get returns nil when no live match has been saved.
	Get(ctx context.Context) (*LiveMatch, error)
	// Save overwrites the document and stamps LastUpdated.
	Save(ctx context.Context, m LiveMatch) (*LiveMatch, error)
	Clear(ctx context.Context) error
	SetLive(ctx context.Context, live bool) (*LiveMatch, error)

	// ListCommentary returns a newest-first copy.
	ListCommentary(ctx context.Context) ([]Commentary, error)
	AddCommentary(ctx context.Context, req CommentaryRequest) (*Commentary, error)
	DeleteCommentary(ctx context.Context, id string) error
	ClearCommentary(ctx context.Context) error

	ListMoments(ctx context.Context) ([]KeyMoment, error)
	AddMoment(ctx context.Context, req MomentRequest) (*KeyMoment, error)
	DeleteMoment(ctx context.Context, id string) error
	ClearMoments(ctx context.Context) error
}

type liveMatchRepository struct {
	store store.Store
	clock clockwork.Clock
}

func NewLiveMatchRepository(s store.Store, clock clockwork.Clock) LiveMatchRepository {
	return &liveMatchRepository{store: s, clock: clock}
}

func (r *liveMatchRepository) Get(ctx context.Context) (*LiveMatch, error) {
	m, found, err := store.GetJSON[LiveMatch](ctx, r.store, store.LiveMatchKey)
	if err != nil || !found {
		return nil, err
	}
	return &m, nil
}

func (r *liveMatchRepository) Save(ctx context.Context, m LiveMatch) (*LiveMatch, error) {
	m.Team1 = normalizeTeam(m.Team1)
	m.Team2 = normalizeTeam(m.Team2)
	m.LastUpdated = r.clock.Now().UTC()
	if err := store.SetJSON(ctx, r.store, store.LiveMatchKey, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *liveMatchRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.LiveMatchKey)
}

func (r *liveMatchRepository) SetLive(ctx context.Context, live bool) (*LiveMatch, error) {
	m, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = &LiveMatch{}
	}
	m.IsLive = live
	return r.Save(ctx, *m)
}

func normalizeTeam(code string) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	return team.Normalize(code)
}

// stored order is append order; older documents may lack IDs.
func (r *liveMatchRepository) loadCommentary(ctx context.Context) ([]Commentary, error) {
	items, _, err := store.GetJSON[[]Commentary](ctx, r.store, store.CommentaryKey)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = models.FlexString(fmt.Sprintf("legacy-%d", i+1))
		}
	}
	return items, nil
}

func (r *liveMatchRepository) ListCommentary(ctx context.Context) ([]Commentary, error) {
	items, err := r.loadCommentary(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Commentary, len(items))
	for i := range items {
		out[len(items)-1-i] = items[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (r *liveMatchRepository) AddCommentary(ctx context.Context, req CommentaryRequest) (*Commentary, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, errors.New("commentary text is required")
	}
	if req.Over < 0 || req.Over > MaxOver {
		return nil, fmt.Errorf("over %v outside 0..%d", float64(req.Over), MaxOver)
	}

	items, err := r.loadCommentary(ctx)
	if err != nil {
		return nil, err
	}
	c := Commentary{
		ID:        models.FlexString(uuid.NewString()),
		Over:      req.Over,
		Text:      text,
		Timestamp: r.clock.Now().UnixMilli(),
	}
	items = append(items, c)
	if err := store.SetJSON(ctx, r.store, store.CommentaryKey, items); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *liveMatchRepository) DeleteCommentary(ctx context.Context, id string) error {
	items, err := r.loadCommentary(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if string(items[i].ID) == id {
			return store.SetJSON(ctx, r.store, store.CommentaryKey, append(items[:i], items[i+1:]...))
		}
	}
	return ErrNotFound
}

func (r *liveMatchRepository) ClearCommentary(ctx context.Context) error {
	return r.store.Delete(ctx, store.CommentaryKey)
}

func (r *liveMatchRepository) loadMoments(ctx context.Context) ([]KeyMoment, error) {
	items, _, err := store.GetJSON[[]KeyMoment](ctx, r.store, store.KeyMomentsKey)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = models.FlexString(fmt.Sprintf("legacy-%d", i+1))
		}
	}
	return items, nil
}

func (r *liveMatchRepository) ListMoments(ctx context.Context) ([]KeyMoment, error) {
	items, err := r.loadMoments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]KeyMoment, len(items))
	for i := range items {
		out[len(items)-1-i] = items[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (r *liveMatchRepository) AddMoment(ctx context.Context, req MomentRequest) (*KeyMoment, error) {
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return nil, errors.New("moment description is required")
	}
	switch req.Type {
	case MomentWicket, MomentFour, MomentSix, MomentMilestone:
	default:
		return nil, fmt.Errorf("unknown moment type %q", req.Type)
	}

	items, err := r.loadMoments(ctx)
	if err != nil {
		return nil, err
	}
	m := KeyMoment{
		ID:          models.FlexString(uuid.NewString()),
		Type:        req.Type,
		Description: desc,
		Over:        req.Over,
		Timestamp:   r.clock.Now().UnixMilli(),
	}
	items = append(items, m)
	if err := store.SetJSON(ctx, r.store, store.KeyMomentsKey, items); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *liveMatchRepository) DeleteMoment(ctx context.Context, id string) error {
	items, err := r.loadMoments(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if string(items[i].ID) == id {
			return store.SetJSON(ctx, r.store, store.KeyMomentsKey, append(items[:i], items[i+1:]...))
		}
	}
	return ErrNotFound
}

func (r *liveMatchRepository) ClearMoments(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyMomentsKey)
}
