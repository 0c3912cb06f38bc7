package community

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/internal/models"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	ErrBlocked         = errors.New("this email has been blocked from commenting")
	ErrNotMatchRelated = errors.New("comment must mention teams, players or match events")
	ErrTooShort        = fmt.Errorf("comment must be at least %d characters long", MinCommentLength)
	ErrInvalidUser     = errors.New("a name and a valid email are required")
	ErrNotFound        = errors.New("comment not found")
)

var (
	validate   = validator.New()
	nonIDChars = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

type CommunityRepository interface {
	SignIn(ctx context.Context, name, email string) (*User, error)
	Users(ctx context.Context) ([]User, error)

	PostComment(ctx context.Context, req CommentRequest) (*Comment, error)
	ListComments(ctx context.Context, newestFirst bool) ([]Comment, error)
	DeleteComment(ctx context.Context, id string) error
	// DeleteCommentsBy removes every comment from email and reports how many went.
	DeleteCommentsBy(ctx context.Context, email string) (int, error)
	ClearComments(ctx context.Context) error

	Block(ctx context.Context, email string) error
	Unblock(ctx context.Context, email string) error
	Blocked(ctx context.Context) ([]string, error)

	// CollectedUsers merges sign-ins and comment authors, most recent first.
	CollectedUsers(ctx context.Context) ([]CollectedUser, error)
}

type communityRepository struct {
	store store.Store
	clock clockwork.Clock
}

func NewCommunityRepository(s store.Store, clock clockwork.Clock) CommunityRepository {
	return &communityRepository{store: s, clock: clock}
}

// UserID derives the storage id from an email address.
func UserID(email string) string {
	return nonIDChars.ReplaceAllString(normalizeEmail(email), "_")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkIdentity(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidUser
	}
	if err := validate.Var(strings.TrimSpace(email), "required,email"); err != nil {
		return ErrInvalidUser
	}
	return nil
}

func (r *communityRepository) SignIn(ctx context.Context, name, email string) (*User, error) {
	if err := checkIdentity(name, email); err != nil {
		return nil, err
	}
	u := User{
		ID:         UserID(email),
		Name:       strings.TrimSpace(name),
		Email:      normalizeEmail(email),
		SignedInAt: r.clock.Now().UnixMilli(),
	}
	if err := store.SetJSON(ctx, r.store, store.UserKey(u.ID), u); err != nil {
		return nil, err
	}

	ids, _, err := store.GetJSON[[]string](ctx, r.store, store.UsersListKey)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id == u.ID {
			return &u, nil
		}
	}
	if err := store.SetJSON(ctx, r.store, store.UsersListKey, append(ids, u.ID)); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *communityRepository) Users(ctx context.Context) ([]User, error) {
	ids, _, err := store.GetJSON[[]string](ctx, r.store, store.UsersListKey)
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(ids))
	for _, id := range ids {
		u, found, err := store.GetJSON[User](ctx, r.store, store.UserKey(id))
		if err != nil {
			return nil, err
		}
		if found {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *communityRepository) loadComments(ctx context.Context) ([]Comment, error) {
	comments, _, err := store.GetJSON[[]Comment](ctx, r.store, store.CommentsKey)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if comments[i].ID == "" {
			comments[i].ID = models.FlexString(fmt.Sprintf("legacy-%d", i+1))
		}
	}
	return comments, nil
}

func (r *communityRepository) PostComment(ctx context.Context, req CommentRequest) (*Comment, error) {
	if err := checkIdentity(req.Name, req.Email); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(req.Text)
	if len([]rune(text)) < MinCommentLength {
		return nil, ErrTooShort
	}

	blocked, err := r.Blocked(ctx)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(req.Email)
	for _, b := range blocked {
		if b == email {
			return nil, ErrBlocked
		}
	}
	if !IsMatchRelated(text) {
		return nil, ErrNotMatchRelated
	}

	comments, err := r.loadComments(ctx)
	if err != nil {
		return nil, err
	}
	c := Comment{
		ID:        models.FlexString(uuid.NewString()),
		Author:    strings.TrimSpace(req.Name),
		Email:     email,
		Text:      text,
		Timestamp: r.clock.Now().UnixMilli(),
	}
	if err := store.SetJSON(ctx, r.store, store.CommentsKey, append(comments, c)); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *communityRepository) ListComments(ctx context.Context, newestFirst bool) ([]Comment, error) {
	comments, err := r.loadComments(ctx)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		return []Comment{}, nil
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if newestFirst {
			return comments[i].Timestamp > comments[j].Timestamp
		}
		return comments[i].Timestamp < comments[j].Timestamp
	})
	return comments, nil
}

func (r *communityRepository) DeleteComment(ctx context.Context, id string) error {
	comments, err := r.loadComments(ctx)
	if err != nil {
		return err
	}
	for i := range comments {
		if string(comments[i].ID) == id {
			return store.SetJSON(ctx, r.store, store.CommentsKey, append(comments[:i], comments[i+1:]...))
		}
	}
	return ErrNotFound
}

func (r *communityRepository) DeleteCommentsBy(ctx context.Context, email string) (int, error) {
	comments, err := r.loadComments(ctx)
	if err != nil {
		return 0, err
	}
	target := normalizeEmail(email)
	kept := comments[:0]
	for _, c := range comments {
		if normalizeEmail(c.Email) != target {
			kept = append(kept, c)
		}
	}
	removed := len(comments) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, store.SetJSON(ctx, r.store, store.CommentsKey, kept)
}

func (r *communityRepository) ClearComments(ctx context.Context) error {
	return r.store.Delete(ctx, store.CommentsKey)
}

func (r *communityRepository) Blocked(ctx context.Context) ([]string, error) {
	list, _, err := store.GetJSON[[]string](ctx, r.store, store.BlockedKey)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, normalizeEmail(e))
	}
	return out, nil
}

func (r *communityRepository) Block(ctx context.Context, email string) error {
	list, err := r.Blocked(ctx)
	if err != nil {
		return err
	}
	target := normalizeEmail(email)
	for _, e := range list {
		if e == target {
			return nil
		}
	}
	return store.SetJSON(ctx, r.store, store.BlockedKey, append(list, target))
}

func (r *communityRepository) Unblock(ctx context.Context, email string) error {
	list, err := r.Blocked(ctx)
	if err != nil {
		return err
	}
	target := normalizeEmail(email)
	kept := make([]string, 0, len(list))
	for _, e := range list {
		if e != target {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return store.SetJSON(ctx, r.store, store.BlockedKey, kept)
}

func (r *communityRepository) CollectedUsers(ctx context.Context) ([]CollectedUser, error) {
	users, err := r.Users(ctx)
	if err != nil {
		return nil, err
	}
	comments, err := r.loadComments(ctx)
	if err != nil {
		return nil, err
	}
	blocked, err := r.Blocked(ctx)
	if err != nil {
		return nil, err
	}
	return Collect(users, comments, blocked), nil
}

// Collect folds sign-ins and comments into one row per email, newest first seen first.
func Collect(users []User, comments []Comment, blocked []string) []CollectedUser {
	isBlocked := make(map[string]bool, len(blocked))
	for _, b := range blocked {
		isBlocked[normalizeEmail(b)] = true
	}

	byEmail := make(map[string]*CollectedUser)
	var order []string
	touch := func(name, email string, ts int64) *CollectedUser {
		key := normalizeEmail(email)
		cu, ok := byEmail[key]
		if !ok {
			cu = &CollectedUser{Name: name, Email: key, FirstSeen: ts, LastActive: ts, Blocked: isBlocked[key]}
			byEmail[key] = cu
			order = append(order, key)
		}
		if ts < cu.FirstSeen {
			cu.FirstSeen = ts
		}
		if ts > cu.LastActive {
			cu.LastActive = ts
		}
		return cu
	}

	for _, u := range users {
		touch(u.Name, u.Email, u.SignedInAt)
	}
	for _, c := range comments {
		touch(c.Author, c.Email, c.Timestamp).CommentCount++
	}

	out := make([]CollectedUser, 0, len(order))
	for _, key := range order {
		out = append(out, *byEmail[key])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].FirstSeen > out[j].FirstSeen })
	return out
}
