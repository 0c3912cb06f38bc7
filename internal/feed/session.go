// Package feed runs one live-commentary session per viewer: it polls the
// commentary list, re-renders it newest first and raises a banner when the
// list grows.
package feed

import (
	"context"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/crickethub/internal/livematch"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type State int

const (
	Idle State = iota
	Watching
	Notifying
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Watching:
		return "watching"
	case Notifying:
		return "notifying"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

const (
	DefaultInterval       = 10 * time.Second
	DefaultBannerDuration = 5 * time.Second

	EmptyPlaceholder = "Waiting for live commentary..."
	ErrorPlaceholder = "Commentary is temporarily unavailable. Retrying shortly."
	BannerText       = "New commentary added!"
)

// Event kinds sent to listeners.
const (
	EventRender = "render"
	EventBanner = "banner"
	EventError  = "error"
)

// CommentarySource is the read side of the commentary store.
type CommentarySource interface {
	ListCommentary(ctx context.Context) ([]livematch.Commentary, error)
}

// Snapshot is what a viewer currently sees.
type Snapshot struct {
	State       string                     `json:"state"`
	Items       []livematch.CommentaryView `json:"items"`
	Banner      bool                       `json:"banner"`
	BannerText  string                     `json:"bannerText,omitempty"`
	LastSeen    int                        `json:"lastSeen"`
	Placeholder string                     `json:"placeholder,omitempty"`
}

type Event struct {
	Kind     string
	Snapshot Snapshot
}

type Listener func(Event)

type Option func(*Session)

func WithClock(c clockwork.Clock) Option {
	return func(s *Session) { s.clock = c }
}

func WithInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithBannerDuration(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.bannerDuration = d
		}
	}
}

// WithLocation sets the zone used for "03:04 PM" style timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Session) { s.loc = loc }
}

func WithListener(l Listener) Option {
	return func(s *Session) { s.listener = l }
}

type Session struct {
	id             string
	source         CommentarySource
	clock          clockwork.Clock
	interval       time.Duration
	bannerDuration time.Duration
	loc            *time.Location
	listener       Listener

	mu       sync.Mutex
	state    State
	lastSeen int
	items    []livematch.Commentary
	failed   bool
	// loaded is set by the first successful fetch, which only fixes lastSeen.
	loaded bool
	// stale marks a snapshot the viewer never received.
	stale bool
}

func NewSession(source CommentarySource, opts ...Option) *Session {
	s := &Session{
		id:             uuid.NewString(),
		source:         source,
		clock:          clockwork.NewRealClock(),
		interval:       DefaultInterval,
		bannerDuration: DefaultBannerDuration,
		loc:            time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot renders the current view. Items are enhanced copies; stored
// text is untouched.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:    s.state.String(),
		Items:    livematch.Views(s.items, true, s.clock.Now(), s.loc),
		Banner:   s.state == Notifying,
		LastSeen: s.lastSeen,
	}
	if snap.Banner {
		snap.BannerText = BannerText
	}
	switch {
	case s.failed:
		snap.Placeholder = ErrorPlaceholder
	case len(s.items) == 0:
		snap.Placeholder = EmptyPlaceholder
	}
	return snap
}

func (s *Session) emit(kind string, snap Snapshot) {
	if s.listener != nil {
		s.listener(Event{Kind: kind, Snapshot: snap})
	}
}

// Load does the first fetch and moves the session to Watching. A failed
// fetch still moves on; the next tick retries.
func (s *Session) Load(ctx context.Context) {
	items, err := s.source.ListCommentary(ctx)

	s.mu.Lock()
	if s.state == Closed {
		s.mu.Unlock()
		return
	}
	s.state = Watching
	kind := EventRender
	if err != nil {
		logger.Error("feed %s: initial load failed: %v", s.id, err)
		s.failed = true
		kind = EventError
	} else {
		s.failed = false
		s.loaded = true
		s.items = items
		s.lastSeen = len(items)
	}
	s.stale = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(kind, snap)
}

// Resync asks for the full snapshot to be emitted again on the next tick,
// even if the list is unchanged.
func (s *Session) Resync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
}

// Tick polls once. It reports whether the list grew, which raises the banner.
func (s *Session) Tick(ctx context.Context) bool {
	items, err := s.source.ListCommentary(ctx)

	s.mu.Lock()
	if s.state == Closed || s.state == Idle {
		s.mu.Unlock()
		return false
	}
	if err != nil {
		logger.Error("feed %s: poll failed: %v", s.id, err)
		notify := !s.failed || s.stale
		s.failed = true
		s.stale = false
		snap := s.snapshotLocked()
		s.mu.Unlock()
		if notify {
			s.emit(EventError, snap)
		}
		return false
	}

	recovered := s.failed
	s.failed = false
	n := len(items)
	if !s.loaded {
		// the initial load failed; this fetch is the baseline, not growth
		s.loaded = true
		s.items = items
		s.lastSeen = n
		s.stale = false
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.emit(EventRender, snap)
		return false
	}

	switch {
	case n > s.lastSeen:
		s.state = Notifying
		s.items = items
		s.lastSeen = n
		s.stale = false
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.emit(EventBanner, snap)
		return true
	case n < s.lastSeen || recovered || s.stale || changed(s.items, items):
		s.items = items
		s.lastSeen = n
		s.stale = false
		kind := EventRender
		if s.state == Notifying {
			kind = EventBanner
		}
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.emit(kind, snap)
		return false
	default:
		s.mu.Unlock()
		return false
	}
}

func changed(old, cur []livematch.Commentary) bool {
	if len(old) != len(cur) {
		return true
	}
	for i := range old {
		if old[i].ID != cur[i].ID {
			return true
		}
	}
	return false
}

// Dismiss hides the banner at once. It reports whether a banner was showing.
func (s *Session) Dismiss() bool {
	return s.hideBanner()
}

// ExpireBanner is Dismiss driven by the banner timer.
func (s *Session) ExpireBanner() bool {
	return s.hideBanner()
}

func (s *Session) hideBanner() bool {
	s.mu.Lock()
	if s.state != Notifying {
		s.mu.Unlock()
		return false
	}
	s.state = Watching
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(EventRender, snap)
	return true
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Closed
}

// Run loads, then polls every interval until ctx is done. The poll ticker
// and banner timer are stopped before Run returns.
func (s *Session) Run(ctx context.Context) error {
	s.Load(ctx)

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	var banner clockwork.Timer
	var bannerC <-chan time.Time
	defer func() {
		if banner != nil {
			banner.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.close()
			return ctx.Err()
		case <-ticker.Chan():
			if ctx.Err() != nil {
				continue
			}
			if s.Tick(ctx) {
				if banner != nil {
					banner.Stop()
				}
				banner = s.clock.NewTimer(s.bannerDuration)
				bannerC = banner.Chan()
			}
		case <-bannerC:
			bannerC = nil
			s.ExpireBanner()
		}
	}
}
