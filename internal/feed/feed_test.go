package feed

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/livematch"
	"github.com/DhavalSuthar-24/crickethub/internal/models"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/DhavalSuthar-24/crickethub/internal/store/storetest"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) listen(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type harness struct {
	flaky *storetest.Flaky
	clock *clockwork.FakeClock
	repo  livematch.LiveMatchRepository
}

func newFixture() *harness {
	flaky := storetest.NewFlaky(store.NewMemoryStore())
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 12, 14, 0, 0, 0, time.UTC))
	return &harness{flaky: flaky, clock: clock, repo: livematch.NewLiveMatchRepository(flaky, clock)}
}

func (f *harness) post(t *testing.T, over float64, text string) *livematch.Commentary {
	t.Helper()
	c, err := f.repo.AddCommentary(context.Background(), livematch.CommentaryRequest{Over: models.FlexFloat(over), Text: text})
	require.NoError(t, err)
	return c
}

func TestSessionStateMachine(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rec := &recorder{}
	s := NewSession(f.repo, WithClock(f.clock), WithListener(rec.listen))
	assert.Equal(t, Idle, s.State())

	f.post(t, 1, "good length ball")
	f.post(t, 1.1, "four through point")

	s.Load(ctx)
	assert.Equal(t, Watching, s.State())
	snap := s.Snapshot()
	assert.Equal(t, 2, snap.LastSeen)
	assert.False(t, snap.Banner)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "four through point", snap.Items[0].Text)
	assert.Equal(t, "⚡ Powerplay action! FOUR! through point What a shot! The crowd is on their feet!", snap.Items[0].Enhanced)
	assert.Equal(t, 1, rec.count(EventRender))

	// nothing new
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 1, rec.count(EventRender))

	f.post(t, 1.2, "wicket! bowled him")
	assert.True(t, s.Tick(ctx))
	assert.Equal(t, Notifying, s.State())
	assert.Equal(t, 3, s.Snapshot().LastSeen)
	assert.Equal(t, BannerText, s.Snapshot().BannerText)
	assert.Equal(t, 1, rec.count(EventBanner))

	// polling continues while notifying without raising the banner again
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 1, rec.count(EventBanner))

	assert.True(t, s.Dismiss())
	assert.Equal(t, Watching, s.State())
	assert.Len(t, s.Snapshot().Items, 3)
	assert.False(t, s.Tick(ctx))
	assert.False(t, s.Dismiss())
	assert.False(t, s.ExpireBanner())
	assert.Equal(t, 1, rec.count(EventBanner))
}

func TestSessionGrowthWhileNotifyingRaisesAgain(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rec := &recorder{}
	s := NewSession(f.repo, WithClock(f.clock), WithListener(rec.listen))
	s.Load(ctx)

	f.post(t, 2, "single")
	require.True(t, s.Tick(ctx))
	f.post(t, 2.1, "another single")
	require.True(t, s.Tick(ctx))
	assert.Equal(t, 2, rec.count(EventBanner))
	assert.Equal(t, 2, s.Snapshot().LastSeen)
}

func TestSessionShrinkAndFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rec := &recorder{}
	s := NewSession(f.repo, WithClock(f.clock), WithListener(rec.listen))

	first := f.post(t, 3, "dot ball")
	f.post(t, 3.1, "another dot")
	s.Load(ctx)

	f.flaky.SetDown(true)
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 1, rec.count(EventError))
	assert.Equal(t, ErrorPlaceholder, rec.last().Snapshot.Placeholder)
	assert.Equal(t, Watching, s.State())

	// a second failure does not repeat the error event
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 1, rec.count(EventError))

	f.flaky.SetDown(false)
	assert.False(t, s.Tick(ctx))
	assert.Empty(t, rec.last().Snapshot.Placeholder)
	assert.Equal(t, EventRender, rec.last().Kind)

	require.NoError(t, f.repo.DeleteCommentary(ctx, string(first.ID)))
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, Watching, s.State())
	assert.Equal(t, 1, s.Snapshot().LastSeen)
	assert.Equal(t, 0, rec.count(EventBanner))

	// growing back past the lowered count is new commentary
	f.post(t, 3.2, "six over cover")
	assert.True(t, s.Tick(ctx))
}

func TestSessionLoadFailureStillWatches(t *testing.T) {
	f := newFixture()
	f.flaky.SetDown(true)
	rec := &recorder{}
	s := NewSession(f.repo, WithClock(f.clock), WithListener(rec.listen))

	s.Load(context.Background())
	assert.Equal(t, Watching, s.State())
	assert.Equal(t, EventError, rec.last().Kind)
	assert.Equal(t, ErrorPlaceholder, s.Snapshot().Placeholder)
}

func TestSessionFirstFetchAfterFailedLoadIsBaseline(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rec := &recorder{}
	s := NewSession(f.repo, WithClock(f.clock), WithListener(rec.listen))

	f.post(t, 7, "quick single")
	f.post(t, 7.1, "dot ball")
	f.flaky.SetDown(true)
	s.Load(ctx)
	require.Equal(t, EventError, rec.last().Kind)

	// nothing posted while the store was down
	f.flaky.SetDown(false)
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, Watching, s.State())
	assert.Equal(t, 2, s.Snapshot().LastSeen)
	assert.Equal(t, EventRender, rec.last().Kind)
	assert.Len(t, rec.last().Snapshot.Items, 2)
	assert.Equal(t, 0, rec.count(EventBanner))

	f.post(t, 7.2, "four down the ground")
	assert.True(t, s.Tick(ctx))
	assert.Equal(t, 1, rec.count(EventBanner))
}

func TestSessionResyncReemitsSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	rec := &recorder{}
	s := NewSession(f.repo, WithClock(f.clock), WithListener(rec.listen))
	s.Load(ctx)

	f.post(t, 8, "six into the stands")
	require.True(t, s.Tick(ctx))
	require.Equal(t, 1, rec.count(EventBanner))

	// unchanged list and no resync: nothing to send
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 1, rec.count(EventBanner))

	s.Resync()
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 2, rec.count(EventBanner))
	assert.True(t, rec.last().Snapshot.Banner)
	assert.Len(t, rec.last().Snapshot.Items, 1)

	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 2, rec.count(EventBanner))

	require.True(t, s.Dismiss())
	renders := rec.count(EventRender)
	s.Resync()
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, renders+1, rec.count(EventRender))

	// a dropped error event is repeated on the next failed poll
	f.flaky.SetDown(true)
	assert.False(t, s.Tick(ctx))
	s.Resync()
	assert.False(t, s.Tick(ctx))
	assert.Equal(t, 2, rec.count(EventError))
}

func TestRunTimersAndTeardown(t *testing.T) {
	f := newFixture()
	rec := &recorder{}
	s := NewSession(f.repo,
		WithClock(f.clock),
		WithInterval(10*time.Second),
		WithBannerDuration(5*time.Second),
		WithListener(rec.listen),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return rec.count(EventRender) == 1 }, time.Second, 5*time.Millisecond)
	f.clock.BlockUntil(1)

	f.post(t, 5, "six over midwicket")
	f.clock.Advance(10 * time.Second)
	require.Eventually(t, func() bool { return rec.count(EventBanner) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, Notifying, s.State())

	// ticker plus banner timer
	f.clock.BlockUntil(2)
	f.clock.Advance(5 * time.Second)
	require.Eventually(t, func() bool { return s.State() == Watching }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, rec.count(EventBanner))

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.Equal(t, Closed, s.State())

	gets := f.flaky.Gets()
	f.clock.Advance(time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, gets, f.flaky.Gets(), "polled after teardown")
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	s := NewSession(newFixture().repo)
	reg.Add(s)
	got, ok := reg.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)
	reg.Remove(s.ID())
	assert.Equal(t, 0, reg.Len())
}

func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\r\n")
		switch {
		case line == "":
			if name != "" {
				return name, data
			}
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
}

func TestStreamAndDismissEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newFixture()
	f.post(t, 12, "steady single")

	cfg := &config.Config{}
	cfg.Feed.PollIntervalSeconds = 10
	cfg.Feed.BannerSeconds = 5
	cfg.Match.Timezone = "UTC"

	registry := NewRegistry()
	r := gin.New()
	RegisterFeedRoutes(&r.RouterGroup, r.Group("/api"), f.repo, registry, cfg, f.clock)
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/live/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	name, data := readEvent(t, reader)
	require.Equal(t, "session", name)
	var opened struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(data), &opened))
	require.NotEmpty(t, opened.ID)

	name, data = readEvent(t, reader)
	require.Equal(t, EventRender, name)
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(data), &snap))
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "steady single", snap.Items[0].Text)
	assert.Equal(t, 1, registry.Len())

	dismiss, err := http.Post(srv.URL+"/api/live/sessions/"+opened.ID+"/dismiss", "application/json", nil)
	require.NoError(t, err)
	dismiss.Body.Close()
	assert.Equal(t, http.StatusOK, dismiss.StatusCode)

	missing, err := http.Post(srv.URL+"/api/live/sessions/nope/dismiss", "application/json", nil)
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)

	cancel()
	require.Eventually(t, func() bool { return registry.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}
