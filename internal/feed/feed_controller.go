package feed

import (
	"context"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

const eventBuffer = 16

type FeedController struct {
	source         CommentarySource
	registry       *Registry
	clock          clockwork.Clock
	interval       time.Duration
	bannerDuration time.Duration
	loc            *time.Location
}

func NewFeedController(source CommentarySource, registry *Registry, appConfig *config.Config, clock clockwork.Clock) *FeedController {
	return &FeedController{
		source:         source,
		registry:       registry,
		clock:          clock,
		interval:       appConfig.FeedPollInterval(),
		bannerDuration: appConfig.FeedBannerDuration(),
		loc:            appConfig.MatchLocation(),
	}
}

// Stream godoc
// @Summary Live commentary feed
// @Description Server-sent events: session (id), render, banner and error, each carrying a snapshot.
// @Tags Live
// @Produce text/event-stream
// @Success 200 {object} Snapshot
// @Router /live/stream [get]
func (fc *FeedController) Stream(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events := make(chan Event, eventBuffer)
	var session *Session
	session = NewSession(fc.source,
		WithClock(fc.clock),
		WithInterval(fc.interval),
		WithBannerDuration(fc.bannerDuration),
		WithLocation(fc.loc),
		WithListener(func(e Event) {
			select {
			case events <- e:
			default:
				logger.Warn("feed %s: viewer is not keeping up, dropping %s event", session.ID(), e.Kind)
				session.Resync()
			}
		}),
	)
	fc.registry.Add(session)
	defer fc.registry.Remove(session.ID())
	logger.Debug("feed %s opened", session.ID())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.SSEvent("session", gin.H{"id": session.ID()})
	c.Writer.Flush()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = session.Run(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			<-done
			logger.Debug("feed %s closed", session.ID())
			return
		case e := <-events:
			c.SSEvent(e.Kind, e.Snapshot)
			c.Writer.Flush()
		}
	}
}

// Dismiss godoc
// @Summary Hide the new-commentary banner of a feed session
// @Tags Live
// @Produce json
// @Param id path string true "Session ID from the session event"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /live/sessions/{id}/dismiss [post]
func (fc *FeedController) Dismiss(c *gin.Context) {
	session, ok := fc.registry.Get(c.Param("id"))
	if !ok {
		responses.NotFound(c, "Feed session")
		return
	}
	dismissed := session.Dismiss()
	responses.SendSuccess(c, http.StatusOK, "", gin.H{"dismissed": dismissed, "state": session.State().String()})
}
