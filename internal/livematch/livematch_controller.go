package livematch

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/internal/team"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/DhavalSuthar-24/crickethub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

type LiveMatchController struct {
	repo  LiveMatchRepository
	loc   *time.Location
	clock clockwork.Clock
}

func NewLiveMatchController(repo LiveMatchRepository, appConfig *config.Config, clock clockwork.Clock) *LiveMatchController {
	return &LiveMatchController{repo: repo, loc: appConfig.MatchLocation(), clock: clock}
}

func (lc *LiveMatchController) storeFailure(c *gin.Context, err error, action string) {
	logger.Error("failed to %s: %v", action, err)
	responses.ServiceUnavailable(c, "Failed to "+action)
}

// GetLiveMatch godoc
// @Summary Get the live match scoreboard
// @Tags Live
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=LiveMatch}
// @Failure 503 {object} responses.ErrorResponse
// @Router /admin/live-match [get]
func (lc *LiveMatchController) GetLiveMatch(c *gin.Context) {
	m, err := lc.repo.Get(c.Request.Context())
	if err != nil {
		lc.storeFailure(c, err, "load live match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", m)
}

// SaveLiveMatch godoc
// @Summary Save the live match scoreboard
// @Tags Live
// @Accept json
// @Produce json
// @Param match body LiveMatch true "Scoreboard"
// @Success 200 {object} responses.SuccessResponse{data=LiveMatch}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/live-match [post]
func (lc *LiveMatchController) SaveLiveMatch(c *gin.Context) {
	var m LiveMatch
	if err := c.ShouldBindJSON(&m); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	errs := make(map[string]string)
	for field, code := range map[string]string{"team1": m.Team1, "team2": m.Team2} {
		if code != "" && !team.IsKnown(code) {
			errs[field] = "unknown team " + strconv.Quote(code)
		}
	}
	if len(errs) > 0 {
		responses.SendValidationError(c, errs)
		return
	}

	saved, err := lc.repo.Save(c.Request.Context(), m)
	if err != nil {
		lc.storeFailure(c, err, "save live match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Live match data saved successfully", saved)
}

// ClearLiveMatch godoc
// @Summary Clear the live match scoreboard
// @Tags Live
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/live-match [delete]
func (lc *LiveMatchController) ClearLiveMatch(c *gin.Context) {
	if err := lc.repo.Clear(c.Request.Context()); err != nil {
		lc.storeFailure(c, err, "clear live match")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Live match data cleared successfully")
}

// SetStatus godoc
// @Summary Switch the live flag on or off
// @Tags Live
// @Accept json
// @Produce json
// @Param body body StatusRequest true "Live flag"
// @Success 200 {object} responses.SuccessResponse{data=LiveMatch}
// @Security ApiKeyAuth
// @Router /admin/live-match/status [post]
func (lc *LiveMatchController) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	saved, err := lc.repo.SetLive(c.Request.Context(), *req.IsLive)
	if err != nil {
		lc.storeFailure(c, err, "update live status")
		return
	}
	msg := "Match is now off air"
	if saved.IsLive {
		msg = "Match is now live"
	}
	responses.SendSuccess(c, http.StatusOK, msg, saved)
}

// GetCommentary godoc
// @Summary List commentary, newest first
// @Tags Live
// @Produce json
// @Param enhanced query bool false "Add the enhanced display text"
// @Success 200 {object} responses.SuccessResponse{data=[]CommentaryView}
// @Failure 503 {object} responses.ErrorResponse
// @Router /live/commentary [get]
func (lc *LiveMatchController) GetCommentary(c *gin.Context) {
	items, err := lc.repo.ListCommentary(c.Request.Context())
	if err != nil {
		lc.storeFailure(c, err, "load commentary")
		return
	}
	enhanced, _ := strconv.ParseBool(c.Query("enhanced"))
	responses.SendSuccess(c, http.StatusOK, "", Views(items, enhanced, lc.clock.Now(), lc.loc))
}

// AddCommentary godoc
// @Summary Post a commentary line
// @Tags Live
// @Accept json
// @Produce json
// @Param body body CommentaryRequest true "Over and text"
// @Success 201 {object} responses.SuccessResponse{data=Commentary}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/live/commentary [post]
func (lc *LiveMatchController) AddCommentary(c *gin.Context) {
	var req CommentaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	saved, err := lc.repo.AddCommentary(c.Request.Context(), req)
	if err != nil {
		lc.storeFailure(c, err, "save commentary")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Commentary posted", saved)
}

// DeleteCommentary godoc
// @Summary Delete one commentary line
// @Tags Live
// @Param id path string true "Commentary ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/live/commentary/{id} [delete]
func (lc *LiveMatchController) DeleteCommentary(c *gin.Context) {
	err := lc.repo.DeleteCommentary(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "Commentary")
		return
	}
	if err != nil {
		lc.storeFailure(c, err, "delete commentary")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Commentary deleted")
}

// ClearCommentary godoc
// @Summary Delete all commentary
// @Tags Live
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/live/commentary [delete]
func (lc *LiveMatchController) ClearCommentary(c *gin.Context) {
	if err := lc.repo.ClearCommentary(c.Request.Context()); err != nil {
		lc.storeFailure(c, err, "clear commentary")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Commentary cleared")
}

// GetMoments godoc
// @Summary List key moments, newest first
// @Tags Live
// @Produce json
// @Param limit query int false "Return at most this many"
// @Success 200 {object} responses.SuccessResponse{data=[]KeyMoment}
// @Router /live/moments [get]
func (lc *LiveMatchController) GetMoments(c *gin.Context) {
	items, err := lc.repo.ListMoments(c.Request.Context())
	if err != nil {
		lc.storeFailure(c, err, "load key moments")
		return
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	responses.SendSuccess(c, http.StatusOK, "", items)
}

// AddMoment godoc
// @Summary Record a key moment
// @Tags Live
// @Accept json
// @Produce json
// @Param body body MomentRequest true "Moment"
// @Success 201 {object} responses.SuccessResponse{data=KeyMoment}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/live/moments [post]
func (lc *LiveMatchController) AddMoment(c *gin.Context) {
	var req MomentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	saved, err := lc.repo.AddMoment(c.Request.Context(), req)
	if err != nil {
		lc.storeFailure(c, err, "save key moment")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Key moment added", saved)
}

// DeleteMoment godoc
// @Summary Delete one key moment
// @Tags Live
// @Param id path string true "Moment ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/live/moments/{id} [delete]
func (lc *LiveMatchController) DeleteMoment(c *gin.Context) {
	err := lc.repo.DeleteMoment(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "Key moment")
		return
	}
	if err != nil {
		lc.storeFailure(c, err, "delete key moment")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Key moment deleted")
}

// ClearMoments godoc
// @Summary Delete all key moments
// @Tags Live
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/live/moments [delete]
func (lc *LiveMatchController) ClearMoments(c *gin.Context) {
	if err := lc.repo.ClearMoments(c.Request.Context()); err != nil {
		lc.storeFailure(c, err, "clear key moments")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Key moments cleared")
}
