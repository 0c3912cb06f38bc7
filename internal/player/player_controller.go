package player

import (
	"errors"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/DhavalSuthar-24/crickethub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{repo: repo, appConfig: appConfig}
}

// respondRepoError maps repository errors onto the envelope.
func respondRepoError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, ErrUnknownTeam):
		responses.BadRequest(c, err.Error())
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Player")
	default:
		logger.Error("failed to %s: %v", action, err)
		responses.ServiceUnavailable(c, "Failed to "+action)
	}
}

// GetPlayers godoc
// @Summary List a team's players
// @Tags Players
// @Produce json
// @Param team query string true "Team code"
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 503 {object} responses.ErrorResponse
// @Router /admin/players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	teamCode := strings.TrimSpace(c.Query("team"))
	if teamCode == "" {
		responses.BadRequest(c, "Team parameter is required")
		return
	}
	players, err := pc.repo.List(c.Request.Context(), teamCode)
	if err != nil {
		respondRepoError(c, err, "load players")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", players)
}

// SavePlayers godoc
// @Summary Save a team's players
// @Description Merges players into the team bucket by name, or replaces it when replace is true.
// @Tags Players
// @Accept json
// @Produce json
// @Param body body SaveRequest true "Players"
// @Success 200 {object} responses.SuccessResponse{data=[]Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/players [post]
func (pc *PlayerController) SavePlayers(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	saved, err := pc.repo.Save(c.Request.Context(), req.Team, req.Players, req.Replace)
	if err != nil {
		respondRepoError(c, err, "save players")
		return
	}
	logger.Info("saved %d players for %s", len(saved), req.Team)
	responses.SendSuccess(c, http.StatusOK, "Players saved successfully", saved)
}

// UpdatePlayer godoc
// @Summary Edit or rename one player
// @Tags Players
// @Accept json
// @Produce json
// @Param team path string true "Team code"
// @Param name path string true "Current player name"
// @Param player body Player true "Player"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/players/{team}/{name} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	var p Player
	if err := c.ShouldBindJSON(&p); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	saved, err := pc.repo.Upsert(c.Request.Context(), c.Param("team"), p, c.Param("name"))
	if err != nil {
		respondRepoError(c, err, "save player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player saved successfully", saved)
}

// DeletePlayers godoc
// @Summary Delete one player or a whole squad
// @Tags Players
// @Produce json
// @Param team query string true "Team code"
// @Param name query string false "Player name; omit to delete the whole squad"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/players [delete]
func (pc *PlayerController) DeletePlayers(c *gin.Context) {
	teamCode := strings.TrimSpace(c.Query("team"))
	if teamCode == "" {
		responses.BadRequest(c, "Team parameter is required")
		return
	}

	ctx := c.Request.Context()
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		if err := pc.repo.Delete(ctx, teamCode, name); err != nil {
			respondRepoError(c, err, "delete player")
			return
		}
		responses.SendMessage(c, http.StatusOK, "Player deleted successfully")
		return
	}

	if err := pc.repo.DeleteAll(ctx, teamCode); err != nil {
		respondRepoError(c, err, "delete players")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Players deleted successfully")
}
