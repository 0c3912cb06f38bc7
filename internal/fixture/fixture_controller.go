package fixture

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/DhavalSuthar-24/crickethub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

type ReplaceRequest struct {
	Fixtures []Fixture `json:"fixtures" binding:"required"`
}

type OverrideRequest struct {
	// empty clears the override
	Override string `json:"override" binding:"omitempty,oneof=cancelled postponed"`
}

type FixtureController struct {
	repo   FixtureRepository
	policy StatusPolicy
	clock  clockwork.Clock
}

func NewFixtureController(repo FixtureRepository, appConfig *config.Config, clock clockwork.Clock) *FixtureController {
	return &FixtureController{
		repo:   repo,
		policy: PolicyFromConfig(appConfig),
		clock:  clock,
	}
}

// PolicyFromConfig reads the match timezone and duration settings.
func PolicyFromConfig(appConfig *config.Config) StatusPolicy {
	return StatusPolicy{Location: appConfig.MatchLocation(), Duration: appConfig.MatchDuration()}
}

func (fc *FixtureController) storeFailure(c *gin.Context, err error, action string) {
	logger.Error("failed to %s: %v", action, err)
	responses.ServiceUnavailable(c, "Failed to "+action)
}

// GetFixtures godoc
// @Summary List fixtures with computed status
// @Tags Fixtures
// @Produce json
// @Param status query string false "upcoming, live, completed, cancelled or postponed"
// @Success 200 {object} responses.SuccessResponse{data=[]View}
// @Failure 503 {object} responses.ErrorResponse
// @Router /admin/fixtures [get]
func (fc *FixtureController) GetFixtures(c *gin.Context) {
	fixtures, err := fc.repo.List(c.Request.Context())
	if err != nil {
		fc.storeFailure(c, err, "load fixtures")
		return
	}
	views := Views(fixtures, fc.clock.Now(), fc.policy)
	responses.SendSuccess(c, http.StatusOK, "", Filter(views, strings.ToLower(c.Query("status"))))
}

// ReplaceFixtures godoc
// @Summary Replace the whole fixture list
// @Tags Fixtures
// @Accept json
// @Produce json
// @Param body body ReplaceRequest true "Fixtures"
// @Success 200 {object} responses.SuccessResponse{data=[]Fixture}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/fixtures [post]
func (fc *FixtureController) ReplaceFixtures(c *gin.Context) {
	var req ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	errs := make(map[string]string)
	for i, f := range req.Fixtures {
		for k, v := range Validate(f, fmt.Sprintf("fixtures[%d].", i)) {
			errs[k] = v
		}
	}
	if len(errs) > 0 {
		responses.SendValidationError(c, errs)
		return
	}

	saved, err := fc.repo.ReplaceAll(c.Request.Context(), req.Fixtures)
	if err != nil {
		fc.storeFailure(c, err, "save fixtures")
		return
	}
	logger.Info("saved %d fixtures", len(saved))
	responses.SendSuccess(c, http.StatusOK, fmt.Sprintf("%d fixture(s) saved", len(saved)), saved)
}

// AddFixture godoc
// @Summary Append one fixture
// @Tags Fixtures
// @Accept json
// @Produce json
// @Param fixture body Fixture true "Fixture"
// @Success 201 {object} responses.SuccessResponse{data=Fixture}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/fixtures/item [post]
func (fc *FixtureController) AddFixture(c *gin.Context) {
	var f Fixture
	if err := c.ShouldBindJSON(&f); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if errs := Validate(f, ""); len(errs) > 0 {
		responses.SendValidationError(c, errs)
		return
	}
	saved, err := fc.repo.Add(c.Request.Context(), f)
	if err != nil {
		fc.storeFailure(c, err, "save fixture")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Fixture added", saved)
}

// SetOverride godoc
// @Summary Mark a fixture cancelled or postponed
// @Tags Fixtures
// @Accept json
// @Produce json
// @Param id path string true "Fixture ID"
// @Param body body OverrideRequest true "Override, empty to clear"
// @Success 200 {object} responses.SuccessResponse{data=Fixture}
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/fixtures/{id}/override [patch]
func (fc *FixtureController) SetOverride(c *gin.Context) {
	var req OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	saved, err := fc.repo.SetOverride(c.Request.Context(), c.Param("id"), req.Override)
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "Fixture")
		return
	}
	if err != nil {
		fc.storeFailure(c, err, "update fixture")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Fixture updated", saved)
}

// DeleteFixture godoc
// @Summary Delete one fixture
// @Tags Fixtures
// @Param id path string true "Fixture ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/fixtures/{id} [delete]
func (fc *FixtureController) DeleteFixture(c *gin.Context) {
	err := fc.repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "Fixture")
		return
	}
	if err != nil {
		fc.storeFailure(c, err, "delete fixture")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Fixture deleted")
}

// ClearFixtures godoc
// @Summary Delete all fixtures
// @Tags Fixtures
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/fixtures [delete]
func (fc *FixtureController) ClearFixtures(c *gin.Context) {
	if err := fc.repo.Clear(c.Request.Context()); err != nil {
		fc.storeFailure(c, err, "delete fixtures")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Fixtures deleted successfully")
}
