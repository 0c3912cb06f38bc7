package points

import (
	"fmt"
	"net/http"

	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/DhavalSuthar-24/crickethub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PointsController struct {
	repo PointsRepository
}

func NewPointsController(repo PointsRepository) *PointsController {
	return &PointsController{repo: repo}
}

// GetPoints godoc
// @Summary Get the points table
// @Tags Points
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Row}
// @Failure 503 {object} responses.ErrorResponse
// @Router /admin/points [get]
func (pc *PointsController) GetPoints(c *gin.Context) {
	rows, err := pc.repo.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to load points table: %v", err)
		responses.ServiceUnavailable(c, "Failed to load points table")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", rows)
}

// ReplacePoints godoc
// @Summary Replace the points table
// @Description Rows are ranked in request order; the top four are marked qualified.
// @Tags Points
// @Accept json
// @Produce json
// @Param body body ReplaceRequest true "Rows in table order"
// @Success 200 {object} responses.SuccessResponse{data=[]Row}
// @Failure 400 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/points [post]
func (pc *PointsController) ReplacePoints(c *gin.Context) {
	var req ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if errs := Validate(req.Points); len(errs) > 0 {
		responses.SendValidationError(c, errs)
		return
	}

	rows, err := pc.repo.Replace(c.Request.Context(), req.Points)
	if err != nil {
		logger.Error("failed to save points table: %v", err)
		responses.ServiceUnavailable(c, "Failed to save points table")
		return
	}
	responses.SendSuccess(c, http.StatusOK, fmt.Sprintf("Points table saved for %d teams", len(rows)), rows)
}

// ClearPoints godoc
// @Summary Delete the points table
// @Tags Points
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/points [delete]
func (pc *PointsController) ClearPoints(c *gin.Context) {
	if err := pc.repo.Clear(c.Request.Context()); err != nil {
		logger.Error("failed to delete points table: %v", err)
		responses.ServiceUnavailable(c, "Failed to delete points table")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Points table deleted successfully")
}
