package team

import (
	"net/http"

	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/gin-gonic/gin"
)

type TeamController struct{}

func NewTeamController() *TeamController {
	return &TeamController{}
}

// GetAllTeams godoc
// @Summary List teams
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Team}
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "", All())
}

// GetTeam godoc
// @Summary Get a team by code
// @Tags Teams
// @Produce json
// @Param code path string true "Team code, e.g. CSK"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse
// @Router /teams/{code} [get]
func (tc *TeamController) GetTeam(c *gin.Context) {
	t, ok := Lookup(c.Param("code"))
	if !ok {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", t)
}
