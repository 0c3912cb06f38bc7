package auth

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/DhavalSuthar-24/crickethub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authn Authenticator
}

func NewAuthController(authn Authenticator) *AuthController {
	return &AuthController{authn: authn}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges the admin password for a bearer token.
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin password"
// @Success 200 {object} responses.SuccessResponse{data=LoginResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /admin/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	res, err := ac.authn.Login(req.Password)
	if errors.Is(err, ErrInvalidPassword) {
		logger.Warn("admin login rejected from %s", c.ClientIP())
		responses.Unauthorized(c, "Invalid password")
		return
	}
	if err != nil {
		logger.Error("admin token generation failed: %v", err)
		responses.InternalServerError(c, "Failed to create session")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged in", res)
}
