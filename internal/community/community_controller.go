package community

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/DhavalSuthar-24/crickethub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

type CommunityController struct {
	repo  CommunityRepository
	loc   *time.Location
	clock clockwork.Clock
}

func NewCommunityController(repo CommunityRepository, appConfig *config.Config, clock clockwork.Clock) *CommunityController {
	return &CommunityController{repo: repo, loc: appConfig.MatchLocation(), clock: clock}
}

func (cc *CommunityController) respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, ErrBlocked):
		responses.Forbidden(c, err.Error())
	case errors.Is(err, ErrNotMatchRelated), errors.Is(err, ErrTooShort), errors.Is(err, ErrInvalidUser):
		responses.BadRequest(c, err.Error())
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Comment")
	default:
		logger.Error("failed to %s: %v", action, err)
		responses.ServiceUnavailable(c, "Failed to "+action)
	}
}

// SignIn godoc
// @Summary Record a viewer's name and email
// @Tags Community
// @Accept json
// @Produce json
// @Param body body SignInRequest true "Viewer"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 400 {object} responses.ErrorResponse
// @Router /users/sign-in [post]
func (cc *CommunityController) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	u, err := cc.repo.SignIn(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		cc.respondError(c, err, "save user")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User saved successfully", u)
}

// GetComments godoc
// @Summary List viewer comments
// @Tags Community
// @Produce json
// @Param sort query string false "newest (default) or oldest"
// @Success 200 {object} responses.SuccessResponse{data=[]Comment}
// @Router /comments [get]
func (cc *CommunityController) GetComments(c *gin.Context) {
	comments, err := cc.repo.ListComments(c.Request.Context(), c.Query("sort") != "oldest")
	if err != nil {
		cc.respondError(c, err, "load comments")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", comments)
}

// PostComment godoc
// @Summary Post a match comment
// @Description Blocked emails are refused; comments must be at least 10 characters and mention the match.
// @Tags Community
// @Accept json
// @Produce json
// @Param body body CommentRequest true "Comment"
// @Success 201 {object} responses.SuccessResponse{data=Comment}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Router /comments [post]
func (cc *CommunityController) PostComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	saved, err := cc.repo.PostComment(c.Request.Context(), req)
	if err != nil {
		cc.respondError(c, err, "save comment")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Your comment has been posted successfully!", saved)
}

// GetUsers godoc
// @Summary List collected viewers
// @Tags Community
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]CollectedUser}
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (cc *CommunityController) GetUsers(c *gin.Context) {
	users, err := cc.repo.CollectedUsers(c.Request.Context())
	if err != nil {
		cc.respondError(c, err, "load users")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", users)
}

// BlockUser godoc
// @Summary Block an email from commenting
// @Tags Community
// @Accept json
// @Param body body BlockRequest true "Email"
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/users/block [post]
func (cc *CommunityController) BlockUser(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if err := cc.repo.Block(c.Request.Context(), req.Email); err != nil {
		cc.respondError(c, err, "block user")
		return
	}
	responses.SendMessage(c, http.StatusOK, req.Email+" has been blocked")
}

// UnblockUser godoc
// @Summary Allow a blocked email to comment again
// @Tags Community
// @Accept json
// @Param body body BlockRequest true "Email"
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/users/unblock [post]
func (cc *CommunityController) UnblockUser(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	if err := cc.repo.Unblock(c.Request.Context(), req.Email); err != nil {
		cc.respondError(c, err, "unblock user")
		return
	}
	responses.SendMessage(c, http.StatusOK, req.Email+" has been unblocked")
}

// ExportUsers godoc
// @Summary Download collected viewers as CSV
// @Tags Community
// @Produce text/csv
// @Success 200 {file} file
// @Security ApiKeyAuth
// @Router /admin/users/export [get]
func (cc *CommunityController) ExportUsers(c *gin.Context) {
	users, err := cc.repo.CollectedUsers(c.Request.Context())
	if err != nil {
		cc.respondError(c, err, "load users")
		return
	}
	var buf bytes.Buffer
	if err := ExportEmails(&buf, users, cc.loc); err != nil {
		logger.Error("failed to encode users csv: %v", err)
		responses.InternalServerError(c, "Failed to export users")
		return
	}
	filename := fmt.Sprintf("ipl_users_%d.csv", cc.clock.Now().UnixMilli())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// DeleteComment godoc
// @Summary Delete one comment
// @Tags Community
// @Param id path string true "Comment ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/comments/{id} [delete]
func (cc *CommunityController) DeleteComment(c *gin.Context) {
	if err := cc.repo.DeleteComment(c.Request.Context(), c.Param("id")); err != nil {
		cc.respondError(c, err, "delete comment")
		return
	}
	responses.SendMessage(c, http.StatusOK, "Comment deleted")
}

// DeleteComments godoc
// @Summary Delete all comments, or only those from one email
// @Tags Community
// @Param email query string false "Only delete comments from this email"
// @Success 200 {object} responses.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/comments [delete]
func (cc *CommunityController) DeleteComments(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		if err := cc.repo.ClearComments(c.Request.Context()); err != nil {
			cc.respondError(c, err, "delete comments")
			return
		}
		responses.SendMessage(c, http.StatusOK, "All comments deleted")
		return
	}

	n, err := cc.repo.DeleteCommentsBy(c.Request.Context(), email)
	if err != nil {
		cc.respondError(c, err, "delete comments")
		return
	}
	responses.SendMessage(c, http.StatusOK, fmt.Sprintf("Deleted %d comment(s) from %s", n, email))
}
