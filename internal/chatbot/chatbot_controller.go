package chatbot

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/crickethub/pkg/responses"
	"github.com/DhavalSuthar-24/crickethub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

type ChatbotController struct {
	bot *Bot
}

func NewChatbotController(bot *Bot) *ChatbotController {
	return &ChatbotController{bot: bot}
}

// Chat godoc
// @Summary Ask the cricket assistant
// @Tags Chatbot
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Message"
// @Success 200 {object} responses.SuccessResponse{data=Reply}
// @Failure 400 {object} responses.ErrorResponse
// @Router /chat [post]
func (cc *ChatbotController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}
	reply, err := cc.bot.Respond(c.Request.Context(), req.Message)
	if errors.Is(err, ErrEmptyMessage) {
		responses.BadRequest(c, "Message is required")
		return
	}
	if err != nil {
		responses.InternalServerError(c, "")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", reply)
}
