package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thepromise/ordering-platform/services"
	"github.com/thepromise/ordering-platform/utils"
)

type ChatController struct{}

func NewChatController() *ChatController {
	return &ChatController{}
}

// PostChat -> resolve a canned assistant reply for the given role/message.
func (cc *ChatController) PostChat(c *gin.Context) {
	var input services.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, services.ErrMissingMessage)
		return
	}

	reply, err := services.ResolveChatReply(input)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, reply)
}
