package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/thepromise/ordering-platform/controllers"
	"github.com/thepromise/ordering-platform/services"
)

func setupChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chatCtrl := controllers.NewChatController()
	router.POST("/api/chat", chatCtrl.PostChat)
	return router
}

func TestPostChatMenuQuestion(t *testing.T) {
	router := setupChatRouter()

	w := postJSON(t, router, "POST", "/api/chat", map[string]string{
		"role":    "customer",
		"message": "What's on the menu?",
		"page":    "order",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var reply services.ChatReply
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.Equal(t, "assistant", reply.Role)
	assert.NotNil(t, reply.Page)
	assert.Equal(t, "order", *reply.Page)
	assert.True(t, strings.Contains(reply.Reply, "menu highlights"))

	// No branchId in the request means an explicit null in the response.
	assert.True(t, strings.Contains(w.Body.String(), `"branchId":null`))
}

func TestPostChatMissingMessage(t *testing.T) {
	router := setupChatRouter()

	w := postJSON(t, router, "POST", "/api/chat", map[string]string{"role": "customer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "message is required", resp["error"])
}

func TestPostChatRolePrecedence(t *testing.T) {
	router := setupChatRouter()

	// "status" without "order" must not hit the order-status rule.
	w := postJSON(t, router, "POST", "/api/chat", map[string]string{
		"role":    "staff",
		"message": "status",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var reply services.ChatReply
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
	assert.True(t, strings.Contains(reply.Reply, "As branch staff"))
}
