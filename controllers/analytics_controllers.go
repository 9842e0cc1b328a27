package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thepromise/ordering-platform/analytics"
	"github.com/thepromise/ordering-platform/store"
	"github.com/thepromise/ordering-platform/utils"
)

type AnalyticsController struct {
	Store *store.OrderStore
}

func NewAnalyticsController(s *store.OrderStore) *AnalyticsController {
	return &AnalyticsController{Store: s}
}

// GetOverview -> head-office aggregation over every order across branches.
func (ac *AnalyticsController) GetOverview(c *gin.Context) {
	orders := ac.Store.List("")
	overview := analytics.BuildOverview(orders, store.MenuItemByID)
	utils.RespondJSON(c, http.StatusOK, overview)
}
