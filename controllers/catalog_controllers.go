package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thepromise/ordering-platform/store"
	"github.com/thepromise/ordering-platform/utils"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// GetAllBranches -> static list of branches
func (cc *CatalogController) GetAllBranches(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, store.ListBranches())
}

// GetAllMenus -> static menu
func (cc *CatalogController) GetAllMenus(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, store.ListMenu())
}
