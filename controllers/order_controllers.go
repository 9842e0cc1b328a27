package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thepromise/ordering-platform/analytics"
	"github.com/thepromise/ordering-platform/kds"
	"github.com/thepromise/ordering-platform/models"
	"github.com/thepromise/ordering-platform/store"
	"github.com/thepromise/ordering-platform/utils"
)

type OrderController struct {
	Store *store.OrderStore
}

func NewOrderController(s *store.OrderStore) *OrderController {
	return &OrderController{Store: s}
}

// GetAllOrders -> list orders, optionally filtered by branch. Status is
// derived fresh on every call.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	branchID := c.Query("branchId")
	utils.RespondJSON(c, http.StatusOK, oc.Store.List(branchID))
}

// CreateOrder -> create an order and announce it to KDS clients.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Quantity int     `json:"qty"`
	}

	type reqBody struct {
		BranchID     string    `json:"branchId"`
		Mode         string    `json:"mode"`
		TableCode    string    `json:"tableCode"`
		Items        []itemReq `json:"items"`
		CustomerName string    `json:"customerName"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, store.ErrInvalidPayload)
		return
	}

	items := make([]models.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, models.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order, err := oc.Store.Create(store.CreateOrderInput{
		BranchID:     body.BranchID,
		Mode:         body.Mode,
		TableCode:    body.TableCode,
		Items:        items,
		CustomerName: body.CustomerName,
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	oc.notifyKDS(order)
	utils.RespondJSON(c, http.StatusCreated, order)
}

// UpdateOrderStatus -> manual status override for kitchen staff. A bad
// label is a validation failure; a missing order is a 404.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("order_id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, store.ErrInvalidStatus)
		return
	}

	order, err := oc.Store.SetStatus(id, body.Status)
	if errors.Is(err, store.ErrOrderNotFound) {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	oc.notifyKDS(order)
	utils.RespondJSON(c, http.StatusOK, order)
}

// notifyKDS pushes the changed order to kitchen clients and a refreshed
// overview to the head-office dashboard.
func (oc *OrderController) notifyKDS(order models.Order) {
	kds.BroadcastOrderUpdate(order)
	kds.BroadcastDashboardUpdate(analytics.BuildOverview(oc.Store.List(""), store.MenuItemByID))
}
