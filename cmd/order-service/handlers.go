package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MikeMC777/cafezinho/internal/httpx"
	ord "github.com/MikeMC777/cafezinho/internal/order"
)

func newRouter(svc *ord.Service) *gin.Engine {
	r := httpx.New()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/orders", listOrdersHandler(svc))
	r.POST("/orders", createOrderHandler(svc))
	r.GET("/orders/user/:id", listOrdersByUserHandler(svc))
	r.GET("/orders/:id", getOrderHandler(svc))
	r.GET("/orders/:id/items", getOrderItemsHandler(svc))
	return r
}

// abortErr maps service errors to HTTP statuses.
func abortErr(c *gin.Context, err error) {
	var verr *ord.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.AbortDetails(c, http.StatusBadRequest, "invalid order", verr.Violations)
	case errors.Is(err, ord.ErrNotFound):
		httpx.Abort(c, http.StatusNotFound, "order not found")
	case errors.Is(err, ord.ErrStorageUnavailable):
		zap.L().Error("order storage", zap.Error(err))
		httpx.Abort(c, http.StatusServiceUnavailable, "order storage unavailable")
	default:
		zap.L().Error("order service", zap.Error(err))
		httpx.Abort(c, http.StatusInternalServerError, "internal server error")
	}
}

// createOrderHandler godoc
// @Summary  Create order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "order"
// @Success  201 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  503 {object} httpx.HTTPError
// @Router   /orders [post]
func createOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.Abort(c, http.StatusBadRequest, "invalid json")
			return
		}
		o, err := svc.CreateOrder(c.Request.Context(), req)
		if err != nil {
			abortErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// listOrdersHandler godoc
// @Summary  List all orders
// @Tags     orders
// @Produce  json
// @Success  200 {array} order.Order
// @Router   /orders [get]
func listOrdersHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.ListAll(c.Request.Context())
		if err != nil {
			abortErr(c, err)
			return
		}
		if out == nil {
			out = []ord.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// listOrdersByUserHandler godoc
// @Summary  List orders of a user
// @Tags     orders
// @Produce  json
// @Param    id path string true "user id"
// @Success  200 {array} order.Order
// @Router   /orders/user/{id} [get]
func listOrdersByUserHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.GetUserOrders(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortErr(c, err)
			return
		}
		if out == nil {
			out = []ord.Order{}
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderHandler godoc
// @Summary  Get order
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [get]
func getOrderHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.GetOrderByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortErr(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// getOrderItemsHandler godoc
// @Summary  Get order items
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {array} order.Item
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id}/items [get]
func getOrderItemsHandler(svc *ord.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.GetOrderByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			abortErr(c, err)
			return
		}
		c.JSON(http.StatusOK, o.Items)
	}
}
