// Package http 订单服务的 HTTP 接口层
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"
	"github.com/wyfcoding/wheelmaster/internal/ordering/application"
	"github.com/wyfcoding/wheelmaster/internal/ordering/domain"
)

// OrderHandler HTTP 处理器
// 负责处理与订单相关的 HTTP 请求
type OrderHandler struct {
	cmd   *application.OrderCommandService
	query *application.OrderQueryService
}

// NewOrderHandler 创建 HTTP 处理器实例
func NewOrderHandler(cmd *application.OrderCommandService, query *application.OrderQueryService) *OrderHandler {
	return &OrderHandler{cmd: cmd, query: query}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/orders")
	{
		api.POST("", h.CreateOrder)                    // 提交订单
		api.GET("", h.ListOrders)                      // 订单报表（最新在前）
		api.GET("/product/:id", h.ListOrdersByProduct) // 某商品的订单
	}
}

// CreateOrderRequest 提交订单请求
type CreateOrderRequest struct {
	ProductID    uint   `json:"product_id"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// CreateOrder 提交订单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	cmd := application.PlaceOrderCommand{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Email:        req.Email,
	}

	orderID, err := h.cmd.PlaceOrder(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidContactInfo):
			response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, domain.ErrUnknownProduct):
			response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
		default:
			slog.ErrorContext(c.Request.Context(), "failed to create order", "error", err)
			response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		}
		return
	}

	response.Success(c, gin.H{"order_id": orderID})
}

// ListOrders 返回全部订单的运营报表
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.query.ListOrders(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list orders", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, orders)
}

// ListOrdersByProduct 返回指定商品的订单
func (h *OrderHandler) ListOrdersByProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id", "")
		return
	}

	orders, err := h.query.ListOrdersByProduct(c.Request.Context(), uint(id))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list orders", "product_id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, orders)
}
