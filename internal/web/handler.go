// Package web 渲染店面页面：商品列表与下单表单
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/wyfcoding/wheelmaster/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/wheelmaster/internal/catalog/domain"
	orderapp "github.com/wyfcoding/wheelmaster/internal/ordering/application"
	orderdomain "github.com/wyfcoding/wheelmaster/internal/ordering/domain"
)

// Handler 店面页面处理器
type Handler struct {
	catalog *catalogapp.CatalogQueryService
	orders  *orderapp.OrderCommandService
}

// NewHandler 创建店面页面处理器实例
func NewHandler(catalog *catalogapp.CatalogQueryService, orders *orderapp.OrderCommandService) *Handler {
	return &Handler{catalog: catalog, orders: orders}
}

// RegisterRoutes 注册页面路由
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.GET("/order/:id", h.OrderForm)
	router.POST("/order/:id", h.SubmitOrder)
}

// Index 首页，展示全部商品
func (h *Handler) Index(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to render storefront", "error", err)
		c.String(http.StatusInternalServerError, "Database problem occurred. Please try again later.")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Products": products})
}

// OrderForm 单个商品的下单页面
func (h *Handler) OrderForm(c *gin.Context) {
	product, ok := h.lookupProduct(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "order.html", gin.H{"Product": product})
}

// SubmitOrder 处理下单表单提交
func (h *Handler) SubmitOrder(c *gin.Context) {
	product, ok := h.lookupProduct(c)
	if !ok {
		return
	}

	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		c.String(http.StatusBadRequest, "Quantity must be a whole number.")
		return
	}

	cmd := orderapp.PlaceOrderCommand{
		ProductID:    product.ID,
		Quantity:     quantity,
		CustomerName: c.PostForm("name"),
		Phone:        c.PostForm("phone"),
		Email:        c.PostForm("email"),
	}

	if _, err := h.orders.PlaceOrder(c.Request.Context(), cmd); err != nil {
		switch {
		case errors.Is(err, orderdomain.ErrInvalidQuantity), errors.Is(err, orderdomain.ErrInvalidContactInfo):
			c.String(http.StatusBadRequest, "Invalid order details: %s", err.Error())
		default:
			slog.ErrorContext(c.Request.Context(), "failed to submit order", "product_id", product.ID, "error", err)
			c.String(http.StatusInternalServerError, "Database problem occurred. Please try again later.")
		}
		return
	}

	c.String(http.StatusOK, "Order accepted! We will contact you soon.")
}

func (h *Handler) lookupProduct(c *gin.Context) (*catalogapp.ProductDTO, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Product not found")
		return nil, false
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			c.String(http.StatusNotFound, "Product not found")
		} else {
			slog.ErrorContext(c.Request.Context(), "failed to load product page", "id", id, "error", err)
			c.String(http.StatusInternalServerError, "Database problem occurred. Please try again later.")
		}
		return nil, false
	}
	return product, true
}
