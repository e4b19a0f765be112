// Package http 商品目录的 HTTP 接口层
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"
	"github.com/wyfcoding/wheelmaster/internal/catalog/application"
	"github.com/wyfcoding/wheelmaster/internal/catalog/domain"
	"github.com/wyfcoding/wheelmaster/internal/catalog/infrastructure/source"
)

// CatalogHandler HTTP 处理器
// 负责处理与商品目录相关的 HTTP 请求
type CatalogHandler struct {
	sync  *application.CatalogSyncService
	query *application.CatalogQueryService
}

// NewCatalogHandler 创建 HTTP 处理器实例
func NewCatalogHandler(sync *application.CatalogSyncService, query *application.CatalogQueryService) *CatalogHandler {
	return &CatalogHandler{sync: sync, query: query}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/products")
	{
		api.GET("", h.ListProducts)       // 商品列表
		api.GET("/:id", h.GetProduct)     // 商品详情
		api.POST("/sync", h.SyncCatalog)  // 目录同步（维护入口）
	}
}

// ListProducts 按 ID 升序返回全部商品
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.query.ListProducts(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list products", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, products)
}

// GetProduct 获取单个商品
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid product id", "")
		return
	}

	dto, err := h.query.GetProduct(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.ErrorWithStatus(c, http.StatusNotFound, "product not found", "")
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to get product", "id", id, "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}

	response.Success(c, dto)
}

// SyncCatalog 接收一份商品定义文档并调和进目录，返回同步报告
func (h *CatalogHandler) SyncCatalog(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	defs, err := source.Parse(body)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	report, err := h.sync.Sync(c.Request.Context(), defs)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "catalog sync failed", "error", err)
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}

	response.Success(c, report)
}
