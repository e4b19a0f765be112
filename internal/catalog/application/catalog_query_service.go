package application

import (
	"context"
	"fmt"

	"github.com/wyfcoding/wheelmaster/internal/catalog/domain"
)

// CatalogQueryService 处理所有商品相关的查询操作（Queries）。
type CatalogQueryService struct {
	repo domain.ProductRepository
}

// NewCatalogQueryService 构造函数。
func NewCatalogQueryService(repo domain.ProductRepository) *CatalogQueryService {
	return &CatalogQueryService{repo: repo}
}

// ListProducts 按代理主键升序返回全部商品
func (s *CatalogQueryService) ListProducts(ctx context.Context) ([]*ProductDTO, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// GetProduct 按代理主键返回单个商品（含规格映射）
// 商品不存在时返回 ErrProductNotFound
func (s *CatalogQueryService) GetProduct(ctx context.Context, id uint) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrProductNotFound, id)
	}
	return toProductDTO(product), nil
}
