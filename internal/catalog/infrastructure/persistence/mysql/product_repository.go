// Package mysql 提供了商品仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/wheelmaster/internal/catalog/domain"
	"gorm.io/gorm"
)

// ProductModel 商品数据库模型，直接映射 products 表。
type ProductModel struct {
	gorm.Model
	Name        string `gorm:"column:name;type:varchar(100);uniqueIndex;not null;comment:商品唯一名称(自然键)"`
	Description string `gorm:"column:description;type:text;comment:商品描述"`
	Price       string `gorm:"column:price;type:decimal(10,2);not null;comment:单价"`
	Width       int    `gorm:"column:width;comment:名义胎宽(毫米)"`
	ImageURL    string `gorm:"column:image_url;type:text;comment:商品图片链接"`
	Specs       string `gorm:"column:specs;type:json;comment:开放式规格映射"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// productRepositoryImpl 是 domain.ProductRepository 接口的 GORM 实现。
type productRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepositoryImpl{db: db}
}

// Save 实现 domain.ProductRepository.Save
func (r *productRepositoryImpl) Save(ctx context.Context, product *domain.Product) error {
	model, err := toModel(product)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		logging.Error(ctx, "product_repository.save failed", "name", product.Name, "error", err)
		return fmt.Errorf("failed to save product: %w", err)
	}

	product.ID = model.ID
	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 实现 domain.ProductRepository.FindByID
func (r *productRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var model ProductModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "product_repository.find_by_id failed", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.toDomain(&model)
}

// FindByName 实现 domain.ProductRepository.FindByName
func (r *productRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	var model ProductModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logging.Error(ctx, "product_repository.find_by_name failed", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.toDomain(&model)
}

// List 实现 domain.ProductRepository.List
func (r *productRepositoryImpl) List(ctx context.Context) ([]*domain.Product, error) {
	var models []ProductModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		logging.Error(ctx, "product_repository.list failed", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*domain.Product, 0, len(models))
	for i := range models {
		product, err := r.toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func toModel(product *domain.Product) (*ProductModel, error) {
	// JSON 列不接受空串，无规格时写入空对象
	specs := "{}"
	if len(product.Specs) > 0 {
		data, err := json.Marshal(product.Specs)
		if err != nil {
			return nil, fmt.Errorf("failed to encode product specs: %w", err)
		}
		specs = string(data)
	}

	model := &ProductModel{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		Width:       product.Width,
		ImageURL:    product.ImageURL,
		Specs:       specs,
	}
	model.ID = product.ID
	model.CreatedAt = product.CreatedAt
	return model, nil
}

func (r *productRepositoryImpl) toDomain(model *ProductModel) (*domain.Product, error) {
	price, err := decimal.NewFromString(model.Price)
	if err != nil {
		return nil, fmt.Errorf("corrupt price for product %d: %w", model.ID, err)
	}

	var specs map[string]string
	if model.Specs != "" {
		if err := json.Unmarshal([]byte(model.Specs), &specs); err != nil {
			return nil, fmt.Errorf("corrupt specs for product %d: %w", model.ID, err)
		}
		if len(specs) == 0 {
			specs = nil
		}
	}

	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       price,
		Width:       model.Width,
		ImageURL:    model.ImageURL,
		Specs:       specs,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}, nil
}
