package application

import "github.com/wyfcoding/wheelmaster/internal/catalog/domain"

// ProductDTO 商品查询结果
type ProductDTO struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Width       int               `json:"width,omitempty"`
	ImageURL    string            `json:"image_url"`
	Specs       map[string]string `json:"specs,omitempty"`
	CreatedAt   int64             `json:"created_at"`
	UpdatedAt   int64             `json:"updated_at"`
}

func toProductDTO(p *domain.Product) *ProductDTO {
	return &ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Width:       p.Width,
		ImageURL:    p.ImageURL,
		Specs:       p.Specs,
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
}

func toProductDTOs(products []*domain.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos
}
