package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductDefinition 商品定义源中的一条原始记录
// 名称与价格为必填项，其余字段可缺省
type ProductDefinition struct {
	Name        string
	Description string
	// 价格缺失时为 nil
	Price    *decimal.Decimal
	Width    int
	ImageURL string
	Specs    map[string]string

	// 价格字段存在但无法解析为十进制数时记录于此，由 Validate 上报
	priceErr error
}

type rawDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       json.RawMessage   `json:"price"`
	Width       int               `json:"width"`
	ImageURL    string            `json:"image_url"`
	Specs       map[string]string `json:"specs"`
}

// UnmarshalJSON 解析一条商品定义
// 无法解析的价格不作为文档级错误，而是保留下来作为该条记录的校验失败
func (d *ProductDefinition) UnmarshalJSON(data []byte) error {
	var raw rawDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Name = raw.Name
	d.Description = raw.Description
	d.Width = raw.Width
	d.ImageURL = raw.ImageURL
	d.Specs = raw.Specs
	d.Price = nil
	d.priceErr = nil

	if len(raw.Price) > 0 && string(raw.Price) != "null" {
		var price decimal.Decimal
		if err := json.Unmarshal(raw.Price, &price); err != nil {
			d.priceErr = fmt.Errorf("price %s does not parse as a decimal", raw.Price)
		} else {
			d.Price = &price
		}
	}
	return nil
}

// Validate 校验必填字段：名称非空、价格存在且非负；宽度提供时必须为正
func (d *ProductDefinition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if d.priceErr != nil {
		return d.priceErr
	}
	if d.Price == nil {
		return errors.New("price is required")
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("price must not be negative, got %s", d.Price)
	}
	if d.Width < 0 {
		return fmt.Errorf("width must be a positive integer, got %d", d.Width)
	}
	return nil
}

// ToProduct 将定义转换为商品实体，不携带代理主键
func (d *ProductDefinition) ToProduct() *Product {
	return &Product{
		Name:        strings.TrimSpace(d.Name),
		Description: d.Description,
		Price:       *d.Price,
		Width:       d.Width,
		ImageURL:    d.ImageURL,
		Specs:       d.Specs,
	}
}
