package mysql

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/wheelmaster/internal/catalog/domain"
)

func TestToModelWithoutSpecsWritesEmptyJSONObject(t *testing.T) {
	product := &domain.Product{
		Name:  "Mirage MR-166",
		Price: decimal.RequireFromString("1056.00"),
		Width: 155,
	}

	model, err := toModel(product)
	require.NoError(t, err)

	// 空串不是合法 JSON，MySQL 会拒绝写入
	assert.Equal(t, "{}", model.Specs)
	assert.True(t, json.Valid([]byte(model.Specs)))
}

func TestToModelEmptySpecsMapWritesEmptyJSONObject(t *testing.T) {
	product := &domain.Product{
		Name:  "Mirage MR-166",
		Price: decimal.RequireFromString("1056.00"),
		Specs: map[string]string{},
	}

	model, err := toModel(product)
	require.NoError(t, err)
	assert.Equal(t, "{}", model.Specs)
}

func TestProductModelRoundTripWithoutSpecs(t *testing.T) {
	repo := &productRepositoryImpl{}
	product := &domain.Product{
		ID:    3,
		Name:  "RoadMaster Pro",
		Price: decimal.RequireFromString("890.00"),
		Width: 185,
	}

	model, err := toModel(product)
	require.NoError(t, err)

	restored, err := repo.toDomain(model)
	require.NoError(t, err)
	assert.Equal(t, product.Name, restored.Name)
	assert.True(t, restored.Price.Equal(product.Price))
	assert.Equal(t, product.Width, restored.Width)
	assert.Nil(t, restored.Specs)
}

func TestProductModelRoundTripWithSpecs(t *testing.T) {
	repo := &productRepositoryImpl{}
	product := &domain.Product{
		ID:       1,
		Name:     "Mirage MR-166",
		Price:    decimal.RequireFromString("1056.00"),
		Width:    155,
		ImageURL: "https://example.com/mr166.jpg",
		Specs:    map[string]string{"Season": "Summer", "Diameter": "R13"},
	}

	model, err := toModel(product)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(model.Specs)))

	restored, err := repo.toDomain(model)
	require.NoError(t, err)
	assert.Equal(t, product.Specs, restored.Specs)
	assert.Equal(t, product.ImageURL, restored.ImageURL)
	assert.Equal(t, "1056.00", model.Price)
}
