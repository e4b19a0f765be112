package application

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/wheelmaster/internal/catalog/domain"
)

type mockProductRepository struct {
	nextID uint
	byID   map[uint]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{byID: make(map[uint]*domain.Product)}
}

func (m *mockProductRepository) Save(_ context.Context, product *domain.Product) error {
	if product.ID == 0 {
		m.nextID++
		product.ID = m.nextID
		product.CreatedAt = time.Now()
	}
	product.UpdatedAt = time.Now()
	clone := *product
	m.byID[product.ID] = &clone
	return nil
}

func (m *mockProductRepository) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	if p, ok := m.byID[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (m *mockProductRepository) FindByName(_ context.Context, name string) (*domain.Product, error) {
	for _, p := range m.byID {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepository) List(_ context.Context) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, len(m.byID))
	for _, p := range m.byID {
		clone := *p
		products = append(products, &clone)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleDefinitions() []domain.ProductDefinition {
	return []domain.ProductDefinition{
		{
			Name:        "Mirage MR-166",
			Description: "Summer tires for passenger vehicles",
			Price:       decimalPtr("1056.00"),
			Width:       155,
			ImageURL:    "https://example.com/mr166.jpg",
			Specs:       map[string]string{"Season": "Summer", "Diameter": "R13"},
		},
		{
			Name:        "WinterGrip Ice",
			Description: "Winter tires with improved ice traction",
			Price:       decimalPtr("1450.00"),
			Width:       175,
			ImageURL:    "https://example.com/wintergrip.jpg",
			Specs:       map[string]string{"Season": "Winter"},
		},
	}
}

func TestSyncInsertsNewProducts(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewCatalogSyncService(repo)

	report, err := svc.Sync(context.Background(), sampleDefinitions())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 0, report.Skipped)
	assert.Empty(t, report.Errors)
	assert.Len(t, repo.byID, 2)
}

func TestSyncRoundTripPreservesAttributes(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewCatalogSyncService(repo)
	query := NewCatalogQueryService(repo)

	_, err := svc.Sync(context.Background(), sampleDefinitions())
	require.NoError(t, err)

	stored, err := repo.FindByName(context.Background(), "Mirage MR-166")
	require.NoError(t, err)
	require.NotNil(t, stored)

	dto, err := query.GetProduct(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mirage MR-166", dto.Name)
	assert.Equal(t, "Summer tires for passenger vehicles", dto.Description)
	assert.Equal(t, "1056.00", dto.Price)
	assert.Equal(t, 155, dto.Width)
	assert.Equal(t, "https://example.com/mr166.jpg", dto.ImageURL)
	assert.Equal(t, map[string]string{"Season": "Summer", "Diameter": "R13"}, dto.Specs)
}

func TestSyncIsIdempotent(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewCatalogSyncService(repo)
	defs := sampleDefinitions()

	first, err := svc.Sync(context.Background(), defs)
	require.NoError(t, err)
	require.Equal(t, 2, first.Inserted)
	countAfterFirst := len(repo.byID)

	second, err := svc.Sync(context.Background(), defs)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Updated)
	assert.Equal(t, 0, second.Skipped)
	assert.Equal(t, countAfterFirst, len(repo.byID))
}

func TestSyncUpdatesExistingProductByName(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewCatalogSyncService(repo)

	_, err := svc.Sync(context.Background(), sampleDefinitions())
	require.NoError(t, err)
	original, err := repo.FindByName(context.Background(), "Mirage MR-166")
	require.NoError(t, err)
	require.NotNil(t, original)

	updated := []domain.ProductDefinition{{
		Name:        "Mirage MR-166",
		Description: "Updated description",
		Price:       decimalPtr("1199.00"),
		Width:       155,
	}}
	report, err := svc.Sync(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Inserted)
	assert.Equal(t, 1, report.Updated)

	// 名称唯一性保持，代理主键不变
	assert.Len(t, repo.byID, 2)
	current, err := repo.FindByName(context.Background(), "Mirage MR-166")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, original.ID, current.ID)
	assert.Equal(t, "Updated description", current.Description)
	assert.True(t, current.Price.Equal(decimal.RequireFromString("1199.00")))
}

func TestSyncSkipsInvalidRecordsAndContinues(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewCatalogSyncService(repo)

	defs := []domain.ProductDefinition{
		{Price: decimalPtr("100")}, // 缺名称
		{Name: "Broken Price", Price: decimalPtr("-5")},
		{Name: "RoadMaster Pro", Price: decimalPtr("890.00"), Width: 185},
		{Name: "No Price"},
	}

	report, err := svc.Sync(context.Background(), defs)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 3, report.Skipped)
	require.Len(t, report.Errors, 3)
	assert.Equal(t, 0, report.Errors[0].Index)
	assert.Equal(t, 1, report.Errors[1].Index)
	assert.Equal(t, "Broken Price", report.Errors[1].Name)
	assert.Equal(t, 3, report.Errors[2].Index)

	good, err := repo.FindByName(context.Background(), "RoadMaster Pro")
	require.NoError(t, err)
	assert.NotNil(t, good)
	assert.Len(t, repo.byID, 1)
}

func TestListProductsOrderedByID(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewCatalogSyncService(repo)
	query := NewCatalogQueryService(repo)

	_, err := svc.Sync(context.Background(), sampleDefinitions())
	require.NoError(t, err)

	products, err := query.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Less(t, products[0].ID, products[1].ID)
	assert.Equal(t, "Mirage MR-166", products[0].Name)
}

func TestGetProductUnknownIDFails(t *testing.T) {
	query := NewCatalogQueryService(newMockProductRepository())

	_, err := query.GetProduct(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestSyncScenarioMR166(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewCatalogSyncService(repo)
	query := NewCatalogQueryService(repo)

	defs := []domain.ProductDefinition{{Name: "MR-166", Price: decimalPtr("1000.00"), Width: 155}}
	report, err := svc.Sync(context.Background(), defs)
	require.NoError(t, err)
	require.Equal(t, 1, report.Inserted)

	products, err := query.ListProducts(context.Background())
	require.NoError(t, err)

	matches := 0
	for _, p := range products {
		if p.Name == "MR-166" {
			matches++
			assert.Equal(t, "1000.00", p.Price)
		}
	}
	assert.Equal(t, 1, matches)
}
