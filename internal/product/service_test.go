package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type mockProductsRepository struct {
	createFn   func(ctx context.Context, product domain.Product) (int, error)
	updateFn   func(ctx context.Context, product domain.Product) error
	findByIDFn func(ctx context.Context, id int) (*domain.Product, error)
}

func (m *mockProductsRepository) Create(ctx context.Context, product domain.Product) (int, error) {
	return m.createFn(ctx, product)
}

func (m *mockProductsRepository) Update(ctx context.Context, product domain.Product) error {
	return m.updateFn(ctx, product)
}

func (m *mockProductsRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockProductsRepository) Search(ctx context.Context, keyword string) ([]domain.Product, error) {
	return nil, nil
}

func (m *mockProductsRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	return nil, nil
}

func validCreateRequest() CreateProductRequest {
	return CreateProductRequest{
		Name:         "Jasmine Rice 5kg",
		Unit:         "bag",
		ImportPrice:  decimal.NewFromInt(80),
		SellingPrice: decimal.NewFromInt(95),
		CategoryID:   2,
	}
}

func TestCreateProduct_Success(t *testing.T) {
	var stored domain.Product
	repo := &mockProductsRepository{
		createFn: func(ctx context.Context, product domain.Product) (int, error) {
			stored = product
			return 7, nil
		},
		findByIDFn: func(ctx context.Context, id int) (*domain.Product, error) {
			stored.ID = id
			return &stored, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	created, err := svc.CreateProduct(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "Jasmine Rice 5kg", created.Name)
	assert.False(t, created.Perishable())
}

func TestCreateProduct_RejectsMarginAtOrBelowImportPrice(t *testing.T) {
	repo := &mockProductsRepository{
		createFn: func(ctx context.Context, product domain.Product) (int, error) {
			t.Fatal("create should not be reached")
			return 0, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	req := validCreateRequest()
	req.SellingPrice = req.ImportPrice

	_, err := svc.CreateProduct(context.Background(), req)

	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "sellingPrice", ve.Details[0].Field)
}

func TestCreateProduct_RejectsSafetyThresholdWithoutExpiryDays(t *testing.T) {
	svc := NewService(&mockProductsRepository{}, zap.NewNop())

	threshold := 30
	req := validCreateRequest()
	req.SafetyThreshold = &threshold

	_, err := svc.CreateProduct(context.Background(), req)

	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "safetyThreshold", ve.Details[0].Field)
}

func TestCreateProduct_CollectsAllValidationDetails(t *testing.T) {
	svc := NewService(&mockProductsRepository{}, zap.NewNop())

	req := CreateProductRequest{
		Name:         "  ",
		Unit:         "",
		ImportPrice:  decimal.Zero,
		SellingPrice: decimal.Zero,
		CategoryID:   0,
	}

	_, err := svc.CreateProduct(context.Background(), req)

	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	fields := make([]string, 0, len(ve.Details))
	for _, d := range ve.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"name", "unit", "categoryId", "importPrice"}, fields)
}

func TestUpdateProduct_PerishableAttributesPassThrough(t *testing.T) {
	expiry, threshold := 7, 5
	var updated domain.Product
	repo := &mockProductsRepository{
		updateFn: func(ctx context.Context, product domain.Product) error {
			updated = product
			return nil
		},
		findByIDFn: func(ctx context.Context, id int) (*domain.Product, error) {
			return &updated, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	req := UpdateProductRequest{
		Name:            "Fresh Milk 1L",
		Unit:            "bottle",
		ImportPrice:     decimal.NewFromInt(12),
		SellingPrice:    decimal.NewFromInt(18),
		CategoryID:      3,
		ExpiryDays:      &expiry,
		SafetyThreshold: &threshold,
	}

	result, err := svc.UpdateProduct(context.Background(), 4, req)

	require.NoError(t, err)
	require.True(t, result.Perishable())
	assert.Equal(t, 7, *result.ExpiryDays)
	assert.Equal(t, 5, *result.SafetyThreshold)
	assert.Equal(t, 4, updated.ID)
}
