package product

import (
	"context"

	"github.com/vinhnt21/smartmart/internal/domain"
)

type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) (*domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type Repository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (int, error)
	Update(ctx context.Context, product domain.Product) error
	Search(ctx context.Context, keyword string) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
}
