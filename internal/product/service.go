package product

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vinhnt21/smartmart/internal/domain"
	"github.com/vinhnt21/smartmart/internal/errors"
)

type catalogService struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*domain.Product, error) {
	candidate := domain.Product{
		Name:            strings.TrimSpace(req.Name),
		Unit:            strings.TrimSpace(req.Unit),
		ImportPrice:     req.ImportPrice,
		SellingPrice:    req.SellingPrice,
		CategoryID:      req.CategoryID,
		ExpiryDays:      req.ExpiryDays,
		SafetyThreshold: req.SafetyThreshold,
	}

	if details := validateProduct(candidate); len(details) > 0 {
		return nil, errors.NewValidationError("invalid product", details...)
	}

	id, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.Int("productId", id),
		zap.String("name", candidate.Name),
		zap.Bool("perishable", candidate.Perishable()))

	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id int, req UpdateProductRequest) (*domain.Product, error) {
	candidate := domain.Product{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Unit:            strings.TrimSpace(req.Unit),
		ImportPrice:     req.ImportPrice,
		SellingPrice:    req.SellingPrice,
		CategoryID:      req.CategoryID,
		ExpiryDays:      req.ExpiryDays,
		SafetyThreshold: req.SafetyThreshold,
	}

	if details := validateProduct(candidate); len(details) > 0 {
		return nil, errors.NewValidationError("invalid product", details...)
	}

	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.Int("productId", id))

	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.repo.ListAll(ctx)
	}
	return s.repo.Search(ctx, keyword)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListAll(ctx)
}

// validateProduct enforces catalog rules; pricing and stock rules live with
// the engine services, not here.
func validateProduct(p domain.Product) []errors.ValidationDetail {
	var details []errors.ValidationDetail

	if p.Name == "" {
		details = append(details, errors.ValidationDetail{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if p.Unit == "" {
		details = append(details, errors.ValidationDetail{
			Field:   "unit",
			Message: "unit must not be empty",
		})
	}
	if p.CategoryID <= 0 {
		details = append(details, errors.ValidationDetail{
			Field:   "categoryId",
			Message: "categoryId must be a positive integer",
		})
	}
	if p.ImportPrice.IsNegative() || p.ImportPrice.IsZero() {
		details = append(details, errors.ValidationDetail{
			Field:   "importPrice",
			Message: "importPrice must be greater than zero",
		})
	} else if !p.HasValidMargin() {
		details = append(details, errors.ValidationDetail{
			Field:   "sellingPrice",
			Message: "sellingPrice must be greater than importPrice",
		})
	}
	if p.ExpiryDays != nil && *p.ExpiryDays <= 0 {
		details = append(details, errors.ValidationDetail{
			Field:   "expiryDays",
			Message: "expiryDays must be a positive integer",
		})
	}
	if p.SafetyThreshold != nil && p.ExpiryDays == nil {
		details = append(details, errors.ValidationDetail{
			Field:   "safetyThreshold",
			Message: "safetyThreshold only applies to perishable products",
		})
	}
	if p.SafetyThreshold != nil && *p.SafetyThreshold < 0 {
		details = append(details, errors.ValidationDetail{
			Field:   "safetyThreshold",
			Message: "safetyThreshold must not be negative",
		})
	}

	return details
}
