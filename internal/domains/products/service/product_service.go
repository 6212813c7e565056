package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"nirvana-admin-backend/internal/domains/products/model"
	"nirvana-admin-backend/internal/domains/products/repository"
)

// =====================================================
// PRODUCT SERVICE
// =====================================================

// ProductService exposes catalog management operations.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req model.SaveProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req model.SaveProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo repository.Repository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.Repository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *productService) Create(ctx context.Context, req model.SaveProductRequest) (*model.Product, error) {
	product, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("product_id", product.ID).
		Str("title", product.Title).
		Msg("product created")

	return product, nil
}

func (s *productService) Update(ctx context.Context, id string, req model.SaveProductRequest) (*model.Product, error) {
	product, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("product_id", id).
		Msg("product updated")

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().
		Str("product_id", id).
		Msg("product deleted")

	return nil
}
