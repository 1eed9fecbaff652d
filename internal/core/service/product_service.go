package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lainecomfort/storefront/internal/core/domain"
	"github.com/lainecomfort/storefront/internal/port"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	repo port.ProductRepository
}

func NewProductService(repo port.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// CreateProduct persists the product as-is. Identity is always
// store-assigned; callers must not set one.
func (s *ProductService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("save product: %w", err)
	}

	log.Println("Product created successfully")
	return saved, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return domain.Product{}, fmt.Errorf("%w with id %d", ErrProductNotFound, id)
	}
	return *product, nil
}
