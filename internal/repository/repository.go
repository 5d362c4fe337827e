package repository

import (
	"context"
	"errors"

	"github.com/iyhunko/product-catalog/internal/model"
)

// ErrProductNotFound is returned when a referenced product ID does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, page Page) ([]*model.Product, error)
	SearchByName(ctx context.Context, name string) ([]*model.Product, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
