package service

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
	"github.com/iyhunko/product-catalog/internal/sqs"
	"github.com/iyhunko/product-catalog/internal/storage"
)

// ProductService orchestrates product persistence, image blob storage,
// metrics, and change-event publishing.
type ProductService struct {
	repo      repository.ProductRepository
	blobs     storage.BlobStore
	publisher *sqs.Publisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case change events are not published.
func NewProductService(repo repository.ProductRepository, blobs storage.BlobStore, publisher *sqs.Publisher) *ProductService {
	return &ProductService{
		repo:      repo,
		blobs:     blobs,
		publisher: publisher,
	}
}

// ProductInput carries validated product fields into the service layer.
// ImageData is nil when no image was uploaded.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageData   []byte
	ImageExt    string
}

// CreateProduct stores the uploaded image and inserts a new product row
// referencing it. The blob is written first; a crash between the two writes
// can orphan the blob but never produces a row without an image.
func (ps *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error) {
	key, err := ps.blobs.Store(ctx, bytes.NewReader(in.ImageData), in.ImageExt)
	if err != nil {
		return nil, err
	}
	metrics.ImagesStored.Inc()

	product := &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       key,
	}

	created, err := ps.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	ps.publish(ctx, sqs.ActionCreated, created)

	return created, nil
}

// UpdateProduct overwrites name, description, and price of an existing
// product. When a new image is supplied it is stored first and the previous
// blob is removed best-effort after the row update succeeds.
func (ps *ProductService) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*model.Product, error) {
	product, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldImage := ""
	if in.ImageData != nil {
		key, err := ps.blobs.Store(ctx, bytes.NewReader(in.ImageData), in.ImageExt)
		if err != nil {
			return nil, err
		}
		metrics.ImagesStored.Inc()
		oldImage = product.Image
		product.Image = key
	}

	product.Name = in.Name
	product.Description = in.Description
	product.Price = in.Price
	product.Touch()

	updated, err := ps.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	if oldImage != "" {
		ps.removeBlob(ctx, oldImage)
	}

	metrics.ProductsUpdated.Inc()
	ps.publish(ctx, sqs.ActionUpdated, updated)

	return updated, nil
}

// DeleteProduct removes a product row and returns its prior representation.
// The image blob is removed best-effort after the row is gone.
func (ps *ProductService) DeleteProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ps.repo.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	ps.removeBlob(ctx, product.Image)

	metrics.ProductsDeleted.Inc()
	ps.publish(ctx, sqs.ActionDeleted, product)

	return product, nil
}

// ListProducts returns a page of products in insertion order.
func (ps *ProductService) ListProducts(ctx context.Context, page repository.Page) ([]*model.Product, error) {
	return ps.repo.List(ctx, page)
}

// SearchProducts returns all products whose name contains the given substring.
func (ps *ProductService) SearchProducts(ctx context.Context, name string) ([]*model.Product, error) {
	return ps.repo.SearchByName(ctx, name)
}

// CountProducts returns the total number of products.
func (ps *ProductService) CountProducts(ctx context.Context) (int64, error) {
	return ps.repo.Count(ctx)
}

func (ps *ProductService) publish(ctx context.Context, action string, product *model.Product) {
	if ps.publisher == nil {
		return
	}
	msg := sqs.ProductMessage{
		Action:    action,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
	}
	if err := ps.publisher.PublishProductMessage(ctx, msg); err != nil {
		// Log error but don't fail the request
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", action), slog.Int64("product_id", product.ID))
	}
}

func (ps *ProductService) removeBlob(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := ps.blobs.Remove(ctx, key); err != nil {
		// Orphaned blobs are tolerable; the row is the source of truth.
		slog.Error("Failed to remove image blob", slog.Any("err", err), slog.String("key", key))
	}
}
