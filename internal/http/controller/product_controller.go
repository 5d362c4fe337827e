package controller

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
	"github.com/iyhunko/product-catalog/internal/service"
)

// ProductController handles HTTP requests for product catalog operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductForm represents the multipart form fields shared by create and
// update requests. The image file itself is read separately.
type ProductForm struct {
	Name        string   `form:"name" binding:"required,max=255"`
	Description string   `form:"description" binding:"required,max=255"`
	Price       *float64 `form:"price" binding:"required,gte=0"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ListProductsRequest represents the query parameters for listing products.
type ListProductsRequest struct {
	Offset int `form:"offset,default=0"`
	Limit  int `form:"limit,default=15"`
}

// ListProducts handles the HTTP GET request for listing products with
// offset/limit pagination.
func (pc *ProductController) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := repository.NewPage(req.Offset, req.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := pc.productService.ListProducts(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

// SearchProducts handles the HTTP GET request for searching products by a
// name substring. A missing name parameter matches every product.
func (pc *ProductController) SearchProducts(c *gin.Context) {
	products, err := pc.productService.SearchProducts(c.Request.Context(), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search products"})
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

// CreateProduct handles the HTTP POST request for creating a new product
// from a multipart form with an image file.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, ext, err := readImageFile(c, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := pc.productService.CreateProduct(c.Request.Context(), service.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       *form.Price,
		ImageData:   data,
		ImageExt:    ext,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(created))
}

// UpdateProduct handles the HTTP POST request for updating an existing
// product. The image file is optional; when absent the stored image is kept.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, ext, err := readImageFile(c, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := pc.productService.UpdateProduct(c.Request.Context(), id, service.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       *form.Price,
		ImageData:   data,
		ImageExt:    ext,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("product with id %d wasn't found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updated))
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
// A missing product yields a 200 response with an error body; this mirrors
// the original API contract that existing clients depend on.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return
	}

	deleted, err := pc.productService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": fmt.Sprintf("product with id %d wasn't found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(deleted))
}

// CountProducts handles the HTTP GET request for counting products.
func (pc *ProductController) CountProducts(c *gin.Context) {
	count, err := pc.productService.CountProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// readImageFile reads the uploaded "image" form file and verifies by content
// sniffing that it actually is an image. When the file is absent it returns
// an error if required, or nil data otherwise.
func readImageFile(c *gin.Context, required bool) ([]byte, string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if !required && errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", errors.New("image file is required")
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", errors.New("failed to read image file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", errors.New("failed to read image file")
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, "", errors.New("image must be a valid image file")
	}

	return data, imageExt(file, mtype), nil
}

// imageExt prefers the client's original extension and falls back to the
// one implied by the sniffed content type.
func imageExt(file *multipart.FileHeader, mtype *mimetype.MIME) string {
	if ext := filepath.Ext(file.Filename); ext != "" {
		return ext
	}
	return mtype.Extension()
}

func toProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Image:       product.Image,
		CreatedAt:   product.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   product.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toProductResponses(products []*model.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses
}
