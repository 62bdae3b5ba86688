package controllers

import (
	"errors"
	"net/http"

	"storefront-service/models"
	"storefront-service/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogController serves read-only category and product endpoints, with a
// redis read-through cache on the product reads.
type CatalogController struct {
	repo  repository.CatalogRepository
	cache *CacheManager
}

func NewCatalogController(repo repository.CatalogRepository, cache *CacheManager) *CatalogController {
	return &CatalogController{repo: repo, cache: cache}
}

// GetCategories returns all categories.
func (cc *CatalogController) GetCategories(c *gin.Context) {
	categories, err := cc.repo.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetProductsByCategory returns the products of one category.
func (cc *CatalogController) GetProductsByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	ctx := c.Request.Context()
	key := productListKey(categoryID.String())

	var products []models.Product
	if cc.cache.get(ctx, key, &products) {
		c.JSON(http.StatusOK, products)
		return
	}

	products, err = cc.repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	cc.cache.set(ctx, key, products)
	c.JSON(http.StatusOK, products)
}

// GetProductByID returns one product, 404 when absent.
func (cc *CatalogController) GetProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	ctx := c.Request.Context()
	key := productDetailKey(productID.String())

	var product models.Product
	if cc.cache.get(ctx, key, &product) {
		c.JSON(http.StatusOK, product)
		return
	}

	found, err := cc.repo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product details"})
		return
	}

	cc.cache.set(ctx, key, found)
	c.JSON(http.StatusOK, found)
}
