package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/agri-storefront/internal/catalog/domain"
	"github.com/ridloal/agri-storefront/internal/catalog/repository"
	"github.com/ridloal/agri-storefront/internal/catalog/service"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(cs service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: cs}
}

// ProductDTO adds the derived display price to the catalog record.
type ProductDTO struct {
	domain.Product
	DisplayPrice string `json:"display_price"`
}

func toDTO(p domain.Product) ProductDTO {
	return ProductDTO{Product: p, DisplayPrice: p.DisplayPrice()}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/related", h.ListRelated)
		productRoutes.GET("/:id", h.GetProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, toDTOs(products))
}

func (h *ProductHandler) ListRelated(c *gin.Context) {
	products, err := h.catalogService.ListRelated(c.Request.Context())
	if err != nil {
		logger.Error("ListRelated: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve related products"})
		return
	}
	c.JSON(http.StatusOK, toDTOs(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id must be a positive integer"})
		return
	}
	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("GetProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, toDTO(*product))
}

func toDTOs(products []domain.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toDTO(p))
	}
	return dtos
}
