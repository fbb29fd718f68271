package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
	"github.com/ridloal/agri-storefront/internal/cart/service"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
	"github.com/ridloal/agri-storefront/internal/session"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

type CartItemDTO struct {
	ProductID    int    `json:"product_id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
	LineTotal    string `json:"line_total"`
	DisplayPrice string `json:"display_price"`
}

type CartDTO struct {
	Items   []CartItemDTO `json:"items"`
	Total   string        `json:"total"`
	Amount  string        `json:"total_amount"`
	Count   int           `json:"count"`
	Units   int           `json:"units"`
	Version uint64        `json:"version"`
}

func toCartDTO(snap domain.Snapshot) CartDTO {
	dto := CartDTO{
		Items:   make([]CartItemDTO, 0, len(snap.Items)),
		Total:   snap.Total,
		Amount:  snap.TotalAmount.StringFixed(2),
		Count:   snap.Count,
		Units:   snap.Units,
		Version: snap.Version,
	}
	for _, item := range snap.Items {
		dto.Items = append(dto.Items, CartItemDTO{
			ProductID:    item.ID,
			Title:        item.Title,
			ImageURL:     item.ImageURL,
			Price:        item.Price.StringFixed(2),
			Quantity:     item.Quantity,
			LineTotal:    item.LineTotal().StringFixed(2),
			DisplayPrice: item.DisplayPrice(),
		})
	}
	return dto
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.GetCart)
		cartRoutes.POST("/items", h.AddItem)
		cartRoutes.DELETE("/items/:product_id", h.RemoveItem)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	snap := h.cartService.GetCart(c.Request.Context(), session.FromContext(c))
	c.JSON(http.StatusOK, toCartDTO(snap))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	snap, err := h.cartService.AddToCart(c.Request.Context(), session.FromContext(c), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrProductNotPurchasable) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.Error("AddItem Hdl: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}
	c.JSON(http.StatusOK, toCartDTO(snap))
}

// RemoveItem answers 200 with the current cart for any integer id, including
// ids that were never in it.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id must be an integer"})
		return
	}
	snap := h.cartService.RemoveFromCart(c.Request.Context(), session.FromContext(c), productID)
	c.JSON(http.StatusOK, toCartDTO(snap))
}
