package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	cartService "github.com/ridloal/agri-storefront/internal/cart/service"
	catalogRepo "github.com/ridloal/agri-storefront/internal/catalog/repository"
	catalogService "github.com/ridloal/agri-storefront/internal/catalog/service"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
	"github.com/ridloal/agri-storefront/internal/session"
	"github.com/ridloal/agri-storefront/internal/storefront/view"
)

type StorefrontHandler struct {
	catalogService catalogService.CatalogService
	cartService    cartService.CartService
	now            func() time.Time
}

func NewStorefrontHandler(cs catalogService.CatalogService, carts cartService.CartService) *StorefrontHandler {
	return &StorefrontHandler{catalogService: cs, cartService: carts, now: time.Now}
}

// RegisterRoutes mounts the HTML pages at the root of router. The router must
// have the session middleware installed and the templates from LoadTemplates set.
func (h *StorefrontHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.GET("/products", h.Products)
	router.GET("/products/:id", h.ProductDetail)
	router.GET("/cart", h.Cart)
	router.POST("/cart/items", h.AddToCart)
	router.POST("/cart/items/:product_id/remove", h.RemoveFromCart)
	router.NoRoute(h.NotFound)
}

func (h *StorefrontHandler) header(c *gin.Context) view.Header {
	snap := h.cartService.GetCart(c.Request.Context(), session.FromContext(c))
	return view.NewHeader(snap, c.Query("menu") == "open", c.Request.URL.Path)
}

func (h *StorefrontHandler) Home(c *gin.Context) {
	related, _ := h.catalogService.ListRelated(c.Request.Context())
	c.HTML(http.StatusOK, "home.tmpl", view.HomePage{
		Title:   "Home",
		Header:  h.header(c),
		Hero:    view.NewHero(),
		Related: view.NewRelatedCards(related),
	})
}

func (h *StorefrontHandler) Products(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Products page: catalog error", err)
		c.String(http.StatusInternalServerError, "Failed to load products")
		return
	}
	features := make([]view.ProductFeature, 0, len(products))
	for _, p := range products {
		features = append(features, view.NewProductFeature(p))
	}
	c.HTML(http.StatusOK, "products.tmpl", view.ProductsPage{
		Title:    "Products",
		Header:   h.header(c),
		Heading:  view.ProductsHeading,
		Intro:    view.ProductsIntro,
		Products: features,
	})
}

func (h *StorefrontHandler) ProductDetail(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.NotFound(c)
		return
	}
	product, err := h.catalogService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			h.NotFound(c)
			return
		}
		logger.Error("Product page: catalog error", err)
		c.String(http.StatusInternalServerError, "Failed to load product")
		return
	}
	if product.Related {
		h.NotFound(c)
		return
	}

	feature := view.NewProductFeature(*product)
	feature.ReturnTo = feature.DetailHref
	related, _ := h.catalogService.ListRelated(c.Request.Context())
	c.HTML(http.StatusOK, "product.tmpl", view.ProductDetailPage{
		Title:     product.Title,
		Header:    h.header(c),
		StatusBar: view.NewStatusBar(h.now()),
		Product:   feature,
		Related:   view.NewRelatedCards(related),
	})
}

func (h *StorefrontHandler) Cart(c *gin.Context) {
	snap := h.cartService.GetCart(c.Request.Context(), session.FromContext(c))
	c.HTML(http.StatusOK, "cart.tmpl", view.CartView{
		Title:  "Cart",
		Header: view.NewHeader(snap, c.Query("menu") == "open", c.Request.URL.Path),
		Cart:   view.NewCartPage(snap),
	})
}

// AddToCart handles the "Buy Now" form and redirects to the form's "next" path.
func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil || productID <= 0 {
		c.String(http.StatusBadRequest, "product_id must be a positive integer")
		return
	}

	_, err = h.cartService.AddToCart(c.Request.Context(), session.FromContext(c), productID)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrProductNotFound):
			h.NotFound(c)
		case errors.Is(err, cartService.ErrProductNotPurchasable):
			c.String(http.StatusUnprocessableEntity, "This product is not available for purchase")
		default:
			logger.Error("AddToCart form: service error", err)
			c.String(http.StatusInternalServerError, "Failed to add item to cart")
		}
		return
	}
	c.Redirect(http.StatusSeeOther, localPath(c.PostForm("next"), "/products"))
}

func (h *StorefrontHandler) RemoveFromCart(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.String(http.StatusBadRequest, "product_id must be an integer")
		return
	}
	h.cartService.RemoveFromCart(c.Request.Context(), session.FromContext(c), productID)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *StorefrontHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", view.NotFoundPage{
		Title:   "Not Found",
		Header:  h.header(c),
		Message: "We couldn't find what you were looking for.",
	})
}

// localPath accepts only same-site absolute paths, so "next" cannot redirect off-site.
func localPath(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n") {
		return fallback
	}
	return next
}
