package view

import (
	"strconv"

	catalog "github.com/ridloal/agri-storefront/internal/catalog/domain"
)

type ProductCard struct {
	ID          int
	Title       string
	Description string
	Price       string
	ImageURL    string
	DetailHref  string
	ActionLabel string
}

func NewProductCard(p catalog.Product) ProductCard {
	return ProductCard{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.DisplayPrice(),
		ImageURL:    p.ImageURL,
		DetailHref:  "/products/" + strconv.Itoa(p.ID),
		ActionLabel: "Buy Now",
	}
}

// ProductFeature is the large row used on the products page.
type ProductFeature struct {
	ProductCard
	Stats     []catalog.Stat
	BuyAction string
	ReturnTo  string
}

func NewProductFeature(p catalog.Product) ProductFeature {
	return ProductFeature{
		ProductCard: NewProductCard(p),
		Stats:       p.Stats,
		BuyAction:   "/cart/items",
		ReturnTo:    "/products",
	}
}

// RelatedCard is the compact tile of the related-products strip.
type RelatedCard struct {
	Title    string
	Price    string
	ImageURL string
}

func NewRelatedCards(products []catalog.Product) []RelatedCard {
	cards := make([]RelatedCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, RelatedCard{Title: p.Title, Price: p.DisplayPrice(), ImageURL: p.ImageURL})
	}
	return cards
}
