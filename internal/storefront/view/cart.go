package view

import (
	"strconv"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
)

type CartLine struct {
	ID           int
	Title        string
	ImageURL     string
	Price        string
	Quantity     int
	RemoveAction string
}

type CartPage struct {
	Empty         bool
	Heading       string
	Message       string
	BrowseLabel   string
	BrowseHref    string
	Lines         []CartLine
	TotalLabel    string
	Total         string
	CheckoutLabel string
}

func NewCartPage(snap domain.Snapshot) CartPage {
	if snap.IsEmpty() {
		return CartPage{
			Empty:       true,
			Heading:     "Your Cart is Empty",
			Message:     "Discover our premium agricultural solutions.",
			BrowseLabel: "Browse Products",
			BrowseHref:  "/products",
		}
	}

	lines := make([]CartLine, 0, len(snap.Items))
	for _, item := range snap.Items {
		lines = append(lines, CartLine{
			ID:           item.ID,
			Title:        item.Title,
			ImageURL:     item.ImageURL,
			Price:        item.DisplayPrice(),
			Quantity:     item.Quantity,
			RemoveAction: "/cart/items/" + strconv.Itoa(item.ID) + "/remove",
		})
	}
	return CartPage{
		Heading:       "Shopping Cart",
		Lines:         lines,
		TotalLabel:    "Total",
		Total:         snap.Total,
		CheckoutLabel: "Proceed to Checkout",
	}
}
