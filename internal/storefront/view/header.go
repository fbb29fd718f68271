package view

import (
	"net/url"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
)

const BrandName = "Smart Agricultural Assistant"

type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// NavigationMenu is the slide-in drawer. Its open state lives in the
// "menu=open" query parameter, so toggling is a plain link.
type NavigationMenu struct {
	Open      bool
	Items     []NavItem
	OpenHref  string
	CloseHref string
}

var menuItems = []NavItem{
	{Label: "Home", Href: "/"},
	{Label: "Products", Href: "/products"},
	{Label: "About Us", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
}

func NewNavigationMenu(open bool, currentPath string) NavigationMenu {
	items := make([]NavItem, len(menuItems))
	for i, item := range menuItems {
		item.Active = item.Href == currentPath
		items[i] = item
	}
	return NavigationMenu{
		Open:      open,
		Items:     items,
		OpenHref:  currentPath + "?" + url.Values{"menu": {"open"}}.Encode(),
		CloseHref: currentPath,
	}
}

type Header struct {
	Title     string
	HomeHref  string
	CartHref  string
	Badge     int
	ShowBadge bool
	Menu      NavigationMenu
}

// NewHeader shows the number of cart lines on the badge, hidden for an empty cart.
func NewHeader(snap domain.Snapshot, menuOpen bool, currentPath string) Header {
	return Header{
		Title:     BrandName,
		HomeHref:  "/",
		CartHref:  "/cart",
		Badge:     snap.Count,
		ShowBadge: snap.Count > 0,
		Menu:      NewNavigationMenu(menuOpen, currentPath),
	}
}
