package view

type Hero struct {
	Title         string
	Tagline       string
	ActionLabel   string
	ActionHref    string
	BackgroundURL string
}

func NewHero() Hero {
	return Hero{
		Title:         BrandName,
		Tagline:       "Revolutionizing Farming with AI-Powered Tools",
		ActionLabel:   "Learn More",
		ActionHref:    "/products",
		BackgroundURL: "https://images.unsplash.com/photo-1625246333195-78d9c38ad449?auto=format&fit=crop&q=80&w=1920",
	}
}
