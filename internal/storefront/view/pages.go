package view

// Page data handed to the HTML templates, one type per template.

type HomePage struct {
	Title   string
	Header  Header
	Hero    Hero
	Related []RelatedCard
}

type ProductsPage struct {
	Title    string
	Header   Header
	Heading  string
	Intro    string
	Products []ProductFeature
}

type ProductDetailPage struct {
	Title     string
	Header    Header
	StatusBar StatusBar
	Product   ProductFeature
	Related   []RelatedCard
}

type CartView struct {
	Title  string
	Header Header
	Cart   CartPage
}

type NotFoundPage struct {
	Title   string
	Header  Header
	Message string
}

const (
	ProductsHeading = "Precision Agriculture"
	ProductsIntro   = "Discover our curated collection of sophisticated agricultural monitoring solutions, crafted for the modern farmer who demands excellence."
)
