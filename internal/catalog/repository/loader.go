package repository

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ridloal/agri-storefront/internal/catalog/domain"
)

//go:embed catalog.yaml
var defaultCatalog string

type catalogFile struct {
	Currency string          `yaml:"currency"`
	Products []productRecord `yaml:"products"`
	Related  []productRecord `yaml:"related"`
}

type productRecord struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Currency    string `yaml:"currency"`
	ImageURL    string `yaml:"image_url"`
	Stats       []struct {
		Label string `yaml:"label"`
		Value string `yaml:"value"`
	} `yaml:"stats"`
}

// Catalog is a decoded catalog file. Every product is priced in Currency, so
// carts built from it can total in that currency.
type Catalog struct {
	Currency string
	Products []domain.Product
}

// LoadCatalog decodes a YAML catalog. The file's currency wins over
// defaultCurrency; a record may repeat it but never name another one.
func LoadCatalog(r io.Reader, defaultCurrency string) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidCatalog, err)
	}

	currency := normalizeCurrency(file.Currency)
	if currency == "" {
		currency = normalizeCurrency(defaultCurrency)
	}
	if currency == "" {
		return nil, fmt.Errorf("%w: no currency given", ErrInvalidCatalog)
	}

	products := make([]domain.Product, 0, len(file.Products)+len(file.Related))
	seen := make(map[int]bool)
	appendRecords := func(records []productRecord, related bool) error {
		for _, rec := range records {
			p, err := rec.toProduct(currency, related)
			if err != nil {
				return err
			}
			if seen[p.ID] {
				return fmt.Errorf("%w: duplicate product id %d", ErrInvalidCatalog, p.ID)
			}
			seen[p.ID] = true
			products = append(products, p)
		}
		return nil
	}
	if err := appendRecords(file.Products, false); err != nil {
		return nil, err
	}
	if err := appendRecords(file.Related, true); err != nil {
		return nil, err
	}
	return &Catalog{Currency: currency, Products: products}, nil
}

// LoadCatalogFile reads the catalog at path, or the embedded catalog when path is empty.
func LoadCatalogFile(path, defaultCurrency string) (*Catalog, error) {
	if path == "" {
		return LoadCatalog(strings.NewReader(defaultCatalog), defaultCurrency)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f, defaultCurrency)
}

func (rec productRecord) toProduct(currency string, related bool) (domain.Product, error) {
	if rec.ID <= 0 {
		return domain.Product{}, fmt.Errorf("%w: product id must be positive, got %d", ErrInvalidCatalog, rec.ID)
	}
	if strings.TrimSpace(rec.Title) == "" {
		return domain.Product{}, fmt.Errorf("%w: product %d has no title", ErrInvalidCatalog, rec.ID)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(rec.Price))
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: product %d price %q: %v", ErrInvalidCatalog, rec.ID, rec.Price, err)
	}
	if price.IsNegative() {
		return domain.Product{}, fmt.Errorf("%w: product %d has negative price", ErrInvalidCatalog, rec.ID)
	}
	if c := normalizeCurrency(rec.Currency); c != "" && c != currency {
		return domain.Product{}, fmt.Errorf("%w: product %d priced in %s, catalog is in %s", ErrInvalidCatalog, rec.ID, c, currency)
	}

	p := domain.Product{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Price:       price,
		Currency:    currency,
		ImageURL:    rec.ImageURL,
		Related:     related,
	}
	for _, s := range rec.Stats {
		p.Stats = append(p.Stats, domain.Stat{Label: s.Label, Value: s.Value})
	}
	return p, nil
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
