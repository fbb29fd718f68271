package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ridloal/agri-storefront/internal/catalog/domain"
	"github.com/ridloal/agri-storefront/internal/platform/logger"
)

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

const productColumns = `id, title, description, price, currency, image_url, stats, is_related`

type postgresProductRepository struct {
	db       Querier
	currency string
}

// NewPostgresProductRepository reads products from a "products" table:
//
//	id int primary key, title text, description text, price numeric(12,2),
//	currency char(3), image_url text, stats jsonb, is_related bool, position int
//
// Rows priced in anything but currency are rejected with ErrInvalidCatalog.
func NewPostgresProductRepository(db Querier, currency string) ProductRepository {
	return &postgresProductRepository{db: db, currency: normalizeCurrency(currency)}
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, false)
}

func (r *postgresProductRepository) ListRelated(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, true)
}

func (r *postgresProductRepository) list(ctx context.Context, related bool) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE is_related = $1 ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query, related)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows, r.currency)
		if err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id), r.currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(s scanner, currency string) (*domain.Product, error) {
	var (
		p           domain.Product
		description sql.NullString
		stats       []byte
	)
	// decimal.Decimal implements sql.Scanner for numeric columns.
	if err := s.Scan(&p.ID, &p.Title, &description, &p.Price, &p.Currency, &p.ImageURL, &stats, &p.Related); err != nil {
		return nil, err
	}
	p.Description = description.String
	switch p.Currency = normalizeCurrency(p.Currency); p.Currency {
	case "":
		p.Currency = currency
	case currency:
	default:
		return nil, fmt.Errorf("%w: product %d priced in %s, catalog is in %s", ErrInvalidCatalog, p.ID, p.Currency, currency)
	}
	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &p.Stats); err != nil {
			return nil, fmt.Errorf("decode stats for product %d: %w", p.ID, err)
		}
	}
	return &p, nil
}
