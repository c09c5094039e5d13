package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

type productStore struct {
	db *sql.DB
}

// NewProductStore создаёт PostgreSQL-реализацию ProductStore поверх Store.
// Close закрывает общий пул подключений; повторный Close безопасен.
func NewProductStore(store *Store) domain.ProductStore {
	return &productStore{db: store.DB()}
}

func (s *productStore) InsertProduct(id, name, expiration string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO products (product_id, product_name, expiration_date)
		VALUES ($1, $2, $3)
	`, id, name, expiration); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (s *productStore) FetchAllProducts() ([]domain.ProductRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT product_id, product_name, expiration_date
		FROM products
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.ProductRecord
	for rows.Next() {
		var rec domain.ProductRecord
		if err := rows.Scan(&rec.ProductID, &rec.Name, &rec.Expiration); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return records, nil
}

func (s *productStore) Close() error {
	return s.db.Close()
}

var _ domain.ProductStore = (*productStore)(nil)
