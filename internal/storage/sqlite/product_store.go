package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

// ProductStore — sqlite-реализация таблицы продуктов.
// Файл базы принадлежит хранилищу эксклюзивно и закрывается через Close.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore открывает (или создаёт) файл базы и таблицу products.
func NewProductStore(path string) (*ProductStore, error) {
	db, err := openDatabase(path)
	if err != nil {
		return nil, err
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS products (
			product_id      TEXT PRIMARY KEY,
			product_name    TEXT NOT NULL,
			expiration_date TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create products table: %w", err)
	}

	return &ProductStore{db: db}, nil
}

// InsertProduct добавляет строку; повторный product_id нарушает первичный ключ.
func (s *ProductStore) InsertProduct(id, name, expiration string) error {
	if _, err := s.db.Exec(
		"INSERT INTO products (product_id, product_name, expiration_date) VALUES (?, ?, ?)",
		id, name, expiration,
	); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// FetchAllProducts возвращает все строки в порядке вставки.
func (s *ProductStore) FetchAllProducts() ([]domain.ProductRecord, error) {
	rows, err := s.db.Query(
		"SELECT product_id, product_name, expiration_date FROM products ORDER BY rowid")
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

// Close освобождает соединение с базой.
func (s *ProductStore) Close() error {
	return s.db.Close()
}

var _ domain.ProductStore = (*ProductStore)(nil)
