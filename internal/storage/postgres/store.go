// Пакет postgres даёт те же таблицы продуктов и пользователей поверх
// PostgreSQL — для развёртываний, где встраиваемой базы недостаточно.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	defaultConnTimeout  = 5 * time.Second
	defaultMaxOpenConns = 5
	defaultMaxIdleConns = 5
	opTimeout           = 5 * time.Second
)

// Store оборачивает SQL-подключение к PostgreSQL.
type Store struct {
	db *sql.DB
}

// Open открывает подключение, проверяет доступность базы и создаёт обе таблицы.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// DB возвращает raw SQL DB, когда нужен низкоуровневый доступ.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping проверяет доступность подключения.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("postgres store is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	return s.db.PingContext(pingCtx)
}

// ensureSchema создаёт таблицы products и users, если их ещё нет.
func (s *Store) ensureSchema(ctx context.Context) error {
	schemaCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			product_id      TEXT PRIMARY KEY,
			product_name    TEXT NOT NULL,
			expiration_date TEXT NOT NULL,
			seq             BIGSERIAL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			email    TEXT NOT NULL,
			password TEXT NOT NULL,
			seq      BIGSERIAL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(schemaCtx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Close закрывает подключение к БД.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
