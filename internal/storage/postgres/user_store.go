package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

type userStore struct {
	db *sql.DB
}

// NewUserStore создаёт PostgreSQL-реализацию UserStore поверх Store.
func NewUserStore(store *Store) domain.UserStore {
	return &userStore{db: store.DB()}
}

func (s *userStore) InsertUser(email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
	`, email, password); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *userStore) FetchAllUsers() ([]domain.UserRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT email, password
		FROM users
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.UserRecord
	for rows.Next() {
		var rec domain.UserRecord
		if err := rows.Scan(&rec.Email, &rec.Password); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return records, nil
}

func (s *userStore) Close() error {
	return s.db.Close()
}

var _ domain.UserStore = (*userStore)(nil)
