package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

// UserStore — sqlite-реализация таблицы пользователей.
// Таблица независима от products и живёт в собственном файле базы.
type UserStore struct {
	db *sql.DB
}

// NewUserStore открывает (или создаёт) файл базы и таблицу users.
func NewUserStore(path string) (*UserStore, error) {
	db, err := openDatabase(path)
	if err != nil {
		return nil, err
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS users (
			email    TEXT NOT NULL,
			password TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create users table: %w", err)
	}

	return &UserStore{db: db}, nil
}

// InsertUser добавляет строку; дубликаты допустимы, первичного ключа нет.
func (s *UserStore) InsertUser(email, password string) error {
	if _, err := s.db.Exec(
		"INSERT INTO users (email, password) VALUES (?, ?)", email, password,
	); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FetchAllUsers возвращает все строки в порядке вставки.
func (s *UserStore) FetchAllUsers() ([]domain.UserRecord, error) {
	rows, err := s.db.Query("SELECT email, password FROM users ORDER BY rowid")
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

// Close освобождает соединение с базой.
func (s *UserStore) Close() error {
	return s.db.Close()
}

var _ domain.UserStore = (*UserStore)(nil)
