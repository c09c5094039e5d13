// Пакет sqlite реализует внешние таблицы продуктов и пользователей поверх
// встраиваемой базы. Используется чистый Go-драйвер modernc.org/sqlite,
// поэтому CGO не требуется.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// openDatabase открывает файл базы с настройками под единственного писателя.
func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// WAL переживает прерывание процесса лучше, чем журнал по умолчанию.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Симуляция однопоточная, пул шире одного соединения не нужен.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}
