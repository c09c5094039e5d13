package memory

import (
	"slices"
	"sync"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

// userStoreInMemory — простая in-memory реализация UserStore.
// В отличие от таблицы продуктов, уникальность здесь не требуется.
type userStoreInMemory struct {
	mu      sync.RWMutex
	records []domain.UserRecord
}

// NewUserStore возвращает in-memory таблицу пользователей.
func NewUserStore() domain.UserStore {
	return &userStoreInMemory{}
}

// InsertUser добавляет запись в конец таблицы.
func (s *userStoreInMemory) InsertUser(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, domain.UserRecord{Email: email, Password: password})
	return nil
}

// FetchAllUsers возвращает копию записей в порядке вставки.
func (s *userStoreInMemory) FetchAllUsers() ([]domain.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.records), nil
}

// Close ничего не освобождает.
func (s *userStoreInMemory) Close() error { return nil }

var _ domain.UserStore = (*userStoreInMemory)(nil)
