package memory

import (
	"errors"
	"slices"
	"sync"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

// ErrDuplicateProduct повторяет ограничение первичного ключа таблицы продуктов.
var ErrDuplicateProduct = errors.New("product already exists")

// productStoreInMemory — простая in-memory реализация ProductStore.
type productStoreInMemory struct {
	mu      sync.RWMutex
	records []domain.ProductRecord
}

// NewProductStore возвращает in-memory таблицу продуктов для локальной
// разработки и тестов.
func NewProductStore() domain.ProductStore {
	return &productStoreInMemory{}
}

// InsertProduct добавляет запись, если product_id ещё не занят.
func (s *productStoreInMemory) InsertProduct(id, name, expiration string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.ProductID == id {
			return ErrDuplicateProduct
		}
	}
	s.records = append(s.records, domain.ProductRecord{
		ProductID:  id,
		Name:       name,
		Expiration: expiration,
	})
	return nil
}

// FetchAllProducts возвращает копию записей в порядке вставки.
func (s *productStoreInMemory) FetchAllProducts() ([]domain.ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.records), nil
}

// Close ничего не освобождает: ресурсов за пределами процесса нет.
func (s *productStoreInMemory) Close() error { return nil }

var _ domain.ProductStore = (*productStoreInMemory)(nil)
