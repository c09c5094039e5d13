package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Warehouse хранит продукты в упорядоченном списке слотов.
// Количество занятых слотов никогда не превышает capacity.
type Warehouse struct {
	entity
	capacity  int
	location  string
	inventory []*Product
}

// NewWarehouse создаёт склад с заданным числом слотов.
func NewWarehouse(id, name string, capacity int, location string) *Warehouse {
	return &Warehouse{
		entity:   entity{id: id, name: name},
		capacity: capacity,
		location: location,
	}
}

// Capacity возвращает максимум слотов склада.
func (w *Warehouse) Capacity() int { return w.capacity }

// Location возвращает расположение склада.
func (w *Warehouse) Location() string { return w.location }

// Count возвращает число занятых слотов.
func (w *Warehouse) Count() int { return len(w.inventory) }

// Store помещает существующий продукт в свободный слот.
func (w *Warehouse) Store(product *Product) error {
	if len(w.inventory) >= w.capacity {
		return ErrWarehouseFull
	}
	w.inventory = append(w.inventory, product)
	return nil
}

// StoreNew создаёт ad-hoc продукт по имени и количеству и помещает его
// на склад: нулевая цена, без производителя и срока годности.
// Вместо перегрузки по форме аргументов — две явно именованные операции.
func (w *Warehouse) StoreNew(name string, quantity int) (*Product, error) {
	if len(w.inventory) >= w.capacity {
		return nil, ErrWarehouseFull
	}
	product := NewProduct(uuid.NewString(), name, "General", 0, quantity, "", nil)
	w.inventory = append(w.inventory, product)
	return product, nil
}

// Retrieve убирает со склада первый продукт с точным совпадением имени.
func (w *Warehouse) Retrieve(name string) (*Product, error) {
	for i, product := range w.inventory {
		if product.Name() == name {
			w.inventory = append(w.inventory[:i], w.inventory[i+1:]...)
			return product, nil
		}
	}
	return nil, fmt.Errorf("%w: %q not found in warehouse", ErrProductNotFound, name)
}

// Inventory возвращает описания хранимых продуктов в порядке размещения.
// Пустой склад обозначается явным маркером.
func (w *Warehouse) Inventory() []string {
	if len(w.inventory) == 0 {
		return []string{"- Empty -"}
	}
	listing := make([]string, 0, len(w.inventory))
	for _, product := range w.inventory {
		listing = append(listing, product.Info())
	}
	return listing
}

// Info возвращает строку с текущим состоянием склада.
func (w *Warehouse) Info() string {
	return fmt.Sprintf("Warehouse: %s | Location: %s | Inventory Count: %d",
		w.name, w.location, len(w.inventory))
}

var _ Entity = (*Warehouse)(nil)
