package domain

import (
	"fmt"
	"slices"
)

// Manufacturer производит продукцию в пределах потолка мощности.
type Manufacturer struct {
	entity
	rawMaterials []string
	capacity     int
	produced     []string // имена произведённых продуктов, без дублей
}

// NewManufacturer создаёт производителя с заданной мощностью.
func NewManufacturer(id, name string, rawMaterials []string, capacity int) *Manufacturer {
	return &Manufacturer{
		entity:       entity{id: id, name: name},
		rawMaterials: rawMaterials,
		capacity:     capacity,
	}
}

// RawMaterials возвращает сырьё производителя.
func (m *Manufacturer) RawMaterials() []string { return slices.Clone(m.rawMaterials) }

// Capacity возвращает потолок мощности одного производственного вызова.
func (m *Manufacturer) Capacity() int { return m.capacity }

// Produced возвращает имена продуктов, которые производитель уже выпускал.
func (m *Manufacturer) Produced() []string { return slices.Clone(m.produced) }

// Manufacture увеличивает остаток продукта на amount и запоминает его имя.
// Ограничение мощности действует на каждый вызов отдельно, не накопительно:
// превышение отклоняется целиком, состояние не меняется.
func (m *Manufacturer) Manufacture(product *Product, amount int) error {
	if amount > m.capacity {
		return fmt.Errorf("%w: max limit %d units", ErrCapacityExceeded, m.capacity)
	}
	// amount неотрицателен относительно остатка, отказ невозможен.
	if _, err := product.UpdateQuantity(amount); err != nil {
		return err
	}
	if !slices.Contains(m.produced, product.Name()) {
		m.produced = append(m.produced, product.Name())
	}
	return nil
}

// Info возвращает строку с текущим состоянием производителя.
func (m *Manufacturer) Info() string {
	return fmt.Sprintf("Manufacturer: %s | Raw Materials: %v | Products Manufactured: %v | Production Capacity: %d units",
		m.name, m.rawMaterials, m.produced, m.capacity)
}

var _ Entity = (*Manufacturer)(nil)
