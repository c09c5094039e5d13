package domain

import "fmt"

// Distributor ведёт инвентарь как отображение имени продукта в количество.
type Distributor struct {
	entity
	network   string
	inventory map[string]int
}

// NewDistributor создаёт дистрибьютора с пустым инвентарём.
func NewDistributor(id, name, network string) *Distributor {
	return &Distributor{
		entity:    entity{id: id, name: name},
		network:   network,
		inventory: make(map[string]int),
	}
}

// Network возвращает описание дистрибьюторской сети.
func (d *Distributor) Network() string { return d.network }

// Add добавляет количество к записи инвентаря (upsert) и возвращает новый итог.
func (d *Distributor) Add(productName string, quantity int) int {
	d.inventory[productName] += quantity
	return d.inventory[productName]
}

// Distribute списывает quantity единиц, только если запись существует и
// покрывает запрошенный объём. Возвращает остаток после списания.
func (d *Distributor) Distribute(productName string, quantity int) (int, error) {
	current, ok := d.inventory[productName]
	if !ok || current < quantity {
		return current, fmt.Errorf("%w: not enough %q in stock", ErrInsufficientStock, productName)
	}
	d.inventory[productName] = current - quantity
	return d.inventory[productName], nil
}

// Info возвращает строку с текущим состоянием дистрибьютора.
func (d *Distributor) Info() string {
	return fmt.Sprintf("Distributor: %s | Network: %s | Inventory Count: %d",
		d.name, d.network, len(d.inventory))
}

var _ Entity = (*Distributor)(nil)
