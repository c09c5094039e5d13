package domain

import "fmt"

// Retailer ведёт витринный запас как отображение имени продукта в остаток.
type Retailer struct {
	entity
	location string
	stock    map[string]int
}

// NewRetailer создаёт ритейлера. stock может быть nil — тогда запас пуст.
func NewRetailer(id, name, location string, stock map[string]int) *Retailer {
	if stock == nil {
		stock = make(map[string]int)
	}
	return &Retailer{
		entity:   entity{id: id, name: name},
		location: location,
		stock:    stock,
	}
}

// Location возвращает расположение точки продаж.
func (r *Retailer) Location() string { return r.location }

// OrderProduct дозаказывает quantity единиц продукта (upsert) и
// возвращает обновлённый остаток. Неположительное количество отклоняется.
func (r *Retailer) OrderProduct(quantity int, productName string) (int, error) {
	if quantity <= 0 {
		return r.stock[productName], ErrInvalidQuantity
	}
	r.stock[productName] += quantity
	return r.stock[productName], nil
}

// SellProduct списывает quantity единиц, если продукт вообще заведён в запасе.
// Нижней границы у списания нет: проверяется только существование записи,
// остаток может уйти в минус.
func (r *Retailer) SellProduct(quantity int, productName string) (int, error) {
	if _, ok := r.stock[productName]; !ok {
		return 0, fmt.Errorf("%w: %q is not available in stock", ErrProductNotFound, productName)
	}
	r.stock[productName] -= quantity
	return r.stock[productName], nil
}

// CheckStock возвращает остаток продукта; для неизвестного имени — ноль,
// без создания записи.
func (r *Retailer) CheckStock(productName string) int {
	return r.stock[productName]
}

// Info возвращает строку с текущим состоянием ритейлера.
func (r *Retailer) Info() string {
	return fmt.Sprintf("Retailer: %s | ID: %s | Location: %s | Stock: %v",
		r.name, r.id, r.location, r.stock)
}

var _ Entity = (*Retailer)(nil)
