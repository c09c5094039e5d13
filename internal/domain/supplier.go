package domain

import "fmt"

// Supplier держит список продуктов, которые он может поставлять,
// и передаёт их производителю на изготовление.
type Supplier struct {
	entity
	contact  string
	supplied []*Product
	rating   float64 // 0–5
}

// NewSupplier создаёт поставщика с его ассортиментом.
func NewSupplier(id, name, contact string, supplied []*Product, rating float64) *Supplier {
	return &Supplier{
		entity:   entity{id: id, name: name},
		contact:  contact,
		supplied: supplied,
		rating:   rating,
	}
}

// Contact возвращает контактную строку поставщика.
func (s *Supplier) Contact() string { return s.contact }

// Rating возвращает рейтинг поставщика.
func (s *Supplier) Rating() float64 { return s.rating }

// Supply списывает amount единиц продукта по точному совпадению имени и тут же
// передаёт их производителю через Manufacture. Вызывающий должен помнить про
// связность операции: остаток поставщика уже потрачен, а производственный шаг
// ограничен мощностью отдельно и может отклонить тот же объём.
func (s *Supplier) Supply(manufacturer *Manufacturer, productName string, amount int) error {
	for _, product := range s.supplied {
		if product.Name() != productName {
			continue
		}
		if product.Quantity() < amount {
			return fmt.Errorf("%w: not enough stock of %q, available %d",
				ErrInsufficientStock, productName, product.Quantity())
		}
		if _, err := product.UpdateQuantity(-amount); err != nil {
			return err
		}
		return manufacturer.Manufacture(product, amount)
	}
	return fmt.Errorf("%w: %s does not have %q in stock", ErrProductNotFound, s.name, productName)
}

// Info возвращает строку с текущим состоянием поставщика.
func (s *Supplier) Info() string {
	return fmt.Sprintf("Supplier: %s | Contact: %s | Rating: %.1f", s.name, s.contact, s.rating)
}

var _ Entity = (*Supplier)(nil)
