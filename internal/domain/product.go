package domain

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Product — каталожная позиция: цена, остаток, срок годности и производитель.
// Количество меняется только через UpdateQuantity и никогда не уходит в минус.
type Product struct {
	entity
	category     string
	price        float64
	quantity     int
	expiration   string // опциональная дата в свободном формате, пустая строка — нет срока
	manufacturer *Manufacturer
}

// NewProduct создаёт продукт. manufacturer может быть nil —
// так появляются ad-hoc позиции, создаваемые складом.
func NewProduct(id, name, category string, price float64, quantity int, expiration string, manufacturer *Manufacturer) *Product {
	return &Product{
		entity:       entity{id: id, name: name},
		category:     category,
		price:        price,
		quantity:     quantity,
		expiration:   expiration,
		manufacturer: manufacturer,
	}
}

// Category возвращает категорию продукта.
func (p *Product) Category() string { return p.category }

// Price возвращает цену за единицу.
func (p *Product) Price() float64 { return p.price }

// Quantity возвращает текущий остаток.
func (p *Product) Quantity() int { return p.quantity }

// Expiration возвращает маркер срока годности (пустая строка — отсутствует).
func (p *Product) Expiration() string { return p.expiration }

// Manufacturer возвращает производителя продукта, может быть nil.
func (p *Product) Manufacturer() *Manufacturer { return p.manufacturer }

// UpdateQuantity применяет дельту к остатку и возвращает новое значение.
// Отрицательная дельта, превышающая остаток, отклоняется без изменения состояния.
func (p *Product) UpdateQuantity(delta int) (int, error) {
	if delta < 0 && -delta > p.quantity {
		return p.quantity, fmt.Errorf("%w: cannot remove %d units of %q, available %d",
			ErrInsufficientStock, -delta, p.name, p.quantity)
	}
	p.quantity += delta
	return p.quantity, nil
}

// AISlogan запрашивает у генератора короткий маркетинговый слоган.
// Ответ возвращается дословно, состояние продукта не меняется.
func (p *Product) AISlogan(gen TextGenerator) string {
	prompt := fmt.Sprintf(
		"Generate a catchy, short marketing slogan (max 10 words) for a product called %s, "+
			"which belongs to the category '(%s)' and is priced at %.0f EGP.",
		p.name, p.category, p.price,
	)
	return gen.Generate(prompt, 512)
}

// Persist отправляет id/имя/срок годности во внешнюю таблицу продуктов.
// Сбой хранилища логируется и не пробрасывается вызывающему.
func (p *Product) Persist(store ProductStore) {
	if err := store.InsertProduct(p.id, p.name, p.expiration); err != nil {
		log.WithError(err).WithField("product_id", p.id).Warn("failed to insert product into store")
		return
	}
	log.WithFields(log.Fields{
		"product_id": p.id,
		"name":       p.name,
	}).Info("product inserted into store")
}

// Info возвращает строку с текущим состоянием продукта.
func (p *Product) Info() string {
	return fmt.Sprintf("Product: %s | Category: %s | Price: %.2f EGP | Quantity: %d | Expiration Date: %s",
		p.name, p.category, p.price, p.quantity, p.expiration)
}

var _ CatalogItem = (*Product)(nil)
