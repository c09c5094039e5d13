package domain

import (
	log "github.com/sirupsen/logrus"
)

// ProductProxy — обёртка доступа вокруг Product. Прокси эксклюзивно владеет
// обёрнутым продуктом с момента создания: операции чтения форвардятся как есть,
// а изменение остатка требует роли администратора.
type ProductProxy struct {
	product *Product
}

// NewProductProxy создаёт продукт и сразу прячет его за прокси.
func NewProductProxy(id, name, category string, price float64, quantity int, expiration string, manufacturer *Manufacturer) *ProductProxy {
	return &ProductProxy{
		product: NewProduct(id, name, category, price, quantity, expiration, manufacturer),
	}
}

// ID форвардит идентификатор обёрнутого продукта.
func (p *ProductProxy) ID() string { return p.product.ID() }

// Name форвардит имя обёрнутого продукта.
func (p *ProductProxy) Name() string { return p.product.Name() }

// Info форвардит описание обёрнутого продукта.
func (p *ProductProxy) Info() string { return p.product.Info() }

// Category форвардит категорию.
func (p *ProductProxy) Category() string { return p.product.Category() }

// Price форвардит цену.
func (p *ProductProxy) Price() float64 { return p.product.Price() }

// Quantity форвардит текущий остаток.
func (p *ProductProxy) Quantity() int { return p.product.Quantity() }

// Product открывает доступ к обёрнутому продукту для композиции
// (например, чтобы поставщик мог держать его в списке поставляемых).
func (p *ProductProxy) Product() *Product { return p.product }

// UpdateQuantity пропускает мутацию только от имени администратора.
// Для любой другой роли состояние не меняется.
func (p *ProductProxy) UpdateQuantity(delta int, role Role) (int, error) {
	if role != RoleAdmin {
		return p.product.Quantity(), ErrPermissionDenied
	}
	return p.product.UpdateQuantity(delta)
}

// Persist форвардит запись во внешнюю таблицу продуктов.
func (p *ProductProxy) Persist(store ProductStore) {
	p.product.Persist(store)
}

// AISlogan форвардит запрос слогана к обёрнутому продукту.
func (p *ProductProxy) AISlogan(gen TextGenerator) string {
	log.WithField("product_id", p.product.ID()).Debug("accessing text generator through proxy")
	return p.product.AISlogan(gen)
}

var _ CatalogItem = (*ProductProxy)(nil)
