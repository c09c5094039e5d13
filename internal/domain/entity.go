package domain

// Entity — базовая способность всех доменных объектов цепочки поставок:
// идентификатор, имя и человекочитаемая строка с описанием состояния.
type Entity interface {
	ID() string
	Name() string
	Info() string
}

// CatalogItem расширяет Entity до позиции каталога: у неё есть цена и остаток.
// Реализуется как самим Product, так и его прокси.
type CatalogItem interface {
	Entity
	Category() string
	Price() float64
	Quantity() int
}

// entity хранит общие поля сущностей и встраивается в каждую из них.
type entity struct {
	id   string
	name string
}

// ID возвращает идентификатор сущности. Идентификаторы уникальны внутри
// своего вида, сквозной уникальности между видами не требуется.
func (e entity) ID() string { return e.id }

// Name возвращает имя сущности.
func (e entity) Name() string { return e.name }

// Role определяет роль, от имени которой выполняется защищённая операция.
type Role string

const (
	// RoleAdmin — единственная роль, которой разрешены мутации через прокси.
	RoleAdmin Role = "admin"
	// RoleUser — обычный пользователь без прав на изменение остатков.
	RoleUser Role = "user"
	// RolePremium — покупатель с расширенным набором возможностей витрины.
	RolePremium Role = "premium"
)
