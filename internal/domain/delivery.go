package domain

import "fmt"

// DeliveryStatusPreparing — статус доставки по умолчанию.
const DeliveryStatusPreparing = "Preparing"

// Delivery — статус доставки, привязанный к заказу.
type Delivery struct {
	id     string
	order  *Order
	status string
}

// NewDelivery создаёт доставку для заказа. Пустой статус заменяется
// статусом по умолчанию.
func NewDelivery(id string, order *Order, status string) *Delivery {
	if status == "" {
		status = DeliveryStatusPreparing
	}
	return &Delivery{id: id, order: order, status: status}
}

// ID возвращает идентификатор доставки.
func (d *Delivery) ID() string { return d.id }

// Order возвращает заказ, к которому привязана доставка.
func (d *Delivery) Order() *Order { return d.order }

// Status возвращает текущий статус доставки.
func (d *Delivery) Status() string { return d.status }

// UpdateStatus безусловно перезаписывает статус доставки.
func (d *Delivery) UpdateStatus(status string) {
	d.status = status
}

// Report возвращает строку статуса со ссылкой на идентификатор заказа.
func (d *Delivery) Report() string {
	return fmt.Sprintf("Order %s is currently %s", d.order.ID(), d.status)
}
