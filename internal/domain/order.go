package domain

import (
	"fmt"
	"strings"
	"time"
)

// OrderStatus описывает жизненный цикл заказа.
// Валидируется только переход Pending → Placed; UpdateStatus принимает
// любое значение и перезаписывает статус безусловно.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, но ещё не размещён.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusPlaced — заказ размещён.
	OrderStatusPlaced OrderStatus = "Placed"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusOutForDelivery — заказ у курьера.
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	// OrderStatusDelivered — заказ доставлен.
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusCanceled — заказ отменён.
	OrderStatusCanceled OrderStatus = "Canceled"
)

// Order агрегирует позицию каталога, статус, стоимость и способ оплаты.
type Order struct {
	entity
	product    CatalogItem
	status     OrderStatus
	orderDate  time.Time
	finalPrice float64
	quantity   int
	payment    PaymentMethod
	items      []*Product
}

// NewOrder создаёт заказ. product может быть как самим продуктом, так и прокси.
func NewOrder(id, name string, product CatalogItem, status OrderStatus, orderDate time.Time,
	finalPrice float64, quantity int, payment PaymentMethod, items []*Product) *Order {
	return &Order{
		entity:     entity{id: id, name: name},
		product:    product,
		status:     status,
		orderDate:  orderDate,
		finalPrice: finalPrice,
		quantity:   quantity,
		payment:    payment,
		items:      items,
	}
}

// Product возвращает позицию каталога, на которую оформлен заказ.
func (o *Order) Product() CatalogItem { return o.product }

// Status возвращает текущий статус заказа.
func (o *Order) Status() OrderStatus { return o.status }

// OrderDate возвращает дату оформления.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// FinalPrice возвращает текущую итоговую стоимость.
func (o *Order) FinalPrice() float64 { return o.finalPrice }

// Quantity возвращает количество единиц в заказе.
func (o *Order) Quantity() int { return o.quantity }

// Items возвращает позиции заказа.
func (o *Order) Items() []*Product { return o.items }

// Place размещает заказ. Успех возможен только из статуса Pending
// (без учёта регистра); иначе статус остаётся прежним.
func (o *Order) Place() error {
	if !strings.EqualFold(string(o.status), string(OrderStatusPending)) {
		return fmt.Errorf("%w: order %s current status %q", ErrOrderNotPending, o.id, o.status)
	}
	o.status = OrderStatusPlaced
	return nil
}

// UpdateStatus безусловно перезаписывает статус заказа.
func (o *Order) UpdateStatus(status OrderStatus) {
	o.status = status
}

// Track возвращает трекинговое сообщение по текущему статусу.
// Shipped и Out for Delivery делят одну форму, Delivered и Canceled имеют
// собственные, всё остальное — общий in-progress c literal-статусом.
func (o *Order) Track() string {
	switch strings.ToLower(string(o.status)) {
	case "shipped", "out for delivery":
		return fmt.Sprintf("Your order %s is currently %s", o.id, o.status)
	case "delivered":
		return fmt.Sprintf("Your order %s has been delivered successfully!", o.id)
	case "canceled":
		return fmt.Sprintf("Your order %s has been canceled.", o.id)
	default:
		return fmt.Sprintf("Order %s is still in progress. Current status: %s", o.id, o.status)
	}
}

// CalculateFinalPrice применяет скидку и налог к накопленной стоимости:
// final = (final - discount) * (1 + tax/100). Операция намеренно
// неидемпотентна: повторные вызовы продолжают изменять итог.
func (o *Order) CalculateFinalPrice(discount, tax float64) float64 {
	discounted := o.finalPrice - discount
	o.finalPrice = discounted + discounted*tax/100
	return o.finalPrice
}

// Pay делегирует подтверждение оплате, переданной при создании заказа.
func (o *Order) Pay() string {
	return o.payment.ProcessPayment(o.id)
}

// AIAnalysis запрашивает у генератора анализ заказа.
func (o *Order) AIAnalysis(gen TextGenerator) string {
	prompt := fmt.Sprintf(
		"Analyze this order:\n- Product: %s\n- Quantity: %d\n- Status: %s\n- Payment: %s\nProvide the analysis of the order only:",
		o.product.Name(), o.quantity, o.status, o.payment.Method(),
	)
	return gen.Generate(prompt, 512)
}

// Info возвращает строку с текущим состоянием заказа.
func (o *Order) Info() string {
	return fmt.Sprintf("Order ID: %s | Status: %s | Final Price: %.2f | Quantity: %d | Payment Method: %s",
		o.id, o.status, o.finalPrice, o.quantity, o.payment.Method())
}

var _ Entity = (*Order)(nil)
