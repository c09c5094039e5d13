package domain

import (
	"fmt"
	"strings"
)

// PaymentMethod — взаимозаменяемая стратегия подтверждения оплаты,
// выбираемая при создании заказа. Стратегии не имеют состояния.
type PaymentMethod interface {
	// ProcessPayment возвращает строку подтверждения для заказа.
	ProcessPayment(orderID string) string
	// Method возвращает имя способа оплаты для описания заказа.
	Method() string
}

// Visa — оплата банковской картой.
type Visa struct{}

func (Visa) ProcessPayment(orderID string) string {
	return fmt.Sprintf("Payment via Visa for order %s processed.", orderID)
}

func (Visa) Method() string { return "Visa" }

// Cash — наличный расчёт.
type Cash struct{}

func (Cash) ProcessPayment(orderID string) string {
	return fmt.Sprintf("Cash payment for order %s received.", orderID)
}

func (Cash) Method() string { return "Cash" }

// EWallet — электронный кошелёк.
type EWallet struct{}

func (EWallet) ProcessPayment(orderID string) string {
	return fmt.Sprintf("EWallet payment for order %s completed.", orderID)
}

func (EWallet) Method() string { return "EWallet" }

// NewPayment — фабрика платёжных стратегий. Имя способа сопоставляется без
// учёта регистра; неизвестное значение — жёсткая ошибка вызывающего.
func NewPayment(method string) (PaymentMethod, error) {
	switch strings.ToLower(method) {
	case "visa":
		return Visa{}, nil
	case "cash":
		return Cash{}, nil
	case "ewallet":
		return EWallet{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (choose from: Visa, Cash, EWallet)", ErrInvalidPaymentMethod, method)
	}
}

var (
	_ PaymentMethod = Visa{}
	_ PaymentMethod = Cash{}
	_ PaymentMethod = EWallet{}
)
