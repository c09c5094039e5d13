package domain

import "errors"

var (
	// ErrInsufficientStock — попытка списать больше, чем есть в наличии.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrCapacityExceeded — объём одного производственного вызова превышает потолок мощности.
	ErrCapacityExceeded = errors.New("production capacity exceeded")
	// ErrWarehouseFull — склад заполнен, свободных слотов нет.
	ErrWarehouseFull = errors.New("warehouse is full")
	// ErrProductNotFound — продукт с таким именем отсутствует.
	ErrProductNotFound = errors.New("product not found")
	// ErrPermissionDenied — операция через прокси запрошена не от имени администратора.
	ErrPermissionDenied = errors.New("permission denied: only admin can update quantity")
	// ErrInvalidQuantity — количество должно быть положительным.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	// ErrInvalidPaymentMethod — неизвестный способ оплаты в фабрике стратегий.
	// Единственная ошибка ядра, которая считается жёсткой: это ошибка программиста.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	// ErrOrderNotPending — разместить можно только заказ в статусе Pending.
	ErrOrderNotPending = errors.New("order is not pending")
)

// IsStockViolation проверяет, относится ли ошибка к нарушениям остатков/мощности.
// Такие ошибки всегда восстанавливаются локально: операция становится no-op.
func IsStockViolation(err error) bool {
	return errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrCapacityExceeded) ||
		errors.Is(err, ErrWarehouseFull)
}
