package kafka

import (
	"time"

	"github.com/google/uuid"
)

// EventType определяет тип события цепочки поставок.
type EventType string

const (
	// Движение товара
	EventTypeProductSupplied     EventType = "product.supplied"
	EventTypeProductManufactured EventType = "product.manufactured"
	EventTypeProductStored       EventType = "product.stored"
	EventTypeProductDistributed  EventType = "product.distributed"
	EventTypeProductSold         EventType = "product.sold"

	// Жизненный цикл заказа
	EventTypeOrderPlaced        EventType = "order.placed"
	EventTypeOrderStatusChanged EventType = "order.status_changed"
	EventTypeOrderPaid          EventType = "order.paid"

	// Прочее
	EventTypeDeliveryUpdated EventType = "delivery.updated"
	EventTypeUserRegistered  EventType = "user.registered"
)

// TopicSupplyChainEvents — единый топик событий симуляции.
const TopicSupplyChainEvents = "scm.supplychain.events"

// Event представляет одно событие цепочки поставок.
type Event struct {
	ID        string                 `json:"id"`
	EventType EventType              `json:"event_type"`
	EntityID  string                 `json:"entity_id"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewEvent создаёт событие с уникальным идентификатором и текущим временем.
func NewEvent(eventType EventType, entityID string, metadata map[string]interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		EventType: eventType,
		EntityID:  entityID,
		Timestamp: time.Now(),
		Metadata:  metadata,
	}
}
