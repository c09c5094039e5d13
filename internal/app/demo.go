package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
	"github.com/ali3442/SCM-Simulation-Project/internal/messaging/kafka"
	"github.com/ali3442/SCM-Simulation-Project/internal/metrics"
)

// simulation — драйвер сценария. Только он композирует сущности и вызывает
// их операции, наблюдая состояние после каждого шага; сущности никогда
// не вызывают драйвер обратно.
type simulation struct {
	products domain.ProductStore
	users    domain.UserStore
	gen      domain.TextGenerator
	events   *kafka.Producer
	metrics  *metrics.SupplyMetrics
	logger   *log.Entry
}

func newSimulation(
	products domain.ProductStore,
	users domain.UserStore,
	gen domain.TextGenerator,
	events *kafka.Producer,
	m *metrics.SupplyMetrics,
	logger *log.Entry,
) *simulation {
	if logger == nil {
		logger = log.WithField("component", "simulation")
	}
	return &simulation{
		products: products,
		users:    users,
		gen:      gen,
		events:   events,
		metrics:  m,
		logger:   logger,
	}
}

// publish отправляет событие симуляции в Kafka, если поток событий настроен.
func (s *simulation) publish(eventType kafka.EventType, entityID string, metadata map[string]interface{}) {
	if s.events == nil {
		return
	}
	event := kafka.NewEvent(eventType, entityID, metadata)
	if err := s.events.PublishEvent(kafka.TopicSupplyChainEvents, entityID, event); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"event_type": eventType,
			"entity_id":  entityID,
		}).Warn("failed to publish supply chain event")
	}
}

// rejected логирует локально восстановленное нарушение остатков/мощности.
func (s *simulation) rejected(operation string, err error) {
	s.metrics.RecordStockRejection()
	s.logger.WithError(err).WithField("operation", operation).Warn("operation rejected")
}

// Run прогоняет сквозной сценарий цепочки поставок: поставка → производство →
// склад → дистрибуция → розница → сессия пользователя → заказ → доставка.
func (s *simulation) Run(ctx context.Context) error {
	manufacturer := domain.NewManufacturer(
		"M001", "Quantum Manufacturers Ltd",
		[]string{"Silicon", "Rare Earth Metals"}, 10000,
	)
	processor := domain.NewProduct(
		"1001", "Quantum Processor QX-9000", "Advanced Computing",
		45000, 0, "2026-12-31", manufacturer,
	)
	coProcessor := domain.NewProductProxy(
		"1002", "Quantum Co-Processor QP-200", "Advanced Computing",
		22000, 0, "2027-06-30", manufacturer,
	)
	supplier := domain.NewSupplier(
		"S001", "Advanced Components Inc.", "supply@advanced.com",
		[]*domain.Product{processor, coProcessor.Product()}, 4.9,
	)
	warehouse := domain.NewWarehouse("W001", "Central Tech Warehouse", 50000, "Singapore")
	distributor := domain.NewDistributor("D001", "Global Tech Distributors", "Asia-Pacific Network")
	retailer := domain.NewRetailer("R001", "Future Tech Store", "Singapore Downtown", nil)

	s.runSupply(supplier, manufacturer, processor, coProcessor)
	if err := ctx.Err(); err != nil {
		return err
	}

	s.runInventory(warehouse, distributor, retailer, processor)
	if err := ctx.Err(); err != nil {
		return err
	}

	order, err := s.runUsersAndOrder(coProcessor, processor)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.runStoresAndDelivery(processor, coProcessor, order)
	return nil
}

func (s *simulation) runSupply(supplier *domain.Supplier, manufacturer *domain.Manufacturer,
	processor *domain.Product, coProcessor *domain.ProductProxy) {
	// Остатки поставщика пока нулевые: обе поставки отклоняются локально.
	if err := supplier.Supply(manufacturer, processor.Name(), 1000); err != nil {
		s.rejected("supply", err)
	}
	if err := supplier.Supply(manufacturer, coProcessor.Name(), 1500); err != nil {
		s.rejected("supply", err)
	}

	for _, step := range []struct {
		product *domain.Product
		amount  int
	}{
		{processor, 800},
		{coProcessor.Product(), 1200},
	} {
		if err := manufacturer.Manufacture(step.product, step.amount); err != nil {
			s.rejected("manufacture", err)
			continue
		}
		s.metrics.RecordOperation("manufacture")
		s.logger.WithFields(log.Fields{
			"product":  step.product.Name(),
			"amount":   step.amount,
			"quantity": step.product.Quantity(),
		}).Info("manufactured product")
		s.publish(kafka.EventTypeProductManufactured, step.product.ID(), map[string]interface{}{
			"amount": step.amount,
		})
	}

	// Теперь на складе поставщика есть произведённый объём — поставка проходит.
	if err := supplier.Supply(manufacturer, processor.Name(), 500); err != nil {
		s.rejected("supply", err)
	} else {
		s.metrics.RecordOperation("supply")
		s.logger.WithFields(log.Fields{
			"supplier":     supplier.Name(),
			"manufacturer": manufacturer.Name(),
			"product":      processor.Name(),
			"amount":       500,
		}).Info("supplied product to manufacturer")
		s.publish(kafka.EventTypeProductSupplied, processor.ID(), map[string]interface{}{
			"amount": 500,
		})
	}
}

func (s *simulation) runInventory(warehouse *domain.Warehouse, distributor *domain.Distributor,
	retailer *domain.Retailer, processor *domain.Product) {
	if err := warehouse.Store(processor); err != nil {
		s.rejected("warehouse_store", err)
	} else {
		s.metrics.RecordOperation("warehouse_store")
		s.logger.WithField("product", processor.Name()).Info("stored product in warehouse")
		s.publish(kafka.EventTypeProductStored, processor.ID(), nil)
	}

	if adhoc, err := warehouse.StoreNew("Quantum Cooling System", 500); err != nil {
		s.rejected("warehouse_store", err)
	} else {
		s.metrics.RecordOperation("warehouse_store")
		s.logger.WithFields(log.Fields{
			"product":  adhoc.Name(),
			"quantity": adhoc.Quantity(),
		}).Info("stored ad-hoc product in warehouse")
		s.publish(kafka.EventTypeProductStored, adhoc.ID(), nil)
	}

	if _, err := warehouse.Retrieve(processor.Name()); err != nil {
		s.logger.WithError(err).Warn("retrieve from warehouse failed")
	} else {
		s.metrics.RecordOperation("warehouse_retrieve")
		s.logger.WithField("product", processor.Name()).Info("retrieved product from warehouse")
	}

	for _, line := range warehouse.Inventory() {
		s.logger.Info("warehouse inventory: " + line)
	}

	total := distributor.Add(processor.Name(), 600)
	s.metrics.RecordOperation("distributor_add")
	s.logger.WithFields(log.Fields{
		"product": processor.Name(),
		"total":   total,
	}).Info("added product to distributor inventory")

	if remaining, err := distributor.Distribute(processor.Name(), 400); err != nil {
		s.rejected("distribute", err)
	} else {
		s.metrics.RecordOperation("distribute")
		s.logger.WithFields(log.Fields{
			"product":   processor.Name(),
			"remaining": remaining,
		}).Info("distributed product")
		s.publish(kafka.EventTypeProductDistributed, processor.ID(), map[string]interface{}{
			"amount": 400,
		})
	}

	if stock, err := retailer.OrderProduct(300, processor.Name()); err != nil {
		s.logger.WithError(err).Warn("retailer order rejected")
	} else {
		s.metrics.RecordOperation("retailer_order")
		s.logger.WithFields(log.Fields{
			"product": processor.Name(),
			"stock":   stock,
		}).Info("retailer ordered product")
	}

	if remaining, err := retailer.SellProduct(50, processor.Name()); err != nil {
		s.logger.WithError(err).Warn("retailer sell rejected")
	} else {
		s.metrics.RecordOperation("retailer_sell")
		s.logger.WithFields(log.Fields{
			"product":   processor.Name(),
			"remaining": remaining,
		}).Info("retailer sold product")
		s.publish(kafka.EventTypeProductSold, processor.ID(), map[string]interface{}{
			"amount": 50,
		})
	}

	s.logger.WithFields(log.Fields{
		"product": processor.Name(),
		"stock":   retailer.CheckStock(processor.Name()),
	}).Info("retailer stock checked")
}

func (s *simulation) runUsersAndOrder(coProcessor *domain.ProductProxy, processor *domain.Product) (*domain.Order, error) {
	adminUser := domain.NewUser("U001", "Admin User", domain.RoleAdmin, "admin@tech.com", s.users)
	customer := domain.NewUser("U002", "Premium Customer", domain.RolePremium, "customer@tech.com", s.users)
	s.publish(kafka.EventTypeUserRegistered, adminUser.ID(), nil)
	s.publish(kafka.EventTypeUserRegistered, customer.ID(), nil)

	visaPayment, err := domain.NewPayment("visa")
	if err != nil {
		// Неизвестный способ оплаты — ошибка программиста, не прячем её.
		return nil, err
	}

	order := domain.NewOrder(
		"O001", "Quantum Computing Package", coProcessor,
		domain.OrderStatusPending, time.Now(),
		coProcessor.Price()*5, 5, visaPayment,
		[]*domain.Product{processor, coProcessor.Product()},
	)

	if customer.Login() {
		s.logger.WithField("user", customer.Name()).Info("user logged in")
	}
	for _, favorite := range []domain.Entity{processor, coProcessor, processor} {
		if customer.AddFavorite(favorite) {
			s.logger.WithField("product", favorite.Name()).Info("added to favorites")
		} else {
			s.logger.WithField("product", favorite.Name()).Info("already in favorites")
		}
	}
	customer.AddOrder(order)
	s.logger.Info("user dashboard:\n" + customer.Dashboard())
	if customer.Logout() {
		s.logger.WithField("user", customer.Name()).Info("user logged out")
	}

	if adminUser.Login() {
		s.logger.WithField("user", adminUser.Name()).Info("user logged in")
	}
	if qty, err := coProcessor.UpdateQuantity(1000, adminUser.Role()); err != nil {
		s.logger.WithError(err).Warn("proxy update rejected")
	} else {
		s.metrics.RecordOperation("proxy_update")
		s.logger.WithField("quantity", qty).Info("proxy quantity updated by admin")
	}
	adminUser.Logout()

	if err := order.Place(); err != nil {
		s.logger.WithError(err).Warn("order cannot be placed")
	} else {
		s.metrics.RecordOrderPlaced()
		s.logger.WithField("order_id", order.ID()).Info("order placed")
		s.publish(kafka.EventTypeOrderPlaced, order.ID(), nil)
	}

	order.UpdateStatus(domain.OrderStatusShipped)
	s.logger.WithFields(log.Fields{
		"order_id": order.ID(),
		"status":   order.Status(),
	}).Info("order status updated")
	s.publish(kafka.EventTypeOrderStatusChanged, order.ID(), map[string]interface{}{
		"status": string(order.Status()),
	})

	final := order.CalculateFinalPrice(15000, 7)
	s.logger.WithFields(log.Fields{
		"order_id":    order.ID(),
		"final_price": final,
	}).Info("final price calculated")

	confirmation := order.Pay()
	s.metrics.RecordPaymentProcessed()
	s.logger.WithField("order_id", order.ID()).Info(confirmation)
	s.publish(kafka.EventTypeOrderPaid, order.ID(), map[string]interface{}{
		"final_price": order.FinalPrice(),
	})

	s.logger.Info("order tracking: " + order.Track())

	s.metrics.RecordAIRequest()
	s.logger.Info("order analysis: " + order.AIAnalysis(s.gen))

	// Проверка прокси: обычной роли мутация запрещена, администратору — нет.
	if _, err := coProcessor.UpdateQuantity(500, domain.RoleUser); err != nil {
		s.logger.WithError(err).Warn("proxy update rejected")
	}
	if qty, err := coProcessor.UpdateQuantity(500, domain.RoleAdmin); err == nil {
		s.logger.WithField("quantity", qty).Info("proxy quantity updated by admin")
	}

	s.metrics.RecordAIRequest()
	s.logger.Info("proxy slogan: " + coProcessor.AISlogan(s.gen))

	return order, nil
}

func (s *simulation) runStoresAndDelivery(processor *domain.Product, coProcessor *domain.ProductProxy, order *domain.Order) {
	processor.Persist(s.products)
	s.metrics.RecordStoreInsert()
	coProcessor.Persist(s.products)
	s.metrics.RecordStoreInsert()
	if err := s.users.InsertUser("new_user@tech.com", "secure123"); err != nil {
		s.logger.WithError(err).Warn("failed to insert user into store")
	} else {
		s.metrics.RecordStoreInsert()
	}

	if records, err := s.products.FetchAllProducts(); err != nil {
		s.logger.WithError(err).Warn("failed to fetch products from store")
	} else {
		s.logger.WithField("count", len(records)).Info("all products fetched from store")
		for _, rec := range records {
			s.logger.WithFields(log.Fields{
				"product_id": rec.ProductID,
				"name":       rec.Name,
				"expiration": rec.Expiration,
			}).Info("stored product record")
		}
	}
	if records, err := s.users.FetchAllUsers(); err != nil {
		s.logger.WithError(err).Warn("failed to fetch users from store")
	} else {
		s.logger.WithField("count", len(records)).Info("all users fetched from store")
	}

	delivery := domain.NewDelivery("DLV001", order, "")
	delivery.UpdateStatus("In Transit")
	s.logger.Info("delivery status: " + delivery.Report())
	s.publish(kafka.EventTypeDeliveryUpdated, delivery.ID(), map[string]interface{}{
		"status": delivery.Status(),
	})

	s.metrics.RecordAIRequest()
	s.logger.Info("product slogan: " + processor.AISlogan(s.gen))

	review := domain.NewReview("Tech Expert", 5, "Groundbreaking performance with excellent energy efficiency")
	s.logger.Info("review: " + review.String())
	s.metrics.RecordAIRequest()
	s.logger.Info("review analysis: " + review.AIAnalysis(s.gen))
}
