package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// SupplyMetrics содержит метрики операций симуляции цепочки поставок.
type SupplyMetrics struct {
	// Счётчики операций по типам
	operations *prometheus.CounterVec

	// Отклонения из-за остатков/мощности/слотов
	stockRejections prometheus.Counter

	// Ключевые бизнес-события
	ordersPlaced      prometheus.Counter
	paymentsProcessed prometheus.Counter

	// Обращения к внешним коллабораторам
	aiRequests   prometheus.Counter
	storeInserts prometheus.Counter
}

// NewSupplyMetrics создаёт метрики в default-регистраторе.
func NewSupplyMetrics() *SupplyMetrics {
	return newSupplyMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newSupplyMetricsWithRegisterer(registerer prometheus.Registerer) *SupplyMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &SupplyMetrics{
		operations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "scm_operations_total",
			Help: "Total number of simulation operations by type",
		}, []string{"operation"}),
		stockRejections: registerCounter(registerer, prometheus.CounterOpts{
			Name: "scm_stock_rejections_total",
			Help: "Total number of operations rejected by stock or capacity limits",
		}),
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "scm_orders_placed_total",
			Help: "Total number of orders placed",
		}),
		paymentsProcessed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "scm_payments_processed_total",
			Help: "Total number of payment confirmations produced",
		}),
		aiRequests: registerCounter(registerer, prometheus.CounterOpts{
			Name: "scm_ai_requests_total",
			Help: "Total number of text generation requests",
		}),
		storeInserts: registerCounter(registerer, prometheus.CounterOpts{
			Name: "scm_store_inserts_total",
			Help: "Total number of record store inserts",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOperation увеличивает счётчик операции данного типа.
func (m *SupplyMetrics) RecordOperation(operation string) {
	m.operations.WithLabelValues(operation).Inc()
}

// RecordStockRejection увеличивает счётчик отклонённых операций.
func (m *SupplyMetrics) RecordStockRejection() {
	m.stockRejections.Inc()
}

// RecordOrderPlaced увеличивает счётчик размещённых заказов.
func (m *SupplyMetrics) RecordOrderPlaced() {
	m.ordersPlaced.Inc()
}

// RecordPaymentProcessed увеличивает счётчик платёжных подтверждений.
func (m *SupplyMetrics) RecordPaymentProcessed() {
	m.paymentsProcessed.Inc()
}

// RecordAIRequest увеличивает счётчик обращений к генератору текста.
func (m *SupplyMetrics) RecordAIRequest() {
	m.aiRequests.Inc()
}

// RecordStoreInsert увеличивает счётчик вставок во внешние таблицы.
func (m *SupplyMetrics) RecordStoreInsert() {
	m.storeInserts.Inc()
}
