package domain_test

import (
	"testing"
	"time"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

func TestDelivery(t *testing.T) {
	payment, err := domain.NewPayment("cash")
	if err != nil {
		t.Fatalf("NewPayment: %v", err)
	}
	order := domain.NewOrder("O007", "Order", newProcessor(), domain.OrderStatusShipped, time.Now(), 500, 1, payment, nil)

	delivery := domain.NewDelivery("DLV001", order, "In Transit")
	if got := delivery.Report(); got != "Order O007 is currently In Transit" {
		t.Fatalf("Report() = %q", got)
	}

	delivery.UpdateStatus("Delivered")
	if delivery.Status() != "Delivered" {
		t.Fatalf("status = %q", delivery.Status())
	}
	if got := delivery.Report(); got != "Order O007 is currently Delivered" {
		t.Fatalf("Report() after update = %q", got)
	}
}
