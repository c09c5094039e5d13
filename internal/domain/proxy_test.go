package domain_test

import (
	"errors"
	"testing"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

func newProxy() *domain.ProductProxy {
	return domain.NewProductProxy("2001", "Quantum Co-Processor", "Electronics", 1200, 100, "2026-06-30", nil)
}

func TestProxyUpdateQuantityByRole(t *testing.T) {
	cases := []struct {
		name    string
		role    domain.Role
		wantErr error
		wantQty int
	}{
		{name: "admin allowed", role: domain.RoleAdmin, wantQty: 150},
		{name: "user denied", role: domain.RoleUser, wantErr: domain.ErrPermissionDenied, wantQty: 100},
		{name: "premium denied", role: domain.RolePremium, wantErr: domain.ErrPermissionDenied, wantQty: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			proxy := newProxy()
			qty, err := proxy.UpdateQuantity(50, tc.role)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_ = qty
			if proxy.Quantity() != tc.wantQty {
				t.Fatalf("quantity = %d, want %d", proxy.Quantity(), tc.wantQty)
			}
		})
	}
}

func TestProxyStockFloorStillApplies(t *testing.T) {
	proxy := newProxy()
	// Роль проверяется первой, затем обычное правило остатка.
	if _, err := proxy.UpdateQuantity(-101, domain.RoleAdmin); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if _, err := proxy.UpdateQuantity(-101, domain.RoleUser); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied before stock check, got %v", err)
	}
}

func TestProxyForwards(t *testing.T) {
	proxy := newProxy()
	if proxy.Info() != proxy.Product().Info() {
		t.Fatal("Info must be forwarded to the wrapped product")
	}
	if proxy.ID() != "2001" || proxy.Name() != "Quantum Co-Processor" {
		t.Fatalf("identity not forwarded: %s %s", proxy.ID(), proxy.Name())
	}

	gen := &fakeGenerator{response: "slogan"}
	if got := proxy.AISlogan(gen); got != "slogan" {
		t.Fatalf("AISlogan = %q", got)
	}
}
