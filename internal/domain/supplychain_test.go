package domain_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

func TestManufacturerManufacture(t *testing.T) {
	maker := domain.NewManufacturer("M001", "Acme", []string{"silicon"}, 1000)
	product := newProcessor()

	if err := maker.Manufacture(product, 600); err != nil {
		t.Fatalf("within capacity: %v", err)
	}
	if product.Quantity() != 1100 {
		t.Fatalf("quantity = %d, want 1100", product.Quantity())
	}
	if !slices.Contains(maker.Produced(), product.Name()) {
		t.Fatalf("produced list %v missing %q", maker.Produced(), product.Name())
	}

	// Лимит действует на каждый вызов отдельно, суммарный выпуск не ограничен.
	if err := maker.Manufacture(product, 1000); err != nil {
		t.Fatalf("second batch at exact capacity: %v", err)
	}

	err := maker.Manufacture(product, 1001)
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}

	// Повторное производство не дублирует имя в списке выпущенного.
	count := 0
	for _, name := range maker.Produced() {
		if name == product.Name() {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("produced list records %q %d times, want 1", product.Name(), count)
	}
}

func TestSupplierSupply(t *testing.T) {
	t.Run("success consumes supplier stock", func(t *testing.T) {
		maker := domain.NewManufacturer("M001", "Acme", nil, 1000)
		product := newProcessor() // 500 units
		supplier := domain.NewSupplier("S001", "Parts Inc", "parts@inc.com", []*domain.Product{product}, 4.5)

		if err := supplier.Supply(maker, product.Name(), 200); err != nil {
			t.Fatalf("Supply: %v", err)
		}
		// -200 поставка, +200 производство.
		if product.Quantity() != 500 {
			t.Fatalf("quantity = %d, want 500", product.Quantity())
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		maker := domain.NewManufacturer("M001", "Acme", nil, 1000)
		supplier := domain.NewSupplier("S001", "Parts Inc", "parts@inc.com", nil, 4.5)

		err := supplier.Supply(maker, "Nonexistent", 10)
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("insufficient stock", func(t *testing.T) {
		maker := domain.NewManufacturer("M001", "Acme", nil, 1000)
		product := newProcessor()
		supplier := domain.NewSupplier("S001", "Parts Inc", "parts@inc.com", []*domain.Product{product}, 4.5)

		err := supplier.Supply(maker, product.Name(), 501)
		if !errors.Is(err, domain.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if product.Quantity() != 500 {
			t.Fatalf("stock must be untouched on rejection, got %d", product.Quantity())
		}
	})

	t.Run("capacity rejection after decrement", func(t *testing.T) {
		maker := domain.NewManufacturer("M001", "Acme", nil, 100)
		product := newProcessor()
		supplier := domain.NewSupplier("S001", "Parts Inc", "parts@inc.com", []*domain.Product{product}, 4.5)

		err := supplier.Supply(maker, product.Name(), 200)
		if !errors.Is(err, domain.ErrCapacityExceeded) {
			t.Fatalf("expected ErrCapacityExceeded, got %v", err)
		}
		// Списание у поставщика уже произошло и не откатывается.
		if product.Quantity() != 300 {
			t.Fatalf("quantity = %d, want 300", product.Quantity())
		}
	})
}

func TestWarehouseStore(t *testing.T) {
	warehouse := domain.NewWarehouse("W001", "Central", 2, "Cairo")

	if err := warehouse.Store(newProcessor()); err != nil {
		t.Fatalf("first store: %v", err)
	}
	created, err := warehouse.StoreNew("Cooling Fan", 40)
	if err != nil {
		t.Fatalf("StoreNew: %v", err)
	}
	if created.ID() == "" {
		t.Fatal("StoreNew must assign a generated id")
	}
	if created.Category() != "General" || created.Price() != 0 {
		t.Fatalf("StoreNew defaults wrong: category %q price %v", created.Category(), created.Price())
	}

	if err := warehouse.Store(newProcessor()); !errors.Is(err, domain.ErrWarehouseFull) {
		t.Fatalf("expected ErrWarehouseFull, got %v", err)
	}
	if _, err := warehouse.StoreNew("Extra", 1); !errors.Is(err, domain.ErrWarehouseFull) {
		t.Fatalf("expected ErrWarehouseFull for StoreNew, got %v", err)
	}
}

func TestWarehouseRetrieve(t *testing.T) {
	warehouse := domain.NewWarehouse("W001", "Central", 10, "Cairo")
	product := newProcessor()
	if err := warehouse.Store(product); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := warehouse.Retrieve(product.Name())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if got != product {
		t.Fatal("Retrieve must return the stored product")
	}
	if warehouse.Count() != 0 {
		t.Fatalf("count = %d after retrieve, want 0", warehouse.Count())
	}

	if _, err := warehouse.Retrieve(product.Name()); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestWarehouseInventory(t *testing.T) {
	warehouse := domain.NewWarehouse("W001", "Central", 10, "Cairo")
	lines := warehouse.Inventory()
	if len(lines) != 1 || !strings.Contains(lines[0], "Empty") {
		t.Fatalf("empty warehouse inventory = %v", lines)
	}

	if err := warehouse.Store(newProcessor()); err != nil {
		t.Fatalf("Store: %v", err)
	}
	lines = warehouse.Inventory()
	if len(lines) != 1 || !strings.Contains(lines[0], "Quantum Processor") {
		t.Fatalf("inventory = %v", lines)
	}
}

func TestDistributor(t *testing.T) {
	dist := domain.NewDistributor("D001", "FastShip", "MEA")

	if total := dist.Add("Quantum Processor", 300); total != 300 {
		t.Fatalf("Add = %d, want 300", total)
	}
	if total := dist.Add("Quantum Processor", 200); total != 500 {
		t.Fatalf("Add upsert = %d, want 500", total)
	}

	left, err := dist.Distribute("Quantum Processor", 400)
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if left != 100 {
		t.Fatalf("remaining = %d, want 100", left)
	}

	if _, err := dist.Distribute("Quantum Processor", 101); !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if _, err := dist.Distribute("Unknown", 1); err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestRetailer(t *testing.T) {
	retailer := domain.NewRetailer("R001", "TechMart", "Cairo", nil)

	if _, err := retailer.OrderProduct(0, "Fan"); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := retailer.OrderProduct(-5, "Fan"); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for negative qty, got %v", err)
	}

	if got, err := retailer.OrderProduct(300, "Fan"); err != nil || got != 300 {
		t.Fatalf("OrderProduct = %d, %v", got, err)
	}

	if _, err := retailer.SellProduct(5, "Unknown"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	// Списание не ограничено остатком: запас может уйти в минус.
	if got, err := retailer.SellProduct(350, "Fan"); err != nil || got != -50 {
		t.Fatalf("SellProduct = %d, %v, want -50", got, err)
	}
	if retailer.CheckStock("Fan") != -50 {
		t.Fatalf("CheckStock = %d, want -50", retailer.CheckStock("Fan"))
	}

	// CheckStock не создаёт запись для неизвестного имени.
	if retailer.CheckStock("Ghost") != 0 {
		t.Fatal("unknown product stock must be zero")
	}
	if _, err := retailer.SellProduct(1, "Ghost"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatal("CheckStock must not create stock entries")
	}
}
