package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
	"github.com/ali3442/SCM-Simulation-Project/internal/storage/memory"
)

func TestNewUserRegistersInStore(t *testing.T) {
	store := memory.NewUserStore()
	domain.NewUser("U001", "Ali", domain.RoleAdmin, "ali@tech.com", store)
	domain.NewUserWithPassword("U002", "Sara", domain.RolePremium, "sara@tech.com", "s3cret", store)

	records, err := store.FetchAllUsers()
	if err != nil {
		t.Fatalf("FetchAllUsers: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Email != "ali@tech.com" || records[0].Password != "123456" {
		t.Fatalf("default-password record wrong: %+v", records[0])
	}
	if records[1].Password != "s3cret" {
		t.Fatalf("explicit password lost: %+v", records[1])
	}
}

func TestNewUserSurvivesNilStore(t *testing.T) {
	user := domain.NewUser("U001", "Ali", domain.RoleUser, "ali@tech.com", nil)
	if user == nil {
		t.Fatal("user must be created even without a store")
	}
}

func TestUserLoginLogout(t *testing.T) {
	user := domain.NewUser("U001", "Ali", domain.RoleUser, "ali@tech.com", nil)

	if !user.Login() {
		t.Fatal("first login must transition")
	}
	if user.Login() {
		t.Fatal("repeated login must report no transition")
	}
	if !user.LoggedIn() {
		t.Fatal("user must stay logged in")
	}

	if !user.Logout() {
		t.Fatal("logout must transition")
	}
	if user.Logout() {
		t.Fatal("repeated logout must report no transition")
	}
}

func TestUserAddFavorite(t *testing.T) {
	user := domain.NewUser("U001", "Ali", domain.RoleUser, "ali@tech.com", nil)
	product := newProcessor()

	if !user.AddFavorite(product) {
		t.Fatal("first add must succeed")
	}
	if user.AddFavorite(product) {
		t.Fatal("duplicate add must be rejected")
	}
	if len(user.Favorites()) != 1 {
		t.Fatalf("favorites = %d, want 1", len(user.Favorites()))
	}

	// Другой экземпляр с теми же полями — другая сущность.
	other := domain.NewProduct("1001", "Quantum Processor", "Electronics", 2500, 500, "2025-12-31", nil)
	if !user.AddFavorite(other) {
		t.Fatal("distinct instance must be accepted")
	}
}

func TestUserDashboard(t *testing.T) {
	user := domain.NewUser("U001", "Ali", domain.RolePremium, "ali@tech.com", nil)
	user.Login()
	user.AddFavorite(newProcessor())

	payment, err := domain.NewPayment("cash")
	if err != nil {
		t.Fatalf("NewPayment: %v", err)
	}
	order := domain.NewOrder("O001", "Order", newProcessor(), domain.OrderStatusPlaced, time.Now(), 1000, 2, payment, nil)
	user.AddOrder(order)

	dashboard := user.Dashboard()
	for _, part := range []string{"Ali", "Logged in", "O001", "Quantum Processor"} {
		if !strings.Contains(dashboard, part) {
			t.Fatalf("dashboard missing %q:\n%s", part, dashboard)
		}
	}
}
