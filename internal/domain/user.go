package domain

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// defaultPassword подставляется, если пароль не задан при создании пользователя.
const defaultPassword = "123456"

// User — сессия пользователя витрины: флаг входа, избранное и список заказов.
type User struct {
	entity
	role      Role
	email     string
	password  string
	loggedIn  bool
	favorites []Entity
	orders    []*Order
}

// NewUser создаёт пользователя с паролем по умолчанию и сразу добавляет
// запись во внешнюю таблицу пользователей. Сбой хранилища логируется
// и не мешает созданию пользователя.
func NewUser(id, name string, role Role, email string, users UserStore) *User {
	return NewUserWithPassword(id, name, role, email, defaultPassword, users)
}

// NewUserWithPassword — вариант NewUser с явным паролем.
func NewUserWithPassword(id, name string, role Role, email, password string, users UserStore) *User {
	u := &User{
		entity:   entity{id: id, name: name},
		role:     role,
		email:    email,
		password: password,
	}
	if users != nil {
		if err := users.InsertUser(email, password); err != nil {
			log.WithError(err).WithField("email", email).Warn("failed to insert user into store")
		} else {
			log.WithField("email", email).Info("user inserted into store")
		}
	}
	return u
}

// Role возвращает роль пользователя.
func (u *User) Role() Role { return u.role }

// Email возвращает электронную почту пользователя.
func (u *User) Email() string { return u.email }

// LoggedIn сообщает, активна ли сессия.
func (u *User) LoggedIn() bool { return u.loggedIn }

// Orders возвращает заказы пользователя.
func (u *User) Orders() []*Order { return u.orders }

// Favorites возвращает избранные позиции пользователя.
func (u *User) Favorites() []Entity { return u.favorites }

// Login поднимает флаг сессии. Возвращает false, если пользователь уже вошёл.
func (u *User) Login() bool {
	if u.loggedIn {
		return false
	}
	u.loggedIn = true
	return true
}

// Logout сбрасывает флаг сессии. Возвращает false, если входа не было.
func (u *User) Logout() bool {
	if !u.loggedIn {
		return false
	}
	u.loggedIn = false
	return true
}

// AddOrder добавляет заказ в список пользователя.
func (u *User) AddOrder(order *Order) {
	u.orders = append(u.orders, order)
}

// AddFavorite добавляет позицию в избранное. Дедупликация идёт по ссылке:
// один и тот же объект попадает в список ровно один раз, продукт и его
// прокси считаются разными записями. Возвращает false для дубля.
func (u *User) AddFavorite(item Entity) bool {
	for _, existing := range u.favorites {
		if existing == item {
			return false
		}
	}
	u.favorites = append(u.favorites, item)
	return true
}

// Dashboard собирает read-only сводку: сессия, роль, заказы и избранное.
func (u *User) Dashboard() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome %s! Here is your dashboard:\n", u.name)
	if u.loggedIn {
		b.WriteString("Status: Logged in\n")
	} else {
		b.WriteString("Status: Not logged in\n")
	}
	fmt.Fprintf(&b, "1. Name: %s\n", u.name)
	fmt.Fprintf(&b, "2. Role: %s\n", u.role)
	b.WriteString("3. Account Settings: /account/settings\n")
	if len(u.orders) > 0 {
		b.WriteString("4. Ordered:\n")
		for _, order := range u.orders {
			fmt.Fprintf(&b, "   %s\n", order.Info())
		}
	} else {
		b.WriteString("4. No ordered Products.\n")
	}
	if len(u.favorites) > 0 {
		b.WriteString("5. Favorite Products:\n")
		for _, item := range u.favorites {
			fmt.Fprintf(&b, "   %s\n", item.Name())
		}
	} else {
		b.WriteString("5. Favorite Products: No products added.\n")
	}
	return b.String()
}

// Info возвращает строку с текущим состоянием пользователя.
func (u *User) Info() string {
	return fmt.Sprintf("User: %s | Role: %s | Email: %s", u.name, u.role, u.email)
}

var _ Entity = (*User)(nil)
