package domain

// UnavailableMessage возвращается генератором текста вместо ошибки:
// сбой внешнего сервиса не должен пересекать границу домена.
const UnavailableMessage = "AI service unavailable"

// TextGenerator описывает внешний сервис генерации текста.
// Реализации обязаны быть безопасными на границе: при любом внутреннем сбое
// возвращается UnavailableMessage, а не ошибка.
type TextGenerator interface {
	Generate(prompt string, maxTokens int) string
}

// ProductRecord — строка append-only таблицы продуктов.
type ProductRecord struct {
	ProductID  string
	Name       string
	Expiration string
}

// UserRecord — строка append-only таблицы пользователей.
type UserRecord struct {
	Email    string
	Password string
}

// ProductStore — внешняя таблица продуктов. Только вставка и полная выборка,
// обновления и удаления не предусмотрены.
type ProductStore interface {
	InsertProduct(id, name, expiration string) error
	FetchAllProducts() ([]ProductRecord, error)
	Close() error
}

// UserStore — внешняя таблица пользователей с теми же ограничениями.
type UserStore interface {
	InsertUser(email, password string) error
	FetchAllUsers() ([]UserRecord, error)
	Close() error
}
