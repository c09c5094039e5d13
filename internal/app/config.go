package app

// Config описывает настройки запуска симуляции.
type Config struct {
	// ProductDBPath и UserDBPath — файлы sqlite для двух внешних таблиц.
	// Пустые значения переключают обе таблицы на in-memory реализацию.
	ProductDBPath string
	UserDBPath    string

	// PostgresDSN, если задан, размещает обе таблицы в PostgreSQL
	// и имеет приоритет над sqlite.
	PostgresDSN string

	// AIBaseURL — адрес llama.cpp-совместимого сервера генерации текста.
	// Пустое значение означает, что запросы получат фиксированный sentinel-ответ.
	AIBaseURL string

	// OpsAddr — адрес HTTP-сервера метрик и health checks; пусто — выключен.
	OpsAddr string

	// KafkaBrokers — брокеры для потока событий симуляции; пусто — выключен.
	KafkaBrokers []string

	// Interactive включает консольную Q&A-сессию перед прогоном симуляции.
	Interactive bool
}

// DefaultConfig возвращает настройки по умолчанию: sqlite-файлы рядом
// с бинарником, без Kafka и ops-сервера.
func DefaultConfig() Config {
	return Config{
		ProductDBPath: "products.db",
		UserDBPath:    "users.db",
		Interactive:   true,
	}
}
