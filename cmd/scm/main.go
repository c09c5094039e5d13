package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/ali3442/SCM-Simulation-Project/internal/app"
)

// setupLogger настраивает формат и уровень логирования симуляции.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfig формирует конфигурацию, позволяя переопределить её через
// переменные окружения.
func readConfig() app.Config {
	cfg := app.DefaultConfig()
	if v := os.Getenv("SCM_PRODUCT_DB"); v != "" {
		cfg.ProductDBPath = v
	}
	if v := os.Getenv("SCM_USER_DB"); v != "" {
		cfg.UserDBPath = v
	}
	if v := os.Getenv("SCM_PG_DSN"); v != "" {
		cfg.PostgresDSN = v
	}
	if v := os.Getenv("SCM_AI_URL"); v != "" {
		cfg.AIBaseURL = v
	}
	if v := os.Getenv("SCM_OPS_ADDR"); v != "" {
		cfg.OpsAddr = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	}
	if v := os.Getenv("SCM_INTERACTIVE"); v == "0" || strings.EqualFold(v, "false") {
		cfg.Interactive = false
	}
	return cfg
}

func main() {
	setupLogger()
	cfg := readConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"products_db": cfg.ProductDBPath,
		"users_db":    cfg.UserDBPath,
		"interactive": cfg.Interactive,
	}).Info("запускаем симуляцию цепочки поставок")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("симуляция завершилась с ошибкой")
	}

	log.Info("симуляция остановлена")
}
