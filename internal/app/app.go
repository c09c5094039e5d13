package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/ali3442/SCM-Simulation-Project/internal/ai"
	"github.com/ali3442/SCM-Simulation-Project/internal/console"
	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
	healthcheck "github.com/ali3442/SCM-Simulation-Project/internal/health"
	"github.com/ali3442/SCM-Simulation-Project/internal/messaging/kafka"
	"github.com/ali3442/SCM-Simulation-Project/internal/metrics"
	"github.com/ali3442/SCM-Simulation-Project/internal/storage/memory"
	"github.com/ali3442/SCM-Simulation-Project/internal/storage/postgres"
	"github.com/ali3442/SCM-Simulation-Project/internal/storage/sqlite"
	"github.com/ali3442/SCM-Simulation-Project/internal/version"
)

// Run собирает коллабораторов, прогоняет симуляцию и освобождает ресурсы
// на всех путях выхода. Внешние сервисы не являются синглтонами: каждый
// захватывается здесь явно и здесь же закрывается.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	products, users, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := users.Close(); err != nil {
			logger.WithError(err).Warn("failed to close user store")
		}
		if err := products.Close(); err != nil {
			logger.WithError(err).Warn("failed to close product store")
		}
	}()

	var gen domain.TextGenerator
	if cfg.AIBaseURL != "" {
		gen = ai.NewClient(cfg.AIBaseURL, log.WithField("component", "ai-client"))
		logger.WithField("ai_url", cfg.AIBaseURL).Info("text generator configured")
	} else {
		mock := ai.NewMock()
		mock.Fail = true
		gen = mock
		logger.Info("text generator not configured, responses will be unavailable")
	}

	var producer *kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			producer = p
			logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer initialized")
			defer func() {
				if err := producer.Close(); err != nil {
					logger.WithError(err).Warn("failed to close kafka producer")
				}
			}()
		}
	}

	if cfg.OpsAddr != "" {
		healthHandler := healthcheck.NewHandler(version.GetVersion())
		healthHandler.RegisterChecker("product-store", func() error {
			_, err := products.FetchAllProducts()
			return err
		})
		srv := startOpsServer(ctx, cfg.OpsAddr, logger, healthHandler)
		defer shutdownHTTP(srv, logger)
	}

	if cfg.Interactive {
		console.NewQA(gen, os.Stdin, os.Stdout, log.WithField("component", "console-qa")).Run()
	}

	sim := newSimulation(products, users, gen, producer, metrics.NewSupplyMetrics(), logger)
	return sim.Run(ctx)
}

// openStores выбирает реализацию внешних таблиц: PostgreSQL, sqlite или память.
func openStores(ctx context.Context, cfg Config, logger *log.Entry) (domain.ProductStore, domain.UserStore, error) {
	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("record stores backed by postgres")
		return postgres.NewProductStore(store), postgres.NewUserStore(store), nil
	}

	if cfg.ProductDBPath != "" && cfg.UserDBPath != "" {
		products, err := sqlite.NewProductStore(cfg.ProductDBPath)
		if err != nil {
			return nil, nil, err
		}
		users, err := sqlite.NewUserStore(cfg.UserDBPath)
		if err != nil {
			_ = products.Close()
			return nil, nil, err
		}
		logger.WithFields(log.Fields{
			"products_db": cfg.ProductDBPath,
			"users_db":    cfg.UserDBPath,
		}).Info("record stores backed by sqlite")
		return products, users, nil
	}

	logger.Info("record stores backed by memory")
	return memory.NewProductStore(), memory.NewUserStore(), nil
}

// startOpsServer поднимает HTTP-обработчики /metrics, /healthz и /livez.
func startOpsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("ops server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("ops server shutdown with error")
	}
}
