package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/app"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/geocoder"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/handler"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/jobs"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/messaging"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/postgres"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/repo"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/service"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/telemetry"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/cache"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/trm"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, conf.Telemetry)
	panicIfErr("failed to init tracing", err)

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	txManager := trm.NewManager(db)
	orderRepo := repo.NewOrderRepo(db)
	deliveryRepo := repo.NewDeliveryRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	accountRepo := repo.NewAccountRepo(db)
	locationRepo := repo.NewLocationRepo(db)

	locationCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	producer := messaging.NewProducer(conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, deliveryRepo, catalogRepo, accountRepo, producer)
	deliveryService := service.NewDeliveryService(logger, txManager, orderRepo, deliveryRepo, accountRepo, producer)
	catalogService := service.NewCatalogService(logger, txManager, catalogRepo)
	accountService := service.NewAccountService(logger, txManager, accountRepo, locationRepo, locationCache, newGeocoder(logger, conf.Geocoder))

	overdueMonitor := jobs.NewOverdueMonitor(logger, conf.Jobs.OverdueSchedule, deliveryService)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, deliveryService)

	application := app.New(logger, conf)

	application.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewDeliveryHandler(logger, deliveryService),
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewAccountHandler(logger, accountService),
	)
	application.SetConsumers(kafkaHandler)
	application.SetStarters(locationCache, overdueMonitor)
	application.SetStoppers(
		app.StopFunc(func(context.Context) error {
			overdueMonitor.Stop()
			return nil
		}),
		app.StopFunc(func(context.Context) error {
			return producer.Close()
		}),
		app.StopFunc(shutdownTracer),
	)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// newGeocoder returns nil when no geocoder is configured.
func newGeocoder(logger *slog.Logger, cfg config.Geocoder) service.Geocoder {
	if cfg.URL == "" {
		logger.Warn("geocoder not configured, location resolution disabled")
		return nil
	}
	client := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return geocoder.NewNominatim(cfg.URL, cfg.UserAgent, client)
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
