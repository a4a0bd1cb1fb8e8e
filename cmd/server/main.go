package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	"github.com/example/storefront/internal/adapter/cache"
	"github.com/example/storefront/internal/adapter/httpapi"
	"github.com/example/storefront/internal/adapter/natsstan"
	"github.com/example/storefront/internal/adapter/repo"
	"github.com/example/storefront/internal/adapter/telemetry"
	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/usecase"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load[config.Server]()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	shutdownTracing, err := telemetry.Setup(ctx, "storefront-server", cfg.Telemetry)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	products, err := repo.NewPostgresProductRepo(pool).List(ctx)
	if err != nil {
		log.Fatalf("load products: %v", err)
	}
	catalog := cache.NewMemoryProductCatalog(products)
	log.Printf("catalog loaded: %d products", len(products))

	orderRepo := repo.NewPostgresOrderRepo(pool)
	orderCache := cache.NewBoundedOrderCache(cfg.OrderCacheSize)
	if err := (usecase.LoadCache{Repo: orderRepo, Cache: orderCache}).Execute(ctx); err != nil {
		log.Fatalf("load cache: %v", err)
	}

	sub := &natsstan.Subscriber{
		ClusterID:  cfg.NATS.ClusterID,
		ClientID:   cfg.NATS.ClientID,
		URL:        cfg.NATS.URL,
		Subject:    cfg.NATS.Subject,
		Durable:    cfg.NATS.Durable,
		QueueGroup: cfg.NATS.QueueGroup,
	}
	process := usecase.ProcessIncomingOrder{Repo: orderRepo, Cache: orderCache}
	if err := sub.Subscribe(ctx, process.Execute); err != nil {
		log.Printf("stan subscribe: %v", err)
	}

	pub, err := natsstan.Connect(cfg.NATS.ClusterID, fmt.Sprintf("storefront-api-%d", time.Now().UnixNano()), cfg.NATS.URL, cfg.NATS.Subject)
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer pub.Close()

	api := httpapi.NewServer(
		catalog,
		usecase.PlaceOrder{Catalog: catalog, Publisher: pub},
		usecase.GetOrderByID{Cache: orderCache},
		httpapi.Options{
			OrderLimiter: rate.NewLimiter(rate.Limit(cfg.OrderRate), cfg.OrderBurst),
			StaticDir:    cfg.StaticDir,
		},
	)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: api.Router, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		log.Printf("http listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
