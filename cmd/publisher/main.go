package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/example/storefront/internal/adapter/natsstan"
	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/domain"
)

// Публикует принятый заказ из stdin в NATS Streaming, например для повторной
// обработки заказа, который не дошёл до базы.
func main() {
	cfg, err := config.Load[config.NATS]()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var order domain.PlacedOrder
	if err := json.NewDecoder(os.Stdin).Decode(&order); err != nil {
		log.Fatalf("read json from stdin: %v", err)
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	b, err := json.Marshal(order)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}

	pub, err := natsstan.Connect(cfg.ClusterID, cfg.PublisherID, cfg.URL, cfg.Subject)
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer pub.Close()

	if err := pub.Publish(context.Background(), b); err != nil {
		log.Fatalf("publish: %v", err)
	}
	log.Printf("published order %s (%d bytes) to %s", order.ID, len(b), cfg.Subject)
}
