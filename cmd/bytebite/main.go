package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/app"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/database/psql"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/models"
	orderservice "github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/service/order"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/config"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/sl"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/nats"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.SetupLogger(cfg.HTTP.Env)
	if err != nil {
		panic(err)
	}

	storage, err := psql.New(log, cfg.ConnectionString())
	if err != nil {
		panic(err)
	}

	// the event bus is optional; without it orders are simply not announced
	var publisher orderservice.Publisher
	var natsClient *nats.Client
	if cfg.Nats.URL != "" {
		natsClient, err = nats.New(cfg.Nats.URL)
		if err != nil {
			log.Error("Failed to connect to nats", sl.Err(err))
			panic(err)
		}
		publisher = natsClient

		// audit feed of placed orders
		err = natsClient.Subscribe(orderservice.SubjectOrderPlaced, func(data []byte) {
			var order models.Order
			if err := json.Unmarshal(data, &order); err != nil {
				log.Warn("Failed to decode order event", sl.Err(err))
				return
			}
			log.Info("order event", "order_id", order.Id, "customer", order.CustomerName, "total", order.Total)
		})
		if err != nil {
			log.Error("Failed to subscribe to order events", sl.Err(err))
			panic(err)
		}
	}

	application := app.New(
		log,
		cfg.HTTP.Port,
		storage,
		publisher,
	)

	if err := application.Bootstrap(context.Background(), cfg.Seed); err != nil {
		log.Error("Failed to bootstrap application", sl.Err(err))
		panic(err)
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Error("Application failed to start", sl.Err(err))
			panic(err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGTERM, syscall.SIGINT)
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := application.Stop(ctx); err != nil {
		log.Error("Failed to stop http server", sl.Err(err))
	}

	if natsClient != nil {
		log.Info("Closing nats connection")
		if err := natsClient.Close(); err != nil {
			log.Error("Failed to close nats connection", sl.Err(err))
		}
	}

	log.Info("Closing database")
	storage.Close()
}
