package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type assignment struct {
	OrderID               string     `json:"order_id"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
}

type order struct {
	ID string `json:"id"`
}

var (
	apiURL  = flag.String("api", "http://localhost:8080", "service base URL")
	brokers = flag.String("broker", "localhost:9092", "kafka broker")
	topic   = flag.String("topic", "delivery-assignments", "assignments topic")
	staffID = flag.String("staff", uuid.NewString(), "staff user id used to list orders")
)

// pendingOrders lists pending orders through the HTTP API as a staff caller.
func pendingOrders(ctx context.Context) ([]order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *apiURL+"/orders?status=pending&limit=20", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-User-ID", *staffID)
	req.Header.Set("X-User-Role", "admin")
	req.Header.Set("X-User-Staff", "true")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var orders []order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func message(o order) kafka.Message {
	eta := time.Now().Add(time.Duration(20+rand.Intn(40)) * time.Minute).UTC()
	a := assignment{OrderID: o.ID, EstimatedDeliveryTime: &eta, Notes: "generated"}

	// Часть сообщений битая, чтобы проверить DLQ
	if rand.Intn(10) == 0 {
		return kafka.Message{Key: []byte(o.ID), Value: []byte(`{"order_id":`)}
	}
	data, _ := json.Marshal(a)
	return kafka.Message{Key: []byte(o.ID), Value: data}
}

func main() {
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(*brokers),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			orders, err := pendingOrders(ctx)
			if err != nil {
				log.Println("failed to list orders:", err)
				continue
			}
			for _, o := range orders {
				msg := message(o)
				// Повторная отправка должна обрабатываться как дубликат
				if err := writer.WriteMessages(ctx, msg, msg); err != nil {
					log.Println("failed to write assignment:", err)
					continue
				}
				log.Println("assignment requested", o.ID)
			}
		case <-ctx.Done():
			return
		}
	}
}
