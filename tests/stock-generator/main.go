package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type StockAdjustment struct {
	SkuCode   string `json:"sku_code"`
	Warehouse string `json:"warehouse"`
	Quantity  int    `json:"quantity"`
	Reference string `json:"reference,omitempty"`
}

var skus = []string{"TSHIRT-RED-M", "MUG-WHITE"}

func generateRandomAdjustment() StockAdjustment {
	qty := rand.Intn(20) + 1
	// mostly receipts, sometimes shrinkage
	if rand.Intn(4) == 0 {
		qty = -rand.Intn(3) - 1
	}
	return StockAdjustment{
		SkuCode:   skus[rand.Intn(len(skus))],
		Warehouse: "MAIN",
		Quantity:  qty,
		Reference: fmt.Sprintf("po-%d", rand.Intn(100000)),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "stock-adjustments",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			adj := generateRandomAdjustment()
			data, _ := json.Marshal(adj)
			writer.WriteMessages(context.Background(), kafka.Message{Key: []byte(adj.SkuCode), Value: data})
			log.Println("stock adjustment generated", adj.SkuCode, adj.Quantity)
		case <-ctx.Done():
			return
		}
	}
}
