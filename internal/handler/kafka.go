package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type StockAdjuster interface {
	AdjustInventory(ctx context.Context, cmd entities.InventoryCommand) (entities.InventoryRecord, error)
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StockConsumer applies warehouse stock adjustments published to Kafka.
// Messages that cannot be applied go to the "<topic>-dlq" topic.
type StockConsumer struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	adjuster StockAdjuster
}

func NewStockConsumer(logger *slog.Logger, cfg config.Kafka, adjuster StockAdjuster) *StockConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.StockTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newStockConsumer(logger, reader, dlq, adjuster)
}

func newStockConsumer(logger *slog.Logger, reader messageReader, dlq messageWriter, adjuster StockAdjuster) *StockConsumer {
	return &StockConsumer{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		adjuster: adjuster,
	}
}

func (h *StockConsumer) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// Version conflicts are already retried by the inventory service.
		if err := h.handleAdjustment(ctx, m); err != nil {
			adjustmentsFailed.Inc()
			h.logger.Error("failed to handle stock adjustment",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.String("key", string(m.Key)),
			)

			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			adjustmentsDLQ.Inc()
		} else {
			adjustmentsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *StockConsumer) handleAdjustment(ctx context.Context, m kafka.Message) error {
	start := time.Now()
	adjustmentsInProgress.Inc()
	defer func() {
		adjustmentsInProgress.Dec()
		adjustmentProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	var adj StockAdjustment
	if err := json.Unmarshal(m.Value, &adj); err != nil {
		return fmt.Errorf("failed to unmarshal stock adjustment: %w", err)
	}

	if err := h.validate.Struct(adj); err != nil {
		return fmt.Errorf("invalid stock adjustment: %w", err)
	}

	if adj.Reference == "" {
		adj.Reference = fmt.Sprintf("kafka:%s/%d/%d", m.Topic, m.Partition, m.Offset)
	}
	_, err := h.adjuster.AdjustInventory(ctx, adj.toCommand())
	return err
}

func (h *StockConsumer) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *StockConsumer) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
