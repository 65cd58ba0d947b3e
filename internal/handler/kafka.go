package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/messaging"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var consumerTracer = otel.Tracer("handler/kafka")

type DeliveryAssigner interface {
	AssignDelivery(ctx context.Context, caller entities.Caller, req entities.AssignDelivery) (entities.DeliveryAssignment, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	assigner DeliveryAssigner
	topic    string
	groupID  string
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, assigner DeliveryAssigner) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.AssignmentsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: utils.NewValidator(),
		assigner: assigner,
		topic:    cfg.AssignmentsTopic,
		groupID:  cfg.GroupID,
	}
}

// Consume reads assignment requests until ctx is cancelled or the reader is
// closed. A message that cannot be handled is moved to the DLQ and committed.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.process(ctx, m); err != nil {
			h.logger.Error("failed to handle message",
				slog.Any("error", err),
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
			)
			assignmentsFailed.Inc()

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			assignmentsDLQ.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) error {
	assignmentsInProgress.Inc()
	defer assignmentsInProgress.Dec()

	start := time.Now()
	defer func() {
		assignmentProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	parent := otel.GetTextMapPropagator().Extract(ctx, messaging.NewMessageCarrier(&m))
	ctx, span := consumerTracer.Start(parent, "process "+h.topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("process"),
			semconv.MessagingOperationTypeDeliver,
			semconv.MessagingDestinationName(h.topic),
			semconv.MessagingKafkaConsumerGroup(h.groupID),
			semconv.MessagingKafkaMessageOffset(int(m.Offset)),
			semconv.MessagingDestinationPartitionID(strconv.Itoa(m.Partition)),
		),
	)
	defer span.End()

	if err := h.handleAssignment(ctx, m); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// handleAssignment runs one assignment request as the system caller. An order
// that already has an assignment counts as handled, so redelivery is safe.
func (h *kafkaHandler) handleAssignment(ctx context.Context, m kafka.Message) error {
	var req AssignDeliveryRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal assignment: %w", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid assignment data: %w", err)
	}

	a, err := h.assigner.AssignDelivery(ctx, entities.SystemCaller, AssignDeliveryJSONToEntity(req))
	if errors.Is(err, entities.ErrConflict) {
		h.logger.Debug("order already assigned", slog.String("order_id", req.OrderID.String()))
		assignmentsDuplicate.Inc()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to assign delivery: %w", err)
	}

	assignmentsProcessed.Inc()
	h.logger.Debug("assignment processed", slog.String("assignment_id", a.ID.String()))
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
