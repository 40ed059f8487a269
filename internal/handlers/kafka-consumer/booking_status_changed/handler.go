package booking_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"yardbook/internal/entities"
	"yardbook/internal/service/booking"
	"yardbook/internal/service/notification"
	"yardbook/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("booking.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("booking.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("booking.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking", event.BookingID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.status.changed processing")

	status := entities.BookingStatusType(event.Status)
	bookingModify := entities.BookingModify{
		ID:     &event.BookingID,
		Status: &status,
	}

	bookingEntity, err := h.notificationService.ProcessBookingStatusChange(ctx, bookingModify)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler incomplete event")

		case errors.Is(err, booking.ErrBookingNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler unknown booking")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler failed to process booking")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("booking", bookingEntity.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", bookingEntity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("booking.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
