package service

import (
	"context"
	"time"

	"farhatna/infras/kafka"
	"farhatna/internal/domains/booking/model"
	"farhatna/shared/constant"
	"farhatna/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is published to Kafka for downstream consumers (notifications,
// analytics). Publishing is best-effort and never fails the request.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	UserID     string    `json:"user_id"`
	SupplierID string    `json:"supplier_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newBookingEvent(event string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Event:      event,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SupplierID: booking.SupplierID,
		Status:     string(booking.Status),
		OccurredAt: timezone.Now(),
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, event BookingEvent) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+event.Event)
	defer scope.End()

	topic := s.cfg.Kafka.Topic.BookingEvents

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, topic, message); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", event.Event).Str("booking_id", event.BookingID).Msg("failed to publish booking event")
	}
}
