package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/CodyBrat/PlayNxt/internal/core/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingEvent is the message body published for every booking state change.
type BookingEvent struct {
	Event      string               `json:"event"`
	BookingID  uuid.UUID            `json:"bookingId"`
	UserID     uuid.UUID            `json:"userId"`
	VenueID    uuid.UUID            `json:"venueId"`
	VenueName  string               `json:"venueName"`
	Date       domain.Date          `json:"date"`
	Time       string               `json:"time"`
	Price      float64              `json:"price"`
	Status     domain.BookingStatus `json:"status"`
	OccurredAt time.Time            `json:"occurredAt"`
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type Publisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	now      func() time.Time
	mu       sync.Mutex
}

func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, now: time.Now}, nil
}

func (p *Publisher) PublishBooking(ctx context.Context, routingKey string, b *domain.Booking) error {
	body, err := json.Marshal(BookingEvent{
		Event:      routingKey,
		BookingID:  b.ID,
		UserID:     b.UserID,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		Date:       b.Date,
		Time:       b.Time,
		Price:      b.Price,
		Status:     b.Status,
		OccurredAt: p.now().UTC(),
	})
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    b.ID.String() + ":" + routingKey,
		Body:         body,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Nop drops events; used when no broker is configured.
type Nop struct{}

func (Nop) PublishBooking(context.Context, string, *domain.Booking) error { return nil }
