package models

import "time"

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Valid reports whether d is inbound or outbound.
func (d Direction) Valid() bool {
	return d == DirectionInbound || d == DirectionOutbound
}

type DeliveryStatus string

const (
	DeliveryStatusReceived    DeliveryStatus = "received"
	DeliveryStatusQueued      DeliveryStatus = "queued"
	DeliveryStatusSent        DeliveryStatus = "sent"
	DeliveryStatusDelivered   DeliveryStatus = "delivered"
	DeliveryStatusUndelivered DeliveryStatus = "undelivered"
	DeliveryStatusFailed      DeliveryStatus = "failed"
)

// Message is one inbound or outbound event within a thread. Seq is the
// thread-local position and gives the total order.
type Message struct {
	ID                string         `db:"id" json:"id"`
	ThreadID          string         `db:"thread_id" json:"thread_id"`
	Seq               int64          `db:"seq" json:"seq"`
	Direction         Direction      `db:"direction" json:"direction"`
	Channel           Channel        `db:"channel" json:"channel"`
	Body              string         `db:"body" json:"body"`
	Subject           *string        `db:"subject" json:"subject,omitempty"`
	ProviderMessageID *string        `db:"provider_message_id" json:"provider_message_id,omitempty"`
	DeliveryStatus    DeliveryStatus `db:"delivery_status" json:"delivery_status"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
}

// MessageMeta carries optional attributes for AppendMessage.
type MessageMeta struct {
	Subject           *string
	ProviderMessageID *string
	DeliveryStatus    DeliveryStatus
}
