package realtime

import (
	"context"
	"time"

	"studiobooking/internal/domain"
)

// Event is the wire shape of every push message.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

const (
	EventBookingUpdated  = "booking_updated"
	EventHoursExhausted  = "hours_exhausted"
	EventPaymentRecorded = "payment_recorded"
)

// HubNotifier adapts the hub to the notifier surfaces the booking and
// invoice services expect. Delivery is fire-and-forget.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyBookingUpdated(_ context.Context, bookingID int64, status domain.BookingStatus) error {
	n.hub.Broadcast(Event{
		Type:      EventBookingUpdated,
		Timestamp: time.Now(),
		Payload: map[string]any{
			"booking_id": bookingID,
			"status":     status,
		},
	})
	return nil
}

func (n *HubNotifier) NotifyHoursExhausted(_ context.Context, bookingID int64, usedHours float64) error {
	n.hub.Broadcast(Event{
		Type:      EventHoursExhausted,
		Timestamp: time.Now(),
		Payload: map[string]any{
			"booking_id": bookingID,
			"used_hours": usedHours,
		},
	})
	return nil
}

func (n *HubNotifier) NotifyPaymentRecorded(_ context.Context, invoiceID int64, paid, outstanding float64) error {
	n.hub.Broadcast(Event{
		Type:      EventPaymentRecorded,
		Timestamp: time.Now(),
		Payload: map[string]any{
			"invoice_id":  invoiceID,
			"paid":        paid,
			"outstanding": outstanding,
		},
	})
	return nil
}
