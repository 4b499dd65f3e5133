package models

import "time"

// Notification is a transient, fire-and-forget user alert.
type Notification struct {
	Symbol  string        `json:"symbol"`
	Signal  TradeSignal   `json:"signal"`
	Title   string        `json:"title"`
	Message string        `json:"message"`
	Timeout time.Duration `json:"-"`
	SentAt  time.Time     `json:"sent_at"`
}
