// Package notify delivers signal-change alerts to the configured channels.
package notify

import (
	"context"
	"errors"
	"fmt"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	xlogger "FinSignal/pkg/logger"
)

// LogNotifier writes alerts to the application log.
type LogNotifier struct {
	logger *xlogger.Logger
}

func NewLogNotifier(logger *xlogger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, msg models.Notification) error {
	if n.logger == nil {
		return nil
	}
	n.logger.Info(msg.Title,
		xlogger.String("symbol", msg.Symbol),
		xlogger.String("signal", string(msg.Signal)),
		xlogger.String("message", msg.Message),
	)
	return nil
}

// Multi fans a notification out to every sink. A failing sink does not stop
// delivery to the rest.
type Multi struct {
	sinks []domrepo.Notifier
}

func NewMulti(sinks ...domrepo.Notifier) *Multi {
	out := make([]domrepo.Notifier, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return &Multi{sinks: out}
}

// Len returns the number of active sinks.
func (m *Multi) Len() int { return len(m.sinks) }

func (m *Multi) Send(ctx context.Context, msg models.Notification) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Send(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// payload is the JSON body shared by the webhook, redis and kafka sinks.
type payload struct {
	Symbol  string `json:"symbol"`
	Signal  string `json:"signal"`
	Title   string `json:"title"`
	Message string `json:"message"`
	TS      string `json:"ts"`
}

func toPayload(msg models.Notification) payload {
	return payload{
		Symbol:  msg.Symbol,
		Signal:  string(msg.Signal),
		Title:   msg.Title,
		Message: msg.Message,
		TS:      msg.SentAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func wrap(sink string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", sink, err)
}

var (
	_ domrepo.Notifier = (*LogNotifier)(nil)
	_ domrepo.Notifier = (*Multi)(nil)
)
