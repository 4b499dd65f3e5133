package notify

import (
	"context"
	"time"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
	xhttp "FinSignal/pkg/http"
)

// WebhookNotifier POSTs alerts as JSON to an HTTP endpoint.
type WebhookNotifier struct {
	url  string
	http *xhttp.Client
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookNotifier{url: url, http: xhttp.NewClient(xhttp.WithTimeout(timeout))}
}

func (w *WebhookNotifier) Send(ctx context.Context, msg models.Notification) error {
	err := w.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    w.url,
		Body:   toPayload(msg),
	}, nil)
	return wrap("webhook", err)
}

var _ domrepo.Notifier = (*WebhookNotifier)(nil)
