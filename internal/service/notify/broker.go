package notify

import (
	"context"

	"FinSignal/internal/domain/models"
	domrepo "FinSignal/internal/domain/repository"
)

// ChannelPublisher is satisfied by pubsub.RedisPublisher.
type ChannelPublisher interface {
	Publish(ctx context.Context, channel string, value interface{}) error
}

// TopicPublisher is satisfied by kafka.Producer.
type TopicPublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
}

// BroadcastPublisher is satisfied by ws.Hub.
type BroadcastPublisher interface {
	Broadcast(msgType string, data interface{}) error
}

// RedisNotifier publishes alerts on a Redis channel.
type RedisNotifier struct {
	pub     ChannelPublisher
	channel string
}

func NewRedisNotifier(pub ChannelPublisher, channel string) *RedisNotifier {
	return &RedisNotifier{pub: pub, channel: channel}
}

func (r *RedisNotifier) Send(ctx context.Context, msg models.Notification) error {
	return wrap("redis", r.pub.Publish(ctx, r.channel, toPayload(msg)))
}

// KafkaNotifier writes alerts to a Kafka topic keyed by symbol.
type KafkaNotifier struct {
	pub   TopicPublisher
	topic string
}

func NewKafkaNotifier(pub TopicPublisher, topic string) *KafkaNotifier {
	return &KafkaNotifier{pub: pub, topic: topic}
}

func (k *KafkaNotifier) Send(ctx context.Context, msg models.Notification) error {
	return wrap("kafka", k.pub.Publish(ctx, k.topic, []byte(msg.Symbol), toPayload(msg)))
}

// BrowserNotifier pushes alerts to open dashboards, which raise a desktop
// notification through the browser Notification API.
type BrowserNotifier struct {
	hub BroadcastPublisher
}

// MessageType is the websocket envelope type for signal changes.
const MessageType = "signal_change"

func NewBrowserNotifier(hub BroadcastPublisher) *BrowserNotifier {
	return &BrowserNotifier{hub: hub}
}

func (b *BrowserNotifier) Send(_ context.Context, msg models.Notification) error {
	return wrap("browser", b.hub.Broadcast(MessageType, browserPayload{
		payload:   toPayload(msg),
		TimeoutMS: msg.Timeout.Milliseconds(),
	}))
}

type browserPayload struct {
	payload
	TimeoutMS int64 `json:"timeout_ms"`
}

var (
	_ domrepo.Notifier = (*RedisNotifier)(nil)
	_ domrepo.Notifier = (*KafkaNotifier)(nil)
	_ domrepo.Notifier = (*BrowserNotifier)(nil)
)
