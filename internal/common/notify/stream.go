package notify

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"interview-admin-backend/internal/common/logger"
)

// StreamNotifier appends action outcomes to a Redis stream, where a
// separate consumer (bot, mailer) picks them up.
type StreamNotifier struct {
	client *redis.Client
	stream string
	log    zerolog.Logger
}

func NewStream(client *redis.Client, stream string) *StreamNotifier {
	return &StreamNotifier{
		client: client,
		stream: stream,
		log:    logger.Component("notify"),
	}
}

func (n *StreamNotifier) Success(ctx context.Context, action, message string) {
	n.publish(ctx, action, "success", message)
}

func (n *StreamNotifier) Failure(ctx context.Context, action, message string) {
	n.publish(ctx, action, "failure", message)
}

func (n *StreamNotifier) publish(ctx context.Context, action, status, message string) {
	err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]interface{}{
			"action":  action,
			"status":  status,
			"message": message,
			"at":      time.Now().UTC().Format(time.RFC3339),
		},
	}).Err()
	if err != nil {
		n.log.Warn().Err(err).Str("action", action).Msg("Notification dropped")
	}
}
