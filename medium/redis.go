package medium

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"chatter-hub/contract"
	"chatter-hub/domain"
)

// DefaultStream is the Redis stream key used when none is configured.
const DefaultStream = "chatter:broadcast"

// Redis is a medium backed by a Redis stream, for running several hub
// instances against one shared broadcast. Each reader keeps the id of the
// last entry it consumed and asks Redis only for newer ones.
type Redis struct {
	client *redis.Client
	stream string
	log    *slog.Logger
}

// NewRedis wraps an established client. The medium takes ownership of the
// client: Close closes it.
func NewRedis(client *redis.Client, stream string, log *slog.Logger) *Redis {
	if stream == "" {
		stream = DefaultStream
	}
	return &Redis{client: client, stream: stream, log: log}
}

func (r *Redis) Publish(ctx context.Context, msg domain.Message) error {
	return r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{
			"id":     msg.ID.String(),
			"sender": string(msg.SenderID),
			"group":  string(msg.GroupID),
			"body":   msg.Body,
			"at":     strconv.FormatInt(msg.At.UnixNano(), 10),
		},
	}).Err()
}

// NewReader anchors the cursor at the current end of the stream so earlier
// entries are never replayed to the new reader.
func (r *Redis) NewReader(ctx context.Context) (contract.MediumReader, error) {
	last := "0-0"
	entries, err := r.client.XRevRangeN(ctx, r.stream, "+", "-", 1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading stream tail: %w", err)
	}
	if len(entries) > 0 {
		last = entries[0].ID
	}
	return &redisReader{client: r.client, stream: r.stream, lastID: last, log: r.log}, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

type redisReader struct {
	client *redis.Client
	stream string
	lastID string
	log    *slog.Logger
}

// ReadNew fetches entries strictly after the cursor. A malformed entry is
// logged and skipped; it must not stall the whole stream.
func (r *redisReader) ReadNew(ctx context.Context) ([]domain.Message, error) {
	entries, err := r.client.XRange(ctx, r.stream, "("+r.lastID, "+").Result()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	records := make([]domain.Message, 0, len(entries))
	for _, entry := range entries {
		msg, err := fromStreamValues(entry.Values)
		if err != nil {
			r.log.Warn("Skipping malformed stream entry", "entry", entry.ID, "error", err)
			continue
		}
		records = append(records, msg)
	}
	r.lastID = entries[len(entries)-1].ID
	return records, nil
}

func (r *redisReader) Close() error {
	return nil
}

func fromStreamValues(values map[string]interface{}) (domain.Message, error) {
	id, err := uuid.Parse(stringValue(values, "id"))
	if err != nil {
		return domain.Message{}, fmt.Errorf("parsing message id: %w", err)
	}
	nanos, err := strconv.ParseInt(stringValue(values, "at"), 10, 64)
	if err != nil {
		return domain.Message{}, fmt.Errorf("parsing publish time: %w", err)
	}
	return domain.Message{
		ID:       id,
		SenderID: domain.ChatterID(stringValue(values, "sender")),
		GroupID:  domain.GroupID(stringValue(values, "group")),
		Body:     stringValue(values, "body"),
		At:       time.Unix(0, nanos).UTC(),
	}, nil
}

func stringValue(values map[string]interface{}, key string) string {
	s, _ := values[key].(string)
	return s
}
