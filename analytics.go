package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Analytics streams game events to Kafka, fire-and-forget: the writer is
// async, errors are logged and dropped, and a missing endpoint disables
// the whole thing. Nothing here may ever block or fail a game command.
type Analytics struct {
	log    *slog.Logger
	writer *kafka.Writer
}

func newAnalytics(endpoint string, log *slog.Logger) *Analytics {
	a := &Analytics{log: log}
	if endpoint == "" {
		return a
	}
	a.writer = &kafka.Writer{
		Addr:                   kafka.TCP(endpoint),
		Topic:                  "game-events",
		RequiredAcks:           kafka.RequireNone,
		Async:                  true,
		BatchSize:              1,
		AllowAutoTopicCreation: true,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Debug("analytics write failed", "detail", msg)
		}),
	}
	return a
}

// Event records one game event. Safe to call from the command path.
func (a *Analytics) Event(event, roomID string, fields map[string]interface{}) {
	if a.writer == nil {
		return
	}
	payload := map[string]interface{}{
		"event": event,
		"room":  roomID,
		"at":    time.Now().UnixMilli(),
	}
	for k, v := range fields {
		payload[k] = v
	}
	value, err := json.Marshal(payload)
	if err != nil {
		return
	}
	// async writer: returns immediately, delivery errors go to ErrorLogger
	_ = a.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(roomID),
		Value: value,
	})
}

func (a *Analytics) Close() {
	if a.writer != nil {
		a.writer.Close()
	}
}
