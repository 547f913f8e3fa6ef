package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	ChangeInsert = "INSERT"
	ChangeUpdate = "UPDATE"
	ChangeDelete = "DELETE"
)

// ChangeEvent is published on every successful table write. Subscribers treat
// it as a re-fetch trigger, not an incremental update.
type ChangeEvent struct {
	Table  string      `json:"table"`
	Action string      `json:"action"`
	ID     interface{} `json:"id,omitempty"`
	Row    interface{} `json:"row,omitempty"`
}

// Notifier fans change events out over Redis pub/sub, one channel per table.
// With a nil client it silently drops events, so the rest of the service layer
// never needs to care whether Redis is configured.
type Notifier struct {
	RDB *redis.Client
	Log *logrus.Logger
}

func NewNotifier(rdb *redis.Client, log *logrus.Logger) *Notifier {
	return &Notifier{RDB: rdb, Log: log}
}

func changeChannel(table string) string {
	return "changes:" + table
}

func (n *Notifier) Publish(ctx context.Context, table, action string, id interface{}, row interface{}) {
	if n == nil || n.RDB == nil {
		return
	}

	payload, err := json.Marshal(ChangeEvent{Table: table, Action: action, ID: id, Row: row})
	if err != nil {
		n.Log.WithError(err).WithField("table", table).Warn("failed to marshal change event")
		return
	}

	if err := n.RDB.Publish(ctx, changeChannel(table), payload).Err(); err != nil {
		// Best-effort: a dropped notification only delays the next re-fetch.
		n.Log.WithError(err).WithField("table", table).Warn("failed to publish change event")
	}
}

// Subscribe returns a channel of events for one table plus a cancel func.
// Returns an error when Redis is not configured.
func (n *Notifier) Subscribe(ctx context.Context, table string) (<-chan ChangeEvent, func(), error) {
	if n == nil || n.RDB == nil {
		return nil, nil, fmt.Errorf("realtime_disabled")
	}

	sub := n.RDB.Subscribe(ctx, changeChannel(table))
	out := make(chan ChangeEvent, 16)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				n.Log.WithError(err).Warn("bad change event payload")
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return out, cancel, nil
}
