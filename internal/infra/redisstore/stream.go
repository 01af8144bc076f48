package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"voucher-seckill/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Field names written by the admission script.
const (
	fieldUserID    = "userId"
	fieldVoucherID = "voucherId"
	fieldOrderID   = "id"
)

var ErrMalformedRecord = errs.New("malformed order record")

// OrderRecord is one admitted purchase waiting to be materialized.
type OrderRecord struct {
	MessageID string
	OrderID   int64
	UserID    int64
	VoucherID int64
}

type StreamConfig struct {
	Stream           string
	Group            string
	Consumer         string
	Block            time.Duration
	DeadLetterStream string
}

// OrderStream is the consumer side of the intake queue for one consumer identity.
type OrderStream struct {
	rdb redis.UniversalClient
	cfg StreamConfig
}

func NewOrderStream(rdb redis.UniversalClient, cfg StreamConfig) *OrderStream {
	return &OrderStream{rdb: rdb, cfg: cfg}
}

// EnsureGroup creates the stream and its consumer group when missing.
func (s *OrderStream) EnsureGroup(ctx context.Context) error {
	err := s.rdb.XGroupCreateMkStream(ctx, s.cfg.Stream, s.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return errs.Wrapf(err, "failed to create consumer group %s", s.cfg.Group)
	}
	return nil
}

// ReadNew blocks up to the configured wait for one never-delivered record.
// A nil message with nil error means the wait timed out.
func (s *OrderStream) ReadNew(ctx context.Context) (*redis.XMessage, error) {
	return s.read(ctx, ">", s.cfg.Block)
}

// ReadPending returns the oldest record delivered to this consumer but not acknowledged.
func (s *OrderStream) ReadPending(ctx context.Context) (*redis.XMessage, error) {
	return s.read(ctx, "0", -1)
}

func (s *OrderStream) read(ctx context.Context, id string, block time.Duration) (*redis.XMessage, error) {
	streams, err := s.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.cfg.Group,
		Consumer: s.cfg.Consumer,
		Streams:  []string{s.cfg.Stream, id},
		Count:    1,
		Block:    block,
	}).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read order stream")
	}
	for _, st := range streams {
		if len(st.Messages) > 0 {
			msg := st.Messages[0]
			return &msg, nil
		}
	}
	return nil, nil
}

func (s *OrderStream) Ack(ctx context.Context, messageID string) error {
	if err := s.rdb.XAck(ctx, s.cfg.Stream, s.cfg.Group, messageID).Err(); err != nil {
		return errs.Wrapf(err, "failed to ack %s", messageID)
	}
	return nil
}

// DeliveryCount reports how many times messageID has been handed to a consumer.
// Zero means the record is no longer pending.
func (s *OrderStream) DeliveryCount(ctx context.Context, messageID string) (int64, error) {
	pending, err := s.rdb.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream:   s.cfg.Stream,
		Group:    s.cfg.Group,
		Start:    messageID,
		End:      messageID,
		Count:    1,
		Consumer: s.cfg.Consumer,
	}).Result()
	if err != nil {
		return 0, errs.Wrapf(err, "failed to inspect pending %s", messageID)
	}
	if len(pending) == 0 {
		return 0, nil
	}
	return pending[0].RetryCount, nil
}

// DeadLetter copies the record to the dead-letter stream and acknowledges the
// original in one transaction, so the record leaves the pending list exactly once.
func (s *OrderStream) DeadLetter(ctx context.Context, msg redis.XMessage, reason string) error {
	values := make(map[string]any, len(msg.Values)+2)
	for k, v := range msg.Values {
		values[k] = v
	}
	values["sourceId"] = msg.ID
	values["reason"] = reason

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, &redis.XAddArgs{Stream: s.cfg.DeadLetterStream, Values: values})
		pipe.XAck(ctx, s.cfg.Stream, s.cfg.Group, msg.ID)
		return nil
	})
	if err != nil {
		return errs.Wrapf(err, "failed to dead-letter %s", msg.ID)
	}
	return nil
}

// DecodeOrderRecord parses the string-keyed fields written by the admission script.
func DecodeOrderRecord(msg redis.XMessage) (OrderRecord, error) {
	rec := OrderRecord{MessageID: msg.ID}
	var err error
	if rec.UserID, err = intField(msg.Values, fieldUserID); err != nil {
		return rec, err
	}
	if rec.VoucherID, err = intField(msg.Values, fieldVoucherID); err != nil {
		return rec, err
	}
	if rec.OrderID, err = intField(msg.Values, fieldOrderID); err != nil {
		return rec, err
	}
	return rec, nil
}

func intField(values map[string]any, name string) (int64, error) {
	raw, ok := values[name]
	if !ok {
		return 0, errs.Mark(fmt.Errorf("missing field %q", name), ErrMalformedRecord)
	}
	n, err := strconv.ParseInt(fmt.Sprint(raw), 10, 64)
	if err != nil {
		return 0, errs.Mark(fmt.Errorf("field %q: %w", name, err), ErrMalformedRecord)
	}
	return n, nil
}
