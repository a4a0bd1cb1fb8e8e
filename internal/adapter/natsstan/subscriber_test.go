package natsstan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeliverAcksOnlySuccess(t *testing.T) {
	s := &Subscriber{Subject: "orders"}
	acks := 0
	ack := func() error { acks++; return nil }

	ok := s.deliver([]byte(`{"id":"o1"}`), ack, func(context.Context, []byte) error { return nil })
	assert.True(t, ok)
	assert.Equal(t, 1, acks)

	ok = s.deliver([]byte(`{`), ack, func(context.Context, []byte) error { return errors.New("invalid json") })
	assert.False(t, ok)
	assert.Equal(t, 1, acks, "failed message must stay unacknowledged for redelivery")
}

func TestDeliverReportsAckFailure(t *testing.T) {
	s := &Subscriber{Subject: "orders"}

	ok := s.deliver(nil, func() error { return errors.New("connection closed") },
		func(context.Context, []byte) error { return nil })

	assert.False(t, ok)
}

func TestDeliverBoundsHandlerTime(t *testing.T) {
	s := &Subscriber{HandlerTimeout: 20 * time.Millisecond}
	var deadline time.Time

	s.deliver(nil, func() error { return nil }, func(ctx context.Context, _ []byte) error {
		deadline, _ = ctx.Deadline()
		<-ctx.Done()
		return ctx.Err()
	})

	assert.False(t, deadline.IsZero())
	assert.WithinDuration(t, time.Now(), deadline, time.Second)
}
