// Package natsstan передаёт принятые заказы через NATS Streaming.
package natsstan

import (
	"context"
	"fmt"
	"log"
	"time"

	stan "github.com/nats-io/stan.go"

	"github.com/example/storefront/internal/domain"
)

const (
	defaultAckWait        = 10 * time.Second
	defaultHandlerTimeout = 5 * time.Second
)

// Subscriber читает принятые заказы из NATS Streaming с ручным подтверждением.
// Сообщение, которое обработчик не принял, не подтверждается и придёт снова.
type Subscriber struct {
	ClusterID  string
	ClientID   string
	URL        string
	Subject    string
	Durable    string
	QueueGroup string

	// AckWait и HandlerTimeout по умолчанию 10s и 5s.
	AckWait        time.Duration
	HandlerTimeout time.Duration
}

type handlerFunc = func(ctx context.Context, raw []byte) error

// Subscribe подключается и подписывается; соединение закрывается по отмене ctx.
func (s *Subscriber) Subscribe(ctx context.Context, handler handlerFunc) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("storefront-svc-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()

	ackWait := s.AckWait
	if ackWait <= 0 {
		ackWait = defaultAckWait
	}
	_, err = sc.QueueSubscribe(s.Subject, s.QueueGroup, func(m *stan.Msg) {
		s.deliver(m.Data, m.Ack, handler)
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(ackWait), stan.DeliverAllAvailable())
	return err
}

// deliver вызывает обработчик с таймаутом и подтверждает только успех.
func (s *Subscriber) deliver(data []byte, ack func() error, handler handlerFunc) bool {
	timeout := s.HandlerTimeout
	if timeout <= 0 {
		timeout = defaultHandlerTimeout
	}
	hCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := handler(hCtx, data); err != nil {
		log.Printf("stan %s: handler error: %v", s.Subject, err)
		return false
	}
	if err := ack(); err != nil {
		log.Printf("stan %s: ack failed: %v", s.Subject, err)
		return false
	}
	return true
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)
