package natsstan

import (
	"context"

	stan "github.com/nats-io/stan.go"

	"github.com/example/storefront/internal/domain"
)

// Publisher публикует принятые заказы в тему NATS Streaming.
type Publisher struct {
	conn    stan.Conn
	subject string
}

// Connect открывает соединение для публикации.
func Connect(clusterID, clientID, url, subject string) (*Publisher, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: sc, subject: subject}, nil
}

// Publish ждёт подтверждения от сервера; ctx здесь не прерывает отправку,
// stan.Conn не принимает контекст.
func (p *Publisher) Publish(_ context.Context, raw []byte) error {
	return p.conn.Publish(p.subject, raw)
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}

var _ domain.MessagePublisher = (*Publisher)(nil)
