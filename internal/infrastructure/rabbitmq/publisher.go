// Package rabbitmq publica eventos de empleo en un exchange topic de RabbitMQ.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/jhoicas/jobboard-api/internal/application/events"
)

var _ events.JobEventPublisher = (*Publisher)(nil)

// publishTimeout tope por publicación; la mutación ya está confirmada y no debe esperar al broker.
const publishTimeout = 2 * time.Second

// Channel subconjunto de *amqp.Channel usado por el publisher.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	Close() error
}

// Publisher publica eventos de empleo. Seguro para uso concurrente.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
	log      zerolog.Logger

	// stateMu protege closeErr y publishErr, que lee Check.
	stateMu    sync.Mutex
	closeErr   error
	publishErr error
}

// Dial conecta al broker y declara el exchange (topic, durable).
func Dial(url, exchange string, log zerolog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp exchange declare: %w", err)
	}
	log.Info().Str("exchange", exchange).Msg("publicador de eventos conectado")
	p := NewPublisher(ch, exchange, log)
	p.conn = conn
	return p, nil
}

// NewPublisher construye un publisher sobre un canal ya abierto y vigila su cierre.
func NewPublisher(ch Channel, exchange string, log zerolog.Logger) *Publisher {
	p := &Publisher{ch: ch, exchange: exchange, log: log}
	go p.watchClose(ch.NotifyClose(make(chan *amqp.Error, 1)))
	return p
}

// watchClose registra el cierre del canal. amqp091 envía el error si lo cierra
// el broker y cierra closes sin enviar nada si lo cerramos nosotros.
func (p *Publisher) watchClose(closes <-chan *amqp.Error) {
	amqpErr, ok := <-closes
	err := errors.New("canal cerrado")
	if ok && amqpErr != nil {
		err = fmt.Errorf("canal cerrado por el broker: %w", amqpErr)
		p.log.Warn().Err(amqpErr).Msg("canal amqp cerrado por el broker")
	}
	p.stateMu.Lock()
	p.closeErr = err
	p.stateMu.Unlock()
}

type jobPayload struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type eventPayload struct {
	Type       string     `json:"type"`
	Job        jobPayload `json:"job"`
	ActorID    string     `json:"actor_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// PublishJobEvent publica ev con routing key = ev.Type.
func (p *Publisher) PublishJobEvent(ctx context.Context, ev events.JobEvent) error {
	body, err := json.Marshal(eventPayload{
		Type: ev.Type,
		Job: jobPayload{
			ID:          ev.Job.ID,
			CompanyID:   ev.Job.CompanyID,
			Title:       ev.Job.Title,
			Description: ev.Job.Description,
			CreatedAt:   ev.Job.CreatedAt,
		},
		ActorID:    ev.ActorID,
		OccurredAt: ev.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal job event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, p.exchange, ev.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    ev.OccurredAt,
		Body:         body,
	})
	p.stateMu.Lock()
	p.publishErr = err
	p.stateMu.Unlock()
	if err != nil {
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	p.log.Debug().Str("routing_key", ev.Type).Str("job_id", ev.Job.ID).Msg("evento publicado")
	return nil
}

// Name identifica el componente en /ready.
func (p *Publisher) Name() string { return "rabbitmq" }

// Check falla si la conexión o el canal se cerraron, o si la última publicación falló.
func (p *Publisher) Check(_ context.Context) error {
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("conexión cerrada")
	}
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	if p.closeErr != nil {
		return p.closeErr
	}
	if p.publishErr != nil {
		return fmt.Errorf("última publicación falló: %w", p.publishErr)
	}
	return nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
