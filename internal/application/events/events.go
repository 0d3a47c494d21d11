package events

import (
	"context"
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
)

// Tipos de evento de empleo (también son las routing keys del exchange).
const (
	JobCreated = "job.created"
	JobUpdated = "job.updated"
	JobDeleted = "job.deleted"
)

// JobEvent cambio confirmado sobre un empleo.
type JobEvent struct {
	Type       string
	Job        entity.Job
	ActorID    string // usuario que hizo el cambio
	OccurredAt time.Time
}

// JobEventPublisher publica eventos de empleo. Best effort: un error no revierte la mutación.
type JobEventPublisher interface {
	PublishJobEvent(ctx context.Context, ev JobEvent) error
}

// NoopPublisher descarta los eventos (broker no configurado).
type NoopPublisher struct{}

func (NoopPublisher) PublishJobEvent(context.Context, JobEvent) error { return nil }
