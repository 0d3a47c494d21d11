package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/application/events"
	"github.com/jhoicas/jobboard-api/internal/application/usecase"
	"github.com/jhoicas/jobboard-api/internal/domain"
	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
)

var (
	facegle = entity.Company{ID: "FjcJCHJALA4i", Name: "Facegle"}
	goobook = entity.Company{ID: "Gu7QW9LcnF5d", Name: "Goobook"}
	alice   = &entity.User{ID: "AcMJpL7b413Z", CompanyID: facegle.ID, Email: "alice@facegle.io", Password: "alice123"}
	bob     = &entity.User{ID: "BvBNW636Z89L", CompanyID: goobook.ID, Email: "bob@goobook.co", Password: "bob123"}
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.JobEvent
	err    error
}

func (p *recordingPublisher) PublishJobEvent(_ context.Context, ev events.JobEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func newStore() *memory.Store {
	s := memory.NewStore()
	s.PutCompany(facegle)
	s.PutCompany(goobook)
	s.PutUser(*alice)
	s.PutUser(*bob)
	return s
}

func TestCreateJob_AsignaEmpresaDelUsuario(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(store.Jobs(), pub)

	before := time.Now().UTC().Add(-time.Millisecond)
	created, err := uc.Create(ctx, alice, usecase.JobInput{Title: "Backend Go", Description: entity.Text("pgx y fiber")})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, facegle.ID, got.CompanyID)
	assert.Equal(t, "Backend Go", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "pgx y fiber", *got.Description)
	assert.False(t, got.CreatedAt.Before(before), "createdAt no puede ser anterior a la llamada")

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.JobCreated, pub.events[0].Type)
	assert.Equal(t, alice.ID, pub.events[0].ActorID)
}

func TestCreateJob_SinUsuario(t *testing.T) {
	uc := usecase.NewJobUseCase(newStore().Jobs(), nil)
	_, err := uc.Create(context.Background(), nil, usecase.JobInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreateJob_TituloVacio(t *testing.T) {
	uc := usecase.NewJobUseCase(newStore().Jobs(), nil)
	_, err := uc.Create(context.Background(), alice, usecase.JobInput{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateJob_FalloDePublicacionNoRevierte(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	uc := usecase.NewJobUseCase(store.Jobs(), &recordingPublisher{err: errors.New("broker caído")})

	created, err := uc.Create(ctx, alice, usecase.JobInput{Title: "SRE"})
	require.NoError(t, err)

	_, err = uc.GetByID(ctx, created.ID)
	assert.NoError(t, err)
}

func TestUpdateJob_OtraEmpresaEsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	uc := usecase.NewJobUseCase(store.Jobs(), nil)

	created, err := uc.Create(ctx, alice, usecase.JobInput{Title: "Frontend"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, bob, created.ID, usecase.JobInput{Title: "Hackeado"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Frontend", got.Title, "el empleo no debe cambiar")
}

func TestUpdateJob_PropioConservaInmutables(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	uc := usecase.NewJobUseCase(store.Jobs(), nil)

	created, err := uc.Create(ctx, alice, usecase.JobInput{Title: "Frontend", Description: entity.Text("React")})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, alice, created.ID, usecase.JobInput{Title: "Frontend Sr"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CompanyID, updated.CompanyID)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, "Frontend Sr", updated.Title)
	require.NotNil(t, updated.Description, "sin descripción en el input se conserva la guardada")
	assert.Equal(t, "React", *updated.Description)

	updated, err = uc.Update(ctx, alice, created.ID, usecase.JobInput{Title: "Frontend Sr", Description: entity.Text("Vue")})
	require.NoError(t, err)
	assert.Equal(t, "Vue", *updated.Description)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vue", *got.Description)
}

func TestCreateJob_DescripcionVaciaSeConserva(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewJobUseCase(newStore().Jobs(), nil)

	created, err := uc.Create(ctx, alice, usecase.JobInput{Title: "Soporte", Description: entity.Text("")})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "", *got.Description)

	sinDesc, err := uc.Create(ctx, alice, usecase.JobInput{Title: "Soporte 2"})
	require.NoError(t, err)
	assert.Nil(t, sinDesc.Description)
}

func TestUpdateJob_Inexistente(t *testing.T) {
	uc := usecase.NewJobUseCase(newStore().Jobs(), nil)
	_, err := uc.Update(context.Background(), alice, "noexiste1234", usecase.JobInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteJob_LuegoGetEsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	pub := &recordingPublisher{}
	uc := usecase.NewJobUseCase(store.Jobs(), pub)

	created, err := uc.Create(ctx, alice, usecase.JobInput{Title: "QA"})
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "QA", deleted.Title)

	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.Len(t, pub.events, 2)
	assert.Equal(t, events.JobDeleted, pub.events[1].Type)
}

func TestDeleteJob_OtraEmpresaEsNotFound(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	uc := usecase.NewJobUseCase(store.Jobs(), nil)

	created, err := uc.Create(ctx, alice, usecase.JobInput{Title: "QA"})
	require.NoError(t, err)

	_, err = uc.Delete(ctx, bob, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Delete(ctx, nil, created.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListJobs_PaginaYTotal(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"job000000001", "job000000002", "job000000003", "job000000004", "job000000005"} {
		store.PutJob(entity.Job{ID: id, CompanyID: facegle.ID, Title: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	uc := usecase.NewJobUseCase(store.Jobs(), nil)

	page, err := uc.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "job000000005", page.Items[0].ID)
	assert.Equal(t, "job000000004", page.Items[1].ID)

	page, err = uc.List(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "job000000001", page.Items[0].ID)

	page, err = uc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5, "sin limit devuelve todo")
}
