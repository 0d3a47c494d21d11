package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
)

func TestJobRepo_CreateUsaReloj(t *testing.T) {
	s := NewStore()
	at := time.Date(2024, 2, 29, 23, 59, 0, 0, time.FixedZone("COT", -5*3600))
	s.SetClock(func() time.Time { return at })

	j, err := s.Jobs().Create(context.Background(), entity.NewJob{CompanyID: "c1", Title: "Go"})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, j.CreatedAt.Location())
	assert.True(t, at.Equal(j.CreatedAt))
}

func TestJobRepo_ListDesempatePorID(t *testing.T) {
	s := NewStore()
	at := time.Now()
	s.PutJob(entity.Job{ID: "a", CompanyID: "c1", CreatedAt: at})
	s.PutJob(entity.Job{ID: "c", CompanyID: "c2", CreatedAt: at})
	s.PutJob(entity.Job{ID: "b", CompanyID: "c1", CreatedAt: at})

	list, err := s.Jobs().List(context.Background(), repository.JobFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})

	list, err = s.Jobs().List(context.Background(), repository.JobFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestJobRepo_MutacionesRespetanEmpresa(t *testing.T) {
	s := NewStore()
	s.PutJob(entity.Job{ID: "a", CompanyID: "c1", Title: "Go", CreatedAt: time.Now()})
	ctx := context.Background()

	j, err := s.Jobs().Update(ctx, "a", "c2", entity.JobPatch{Title: "X"})
	require.NoError(t, err)
	assert.Nil(t, j)

	j, err = s.Jobs().Delete(ctx, "a", "c2")
	require.NoError(t, err)
	assert.Nil(t, j)

	j, err = s.Jobs().Delete(ctx, "a", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Go", j.Title)

	n, err := s.Jobs().Count(ctx, repository.JobFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCompanyRepo_ListByIDsOmiteAusentes(t *testing.T) {
	s := NewStore()
	s.PutCompany(entity.Company{ID: "A", Name: "Facegle"})

	list, err := s.Companies().ListByIDs(context.Background(), []string{"A", "Z", "A"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Facegle", list[0].Name)
}

func TestJobRepo_UpdateDescripcionOpcional(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.PutJob(entity.Job{ID: "a", CompanyID: "c1", Title: "Go", Description: entity.Text("pgx"), CreatedAt: time.Now()})

	j, err := s.Jobs().Update(ctx, "a", "c1", entity.JobPatch{Title: "Go Sr"})
	require.NoError(t, err)
	require.NotNil(t, j.Description)
	assert.Equal(t, "pgx", *j.Description)

	j, err = s.Jobs().Update(ctx, "a", "c1", entity.JobPatch{Title: "Go Sr", Description: entity.Text("")})
	require.NoError(t, err)
	require.NotNil(t, j.Description)
	assert.Equal(t, "", *j.Description)

	got, err := s.Jobs().GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "", *got.Description)
}
