package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/ids"
)

var jobCols = []string{"id", "company_id", "title", "description", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestJobRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	at := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE id = $1")).
		WithArgs("f3YzmnBZpK0o").
		WillReturnRows(pgxmock.NewRows(jobCols).AddRow("f3YzmnBZpK0o", "FjcJCHJALA4i", "Frontend", entity.Text(""), at))

	j, err := NewJobRepository(mock).GetByID(context.Background(), "f3YzmnBZpK0o")
	require.NoError(t, err)
	assert.Equal(t, "Frontend", j.Title)
	require.NotNil(t, j.Description, "una descripción vacía no se convierte en null")
	assert.Equal(t, "", *j.Description)
	assert.Equal(t, at, j.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_GetByID_Ausente(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE id = $1")).
		WithArgs("nada").
		WillReturnError(pgx.ErrNoRows)

	j, err := NewJobRepository(mock).GetByID(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, j)
}

func TestJobRepo_List_PaginaYOrden(t *testing.T) {
	mock := newMock(t)
	at := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2")).
		WithArgs(2, 3).
		WillReturnRows(pgxmock.NewRows(jobCols).
			AddRow("b", "FjcJCHJALA4i", "B", entity.Text("desc"), at).
			AddRow("a", "FjcJCHJALA4i", "A", (*string)(nil), at.Add(-time.Hour)))

	list, err := NewJobRepository(mock).List(context.Background(), repository.JobFilter{Limit: 2, Offset: 3})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_List_PorEmpresaSinLimite(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM jobs WHERE company_id = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs("FjcJCHJALA4i").
		WillReturnRows(pgxmock.NewRows(jobCols))

	list, err := NewJobRepository(mock).List(context.Background(), repository.JobFilter{CompanyID: "FjcJCHJALA4i"})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Count(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM jobs")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	n, err := NewJobRepository(mock).Count(context.Background(), repository.JobFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Create(t *testing.T) {
	mock := newMock(t)
	fixed := time.Date(2024, 6, 1, 8, 30, 0, 123456789, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO jobs")).
		WithArgs(pgxmock.AnyArg(), "FjcJCHJALA4i", "SRE", (*string)(nil), fixed.Truncate(time.Microsecond)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewJobRepository(mock)
	repo.now = func() time.Time { return fixed }
	j, err := repo.Create(context.Background(), entity.NewJob{CompanyID: "FjcJCHJALA4i", Title: "SRE"})
	require.NoError(t, err)
	assert.Len(t, j.ID, ids.Length)
	assert.Equal(t, fixed.Truncate(time.Microsecond), j.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Create_ReintentaColisionDeID(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO jobs")).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO jobs")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	j, err := NewJobRepository(mock).Create(context.Background(), entity.NewJob{CompanyID: "FjcJCHJALA4i", Title: "SRE"})
	require.NoError(t, err)
	assert.NotEmpty(t, j.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Update_OtraEmpresa(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE jobs SET title = $3, description = COALESCE($4::text, description)")).
		WithArgs("f3YzmnBZpK0o", "Gu7QW9LcnF5d", "Nuevo", (*string)(nil)).
		WillReturnError(pgx.ErrNoRows)

	j, err := NewJobRepository(mock).Update(context.Background(), "f3YzmnBZpK0o", "Gu7QW9LcnF5d", entity.JobPatch{Title: "Nuevo"})
	require.NoError(t, err)
	assert.Nil(t, j)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJobRepo_Delete_DevuelveFilaPrevia(t *testing.T) {
	mock := newMock(t)
	at := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM jobs WHERE id = $1 AND company_id = $2")).
		WithArgs("f3YzmnBZpK0o", "FjcJCHJALA4i").
		WillReturnRows(pgxmock.NewRows(jobCols).AddRow("f3YzmnBZpK0o", "FjcJCHJALA4i", "Frontend", entity.Text("React"), at))

	j, err := NewJobRepository(mock).Delete(context.Background(), "f3YzmnBZpK0o", "FjcJCHJALA4i")
	require.NoError(t, err)
	require.NotNil(t, j)
	require.NotNil(t, j.Description)
	assert.Equal(t, "React", *j.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}
