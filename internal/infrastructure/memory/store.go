// Package memory implementa los puertos de repositorio en memoria (APP_STORAGE=memory y tests).
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/domain/repository"
	"github.com/jhoicas/jobboard-api/pkg/ids"
)

var (
	_ repository.CompanyRepository = (*CompanyRepo)(nil)
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.JobRepository     = (*JobRepo)(nil)
)

// Store datos compartidos por los tres repos. Seguro para uso concurrente.
type Store struct {
	mu        sync.RWMutex
	companies map[string]entity.Company
	users     map[string]entity.User
	jobs      map[string]entity.Job
	now       func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		companies: make(map[string]entity.Company),
		users:     make(map[string]entity.User),
		jobs:      make(map[string]entity.Job),
		now:       time.Now,
	}
}

// SetClock reemplaza el reloj usado en Create.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// PutCompany inserta o reemplaza una empresa.
func (s *Store) PutCompany(c entity.Company) {
	s.mu.Lock()
	s.companies[c.ID] = c
	s.mu.Unlock()
}

// PutUser inserta o reemplaza un usuario.
func (s *Store) PutUser(u entity.User) {
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
}

// PutJob inserta o reemplaza un empleo tal cual (id y fecha incluidos).
func (s *Store) PutJob(j entity.Job) {
	s.mu.Lock()
	s.jobs[j.ID] = j
	s.mu.Unlock()
}

// Companies devuelve el repo de empresas sobre el store.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

// Users devuelve el repo de usuarios sobre el store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Jobs devuelve el repo de empleos sobre el store.
func (s *Store) Jobs() *JobRepo { return &JobRepo{s: s} }

// CompanyRepo CompanyRepository en memoria.
type CompanyRepo struct{ s *Store }

func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CompanyRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Company
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		c, ok := r.s.companies[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		list = append(list, &c)
	}
	return list, nil
}

// UserRepo UserRepository en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// JobRepo JobRepository en memoria.
type JobRepo struct{ s *Store }

func (r *JobRepo) GetByID(_ context.Context, id string) (*entity.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (r *JobRepo) List(_ context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	r.s.mu.RLock()
	list := r.s.filterJobs(filter.CompanyID)
	r.s.mu.RUnlock()

	sort.Slice(list, func(a, b int) bool {
		if !list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].CreatedAt.After(list[b].CreatedAt)
		}
		return list[a].ID > list[b].ID
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(list) {
			return []*entity.Job{}, nil
		}
		list = list[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(list) {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (r *JobRepo) Count(_ context.Context, filter repository.JobFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.filterJobs(filter.CompanyID)), nil
}

func (s *Store) filterJobs(companyID string) []*entity.Job {
	list := make([]*entity.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if companyID != "" && j.CompanyID != companyID {
			continue
		}
		j := j
		list = append(list, &j)
	}
	return list
}

func (r *JobRepo) Create(_ context.Context, in entity.NewJob) (*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var id string
	for {
		var err error
		if id, err = ids.New(); err != nil {
			return nil, fmt.Errorf("generate job id: %w", err)
		}
		if _, taken := r.s.jobs[id]; !taken {
			break
		}
	}
	j := entity.Job{
		ID:          id,
		CompanyID:   in.CompanyID,
		Title:       in.Title,
		Description: copyText(in.Description),
		CreatedAt:   r.s.now().UTC(),
	}
	r.s.jobs[id] = j
	return &j, nil
}

func (r *JobRepo) Update(_ context.Context, id, companyID string, patch entity.JobPatch) (*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok || j.CompanyID != companyID {
		return nil, nil
	}
	j.Title = patch.Title
	if patch.Description != nil {
		j.Description = entity.Text(*patch.Description)
	}
	r.s.jobs[id] = j
	return &j, nil
}

func (r *JobRepo) Delete(_ context.Context, id, companyID string) (*entity.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok || j.CompanyID != companyID {
		return nil, nil
	}
	delete(r.s.jobs, id)
	return &j, nil
}

// copyText evita que el llamador comparta el puntero guardado.
func copyText(p *string) *string {
	if p == nil {
		return nil
	}
	return entity.Text(*p)
}
