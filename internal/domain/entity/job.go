package entity

import "time"

// Job oferta de empleo publicada por una Company.
// ID, CompanyID y CreatedAt no cambian tras la creación.
type Job struct {
	ID          string
	CompanyID   string
	Title       string
	Description *string // nil = sin descripción; "" se conserva tal cual
	CreatedAt   time.Time
}

// NewJob campos que aporta quien crea un empleo; ID y CreatedAt los asigna el almacén.
type NewJob struct {
	CompanyID   string
	Title       string
	Description *string
}

// JobPatch campos editables de un empleo. Description nil deja la descripción guardada.
type JobPatch struct {
	Title       string
	Description *string
}

// Text devuelve un puntero a s, para armar descripciones en literales.
func Text(s string) *string { return &s }
