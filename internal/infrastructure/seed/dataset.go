// Package seed contiene el conjunto de datos de demostración.
package seed

import (
	"time"

	"github.com/jhoicas/jobboard-api/internal/domain/entity"
	"github.com/jhoicas/jobboard-api/internal/infrastructure/memory"
)

// Dataset empresas, usuarios y empleos a precargar.
type Dataset struct {
	Companies []entity.Company
	Users     []entity.User
	Jobs      []entity.Job
}

// Demo devuelve el dataset de demostración. Los passwords van en texto plano;
// cmd/seed los hashea antes de insertarlos.
func Demo() Dataset {
	base := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	return Dataset{
		Companies: []entity.Company{
			{ID: "FjcJCHJALA4i", Name: "Facegle", Description: "Somos una startup en una misión para conectar el mundo."},
			{ID: "Gu7QW9LcnF5d", Name: "Goobook", Description: "Organizamos la información del mundo, una página a la vez."},
		},
		Users: []entity.User{
			{ID: "AcMJpL7b413Z", CompanyID: "FjcJCHJALA4i", Email: "alice@facegle.io", Password: "alice123"},
			{ID: "BvBNW636Z89L", CompanyID: "Gu7QW9LcnF5d", Email: "bob@goobook.co", Password: "bob123"},
		},
		Jobs: []entity.Job{
			{ID: "f3YzmnBZpK0o", CompanyID: "FjcJCHJALA4i", Title: "Frontend Developer", Description: entity.Text("Buscamos desarrollador frontend con experiencia en React."), CreatedAt: base},
			{ID: "XYZNJMXFax6n", CompanyID: "FjcJCHJALA4i", Title: "Backend Developer", Description: entity.Text("Buscamos desarrollador backend con experiencia en Go y PostgreSQL."), CreatedAt: base.Add(24 * time.Hour)},
			{ID: "6mA05AZxvS1R", CompanyID: "Gu7QW9LcnF5d", Title: "Full-Stack Developer", Description: entity.Text("Buscamos desarrollador full-stack para producto interno."), CreatedAt: base.Add(48 * time.Hour)},
		},
	}
}

// LoadInto copia el dataset al almacén en memoria.
func (d Dataset) LoadInto(store *memory.Store) {
	for _, c := range d.Companies {
		store.PutCompany(c)
	}
	for _, u := range d.Users {
		store.PutUser(u)
	}
	for _, j := range d.Jobs {
		store.PutJob(j)
	}
}
