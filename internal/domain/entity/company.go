package entity

// Company representa una empresa que publica empleos. Solo lectura en esta API.
type Company struct {
	ID          string
	Name        string
	Description string
}
