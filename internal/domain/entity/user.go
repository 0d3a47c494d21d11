package entity

// User representa un usuario del sistema (pertenece a una Company).
// Se crea fuera de banda; la API no expone alta de usuarios.
type User struct {
	ID        string
	CompanyID string
	Email     string
	// Password tal como está almacenado: texto plano en filas heredadas
	// o hash bcrypt en las cargadas por cmd/seed.
	Password string
}
