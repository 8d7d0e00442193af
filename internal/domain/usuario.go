package domain

import "time"

// Usuario is the domain model for employees who raise solicitudes.
// Identity is the email; rows are created on first submission and
// never updated or deleted by this service.
type Usuario struct {
	ID              int64
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno *string
	Email           string
	Telefono        string
	Departamento    string
	Puesto          string
	FechaRegistro   time.Time
}
