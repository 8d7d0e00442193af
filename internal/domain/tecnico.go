package domain

// Tecnico is a support technician that can be assigned to a solicitud.
type Tecnico struct {
	ID           int32
	Nombre       string
	Email        string
	Especialidad string
}
