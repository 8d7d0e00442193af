package dto

import (
	"time"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// CreateUsuarioRequest payload.
type CreateUsuarioRequest struct {
	Nombre          string  `json:"nombre"`
	ApellidoPaterno string  `json:"apellido_paterno"`
	ApellidoMaterno *string `json:"apellido_materno"`
	Email           string  `json:"email"`
	Telefono        string  `json:"telefono"`
	Departamento    string  `json:"departamento"`
	Puesto          string  `json:"puesto"`
}

// UsuarioResponse mirrors the usuarios row on the wire.
type UsuarioResponse struct {
	ID              int64     `json:"id_usuario"`
	Nombre          string    `json:"nombre"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno *string   `json:"apellido_materno"`
	Email           string    `json:"email"`
	Telefono        string    `json:"telefono"`
	Departamento    string    `json:"departamento"`
	Puesto          string    `json:"puesto"`
	FechaRegistro   time.Time `json:"fecha_registro"`
}

// FromUsuario converts the domain model.
func FromUsuario(usuario *domain.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:              usuario.ID,
		Nombre:          usuario.Nombre,
		ApellidoPaterno: usuario.ApellidoPaterno,
		ApellidoMaterno: usuario.ApellidoMaterno,
		Email:           usuario.Email,
		Telefono:        usuario.Telefono,
		Departamento:    usuario.Departamento,
		Puesto:          usuario.Puesto,
		FechaRegistro:   usuario.FechaRegistro,
	}
}
