package service

import (
	"context"
	"strings"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
	"github.com/helpdesk-ti/solicitudes-service/internal/repository"
	"github.com/helpdesk-ti/solicitudes-service/pkg/util"
)

// UsuarioInput describes the registration payload.
type UsuarioInput struct {
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno *string
	Email           string
	Telefono        string
	Departamento    string
	Puesto          string
}

// UsuarioService coordinates employee registration and lookup.
type UsuarioService struct {
	usuarios repository.UsuarioRepository
}

// NewUsuarioService constructs the service.
func NewUsuarioService(usuarios repository.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarios: usuarios}
}

// RegistrarOIdentificar creates the usuario or returns the existing record for
// the same email. The repository performs the find-or-create as one atomic
// upsert, so concurrent first submissions cannot produce duplicate rows.
func (s *UsuarioService) RegistrarOIdentificar(ctx context.Context, input UsuarioInput) (*domain.Usuario, error) {
	usuario := &domain.Usuario{
		Nombre:          strings.TrimSpace(input.Nombre),
		ApellidoPaterno: strings.TrimSpace(input.ApellidoPaterno),
		ApellidoMaterno: trimOptional(input.ApellidoMaterno),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Telefono:        strings.TrimSpace(input.Telefono),
		Departamento:    strings.TrimSpace(input.Departamento),
		Puesto:          strings.TrimSpace(input.Puesto),
	}
	if usuario.Email == "" {
		return nil, util.NewValidationError("email requerido")
	}

	if err := s.usuarios.CreateOrGet(ctx, usuario); err != nil {
		return nil, util.MapStoreError("Error al crear usuario", "Usuario no encontrado", err)
	}
	return usuario, nil
}

// BuscarPorEmail performs an exact-match lookup.
func (s *UsuarioService) BuscarPorEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	usuario, err := s.usuarios.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, util.MapStoreError("Error al buscar usuario", "Usuario no encontrado", err)
	}
	return usuario, nil
}

func trimOptional(val *string) *string {
	if val == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*val)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
