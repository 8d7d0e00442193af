package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// UsuarioRepository defines persistence access for employees.
type UsuarioRepository interface {
	// CreateOrGet inserts the usuario or, when the email already exists,
	// returns the surviving row. Single statement, so two concurrent first
	// submissions for the same email converge on one record.
	CreateOrGet(ctx context.Context, usuario *domain.Usuario) error
	GetByID(ctx context.Context, id int64) (*domain.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*domain.Usuario, error)
}

type usuarioRepository struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository returns a Postgres-backed implementation.
func NewUsuarioRepository(pool *pgxpool.Pool) UsuarioRepository {
	return &usuarioRepository{pool: pool}
}

func (r *usuarioRepository) CreateOrGet(ctx context.Context, usuario *domain.Usuario) error {
	// DO UPDATE with a no-op assignment makes the conflicting row visible to
	// RETURNING; existing usuarios are never modified beyond that.
	const query = `
        INSERT INTO usuarios (nombre, apellido_paterno, apellido_materno, email, telefono, departamento, puesto)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
        RETURNING id_usuario, nombre, apellido_paterno, apellido_materno, email, telefono, departamento, puesto, fecha_registro`

	return r.pool.QueryRow(ctx, query,
		usuario.Nombre,
		usuario.ApellidoPaterno,
		usuario.ApellidoMaterno,
		usuario.Email,
		usuario.Telefono,
		usuario.Departamento,
		usuario.Puesto,
	).Scan(
		&usuario.ID,
		&usuario.Nombre,
		&usuario.ApellidoPaterno,
		&usuario.ApellidoMaterno,
		&usuario.Email,
		&usuario.Telefono,
		&usuario.Departamento,
		&usuario.Puesto,
		&usuario.FechaRegistro,
	)
}

func (r *usuarioRepository) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	const query = `
        SELECT id_usuario, nombre, apellido_paterno, apellido_materno, email, telefono, departamento, puesto, fecha_registro
        FROM usuarios WHERE id_usuario=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *usuarioRepository) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	const query = `
        SELECT id_usuario, nombre, apellido_paterno, apellido_materno, email, telefono, departamento, puesto, fecha_registro
        FROM usuarios WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *usuarioRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Usuario, error) {
	var usuario domain.Usuario
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&usuario.ID,
		&usuario.Nombre,
		&usuario.ApellidoPaterno,
		&usuario.ApellidoMaterno,
		&usuario.Email,
		&usuario.Telefono,
		&usuario.Departamento,
		&usuario.Puesto,
		&usuario.FechaRegistro,
	); err != nil {
		return nil, err
	}
	return &usuario, nil
}
