package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// TecnicoRepository reads the technician roster.
type TecnicoRepository interface {
	List(ctx context.Context) ([]domain.Tecnico, error)
	GetByID(ctx context.Context, id int32) (*domain.Tecnico, error)
}

type tecnicoRepository struct {
	pool *pgxpool.Pool
}

// NewTecnicoRepository instantiates repository.
func NewTecnicoRepository(pool *pgxpool.Pool) TecnicoRepository {
	return &tecnicoRepository{pool: pool}
}

func (r *tecnicoRepository) List(ctx context.Context) ([]domain.Tecnico, error) {
	const query = `SELECT id_tecnico, nombre, email, especialidad FROM tecnicos ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Tecnico
	for rows.Next() {
		var tecnico domain.Tecnico
		if err := rows.Scan(&tecnico.ID, &tecnico.Nombre, &tecnico.Email, &tecnico.Especialidad); err != nil {
			return nil, err
		}
		result = append(result, tecnico)
	}
	return result, rows.Err()
}

func (r *tecnicoRepository) GetByID(ctx context.Context, id int32) (*domain.Tecnico, error) {
	const query = `SELECT id_tecnico, nombre, email, especialidad FROM tecnicos WHERE id_tecnico=$1`

	var tecnico domain.Tecnico
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&tecnico.ID,
		&tecnico.Nombre,
		&tecnico.Email,
		&tecnico.Especialidad,
	); err != nil {
		return nil, err
	}
	return &tecnico, nil
}
