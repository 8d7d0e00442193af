package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// TipoServicioRepository reads the static service-type catalog.
type TipoServicioRepository interface {
	List(ctx context.Context) ([]domain.TipoServicio, error)
}

type tipoServicioRepository struct {
	pool *pgxpool.Pool
}

// NewTipoServicioRepository instantiates repository.
func NewTipoServicioRepository(pool *pgxpool.Pool) TipoServicioRepository {
	return &tipoServicioRepository{pool: pool}
}

func (r *tipoServicioRepository) List(ctx context.Context) ([]domain.TipoServicio, error) {
	const query = `SELECT id_tipo, nombre FROM tipos_servicio ORDER BY nombre`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TipoServicio
	for rows.Next() {
		var tipo domain.TipoServicio
		if err := rows.Scan(&tipo.ID, &tipo.Nombre); err != nil {
			return nil, err
		}
		result = append(result, tipo)
	}
	return result, rows.Err()
}
