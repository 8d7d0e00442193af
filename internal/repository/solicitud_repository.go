package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// SolicitudRepository encapsulates solicitud persistence. Reads go through
// vista_solicitudes_completas; writes hit the base table, each as a single
// statement.
type SolicitudRepository interface {
	Create(ctx context.Context, solicitud *domain.Solicitud) error
	ListCompletas(ctx context.Context) ([]domain.SolicitudCompleta, error)
	ListCompletasByUsuario(ctx context.Context, usuarioID int64) ([]domain.SolicitudCompleta, error)
	GetCompletaByID(ctx context.Context, id int64) (*domain.SolicitudCompleta, error)
	UpdateEstado(ctx context.Context, id int64, estado domain.Estado) (*domain.Solicitud, error)
	AsignarTecnico(ctx context.Context, id int64, tecnicoID int32) (*domain.Solicitud, error)
}

type solicitudRepository struct {
	pool *pgxpool.Pool
}

// NewSolicitudRepository instantiates repository.
func NewSolicitudRepository(pool *pgxpool.Pool) SolicitudRepository {
	return &solicitudRepository{pool: pool}
}

const solicitudColumns = `id_solicitud, id_usuario, id_tipo, titulo, descripcion, prioridad, estado,
               equipo, ubicacion, fecha_solicitud, fecha_resolucion, id_tecnico`

func (r *solicitudRepository) Create(ctx context.Context, solicitud *domain.Solicitud) error {
	// estado and fecha_solicitud come from the column defaults.
	const query = `
        INSERT INTO solicitudes (id_usuario, id_tipo, titulo, descripcion, prioridad, equipo, ubicacion)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING ` + solicitudColumns

	return r.scanSolicitud(r.pool.QueryRow(ctx, query,
		solicitud.UsuarioID,
		solicitud.TipoID,
		solicitud.Titulo,
		solicitud.Descripcion,
		solicitud.Prioridad,
		solicitud.Equipo,
		solicitud.Ubicacion,
	), solicitud)
}

func (r *solicitudRepository) UpdateEstado(ctx context.Context, id int64, estado domain.Estado) (*domain.Solicitud, error) {
	// fecha_resolucion is stamped only on the transition into Resuelto and is
	// never cleared once set.
	const query = `
        UPDATE solicitudes
        SET estado = $1,
            fecha_resolucion = CASE WHEN $1 = 'Resuelto' THEN COALESCE(fecha_resolucion, NOW()) ELSE fecha_resolucion END
        WHERE id_solicitud = $2
        RETURNING ` + solicitudColumns

	var solicitud domain.Solicitud
	if err := r.scanSolicitud(r.pool.QueryRow(ctx, query, estado, id), &solicitud); err != nil {
		return nil, err
	}
	return &solicitud, nil
}

func (r *solicitudRepository) AsignarTecnico(ctx context.Context, id int64, tecnicoID int32) (*domain.Solicitud, error) {
	const query = `
        UPDATE solicitudes SET id_tecnico = $1
        WHERE id_solicitud = $2
        RETURNING ` + solicitudColumns

	var solicitud domain.Solicitud
	if err := r.scanSolicitud(r.pool.QueryRow(ctx, query, tecnicoID, id), &solicitud); err != nil {
		return nil, err
	}
	return &solicitud, nil
}

func (r *solicitudRepository) scanSolicitud(row pgx.Row, solicitud *domain.Solicitud) error {
	return row.Scan(
		&solicitud.ID,
		&solicitud.UsuarioID,
		&solicitud.TipoID,
		&solicitud.Titulo,
		&solicitud.Descripcion,
		&solicitud.Prioridad,
		&solicitud.Estado,
		&solicitud.Equipo,
		&solicitud.Ubicacion,
		&solicitud.FechaSolicitud,
		&solicitud.FechaResolucion,
		&solicitud.TecnicoID,
	)
}

const vistaSelect = `
        SELECT id_solicitud, id_usuario, usuario, email, id_tipo, tipo_servicio,
               titulo, descripcion, prioridad, estado, equipo, ubicacion,
               fecha_solicitud, fecha_resolucion, tecnico_asignado
        FROM vista_solicitudes_completas`

func (r *solicitudRepository) ListCompletas(ctx context.Context) ([]domain.SolicitudCompleta, error) {
	const query = vistaSelect + ` ORDER BY fecha_solicitud DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletas(rows)
}

func (r *solicitudRepository) ListCompletasByUsuario(ctx context.Context, usuarioID int64) ([]domain.SolicitudCompleta, error) {
	const query = vistaSelect + ` WHERE id_usuario=$1 ORDER BY fecha_solicitud DESC`

	rows, err := r.pool.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletas(rows)
}

func (r *solicitudRepository) GetCompletaByID(ctx context.Context, id int64) (*domain.SolicitudCompleta, error) {
	const query = vistaSelect + ` WHERE id_solicitud=$1`

	var completa domain.SolicitudCompleta
	if err := scanCompleta(r.pool.QueryRow(ctx, query, id), &completa); err != nil {
		return nil, err
	}
	return &completa, nil
}

func scanCompletas(rows pgx.Rows) ([]domain.SolicitudCompleta, error) {
	var result []domain.SolicitudCompleta
	for rows.Next() {
		var completa domain.SolicitudCompleta
		if err := scanCompleta(rows, &completa); err != nil {
			return nil, err
		}
		result = append(result, completa)
	}
	return result, rows.Err()
}

func scanCompleta(row pgx.Row, completa *domain.SolicitudCompleta) error {
	return row.Scan(
		&completa.ID,
		&completa.UsuarioID,
		&completa.Usuario,
		&completa.Email,
		&completa.TipoID,
		&completa.TipoServicio,
		&completa.Titulo,
		&completa.Descripcion,
		&completa.Prioridad,
		&completa.Estado,
		&completa.Equipo,
		&completa.Ubicacion,
		&completa.FechaSolicitud,
		&completa.FechaResolucion,
		&completa.TecnicoAsignado,
	)
}
