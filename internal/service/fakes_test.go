package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
)

// In-memory repository fakes mirroring the Postgres semantics the services
// rely on: unique email upsert, store defaults, pgx.ErrNoRows for misses.

type memUsuarioRepo struct {
	mu      sync.Mutex
	seq     int64
	byEmail map[string]domain.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{byEmail: make(map[string]domain.Usuario)}
}

func (r *memUsuarioRepo) CreateOrGet(ctx context.Context, usuario *domain.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byEmail[usuario.Email]; ok {
		*usuario = existing
		return nil
	}
	r.seq++
	usuario.ID = r.seq
	usuario.FechaRegistro = time.Now()
	r.byEmail[usuario.Email] = *usuario
	return nil
}

func (r *memUsuarioRepo) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, usuario := range r.byEmail {
		if usuario.ID == id {
			u := usuario
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUsuarioRepo) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if usuario, ok := r.byEmail[email]; ok {
		u := usuario
		return &u, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *memUsuarioRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEmail)
}

type memSolicitudRepo struct {
	mu    sync.Mutex
	seq   int64
	items map[int64]domain.Solicitud
}

func newMemSolicitudRepo() *memSolicitudRepo {
	return &memSolicitudRepo{items: make(map[int64]domain.Solicitud)}
}

func (r *memSolicitudRepo) Create(ctx context.Context, solicitud *domain.Solicitud) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	solicitud.ID = r.seq
	solicitud.Estado = domain.EstadoPendiente
	solicitud.FechaSolicitud = time.Now()
	solicitud.FechaResolucion = nil
	r.items[solicitud.ID] = *solicitud
	return nil
}

func (r *memSolicitudRepo) UpdateEstado(ctx context.Context, id int64, estado domain.Estado) (*domain.Solicitud, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	solicitud, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	solicitud.Estado = estado
	if estado == domain.EstadoResuelto && solicitud.FechaResolucion == nil {
		now := time.Now()
		solicitud.FechaResolucion = &now
	}
	r.items[id] = solicitud
	return &solicitud, nil
}

func (r *memSolicitudRepo) AsignarTecnico(ctx context.Context, id int64, tecnicoID int32) (*domain.Solicitud, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	solicitud, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	solicitud.TecnicoID = &tecnicoID
	r.items[id] = solicitud
	return &solicitud, nil
}

func (r *memSolicitudRepo) ListCompletas(ctx context.Context) ([]domain.SolicitudCompleta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.SolicitudCompleta
	for id := int64(1); id <= r.seq; id++ {
		if solicitud, ok := r.items[id]; ok {
			result = append(result, r.project(solicitud))
		}
	}
	return result, nil
}

func (r *memSolicitudRepo) ListCompletasByUsuario(ctx context.Context, usuarioID int64) ([]domain.SolicitudCompleta, error) {
	completas, _ := r.ListCompletas(ctx)
	var result []domain.SolicitudCompleta
	for _, completa := range completas {
		if completa.UsuarioID == usuarioID {
			result = append(result, completa)
		}
	}
	return result, nil
}

func (r *memSolicitudRepo) GetCompletaByID(ctx context.Context, id int64) (*domain.SolicitudCompleta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	solicitud, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	completa := r.project(solicitud)
	return &completa, nil
}

func (r *memSolicitudRepo) project(solicitud domain.Solicitud) domain.SolicitudCompleta {
	return domain.SolicitudCompleta{
		ID:              solicitud.ID,
		UsuarioID:       solicitud.UsuarioID,
		Usuario:         fmt.Sprintf("Usuario %d", solicitud.UsuarioID),
		Email:           fmt.Sprintf("usuario%d@example.com", solicitud.UsuarioID),
		TipoID:          solicitud.TipoID,
		TipoServicio:    "Otra",
		Titulo:          solicitud.Titulo,
		Descripcion:     solicitud.Descripcion,
		Prioridad:       solicitud.Prioridad,
		Estado:          solicitud.Estado,
		Equipo:          solicitud.Equipo,
		Ubicacion:       solicitud.Ubicacion,
		FechaSolicitud:  solicitud.FechaSolicitud,
		FechaResolucion: solicitud.FechaResolucion,
	}
}

type memTecnicoRepo struct {
	tecnicos []domain.Tecnico
}

func newMemTecnicoRepo() *memTecnicoRepo {
	return &memTecnicoRepo{tecnicos: []domain.Tecnico{
		{ID: 1, Nombre: "Laura Mendoza", Email: "laura@example.com", Especialidad: "Redes"},
		{ID: 2, Nombre: "Marco Díaz", Email: "marco@example.com", Especialidad: "Hardware"},
		{ID: 3, Nombre: "Sofía Torres", Email: "sofia@example.com", Especialidad: "Software"},
	}}
}

func (r *memTecnicoRepo) List(ctx context.Context) ([]domain.Tecnico, error) {
	return r.tecnicos, nil
}

func (r *memTecnicoRepo) GetByID(ctx context.Context, id int32) (*domain.Tecnico, error) {
	for _, tecnico := range r.tecnicos {
		if tecnico.ID == id {
			t := tecnico
			return &t, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memTipoRepo struct {
	tipos []domain.TipoServicio
	err   error
}

func (r *memTipoRepo) List(ctx context.Context) ([]domain.TipoServicio, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.tipos, nil
}
