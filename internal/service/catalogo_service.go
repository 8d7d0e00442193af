package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
	"github.com/helpdesk-ti/solicitudes-service/internal/repository"
	"github.com/helpdesk-ti/solicitudes-service/pkg/util"
)

const tiposCacheKey = "catalogo:tipos_servicio"

// CatalogoCache is the slice of the redis client the catalog needs.
// *redis.Client satisfies it.
type CatalogoCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CatalogoService serves the service-type catalog with a read-through Redis
// cache. The catalog is static reference data, so a short TTL is enough and
// no invalidation is needed.
type CatalogoService struct {
	tipos  repository.TipoServicioRepository
	cache  CatalogoCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCatalogoService constructs the service. cache may be nil, in which case
// every read goes to Postgres.
func NewCatalogoService(tipos repository.TipoServicioRepository, cache CatalogoCache, ttl time.Duration, logger *zap.Logger) *CatalogoService {
	return &CatalogoService{tipos: tipos, cache: cache, ttl: ttl, logger: logger}
}

// ListarTipos returns all service types ordered by name.
func (s *CatalogoService) ListarTipos(ctx context.Context) ([]domain.TipoServicio, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	tipos, err := s.tipos.List(ctx)
	if err != nil {
		return nil, util.MapStoreError("Error al obtener tipos de servicio", "Tipo de servicio no encontrado", err)
	}

	s.toCache(ctx, tipos)
	return tipos, nil
}

func (s *CatalogoService) fromCache(ctx context.Context) []domain.TipoServicio {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, tiposCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("catalogo cache read failed", zap.Error(err))
		}
		return nil
	}
	var tipos []domain.TipoServicio
	if err := json.Unmarshal(raw, &tipos); err != nil {
		s.logger.Warn("catalogo cache entry corrupt", zap.Error(err))
		return nil
	}
	return tipos
}

func (s *CatalogoService) toCache(ctx context.Context, tipos []domain.TipoServicio) {
	if s.cache == nil || len(tipos) == 0 {
		return
	}
	raw, err := json.Marshal(tipos)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, tiposCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("catalogo cache write failed", zap.Error(err))
	}
}
