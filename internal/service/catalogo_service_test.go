package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/helpdesk-ti/solicitudes-service/internal/domain"
	"github.com/helpdesk-ti/solicitudes-service/pkg/util"
)

// stubCatalogoCache stands in for the redis client so hit, miss and write
// paths run without a server.
type stubCatalogoCache struct {
	entry     string
	getErr    error
	sets      int
	lastKey   string
	lastValue []byte
	lastTTL   time.Duration
}

func (c *stubCatalogoCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}
	return redis.NewStringResult(c.entry, nil)
}

func (c *stubCatalogoCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.sets++
	c.lastKey = key
	c.lastValue = value.([]byte)
	c.lastTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestListarTiposWithoutCache(t *testing.T) {
	repo := &memTipoRepo{tipos: []domain.TipoServicio{
		{ID: 3, Nombre: "Impresora No Funciona o No Imprime"},
		{ID: 1, Nombre: "Instalación de Software o Programa"},
	}}
	svc := NewCatalogoService(repo, nil, time.Minute, zap.NewNop())

	tipos, err := svc.ListarTipos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.tipos, tipos)
}

func TestListarTiposCacheHitSkipsStore(t *testing.T) {
	cached := []domain.TipoServicio{{ID: 2, Nombre: "Virus"}}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	// a store failure proves the hit never reaches Postgres
	repo := &memTipoRepo{err: errors.New("connection reset")}
	cache := &stubCatalogoCache{entry: string(raw)}
	svc := NewCatalogoService(repo, cache, time.Minute, zap.NewNop())

	tipos, err := svc.ListarTipos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, tipos)
	assert.Zero(t, cache.sets)
}

func TestListarTiposCacheMissPopulatesEntry(t *testing.T) {
	repo := &memTipoRepo{tipos: []domain.TipoServicio{{ID: 5, Nombre: "Otra"}}}
	cache := &stubCatalogoCache{getErr: redis.Nil}
	svc := NewCatalogoService(repo, cache, time.Minute, zap.NewNop())

	tipos, err := svc.ListarTipos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.tipos, tipos)

	require.Equal(t, 1, cache.sets)
	assert.Equal(t, tiposCacheKey, cache.lastKey)
	assert.Equal(t, time.Minute, cache.lastTTL)

	var stored []domain.TipoServicio
	require.NoError(t, json.Unmarshal(cache.lastValue, &stored))
	assert.Equal(t, repo.tipos, stored)
}

func TestListarTiposCorruptEntryFallsBackToStore(t *testing.T) {
	repo := &memTipoRepo{tipos: []domain.TipoServicio{{ID: 5, Nombre: "Otra"}}}
	cache := &stubCatalogoCache{entry: "{no es json"}
	svc := NewCatalogoService(repo, cache, time.Minute, zap.NewNop())

	tipos, err := svc.ListarTipos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.tipos, tipos)
	assert.Equal(t, 1, cache.sets, "bad entry gets overwritten")
}

func TestListarTiposRedisDownFallsBackToStore(t *testing.T) {
	repo := &memTipoRepo{tipos: []domain.TipoServicio{
		{ID: 3, Nombre: "Impresora No Funciona o No Imprime"},
		{ID: 5, Nombre: "Otra"},
	}}
	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = down.Close() })
	svc := NewCatalogoService(repo, down, time.Minute, zap.NewNop())

	tipos, err := svc.ListarTipos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, repo.tipos, tipos)
}

func TestListarTiposStoreFailure(t *testing.T) {
	repo := &memTipoRepo{err: errors.New("connection reset")}
	svc := NewCatalogoService(repo, nil, time.Minute, zap.NewNop())

	_, err := svc.ListarTipos(context.Background())

	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
	assert.Equal(t, "Error al obtener tipos de servicio", domainErr.Message)
}
