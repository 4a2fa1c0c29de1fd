package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hypernova-labs/invoice-actions/internal/database"
	"github.com/sirupsen/logrus"
)

const viewKeyPrefix = "view:"

// EventPublisher difunde la invalidación de una vista a otros procesos
type EventPublisher interface {
	PublishRevalidation(ctx context.Context, path string) error
}

// ViewCache guarda en Redis el contenido ya calculado de una vista del
// dashboard, indexado por su ruta lógica. Sin Redis todas las lecturas son
// fallos de caché y la invalidación solo publica el evento.
type ViewCache struct {
	redis     *database.Redis
	publisher EventPublisher
	ttl       time.Duration
	logger    *logrus.Logger
}

// NewViewCache crea una nueva instancia de la caché de vistas
func NewViewCache(redis *database.Redis, publisher EventPublisher, ttl time.Duration, logger *logrus.Logger) *ViewCache {
	return &ViewCache{
		redis:     redis,
		publisher: publisher,
		ttl:       ttl,
		logger:    logger,
	}
}

// Get carga la vista en dst; retorna false si no está en caché
func (c *ViewCache) Get(ctx context.Context, path string, dst interface{}) (bool, error) {
	if c.redis == nil {
		return false, nil
	}

	data, err := c.redis.GetBytes(ctx, viewKeyPrefix+path)
	if err != nil {
		if errors.Is(err, database.ErrCacheMiss) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("error decoding cached view %s: %w", path, err)
	}

	return true, nil
}

// Set guarda el contenido de la vista
func (c *ViewCache) Set(ctx context.Context, path string, value interface{}) error {
	if c.redis == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding view %s: %w", path, err)
	}

	return c.redis.SetWithTTL(ctx, viewKeyPrefix+path, data, c.ttl)
}

// Revalidate marca la vista como obsoleta. Los fallos solo se registran: la
// mutación que la provoca ya se completó.
func (c *ViewCache) Revalidate(ctx context.Context, path string) {
	if c.redis != nil {
		if err := c.redis.Delete(ctx, viewKeyPrefix+path); err != nil {
			c.logger.WithError(err).WithField("path", path).Warn("Error invalidating cached view")
		}
	}

	if c.publisher != nil {
		if err := c.publisher.PublishRevalidation(ctx, path); err != nil {
			c.logger.WithError(err).WithField("path", path).Warn("Error publishing revalidation event")
		}
	}

	c.logger.WithField("path", path).Debug("View revalidated")
}
