// Package sourcecat resolves knowledge-base document names to their catalog
// descriptors (title, author, publication year, link).
package sourcecat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"proposal-eval-be/internal/pkg/logger"
	"proposal-eval-be/pkg/store"
)

const (
	cacheKeyPrefix = "sourcecat:"
	cacheTTL       = 30 * time.Minute
)

// DescriptorRepository is satisfied by the source document repository.
type DescriptorRepository interface {
	FindByDocumentName(ctx context.Context, documentName string) (*store.SourceDescriptor, error)
}

// Catalog looks descriptors up through an optional Redis cache. Resolve
// never fails: unknown or unreachable documents yield a bare descriptor
// carrying only the document name.
type Catalog struct {
	repo  DescriptorRepository
	cache *redis.Client
	log   logger.ILogger
}

func NewCatalog(repo DescriptorRepository, cache *redis.Client, log logger.ILogger) *Catalog {
	return &Catalog{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (c *Catalog) Resolve(ctx context.Context, documentName string) store.SourceDescriptor {
	fallback := store.SourceDescriptor{DocumentName: documentName}
	if documentName == "" {
		return fallback
	}

	if cached, ok := c.fromCache(ctx, documentName); ok {
		return cached
	}

	descriptor, err := c.repo.FindByDocumentName(ctx, documentName)
	if err != nil {
		c.log.Warn("sourcecat", "descriptor lookup failed", map[string]interface{}{
			"document_name": documentName,
			"error":         err.Error(),
		})
		return fallback
	}
	if descriptor == nil {
		return fallback
	}

	c.toCache(ctx, documentName, *descriptor)
	return *descriptor
}

func (c *Catalog) fromCache(ctx context.Context, documentName string) (store.SourceDescriptor, bool) {
	if c.cache == nil {
		return store.SourceDescriptor{}, false
	}

	raw, err := c.cache.Get(ctx, cacheKeyPrefix+documentName).Result()
	if err != nil {
		return store.SourceDescriptor{}, false
	}

	var descriptor store.SourceDescriptor
	if err := json.Unmarshal([]byte(raw), &descriptor); err != nil {
		return store.SourceDescriptor{}, false
	}
	return descriptor, true
}

func (c *Catalog) toCache(ctx context.Context, documentName string, descriptor store.SourceDescriptor) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(descriptor)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKeyPrefix+documentName, raw, cacheTTL).Err(); err != nil {
		c.log.Debug("sourcecat", "descriptor cache write failed", map[string]interface{}{
			"document_name": documentName,
		})
	}
}
