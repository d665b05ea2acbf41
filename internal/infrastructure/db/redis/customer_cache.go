package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/powerme/portal-api/internal/api/metrics"
	"github.com/powerme/portal-api/internal/core/domain"
	"github.com/powerme/portal-api/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// CachedCustomerData is a read-through cache in front of a CustomerDataStore.
// List responses are cached per customer; an append invalidates the matching
// list key so the next read sees the new record. Cache failures fall through
// to the backing store and are never surfaced to callers.
type CachedCustomerData struct {
	next   ports.CustomerDataStore
	client *redis.Client
}

func NewCachedCustomerData(next ports.CustomerDataStore, client *redis.Client) *CachedCustomerData {
	return &CachedCustomerData{next: next, client: client}
}

func (c *CachedCustomerData) ListDocuments(ctx context.Context, customerID string) ([]domain.Document, error) {
	key := c.key("documents", customerID)

	var cached []domain.Document
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	docs, err := c.next.ListDocuments(ctx, customerID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, docs)
	return docs, nil
}

func (c *CachedCustomerData) AppendDocument(ctx context.Context, customerID string, doc domain.Document) error {
	if err := c.next.AppendDocument(ctx, customerID, doc); err != nil {
		return err
	}
	c.invalidate(ctx, c.key("documents", customerID))
	return nil
}

func (c *CachedCustomerData) ListCases(ctx context.Context, customerID string) ([]domain.Case, error) {
	key := c.key("cases", customerID)

	var cached []domain.Case
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	cases, err := c.next.ListCases(ctx, customerID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, cases)
	return cases, nil
}

func (c *CachedCustomerData) AppendCase(ctx context.Context, customerID string, rec domain.Case) error {
	if err := c.next.AppendCase(ctx, customerID, rec); err != nil {
		return err
	}
	c.invalidate(ctx, c.key("cases", customerID))
	return nil
}

func (c *CachedCustomerData) lookup(ctx context.Context, key string, out any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil || json.Unmarshal(raw, out) != nil {
		metrics.SalesforceCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.SalesforceCacheTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *CachedCustomerData) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, raw, cacheTTL).Err()
}

func (c *CachedCustomerData) invalidate(ctx context.Context, key string) {
	_ = c.client.Del(ctx, key).Err()
}

func (c *CachedCustomerData) key(resource, customerID string) string {
	return fmt.Sprintf("sf:%s:%s", resource, customerID)
}
