package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"resale-price-service/internal/core/domain"
	ports "resale-price-service/internal/core/ports/output"
	"resale-price-service/internal/metrics"
)

const keyPrefix = "coefficients:v1:"

var keyEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`)

// coefficientCache is a read-through cache in front of another
// CoefficientRepository. Coefficients are read-only, so entries only expire.
// Redis failures fall through to the wrapped repository.
type coefficientCache struct {
	client *redis.Client
	next   ports.CoefficientRepository
	ttl    time.Duration
}

func NewCoefficientCache(client *redis.Client, next ports.CoefficientRepository, ttl time.Duration) ports.CoefficientRepository {
	return &coefficientCache{client: client, next: next, ttl: ttl}
}

func (c *coefficientCache) FetchRows(ctx context.Context, q domain.CoefficientQuery) ([]domain.PredictionRow, error) {
	key := cacheKey(q)

	val, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var rows []domain.PredictionRow
		if err := json.Unmarshal(val, &rows); err == nil {
			metrics.CoefficientCacheResults.WithLabelValues("hit").Inc()
			return rows, nil
		}
		log.WithField("key", key).Warn("discarding undecodable cache entry")
		metrics.CoefficientCacheResults.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		metrics.CoefficientCacheResults.WithLabelValues("miss").Inc()
	default:
		log.WithError(err).Warn("coefficient cache read failed")
		metrics.CoefficientCacheResults.WithLabelValues("error").Inc()
	}

	rows, err := c.next.FetchRows(ctx, q)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return rows, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("coefficient cache write failed")
	}
	return rows, nil
}

func cacheKey(q domain.CoefficientQuery) string {
	parts := []string{q.Model, q.Town, q.FlatModel, q.StoreyRange}
	if q.Ranged() {
		parts = append(parts, q.MonthStart, q.MonthEnd)
	}
	for i, p := range parts {
		parts[i] = keyEscaper.Replace(p)
	}
	return fmt.Sprintf("%s%s", keyPrefix, strings.Join(parts, "|"))
}
