package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"questions-backend/internal/domains/question"
	"questions-backend/pkg/cache"
	"questions-backend/pkg/metrics"
)

const questionCacheKeyPrefix = "question:"

// CachedRepository decorates a Repository with read-through caching of
// single questions. Update and Delete invalidate the key whatever their
// outcome. Cache errors are logged and never fail the call.
type CachedRepository struct {
	next  question.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next question.Repository, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		next:  next,
		cache: c,
		ttl:   ttl,
	}
}

var _ question.Repository = (*CachedRepository)(nil)

func (r *CachedRepository) Create(ctx context.Context, q *question.Question) (*question.Question, error) {
	return r.next.Create(ctx, q)
}

func (r *CachedRepository) List(ctx context.Context, filter question.QuestionFilter) ([]question.Question, error) {
	return r.next.List(ctx, filter)
}

func (r *CachedRepository) GetByID(ctx context.Context, id string) (*question.Question, error) {
	key, ok := cacheKey(id)
	if !ok {
		// non-canonical ids go straight to storage so "042" can never
		// shadow "42" in the cache
		return r.next.GetByID(ctx, id)
	}

	var cached question.Question
	found, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("question cache get failed")
	}
	if found {
		metrics.CacheHitsTotal.Inc()
		return &cached, nil
	}
	metrics.CacheMissesTotal.Inc()

	q, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, q, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("question cache set failed")
	}

	return q, nil
}

func (r *CachedRepository) Update(ctx context.Context, id string, q *question.Question) error {
	key, ok := r.resolveKey(ctx, id)
	err := r.next.Update(ctx, id, q)
	if ok {
		r.invalidate(ctx, key)
	}
	return err
}

func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	key, ok := r.resolveKey(ctx, id)
	err := r.next.Delete(ctx, id)
	if ok {
		r.invalidate(ctx, key)
	}
	return err
}

// resolveKey maps any id the storage accepts to the canonical cache key.
// Non-canonical spellings ("042", "+42") cost one lookup to learn the real id.
func (r *CachedRepository) resolveKey(ctx context.Context, id string) (string, bool) {
	if key, ok := cacheKey(id); ok {
		return key, true
	}
	q, err := r.next.GetByID(ctx, id)
	if err != nil {
		return "", false
	}
	return questionCacheKeyPrefix + strconv.FormatInt(q.ID, 10), true
}

func (r *CachedRepository) invalidate(ctx context.Context, key string) {
	if err := r.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("question cache invalidation failed")
	}
}

// cacheKey returns the key for a canonical decimal id.
func cacheKey(id string) (string, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != id {
		return "", false
	}
	return questionCacheKeyPrefix + id, true
}
