package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/scope4/google-sheets/internal/domain"
	"github.com/scope4/google-sheets/internal/infrastructure/scope4"
	"github.com/scope4/google-sheets/internal/metrics"
)

// timeoutMessage is what a spreadsheet cell shows when the upstream call ran
// out of time.
const timeoutMessage = "Error: API request timed out. Try simplifying your query."

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL time.Duration
}

// SearchService runs one spreadsheet lookup end to end: normalize the raw
// arguments, consult the cache, query the API, classify the answer, flatten
// it into a row and cache it.
type SearchService struct {
	cache    domain.CacheRepository
	client   domain.SearchClient
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(
	cache domain.CacheRepository,
	client domain.SearchClient,
	config SearchServiceConfig,
	logger zerolog.Logger,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 120 * time.Second
	}

	return &SearchService{
		cache:    cache,
		client:   client,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Search looks up LCA metrics for one set of raw custom-function arguments.
// Flow: normalize -> check cache -> query API -> classify -> format -> cache.
// It never returns an error: a raised error would render as a fatal #ERROR!
// in the calling cell, so every failure mode becomes a single message cell
// inside an ordinary one-row table.
func (s *SearchService) Search(ctx context.Context, raw domain.RawParams) domain.Table {
	params := raw.Normalize()
	key := CacheKey(params)

	if table, ok := s.getFromCache(ctx, key); ok {
		metrics.CacheHits.Inc()
		return table
	}
	metrics.CacheMisses.Inc()

	resp, err := s.client.Search(ctx, params)
	if err != nil {
		s.logger.Warn().Err(err).Str("item", params.ItemName).Msg("search request failed")
		return domain.Table{rowForTransportError(err)}
	}

	outcome := scope4.Classify(resp)
	metrics.Outcomes.WithLabelValues(outcome.Kind()).Inc()

	table := domain.Table{RowForOutcome(outcome, params.NumMatches)}

	// Only a real result is worth keeping; errors should retry next call.
	if _, ok := outcome.(domain.Success); ok {
		s.setInCache(ctx, key, table)
	}

	return table
}

// rowForTransportError converts a failed fetch into its display cell.
// Timeouts are recognized by inspecting the error text: the transport gives
// no typed signal that distinguishes its own deadline from the host platform
// cutting execution short.
func rowForTransportError(err error) domain.Row {
	desc := err.Error()
	lower := strings.ToLower(desc)
	if strings.Contains(lower, "timeout") || strings.Contains(lower, "execution time") {
		metrics.Outcomes.WithLabelValues("timeout").Inc()
		return domain.Row{timeoutMessage}
	}
	metrics.Outcomes.WithLabelValues("failure").Inc()
	return domain.Row{"Error: " + desc}
}

// getFromCache loads and decodes a previously stored table. Any failure,
// from a plain miss to an undecodable payload, reports a miss: the cached
// copy is an optimization, never a source of truth.
func (s *SearchService) getFromCache(ctx context.Context, key string) (domain.Table, bool) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn().Err(err).Msg("cache read failed")
		}
		return nil, false
	}

	var table domain.Table
	if err := json.Unmarshal(value, &table); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache entry undecodable, refetching")
		return nil, false
	}
	if len(table) == 0 {
		return nil, false
	}
	return table, true
}

// setInCache stores the rendered table. Write failures are logged and
// swallowed: caching is best-effort, never a correctness requirement.
func (s *SearchService) setInCache(ctx context.Context, key string, table domain.Table) {
	payload, err := json.Marshal(table)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
