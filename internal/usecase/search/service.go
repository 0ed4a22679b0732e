// Package search ranks stored clinics against fuzzy queries.
package search

import (
	"context"
	"fmt"
	"time"

	domclinic "github.com/novadent/clindex/internal/domain/clinic"
	"github.com/novadent/clindex/internal/domain/search/fuzzy"
	"github.com/novadent/clindex/internal/domain/search/query"
	"github.com/novadent/clindex/internal/metrics"
)

// Service handles clinic search over the full candidate set.
type Service struct {
	clinics       ClinicLister
	ranker        *fuzzy.Ranker
	maxCandidates int
	defaultLimit  int
	maxLimit      int
}

// New creates a search service.
func New(clinics ClinicLister, ranker *fuzzy.Ranker) *Service {
	return &Service{
		clinics:       clinics,
		ranker:        ranker,
		maxCandidates: 5000,
		defaultLimit:  20,
		maxLimit:      100,
	}
}

// WithLimits configures result page limits.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// WithMaxCandidates caps how many stored clinics a single search will rank.
func (s *Service) WithMaxCandidates(n int) *Service {
	if n > 0 {
		s.maxCandidates = n
	}
	return s
}

// Search loads the candidate set, ranks it against q, and returns up to
// limit clinics ordered by ascending relevance score. A limit <= 0 falls
// back to the configured default.
func (s *Service) Search(ctx context.Context, q query.Query, limit int) ([]domclinic.Clinic, error) {
	start := time.Now()

	candidates, err := s.clinics.List(ctx)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list clinics: %w", err)
	}

	if len(candidates) > s.maxCandidates {
		candidates = candidates[:s.maxCandidates]
	}

	ranked := s.ranker.Rank(candidates, q)

	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	metrics.SearchesTotal.WithLabelValues("success").Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchCandidates.Observe(float64(len(candidates)))

	return ranked, nil
}
