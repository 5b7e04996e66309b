package match

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/metrics"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
)

// RecommendationCache stores ranked lists per requester.
// Lists are keyed by a generation that is read once per request.
type RecommendationCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, userID int) ([]matching.ScoredProfile, bool, error)
	Set(ctx context.Context, gen int64, userID int, results []matching.ScoredProfile) error
}

// InsightGenerator writes a short human explanation of a match.
type InsightGenerator interface {
	GenerateMatchInsight(ctx context.Context, s gemini.MatchSummary) (string, error)
}

type MatchUseCase struct {
	profiles repository.CompleteProfileReader
	ranker   *matching.Ranker
	matcher  *matching.Matcher
	cache    RecommendationCache
	insights InsightGenerator
	log      *slog.Logger
	now      func() time.Time
}

// NewMatchUseCase wires the scoring core to storage. cache and insights
// may be nil.
func NewMatchUseCase(
	profiles repository.CompleteProfileReader,
	ranker *matching.Ranker,
	matcher *matching.Matcher,
	cache RecommendationCache,
	insights InsightGenerator,
	log *slog.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		profiles: profiles,
		ranker:   ranker,
		matcher:  matcher,
		cache:    cache,
		insights: insights,
		log:      log,
		now:      time.Now,
	}
}

// CompatibilityResponse explains how well another user fits the requester
type CompatibilityResponse struct {
	UserID             int                     `json:"user_id"`
	MatchPercentage    int                     `json:"match_percentage"`
	Breakdown          matching.MatchBreakdown `json:"breakdown"`
	HoroscopeScore     *int                    `json:"horoscope_score"`
	CompatibilityLevel string                  `json:"compatibility_level,omitempty"`
}

// InsightResponse represents a written match explanation
type InsightResponse struct {
	UserID          int    `json:"user_id"`
	MatchPercentage int    `json:"match_percentage"`
	Insight         string `json:"insight"`
}

// Recommend returns the ranked recommendations for userID, served from the
// cache when a fresh list exists.
func (uc *MatchUseCase) Recommend(ctx context.Context, userID int) ([]matching.ScoredProfile, error) {
	start := time.Now()
	defer func() { metrics.RecordResponseTime("recommend", time.Since(start)) }()

	var (
		gen       int64
		cacheable bool
	)
	if uc.cache != nil {
		var err error
		gen, err = uc.cache.Generation(ctx)
		if err != nil {
			uc.log.Warn("recommendation cache read failed", "user_id", userID, "error", err)
		} else {
			cacheable = true
			cached, ok, err := uc.cache.Get(ctx, gen, userID)
			if err != nil {
				uc.log.Warn("recommendation cache read failed", "user_id", userID, "error", err)
			}
			if ok {
				metrics.RecordRecommendations(metrics.SourceCache, scoresOf(cached))
				return cached, nil
			}
		}
	}

	requester, err := uc.profiles.GetCompleteProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complete profile: %w", err)
	}
	if requester == nil || requester.Profile == nil {
		return []matching.ScoredProfile{}, nil
	}

	pool, err := uc.profiles.GetAllCompleteProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	results := uc.ranker.Recommend(requester, pool)
	metrics.RecordRecommendations(metrics.SourceComputed, scoresOf(results))
	uc.log.Debug("recommendations computed", "user_id", userID, "pool", len(pool), "results", len(results))

	if cacheable {
		if err := uc.cache.Set(ctx, gen, userID, results); err != nil {
			uc.log.Warn("recommendation cache write failed", "user_id", userID, "error", err)
		}
	}
	return results, nil
}

// Search filters every other profile by plain field criteria.
func (uc *MatchUseCase) Search(ctx context.Context, userID int, criteria matching.SearchCriteria) ([]*domain.CompleteProfile, error) {
	if criteria.MinAge != nil && criteria.MaxAge != nil && *criteria.MinAge > *criteria.MaxAge {
		return nil, fmt.Errorf("%w: min_age is greater than max_age", domain.ErrInvalidInput)
	}
	if criteria.Gender != "" {
		gender, ok := domain.ParseGender(criteria.Gender)
		if !ok {
			return nil, fmt.Errorf("%w: gender must be Male or Female", domain.ErrInvalidInput)
		}
		criteria.Gender = string(gender)
	}

	pool, err := uc.profiles.GetAllCompleteProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	others := make([]*domain.CompleteProfile, 0, len(pool))
	for _, cp := range pool {
		if cp != nil && cp.UserID != userID {
			others = append(others, cp)
		}
	}
	return matching.Search(others, criteria, uc.now()), nil
}

// Compatibility scores otherID against the requester's preferences and
// reports the horoscope result separately.
func (uc *MatchUseCase) Compatibility(ctx context.Context, userID, otherID int) (*CompatibilityResponse, error) {
	requester, candidate, err := uc.loadPair(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	return uc.compatibility(requester, candidate), nil
}

func (uc *MatchUseCase) compatibility(requester, candidate *domain.CompleteProfile) *CompatibilityResponse {
	breakdown := uc.matcher.Breakdown(requester, candidate)
	resp := &CompatibilityResponse{
		UserID:          candidate.UserID,
		MatchPercentage: breakdown.Score,
		Breakdown:       breakdown,
	}
	if requester.Horoscope != nil && candidate.Horoscope != nil {
		score := matching.Compatibility(requester.Horoscope, candidate.Horoscope)
		resp.HoroscopeScore = &score
		resp.CompatibilityLevel = matching.CompatibilityLevel(score)
		metrics.RecordHoroscopeScore(score)
	}
	return resp
}

// Insight explains a match in a few sentences. Without a generator the
// template text is used.
func (uc *MatchUseCase) Insight(ctx context.Context, userID, otherID int) (*InsightResponse, error) {
	requester, candidate, err := uc.loadPair(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	compat := uc.compatibility(requester, candidate)

	summary := gemini.MatchSummary{
		RequesterName:      requester.Profile.FullName,
		CandidateName:      candidate.Profile.FullName,
		MatchPercentage:    compat.MatchPercentage,
		HoroscopeScore:     compat.HoroscopeScore,
		CompatibilityLevel: compat.CompatibilityLevel,
	}
	for _, d := range compat.Breakdown.Dimensions {
		if !d.Considered {
			continue
		}
		label := dimensionLabel(d.Dimension)
		if d.Satisfied {
			summary.Satisfied = append(summary.Satisfied, label)
		} else {
			summary.Unmet = append(summary.Unmet, label)
		}
	}

	text := gemini.FallbackInsight(summary)
	if uc.insights != nil {
		generated, err := uc.insights.GenerateMatchInsight(ctx, summary)
		if err != nil {
			uc.log.Warn("match insight generation failed", "user_id", userID, "other_id", otherID, "error", err)
		} else if generated != "" {
			text = generated
		}
	}

	return &InsightResponse{
		UserID:          otherID,
		MatchPercentage: compat.MatchPercentage,
		Insight:         text,
	}, nil
}

func (uc *MatchUseCase) loadPair(ctx context.Context, userID, otherID int) (*domain.CompleteProfile, *domain.CompleteProfile, error) {
	if userID == otherID {
		return nil, nil, fmt.Errorf("%w: cannot compare a profile with itself", domain.ErrInvalidInput)
	}
	requester, err := uc.requireProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	candidate, err := uc.requireProfile(ctx, otherID)
	if err != nil {
		return nil, nil, err
	}
	return requester, candidate, nil
}

func (uc *MatchUseCase) requireProfile(ctx context.Context, userID int) (*domain.CompleteProfile, error) {
	cp, err := uc.profiles.GetCompleteProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complete profile: %w", err)
	}
	if cp == nil || cp.Profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return cp, nil
}

func scoresOf(results []matching.ScoredProfile) []int {
	scores := make([]int, len(results))
	for i, r := range results {
		scores[i] = r.MatchPercentage
	}
	return scores
}

func dimensionLabel(d matching.Dimension) string {
	switch d {
	case matching.DimensionMaritalStatus:
		return "marital status"
	case matching.DimensionMotherTongue:
		return "mother tongue"
	}
	return string(d)
}
