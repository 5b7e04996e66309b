package match

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/gemini"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/repository"
	"github.com/gdugdh24/matrimony-backend/internal/repository/memory"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type cacheKey struct {
	gen    int64
	userID int
}

type mapCache struct {
	gen    int64
	lists  map[cacheKey][]matching.ScoredProfile
	gets   int
	sets   int
	genErr error
	getErr error
}

func newMapCache() *mapCache {
	return &mapCache{lists: make(map[cacheKey][]matching.ScoredProfile)}
}

func (c *mapCache) Generation(context.Context) (int64, error) {
	return c.gen, c.genErr
}

func (c *mapCache) Get(_ context.Context, gen int64, userID int) ([]matching.ScoredProfile, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	l, ok := c.lists[cacheKey{gen, userID}]
	return l, ok, nil
}

func (c *mapCache) Set(_ context.Context, gen int64, userID int, results []matching.ScoredProfile) error {
	c.sets++
	c.lists[cacheKey{gen, userID}] = results
	return nil
}

// writeDuringLoad runs onLoad while the candidate pool is being read.
type writeDuringLoad struct {
	repository.CompleteProfileReader
	onLoad func()
}

func (r *writeDuringLoad) GetAllCompleteProfiles(ctx context.Context) ([]*domain.CompleteProfile, error) {
	pool, err := r.CompleteProfileReader.GetAllCompleteProfiles(ctx)
	if r.onLoad != nil {
		r.onLoad()
		r.onLoad = nil
	}
	return pool, err
}

type stubInsights struct {
	text string
	err  error
	got  gemini.MatchSummary
}

func (s *stubInsights) GenerateMatchInsight(_ context.Context, summary gemini.MatchSummary) (string, error) {
	s.got = summary
	return s.text, s.err
}

func seed(t *testing.T, store *memory.Store) {
	t.Helper()
	ctx := context.Background()
	add := func(userID int, name string, gender domain.Gender, religion string) {
		require.NoError(t, store.Profiles().Upsert(ctx, &domain.Profile{
			UserID:      userID,
			FullName:    name,
			Gender:      gender,
			DateOfBirth: time.Date(1995, time.January, 10, 0, 0, 0, 0, time.UTC),
			Religion:    religion,
			Location:    "Bhubaneswar, Odisha",
			City:        "Bhubaneswar",
			State:       "Odisha",
		}))
	}
	add(1, "Ananya", domain.GenderFemale, "Hindu")
	add(2, "Ravi", domain.GenderMale, "Hindu")
	add(3, "John", domain.GenderMale, "Christian")
	add(4, "Priya", domain.GenderFemale, "Hindu")

	require.NoError(t, store.Preferences().Upsert(ctx, &domain.Preference{
		UserID:   1,
		Religion: []string{"Hindu", "Sikh"},
	}))
}

func newTestUseCase(t *testing.T, cache RecommendationCache, insights InsightGenerator) (*MatchUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	seed(t, store)

	matcher := matching.NewMatcher(matching.WithClock(func() time.Time { return fixedNow }))
	ranker := matching.NewRanker(matcher, matching.WithWorkers(2))
	uc := NewMatchUseCase(store.CompleteProfiles(), ranker, matcher, cache, insights, logger.Discard())
	uc.now = func() time.Time { return fixedNow }
	return uc, store
}

func TestRecommend(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, nil)

	results, err := uc.Recommend(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Profile.UserID)
	assert.Equal(t, 100, results[0].MatchPercentage)
}

func TestRecommend_NoPreferences(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, nil)

	results, err := uc.Recommend(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRecommend_UnknownUser(t *testing.T) {
	cache := newMapCache()
	uc, _ := newTestUseCase(t, cache, nil)

	results, err := uc.Recommend(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
	assert.Equal(t, 0, cache.sets)
}

func TestRecommend_UsesCache(t *testing.T) {
	cache := newMapCache()
	uc, store := newTestUseCase(t, cache, nil)
	ctx := context.Background()

	first, err := uc.Recommend(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// a later pool change is invisible until the cached list is dropped
	require.NoError(t, store.Profiles().Upsert(ctx, &domain.Profile{
		UserID: 5, FullName: "Arjun", Gender: domain.GenderMale, Religion: "Sikh",
	}))
	second, err := uc.Recommend(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)

	cache.gen++
	third, err := uc.Recommend(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestRecommend_CacheErrorFallsThrough(t *testing.T) {
	cache := newMapCache()
	cache.getErr = errors.New("connection refused")
	uc, _ := newTestUseCase(t, cache, nil)

	results, err := uc.Recommend(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	cache = newMapCache()
	cache.genErr = errors.New("connection refused")
	uc, _ = newTestUseCase(t, cache, nil)

	results, err = uc.Recommend(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 0, cache.gets)
	assert.Equal(t, 0, cache.sets)
}

func TestRecommend_InvalidationDuringCompute(t *testing.T) {
	cache := newMapCache()
	store := memory.NewStore()
	seed(t, store)
	ctx := context.Background()

	reader := &writeDuringLoad{CompleteProfileReader: store.CompleteProfiles()}
	reader.onLoad = func() {
		require.NoError(t, store.Preferences().Upsert(ctx, &domain.Preference{
			UserID:   1,
			Religion: []string{"Christian"},
		}))
		cache.gen++
	}
	matcher := matching.NewMatcher(matching.WithClock(func() time.Time { return fixedNow }))
	uc := NewMatchUseCase(reader, matching.NewRanker(matcher), matcher, cache, nil, logger.Discard())

	first, err := uc.Recommend(ctx, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 2, first[0].Profile.UserID)

	second, err := uc.Recommend(ctx, 1)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 3, second[0].Profile.UserID)
}

func TestSearch(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, nil)
	ctx := context.Background()

	results, err := uc.Search(ctx, 1, matching.SearchCriteria{Religion: "Hindu"})
	require.NoError(t, err)
	ids := make([]int, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.UserID)
	}
	assert.Equal(t, []int{2, 4}, ids)

	results, err = uc.Search(ctx, 1, matching.SearchCriteria{Gender: "female"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 4, results[0].UserID)

	_, err = uc.Search(ctx, 1, matching.SearchCriteria{Gender: "any"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	lo, hi := 40, 30
	_, err = uc.Search(ctx, 1, matching.SearchCriteria{MinAge: &lo, MaxAge: &hi})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompatibility(t *testing.T) {
	uc, store := newTestUseCase(t, nil, nil)
	ctx := context.Background()

	resp, err := uc.Compatibility(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 100, resp.MatchPercentage)
	assert.Nil(t, resp.HoroscopeScore)
	assert.Empty(t, resp.CompatibilityLevel)

	require.NoError(t, store.Horoscopes().Upsert(ctx, &domain.Horoscope{UserID: 1}))
	require.NoError(t, store.Horoscopes().Upsert(ctx, &domain.Horoscope{UserID: 2}))

	resp, err = uc.Compatibility(ctx, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, resp.HoroscopeScore)
	assert.Equal(t, 22, *resp.HoroscopeScore)
	assert.Equal(t, "Below Average Match", resp.CompatibilityLevel)
	assert.Equal(t, 77, resp.MatchPercentage)
	assert.Equal(t, 2, resp.UserID)
}

func TestCompatibility_Errors(t *testing.T) {
	uc, _ := newTestUseCase(t, nil, nil)
	ctx := context.Background()

	_, err := uc.Compatibility(ctx, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Compatibility(ctx, 1, 99)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestInsight(t *testing.T) {
	t.Run("template without generator", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil, nil)

		resp, err := uc.Insight(context.Background(), 1, 3)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.MatchPercentage)
		assert.Equal(t, "John is a 0% match for you. Differences: religion.", resp.Insight)
	})

	t.Run("generated text", func(t *testing.T) {
		stub := &stubInsights{text: "A thoughtful pairing."}
		uc, _ := newTestUseCase(t, nil, stub)

		resp, err := uc.Insight(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "A thoughtful pairing.", resp.Insight)
		assert.Equal(t, "Ananya", stub.got.RequesterName)
		assert.Equal(t, []string{"religion"}, stub.got.Satisfied)
		assert.Empty(t, stub.got.Unmet)
	})

	t.Run("generator failure", func(t *testing.T) {
		stub := &stubInsights{err: errors.New("quota exceeded")}
		uc, _ := newTestUseCase(t, nil, stub)

		resp, err := uc.Insight(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, "Ravi is a 100% match for you. You align on religion.", resp.Insight)
	})
}
