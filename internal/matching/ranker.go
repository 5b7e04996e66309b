package matching

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/gdugdh24/matrimony-backend/internal/domain"
)

// DefaultThreshold is the minimum match percentage a recommendation needs.
const DefaultThreshold = 50

// GenderPolicy decides whether a candidate of the given gender may be
// recommended to the requester.
type GenderPolicy func(requester, candidate domain.Gender) bool

// OppositeGender pairs Male with Female only. Unknown values never match.
func OppositeGender(requester, candidate domain.Gender) bool {
	return requester.IsValid() && candidate.IsValid() && requester != candidate
}

type ScoredProfile struct {
	Profile         *domain.CompleteProfile `json:"profile"`
	MatchPercentage int                     `json:"match_percentage"`
}

// Scorer computes a match percentage in [0,100]. *Matcher implements it.
type Scorer interface {
	MatchPercentage(requester, candidate *domain.CompleteProfile) int
}

type Ranker struct {
	scorer    Scorer
	policy    GenderPolicy
	threshold int
	workers   int
}

type RankerOption func(*Ranker)

func WithGenderPolicy(p GenderPolicy) RankerOption {
	return func(r *Ranker) {
		if p != nil {
			r.policy = p
		}
	}
}

func WithThreshold(t int) RankerOption {
	return func(r *Ranker) {
		r.threshold = t
	}
}

// WithWorkers bounds the number of goroutines scoring candidates.
// Values below 2 score sequentially.
func WithWorkers(n int) RankerOption {
	return func(r *Ranker) {
		r.workers = n
	}
}

func NewRanker(scorer Scorer, opts ...RankerOption) *Ranker {
	if scorer == nil {
		scorer = defaultMatcher
	}
	r := &Ranker{
		scorer:    scorer,
		policy:    OppositeGender,
		threshold: DefaultThreshold,
		workers:   1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend filters the pool to eligible candidates, scores them, drops
// those under the threshold and returns the rest best first. Candidates
// with equal scores keep their pool order.
func (r *Ranker) Recommend(requester *domain.CompleteProfile, pool []*domain.CompleteProfile) []ScoredProfile {
	if requester == nil || requester.Preferences == nil || requester.Profile == nil {
		return []ScoredProfile{}
	}

	eligible := make([]*domain.CompleteProfile, 0, len(pool))
	for _, c := range pool {
		if c == nil || c.Profile == nil || c.UserID == requester.UserID {
			continue
		}
		if !r.policy(requester.Profile.Gender, c.Profile.Gender) {
			continue
		}
		eligible = append(eligible, c)
	}

	scores := r.score(requester, eligible)

	out := make([]ScoredProfile, 0, len(eligible))
	for i, c := range eligible {
		if scores[i] < r.threshold {
			continue
		}
		out = append(out, ScoredProfile{Profile: c, MatchPercentage: scores[i]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

// score writes each result into its own slot so no locking is needed.
func (r *Ranker) score(requester *domain.CompleteProfile, candidates []*domain.CompleteProfile) []int {
	scores := make([]int, len(candidates))
	if r.workers < 2 || len(candidates) < 2 {
		for i, c := range candidates {
			scores[i] = r.scorer.MatchPercentage(requester, c)
		}
		return scores
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, c := range candidates {
		g.Go(func() error {
			scores[i] = r.scorer.MatchPercentage(requester, c)
			return nil
		})
	}
	_ = g.Wait()
	return scores
}
