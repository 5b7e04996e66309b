package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRecommendations(t *testing.T) {
	before := testutil.ToFloat64(recommendationsTotal.WithLabelValues(SourceComputed))

	RecordRecommendations(SourceComputed, []int{85, 72})

	assert.Equal(t, before+1, testutil.ToFloat64(recommendationsTotal.WithLabelValues(SourceComputed)))
	assert.Equal(t, 1, testutil.CollectAndCount(matchScores))
}

func TestRecordInterest(t *testing.T) {
	before := testutil.ToFloat64(interestsTotal.WithLabelValues("accepted"))
	RecordInterest("accepted")
	RecordInterest("accepted")
	assert.Equal(t, before+2, testutil.ToFloat64(interestsTotal.WithLabelValues("accepted")))
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest("GET", "/api/v1/matches", 200)
	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/v1/matches", "200")))
}

func TestRecordResponseTime(t *testing.T) {
	RecordResponseTime("recommend", 120*time.Millisecond)
	RecordHoroscopeScore(22)
	assert.Equal(t, 1, testutil.CollectAndCount(responseTime))
	assert.Equal(t, 1, testutil.CollectAndCount(horoscopeScores))
}
