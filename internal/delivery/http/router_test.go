package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/matrimony-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/matrimony-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/matrimony-backend/internal/matching"
	"github.com/gdugdh24/matrimony-backend/internal/repository/memory"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/auth"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/interest"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/match"
	"github.com/gdugdh24/matrimony-backend/internal/usecase/profile"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	log := logger.Discard()
	authUC := auth.NewAuthUseCase(store.Users(), "0123456789abcdef0123456789abcdef", time.Hour)
	profileUC := profile.NewProfileUseCase(
		store.Profiles(), store.Preferences(), store.Horoscopes(), store.Users(),
		store.CompleteProfiles(), nil, log,
	)
	matcher := matching.NewMatcher()
	matchUC := match.NewMatchUseCase(store.CompleteProfiles(), matching.NewRanker(matcher), matcher, nil, nil, log)
	interestUC := interest.NewInterestUseCase(store.Interests(), store.Profiles(), log)

	router := NewRouter(
		handler.NewAuthHandler(authUC),
		handler.NewProfileHandler(profileUC),
		handler.NewMatchHandler(matchUC),
		handler.NewInterestHandler(interestUC),
		middleware.NewAuthMiddleware(authUC),
	)
	engine, err := router.Setup()
	require.NoError(t, err)
	return &apiClient{t: t, engine: engine}
}

func (a *apiClient) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *apiClient) register(username string) (string, int) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID int `json:"id"`
		} `json:"user"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func profileBody(name, gender string) gin.H {
	return gin.H{
		"full_name":      name,
		"gender":         gender,
		"date_of_birth":  "1995-01-10",
		"marital_status": "Never Married",
		"religion":       "Hindu",
		"mother_tongue":  "Odia",
		"location":       "Bhubaneswar, Odisha",
		"state":          "Odisha",
		"city":           "Bhubaneswar",
	}
}

func TestHealthAndMetrics(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = api.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "matrimony_http_requests_total")
}

func TestAuthFlow(t *testing.T) {
	api := newAPI(t)
	token, userID := api.register("ananya")

	w := api.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "ananya", "email": "again@example.com", "password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "ananya", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"username": "ananya"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"id":%d`, userID))
	assert.NotContains(t, w.Body.String(), "password")

	// no profile yet
	w = api.do(http.MethodGet, "/api/v1/matches", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = api.do(http.MethodGet, "/api/v1/matches", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileValidation(t *testing.T) {
	api := newAPI(t)
	token, _ := api.register("ananya")

	body := profileBody("Ananya Das", "other")
	w := api.do(http.MethodPut, "/api/v1/profile/me", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, "/api/v1/profile/me/horoscope", token, gin.H{"sun": "Ophiuchus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, "/api/v1/profile/me/horoscope", token, gin.H{"sun": "Leo", "nakshatra": "Rohini"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/v1/profile/me/education", token, gin.H{"highest_education": "Masters"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodGet, "/api/v1/profile/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/v1/complete-profile/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchAndInterestFlow(t *testing.T) {
	api := newAPI(t)
	ananya, ananyaID := api.register("ananya")
	ravi, raviID := api.register("ravi")

	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/v1/profile/me", ananya, profileBody("Ananya Das", "female")).Code)
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/v1/profile/me", ravi, profileBody("Ravi Kumar", "male")).Code)
	require.Equal(t, http.StatusOK, api.do(http.MethodPut, "/api/v1/profile/me/preferences", ananya, gin.H{
		"religion": []string{"Hindu"},
		"location": []string{"Odisha"},
	}).Code)

	w := api.do(http.MethodGet, "/api/v1/matches", ananya, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var matches []struct {
		Profile struct {
			UserID int `json:"user_id"`
		} `json:"profile"`
		MatchPercentage int `json:"match_percentage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, raviID, matches[0].Profile.UserID)
	assert.Equal(t, 100, matches[0].MatchPercentage)

	// no preferences yet
	w = api.do(http.MethodGet, "/api/v1/matches", ravi, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = api.do(http.MethodGet, fmt.Sprintf("/api/v1/matches/%d/compatibility", raviID), ananya, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"match_percentage":100`)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/v1/matches/%d/insight", raviID), ananya, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ravi Kumar is a 100% match for you.")

	w = api.do(http.MethodGet, "/api/v1/search?gender=male&religion=Hindu", ananya, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []struct {
		UserID int `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, raviID, found[0].UserID)

	w = api.do(http.MethodPost, "/api/v1/interests", ananya, gin.H{"receiver_id": raviID})
	require.Equal(t, http.StatusCreated, w.Code)
	var sent struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sent))
	assert.Equal(t, "pending", sent.Status)

	w = api.do(http.MethodPost, "/api/v1/interests", ananya, gin.H{"receiver_id": raviID})
	assert.Equal(t, http.StatusConflict, w.Code)
	w = api.do(http.MethodPost, "/api/v1/interests", ananya, gin.H{"receiver_id": ananyaID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	path := fmt.Sprintf("/api/v1/interests/%d", sent.ID)
	w = api.do(http.MethodPut, path, ananya, gin.H{"status": "accepted"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = api.do(http.MethodPut, path, ravi, gin.H{"status": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = api.do(http.MethodPut, path, ravi, gin.H{"status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)
	w = api.do(http.MethodPut, path, ravi, gin.H{"status": "rejected"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodGet, "/api/v1/interests/received", ravi, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"full_name":"Ananya Das"`)
}
