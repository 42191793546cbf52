package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nbhd_backend/database"
	"nbhd_backend/internal/auth"
	"nbhd_backend/internal/config"
	"nbhd_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("DATABASE_URL", "test")
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return &testServer{db: db, router: SetupRouter(db, cfg)}
}

func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) createUser(t *testing.T, username string, isAdmin bool) (string, string) {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "unused",
		DateJoined:   time.Now(),
		IsAdmin:      isAdmin,
	}
	require.NoError(t, s.db.Create(user).Error)

	token, err := auth.GenerateToken(user.ID, user.IsAdmin)
	require.NoError(t, err)
	return user.ID, token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func neighborhoodBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name": name, "city": "seattle", "state": "wa",
		"latitude": 47.65, "longitude": -122.35,
		"crimeRate": 5.0, "averagePrice": 700000.0, "averageAge": 35.0,
	}
}

func TestRegisterLoginFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(t, http.MethodPost, "/api/v1/auth/register", "",
		map[string]string{"username": "alice", "password": "hunter2hunter2"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.request(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]string{"username": "alice", "password": "hunter2hunter2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)

	rec = s.request(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeBody(t, rec)["username"])
}

func TestNeighborhoodWritesRequireAdmin(t *testing.T) {
	s := newTestServer(t)

	_, adminToken := s.createUser(t, "root", true)
	_, userToken := s.createUser(t, "alice", false)

	// Not logged in: 403.
	rec := s.request(t, http.MethodPost, "/api/v1/neighborhoods", "", neighborhoodBody("fremont"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Logged in, not an admin: 401.
	rec = s.request(t, http.MethodPost, "/api/v1/neighborhoods", userToken, neighborhoodBody("fremont"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Admin: 201, with shaped output.
	rec = s.request(t, http.MethodPost, "/api/v1/neighborhoods", adminToken, neighborhoodBody("fremont"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "Fremont", body["name"])
	assert.Equal(t, "WA", body["state"])

	// Duplicate identity: 409.
	rec = s.request(t, http.MethodPost, "/api/v1/neighborhoods", adminToken, neighborhoodBody("fremont"))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Reads need a login but not the admin flag.
	rec = s.request(t, http.MethodGet, "/api/v1/neighborhoods", userToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(t, http.MethodGet, "/api/v1/neighborhoods?name=fremont&city=seattle&state=wa", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Fremont", decodeBody(t, rec)["name"])

	// Admin delete by natural key.
	rec = s.request(t, http.MethodDelete, "/api/v1/neighborhoods?name=fremont&city=seattle&state=wa", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = s.request(t, http.MethodGet, "/api/v1/neighborhoods?name=fremont&city=seattle&state=wa", userToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNeighborhoodValidation(t *testing.T) {
	s := newTestServer(t)
	_, adminToken := s.createUser(t, "root", true)

	// Blank-containing name fails the identifier rule.
	body := neighborhoodBody("queen anne")
	rec := s.request(t, http.MethodPost, "/api/v1/neighborhoods", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Three-letter state code fails.
	body = neighborhoodBody("fremont")
	body["state"] = "was"
	rec = s.request(t, http.MethodPost, "/api/v1/neighborhoods", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing numeric attribute fails required.
	body = neighborhoodBody("fremont")
	delete(body, "latitude")
	rec = s.request(t, http.MethodPost, "/api/v1/neighborhoods", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewRoundTrip(t *testing.T) {
	s := newTestServer(t)

	_, adminToken := s.createUser(t, "root", true)
	_, aliceToken := s.createUser(t, "alice", false)
	_, malloryToken := s.createUser(t, "mallory", false)

	rec := s.request(t, http.MethodPost, "/api/v1/neighborhoods", adminToken, neighborhoodBody("fremont"))
	require.Equal(t, http.StatusCreated, rec.Code)
	neighborhoodID := decodeBody(t, rec)["_id"].(string)

	rec = s.request(t, http.MethodPost, "/api/v1/reviews", aliceToken, map[string]interface{}{
		"neighborhoodId": neighborhoodID, "rating": 4, "content": "Troll under the bridge.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reviewID := decodeBody(t, rec)["_id"].(string)

	rec = s.request(t, http.MethodGet, "/api/v1/reviews/neighborhood/"+neighborhoodID, malloryToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(t, http.MethodGet, "/api/v1/reviews/author?author=alice", malloryToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Only the author may delete.
	rec = s.request(t, http.MethodDelete, "/api/v1/reviews/"+reviewID, malloryToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = s.request(t, http.MethodDelete, "/api/v1/reviews/"+reviewID, aliceToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVibeCheckRoundTrip(t *testing.T) {
	s := newTestServer(t)

	_, adminToken := s.createUser(t, "root", true)
	_, bobToken := s.createUser(t, "bob", false)
	_, aliceToken := s.createUser(t, "alice", false)

	rec := s.request(t, http.MethodPost, "/api/v1/neighborhoods", adminToken, neighborhoodBody("fremont"))
	require.Equal(t, http.StatusCreated, rec.Code)
	neighborhoodID := decodeBody(t, rec)["_id"].(string)

	rec = s.request(t, http.MethodPost, "/api/v1/vibechecks/availability", bobToken, map[string]interface{}{
		"name": "fremont", "city": "seattle", "state": "wa",
		"vibeLink": "https://meet.example.com/bob", "dateTime": "2026-09-01T17:00:00Z",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	availabilityID := decodeBody(t, rec)["_id"].(string)

	// Alice sees bob's slot; bob sees none of his own.
	rec = s.request(t, http.MethodGet, "/api/v1/vibechecks/availability/neighborhood/"+neighborhoodID, aliceToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	rec = s.request(t, http.MethodGet, "/api/v1/vibechecks/availability/neighborhood/"+neighborhoodID, bobToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	// Bob cannot book himself.
	rec = s.request(t, http.MethodPost, "/api/v1/vibechecks", bobToken,
		map[string]string{"availabilityId": availabilityID})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.request(t, http.MethodPost, "/api/v1/vibechecks", aliceToken,
		map[string]string{"availabilityId": availabilityID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	vibeCheckID := decodeBody(t, rec)["_id"].(string)

	// Both participants list the booking.
	for _, token := range []string{aliceToken, bobToken} {
		rec = s.request(t, http.MethodGet, "/api/v1/vibechecks", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var mine []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
		assert.Len(t, mine, 1)
	}

	rec = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/vibechecks/%s", vibeCheckID), bobToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Every API route except register and login requires a token, reads
// included; an unauthenticated request answers 403.
func TestAPIRequiresLogin(t *testing.T) {
	s := newTestServer(t)

	paths := []string{
		"/api/v1/users/me",
		"/api/v1/neighborhoods",
		"/api/v1/neighborhoods/location?city=seattle&state=wa",
		"/api/v1/neighborhoods/box?lat1=1&long1=1&lat2=2&long2=2",
		"/api/v1/reviews/neighborhood/some-id",
		"/api/v1/reviews/author?author=alice",
		"/api/v1/strolls",
		"/api/v1/strolls/neighborhood/some-id",
		"/api/v1/residency/isCertified?user=alice&neighborhoodId=some-id",
		"/api/v1/residency/users?user=alice",
		"/api/v1/residency/neighborhoods?name=fremont&city=seattle&state=wa",
		"/api/v1/vibechecks",
		"/api/v1/vibechecks/availability",
	}
	for _, path := range paths {
		rec := s.request(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, "GET %s without a token", path)
	}

	// A garbage token is as good as none.
	rec := s.request(t, http.MethodGet, "/api/v1/neighborhoods", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
