package services

import (
	"net/http"
	"testing"

	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStrollService() *StrollService {
	return NewStrollService(
		repositories.NewStrollRepository(),
		repositories.NewNeighborhoodRepository(),
	)
}

func strollRequest(title string) dto.CreateStrollRequest {
	return dto.CreateStrollRequest{
		Name: "hyde_park", City: "chicago", State: "il",
		Title: title, StrollVideo: "https://videos.example.com/" + title,
	}
}

func TestStrollCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newStrollService()

	author := createTestUser(t, db, "alice")
	createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	stroll, err := svc.Create(db, author.ID, strollRequest("morning-walk"))
	require.NoError(t, err)
	assert.Equal(t, "alice", stroll.Author)
	assert.Equal(t, "Hyde Park", stroll.Location.Name)
	assert.Equal(t, "morning-walk", stroll.Title)
}

func TestStrollCreateUnknownNeighborhood(t *testing.T) {
	db := setupTestDB(t)
	svc := newStrollService()
	author := createTestUser(t, db, "alice")

	req := strollRequest("walk")
	req.Name = "nowhere"
	_, err := svc.Create(db, author.ID, req)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}

func TestStrollListings(t *testing.T) {
	db := setupTestDB(t)
	svc := newStrollService()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	_, err := svc.Create(db, alice.ID, strollRequest("one"))
	require.NoError(t, err)
	_, err = svc.Create(db, bob.ID, strollRequest("two"))
	require.NoError(t, err)

	mine, err := svc.GetAllByAuthor(db, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "one", mine[0].Title)

	all, err := svc.GetAllByNeighborhood(db, neighborhood.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStrollDeleteOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newStrollService()

	author := createTestUser(t, db, "alice")
	stranger := createTestUser(t, db, "mallory")
	createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	stroll, err := svc.Create(db, author.ID, strollRequest("walk"))
	require.NoError(t, err)

	err = svc.Delete(db, stranger.ID, stroll.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpCodeOf(t, err))

	require.NoError(t, svc.Delete(db, author.ID, stroll.ID))

	err = svc.Delete(db, author.ID, stroll.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}
