package services

import (
	"net/http"
	"testing"
	"time"

	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() *UserService {
	return NewUserService(
		repositories.NewUserRepository(),
		repositories.NewReviewRepository(),
		repositories.NewStrollRepository(),
		repositories.NewResidencyRepository(),
		repositories.NewAvailabilityRepository(),
		repositories.NewVibeCheckRepository(),
	)
}

func TestUserGetByID(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService()

	user := createTestUser(t, db, "alice")

	got, err := svc.GetByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.GetByID(db, "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}

func TestAccountDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService()

	leaving := createTestUser(t, db, "alice")
	staying := createTestUser(t, db, "bob")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	require.NoError(t, db.Create(&models.Review{
		AuthorID: leaving.ID, NeighborhoodID: neighborhood.ID,
		Rating: 4, Content: "mine", DateCreated: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		AuthorID: staying.ID, NeighborhoodID: neighborhood.ID,
		Rating: 5, Content: "bob's", DateCreated: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.Stroll{
		AuthorID: leaving.ID, NeighborhoodID: neighborhood.ID,
		Title: "walk", StrollVideo: "https://example.com/v", DateUploaded: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.CertifiedResidency{
		UserID: leaving.ID, NeighborhoodID: neighborhood.ID,
	}).Error)

	// alice offers a slot that bob has booked.
	offered := &models.Availability{
		UserID: leaving.ID, NeighborhoodID: neighborhood.ID,
		VibeLink: "https://meet.example.com/a", DateTime: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(offered).Error)
	require.NoError(t, db.Create(&models.VibeCheck{
		UserID: staying.ID, ResidentID: leaving.ID, AvailabilityID: offered.ID,
	}).Error)

	// alice has also booked a slot bob offers; bob's slot must survive.
	bobsSlot := &models.Availability{
		UserID: staying.ID, NeighborhoodID: neighborhood.ID,
		VibeLink: "https://meet.example.com/b", DateTime: time.Now().Add(48 * time.Hour),
	}
	require.NoError(t, db.Create(bobsSlot).Error)
	require.NoError(t, db.Create(&models.VibeCheck{
		UserID: leaving.ID, ResidentID: staying.ID, AvailabilityID: bobsSlot.ID,
	}).Error)

	require.NoError(t, svc.DeleteAccount(db, leaving.ID))

	var count int64
	db.Model(&models.User{}).Where("id = ?", leaving.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Review{}).Where("author_id = ?", leaving.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Stroll{}).Where("author_id = ?", leaving.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.CertifiedResidency{}).Where("user_id = ?", leaving.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Availability{}).Where("user_id = ?", leaving.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.VibeCheck{}).Count(&count)
	assert.Zero(t, count)

	// Bob's world is intact.
	db.Model(&models.Review{}).Where("author_id = ?", staying.ID).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Availability{}).Where("user_id = ?", staying.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteUnknownAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService()

	err := svc.DeleteAccount(db, "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}
