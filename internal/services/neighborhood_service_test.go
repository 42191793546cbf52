package services

import (
	"net/http"
	"testing"
	"time"

	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNeighborhoodService() *NeighborhoodService {
	return NewNeighborhoodService(
		repositories.NewNeighborhoodRepository(),
		repositories.NewReviewRepository(),
		repositories.NewStrollRepository(),
		repositories.NewResidencyRepository(),
		repositories.NewAvailabilityRepository(),
		repositories.NewVibeCheckRepository(),
	)
}

func floatPtr(v float64) *float64 { return &v }

func TestNeighborhoodCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	created, err := svc.Create(db, dto.CreateNeighborhoodRequest{
		Name: "Hyde_Park", City: "Chicago", State: "IL",
		Latitude: floatPtr(41.79), Longitude: floatPtr(-87.59),
		CrimeRate: floatPtr(10), AveragePrice: floatPtr(400000), AverageAge: floatPtr(30),
	})
	require.NoError(t, err)

	// Stored lowercase, presented Title Case.
	assert.Equal(t, "Hyde Park", created.Name)
	assert.Equal(t, "Chicago", created.City)
	assert.Equal(t, "IL", created.State)

	var stored models.Neighborhood
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "hyde_park", stored.Name)
	assert.Equal(t, "il", stored.State)
}

func TestNeighborhoodCreateDuplicateConflicts(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	req := dto.CreateNeighborhoodRequest{
		Name: "fremont", City: "seattle", State: "wa",
		Latitude: floatPtr(47.65), Longitude: floatPtr(-122.35),
		CrimeRate: floatPtr(5), AveragePrice: floatPtr(700000), AverageAge: floatPtr(35),
	}
	_, err := svc.Create(db, req)
	require.NoError(t, err)

	// Same identity in different casing is still the same neighborhood.
	req.Name, req.City, req.State = "Fremont", "Seattle", "WA"
	_, err = svc.Create(db, req)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpCodeOf(t, err))
}

func TestNeighborhoodGetByIdentityNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	_, err := svc.GetByIdentity(db, dto.NeighborhoodQuery{Name: "nowhere", City: "lost", State: "zz"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}

func TestNeighborhoodBoxValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	_, err := svc.GetAllInBox(db, dto.BoxQuery{
		Lat1: floatPtr(50), Long1: floatPtr(0), Lat2: floatPtr(40), Long2: floatPtr(10),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCodeOf(t, err))

	_, err = svc.GetAllInBox(db, dto.BoxQuery{
		Lat1: floatPtr(40), Long1: floatPtr(10), Lat2: floatPtr(50), Long2: floatPtr(0),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCodeOf(t, err))
}

func TestNeighborhoodBoxBoundsAreExclusive(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	inside := createTestNeighborhood(t, db, "inside", "city", "st")
	require.NoError(t, db.Model(inside).Updates(map[string]interface{}{"latitude": 45.0, "longitude": 5.0}).Error)
	onEdge := createTestNeighborhood(t, db, "on_edge", "city", "st")
	require.NoError(t, db.Model(onEdge).Updates(map[string]interface{}{"latitude": 40.0, "longitude": 5.0}).Error)

	found, err := svc.GetAllInBox(db, dto.BoxQuery{
		Lat1: floatPtr(40), Long1: floatPtr(0), Lat2: floatPtr(50), Long2: floatPtr(10),
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, inside.ID, found[0].ID)
}

func TestNeighborhoodUpdatePartial(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	updated, err := svc.Update(db,
		dto.NeighborhoodQuery{Name: "hyde_park", City: "chicago", State: "il"},
		dto.UpdateNeighborhoodRequest{CrimeRate: floatPtr(7.5)},
	)
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.CrimeRate)
	// Untouched attributes survive.
	assert.Equal(t, 350000.0, updated.AveragePrice)
	assert.Equal(t, 33.0, updated.AverageAge)
}

func TestNeighborhoodDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")
	other := createTestNeighborhood(t, db, "lincoln_park", "chicago", "il")
	author := createTestUser(t, db, "alice")
	resident := createTestUser(t, db, "bob")

	require.NoError(t, db.Create(&models.Review{
		AuthorID: author.ID, NeighborhoodID: neighborhood.ID,
		Rating: 4, Content: "nice", DateCreated: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.Stroll{
		AuthorID: author.ID, NeighborhoodID: neighborhood.ID,
		Title: "walk", StrollVideo: "https://example.com/v", DateUploaded: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.CertifiedResidency{
		UserID: resident.ID, NeighborhoodID: neighborhood.ID,
	}).Error)

	availability := &models.Availability{
		UserID: resident.ID, NeighborhoodID: neighborhood.ID,
		VibeLink: "https://meet.example.com/x", DateTime: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(availability).Error)
	require.NoError(t, db.Create(&models.VibeCheck{
		UserID: author.ID, ResidentID: resident.ID, AvailabilityID: availability.ID,
	}).Error)

	// Content in another neighborhood must survive.
	require.NoError(t, db.Create(&models.Review{
		AuthorID: author.ID, NeighborhoodID: other.ID,
		Rating: 5, Content: "also nice", DateCreated: time.Now(),
	}).Error)

	require.NoError(t, svc.Delete(db, dto.NeighborhoodQuery{Name: "hyde_park", City: "chicago", State: "il"}))

	var count int64
	db.Model(&models.Neighborhood{}).Where("id = ?", neighborhood.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Review{}).Where("neighborhood_id = ?", neighborhood.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Stroll{}).Where("neighborhood_id = ?", neighborhood.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.CertifiedResidency{}).Where("neighborhood_id = ?", neighborhood.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Availability{}).Where("neighborhood_id = ?", neighborhood.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.VibeCheck{}).Count(&count)
	assert.Zero(t, count)

	db.Model(&models.Review{}).Where("neighborhood_id = ?", other.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestNeighborhoodDeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newNeighborhoodService()

	err := svc.Delete(db, dto.NeighborhoodQuery{Name: "nowhere", City: "lost", State: "zz"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}
