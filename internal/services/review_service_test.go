package services

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService() *ReviewService {
	return NewReviewService(
		repositories.NewReviewRepository(),
		repositories.NewNeighborhoodRepository(),
		repositories.NewUserRepository(),
	)
}

func TestReviewCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	author := createTestUser(t, db, "alice")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	review, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: neighborhood.ID, Rating: 4, Content: "Quiet and green.",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", review.Author)
	assert.Equal(t, "Hyde Park", review.Location.Name)
	assert.Equal(t, "IL", review.Location.State)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewCreateUnknownNeighborhood(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()
	author := createTestUser(t, db, "alice")

	_, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: "missing", Rating: 3, Content: "hm",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}

func TestReviewContentCeiling(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	author := createTestUser(t, db, "alice")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	atLimit := strings.Repeat("a", models.ReviewContentMaxLen)
	_, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: neighborhood.ID, Rating: 5, Content: atLimit,
	})
	require.NoError(t, err)

	overLimit := strings.Repeat("a", models.ReviewContentMaxLen+1)
	_, err = svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: neighborhood.ID, Rating: 5, Content: overLimit,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpCodeOf(t, err))
}

// The ceiling counts characters, not bytes: multi-byte content at the limit
// must pass even though its byte length is far larger.
func TestReviewContentCeilingIsCharacters(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	author := createTestUser(t, db, "alice")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	atLimit := strings.Repeat("é", models.ReviewContentMaxLen)
	require.Greater(t, len(atLimit), models.ReviewContentMaxLen)
	_, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: neighborhood.ID, Rating: 5, Content: atLimit,
	})
	require.NoError(t, err)

	overLimit := strings.Repeat("é", models.ReviewContentMaxLen+1)
	_, err = svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: neighborhood.ID, Rating: 5, Content: overLimit,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpCodeOf(t, err))
}

func TestReviewRatingBounds(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	author := createTestUser(t, db, "alice")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
			NeighborhoodID: neighborhood.ID, Rating: rating, Content: "x",
		})
		require.Error(t, err, "rating %d should fail", rating)
		assert.Equal(t, http.StatusBadRequest, httpCodeOf(t, err))
	}
	for _, rating := range []int{1, 5} {
		_, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
			NeighborhoodID: neighborhood.ID, Rating: rating, Content: "x",
		})
		require.NoError(t, err, "rating %d should pass", rating)
	}
}

func TestReviewBlankContent(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	author := createTestUser(t, db, "alice")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	_, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: neighborhood.ID, Rating: 3, Content: "   \t ",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCodeOf(t, err))
}

func TestReviewDeleteOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	author := createTestUser(t, db, "alice")
	stranger := createTestUser(t, db, "mallory")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	review, err := svc.Create(db, author.ID, dto.CreateReviewRequest{
		NeighborhoodID: neighborhood.ID, Rating: 4, Content: "mine",
	})
	require.NoError(t, err)

	err = svc.Delete(db, stranger.ID, review.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, httpCodeOf(t, err))

	require.NoError(t, svc.Delete(db, author.ID, review.ID))

	err = svc.Delete(db, author.ID, review.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}

func TestReviewListingOrderedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	author := createTestUser(t, db, "alice")
	neighborhood := createTestNeighborhood(t, db, "hyde_park", "chicago", "il")

	old := &models.Review{
		AuthorID: author.ID, NeighborhoodID: neighborhood.ID,
		Rating: 3, Content: "old", DateCreated: time.Now().Add(-48 * time.Hour),
	}
	recent := &models.Review{
		AuthorID: author.ID, NeighborhoodID: neighborhood.ID,
		Rating: 5, Content: "recent", DateCreated: time.Now(),
	}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Create(recent).Error)

	reviews, err := svc.GetAllByNeighborhood(db, neighborhood.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "recent", reviews[0].Content)
	assert.Equal(t, "old", reviews[1].Content)
}

func TestReviewsByAuthorUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newReviewService()

	_, err := svc.GetAllByAuthor(db, "nobody")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCodeOf(t, err))
}
