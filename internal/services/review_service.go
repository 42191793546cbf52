package services

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService struct {
	reviewRepo       repositories.ReviewRepository
	neighborhoodRepo repositories.NeighborhoodRepository
	userRepo         repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	neighborhoodRepo repositories.NeighborhoodRepository,
	userRepo repositories.UserRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:       reviewRepo,
		neighborhoodRepo: neighborhoodRepo,
		userRepo:         userRepo,
	}
}

// Create posts a review. The rating must be a whole number in [1, 5], the
// content non-blank and at most 4096 characters. Oversized content answers
// 413, not 400.
func (s *ReviewService) Create(db *gorm.DB, authorID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.ErrInvalidOperation("review", "Review content must not be blank.")
	}
	if utf8.RuneCountInString(req.Content) > models.ReviewContentMaxLen {
		return nil, apperrors.ErrContentTooLarge("review",
			fmt.Sprintf("Review content must be at most %d characters.", models.ReviewContentMaxLen))
	}
	if req.Rating < models.ReviewRatingMin || req.Rating > models.ReviewRatingMax {
		return nil, apperrors.ErrInvalidOperation("review",
			fmt.Sprintf("Rating must be a whole number between %d and %d.", models.ReviewRatingMin, models.ReviewRatingMax))
	}

	if _, err := s.neighborhoodRepo.FindByID(db, req.NeighborhoodID); err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "That neighborhood does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	review := &models.Review{
		AuthorID:       authorID,
		NeighborhoodID: req.NeighborhoodID,
		Rating:         req.Rating,
		Content:        req.Content,
		DateCreated:    time.Now(),
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.reviewRepo.FindByID(db, review.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("review created", "review_id", review.ID,
		"author_id", authorID, "neighborhood_id", req.NeighborhoodID)

	response := dto.NewReviewResponse(created)
	return &response, nil
}

func (s *ReviewService) GetAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]dto.ReviewResponse, error) {
	if _, err := s.neighborhoodRepo.FindByID(db, neighborhoodID); err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "That neighborhood does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindAllByNeighborhood(db, neighborhoodID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponses(reviews), nil
}

// GetAllByAuthor lists reviews written by the given username.
func (s *ReviewService) GetAllByAuthor(db *gorm.DB, authorUsername string) ([]dto.ReviewResponse, error) {
	author, err := s.userRepo.FindByUsername(db, authorUsername)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "That user does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindAllByAuthor(db, author.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewResponses(reviews), nil
}

// Delete removes a review. Only the author may delete it.
func (s *ReviewService) Delete(db *gorm.DB, actorID, reviewID string) error {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err, "review", "That review does not exist.")
		}
		return apperrors.InternalError(err)
	}

	if review.AuthorID != actorID {
		return apperrors.ErrNotOwner("review", "You may only delete your own reviews.")
	}

	if err := s.reviewRepo.DeleteByID(db, reviewID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("review deleted", "review_id", reviewID, "author_id", actorID)
	return nil
}
