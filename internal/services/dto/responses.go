package dto

import (
	"strings"

	"nbhd_backend/internal/models"
)

// Shaped view models returned to the client. Builders take raw records with
// resolved references and denormalize them; invariants and ownership are
// never checked against these copies.

type NeighborhoodResponse struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	CrimeRate    float64 `json:"crimeRate"`
	AveragePrice float64 `json:"averagePrice"`
	AverageAge   float64 `json:"averageAge"`
}

type NeighborhoodRef struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

type UserResponse struct {
	ID         string `json:"_id"`
	Username   string `json:"username"`
	DateJoined string `json:"dateJoined"`
	IsAdmin    bool   `json:"isAdmin"`
}

type ReviewResponse struct {
	ID          string          `json:"_id"`
	Author      string          `json:"author"`
	Location    NeighborhoodRef `json:"location"`
	Rating      int             `json:"rating"`
	Content     string          `json:"content"`
	DateCreated string          `json:"dateCreated"`
}

type StrollResponse struct {
	ID           string          `json:"_id"`
	Author       string          `json:"author"`
	Location     NeighborhoodRef `json:"location"`
	Title        string          `json:"title"`
	StrollVideo  string          `json:"strollVideo"`
	DateUploaded string          `json:"dateUploaded"`
}

type ResidencyResponse struct {
	ID           string          `json:"_id"`
	User         string          `json:"user"`
	Neighborhood NeighborhoodRef `json:"neighborhood"`
}

type AvailabilityResponse struct {
	ID           string          `json:"_id"`
	User         string          `json:"user"`
	Neighborhood NeighborhoodRef `json:"neighborhood"`
	VibeLink     string          `json:"vibeLink"`
	DateTime     string          `json:"dateTime"`
}

type VibeCheckResponse struct {
	ID             string `json:"_id"`
	User           string `json:"user"`
	Resident       string `json:"resident"`
	AvailabilityID string `json:"availabilityId"`
	VibeLink       string `json:"vibeLink"`
	DateTime       string `json:"dateTime"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// --- builders ---

func NewNeighborhoodResponse(n *models.Neighborhood) NeighborhoodResponse {
	return NeighborhoodResponse{
		ID:           n.ID,
		Name:         FormatWord(n.Name),
		City:         FormatWord(n.City),
		State:        strings.ToUpper(n.State),
		Latitude:     n.Latitude,
		Longitude:    n.Longitude,
		CrimeRate:    n.CrimeRate,
		AveragePrice: n.AveragePrice,
		AverageAge:   n.AverageAge,
	}
}

func NewNeighborhoodResponses(neighborhoods []models.Neighborhood) []NeighborhoodResponse {
	responses := make([]NeighborhoodResponse, 0, len(neighborhoods))
	for i := range neighborhoods {
		responses = append(responses, NewNeighborhoodResponse(&neighborhoods[i]))
	}
	return responses
}

func newNeighborhoodRef(n *models.Neighborhood) NeighborhoodRef {
	if n == nil {
		return NeighborhoodRef{}
	}
	return NeighborhoodRef{
		Name:  FormatWord(n.Name),
		City:  FormatWord(n.City),
		State: strings.ToUpper(n.State),
	}
}

func username(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.Username
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		DateJoined: FormatDate(u.DateJoined),
		IsAdmin:    u.IsAdmin,
	}
}

func NewReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		Author:      username(r.Author),
		Location:    newNeighborhoodRef(r.Neighborhood),
		Rating:      r.Rating,
		Content:     r.Content,
		DateCreated: FormatDate(r.DateCreated),
	}
}

func NewReviewResponses(reviews []models.Review) []ReviewResponse {
	responses := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, NewReviewResponse(&reviews[i]))
	}
	return responses
}

func NewStrollResponse(s *models.Stroll) StrollResponse {
	return StrollResponse{
		ID:           s.ID,
		Author:       username(s.Author),
		Location:     newNeighborhoodRef(s.Neighborhood),
		Title:        s.Title,
		StrollVideo:  s.StrollVideo,
		DateUploaded: FormatDate(s.DateUploaded),
	}
}

func NewStrollResponses(strolls []models.Stroll) []StrollResponse {
	responses := make([]StrollResponse, 0, len(strolls))
	for i := range strolls {
		responses = append(responses, NewStrollResponse(&strolls[i]))
	}
	return responses
}

func NewResidencyResponse(r *models.CertifiedResidency) ResidencyResponse {
	return ResidencyResponse{
		ID:           r.ID,
		User:         username(r.User),
		Neighborhood: newNeighborhoodRef(r.Neighborhood),
	}
}

func NewResidencyResponses(residencies []models.CertifiedResidency) []ResidencyResponse {
	responses := make([]ResidencyResponse, 0, len(residencies))
	for i := range residencies {
		responses = append(responses, NewResidencyResponse(&residencies[i]))
	}
	return responses
}

func NewAvailabilityResponse(a *models.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		ID:           a.ID,
		User:         username(a.User),
		Neighborhood: newNeighborhoodRef(a.Neighborhood),
		VibeLink:     a.VibeLink,
		DateTime:     FormatDate(a.DateTime),
	}
}

func NewAvailabilityResponses(availabilities []models.Availability) []AvailabilityResponse {
	responses := make([]AvailabilityResponse, 0, len(availabilities))
	for i := range availabilities {
		responses = append(responses, NewAvailabilityResponse(&availabilities[i]))
	}
	return responses
}

func NewVibeCheckResponse(v *models.VibeCheck) VibeCheckResponse {
	response := VibeCheckResponse{
		ID:             v.ID,
		User:           username(v.User),
		Resident:       username(v.Resident),
		AvailabilityID: v.AvailabilityID,
	}
	if v.Availability != nil {
		response.VibeLink = v.Availability.VibeLink
		response.DateTime = FormatDate(v.Availability.DateTime)
	}
	return response
}

func NewVibeCheckResponses(vibeChecks []models.VibeCheck) []VibeCheckResponse {
	responses := make([]VibeCheckResponse, 0, len(vibeChecks))
	for i := range vibeChecks {
		responses = append(responses, NewVibeCheckResponse(&vibeChecks[i]))
	}
	return responses
}
