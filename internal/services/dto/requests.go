package dto

// Auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required" validate:"required,identifier,min=3,max=64"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

// Neighborhoods

type CreateNeighborhoodRequest struct {
	Name         string   `json:"name" validate:"required,identifier"`
	City         string   `json:"city" validate:"required,identifier"`
	State        string   `json:"state" validate:"required,statecode"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
	CrimeRate    *float64 `json:"crimeRate" validate:"required"`
	AveragePrice *float64 `json:"averagePrice" validate:"required"`
	AverageAge   *float64 `json:"averageAge" validate:"required"`
}

type UpdateNeighborhoodRequest struct {
	CrimeRate    *float64 `json:"crimeRate"`
	AveragePrice *float64 `json:"averagePrice"`
	AverageAge   *float64 `json:"averageAge"`
}

// NeighborhoodQuery identifies a neighborhood by its natural key, carried in
// the query string on GET/PATCH/DELETE.
type NeighborhoodQuery struct {
	Name  string `form:"name" validate:"required,identifier"`
	City  string `form:"city" validate:"required,identifier"`
	State string `form:"state" validate:"required,statecode"`
}

type LocationQuery struct {
	City  string `form:"city" validate:"required,identifier"`
	State string `form:"state" validate:"required,statecode"`
}

// BoxQuery is the bounding-box search input; lat1 < lat2 and long1 < long2
// is checked in the service so the error message can name the offending pair.
type BoxQuery struct {
	Lat1  *float64 `form:"lat1" validate:"required"`
	Long1 *float64 `form:"long1" validate:"required"`
	Lat2  *float64 `form:"lat2" validate:"required"`
	Long2 *float64 `form:"long2" validate:"required"`
}

// Reviews

type CreateReviewRequest struct {
	NeighborhoodID string `json:"neighborhoodId" validate:"required"`
	Rating         int    `json:"rating" validate:"required,gte=1,lte=5"`
	Content        string `json:"content" validate:"required"`
}

// Strolls

type CreateStrollRequest struct {
	Name        string `json:"name" validate:"required,identifier"`
	City        string `json:"city" validate:"required,identifier"`
	State       string `json:"state" validate:"required,statecode"`
	Title       string `json:"title" validate:"required"`
	StrollVideo string `json:"strollVideo" validate:"required"`
}

// Certified residency

type CreateResidencyRequest struct {
	Name  string `json:"name" validate:"required,identifier"`
	City  string `json:"city" validate:"required,identifier"`
	State string `json:"state" validate:"required,statecode"`
}

// Vibe checks

type CreateAvailabilityRequest struct {
	Name     string `json:"name" validate:"required,identifier"`
	City     string `json:"city" validate:"required,identifier"`
	State    string `json:"state" validate:"required,statecode"`
	VibeLink string `json:"vibeLink" validate:"required"`
	DateTime string `json:"dateTime" validate:"required"` // RFC3339
}

type CreateVibeCheckRequest struct {
	AvailabilityID string `json:"availabilityId" validate:"required"`
}
