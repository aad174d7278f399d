package upstream

import "github.com/lokaclean/backoffice/internal/domain"

// Inner data shapes of the core API envelope, one struct per endpoint.
// Decoding is strict: an unknown or missing field is a shape error, not a
// zero value to limp along with.

// pagination is echoed by list endpoints; the dashboard ignores it and
// paginates in memory, but strict decoding has to know the field exists.
type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type ordersData struct {
	Items      []domain.Order `json:"items"`
	Pagination *pagination    `json:"pagination,omitempty"`
}

type packagesData struct {
	Items      []domain.Package `json:"items"`
	Pagination *pagination      `json:"pagination,omitempty"`
}

type cleanersData struct {
	Items      []domain.Cleaner `json:"items"`
	Pagination *pagination      `json:"pagination,omitempty"`
}

type ratingsData struct {
	Items      []domain.Rating `json:"items"`
	Pagination *pagination     `json:"pagination,omitempty"`
}

// RatingsSummary is the aggregate block shown on the ratings page.
type RatingsSummary struct {
	Average float64     `json:"average"`
	Total   int         `json:"total"`
	Counts  map[int]int `json:"counts"`
}

type summaryData struct {
	Summary *RatingsSummary `json:"summary"`
}

type authData struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type userData struct {
	User *domain.User `json:"user"`
}

// AuthResult is a successful upstream login: the bearer token this gateway
// will attach to subsequent calls, plus the authenticated user.
type AuthResult struct {
	Token string
	User  domain.User
}
