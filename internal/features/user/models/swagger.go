package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Error message"`
}

// BanUpdate represents a ban toggle request
type BanUpdate struct {
	Banned bool `json:"banned" example:"true"`
}

// UsersResponse represents a filtered list of users
type UsersResponse struct {
	Items []Overview `json:"items"`
	Total int        `json:"total" example:"42"`
}
