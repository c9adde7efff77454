package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Error message"`
}

// CandidateView represents a listing row: the record plus its rating
type CandidateView struct {
	Candidate
	Rating string `json:"rating" example:"6/10"`
}

// CandidatesResponse represents the candidate listing
type CandidatesResponse struct {
	Items []CandidateView `json:"items"`
	Total int             `json:"total" example:"351"`
}
