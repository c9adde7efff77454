package models

// Stats represents the dashboard summary over the whole user base
type Stats struct {
	TotalUsers      int `json:"total_users" example:"42"`
	ActiveUsers     int `json:"active_users" example:"17"`
	BannedUsers     int `json:"banned_users" example:"3"`
	TotalInterviews int `json:"total_interviews" example:"120"`
	TotalCandidates int `json:"total_candidates" example:"351"`
	TotalCredits    int `json:"total_credits" example:"260"`
}
