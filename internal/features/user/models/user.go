package models

import "time"

// Status labels in priority order: a banned account is Banned no matter
// what else is true, an unbanned account with interviews is Active, one
// with only a registration date is Registered, anything left is Inactive.
const (
	StatusBanned     = "Banned"
	StatusActive     = "Active"
	StatusRegistered = "Registered"
	StatusInactive   = "Inactive"
)

// User represents a platform account as stored
// @Description Platform account record
type User struct {
	ID           string    `json:"id" example:"a9f51c6e"`
	Name         string    `json:"name,omitempty" example:"Jane Doe"`
	Email        string    `json:"email" example:"jane@example.com"`
	CreatedAt    time.Time `json:"created_at" example:"2026-03-15T14:30:00Z"`
	Credits      int       `json:"credits" example:"5"`
	Banned       bool      `json:"banned" example:"false"`
	InterviewRef string    `json:"interview_id,omitempty" example:"iv_01"`
}

// DisplayName returns the name to render, falling back to the email.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Overview represents the enriched view the dashboard renders: the
// stored record plus derived counts and status label. It is rebuilt
// wholesale on every listing and never persisted.
type Overview struct {
	User
	InterviewCount int    `json:"interview_count" example:"2"`
	CandidateCount int    `json:"candidate_count" example:"1"`
	Status         string `json:"status" example:"Active" enums:"Banned,Active,Registered,Inactive"`
}

// StatusLabel derives the status label for a user with the given
// interview count.
func StatusLabel(u User, interviewCount int) string {
	switch {
	case u.Banned:
		return StatusBanned
	case interviewCount > 0:
		return StatusActive
	case !u.CreatedAt.IsZero():
		return StatusRegistered
	default:
		return StatusInactive
	}
}
