package service

import (
	"context"

	"interview-admin-backend/internal/features/user/models"
	"interview-admin-backend/internal/features/user/query"
)

type UserService interface {
	// ListUsers aggregates counts for every user, then filters and
	// sorts per the query state.
	ListUsers(ctx context.Context, state query.State) ([]models.Overview, error)
	// GetStats summarizes the whole user base, ignoring any filter.
	GetStats(ctx context.Context) (*models.Stats, error)
	// SetBanned toggles the ban flag and returns the refreshed view.
	SetBanned(ctx context.Context, id string, banned bool) (*models.Overview, error)
	// DeleteUser removes dependent records then the account itself,
	// reporting every step.
	DeleteUser(ctx context.Context, id string) (*models.DeleteReport, error)
	// ExportUsers renders the visible set as CSV.
	ExportUsers(ctx context.Context, state query.State) (string, []byte, error)
}
