package repository

import (
	"context"
	"errors"

	"interview-admin-backend/internal/features/user/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository is the data access surface of the admin user feature.
// Counting and deleting dependent records lives here too, so the
// service never touches collection names directly.
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetBanned(ctx context.Context, id string, banned bool) error
	Delete(ctx context.Context, id string) error

	CountInterviewsByAuthor(ctx context.Context, email string) (int, error)
	CountCandidatesByInterview(ctx context.Context, ref string) (int, error)
	DeleteInterviewsByAuthor(ctx context.Context, email string) (int64, error)
	DeleteCandidatesByInterview(ctx context.Context, ref string) (int64, error)
}
