package repository

import (
	"context"

	"interview-admin-backend/internal/features/candidate/models"
)

type CandidateRepository interface {
	List(ctx context.Context) ([]models.Candidate, error)
}
