package service

import (
	"context"
	"time"

	"interview-admin-backend/internal/common/export"
	"interview-admin-backend/internal/common/logger"
	"interview-admin-backend/internal/features/candidate/models"
	"interview-admin-backend/internal/features/candidate/repository"
)

var candidatesExportHeader = []string{"Name", "Created", "Rating"}

type CandidateService interface {
	// ListCandidates returns every candidate, newest first, with the
	// computed rating label.
	ListCandidates(ctx context.Context) ([]models.CandidateView, error)
	// ExportCandidates renders the listing as CSV.
	ExportCandidates(ctx context.Context) (string, []byte, error)
}

type candidateService struct {
	repo repository.CandidateRepository
}

func NewCandidateService(repo repository.CandidateRepository) CandidateService {
	return &candidateService{
		repo: repo,
	}
}

func (s *candidateService) ListCandidates(ctx context.Context) ([]models.CandidateView, error) {
	candidates, err := s.repo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load candidates")
		return nil, err
	}

	views := make([]models.CandidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, models.CandidateView{
			Candidate: c,
			Rating:    c.RatingLabel(),
		})
	}
	return views, nil
}

func (s *candidateService) ExportCandidates(ctx context.Context) (string, []byte, error) {
	views, err := s.ListCandidates(ctx)
	if err != nil {
		return "", nil, err
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			v.FullName,
			formatDate(v.CreatedAt),
			v.Rating,
		})
	}

	data, err := export.Table(candidatesExportHeader, rows)
	if err != nil {
		return "", nil, err
	}
	return export.Filename("candidates", time.Now().UTC()), data, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
