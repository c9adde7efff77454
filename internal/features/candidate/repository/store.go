package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"interview-admin-backend/internal/features/candidate/models"
	"interview-admin-backend/internal/storage"
)

type storeRepository struct {
	store storage.Store
}

func NewStoreRepository(store storage.Store) CandidateRepository {
	return &storeRepository{store: store}
}

func (r *storeRepository) List(ctx context.Context) ([]models.Candidate, error) {
	docs, err := r.store.List(ctx, storage.CollectionCandidates, storage.ListOptions{
		OrderBy: "created_at",
		Desc:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(docs))
	for _, doc := range docs {
		var candidate models.Candidate
		if err := json.Unmarshal(doc.Data, &candidate); err != nil {
			continue
		}
		if candidate.ID == "" {
			candidate.ID = doc.ID
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}
